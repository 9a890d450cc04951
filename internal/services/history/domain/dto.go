// Package domain holds DTOs for the scan history surface
package domain

import (
	"time"

	scandom "dnsguard/internal/services/scan/domain"
)

// ScanResult is the history row type, shared with the scan service
type ScanResult = scandom.ScanResult

// Query carries history filters, zero values mean no filter
type Query struct {
	Domain        string
	Verdict       string
	Method        string
	MinConfidence *float64
	MaxConfidence *float64
	DateFrom      *time.Time
	DateTo        *time.Time
	BatchOnly     bool
	Page          int
	PageSize      int
}

// ExportInput selects format and filters for an export
type ExportInput struct {
	Format    string  `json:"format" validate:"required,oneof=csv json" example:"csv"`
	Domain    string  `json:"domain,omitempty" validate:"omitempty,max=253"`
	Verdict   string  `json:"verdict,omitempty" validate:"omitempty,oneof=malicious suspicious benign"`
	Method    string  `json:"method,omitempty" validate:"omitempty,printascii,max=40"`
	BatchOnly bool    `json:"batch_only,omitempty"`
	DateFrom  *string `json:"date_from,omitempty" validate:"omitempty,datetime=2006-01-02"`
	DateTo    *string `json:"date_to,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// Export is a rendered export ready to stream to the client
type Export struct {
	Filename    string
	ContentType string
	Body        []byte
}
