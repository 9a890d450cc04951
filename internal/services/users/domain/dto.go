// Package domain holds account-facing read types and ports
package domain

import "time"

// Statistics summarizes one account's scanning footprint
type Statistics struct {
	TotalScans            int        `json:"total_scans"`
	MaliciousCount        int        `json:"total_malicious"`
	SuspiciousCount       int        `json:"total_suspicious"`
	BenignCount           int        `json:"total_benign"`
	AvgConfidence         float64    `json:"avg_confidence"`
	SafelistContributions int        `json:"safelist_contributions"`
	JoinDate              time.Time  `json:"join_date"`
	LastScanAt            *time.Time `json:"last_scan,omitempty"`
}

// ActivityEntry is one audit trail row as rendered to its owner
type ActivityEntry struct {
	ID        string         `json:"id"`
	Action    string         `json:"action"`
	Details   map[string]any `json:"details,omitempty"`
	IP        string         `json:"ip,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// ActivityQuery pages through the audit trail
type ActivityQuery struct {
	Page     int
	PageSize int
}
