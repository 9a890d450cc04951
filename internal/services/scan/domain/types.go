// Package domain holds types and contracts for the scan service
package domain

import "time"

// Batch job lifecycle states
const (
	JobPending    = "pending"
	JobProcessing = "processing"
	JobCompleted  = "completed"
	JobFailed     = "failed"
)

// Job is a batch scan job as stored
type Job struct {
	ID               string     `json:"id"`
	UserID           string     `json:"user_id"`
	Filename         *string    `json:"filename,omitempty"`
	TotalDomains     int        `json:"total_domains"`
	ProcessedDomains int        `json:"processed_domains"`
	MaliciousCount   int        `json:"malicious_count"`
	SuspiciousCount  int        `json:"suspicious_count"`
	BenignCount      int        `json:"benign_count"`
	Status           string     `json:"status"`
	ErrorMessage     *string    `json:"error_message,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
}

// ScanResult is one persisted classification
type ScanResult struct {
	ID              string             `json:"id"`
	UserID          string             `json:"user_id"`
	Domain          string             `json:"domain"`
	Verdict         string             `json:"verdict"`
	Confidence      float64            `json:"confidence"`
	Method          string             `json:"method"`
	Reason          string             `json:"reason"`
	Stage           *string            `json:"stage,omitempty"`
	LatencyMS       float64            `json:"latency_ms"`
	Features        map[string]float64 `json:"features,omitempty"`
	TyposquatTarget *string            `json:"typosquat_target,omitempty"`
	EditDistance    *int               `json:"edit_distance,omitempty"`
	SafelistTier    *string            `json:"safelist_tier,omitempty"`
	BatchJobID      *string            `json:"batch_job_id,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
}

// JobStatusView is the read-time projection of a job
// ProgressPercentage is derived on read, never stored
type JobStatusView struct {
	Job
	ProgressPercentage float64  `json:"progress_percentage"`
	ETASeconds         *float64 `json:"eta_seconds"`
}
