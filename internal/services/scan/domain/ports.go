package domain

import "context"

// ServicePort defines the scan service contract
type ServicePort interface {
	ScanSingle(ctx context.Context, userID string, in SingleInput) (ScanResult, error)
	SubmitBatch(ctx context.Context, userID string, in BatchInput) (BatchAccepted, error)
	JobStatus(ctx context.Context, userID, jobID string) (JobStatusView, error)
	JobResults(ctx context.Context, userID, jobID string, q ResultsQuery) ([]ScanResult, int, error)
}
