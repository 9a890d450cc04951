package domain

import "context"

// ServicePort defines the history service contract
type ServicePort interface {
	List(ctx context.Context, userID string, q Query) ([]ScanResult, int, error)
	Get(ctx context.Context, userID, scanID string) (ScanResult, error)
	Delete(ctx context.Context, userID, scanID string) error
	Export(ctx context.Context, userID string, in ExportInput) (Export, error)
}
