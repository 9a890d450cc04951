package domain

import "context"

// ServicePort is the safelist management surface consumed by HTTP
type ServicePort interface {
	List(ctx context.Context, q Query) ([]Entry, int, error)
	Create(ctx context.Context, userID string, in CreateInput) (Entry, error)
	Update(ctx context.Context, userID, role, id string, in UpdateInput) (Entry, error)
	Delete(ctx context.Context, userID, role, id string) error
	Import(ctx context.Context, userID string, in ImportInput) (ImportReport, error)
	Populate(ctx context.Context, userID string) (ImportReport, error)
	ExportCSV(ctx context.Context) ([]byte, error)
	Stats(ctx context.Context) (Stats, error)
}
