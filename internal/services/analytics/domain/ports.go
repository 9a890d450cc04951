package domain

import "context"

// ServicePort is the analytics surface consumed by HTTP
type ServicePort interface {
	Dashboard(ctx context.Context, userID string) (Dashboard, error)
	Trends(ctx context.Context, userID string, days int) ([]TrendPoint, error)
	TLDRisk(ctx context.Context, userID string) ([]TLDRisk, error)
	Heatmap(ctx context.Context, userID string) ([]HeatmapCell, error)
	Methods(ctx context.Context, userID string) ([]MethodStat, error)
}
