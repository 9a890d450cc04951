package module

import (
	"context"

	analyticsdom "dnsguard/internal/services/analytics/domain"
	analyticssvc "dnsguard/internal/services/analytics/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptAnalyticsPort adapts the analytics service to the domain port interface
type adaptAnalyticsPort struct{ svc analyticssvc.Service }

// Dashboard implements the domain ServicePort interface
func (a adaptAnalyticsPort) Dashboard(ctx context.Context, userID string) (analyticsdom.Dashboard, error) {
	return a.svc.Dashboard(ctx, userID)
}

// Trends implements the domain ServicePort interface
func (a adaptAnalyticsPort) Trends(
	ctx context.Context, userID string, days int,
) ([]analyticsdom.TrendPoint, error) {
	return a.svc.Trends(ctx, userID, days)
}

// TLDRisk implements the domain ServicePort interface
func (a adaptAnalyticsPort) TLDRisk(ctx context.Context, userID string) ([]analyticsdom.TLDRisk, error) {
	return a.svc.TLDRisk(ctx, userID)
}

// Heatmap implements the domain ServicePort interface
func (a adaptAnalyticsPort) Heatmap(ctx context.Context, userID string) ([]analyticsdom.HeatmapCell, error) {
	return a.svc.Heatmap(ctx, userID)
}

// Methods implements the domain ServicePort interface
func (a adaptAnalyticsPort) Methods(ctx context.Context, userID string) ([]analyticsdom.MethodStat, error) {
	return a.svc.Methods(ctx, userID)
}
