// Package service implements analytics reads over the scan corpus
package service

import (
	"context"

	"dnsguard/internal/modkit/repokit"
	"dnsguard/internal/platform/logger"
	"dnsguard/internal/services/analytics/domain"
	"dnsguard/internal/services/analytics/repo"
)

// Service defines the service contract for analytics
type Service interface{ domain.ServicePort }

const (
	defaultTrendDays = 30
	maxTrendDays     = 365
	tldLimit         = 20
)

// Svc implements the Service interface
type Svc struct {
	Repo repo.Repo

	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
	log    *logger.Logger
}

// New creates a new analytics service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("analytics.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("analytics.Service requires a non nil Repo binder")
	}
	return &Svc{
		Repo:   binder.Bind(db),
		binder: binder,
		db:     db,
		log:    logger.Named("analytics"),
	}
}

// Dashboard returns the headline cards
func (s *Svc) Dashboard(ctx context.Context, userID string) (domain.Dashboard, error) {
	return s.Repo.Dashboard(ctx, userID)
}

// Trends returns the daily verdict trend for the trailing window
func (s *Svc) Trends(ctx context.Context, userID string, days int) ([]domain.TrendPoint, error) {
	if days <= 0 {
		days = defaultTrendDays
	}
	if days > maxTrendDays {
		days = maxTrendDays
	}
	return s.Repo.Trends(ctx, userID, days)
}

// TLDRisk returns the riskiest top level domains seen by this user
func (s *Svc) TLDRisk(ctx context.Context, userID string) ([]domain.TLDRisk, error) {
	return s.Repo.TLDRisk(ctx, userID, tldLimit)
}

// Heatmap returns scan volume by weekday and hour
func (s *Svc) Heatmap(ctx context.Context, userID string) ([]domain.HeatmapCell, error) {
	return s.Repo.Heatmap(ctx, userID)
}

// Methods returns per-method counts and confidence
func (s *Svc) Methods(ctx context.Context, userID string) ([]domain.MethodStat, error) {
	return s.Repo.Methods(ctx, userID)
}
