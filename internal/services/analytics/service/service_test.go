package service

import (
	"context"
	"testing"

	"dnsguard/internal/modkit/repokit"
	"dnsguard/internal/platform/store"
	"dnsguard/internal/services/analytics/domain"
	"dnsguard/internal/services/analytics/repo"
)

type recordRepo struct {
	trendDays int
	tldLimit  int
}

func (r *recordRepo) Dashboard(ctx context.Context, userID string) (domain.Dashboard, error) {
	return domain.Dashboard{TotalScans: 7}, nil
}

func (r *recordRepo) Trends(ctx context.Context, userID string, days int) ([]domain.TrendPoint, error) {
	r.trendDays = days
	return nil, nil
}

func (r *recordRepo) TLDRisk(ctx context.Context, userID string, limit int) ([]domain.TLDRisk, error) {
	r.tldLimit = limit
	return nil, nil
}

func (r *recordRepo) Heatmap(ctx context.Context, userID string) ([]domain.HeatmapCell, error) {
	return nil, nil
}

func (r *recordRepo) Methods(ctx context.Context, userID string) ([]domain.MethodStat, error) {
	return nil, nil
}

type analyticsTx struct{}

func (analyticsTx) Exec(context.Context, string, ...any) (store.CommandTag, error) { return nil, nil }
func (analyticsTx) Query(context.Context, string, ...any) (store.Rows, error)     { return nil, nil }
func (analyticsTx) QueryRow(context.Context, string, ...any) store.Row            { return nil }
func (analyticsTx) Tx(ctx context.Context, fn func(q store.RowQuerier) error) error {
	return fn(analyticsTx{})
}

func newTestAnalytics(t *testing.T) (*Svc, *recordRepo) {
	t.Helper()
	rr := &recordRepo{}
	binder := repokit.BindFunc[repo.Repo](func(repokit.Queryer) repo.Repo { return rr })
	return New(analyticsTx{}, binder), rr
}

func TestTrends_WindowClamping(t *testing.T) {
	s, rr := newTestAnalytics(t)
	ctx := context.Background()

	if _, err := s.Trends(ctx, "u1", 0); err != nil {
		t.Fatalf("trends: %v", err)
	}
	if rr.trendDays != defaultTrendDays {
		t.Fatalf("zero days should default to %d, got %d", defaultTrendDays, rr.trendDays)
	}

	if _, err := s.Trends(ctx, "u1", 4000); err != nil {
		t.Fatalf("trends: %v", err)
	}
	if rr.trendDays != maxTrendDays {
		t.Fatalf("oversized window should clamp to %d, got %d", maxTrendDays, rr.trendDays)
	}

	if _, err := s.Trends(ctx, "u1", 7); err != nil {
		t.Fatalf("trends: %v", err)
	}
	if rr.trendDays != 7 {
		t.Fatalf("in-range window should pass through, got %d", rr.trendDays)
	}
}

func TestTLDRisk_LimitApplied(t *testing.T) {
	s, rr := newTestAnalytics(t)

	if _, err := s.TLDRisk(context.Background(), "u1"); err != nil {
		t.Fatalf("tld risk: %v", err)
	}
	if rr.tldLimit != tldLimit {
		t.Fatalf("expected top %d tlds, got limit %d", tldLimit, rr.tldLimit)
	}
}

func TestDashboard_PassThrough(t *testing.T) {
	s, _ := newTestAnalytics(t)

	d, err := s.Dashboard(context.Background(), "u1")
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if d.TotalScans != 7 {
		t.Fatalf("expected repo dashboard to pass through, got %+v", d)
	}
}
