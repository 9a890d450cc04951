// Package repo implements analytics aggregation queries over postgres
package repo

import (
	"context"
	"time"

	"dnsguard/internal/modkit/repokit"
	"dnsguard/internal/services/analytics/domain"
)

// Repo is the analytics read surface
type Repo interface {
	Dashboard(ctx context.Context, userID string) (domain.Dashboard, error)
	Trends(ctx context.Context, userID string, days int) ([]domain.TrendPoint, error)
	TLDRisk(ctx context.Context, userID string, limit int) ([]domain.TLDRisk, error)
	Heatmap(ctx context.Context, userID string) ([]domain.HeatmapCell, error)
	Methods(ctx context.Context, userID string) ([]domain.MethodStat, error)
}

// PG binds Repo against postgres
type PG struct{}

// NewPG returns a postgres binder for the analytics repo
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind implements repokit.Binder
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

type queries struct{ q repokit.Queryer }

// Dashboard computes the headline cards in a single pass over scans
func (r *queries) Dashboard(ctx context.Context, userID string) (domain.Dashboard, error) {
	const sql = `
		select
			count(*)                                                  as total_scans,
			count(*) filter (where verdict = 'malicious')             as malicious_count,
			count(*) filter (where verdict = 'suspicious')            as suspicious_count,
			count(*) filter (where verdict = 'benign')                as benign_count,
			coalesce(avg(confidence), 0)                              as avg_confidence,
			count(distinct batch_job_id)                              as batch_jobs,
			count(*) filter (where method = 'safelist')               as safelist_hits,
			max(created_at)                                           as last_scan_at
		from scans
		where user_id = $1
	`
	var (
		d    domain.Dashboard
		last *time.Time
	)
	err := r.q.QueryRow(ctx, sql, userID).Scan(
		&d.TotalScans,
		&d.MaliciousCount,
		&d.SuspiciousCount,
		&d.BenignCount,
		&d.AvgConfidence,
		&d.BatchJobs,
		&d.SafelistHits,
		&last,
	)
	if err != nil {
		return domain.Dashboard{}, err
	}
	d.LastScanAt = last
	return d, nil
}

// Methods groups scans by classification method
func (r *queries) Methods(ctx context.Context, userID string) ([]domain.MethodStat, error) {
	const sql = `
		select method, count(*), coalesce(avg(confidence), 0)
		from scans
		where user_id = $1
		group by method
		order by count(*) desc
	`
	rows, err := r.q.Query(ctx, sql, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.MethodStat, 0, 8)
	for rows.Next() {
		var m domain.MethodStat
		if err := rows.Scan(&m.Method, &m.Count, &m.AvgConfidence); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
