// Package repo provides postgres access for account statistics and activity
package repo

import (
	"context"
	"errors"
	"time"

	perr "dnsguard/internal/platform/errors"
	"dnsguard/internal/platform/store"

	"dnsguard/internal/modkit/repokit"
	"dnsguard/internal/services/users/domain"
)

// Repo defines the repository contract for account reads
type Repo interface {
	Statistics(ctx context.Context, userID string) (domain.Statistics, error)
	ListActivity(ctx context.Context, userID string, limit, offset int) ([]domain.ActivityEntry, int, error)
}

type (
	// PG implements the Repo interface using Postgres
	PG struct{}

	queries struct{ q repokit.Queryer }
)

// NewPG creates a new Postgres repository binder
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind binds a Postgres queryer to the Repo implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

// Statistics joins the account row against its scans in one pass.
// The left join keeps accounts with zero scans visible.
func (r *queries) Statistics(ctx context.Context, userID string) (domain.Statistics, error) {
	const sql = `
select
	count(s.id)                                                as total_scans,
	count(s.id) filter (where s.verdict = 'malicious')         as malicious_count,
	count(s.id) filter (where s.verdict = 'suspicious')        as suspicious_count,
	count(s.id) filter (where s.verdict = 'benign')            as benign_count,
	coalesce(avg(s.confidence), 0)                             as avg_confidence,
	count(s.id) filter (where s.safelist_tier is not null)     as safelist_contributions,
	u.created_at                                               as join_date,
	max(s.created_at)                                          as last_scan_at
from users u
left join scans s on s.user_id = u.id
where u.id = $1
group by u.created_at
`
	st, err := store.One(ctx, r.q, func(row store.Row) (domain.Statistics, error) {
		var (
			v    domain.Statistics
			last *time.Time
		)
		err := row.Scan(
			&v.TotalScans, &v.MaliciousCount, &v.SuspiciousCount, &v.BenignCount,
			&v.AvgConfidence, &v.SafelistContributions, &v.JoinDate, &last,
		)
		v.LastScanAt = last
		return v, err
	}, sql, userID)
	if errors.Is(err, perr.ErrNotFound) {
		return domain.Statistics{}, perr.NotFoundf("account not found")
	}
	return st, err
}

func (r *queries) ListActivity(
	ctx context.Context, userID string, limit, offset int,
) ([]domain.ActivityEntry, int, error) {
	var total int
	if err := r.q.QueryRow(ctx,
		`select count(*) from activity_logs where user_id = $1`, userID,
	).Scan(&total); err != nil {
		return nil, 0, err
	}

	const sql = `
select id::text, action, details, ip, created_at
from activity_logs
where user_id = $1
order by created_at desc, id desc
limit $2 offset $3
`
	rows, err := r.q.Query(ctx, sql, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []domain.ActivityEntry
	for rows.Next() {
		var e domain.ActivityEntry
		if err := rows.Scan(&e.ID, &e.Action, &e.Details, &e.IP, &e.CreatedAt); err != nil {
			return nil, 0, err
		}
		out = append(out, e)
	}
	return out, total, rows.Err()
}
