// Package repo provides postgres access for scan history
package repo

import (
	"context"
	"fmt"
	"strings"

	perr "dnsguard/internal/platform/errors"

	"dnsguard/internal/modkit/repokit"
	"dnsguard/internal/services/history/domain"
)

// Repo defines the repository contract for history
type Repo interface {
	List(ctx context.Context, userID string, q domain.Query, limit, offset int) ([]domain.ScanResult, int, error)
	Get(ctx context.Context, userID, scanID string) (domain.ScanResult, error)
	Delete(ctx context.Context, userID, scanID string) error
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

const scanCols = `id::text, user_id::text, domain, verdict, confidence, method, reason, stage,
latency_ms, features, typosquat_target, edit_distance, safelist_tier, batch_job_id::text, created_at`

// where builds the filter clause, $1 is always the owner
func where(q domain.Query) (string, []any) {
	conds := []string{"user_id = $1"}
	var args []any
	n := 1

	add := func(cond string, v any) {
		n++
		conds = append(conds, fmt.Sprintf(cond, n))
		args = append(args, v)
	}

	if q.Domain != "" {
		add("domain ilike '%%' || $%d || '%%'", q.Domain)
	}
	if q.Verdict != "" {
		add("verdict = $%d", q.Verdict)
	}
	if q.Method != "" {
		add("method = $%d", q.Method)
	}
	if q.MinConfidence != nil {
		add("confidence >= $%d", *q.MinConfidence)
	}
	if q.MaxConfidence != nil {
		add("confidence <= $%d", *q.MaxConfidence)
	}
	if q.DateFrom != nil {
		add("created_at >= $%d", *q.DateFrom)
	}
	if q.DateTo != nil {
		add("created_at < $%d", *q.DateTo)
	}
	if q.BatchOnly {
		conds = append(conds, "batch_job_id is not null")
	}
	return strings.Join(conds, " and "), args
}

func (r *queries) List(
	ctx context.Context, userID string, q domain.Query, limit, offset int,
) ([]domain.ScanResult, int, error) {
	cond, args := where(q)
	args = append([]any{userID}, args...)

	var total int
	if err := r.q.QueryRow(ctx,
		`select count(*) from scans where `+cond, args...,
	).Scan(&total); err != nil {
		return nil, 0, err
	}

	sql := fmt.Sprintf(`
select `+scanCols+`
from scans
where %s
order by created_at desc, id desc
limit $%d offset $%d
`, cond, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []domain.ScanResult
	for rows.Next() {
		var s domain.ScanResult
		if err := rows.Scan(
			&s.ID, &s.UserID, &s.Domain, &s.Verdict, &s.Confidence, &s.Method, &s.Reason,
			&s.Stage, &s.LatencyMS, &s.Features, &s.TyposquatTarget, &s.EditDistance,
			&s.SafelistTier, &s.BatchJobID, &s.CreatedAt,
		); err != nil {
			return nil, 0, err
		}
		out = append(out, s)
	}
	return out, total, rows.Err()
}

func (r *queries) Get(ctx context.Context, userID, scanID string) (domain.ScanResult, error) {
	const sql = `select ` + scanCols + ` from scans where id = $1 and user_id = $2`
	var s domain.ScanResult
	err := r.q.QueryRow(ctx, sql, scanID, userID).Scan(
		&s.ID, &s.UserID, &s.Domain, &s.Verdict, &s.Confidence, &s.Method, &s.Reason,
		&s.Stage, &s.LatencyMS, &s.Features, &s.TyposquatTarget, &s.EditDistance,
		&s.SafelistTier, &s.BatchJobID, &s.CreatedAt,
	)
	if err != nil {
		return domain.ScanResult{}, perr.NotFoundf("scan %s not found", scanID)
	}
	return s, nil
}

func (r *queries) Delete(ctx context.Context, userID, scanID string) error {
	tag, err := r.q.Exec(ctx, `delete from scans where id = $1 and user_id = $2`, scanID, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return perr.NotFoundf("scan %s not found", scanID)
	}
	return nil
}
