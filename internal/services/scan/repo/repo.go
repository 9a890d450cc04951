// Package repo provides postgres access for scans and batch jobs
package repo

import (
	"context"
	"errors"
	"time"

	perr "dnsguard/internal/platform/errors"
	"dnsguard/internal/platform/store"

	"dnsguard/internal/modkit/repokit"
	"dnsguard/internal/services/scan/domain"
)

// Repo defines the repository contract for the scan service
type Repo interface {
	InsertJob(ctx context.Context, j domain.Job) error
	MarkJobProcessing(ctx context.Context, jobID string) error
	CheckpointJob(ctx context.Context, jobID string, processed, malicious, suspicious, benign int) error
	CompleteJob(ctx context.Context, jobID string, processed, malicious, suspicious, benign int) error
	FailJob(ctx context.Context, jobID, message string) error
	GetJob(ctx context.Context, userID, jobID string) (domain.Job, error)

	InsertScan(ctx context.Context, s domain.ScanResult) error
	ListJobScans(ctx context.Context, userID, jobID string, limit, offset int) ([]domain.ScanResult, int, error)
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

func (r *queries) InsertJob(ctx context.Context, j domain.Job) error {
	const sql = `
insert into batch_jobs (id, user_id, filename, total_domains, status, created_at)
values ($1, $2, $3, $4, $5, $6)
`
	_, err := r.q.Exec(ctx, sql, j.ID, j.UserID, j.Filename, j.TotalDomains, j.Status, j.CreatedAt)
	return err
}

func (r *queries) MarkJobProcessing(ctx context.Context, jobID string) error {
	_, err := r.q.Exec(ctx,
		`update batch_jobs set status = $2 where id = $1`,
		jobID, domain.JobProcessing,
	)
	return err
}

func (r *queries) CheckpointJob(
	ctx context.Context, jobID string, processed, malicious, suspicious, benign int,
) error {
	const sql = `
update batch_jobs
set processed_domains = $2, malicious_count = $3, suspicious_count = $4, benign_count = $5
where id = $1
`
	_, err := r.q.Exec(ctx, sql, jobID, processed, malicious, suspicious, benign)
	return err
}

func (r *queries) CompleteJob(
	ctx context.Context, jobID string, processed, malicious, suspicious, benign int,
) error {
	const sql = `
update batch_jobs
set processed_domains = $2, malicious_count = $3, suspicious_count = $4, benign_count = $5,
status = $6, completed_at = $7
where id = $1
`
	_, err := r.q.Exec(ctx, sql,
		jobID, processed, malicious, suspicious, benign, domain.JobCompleted, time.Now().UTC(),
	)
	return err
}

func (r *queries) FailJob(ctx context.Context, jobID, message string) error {
	const sql = `
update batch_jobs set status = $2, error_message = $3, completed_at = $4 where id = $1
`
	_, err := r.q.Exec(ctx, sql, jobID, domain.JobFailed, message, time.Now().UTC())
	return err
}

func (r *queries) GetJob(ctx context.Context, userID, jobID string) (domain.Job, error) {
	const sql = `
select id::text, user_id::text, filename, total_domains, processed_domains,
malicious_count, suspicious_count, benign_count, status, error_message, created_at, completed_at
from batch_jobs
where id = $1 and user_id = $2
`
	j, err := store.One(ctx, r.q, scanJob, sql, jobID, userID)
	if errors.Is(err, perr.ErrNotFound) {
		// missing and foreign-owned jobs are indistinguishable on purpose
		return domain.Job{}, perr.NotFoundf("batch job %s not found", jobID)
	}
	return j, err
}

func scanJob(row store.Row) (domain.Job, error) {
	var j domain.Job
	err := row.Scan(
		&j.ID,
		&j.UserID,
		&j.Filename,
		&j.TotalDomains,
		&j.ProcessedDomains,
		&j.MaliciousCount,
		&j.SuspiciousCount,
		&j.BenignCount,
		&j.Status,
		&j.ErrorMessage,
		&j.CreatedAt,
		&j.CompletedAt,
	)
	return j, err
}

func (r *queries) InsertScan(ctx context.Context, s domain.ScanResult) error {
	const sql = `
insert into scans (
	id, user_id, domain, verdict, confidence, method, reason, stage, latency_ms,
	features, typosquat_target, edit_distance, safelist_tier, batch_job_id, created_at
)
values ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
`
	_, err := r.q.Exec(ctx, sql,
		s.ID, s.UserID, s.Domain, s.Verdict, s.Confidence, s.Method, s.Reason, s.Stage,
		s.LatencyMS, s.Features, s.TyposquatTarget, s.EditDistance, s.SafelistTier,
		s.BatchJobID, s.CreatedAt,
	)
	return err
}

func (r *queries) ListJobScans(
	ctx context.Context, userID, jobID string, limit, offset int,
) ([]domain.ScanResult, int, error) {
	var total int
	if err := r.q.QueryRow(ctx,
		`select count(*) from scans where batch_job_id = $1 and user_id = $2`,
		jobID, userID,
	).Scan(&total); err != nil {
		return nil, 0, err
	}

	const sql = `
select id::text, user_id::text, domain, verdict, confidence, method, reason, stage,
latency_ms, features, typosquat_target, edit_distance, safelist_tier, batch_job_id::text, created_at
from scans
where batch_job_id = $1 and user_id = $2
order by created_at asc, id asc
limit $3 offset $4
`
	rows, err := r.q.Query(ctx, sql, jobID, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []domain.ScanResult
	for rows.Next() {
		var s domain.ScanResult
		if err := rows.Scan(
			&s.ID,
			&s.UserID,
			&s.Domain,
			&s.Verdict,
			&s.Confidence,
			&s.Method,
			&s.Reason,
			&s.Stage,
			&s.LatencyMS,
			&s.Features,
			&s.TyposquatTarget,
			&s.EditDistance,
			&s.SafelistTier,
			&s.BatchJobID,
			&s.CreatedAt,
		); err != nil {
			return nil, 0, err
		}
		out = append(out, s)
	}
	return out, total, rows.Err()
}
