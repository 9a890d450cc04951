// Package service contains the scan workflows and the batch runner
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"dnsguard/internal/core/classifier"
	"dnsguard/internal/modkit/repokit"
	"dnsguard/internal/platform/logger"

	"dnsguard/internal/services/scan/domain"
	"dnsguard/internal/services/scan/repo"
)

// Service defines the service contract for scans
type Service interface{ domain.ServicePort }

// Config controls batch admission and the runner
type Config struct {
	MaxBatch        int
	Workers         int
	CheckpointEvery int
}

func (c Config) withDefaults() Config {
	if c.MaxBatch <= 0 {
		c.MaxBatch = 10000
	}
	if c.Workers <= 0 {
		c.Workers = 4
	}
	if c.CheckpointEvery <= 0 {
		c.CheckpointEvery = 10
	}
	return c
}

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner

	det classifier.Detector
	cfg Config
	sem chan struct{}
	log *logger.Logger
}

// New creates a new scan service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], det classifier.Detector, cfg Config) *Svc {
	if db == nil {
		panic("scan.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("scan.Service requires a non nil Repo binder")
	}
	if det == nil {
		panic("scan.Service requires a non nil Detector")
	}
	cfg = cfg.withDefaults()
	return &Svc{
		Repo:   binder.Bind(db),
		binder: binder,
		db:     db,
		det:    det,
		cfg:    cfg,
		sem:    make(chan struct{}, cfg.Workers),
		log:    logger.Named("scan"),
	}
}

// ScanSingle classifies one domain synchronously and persists the result
func (s *Svc) ScanSingle(ctx context.Context, userID string, in domain.SingleInput) (domain.ScanResult, error) {
	if _, err := admit([]string{in.Domain}, s.cfg.MaxBatch); err != nil {
		return domain.ScanResult{}, err
	}
	out := s.det.PredictOne(in.Domain, useSafelist(in.UseSafelist))

	row := resultFromOutcome(out, userID, nil)
	if err := s.Repo.InsertScan(ctx, row); err != nil {
		return domain.ScanResult{}, err
	}
	return row, nil
}

// SubmitBatch admits the list, records a pending job and hands it to the runner
// the call returns as soon as the job row exists
func (s *Svc) SubmitBatch(ctx context.Context, userID string, in domain.BatchInput) (domain.BatchAccepted, error) {
	domains, err := admit(in.Domains, s.cfg.MaxBatch)
	if err != nil {
		return domain.BatchAccepted{}, err
	}

	job := domain.Job{
		ID:           uuid.NewString(),
		UserID:       userID,
		TotalDomains: len(domains),
		Status:       domain.JobPending,
		CreatedAt:    time.Now().UTC(),
	}
	if in.Filename != "" {
		f := in.Filename
		job.Filename = &f
	}
	if err := s.Repo.InsertJob(ctx, job); err != nil {
		return domain.BatchAccepted{}, err
	}

	// the runner outlives the request, so detach from its cancellation
	bg := context.WithoutCancel(ctx)
	use := useSafelist(in.UseSafelist)
	go func() {
		s.sem <- struct{}{}
		defer func() { <-s.sem }()
		s.runJob(bg, job.ID, userID, domains, use)
	}()

	return domain.BatchAccepted{
		JobID:        job.ID,
		Status:       domain.JobPending,
		TotalDomains: len(domains),
	}, nil
}

// JobStatus returns the owner's view of a job with derived progress
func (s *Svc) JobStatus(ctx context.Context, userID, jobID string) (domain.JobStatusView, error) {
	j, err := s.Repo.GetJob(ctx, userID, jobID)
	if err != nil {
		return domain.JobStatusView{}, err
	}
	return domain.JobStatusView{
		Job:                j,
		ProgressPercentage: progress(j.ProcessedDomains, j.TotalDomains),
	}, nil
}

// JobResults returns a page of the job's persisted scans in storage order
// safe to call while the job is still running
func (s *Svc) JobResults(
	ctx context.Context, userID, jobID string, q domain.ResultsQuery,
) ([]domain.ScanResult, int, error) {
	// ownership gate first so a foreign job never leaks row counts
	if _, err := s.Repo.GetJob(ctx, userID, jobID); err != nil {
		return nil, 0, err
	}

	page, size := q.Page, q.PageSize
	if page < 1 {
		page = 1
	}
	if size < 1 || size > 500 {
		size = 50
	}
	return s.Repo.ListJobScans(ctx, userID, jobID, size, (page-1)*size)
}

func progress(processed, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(processed) / float64(total) * 100
}

func useSafelist(p *bool) bool {
	if p == nil {
		return true
	}
	return *p
}

func resultFromOutcome(out classifier.Outcome, userID string, jobID *string) domain.ScanResult {
	var stage *string
	if out.Stage != "" {
		st := out.Stage
		stage = &st
	}
	return domain.ScanResult{
		ID:              uuid.NewString(),
		UserID:          userID,
		Domain:          out.Domain,
		Verdict:         out.Verdict,
		Confidence:      out.Confidence,
		Method:          out.Method,
		Reason:          out.Reason,
		Stage:           stage,
		LatencyMS:       out.LatencyMS,
		Features:        out.Features,
		TyposquatTarget: out.TyposquatTarget,
		EditDistance:    out.EditDistance,
		SafelistTier:    out.SafelistTier,
		BatchJobID:      jobID,
		CreatedAt:       time.Now().UTC(),
	}
}
