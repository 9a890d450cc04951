// Package service contains history workflows and export rendering
package service

import (
	"context"
	"time"

	"dnsguard/internal/modkit/repokit"

	"dnsguard/internal/services/history/domain"
	"dnsguard/internal/services/history/repo"
)

// exportCap bounds how many rows one export may pull
const exportCap = 10000

// Service defines the service contract for history
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
}

// New creates a new history service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("history.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("history.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db}
}

// List returns a page of the caller's scans, newest first
func (s *Svc) List(ctx context.Context, userID string, q domain.Query) ([]domain.ScanResult, int, error) {
	page, size := q.Page, q.PageSize
	if page < 1 {
		page = 1
	}
	if size < 1 || size > 500 {
		size = 50
	}
	return s.Repo.List(ctx, userID, q, size, (page-1)*size)
}

// Get returns one of the caller's scans
func (s *Svc) Get(ctx context.Context, userID, scanID string) (domain.ScanResult, error) {
	return s.Repo.Get(ctx, userID, scanID)
}

// Delete removes one of the caller's scans
func (s *Svc) Delete(ctx context.Context, userID, scanID string) error {
	return s.Repo.Delete(ctx, userID, scanID)
}

// Export renders the caller's filtered history as csv or json
func (s *Svc) Export(ctx context.Context, userID string, in domain.ExportInput) (domain.Export, error) {
	q := domain.Query{
		Domain:    in.Domain,
		Verdict:   in.Verdict,
		Method:    in.Method,
		BatchOnly: in.BatchOnly,
	}
	if in.DateFrom != nil {
		if t, err := time.Parse("2006-01-02", *in.DateFrom); err == nil {
			q.DateFrom = &t
		}
	}
	if in.DateTo != nil {
		if t, err := time.Parse("2006-01-02", *in.DateTo); err == nil {
			// inclusive end date
			t = t.AddDate(0, 0, 1)
			q.DateTo = &t
		}
	}

	rows, _, err := s.Repo.List(ctx, userID, q, exportCap, 0)
	if err != nil {
		return domain.Export{}, err
	}
	stamp := time.Now().UTC().Format("20060102-150405")

	if in.Format == "json" {
		body, err := renderJSON(rows)
		if err != nil {
			return domain.Export{}, err
		}
		return domain.Export{
			Filename:    "scan-history-" + stamp + ".json",
			ContentType: "application/json",
			Body:        body,
		}, nil
	}

	body, err := renderCSV(rows)
	if err != nil {
		return domain.Export{}, err
	}
	return domain.Export{
		Filename:    "scan-history-" + stamp + ".csv",
		ContentType: "text/csv",
		Body:        body,
	}, nil
}
