// Package service implements safelist management and classifier refresh
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"dnsguard/internal/core/classifier"
	"dnsguard/internal/modkit/repokit"
	perr "dnsguard/internal/platform/errors"
	"dnsguard/internal/platform/logger"

	identdom "dnsguard/internal/services/ident/domain"
	"dnsguard/internal/services/safelist/domain"
	"dnsguard/internal/services/safelist/repo"
)

// Service defines the service contract for the safelist
type Service interface{ domain.ServicePort }

const importCap = 1000

// Svc implements the Service interface
type Svc struct {
	Repo repo.Repo

	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
	cls    *classifier.Classifier
	log    *logger.Logger
}

// New creates a new safelist service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], cls *classifier.Classifier) *Svc {
	if db == nil {
		panic("safelist.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("safelist.Service requires a non nil Repo binder")
	}
	if cls == nil {
		panic("safelist.Service requires a non nil Classifier")
	}
	return &Svc{
		Repo:   binder.Bind(db),
		binder: binder,
		db:     db,
		cls:    cls,
		log:    logger.Named("safelist"),
	}
}

// List pages through safelist entries
func (s *Svc) List(ctx context.Context, q domain.Query) ([]domain.Entry, int, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = 50
	}
	if q.PageSize > 500 {
		q.PageSize = 500
	}
	return s.Repo.List(ctx, q, q.PageSize, (q.Page-1)*q.PageSize)
}

// Create adds one domain as a user entry and refreshes the classifier snapshot
func (s *Svc) Create(ctx context.Context, userID string, in domain.CreateInput) (domain.Entry, error) {
	host := classifier.NormalizeDomain(in.Domain)
	if host == "" {
		return domain.Entry{}, perr.Validationf("domain is empty after normalization")
	}
	e := domain.Entry{
		ID:        uuid.NewString(),
		Domain:    host,
		Tier:      in.Tier,
		Source:    domain.SourceUser,
		AddedBy:   &userID,
		Notes:     in.Notes,
		CreatedAt: time.Now().UTC(),
	}
	inserted, err := s.Repo.Insert(ctx, e)
	if err != nil {
		return domain.Entry{}, err
	}
	if !inserted {
		return domain.Entry{}, perr.Conflictf("domain %s is already safelisted", host)
	}
	s.refresh(ctx)
	return e, nil
}

// Update patches an entry. System rows may only be touched by admins.
func (s *Svc) Update(ctx context.Context, userID, role, id string, in domain.UpdateInput) (domain.Entry, error) {
	if in.Tier == nil && in.Notes == nil {
		return domain.Entry{}, perr.Validationf("nothing to update")
	}
	cur, err := s.Repo.Get(ctx, id)
	if err != nil {
		return domain.Entry{}, err
	}
	if cur.Source == domain.SourceSystem && role != identdom.RoleAdmin {
		return domain.Entry{}, perr.Forbiddenf("system safelist entries are admin managed")
	}
	e, err := s.Repo.Update(ctx, id, in.Tier, in.Notes)
	if err != nil {
		return domain.Entry{}, err
	}
	s.refresh(ctx)
	return e, nil
}

// Delete removes an entry under the same system-row rule as Update
func (s *Svc) Delete(ctx context.Context, userID, role, id string) error {
	cur, err := s.Repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if cur.Source == domain.SourceSystem && role != identdom.RoleAdmin {
		return perr.Forbiddenf("system safelist entries are admin managed")
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	s.refresh(ctx)
	return nil
}

// Import bulk loads entries, skipping duplicates instead of failing the batch
func (s *Svc) Import(ctx context.Context, userID string, in domain.ImportInput) (domain.ImportReport, error) {
	if len(in.Entries) == 0 {
		return domain.ImportReport{}, perr.Validationf("no entries provided")
	}
	if len(in.Entries) > importCap {
		return domain.ImportReport{}, perr.BatchTooLargef(
			"import of %d entries exceeds limit of %d", len(in.Entries), importCap,
		)
	}

	var rep domain.ImportReport
	now := time.Now().UTC()
	for _, item := range in.Entries {
		host := classifier.NormalizeDomain(item.Domain)
		if host == "" {
			rep.Skipped++
			continue
		}
		inserted, err := s.Repo.Insert(ctx, domain.Entry{
			ID:        uuid.NewString(),
			Domain:    host,
			Tier:      item.Tier,
			Source:    domain.SourceImport,
			AddedBy:   &userID,
			Notes:     item.Notes,
			CreatedAt: now,
		})
		if err != nil {
			return domain.ImportReport{}, err
		}
		if inserted {
			rep.Imported++
		} else {
			rep.Skipped++
		}
	}
	if rep.Imported > 0 {
		s.refresh(ctx)
	}
	return rep, nil
}

// Populate seeds the built-in trusted set as system rows.
// Rerunning is safe, rows already present are skipped.
func (s *Svc) Populate(ctx context.Context, userID string) (domain.ImportReport, error) {
	var rep domain.ImportReport
	now := time.Now().UTC()
	for tier, categories := range seedCatalog {
		for category, domains := range categories {
			for _, host := range domains {
				inserted, err := s.Repo.Insert(ctx, domain.Entry{
					ID:        uuid.NewString(),
					Domain:    host,
					Tier:      tier,
					Source:    domain.SourceSystem,
					AddedBy:   &userID,
					Notes:     "category: " + category,
					CreatedAt: now,
				})
				if err != nil {
					return domain.ImportReport{}, err
				}
				if inserted {
					rep.Imported++
				} else {
					rep.Skipped++
				}
			}
		}
	}
	if rep.Imported > 0 {
		s.refresh(ctx)
	}
	return rep, nil
}

// ExportCSV renders the full safelist as a CSV attachment body
func (s *Svc) ExportCSV(ctx context.Context) ([]byte, error) {
	entries, err := s.Repo.All(ctx)
	if err != nil {
		return nil, err
	}
	return renderCSV(entries)
}

// Stats reports safelist composition and the scan hit rate
func (s *Svc) Stats(ctx context.Context) (domain.Stats, error) {
	return s.Repo.Stats(ctx)
}

// Reload rebuilds the classifier's safelist snapshot from the database
func (s *Svc) Reload(ctx context.Context) (int, error) {
	tiers, err := s.Repo.Tiers(ctx)
	if err != nil {
		return 0, err
	}
	snap := classifier.NewSafelist(tiers)
	s.cls.ReloadSafelist(snap)
	return snap.Len(), nil
}

// refresh swaps the classifier snapshot after a committed write.
// The write already succeeded, so a refresh failure is only logged
// and the stale snapshot stays live until the next write or reload.
func (s *Svc) refresh(ctx context.Context) {
	if _, err := s.Reload(ctx); err != nil {
		s.log.Warn().Err(err).Msg("safelist snapshot refresh failed")
	}
}
