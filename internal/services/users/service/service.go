// Package service implements account statistics, activity and profile reads
package service

import (
	"context"

	"dnsguard/internal/modkit/repokit"
	perr "dnsguard/internal/platform/errors"
	"dnsguard/internal/platform/logger"

	identdom "dnsguard/internal/services/ident/domain"
	"dnsguard/internal/services/users/domain"
	"dnsguard/internal/services/users/repo"
)

// Service defines the service contract for account reads
type Service interface{ domain.ServicePort }

// LookupFunc fetches one account by id, wired from the ident module
type LookupFunc func(ctx context.Context, id string) (identdom.User, error)

// Svc implements the Service interface
type Svc struct {
	Repo repo.Repo

	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
	lookup LookupFunc
	log    *logger.Logger
}

// New creates a new users service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], lookup LookupFunc) *Svc {
	if db == nil {
		panic("users.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("users.Service requires a non nil Repo binder")
	}
	if lookup == nil {
		panic("users.Service requires a non nil account lookup")
	}
	return &Svc{
		Repo:   binder.Bind(db),
		binder: binder,
		db:     db,
		lookup: lookup,
		log:    logger.Named("users"),
	}
}

// Statistics returns the caller's scanning footprint
func (s *Svc) Statistics(ctx context.Context, userID string) (domain.Statistics, error) {
	return s.Repo.Statistics(ctx, userID)
}

// Activity pages through the caller's audit trail, newest first
func (s *Svc) Activity(
	ctx context.Context, userID string, q domain.ActivityQuery,
) ([]domain.ActivityEntry, int, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = 20
	}
	if q.PageSize > 200 {
		q.PageSize = 200
	}
	return s.Repo.ListActivity(ctx, userID, q.PageSize, (q.Page-1)*q.PageSize)
}

// Profile returns an account. Callers see their own, admins see any.
func (s *Svc) Profile(ctx context.Context, callerID, callerRole, targetID string) (identdom.User, error) {
	if callerID != targetID && callerRole != identdom.RoleAdmin {
		return identdom.User{}, perr.Forbiddenf("not authorized to view this profile")
	}
	return s.lookup(ctx, targetID)
}
