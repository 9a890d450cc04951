package domain

import (
	"context"

	identdom "dnsguard/internal/services/ident/domain"
)

// ServicePort is the account read surface consumed by HTTP
type ServicePort interface {
	Statistics(ctx context.Context, userID string) (Statistics, error)
	Activity(ctx context.Context, userID string, q ActivityQuery) ([]ActivityEntry, int, error)
	Profile(ctx context.Context, callerID, callerRole, targetID string) (identdom.User, error)
}
