package module

import (
	"context"

	identdom "dnsguard/internal/services/ident/domain"
	usersdom "dnsguard/internal/services/users/domain"
	userssvc "dnsguard/internal/services/users/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptUsersPort adapts the users service to the domain port interface
type adaptUsersPort struct{ svc userssvc.Service }

// Statistics implements the domain ServicePort interface
func (a adaptUsersPort) Statistics(ctx context.Context, userID string) (usersdom.Statistics, error) {
	return a.svc.Statistics(ctx, userID)
}

// Activity implements the domain ServicePort interface
func (a adaptUsersPort) Activity(
	ctx context.Context, userID string, q usersdom.ActivityQuery,
) ([]usersdom.ActivityEntry, int, error) {
	return a.svc.Activity(ctx, userID, q)
}

// Profile implements the domain ServicePort interface
func (a adaptUsersPort) Profile(
	ctx context.Context, callerID, callerRole, targetID string,
) (identdom.User, error) {
	return a.svc.Profile(ctx, callerID, callerRole, targetID)
}
