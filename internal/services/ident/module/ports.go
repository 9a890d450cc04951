package module

import (
	"context"

	"dnsguard/internal/modkit/httpkit"
	identdom "dnsguard/internal/services/ident/domain"
)

// Ports exposes what other modules need from ident
type Ports struct {
	// Tokens verifies an access token for the auth middleware
	Tokens httpkit.TokenFunc
	// Lookup fetches one account by id for profile views
	Lookup func(ctx context.Context, id string) (identdom.User, error)
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
