package module

import (
	"context"

	safelistdom "dnsguard/internal/services/safelist/domain"
)

// Ports exposes the safelist surface plus the snapshot reload hook
// other modules use to refresh the classifier
type Ports struct {
	Port   safelistdom.ServicePort
	Reload func(ctx context.Context) (int, error)
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
