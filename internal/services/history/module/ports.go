package module

import (
	"context"

	historydom "dnsguard/internal/services/history/domain"
	historysvc "dnsguard/internal/services/history/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptHistoryPort adapts the history service to the domain port interface
type adaptHistoryPort struct{ svc historysvc.Service }

// List implements the domain ServicePort interface
func (a adaptHistoryPort) List(
	ctx context.Context, userID string, q historydom.Query,
) ([]historydom.ScanResult, int, error) {
	return a.svc.List(ctx, userID, q)
}

// Get implements the domain ServicePort interface
func (a adaptHistoryPort) Get(ctx context.Context, userID, scanID string) (historydom.ScanResult, error) {
	return a.svc.Get(ctx, userID, scanID)
}

// Delete implements the domain ServicePort interface
func (a adaptHistoryPort) Delete(ctx context.Context, userID, scanID string) error {
	return a.svc.Delete(ctx, userID, scanID)
}

// Export implements the domain ServicePort interface
func (a adaptHistoryPort) Export(
	ctx context.Context, userID string, in historydom.ExportInput,
) (historydom.Export, error) {
	return a.svc.Export(ctx, userID, in)
}
