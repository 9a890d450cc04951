package module

import (
	"context"

	modelsdom "dnsguard/internal/services/models/domain"
	modelssvc "dnsguard/internal/services/models/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptModelsPort adapts the models service to the domain port interface
type adaptModelsPort struct{ svc modelssvc.Service }

// Info implements the domain ServicePort interface
func (a adaptModelsPort) Info(ctx context.Context) (modelsdom.Info, error) {
	return a.svc.Info(ctx)
}

// Features implements the domain ServicePort interface
func (a adaptModelsPort) Features(ctx context.Context) ([]string, error) {
	return a.svc.Features(ctx)
}

// Reload implements the domain ServicePort interface
func (a adaptModelsPort) Reload(ctx context.Context) (modelsdom.ReloadReport, error) {
	return a.svc.Reload(ctx)
}
