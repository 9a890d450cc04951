package module

import (
	"context"

	scandom "dnsguard/internal/services/scan/domain"
	scansvc "dnsguard/internal/services/scan/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptScanPort adapts the scan service to the domain port interface
type adaptScanPort struct{ svc scansvc.Service }

// ScanSingle implements the domain ServicePort interface
func (a adaptScanPort) ScanSingle(ctx context.Context, userID string, in scandom.SingleInput) (scandom.ScanResult, error) {
	return a.svc.ScanSingle(ctx, userID, in)
}

// SubmitBatch implements the domain ServicePort interface
func (a adaptScanPort) SubmitBatch(ctx context.Context, userID string, in scandom.BatchInput) (scandom.BatchAccepted, error) {
	return a.svc.SubmitBatch(ctx, userID, in)
}

// JobStatus implements the domain ServicePort interface
func (a adaptScanPort) JobStatus(ctx context.Context, userID, jobID string) (scandom.JobStatusView, error) {
	return a.svc.JobStatus(ctx, userID, jobID)
}

// JobResults implements the domain ServicePort interface
func (a adaptScanPort) JobResults(
	ctx context.Context, userID, jobID string, q scandom.ResultsQuery,
) ([]scandom.ScanResult, int, error) {
	return a.svc.JobResults(ctx, userID, jobID, q)
}
