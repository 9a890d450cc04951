// Package http provides http transport for scans
package http

import (
	stdhttp "net/http"

	"dnsguard/internal/modkit/httpkit"
	"dnsguard/internal/services/scan/domain"
	svc "dnsguard/internal/services/scan/service"
)

// Register mounts scan endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.SingleInput](r, "/single", h.single)
	httpkit.PostJSON[domain.BatchInput](r, "/batch", h.batch)
	httpkit.Get(r, "/batch/{jobID}", h.status)
	httpkit.Get(r, "/batch/{jobID}/results", h.results)
}

type handlers struct{ svc svc.Service }

// @Summary Classify one domain synchronously
// @Tags Scan
// @Accept json
// @Produce json
// @Param payload body domain.SingleInput true "Domain"
// @Success 200 {object} domain.ScanResult "ok"
// @Router /scan/single [post]
func (h *handlers) single(r *stdhttp.Request, in domain.SingleInput) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	return h.svc.ScanSingle(r.Context(), uid, in)
}

// @Summary Submit a batch of domains for scanning
// @Tags Scan
// @Accept json
// @Produce json
// @Param payload body domain.BatchInput true "Batch"
// @Success 202 {object} domain.BatchAccepted "accepted"
// @Failure 400 {object} httpkit.Envelope "empty or oversized batch"
// @Router /scan/batch [post]
func (h *handlers) batch(r *stdhttp.Request, in domain.BatchInput) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	acc, err := h.svc.SubmitBatch(r.Context(), uid, in)
	if err != nil {
		return nil, err
	}
	return httpkit.Accepted(acc), nil
}

// @Summary Batch job status with derived progress
// @Tags Scan
// @Produce json
// @Param jobID path string true "Job ID"
// @Success 200 {object} domain.JobStatusView "ok"
// @Failure 404 {object} httpkit.Envelope "not found"
// @Router /scan/batch/{jobID} [get]
func (h *handlers) status(r *stdhttp.Request) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	return h.svc.JobStatus(r.Context(), uid, httpkit.Param(r, "jobID"))
}

// @Summary Page through a job's results
// @Tags Scan
// @Produce json
// @Param jobID path string true "Job ID"
// @Param page query int false "Page (1-based)"
// @Param page_size query int false "Page size"
// @Success 200 {array} domain.ScanResult "ok"
// @Failure 404 {object} httpkit.Envelope "not found"
// @Router /scan/batch/{jobID}/results [get]
func (h *handlers) results(r *stdhttp.Request) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	q := domain.ResultsQuery{
		Page:     httpkit.QueryInt(r, "page", 1),
		PageSize: httpkit.QueryInt(r, "page_size", 50),
	}
	items, total, err := h.svc.JobResults(r.Context(), uid, httpkit.Param(r, "jobID"), q)
	if err != nil {
		return nil, err
	}
	return httpkit.List(items, total, q.Page, q.PageSize, ""), nil
}
