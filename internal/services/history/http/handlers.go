// Package http provides http transport for scan history
package http

import (
	stdhttp "net/http"
	"strconv"
	"time"

	"dnsguard/internal/modkit/httpkit"
	phttp "dnsguard/internal/platform/net/http"
	"dnsguard/internal/platform/net/http/bind"

	"dnsguard/internal/services/history/domain"
	svc "dnsguard/internal/services/history/service"
)

// Register mounts history endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/", h.list)
	httpkit.Get(r, "/{scanID}", h.get)
	httpkit.Delete(r, "/{scanID}", h.remove)
	r.Post("/export", h.export)
}

type handlers struct{ svc svc.Service }

// @Summary Page through the caller's scan history
// @Tags History
// @Produce json
// @Param domain query string false "Substring match on domain"
// @Param verdict query string false "malicious, suspicious or benign"
// @Param method query string false "Classification method"
// @Param min_confidence query number false "Lower confidence bound"
// @Param max_confidence query number false "Upper confidence bound"
// @Param batch_only query bool false "Only batch results"
// @Param page query int false "Page (1-based)"
// @Param page_size query int false "Page size"
// @Success 200 {array} domain.ScanResult "ok"
// @Router /history [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	q := queryFromRequest(r)
	items, total, err := h.svc.List(r.Context(), uid, q)
	if err != nil {
		return nil, err
	}
	return httpkit.List(items, total, q.Page, q.PageSize, ""), nil
}

// @Summary One scan by id
// @Tags History
// @Produce json
// @Param scanID path string true "Scan ID"
// @Success 200 {object} domain.ScanResult "ok"
// @Failure 404 {object} httpkit.Envelope "not found"
// @Router /history/{scanID} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Get(r.Context(), uid, httpkit.Param(r, "scanID"))
}

// @Summary Delete one scan
// @Tags History
// @Produce json
// @Param scanID path string true "Scan ID"
// @Success 200 {object} map[string]string "deleted"
// @Failure 404 {object} httpkit.Envelope "not found"
// @Router /history/{scanID} [delete]
func (h *handlers) remove(r *stdhttp.Request) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	if err := h.svc.Delete(r.Context(), uid, httpkit.Param(r, "scanID")); err != nil {
		return nil, err
	}
	return map[string]string{"status": "deleted"}, nil
}

// @Summary Export filtered history as an attachment
// @Tags History
// @Accept json
// @Produce text/csv
// @Param payload body domain.ExportInput true "Format and filters"
// @Success 200 {string} string "file"
// @Router /history/export [post]
func (h *handlers) export(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	uid, err := httpkit.User(r)
	if err != nil {
		phttp.RespondError(w, r, err)
		return
	}
	in, err := bind.ParseJSON[domain.ExportInput](r)
	if err != nil {
		phttp.RespondError(w, r, err)
		return
	}
	exp, err := h.svc.Export(r.Context(), uid, in)
	if err != nil {
		phttp.RespondError(w, r, err)
		return
	}

	// raw attachment, not the JSON envelope
	w.Header().Set("Content-Type", exp.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+exp.Filename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(exp.Body)))
	w.WriteHeader(stdhttp.StatusOK)
	_, _ = w.Write(exp.Body)
}

func queryFromRequest(r *stdhttp.Request) domain.Query {
	q := domain.Query{
		Domain:    httpkit.QueryString(r, "domain", ""),
		Verdict:   httpkit.QueryString(r, "verdict", ""),
		Method:    httpkit.QueryString(r, "method", ""),
		BatchOnly: httpkit.QueryBool(r, "batch_only", false),
		Page:      httpkit.QueryInt(r, "page", 1),
		PageSize:  httpkit.QueryInt(r, "page_size", 50),
	}
	if v := httpkit.QueryString(r, "min_confidence", ""); v != "" {
		f := httpkit.QueryFloat(r, "min_confidence", 0)
		q.MinConfidence = &f
	}
	if v := httpkit.QueryString(r, "max_confidence", ""); v != "" {
		f := httpkit.QueryFloat(r, "max_confidence", 1)
		q.MaxConfidence = &f
	}
	if v := httpkit.QueryString(r, "date_from", ""); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			q.DateFrom = &t
		}
	}
	if v := httpkit.QueryString(r, "date_to", ""); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			end := t.AddDate(0, 0, 1) // inclusive end date
			q.DateTo = &end
		}
	}
	return q
}
