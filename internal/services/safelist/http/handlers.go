// Package http provides http transport for safelist management
package http

import (
	"fmt"
	stdhttp "net/http"
	"time"

	"dnsguard/internal/modkit/httpkit"
	phttp "dnsguard/internal/platform/net/http"
	"dnsguard/internal/platform/net/http/bind"

	"dnsguard/internal/services/safelist/domain"
	svc "dnsguard/internal/services/safelist/service"
)

// Register mounts safelist endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/", h.list)
	httpkit.Post(r, "/", h.create)
	httpkit.PutJSON[domain.UpdateInput](r, "/{entryID}", h.update)
	httpkit.Delete(r, "/{entryID}", h.remove)
	httpkit.Post(r, "/import", h.importBulk)
	httpkit.Post(r, "/populate", h.populate)
	r.Get("/export", h.export)
	httpkit.Get(r, "/stats", h.stats)
}

type handlers struct{ svc svc.Service }

// @Summary Page through safelist entries
// @Tags Safelist
// @Produce json
// @Param tier query string false "tier1, tier2 or tier3"
// @Param search query string false "Substring match on domain"
// @Param page query int false "Page (1-based)"
// @Param page_size query int false "Page size"
// @Success 200 {array} domain.Entry "ok"
// @Router /safelist [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	if _, err := httpkit.User(r); err != nil {
		return nil, err
	}
	q := domain.Query{
		Tier:     httpkit.QueryString(r, "tier", ""),
		Search:   httpkit.QueryString(r, "search", ""),
		Page:     httpkit.QueryInt(r, "page", 1),
		PageSize: httpkit.QueryInt(r, "page_size", 50),
	}
	items, total, err := h.svc.List(r.Context(), q)
	if err != nil {
		return nil, err
	}
	return httpkit.List(items, total, q.Page, q.PageSize, ""), nil
}

// @Summary Add a domain to the safelist
// @Tags Safelist
// @Accept json
// @Produce json
// @Param payload body domain.CreateInput true "Entry to add"
// @Success 201 {object} domain.Entry "created"
// @Failure 409 {object} httpkit.Envelope "already safelisted"
// @Router /safelist [post]
func (h *handlers) create(r *stdhttp.Request) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	in, err := bind.ParseJSON[domain.CreateInput](r)
	if err != nil {
		return nil, err
	}
	e, err := h.svc.Create(r.Context(), uid, in)
	if err != nil {
		return nil, err
	}
	return httpkit.Created(e), nil
}

// @Summary Update tier or notes on an entry
// @Tags Safelist
// @Accept json
// @Produce json
// @Param entryID path string true "Entry ID"
// @Param payload body domain.UpdateInput true "Fields to change"
// @Success 200 {object} domain.Entry "ok"
// @Failure 403 {object} httpkit.Envelope "system entry"
// @Router /safelist/{entryID} [put]
func (h *handlers) update(r *stdhttp.Request, in domain.UpdateInput) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	role, _ := httpkit.Role(r)
	return h.svc.Update(r.Context(), uid, role, httpkit.Param(r, "entryID"), in)
}

// @Summary Remove an entry from the safelist
// @Tags Safelist
// @Produce json
// @Param entryID path string true "Entry ID"
// @Success 200 {object} map[string]string "deleted"
// @Failure 403 {object} httpkit.Envelope "system entry"
// @Router /safelist/{entryID} [delete]
func (h *handlers) remove(r *stdhttp.Request) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	role, _ := httpkit.Role(r)
	if err := h.svc.Delete(r.Context(), uid, role, httpkit.Param(r, "entryID")); err != nil {
		return nil, err
	}
	return map[string]string{"status": "deleted"}, nil
}

// @Summary Bulk import safelist entries
// @Tags Safelist
// @Accept json
// @Produce json
// @Param payload body domain.ImportInput true "Entries to import"
// @Success 200 {object} domain.ImportReport "report"
// @Failure 400 {object} httpkit.Envelope "too many entries"
// @Router /safelist/import [post]
func (h *handlers) importBulk(r *stdhttp.Request) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	in, err := bind.ParseJSON[domain.ImportInput](r)
	if err != nil {
		return nil, err
	}
	return h.svc.Import(r.Context(), uid, in)
}

// @Summary Seed the built-in trusted set as system entries
// @Tags Safelist
// @Produce json
// @Success 200 {object} domain.ImportReport "report"
// @Failure 403 {object} httpkit.Envelope "admin only"
// @Router /safelist/populate [post]
func (h *handlers) populate(r *stdhttp.Request) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	// system rows are admin managed, so only admins may seed them
	if err := httpkit.RequireAdmin(r); err != nil {
		return nil, err
	}
	return h.svc.Populate(r.Context(), uid)
}

// @Summary Export the safelist as CSV
// @Tags Safelist
// @Produce text/csv
// @Success 200 {string} string "csv body"
// @Router /safelist/export [get]
func (h *handlers) export(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	if _, err := httpkit.User(r); err != nil {
		phttp.RespondError(w, r, err)
		return
	}
	body, err := h.svc.ExportCSV(r.Context())
	if err != nil {
		phttp.RespondError(w, r, err)
		return
	}
	name := "safelist-" + time.Now().UTC().Format("20060102-150405") + ".csv"

	// raw attachment, not the JSON envelope
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(body)))
	w.WriteHeader(stdhttp.StatusOK)
	_, _ = w.Write(body)
}

// @Summary Safelist composition and scan hit rate
// @Tags Safelist
// @Produce json
// @Success 200 {object} domain.Stats "ok"
// @Router /safelist/stats [get]
func (h *handlers) stats(r *stdhttp.Request) (any, error) {
	if _, err := httpkit.User(r); err != nil {
		return nil, err
	}
	return h.svc.Stats(r.Context())
}
