// Package http provides http transport for account reads
package http

import (
	stdhttp "net/http"

	"dnsguard/internal/modkit/httpkit"

	"dnsguard/internal/services/users/domain"
	svc "dnsguard/internal/services/users/service"
)

// Register mounts account endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/statistics", h.statistics)
	httpkit.Get(r, "/activity", h.activity)
	httpkit.Get(r, "/{userID}", h.profile)
}

type handlers struct{ svc svc.Service }

// @Summary Scanning footprint for the caller
// @Tags Users
// @Produce json
// @Success 200 {object} domain.Statistics "ok"
// @Router /users/statistics [get]
func (h *handlers) statistics(r *stdhttp.Request) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Statistics(r.Context(), uid)
}

// @Summary Page through the caller's audit trail
// @Tags Users
// @Produce json
// @Param page query int false "Page (1-based)"
// @Param page_size query int false "Page size (default 20)"
// @Success 200 {array} domain.ActivityEntry "ok"
// @Router /users/activity [get]
func (h *handlers) activity(r *stdhttp.Request) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	q := domain.ActivityQuery{
		Page:     httpkit.QueryInt(r, "page", 1),
		PageSize: httpkit.QueryInt(r, "page_size", 20),
	}
	items, total, err := h.svc.Activity(r.Context(), uid, q)
	if err != nil {
		return nil, err
	}
	return httpkit.List(items, total, q.Page, q.PageSize, ""), nil
}

// @Summary One account profile, own or any for admins
// @Tags Users
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} identdom.User "ok"
// @Failure 403 {object} httpkit.Envelope "not your profile"
// @Failure 404 {object} httpkit.Envelope "not found"
// @Router /users/{userID} [get]
func (h *handlers) profile(r *stdhttp.Request) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	role, _ := httpkit.Role(r)
	return h.svc.Profile(r.Context(), uid, role, httpkit.Param(r, "userID"))
}
