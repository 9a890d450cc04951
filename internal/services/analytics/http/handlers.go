// Package http provides http transport for analytics
package http

import (
	stdhttp "net/http"

	"dnsguard/internal/modkit/httpkit"

	svc "dnsguard/internal/services/analytics/service"
)

// Register mounts analytics endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/dashboard", h.dashboard)
	httpkit.Get(r, "/trends", h.trends)
	httpkit.Get(r, "/tld", h.tld)
	httpkit.Get(r, "/heatmap", h.heatmap)
	httpkit.Get(r, "/methods", h.methods)
}

type handlers struct{ svc svc.Service }

// @Summary Headline scan statistics for the caller
// @Tags Analytics
// @Produce json
// @Success 200 {object} domain.Dashboard "ok"
// @Router /analytics/dashboard [get]
func (h *handlers) dashboard(r *stdhttp.Request) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Dashboard(r.Context(), uid)
}

// @Summary Daily verdict trend
// @Tags Analytics
// @Produce json
// @Param days query int false "Trailing window in days (default 30)"
// @Success 200 {array} domain.TrendPoint "ok"
// @Router /analytics/trends [get]
func (h *handlers) trends(r *stdhttp.Request) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Trends(r.Context(), uid, httpkit.QueryInt(r, "days", 0))
}

// @Summary Top level domains ranked by weighted abuse share
// @Tags Analytics
// @Produce json
// @Success 200 {array} domain.TLDRisk "ok"
// @Router /analytics/tld [get]
func (h *handlers) tld(r *stdhttp.Request) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	return h.svc.TLDRisk(r.Context(), uid)
}

// @Summary Scan volume by weekday and hour
// @Tags Analytics
// @Produce json
// @Success 200 {array} domain.HeatmapCell "ok"
// @Router /analytics/heatmap [get]
func (h *handlers) heatmap(r *stdhttp.Request) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Heatmap(r.Context(), uid)
}

// @Summary Classification method breakdown
// @Tags Analytics
// @Produce json
// @Success 200 {array} domain.MethodStat "ok"
// @Router /analytics/methods [get]
func (h *handlers) methods(r *stdhttp.Request) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Methods(r.Context(), uid)
}
