// Package http provides http transport for model introspection
package http

import (
	stdhttp "net/http"

	"dnsguard/internal/modkit/httpkit"

	svc "dnsguard/internal/services/models/service"
)

// Register mounts model endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/info", h.info)
	httpkit.Get(r, "/features", h.features)
	httpkit.Post(r, "/reload", h.reload)
}

type handlers struct{ svc svc.Service }

// @Summary Serving model and safelist snapshot
// @Tags Models
// @Produce json
// @Success 200 {object} domain.Info "ok"
// @Router /models/info [get]
func (h *handlers) info(r *stdhttp.Request) (any, error) {
	if _, err := httpkit.User(r); err != nil {
		return nil, err
	}
	return h.svc.Info(r.Context())
}

// @Summary Lexical feature names the model scores
// @Tags Models
// @Produce json
// @Success 200 {array} string "ok"
// @Router /models/features [get]
func (h *handlers) features(r *stdhttp.Request) (any, error) {
	if _, err := httpkit.User(r); err != nil {
		return nil, err
	}
	return h.svc.Features(r.Context())
}

// @Summary Reload the safelist snapshot from storage
// @Tags Models
// @Produce json
// @Success 200 {object} domain.ReloadReport "ok"
// @Failure 403 {object} httpkit.Envelope "admin only"
// @Router /models/reload [post]
func (h *handlers) reload(r *stdhttp.Request) (any, error) {
	if err := httpkit.RequireAdmin(r); err != nil {
		return nil, err
	}
	return h.svc.Reload(r.Context())
}
