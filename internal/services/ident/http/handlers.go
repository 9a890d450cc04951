// Package http provides http transport for ident
package http

import (
	stdhttp "net/http"

	"dnsguard/internal/modkit/httpkit"
	"dnsguard/internal/platform/net/http/bind"

	"dnsguard/internal/services/ident/domain"
	svc "dnsguard/internal/services/ident/service"
)

// Register mounts the public auth endpoints
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.Post(r, "/register", h.register)
	httpkit.Post(r, "/login", h.login)
	httpkit.Post(r, "/refresh", h.refresh)
}

// RegisterSecured mounts the endpoints that need a signed-in caller
func RegisterSecured(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/me", h.me)
	httpkit.PutJSON[domain.UpdateMeInput](r, "/me", h.updateMe)
	httpkit.PutJSON[domain.ChangePasswordInput](r, "/password", h.changePassword)
}

type handlers struct{ svc svc.Service }

// @Summary Create an account
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body domain.RegisterInput true "Account"
// @Success 201 {object} domain.AuthOutput "created"
// @Failure 409 {object} httpkit.Envelope "email taken"
// @Router /auth/register [post]
func (h *handlers) register(r *stdhttp.Request) (any, error) {
	in, err := bind.ParseJSON[domain.RegisterInput](r)
	if err != nil {
		return nil, err
	}
	out, err := h.svc.Register(r.Context(), in)
	if err != nil {
		return nil, err
	}
	return httpkit.Created(out), nil
}

// @Summary Sign in with email and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body domain.LoginInput true "Credentials"
// @Success 200 {object} domain.AuthOutput "ok"
// @Failure 401 {object} httpkit.Envelope "bad credentials"
// @Router /auth/login [post]
func (h *handlers) login(r *stdhttp.Request) (any, error) {
	in, err := bind.ParseJSON[domain.LoginInput](r)
	if err != nil {
		return nil, err
	}
	return h.svc.Login(r.Context(), in)
}

// @Summary Exchange a refresh token for a fresh pair
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body domain.RefreshInput true "Refresh token"
// @Success 200 {object} domain.TokenPair "ok"
// @Router /auth/refresh [post]
func (h *handlers) refresh(r *stdhttp.Request) (any, error) {
	in, err := bind.ParseJSON[domain.RefreshInput](r)
	if err != nil {
		return nil, err
	}
	return h.svc.Refresh(r.Context(), in)
}

// @Summary Current account
// @Tags Auth
// @Produce json
// @Success 200 {object} domain.User "ok"
// @Router /auth/me [get]
func (h *handlers) me(r *stdhttp.Request) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Me(r.Context(), uid)
}

// @Summary Update profile fields
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body domain.UpdateMeInput true "Changes"
// @Success 200 {object} domain.User "ok"
// @Router /auth/me [put]
func (h *handlers) updateMe(r *stdhttp.Request, in domain.UpdateMeInput) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	return h.svc.UpdateMe(r.Context(), uid, in)
}

// @Summary Rotate the password
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body domain.ChangePasswordInput true "Passwords"
// @Success 200 {object} map[string]string "rotated"
// @Router /auth/password [put]
func (h *handlers) changePassword(r *stdhttp.Request, in domain.ChangePasswordInput) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	if err := h.svc.ChangePassword(r.Context(), uid, in); err != nil {
		return nil, err
	}
	return map[string]string{"status": "password updated"}, nil
}
