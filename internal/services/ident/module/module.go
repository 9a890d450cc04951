// Package module wires the ident service into the API using modkit
package module

import (
	"net/http"

	modkit "dnsguard/internal/modkit"
	"dnsguard/internal/modkit/httpkit"
	str "dnsguard/internal/platform/strings"

	identhttp "dnsguard/internal/services/ident/http"
	identrepo "dnsguard/internal/services/ident/repo"
	identsvc "dnsguard/internal/services/ident/service"
)

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc identsvc.Service
}

// New constructs an ident module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("ident"), modkit.WithPrefix("/auth")}, opts...)...)

	cfg := FromConfig(deps.Cfg)
	repo := identrepo.NewPG()
	svc := identsvc.New(deps.PG, repo, identsvc.Config{
		Secret:     cfg.Secret,
		AccessTTL:  cfg.AccessTTL,
		RefreshTTL: cfg.RefreshTTL,
	})

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = Ports{Tokens: svc.ParseAccess, Lookup: svc.Me}

	// secured endpoints live under the same /auth subtree, gated by the
	// module's own access-token parser
	authMw := httpkit.Auth(httpkit.NewPortFunc(svc.ParseAccess))

	external := b.Register
	m.register = func(r httpkit.Router) {
		identhttp.Register(r, m.svc)
		r.Group(func(gr httpkit.Router) {
			gr.Use(authMw)
			identhttp.RegisterSecured(gr, m.svc)
		})
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts the auth endpoints under the module prefix
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
