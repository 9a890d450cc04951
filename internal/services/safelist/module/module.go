// Package module wires the safelist into the API using modkit
package module

import (
	"net/http"

	"dnsguard/internal/core/classifier"
	modkit "dnsguard/internal/modkit"
	"dnsguard/internal/modkit/httpkit"
	str "dnsguard/internal/platform/strings"

	safelisthttp "dnsguard/internal/services/safelist/http"
	safelistrepo "dnsguard/internal/services/safelist/repo"
	safelistsvc "dnsguard/internal/services/safelist/service"
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

	svc safelistsvc.Service
}

// New constructs a safelist module bound to the shared classifier
func New(deps modkit.Deps, cls *classifier.Classifier, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("safelist"), modkit.WithPrefix("/safelist")}, opts...)...)

	repo := safelistrepo.NewPG()
	svc := safelistsvc.New(deps.PG, repo, cls)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = Ports{Port: svc, Reload: svc.Reload}

	external := b.Register
	m.register = func(r httpkit.Router) {
		safelisthttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes implements the modkit.Module interface
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
