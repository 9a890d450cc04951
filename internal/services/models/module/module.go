// Package module wires model introspection into the API using modkit
package module

import (
	"net/http"

	"dnsguard/internal/core/classifier"
	modkit "dnsguard/internal/modkit"
	"dnsguard/internal/modkit/httpkit"
	str "dnsguard/internal/platform/strings"

	modelshttp "dnsguard/internal/services/models/http"
	modelssvc "dnsguard/internal/services/models/service"
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

	svc modelssvc.Service
}

// New constructs a models module bound to the shared classifier and
// the safelist reload hook
func New(deps modkit.Deps, cls *classifier.Classifier, reload modelssvc.ReloadFunc, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("models"), modkit.WithPrefix("/models")}, opts...)...)

	svc := modelssvc.New(cls, reload)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = adaptModelsPort{svc: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		modelshttp.Register(r, m.svc)
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
