// Package module wires the scan service into the API using modkit
package module

import (
	"net/http"

	modkit "dnsguard/internal/modkit"
	"dnsguard/internal/modkit/httpkit"
	str "dnsguard/internal/platform/strings"

	"dnsguard/internal/core/classifier"
	scanhttp "dnsguard/internal/services/scan/http"
	scanrepo "dnsguard/internal/services/scan/repo"
	scansvc "dnsguard/internal/services/scan/service"
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

	svc scansvc.Service
}

// New constructs a scan module with the provided dependencies and options
func New(deps modkit.Deps, det classifier.Detector, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("scan"), modkit.WithPrefix("/scan")}, opts...)...)

	cfg := FromConfig(deps.Cfg)
	repo := scanrepo.NewPG()
	svc := scansvc.New(deps.PG, repo, det, scansvc.Config{
		MaxBatch:        cfg.MaxBatch,
		Workers:         cfg.Workers,
		CheckpointEvery: cfg.CheckpointEvery,
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
	m.ports = adaptScanPort{svc: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		scanhttp.Register(r, m.svc)
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
