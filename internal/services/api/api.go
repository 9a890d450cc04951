// Package api provides the HTTP API for the application
package api

import (
	"context"
	"net/http"
	"time"

	"dnsguard/internal/platform/config"
	"dnsguard/internal/platform/logger"
	phttp "dnsguard/internal/platform/net/http"
	"dnsguard/internal/platform/store"

	"dnsguard/internal/core/classifier"
	"dnsguard/internal/modkit"
	"dnsguard/internal/modkit/httpkit"
	"dnsguard/internal/modkit/module"
	"dnsguard/internal/modkit/scope"
	"dnsguard/internal/modkit/swaggerkit"

	metamod "dnsguard/internal/services/api/meta/module"

	analyticsmod "dnsguard/internal/services/analytics/module"
	historymod "dnsguard/internal/services/history/module"
	identmod "dnsguard/internal/services/ident/module"
	modelsmod "dnsguard/internal/services/models/module"
	safelistmod "dnsguard/internal/services/safelist/module"
	scanmod "dnsguard/internal/services/scan/module"
	usersmod "dnsguard/internal/services/users/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	Classifier     *classifier.Classifier
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
	}

	// Ident owns tokens; everything behind the auth gate verifies through its port
	ident := identmod.New(deps)
	identPorts := module.MustPortsOf[identmod.Ports](ident)
	authPort := httpkit.NewPortFunc(identPorts.Tokens)

	// The safelist module owns the classifier snapshot lifecycle
	safelist := safelistmod.New(deps, opt.Classifier)
	reload := module.MustPortsOf[safelistmod.Ports](safelist).Reload

	// prime the snapshot so safelist hits resolve from the first request
	{
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if n, err := reload(ctx); err != nil {
			opt.Logger.Warn().Err(err).Msg("initial safelist load failed, starting empty")
		} else {
			opt.Logger.Info().Int("safelist_size", n).Msg("safelist snapshot loaded")
		}
		cancel()
	}

	meta := metamod.New(deps)
	scan := scanmod.New(deps, opt.Classifier)
	history := historymod.New(deps)
	analytics := analyticsmod.New(deps)
	models := modelsmod.New(deps, opt.Classifier, reload)
	users := usersmod.New(deps, identPorts.Lookup)

	public := []module.Module{meta, ident}
	secured := []module.Module{scan, history, analytics, safelist, models, users}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		api.Use(requestMeta)

		for _, m := range public {
			module.Register(m.Name(), m.Ports())
			m.MountRoutes(api)
		}

		httpkit.Protected(api, authPort, func(sec httpkit.Router) {
			for _, m := range secured {
				module.Register(m.Name(), m.Ports())
				m.MountRoutes(sec)
			}
		})
	})
}

// requestMeta stashes caller metadata for the activity trail
func requestMeta(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := scope.With(r.Context(), map[string]string{
			"ip":         r.RemoteAddr,
			"user_agent": r.UserAgent(),
		})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
