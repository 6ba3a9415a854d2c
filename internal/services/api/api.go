// Package api provides the HTTP API for the storefront
package api

import (
	"context"
	"net/http"
	"time"

	"davenport/internal/platform/config"
	"davenport/internal/platform/logger"
	pnet "davenport/internal/platform/net"
	phttp "davenport/internal/platform/net/http"
	"davenport/internal/platform/store"

	"davenport/internal/core/ratelimit"
	"davenport/internal/modkit"
	"davenport/internal/modkit/httpkit"
	"davenport/internal/modkit/module"
	"davenport/internal/modkit/swaggerkit"

	catalogmod "davenport/internal/services/api/catalog/module"
	metamod "davenport/internal/services/api/meta/module"
	ordersmod "davenport/internal/services/api/orders/module"
	paymentsmod "davenport/internal/services/api/payments/module"
	recommendmod "davenport/internal/services/api/recommend/module"
	signalsmod "davenport/internal/services/api/signals/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// limiterFor builds a limiter from a RATELIMIT_ config scope, backed by
// Redis when the store carries one so replicas share a budget
func limiterFor(st *store.Store, cfg config.Conf, defMax, defWindowMs int) *ratelimit.Limiter {
	max := cfg.MayInt("MAX", defMax)
	window := time.Duration(cfg.MayInt("WINDOW_MS", defWindowMs)) * time.Millisecond

	if st.Redis != nil {
		return ratelimit.New(max, window, ratelimit.NewRedisWindows(st.Redis))
	}

	mem := ratelimit.NewMemoryWindows()
	if cfg.MayBool("JANITOR", false) {
		every := time.Duration(cfg.MayInt("JANITOR_EVERY_MS", 60_000)) * time.Millisecond
		mem.StartJanitor(context.Background(), every, window)
	}
	return ratelimit.New(max, window, mem)
}

// clientIdentity maps a request to a rate limit bucket
func clientIdentity(r *http.Request) string {
	return ratelimit.Identity(
		pnet.UserID(r.Context()),
		r.Header.Get("X-Forwarded-For"),
		r.Header.Get("X-Real-IP"),
		r.Header.Get("User-Agent"),
	)
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg:   opt.Config,
		PG:    opt.Store.PG,
		Redis: opt.Store.Redis,
	}

	rlScope := opt.Config.Prefix("RATELIMIT_")
	recommendLimiter := limiterFor(opt.Store, rlScope, 60, 60_000)
	paymentsLimiter := limiterFor(opt.Store, rlScope.Prefix("PAYMENTS_"), 10, 60_000)

	// Construct catalog and signals first, then hand their ports to recommend
	catalog := catalogmod.New(deps)
	signals := signalsmod.New(deps)

	recommend := recommendmod.New(
		deps,
		modkit.WithPorts(recommendmod.Ports{
			Catalog: module.MustPortsOf[catalogmod.Ports](catalog).Catalog,
			Signals: module.MustPortsOf[signalsmod.Ports](signals).Signals,
		}),
		modkit.WithMiddlewares(ratelimit.Middleware(recommendLimiter, clientIdentity)),
	)

	payments := paymentsmod.New(
		deps,
		modkit.WithMiddlewares(ratelimit.Middleware(paymentsLimiter, clientIdentity)),
	)

	mods := []module.Module{
		metamod.New(deps),
		catalog,
		signals,
		ordersmod.New(deps),
		recommend,
		payments,
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
