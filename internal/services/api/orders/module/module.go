// Package module wires orders into the API using modkit
package module

import (
	"net/http"

	modkit "davenport/internal/modkit"
	"davenport/internal/modkit/httpkit"
	perr "davenport/internal/platform/errors"
	"davenport/internal/platform/net/middleware"
	str "davenport/internal/platform/strings"
	ordershttp "davenport/internal/services/api/orders/http"
	ordersrepo "davenport/internal/services/api/orders/repo"
	orderssvc "davenport/internal/services/api/orders/service"
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

	svc orderssvc.Service
}

// New constructs an orders module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("orders"), modkit.WithPrefix("/orders")}, opts...)...)

	repo := ordersrepo.NewPG()
	svc := orderssvc.New(deps.PG, repo)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = Ports{Orders: svc}

	// static admin token guard for fulfillment ops; absent token leaves
	// them open for local development
	var admin middleware.AuthPort
	if token := deps.Cfg.MayString("ADMIN_TOKEN", ""); token != "" {
		admin = httpkit.NewPortFunc(func(got string) (string, error) {
			if got != token {
				return "", perr.Unauthorizedf("invalid admin token")
			}
			return "admin", nil
		})
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		ordershttp.Register(r, m.svc, admin)
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
