// Package module wires the catalog into the API using modkit
package module

import (
	"net/http"

	modkit "davenport/internal/modkit"
	"davenport/internal/modkit/httpkit"
	perr "davenport/internal/platform/errors"
	"davenport/internal/platform/net/middleware"
	str "davenport/internal/platform/strings"
	cataloghttp "davenport/internal/services/api/catalog/http"
	catalogrepo "davenport/internal/services/api/catalog/repo"
	catalogsvc "davenport/internal/services/api/catalog/service"
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

	svc catalogsvc.Service
}

// New constructs a catalog module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("catalog"), modkit.WithPrefix("/catalog")}, opts...)...)

	repo := catalogrepo.NewPG()
	svc := catalogsvc.New(deps.PG, repo)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = Ports{Catalog: svc}

	// static admin token guard for catalog writes; absent token leaves
	// writes open for local development
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
		cataloghttp.Register(r, m.svc, admin)
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
