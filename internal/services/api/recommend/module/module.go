// Package module wires the recommendation selector into the API using modkit
package module

import (
	"net/http"

	modkit "davenport/internal/modkit"
	"davenport/internal/modkit/httpkit"
	str "davenport/internal/platform/strings"
	catalogdom "davenport/internal/services/api/catalog/domain"
	rechttp "davenport/internal/services/api/recommend/http"
	recsvc "davenport/internal/services/api/recommend/service"
	signalsdom "davenport/internal/services/api/signals/domain"
)

// Ports declares the injected ports this module requires
type Ports struct {
	Catalog catalogdom.ReaderPort
	Signals signalsdom.AffinityPort
}

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

	svc recsvc.Service
}

// New constructs a recommend module; catalog and signals ports must be injected
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("recommend"), modkit.WithPrefix("/recommend")}, opts...)...)

	var injected Ports
	if p, ok := b.Ports.(Ports); ok {
		injected = p
	}
	if injected.Catalog == nil {
		panic("recommend module requires the catalog port")
	}
	if injected.Signals == nil {
		panic("recommend module requires the signals port")
	}

	svc := recsvc.New(injected.Catalog, injected.Signals)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = adaptSelectPort{svc: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		rechttp.Register(r, m.svc)
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
