// Package http provides http transport for the catalog
package http

import (
	stdhttp "net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"davenport/internal/modkit/httpkit"
	perr "davenport/internal/platform/errors"
	"davenport/internal/platform/net/middleware"
	"davenport/internal/services/api/catalog/domain"
	svc "davenport/internal/services/api/catalog/service"
)

// Register mounts catalog endpoints on the given router. Admin writes go
// behind the auth port when one is configured.
func Register(r httpkit.Router, s svc.Service, admin middleware.AuthPort) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/products/{id}", h.get)
	httpkit.Get(r, "/featured", h.featured)
	httpkit.Get(r, "/categories", h.categories)

	writes := func(wr httpkit.Router) {
		httpkit.PostJSON[domain.CreateProductInput](wr, "/products", h.create)
		httpkit.PatchJSON[domain.UpdateProductInput](wr, "/products", h.update)
	}
	if admin == nil {
		writes(r)
		return
	}
	httpkit.Protected(r, admin, writes)
}

type handlers struct{ svc svc.Service }

func (h *handlers) get(r *stdhttp.Request) (any, error) {
	id := chi.URLParam(r, "id")
	if id == "" {
		return nil, perr.InvalidArgf("missing product id")
	}
	return h.svc.Get(r.Context(), id)
}

func (h *handlers) featured(r *stdhttp.Request) (any, error) {
	limit := 12
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 100 {
			return nil, perr.InvalidArgf("limit must be an integer in [1,100]")
		}
		limit = n
	}
	return h.svc.ListFeatured(r.Context(), limit)
}

func (h *handlers) categories(r *stdhttp.Request) (any, error) {
	return h.svc.ListCategories(r.Context())
}

func (h *handlers) create(r *stdhttp.Request, in domain.CreateProductInput) (any, error) {
	return h.svc.Create(r.Context(), in)
}

func (h *handlers) update(r *stdhttp.Request, in domain.UpdateProductInput) (any, error) {
	return h.svc.Update(r.Context(), in)
}
