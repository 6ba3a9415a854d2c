// Package http provides http transport for orders
package http

import (
	stdhttp "net/http"

	"github.com/go-chi/chi/v5"

	"davenport/internal/modkit/httpkit"
	perr "davenport/internal/platform/errors"
	"davenport/internal/platform/net/middleware"
	"davenport/internal/services/api/orders/domain"
	svc "davenport/internal/services/api/orders/service"
)

// Register mounts order endpoints on the given router. Status updates and
// the all-orders listing go behind the auth port when one is configured.
func Register(r httpkit.Router, s svc.Service, admin middleware.AuthPort) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.CreateOrderInput](r, "/", h.create)
	httpkit.Get(r, "/", h.list)
	httpkit.Get(r, "/{id}", h.get)
	httpkit.Post(r, "/{id}/cancel", h.cancel)

	adminOps := func(ar httpkit.Router) {
		httpkit.Get(ar, "/all", h.listAll)
		httpkit.PatchJSON[domain.UpdateStatusInput](ar, "/{id}/status", h.updateStatus)
	}
	if admin == nil {
		adminOps(r)
		return
	}
	httpkit.Protected(r, admin, adminOps)
}

type handlers struct{ svc svc.Service }

// actingUser resolves the caller: auth context first, then query param
func actingUser(r *stdhttp.Request) (string, error) {
	if uid, err := httpkit.User(r); err == nil {
		return uid, nil
	}
	if uid := r.URL.Query().Get("user_id"); uid != "" {
		return uid, nil
	}
	return "", perr.Unauthorizedf("missing user id")
}

func (h *handlers) create(r *stdhttp.Request, in domain.CreateOrderInput) (any, error) {
	if in.UserID == "" {
		uid, err := actingUser(r)
		if err != nil {
			return nil, err
		}
		in.UserID = uid
	}
	return h.svc.Create(r.Context(), in)
}

func (h *handlers) list(r *stdhttp.Request) (any, error) {
	uid, err := actingUser(r)
	if err != nil {
		return nil, err
	}
	return h.svc.List(r.Context(), uid)
}

func (h *handlers) listAll(r *stdhttp.Request) (any, error) {
	return h.svc.ListAll(r.Context())
}

func (h *handlers) get(r *stdhttp.Request) (any, error) {
	id := chi.URLParam(r, "id")
	if id == "" {
		return nil, perr.InvalidArgf("missing order id")
	}
	return h.svc.Get(r.Context(), id)
}

func (h *handlers) cancel(r *stdhttp.Request) (any, error) {
	id := chi.URLParam(r, "id")
	if id == "" {
		return nil, perr.InvalidArgf("missing order id")
	}
	return h.svc.Cancel(r.Context(), id)
}

func (h *handlers) updateStatus(r *stdhttp.Request, in domain.UpdateStatusInput) (any, error) {
	id := chi.URLParam(r, "id")
	if id == "" {
		return nil, perr.InvalidArgf("missing order id")
	}
	return h.svc.UpdateStatus(r.Context(), id, in.Status)
}
