// Package http provides http transport for signals
package http

import (
	stdhttp "net/http"

	"github.com/go-chi/chi/v5"

	"davenport/internal/modkit/httpkit"
	perr "davenport/internal/platform/errors"
	pnet "davenport/internal/platform/net"
	"davenport/internal/services/api/signals/domain"
	svc "davenport/internal/services/api/signals/service"
)

// Register mounts signals endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.RecordInteractionInput](r, "/interactions", h.interaction)
	httpkit.PostJSON[domain.AddReviewInput](r, "/reviews", h.review)
	httpkit.Put(r, "/wishlist/{productID}", h.wishlistAdd)
	httpkit.Delete(r, "/wishlist/{productID}", h.wishlistRemove)
}

type handlers struct{ svc svc.Service }

func (h *handlers) interaction(r *stdhttp.Request, in domain.RecordInteractionInput) (any, error) {
	if in.UserID == "" {
		in.UserID = pnet.UserID(r.Context())
	}
	if err := h.svc.RecordInteraction(r.Context(), in); err != nil {
		return nil, err
	}
	return map[string]bool{"recorded": true}, nil
}

func (h *handlers) review(r *stdhttp.Request, in domain.AddReviewInput) (any, error) {
	if err := h.svc.AddReview(r.Context(), in); err != nil {
		return nil, err
	}
	return map[string]bool{"recorded": true}, nil
}

// wishlistUser resolves the acting user: auth context first, then query param
func wishlistUser(r *stdhttp.Request) (string, error) {
	if uid, err := httpkit.User(r); err == nil {
		return uid, nil
	}
	if uid := r.URL.Query().Get("user_id"); uid != "" {
		return uid, nil
	}
	return "", perr.InvalidArgf("missing user id")
}

func (h *handlers) wishlistAdd(r *stdhttp.Request) (any, error) {
	uid, err := wishlistUser(r)
	if err != nil {
		return nil, err
	}
	pid := chi.URLParam(r, "productID")
	if pid == "" {
		return nil, perr.InvalidArgf("missing product id")
	}
	if err := h.svc.AddWishlist(r.Context(), uid, pid); err != nil {
		return nil, err
	}
	return map[string]bool{"wishlisted": true}, nil
}

func (h *handlers) wishlistRemove(r *stdhttp.Request) (any, error) {
	uid, err := wishlistUser(r)
	if err != nil {
		return nil, err
	}
	pid := chi.URLParam(r, "productID")
	if pid == "" {
		return nil, perr.InvalidArgf("missing product id")
	}
	if err := h.svc.RemoveWishlist(r.Context(), uid, pid); err != nil {
		return nil, err
	}
	return map[string]bool{"wishlisted": false}, nil
}
