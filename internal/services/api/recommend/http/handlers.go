// Package http provides http transport for recommendations
package http

import (
	stdhttp "net/http"

	"davenport/internal/modkit/httpkit"
	pnet "davenport/internal/platform/net"
	"davenport/internal/services/api/recommend/domain"
	svc "davenport/internal/services/api/recommend/service"
)

// Register mounts the recommend endpoint on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.SelectInput](r, "/", h.selectProducts)
}

type handlers struct{ svc svc.Service }

func (h *handlers) selectProducts(r *stdhttp.Request, in domain.SelectInput) (any, error) {
	if in.UserID == "" {
		in.UserID = pnet.UserID(r.Context())
	}
	products, err := h.svc.Select(r.Context(), in)
	if err != nil {
		return nil, err
	}
	return domain.SelectOutput{Recommendations: products}, nil
}
