// Package http provides http transport for payments
package http

import (
	stdhttp "net/http"

	"davenport/internal/modkit/httpkit"
	"davenport/internal/services/api/payments/domain"
	svc "davenport/internal/services/api/payments/service"
)

// Register mounts the payment endpoint on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.PaymentInput](r, "/", h.payment)
}

type handlers struct{ svc svc.Service }

func (h *handlers) payment(r *stdhttp.Request, in domain.PaymentInput) (any, error) {
	if in.Action == "verify" {
		return h.svc.Verify(r.Context(), in.OrderID, in.TransactionID)
	}
	return h.svc.Create(r.Context(), in.OrderID, in.Amount, in.Method)
}
