// Package service contains payment workflows
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"davenport/internal/modkit/repokit"
	ptime "davenport/internal/platform/time"
	"davenport/internal/services/api/payments/domain"
	"davenport/internal/services/api/payments/repo"
)

// Service defines the service contract for payments
type Service interface{ domain.ServicePort }

// Svc implements the Service interface against a mock gateway
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
}

// New creates a new payments service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("payments.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("payments.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db}
}

func toPayment(r repo.RowPayment) domain.Payment {
	return domain.Payment{
		ID:            r.ID,
		OrderID:       r.OrderID,
		TransactionID: r.TransactionID,
		Amount:        r.Amount,
		Method:        r.Method,
		Status:        r.Status,
		CreatedAt:     r.CreatedAt,
		CompletedAt:   ptime.Ptr(r.CompletedAt),
	}
}

// Create records a pending payment with a fresh transaction id
func (s *Svc) Create(ctx context.Context, orderID string, amount float64, method string) (domain.Payment, error) {
	row, err := s.Repo.Insert(ctx, repo.RowPayment{
		ID:            uuid.NewString(),
		OrderID:       orderID,
		TransactionID: "TXN-" + uuid.NewString(),
		Amount:        amount,
		Method:        method,
		Status:        domain.StatusPending,
	})
	if err != nil {
		return domain.Payment{}, err
	}
	return toPayment(row), nil
}

// Verify completes the payment and confirms its order in one transaction
func (s *Svc) Verify(ctx context.Context, orderID, transactionID string) (domain.Payment, error) {
	var out domain.Payment
	err := repokit.WithTx(ctx, s.db, func(q repokit.Queryer) error {
		r := s.binder.Bind(q)
		row, err := r.GetByOrderAndTxn(ctx, orderID, transactionID)
		if err != nil {
			return err
		}
		if row.Status != domain.StatusCompleted {
			if err := r.MarkCompleted(ctx, row.ID); err != nil {
				return err
			}
			row.Status = domain.StatusCompleted
			row.CompletedAt = time.Now().UTC()
		}
		if err := r.ConfirmOrder(ctx, orderID); err != nil {
			return err
		}
		out = toPayment(row)
		return nil
	})
	if err != nil {
		return domain.Payment{}, err
	}
	return out, nil
}
