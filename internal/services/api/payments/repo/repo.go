// Package repo provides postgres access for payments
package repo

import (
	"context"
	"time"

	"davenport/internal/modkit/repokit"
	"davenport/internal/platform/store"
)

// Repo defines the repository contract for payments
type Repo interface {
	Insert(ctx context.Context, row RowPayment) (RowPayment, error)
	GetByOrderAndTxn(ctx context.Context, orderID, transactionID string) (RowPayment, error)
	MarkCompleted(ctx context.Context, id string) error
	ConfirmOrder(ctx context.Context, orderID string) error
}

// RowPayment is a payment row from the database
type RowPayment struct {
	ID            string
	OrderID       string
	TransactionID string
	Amount        float64
	Method        string
	Status        string
	CreatedAt     string
	// zero until the payment completes
	CompletedAt time.Time
}

type (
	// PG implements the Repo interface using Postgres
	PG struct{}

	// queries holds the database query methods
	queries struct{ q repokit.Queryer }
)

// NewPG creates a new Postgres repository binder
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind binds a Postgres queryer to the Repo implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

const paymentCols = `id::text, order_id::text, transaction_id, amount::float8, method, status, created_at::text,
coalesce(completed_at, timestamptz '0001-01-01T00:00:00Z')`

func scanPayment(r store.Row) (RowPayment, error) {
	var p RowPayment
	err := r.Scan(&p.ID, &p.OrderID, &p.TransactionID, &p.Amount, &p.Method, &p.Status, &p.CreatedAt, &p.CompletedAt)
	return p, err
}

func (r *queries) Insert(ctx context.Context, row RowPayment) (RowPayment, error) {
	const sql = `
insert into payments (id, order_id, transaction_id, amount, method, status)
values ($1, $2, $3, $4, $5, $6)
returning ` + paymentCols
	return store.One(ctx, r.q, scanPayment, sql,
		row.ID, row.OrderID, row.TransactionID, row.Amount, row.Method, row.Status,
	)
}

func (r *queries) GetByOrderAndTxn(ctx context.Context, orderID, transactionID string) (RowPayment, error) {
	const sql = `select ` + paymentCols + ` from payments where order_id = $1 and transaction_id = $2`
	return store.One(ctx, r.q, scanPayment, sql, orderID, transactionID)
}

func (r *queries) MarkCompleted(ctx context.Context, id string) error {
	const sql = `update payments set status = 'completed', completed_at = now() where id = $1`
	return store.ExecOne(ctx, r.q, sql, id)
}

func (r *queries) ConfirmOrder(ctx context.Context, orderID string) error {
	const sql = `update orders set status = 'confirmed' where id = $1`
	return store.ExecOne(ctx, r.q, sql, orderID)
}
