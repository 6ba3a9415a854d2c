// Package repo provides postgres access for orders
package repo

import (
	"context"
	"fmt"

	"davenport/internal/modkit/repokit"
	"davenport/internal/platform/store"
)

// Repo defines the repository contract for orders
type Repo interface {
	InsertOrder(ctx context.Context, row RowOrder) (RowOrder, error)
	InsertItems(ctx context.Context, orderID string, items []RowItem) error
	Get(ctx context.Context, id string) (RowOrder, error)
	ListByUser(ctx context.Context, userID string) ([]RowOrder, error)
	ListAll(ctx context.Context) ([]RowOrder, error)
	ListItemsByOrders(ctx context.Context, orderIDs []string) ([]RowItem, error)
	UpdateStatus(ctx context.Context, id, status string) (RowOrder, error)
}

// RowOrder is an order row from the database
type RowOrder struct {
	ID              string
	UserID          string
	TotalAmount     float64
	ShippingAddress string
	BillingAddress  string
	Status          string
	CreatedAt       string
}

// RowItem is an order line row from the database
type RowItem struct {
	OrderID   string
	ProductID string
	Quantity  int
	Price     float64
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

const orderCols = `id::text, user_id::text, total_amount::float8, shipping_address, billing_address, status, created_at::text`

func scanOrder(r store.Row) (RowOrder, error) {
	var o RowOrder
	err := r.Scan(&o.ID, &o.UserID, &o.TotalAmount, &o.ShippingAddress, &o.BillingAddress, &o.Status, &o.CreatedAt)
	return o, err
}

func scanItem(r store.Row) (RowItem, error) {
	var it RowItem
	err := r.Scan(&it.OrderID, &it.ProductID, &it.Quantity, &it.Price)
	return it, err
}

func (r *queries) InsertOrder(ctx context.Context, row RowOrder) (RowOrder, error) {
	const sql = `
insert into orders (id, user_id, total_amount, shipping_address, billing_address, status)
values ($1, $2, $3, $4, $5, $6)
returning ` + orderCols
	return store.One(ctx, r.q, scanOrder, sql,
		row.ID, row.UserID, row.TotalAmount, row.ShippingAddress, row.BillingAddress, row.Status,
	)
}

func (r *queries) InsertItems(ctx context.Context, orderID string, items []RowItem) error {
	if len(items) == 0 {
		return nil
	}
	pids := make([]string, 0, len(items))
	qtys := make([]int, 0, len(items))
	prices := make([]float64, 0, len(items))
	for _, it := range items {
		pids = append(pids, it.ProductID)
		qtys = append(qtys, it.Quantity)
		prices = append(prices, it.Price)
	}
	const sql = `
insert into order_items (order_id, product_id, quantity, price)
select $1, t.product_id, t.quantity, t.price
from unnest($2::uuid[], $3::int[], $4::float8[]) as t(product_id, quantity, price)`
	tag, err := store.Exec(ctx, r.q, sql, orderID, pids, qtys, prices)
	if err != nil {
		return err
	}
	if got := tag.RowsAffected(); got != int64(len(items)) {
		return fmt.Errorf("order items insert affected %d rows, want %d", got, len(items))
	}
	return nil
}

func (r *queries) Get(ctx context.Context, id string) (RowOrder, error) {
	const sql = `select ` + orderCols + ` from orders where id = $1`
	return store.One(ctx, r.q, scanOrder, sql, id)
}

func (r *queries) ListByUser(ctx context.Context, userID string) ([]RowOrder, error) {
	const sql = `select ` + orderCols + ` from orders where user_id = $1 order by created_at desc`
	return store.Many(ctx, r.q, scanOrder, sql, userID)
}

func (r *queries) ListAll(ctx context.Context) ([]RowOrder, error) {
	const sql = `select ` + orderCols + ` from orders order by created_at desc`
	return store.Many(ctx, r.q, scanOrder, sql)
}

func (r *queries) ListItemsByOrders(ctx context.Context, orderIDs []string) ([]RowItem, error) {
	if len(orderIDs) == 0 {
		return nil, nil
	}
	const sql = `
select order_id::text, product_id::text, quantity, price::float8
from order_items
where order_id = any($1::uuid[])`
	return store.Many(ctx, r.q, scanItem, sql, orderIDs)
}

func (r *queries) UpdateStatus(ctx context.Context, id, status string) (RowOrder, error) {
	const sql = `update orders set status = $2 where id = $1 returning ` + orderCols
	return store.One(ctx, r.q, scanOrder, sql, id, status)
}
