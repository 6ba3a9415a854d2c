// Package service contains order workflows
package service

import (
	"context"

	"github.com/google/uuid"

	"davenport/internal/modkit/repokit"
	perr "davenport/internal/platform/errors"
	"davenport/internal/services/api/orders/domain"
	"davenport/internal/services/api/orders/repo"
)

// Service defines the service contract for orders
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
}

// New creates a new orders service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("orders.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("orders.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db}
}

func toOrder(r repo.RowOrder, items []repo.RowItem) domain.Order {
	o := domain.Order{
		ID:              r.ID,
		UserID:          r.UserID,
		TotalAmount:     r.TotalAmount,
		ShippingAddress: r.ShippingAddress,
		BillingAddress:  r.BillingAddress,
		Status:          r.Status,
		CreatedAt:       r.CreatedAt,
		Items:           []domain.OrderItem{},
	}
	for _, it := range items {
		o.Items = append(o.Items, domain.OrderItem{ProductID: it.ProductID, Quantity: it.Quantity, Price: it.Price})
	}
	return o
}

// Create places a pending order with its lines in one transaction. The
// total is derived from the lines, never taken from the caller.
func (s *Svc) Create(ctx context.Context, in domain.CreateOrderInput) (domain.Order, error) {
	if in.UserID == "" {
		return domain.Order{}, perr.Unauthorizedf("missing user id")
	}
	if len(in.Items) == 0 {
		return domain.Order{}, perr.InvalidArgf("order needs at least one item")
	}

	var total float64
	items := make([]repo.RowItem, 0, len(in.Items))
	for _, it := range in.Items {
		total += float64(it.Quantity) * it.Price
		items = append(items, repo.RowItem{ProductID: it.ProductID, Quantity: it.Quantity, Price: it.Price})
	}

	var out domain.Order
	err := repokit.WithTx(ctx, s.db, func(q repokit.Queryer) error {
		r := s.binder.Bind(q)
		row, err := r.InsertOrder(ctx, repo.RowOrder{
			ID:              uuid.NewString(),
			UserID:          in.UserID,
			TotalAmount:     total,
			ShippingAddress: in.ShippingAddress,
			BillingAddress:  in.BillingAddress,
			Status:          domain.StatusPending,
		})
		if err != nil {
			return err
		}
		if err := r.InsertItems(ctx, row.ID, items); err != nil {
			return err
		}
		out = toOrder(row, items)
		return nil
	})
	if err != nil {
		return domain.Order{}, err
	}
	return out, nil
}

// attachItems fans order lines back onto their orders, preserving order
func attachItems(rows []repo.RowOrder, items []repo.RowItem) []domain.Order {
	byOrder := make(map[string][]repo.RowItem, len(rows))
	for _, it := range items {
		byOrder[it.OrderID] = append(byOrder[it.OrderID], it)
	}
	out := make([]domain.Order, 0, len(rows))
	for _, row := range rows {
		out = append(out, toOrder(row, byOrder[row.ID]))
	}
	return out
}

func (s *Svc) list(ctx context.Context, rows []repo.RowOrder, err error) ([]domain.Order, error) {
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	items, err := s.Repo.ListItemsByOrders(ctx, ids)
	if err != nil {
		return nil, err
	}
	return attachItems(rows, items), nil
}

// List returns the user's orders, newest first
func (s *Svc) List(ctx context.Context, userID string) ([]domain.Order, error) {
	if userID == "" {
		return nil, perr.Unauthorizedf("missing user id")
	}
	rows, err := s.Repo.ListByUser(ctx, userID)
	return s.list(ctx, rows, err)
}

// ListAll returns every order, newest first
func (s *Svc) ListAll(ctx context.Context) ([]domain.Order, error) {
	rows, err := s.Repo.ListAll(ctx)
	return s.list(ctx, rows, err)
}

// Get returns one order with its lines
func (s *Svc) Get(ctx context.Context, id string) (domain.Order, error) {
	row, err := s.Repo.Get(ctx, id)
	if err != nil {
		return domain.Order{}, err
	}
	items, err := s.Repo.ListItemsByOrders(ctx, []string{row.ID})
	if err != nil {
		return domain.Order{}, err
	}
	return toOrder(row, items), nil
}

var knownStatuses = map[string]struct{}{
	domain.StatusPending:    {},
	domain.StatusConfirmed:  {},
	domain.StatusProcessing: {},
	domain.StatusShipped:    {},
	domain.StatusDelivered:  {},
	domain.StatusCancelled:  {},
}

// UpdateStatus moves the order to the given status
func (s *Svc) UpdateStatus(ctx context.Context, id, status string) (domain.Order, error) {
	if _, ok := knownStatuses[status]; !ok {
		return domain.Order{}, perr.InvalidArgf("unknown order status %q", status)
	}
	row, err := s.Repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return domain.Order{}, err
	}
	items, err := s.Repo.ListItemsByOrders(ctx, []string{row.ID})
	if err != nil {
		return domain.Order{}, err
	}
	return toOrder(row, items), nil
}

// Cancel moves the order to cancelled
func (s *Svc) Cancel(ctx context.Context, id string) (domain.Order, error) {
	return s.UpdateStatus(ctx, id, domain.StatusCancelled)
}
