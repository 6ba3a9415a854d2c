package domain

import "context"

// ServicePort defines the orders contract
type ServicePort interface {
	Create(ctx context.Context, in CreateOrderInput) (Order, error)
	List(ctx context.Context, userID string) ([]Order, error)
	ListAll(ctx context.Context) ([]Order, error)
	Get(ctx context.Context, id string) (Order, error)
	UpdateStatus(ctx context.Context, id, status string) (Order, error)
	Cancel(ctx context.Context, id string) (Order, error)
}
