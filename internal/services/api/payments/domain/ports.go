package domain

import "context"

// ServicePort defines the payments contract
type ServicePort interface {
	Create(ctx context.Context, orderID string, amount float64, method string) (Payment, error)
	Verify(ctx context.Context, orderID, transactionID string) (Payment, error)
}
