package domain

import (
	"context"

	catalogdom "davenport/internal/services/api/catalog/domain"
)

// ServicePort defines the recommendation selector contract
type ServicePort interface {
	Select(ctx context.Context, in SelectInput) ([]catalogdom.Product, error)
}
