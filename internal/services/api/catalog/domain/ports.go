package domain

import "context"

// ReaderPort is the read surface other modules consume
type ReaderPort interface {
	Get(ctx context.Context, id string) (Product, error)
	ListByIDs(ctx context.Context, ids []string) ([]Product, error)
	ListByCategories(ctx context.Context, categoryIDs, excludeIDs []string, limit int) ([]Product, error)
	ListSimilar(ctx context.Context, categoryID string, minPrice, maxPrice float64, excludeID string, limit int) ([]Product, error)
	ListFeatured(ctx context.Context, limit int) ([]Product, error)
}

// ServicePort defines the full catalog contract
type ServicePort interface {
	ReaderPort
	ListCategories(ctx context.Context) ([]Category, error)
	Create(ctx context.Context, in CreateProductInput) (Product, error)
	Update(ctx context.Context, in UpdateProductInput) (Product, error)
}
