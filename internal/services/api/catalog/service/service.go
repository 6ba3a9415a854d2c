// Package service contains catalog workflows
package service

import (
	"context"

	"github.com/google/uuid"

	"davenport/internal/core/slug"
	"davenport/internal/modkit/repokit"
	perr "davenport/internal/platform/errors"
	"davenport/internal/services/api/catalog/domain"
	"davenport/internal/services/api/catalog/repo"
)

// Service defines the service contract for the catalog
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
}

// New creates a new catalog service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("catalog.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("catalog.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db}
}

func toProduct(r repo.RowProduct) domain.Product {
	return domain.Product{
		ID:          r.ID,
		Name:        r.Name,
		Slug:        r.Slug,
		Description: r.Description,
		CategoryID:  r.CategoryID,
		Material:    r.Material,
		Style:       r.Style,
		Price:       r.Price,
		Featured:    r.Featured,
		CreatedAt:   r.CreatedAt,
	}
}

func toProducts(rows []repo.RowProduct) []domain.Product {
	out := make([]domain.Product, 0, len(rows))
	for _, r := range rows {
		out = append(out, toProduct(r))
	}
	return out
}

// Get retrieves a single product by id
func (s *Svc) Get(ctx context.Context, id string) (domain.Product, error) {
	row, err := s.Repo.Get(ctx, id)
	if err != nil {
		return domain.Product{}, err
	}
	return toProduct(row), nil
}

// ListByIDs resolves an id set preserving the input order
func (s *Svc) ListByIDs(ctx context.Context, ids []string) ([]domain.Product, error) {
	rows, err := s.Repo.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return toProducts(rows), nil
}

// ListByCategories lists newest-first products in any of the categories,
// skipping the excluded ids
func (s *Svc) ListByCategories(ctx context.Context, categoryIDs, excludeIDs []string, limit int) ([]domain.Product, error) {
	rows, err := s.Repo.ListByCategories(ctx, categoryIDs, excludeIDs, limit)
	if err != nil {
		return nil, err
	}
	return toProducts(rows), nil
}

// ListSimilar lists same-category products inside the given price band
func (s *Svc) ListSimilar(ctx context.Context, categoryID string, minPrice, maxPrice float64, excludeID string, limit int) ([]domain.Product, error) {
	rows, err := s.Repo.ListSimilar(ctx, categoryID, minPrice, maxPrice, excludeID, limit)
	if err != nil {
		return nil, err
	}
	return toProducts(rows), nil
}

// ListFeatured lists the newest featured products
func (s *Svc) ListFeatured(ctx context.Context, limit int) ([]domain.Product, error) {
	rows, err := s.Repo.ListFeatured(ctx, limit)
	if err != nil {
		return nil, err
	}
	return toProducts(rows), nil
}

// ListCategories lists all categories alphabetically
func (s *Svc) ListCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := s.Repo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Category, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.Category{ID: r.ID, Name: r.Name, Slug: r.Slug})
	}
	return out, nil
}

// Create inserts a new product with a derived slug
func (s *Svc) Create(ctx context.Context, in domain.CreateProductInput) (domain.Product, error) {
	sl := slug.Make(in.Name)
	if sl == "" {
		return domain.Product{}, perr.InvalidArgf("product name %q yields an empty slug", in.Name)
	}
	row, err := s.Repo.Insert(ctx, repo.RowProduct{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Slug:        sl,
		Description: in.Description,
		CategoryID:  in.CategoryID,
		Material:    in.Material,
		Style:       in.Style,
		Price:       in.Price,
		Featured:    in.Featured,
	})
	if err != nil {
		return domain.Product{}, err
	}
	return toProduct(row), nil
}

// Update edits the provided fields; the slug follows a name change
func (s *Svc) Update(ctx context.Context, in domain.UpdateProductInput) (domain.Product, error) {
	var sl *string
	if in.Name != nil {
		v := slug.Make(*in.Name)
		if v == "" {
			return domain.Product{}, perr.InvalidArgf("product name %q yields an empty slug", *in.Name)
		}
		sl = &v
	}
	row, err := s.Repo.Update(ctx, in.ID, in.Name, in.Description, in.Material, in.Style, in.Price, in.Featured, sl)
	if err != nil {
		return domain.Product{}, err
	}
	return toProduct(row), nil
}
