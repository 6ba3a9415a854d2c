// Package repo provides postgres access for the catalog
package repo

import (
	"context"

	"davenport/internal/modkit/repokit"
	"davenport/internal/platform/store"
)

// Repo defines the repository contract for catalog products
type Repo interface {
	Get(ctx context.Context, id string) (RowProduct, error)
	ListByIDs(ctx context.Context, ids []string) ([]RowProduct, error)
	ListByCategories(ctx context.Context, categoryIDs, excludeIDs []string, limit int) ([]RowProduct, error)
	ListSimilar(ctx context.Context, categoryID string, minPrice, maxPrice float64, excludeID string, limit int) ([]RowProduct, error)
	ListFeatured(ctx context.Context, limit int) ([]RowProduct, error)
	ListCategories(ctx context.Context) ([]RowCategory, error)
	Insert(ctx context.Context, row RowProduct) (RowProduct, error)
	Update(ctx context.Context, id string, name, description, material, style *string, price *float64, featured *bool, slug *string) (RowProduct, error)
}

// RowProduct is a product row from the database
type RowProduct struct {
	ID          string
	Name        string
	Slug        string
	Description string
	CategoryID  string
	Material    string
	Style       string
	Price       float64
	Featured    bool
	CreatedAt   string
}

// RowCategory is a category row from the database
type RowCategory struct {
	ID   string
	Name string
	Slug string
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

const productCols = `id::text, name, slug, coalesce(description, ''), category_id::text,
coalesce(material, ''), coalesce(style, ''), price::float8, featured, created_at::text`

func scanProduct(r store.Row) (RowProduct, error) {
	var p RowProduct
	err := r.Scan(
		&p.ID,
		&p.Name,
		&p.Slug,
		&p.Description,
		&p.CategoryID,
		&p.Material,
		&p.Style,
		&p.Price,
		&p.Featured,
		&p.CreatedAt,
	)
	return p, err
}

func (r *queries) Get(ctx context.Context, id string) (RowProduct, error) {
	const sql = `select ` + productCols + ` from products where id = $1`
	return store.One(ctx, r.q, scanProduct, sql, id)
}

// ListByIDs resolves an id set preserving the input order
func (r *queries) ListByIDs(ctx context.Context, ids []string) ([]RowProduct, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	const sql = `
select p.id::text, p.name, p.slug, coalesce(p.description, ''), p.category_id::text,
coalesce(p.material, ''), coalesce(p.style, ''), p.price::float8, p.featured, p.created_at::text
from products p
join unnest($1::uuid[]) with ordinality as want(id, ord) on p.id = want.id
order by want.ord
`
	return store.Many(ctx, r.q, scanProduct, sql, ids)
}

func (r *queries) ListByCategories(ctx context.Context, categoryIDs, excludeIDs []string, limit int) ([]RowProduct, error) {
	if len(categoryIDs) == 0 || limit <= 0 {
		return nil, nil
	}
	if excludeIDs == nil {
		excludeIDs = []string{}
	}
	const sql = `
select ` + productCols + `
from products
where category_id = any($1::uuid[])
  and not (id = any($2::uuid[]))
order by created_at desc, id desc
limit $3
`
	return store.Many(ctx, r.q, scanProduct, sql, categoryIDs, excludeIDs, limit)
}

// ListSimilar filters on category and price band together, both must hold
func (r *queries) ListSimilar(ctx context.Context, categoryID string, minPrice, maxPrice float64, excludeID string, limit int) ([]RowProduct, error) {
	if limit <= 0 {
		return nil, nil
	}
	const sql = `
select ` + productCols + `
from products
where category_id = $1
  and price between $2 and $3
  and id <> $4
order by created_at desc, id desc
limit $5
`
	return store.Many(ctx, r.q, scanProduct, sql, categoryID, minPrice, maxPrice, excludeID, limit)
}

func (r *queries) ListFeatured(ctx context.Context, limit int) ([]RowProduct, error) {
	if limit <= 0 {
		return nil, nil
	}
	const sql = `
select ` + productCols + `
from products
where featured
order by created_at desc, id desc
limit $1
`
	return store.Many(ctx, r.q, scanProduct, sql, limit)
}

func (r *queries) ListCategories(ctx context.Context) ([]RowCategory, error) {
	const sql = `select id::text, name, slug from categories order by name asc`
	scan := func(row store.Row) (RowCategory, error) {
		var c RowCategory
		err := row.Scan(&c.ID, &c.Name, &c.Slug)
		return c, err
	}
	return store.Many(ctx, r.q, scan, sql)
}

func (r *queries) Insert(ctx context.Context, row RowProduct) (RowProduct, error) {
	const sql = `
insert into products (id, name, slug, description, category_id, material, style, price, featured)
values ($1, $2, $3, nullif($4, ''), $5, nullif($6, ''), nullif($7, ''), $8, $9)
returning ` + productCols
	return store.One(ctx, r.q, scanProduct, sql,
		row.ID, row.Name, row.Slug, row.Description, row.CategoryID, row.Material, row.Style, row.Price, row.Featured,
	)
}

func (r *queries) Update(
	ctx context.Context,
	id string,
	name, description, material, style *string,
	price *float64,
	featured *bool,
	slug *string,
) (RowProduct, error) {
	const sql = `
update products set
  name        = coalesce($2, name),
  description = coalesce($3, description),
  material    = coalesce($4, material),
  style       = coalesce($5, style),
  price       = coalesce($6, price),
  featured    = coalesce($7, featured),
  slug        = coalesce($8, slug)
where id = $1
returning ` + productCols
	return store.One(ctx, r.q, scanProduct, sql, id, name, description, material, style, price, featured, slug)
}
