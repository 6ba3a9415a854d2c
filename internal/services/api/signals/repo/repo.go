// Package repo provides postgres access for affinity signals
package repo

import (
	"context"
	"time"

	"davenport/internal/modkit/repokit"
	"davenport/internal/platform/store"
)

// Repo defines the repository contract for signals
type Repo interface {
	RecentHighReviews(ctx context.Context, userID string, minRating, limit int) ([]string, error)
	RecentWishlist(ctx context.Context, userID string, limit int) ([]string, error)
	RecentInteractions(ctx context.Context, userID string, limit int) ([]string, error)
	TrendingCounts(ctx context.Context, since time.Time, kinds []string, limit int) ([]RowTrending, error)
	InsertInteraction(ctx context.Context, id, userID, productID, kind string) error
	UpsertWishlist(ctx context.Context, userID, productID string) error
	DeleteWishlist(ctx context.Context, userID, productID string) error
	InsertReview(ctx context.Context, id, userID, productID string, rating int, comment string) error
}

// RowTrending is one aggregated trending row
type RowTrending struct {
	ProductID string
	Count     int
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

func scanID(r store.Row) (string, error) {
	var id string
	err := r.Scan(&id)
	return id, err
}

func (r *queries) RecentHighReviews(ctx context.Context, userID string, minRating, limit int) ([]string, error) {
	const sql = `
select product_id::text
from reviews
where user_id = $1 and rating >= $2
order by created_at desc, id desc
limit $3
`
	return store.Many(ctx, r.q, scanID, sql, userID, minRating, limit)
}

func (r *queries) RecentWishlist(ctx context.Context, userID string, limit int) ([]string, error) {
	const sql = `
select product_id::text
from wishlist_items
where user_id = $1
order by created_at desc, product_id desc
limit $2
`
	return store.Many(ctx, r.q, scanID, sql, userID, limit)
}

func (r *queries) RecentInteractions(ctx context.Context, userID string, limit int) ([]string, error) {
	const sql = `
select product_id::text
from product_interactions
where user_id = $1
order by created_at desc, id desc
limit $2
`
	return store.Many(ctx, r.q, scanID, sql, userID, limit)
}

// TrendingCounts ranks by volume desc with product id as the tie break
func (r *queries) TrendingCounts(ctx context.Context, since time.Time, kinds []string, limit int) ([]RowTrending, error) {
	if limit <= 0 {
		return nil, nil
	}
	const sql = `
select product_id::text, count(*)::int as hits
from product_interactions
where created_at >= $1 and kind = any($2::text[])
group by product_id
order by hits desc, product_id asc
limit $3
`
	scan := func(row store.Row) (RowTrending, error) {
		var t RowTrending
		err := row.Scan(&t.ProductID, &t.Count)
		return t, err
	}
	return store.Many(ctx, r.q, scan, sql, since, kinds, limit)
}

func (r *queries) InsertInteraction(ctx context.Context, id, userID, productID, kind string) error {
	const sql = `
insert into product_interactions (id, user_id, product_id, kind)
values ($1, nullif($2, ''), $3, $4)
`
	_, err := r.q.Exec(ctx, sql, id, userID, productID, kind)
	return err
}

func (r *queries) UpsertWishlist(ctx context.Context, userID, productID string) error {
	const sql = `
insert into wishlist_items (user_id, product_id)
values ($1, $2)
on conflict (user_id, product_id) do nothing
`
	_, err := r.q.Exec(ctx, sql, userID, productID)
	return err
}

func (r *queries) DeleteWishlist(ctx context.Context, userID, productID string) error {
	const sql = `delete from wishlist_items where user_id = $1 and product_id = $2`
	_, err := r.q.Exec(ctx, sql, userID, productID)
	return err
}

func (r *queries) InsertReview(ctx context.Context, id, userID, productID string, rating int, comment string) error {
	const sql = `
insert into reviews (id, user_id, product_id, rating, comment)
values ($1, $2, $3, $4, nullif($5, ''))
`
	_, err := r.q.Exec(ctx, sql, id, userID, productID, rating, comment)
	return err
}
