// Package service contains signals workflows
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"davenport/internal/modkit/repokit"
	"davenport/internal/services/api/signals/domain"
	"davenport/internal/services/api/signals/repo"
)

// Affinity read caps: up to five high reviews, five wishlist items, and
// ten recent interactions feed the collaborative stage.
const (
	highReviewMinRating = 4
	highReviewCap       = 5
	wishlistCap         = 5
	interactionCap      = 10
)

// Service defines the service contract for signals
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
}

// New creates a new signals service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("signals.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("signals.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db}
}

// RecentHighReviews returns product ids the user rated highly
func (s *Svc) RecentHighReviews(ctx context.Context, userID string) ([]string, error) {
	return s.Repo.RecentHighReviews(ctx, userID, highReviewMinRating, highReviewCap)
}

// RecentWishlist returns product ids on the user's wishlist
func (s *Svc) RecentWishlist(ctx context.Context, userID string) ([]string, error) {
	return s.Repo.RecentWishlist(ctx, userID, wishlistCap)
}

// RecentInteractions returns product ids the user recently touched
func (s *Svc) RecentInteractions(ctx context.Context, userID string) ([]string, error) {
	return s.Repo.RecentInteractions(ctx, userID, interactionCap)
}

// Trending ranks products by interaction volume since the given time
func (s *Svc) Trending(ctx context.Context, since time.Time, limit int) ([]domain.TrendingProduct, error) {
	kinds := []string{domain.KindView, domain.KindLike, domain.KindAddToCart}
	rows, err := s.Repo.TrendingCounts(ctx, since, kinds, limit)
	if err != nil {
		return nil, err
	}
	out := make([]domain.TrendingProduct, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.TrendingProduct{ProductID: r.ProductID, Count: r.Count})
	}
	return out, nil
}

// RecordInteraction tracks one product interaction, anonymous allowed
func (s *Svc) RecordInteraction(ctx context.Context, in domain.RecordInteractionInput) error {
	return s.Repo.InsertInteraction(ctx, uuid.NewString(), in.UserID, in.ProductID, in.Kind)
}

// AddWishlist puts a product on the user's wishlist, idempotent
func (s *Svc) AddWishlist(ctx context.Context, userID, productID string) error {
	return s.Repo.UpsertWishlist(ctx, userID, productID)
}

// RemoveWishlist drops a product from the user's wishlist
func (s *Svc) RemoveWishlist(ctx context.Context, userID, productID string) error {
	return s.Repo.DeleteWishlist(ctx, userID, productID)
}

// AddReview stores a product review
func (s *Svc) AddReview(ctx context.Context, in domain.AddReviewInput) error {
	return s.Repo.InsertReview(ctx, uuid.NewString(), in.UserID, in.ProductID, in.Rating, in.Comment)
}
