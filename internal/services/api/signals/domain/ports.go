package domain

import (
	"context"
	"time"
)

// AffinityPort is the read surface the recommender consumes
type AffinityPort interface {
	// RecentHighReviews returns product ids the user rated 4 or higher, newest first
	RecentHighReviews(ctx context.Context, userID string) ([]string, error)
	// RecentWishlist returns product ids on the user's wishlist, newest first
	RecentWishlist(ctx context.Context, userID string) ([]string, error)
	// RecentInteractions returns product ids the user touched, newest first
	RecentInteractions(ctx context.Context, userID string) ([]string, error)
	// Trending ranks products by interaction volume since the given time
	Trending(ctx context.Context, since time.Time, limit int) ([]TrendingProduct, error)
}

// ServicePort defines the full signals contract
type ServicePort interface {
	AffinityPort
	RecordInteraction(ctx context.Context, in RecordInteractionInput) error
	AddWishlist(ctx context.Context, userID, productID string) error
	RemoveWishlist(ctx context.Context, userID, productID string) error
	AddReview(ctx context.Context, in AddReviewInput) error
}
