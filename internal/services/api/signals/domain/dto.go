// Package domain holds DTOs for affinity signals
package domain

// Interaction kinds tracked against products
const (
	KindView      = "view"
	KindLike      = "like"
	KindAddToCart = "add_to_cart"
	KindPurchase  = "purchase"
)

// RecordInteractionInput is the payload for tracking a product interaction
type RecordInteractionInput struct {
	UserID    string `json:"user_id,omitempty" validate:"omitempty,max=64" example:"c1b9e6ae-9c59-4f9f-8a34-1de4f1d4e821"`
	ProductID string `json:"product_id" validate:"required,uuid"`
	Kind      string `json:"kind" validate:"required,oneof=view like add_to_cart purchase" example:"view"`
}

// AddReviewInput is the payload for reviewing a product
type AddReviewInput struct {
	UserID    string `json:"user_id" validate:"required,max=64"`
	ProductID string `json:"product_id" validate:"required,uuid"`
	Rating    int    `json:"rating" validate:"required,min=1,max=5" example:"4"`
	Comment   string `json:"comment,omitempty" validate:"omitempty,max=4000"`
}

// TrendingProduct is one ranked row of the trending aggregation
type TrendingProduct struct {
	ProductID string `json:"product_id"`
	Count     int    `json:"count"`
}
