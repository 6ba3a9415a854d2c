// Package domain holds DTOs for orders
package domain

// Order statuses walk pending -> confirmed -> processing -> shipped ->
// delivered; cancelled is terminal from anywhere
const (
	StatusPending    = "pending"
	StatusConfirmed  = "confirmed"
	StatusProcessing = "processing"
	StatusShipped    = "shipped"
	StatusDelivered  = "delivered"
	StatusCancelled  = "cancelled"
)

// OrderItem is one line of an order, priced at purchase time
type OrderItem struct {
	ProductID string  `json:"product_id" validate:"required,uuid"`
	Quantity  int     `json:"quantity" validate:"required,gt=0" example:"2"`
	Price     float64 `json:"price" validate:"required,gt=0" example:"549.90"`
}

// Order is the wire shape of an order with its lines
type Order struct {
	ID              string      `json:"id"`
	UserID          string      `json:"user_id"`
	TotalAmount     float64     `json:"total_amount"`
	ShippingAddress string      `json:"shipping_address"`
	BillingAddress  string      `json:"billing_address"`
	Status          string      `json:"status"`
	CreatedAt       string      `json:"created_at"`
	Items           []OrderItem `json:"items"`
}

// CreateOrderInput places an order; the total is derived from the items
type CreateOrderInput struct {
	UserID          string      `json:"user_id,omitempty" validate:"omitempty,uuid"`
	ShippingAddress string      `json:"shipping_address" validate:"required"`
	BillingAddress  string      `json:"billing_address" validate:"required"`
	Items           []OrderItem `json:"items" validate:"required,min=1,dive"`
}

// UpdateStatusInput moves an order to a new status
type UpdateStatusInput struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed processing shipped delivered cancelled"`
}
