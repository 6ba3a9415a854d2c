// Package domain holds DTOs for the payment stub
package domain

import "time"

// Payment statuses
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

// PaymentInput drives both operations of the payment endpoint
type PaymentInput struct {
	Action        string  `json:"action" validate:"required,oneof=create verify" example:"create"`
	OrderID       string  `json:"order_id" validate:"required,uuid"`
	Amount        float64 `json:"amount,omitempty" validate:"required_if=Action create,omitempty,gt=0" example:"549.90"`
	Method        string  `json:"method,omitempty" validate:"required_if=Action create,omitempty,oneof=card bank_transfer paypal" example:"card"`
	TransactionID string  `json:"transaction_id,omitempty" validate:"required_if=Action verify,omitempty,startswith=TXN-"`
}

// Payment is the wire shape of a payment record
type Payment struct {
	ID            string  `json:"id"`
	OrderID       string  `json:"order_id"`
	TransactionID string  `json:"transaction_id"`
	Amount        float64 `json:"amount"`
	Method        string  `json:"method"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"created_at"`
	// null while the payment is pending
	CompletedAt *time.Time `json:"completed_at"`
}
