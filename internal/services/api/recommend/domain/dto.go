// Package domain holds DTOs for the recommendation selector
package domain

import (
	catalogdom "davenport/internal/services/api/catalog/domain"
)

// SelectInput requests recommendations for a browsing context.
// Both ids are optional; either unlocks more specific stages.
type SelectInput struct {
	UserID    string `json:"user_id,omitempty" validate:"omitempty,max=64" example:"c1b9e6ae-9c59-4f9f-8a34-1de4f1d4e821"`
	ProductID string `json:"product_id,omitempty" validate:"omitempty,uuid"`
	Limit     int    `json:"limit,omitempty" validate:"omitempty,min=1,max=100" example:"6"`
}

// SelectOutput is the wire shape of a recommendation response
type SelectOutput struct {
	Recommendations []catalogdom.Product `json:"recommendations"`
}
