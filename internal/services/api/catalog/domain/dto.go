// Package domain holds DTOs for catalog http and service contracts
package domain

// Product is a storefront catalog item
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description string  `json:"description,omitempty"`
	CategoryID  string  `json:"category_id"`
	Material    string  `json:"material,omitempty"`
	Style       string  `json:"style,omitempty"`
	Price       float64 `json:"price"`
	Featured    bool    `json:"featured"`
	CreatedAt   string  `json:"created_at"`
}

// Category groups products for browsing and affinity lookups
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// CreateProductInput is the admin payload for adding a product
type CreateProductInput struct {
	Name        string  `json:"name" validate:"required,min=1,max=200" example:"Walnut Coffee Table"`
	Description string  `json:"description,omitempty" validate:"omitempty,max=4000"`
	CategoryID  string  `json:"category_id" validate:"required,uuid" example:"0b9f9a2e-3f9d-4f3a-9a24-7f34cdd7a111"`
	Material    string  `json:"material,omitempty" validate:"omitempty,max=100" example:"walnut"`
	Style       string  `json:"style,omitempty" validate:"omitempty,max=100" example:"mid-century"`
	Price       float64 `json:"price" validate:"required,gt=0" example:"549.90"`
	Featured    bool    `json:"featured,omitempty"`
}

// UpdateProductInput is the admin payload for editing a product
type UpdateProductInput struct {
	ID          string   `json:"id" validate:"required,uuid"`
	Name        *string  `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=4000"`
	Material    *string  `json:"material,omitempty" validate:"omitempty,max=100"`
	Style       *string  `json:"style,omitempty" validate:"omitempty,max=100"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
	Featured    *bool    `json:"featured,omitempty"`
}
