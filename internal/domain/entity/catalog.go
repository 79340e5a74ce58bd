// Package entity contains the core business objects of the storefront,
// shaped after the JSON documents served by the remote API.
package entity

import "time"

// Category groups products in the catalog. Clients only ever read categories.
type Category struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Image       *string   `json:"image"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Product is a sellable item. CategoryName is denormalized by the server.
type Product struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Price        Money     `json:"price"`
	Image        string    `json:"image"`
	Category     int64     `json:"category"`
	CategoryName string    `json:"category_name"`
	Stock        int       `json:"stock"`
	IsActive     bool      `json:"is_active"`
	IsInStock    bool      `json:"is_in_stock"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// InStock reports whether the product can be ordered.
func (p Product) InStock() bool {
	return p.Stock > 0 && p.IsActive
}

// ProductInput is the writable part of a product, used by the admin console.
type ProductInput struct {
	Name         string `json:"name" validate:"required"`
	Description  string `json:"description"`
	Price        Money  `json:"price" validate:"gt=0"`
	Image        string `json:"image,omitempty"`
	Category     int64  `json:"category" validate:"gt=0"`
	CategoryName string `json:"category_name,omitempty"`
	Stock        int    `json:"stock" validate:"gte=0"`
	IsActive     bool   `json:"is_active"`
}

// ProductPatch carries a partial product update; nil fields are omitted.
type ProductPatch struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Price       *Money  `json:"price,omitempty"`
	Image       *string `json:"image,omitempty"`
	Category    *int64  `json:"category,omitempty"`
	Stock       *int    `json:"stock,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}
