// Package repository defines the interfaces for the remote storefront API.
// These interfaces act as a contract between the application layer and the
// HTTP client in the infrastructure layer.
package repository

import (
	"context"
	"io"

	"storefront/internal/domain/entity"
)

// CatalogRepository reads the public catalog.
type CatalogRepository interface {
	// ListCategories retrieves every category.
	ListCategories(ctx context.Context) ([]entity.Category, error)

	// ListProducts retrieves active products, restricted to one category when categoryID is non-nil.
	ListProducts(ctx context.Context, categoryID *int64) ([]entity.Product, error)

	// GetProduct retrieves a single product by its ID.
	GetProduct(ctx context.Context, id int64) (*entity.Product, error)

	// UPISettings retrieves the merchant's UPI payee settings.
	UPISettings(ctx context.Context) ([]entity.UPISettings, error)
}

// OrderRepository places orders and collects payment proofs.
type OrderRepository interface {
	CreateOrder(ctx context.Context, input entity.CreateOrderInput) (*entity.Order, error)
	UploadPaymentProof(ctx context.Context, orderID int64, filename string, file io.Reader) (entity.Ack, error)
}
