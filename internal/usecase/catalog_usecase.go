// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CatalogUsecase defines the cached, fallback-aware catalog reads.
type CatalogUsecase interface {
	// GetCategories returns every category.
	GetCategories(ctx context.Context) ([]entity.Category, error)

	// GetProducts returns the products of one category, or all products when categoryID is nil.
	GetProducts(ctx context.Context, categoryID *int64) ([]entity.Product, error)

	// GetProduct returns one product. It is never served from the cache.
	GetProduct(ctx context.Context, id int64) (*entity.Product, error)

	// FallbackCount reports how many reads were answered from seed data.
	FallbackCount() int64
}
