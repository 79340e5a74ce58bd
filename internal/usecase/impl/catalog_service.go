// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"sync/atomic"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/cache"
	"storefront/internal/usecase"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	repo      repository.CatalogRepository
	cache     *cache.ResponseCache
	fallback  bool
	logger    *slog.Logger
	fallbacks atomic.Int64
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(
	repo repository.CatalogRepository,
	responseCache *cache.ResponseCache,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.CatalogUsecase {
	return &catalogService{
		repo:     repo,
		cache:    responseCache,
		fallback: cfg.Catalog.OnError == config.CatalogOnErrorFallback,
		logger:   logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerOr(ctx, srv.logger)
}

// GetCategories returns the cached categories, the remote ones, or the seed ones.
func (srv *catalogService) GetCategories(ctx context.Context) ([]entity.Category, error) {
	if categories, ok := cache.GetAs[[]entity.Category](srv.cache, cache.CategoriesKey); ok {
		return categories, nil
	}

	categories, err := srv.repo.ListCategories(ctx)
	if err != nil {
		if !srv.fallback {
			return nil, err
		}
		srv.noteFallback(ctx, cache.CategoriesKey, err)
		categories = seedCategories()
	}

	srv.cache.Set(cache.CategoriesKey, categories)

	return categories, nil
}

// GetProducts returns the cached products of the scope, the remote ones, or
// the seed ones filtered to the same category.
func (srv *catalogService) GetProducts(ctx context.Context, categoryID *int64) ([]entity.Product, error) {
	key := cache.ProductsKey(categoryID)
	if products, ok := cache.GetAs[[]entity.Product](srv.cache, key); ok {
		return products, nil
	}

	products, err := srv.repo.ListProducts(ctx, categoryID)
	if err != nil {
		if !srv.fallback {
			return nil, err
		}
		srv.noteFallback(ctx, key, err)
		products = seedProductsIn(categoryID)
	}

	srv.cache.Set(key, products)

	return products, nil
}

// GetProduct fetches one product, looking it up in the seed catalog when the
// remote call fails.
func (srv *catalogService) GetProduct(ctx context.Context, id int64) (*entity.Product, error) {
	product, err := srv.repo.GetProduct(ctx, id)
	if err == nil {
		return product, nil
	}
	if !srv.fallback {
		return nil, err
	}

	srv.noteFallback(ctx, "product", err)
	if product, ok := seedProduct(id); ok {
		return product, nil
	}

	return nil, domainerrors.ErrProductNotFound
}

// FallbackCount reports how many reads were answered from seed data.
func (srv *catalogService) FallbackCount() int64 {
	return srv.fallbacks.Load()
}

func (srv *catalogService) noteFallback(ctx context.Context, scope string, err error) {
	srv.fallbacks.Add(1)
	srv.log(ctx).Warn("Catalog request failed, serving seed data",
		slog.String("scope", scope),
		slog.Int("status", domainerrors.StatusCode(err)),
		slog.Any("error", err),
	)
}
