package handler

import (
	"net/http"
	"strconv"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler serves the public catalog.
type CatalogHandler struct {
	uc usecase.CatalogUsecase
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// ListCategories handles GET /api/categories.
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories, err := h.uc.GetCategories(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, categories, "")
}

// ListProducts handles GET /api/products with an optional ?category= filter.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	var categoryID *int64
	if raw := c.QueryParam("category"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return response.BindingError(c, "INVALID_CATEGORY", "Category must be a number")
		}
		categoryID = &id
	}

	products, err := h.uc.GetProducts(c.Request().Context(), categoryID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "")
}

// GetProduct handles GET /api/products/:id.
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return response.BindingError(c, "INVALID_ID", "Product id must be a positive number")
	}

	product, err := h.uc.GetProduct(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "")
}

// CacheStats handles GET /api/catalog/stats.
func (h *CatalogHandler) CacheStats(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]int64{
		"fallbacks": h.uc.FallbackCount(),
	}, "")
}
