package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"storefront/internal/domain/entity"
)

// ListCategories fetches every category.
func (c *Client) ListCategories(ctx context.Context) ([]entity.Category, error) {
	var categories []entity.Category
	err := c.do(ctx, &request{op: "fetch categories", method: http.MethodGet, path: "/categories/"}, &categories)
	if err != nil {
		return nil, err
	}

	return categories, nil
}

// ListProducts fetches the products, restricted to one category when categoryID is set.
func (c *Client) ListProducts(ctx context.Context, categoryID *int64) ([]entity.Product, error) {
	req := &request{op: "fetch products", method: http.MethodGet, path: "/products/"}
	if categoryID != nil {
		req.query = url.Values{"category": {strconv.FormatInt(*categoryID, 10)}}
	}

	var products []entity.Product
	if err := c.do(ctx, req, &products); err != nil {
		return nil, err
	}

	return products, nil
}

// GetProduct fetches one product.
func (c *Client) GetProduct(ctx context.Context, id int64) (*entity.Product, error) {
	var product entity.Product
	err := c.do(ctx, &request{
		op:     "fetch product",
		method: http.MethodGet,
		path:   "/products/" + strconv.FormatInt(id, 10) + "/",
	}, &product)
	if err != nil {
		return nil, err
	}

	return &product, nil
}

// UPISettings fetches the merchant's UPI payee settings.
func (c *Client) UPISettings(ctx context.Context) ([]entity.UPISettings, error) {
	var settings []entity.UPISettings
	err := c.do(ctx, &request{op: "fetch UPI settings", method: http.MethodGet, path: "/upi-settings/"}, &settings)
	if err != nil {
		return nil, err
	}

	return settings, nil
}
