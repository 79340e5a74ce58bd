package api

import (
	"context"
	"net/http"

	"storefront/internal/domain/entity"
)

// Addresses lists the address book of the token's owner.
func (c *Client) Addresses(ctx context.Context, token string) ([]entity.Address, error) {
	var addresses []entity.Address
	err := c.do(ctx, &request{
		op:     "fetch addresses",
		method: http.MethodGet,
		path:   "/addresses/",
		auth:   authToken,
		token:  token,
	}, &addresses)
	if err != nil {
		return nil, err
	}

	return addresses, nil
}

// CreateAddress adds an address to the address book.
func (c *Client) CreateAddress(ctx context.Context, input entity.AddressInput, token string) (*entity.Address, error) {
	var address entity.Address
	err := c.do(ctx, &request{
		op:       "create address",
		method:   http.MethodPost,
		path:     "/addresses/",
		jsonBody: input,
		auth:     authToken,
		token:    token,
	}, &address)
	if err != nil {
		return nil, err
	}

	return &address, nil
}

// UpdateAddress applies a partial address update.
func (c *Client) UpdateAddress(ctx context.Context, id int64, patch entity.AddressPatch, token string) (*entity.Address, error) {
	var address entity.Address
	err := c.do(ctx, &request{
		op:       "update address",
		method:   http.MethodPut,
		path:     idPath("/addresses/", id, ""),
		jsonBody: patch,
		auth:     authToken,
		token:    token,
	}, &address)
	if err != nil {
		return nil, err
	}

	return &address, nil
}

// DeleteAddress removes an address.
func (c *Client) DeleteAddress(ctx context.Context, id int64, token string) error {
	return c.do(ctx, &request{
		op:     "delete address",
		method: http.MethodDelete,
		path:   idPath("/addresses/", id, ""),
		auth:   authToken,
		token:  token,
	}, nil)
}
