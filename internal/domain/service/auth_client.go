package service

import (
	"context"

	"storefront/internal/domain/entity"
)

// AuthClient performs a login and returns the authenticated identity.
// The remote API client and the demo client both implement it.
type AuthClient interface {
	Login(ctx context.Context, input entity.LoginInput) (*entity.LoginResponse, error)
}

// TokenSource yields the bearer token attached to authenticated requests.
type TokenSource interface {
	AccessToken(ctx context.Context) (string, bool)
}
