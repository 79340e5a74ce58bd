package service

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
)

// SessionStore persists the logged-in identity and its tokens.
type SessionStore interface {
	TokenSource

	CurrentUser(ctx context.Context) (*entity.User, bool)
	RefreshToken(ctx context.Context) (string, bool)
	IsLoggedIn(ctx context.Context) bool
	IsAdmin(ctx context.Context) bool
	Save(ctx context.Context, user entity.User, tokens entity.AuthTokens) error
	Logout(ctx context.Context) error

	// AccessTokenExpiry reads the unverified exp claim of a JWT access token.
	AccessTokenExpiry(ctx context.Context) (time.Time, bool)
}
