// Package session persists the logged-in identity and its bearer tokens in
// durable client-local storage and answers the login-state queries used by
// route guards.
package session

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// Storage keys, shared with the web pages that read local storage directly.
const (
	KeyUser         = "user"
	KeyAccessToken  = "accessToken"
	KeyRefreshToken = "refreshToken"
)

// Store owns the persisted user record and tokens. Read failures of any kind,
// including a corrupt user record, are reported as "not logged in".
type Store struct {
	kv     service.KeyValueStore
	logger *slog.Logger
}

// NewStore is the constructor for Store.
func NewStore(kv service.KeyValueStore, logger *slog.Logger) *Store {
	return &Store{kv: kv, logger: logger}
}

// CurrentUser returns the stored user, or false when absent or unparsable.
// A JSON null or a record without an id counts as absent.
func (s *Store) CurrentUser(ctx context.Context) (*entity.User, bool) {
	raw, ok := s.read(ctx, KeyUser)
	if !ok {
		return nil, false
	}

	var user *entity.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		s.logger.Debug("Ignoring unparsable stored user", slog.Any("error", err))

		return nil, false
	}
	if user == nil || user.ID == 0 {
		return nil, false
	}

	return user, true
}

// AccessToken returns the stored bearer token. It also makes Store a service.TokenSource.
func (s *Store) AccessToken(ctx context.Context) (string, bool) {
	return s.read(ctx, KeyAccessToken)
}

// RefreshToken returns the stored renewal token.
func (s *Store) RefreshToken(ctx context.Context) (string, bool) {
	return s.read(ctx, KeyRefreshToken)
}

// IsLoggedIn reports whether both a user record and an access token are
// stored. Token expiry is not checked; the server answers 401 for stale tokens.
func (s *Store) IsLoggedIn(ctx context.Context) bool {
	if _, ok := s.CurrentUser(ctx); !ok {
		return false
	}
	_, ok := s.AccessToken(ctx)

	return ok
}

// IsAdmin reports whether the stored user may open administrative pages.
func (s *Store) IsAdmin(ctx context.Context) bool {
	user, ok := s.CurrentUser(ctx)
	if !ok || !s.IsLoggedIn(ctx) {
		return false
	}

	return user.IsAdmin()
}

// Save persists the identity returned by a login or registration.
func (s *Store) Save(ctx context.Context, user entity.User, tokens entity.AuthTokens) error {
	data, err := json.Marshal(user)
	if err != nil {
		return errors.Wrap(err, "encode user")
	}

	if err := s.kv.Set(ctx, KeyUser, string(data)); err != nil {
		return errors.Wrap(err, "store user")
	}
	if err := s.kv.Set(ctx, KeyAccessToken, tokens.Access); err != nil {
		return errors.Wrap(err, "store access token")
	}
	if tokens.Refresh == "" {
		if err := s.kv.Delete(ctx, KeyRefreshToken); err != nil {
			return errors.Wrap(err, "clear refresh token")
		}

		return nil
	}
	if err := s.kv.Set(ctx, KeyRefreshToken, tokens.Refresh); err != nil {
		return errors.Wrap(err, "store refresh token")
	}

	return nil
}

// Logout removes the user record and both tokens. The server is not contacted.
func (s *Store) Logout(ctx context.Context) error {
	var errs []error
	for _, key := range []string{KeyUser, KeyAccessToken, KeyRefreshToken} {
		if err := s.kv.Delete(ctx, key); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// AccessTokenExpiry reads the exp claim of the stored access token without
// verifying its signature. Opaque (non-JWT) tokens report false.
func (s *Store) AccessTokenExpiry(ctx context.Context) (time.Time, bool) {
	token, ok := s.AccessToken(ctx)
	if !ok {
		return time.Time{}, false
	}

	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, false
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}

	return exp.Time, true
}

func (s *Store) read(ctx context.Context, key string) (string, bool) {
	value, err := s.kv.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, service.ErrKeyNotFound) {
			s.logger.Warn("Session storage read failed", slog.String("key", key), slog.Any("error", err))
		}

		return "", false
	}
	if value == "" {
		return "", false
	}

	return value, true
}
