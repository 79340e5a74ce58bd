package session

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/infra/storage"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	kv, err := storage.OpenBlobStore(context.Background(), "mem://")
	require.NoError(t, err)
	t.Cleanup(func() { _ = kv.Close() })

	return NewStore(kv, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestStore_EmptyIsLoggedOut(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	_, ok := store.CurrentUser(ctx)
	assert.False(t, ok)
	_, ok = store.AccessToken(ctx)
	assert.False(t, ok)
	assert.False(t, store.IsLoggedIn(ctx))
	assert.False(t, store.IsAdmin(ctx))
}

func TestStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	user := entity.User{ID: 7, Username: "asha", Email: "asha@example.com", IsActive: true}
	require.NoError(t, store.Save(ctx, user, entity.AuthTokens{Access: "acc", Refresh: "ref"}))

	assert.True(t, store.IsLoggedIn(ctx))
	got, ok := store.CurrentUser(ctx)
	require.True(t, ok)
	assert.Equal(t, user, *got)
	token, ok := store.AccessToken(ctx)
	require.True(t, ok)
	assert.Equal(t, "acc", token)
	refresh, ok := store.RefreshToken(ctx)
	require.True(t, ok)
	assert.Equal(t, "ref", refresh)
	assert.False(t, store.IsAdmin(ctx))

	require.NoError(t, store.Logout(ctx))

	assert.False(t, store.IsLoggedIn(ctx))
	_, ok = store.CurrentUser(ctx)
	assert.False(t, ok)
	_, ok = store.AccessToken(ctx)
	assert.False(t, ok)
	_, ok = store.RefreshToken(ctx)
	assert.False(t, ok)
}

func TestStore_UserWithoutTokenIsLoggedOut(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.kv.Set(ctx, KeyUser, `{"id":1,"username":"a"}`))
	assert.False(t, store.IsLoggedIn(ctx))

	require.NoError(t, store.kv.Set(ctx, KeyAccessToken, "tok"))
	assert.True(t, store.IsLoggedIn(ctx))
}

func TestStore_CorruptUserIsSwallowed(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.kv.Set(ctx, KeyUser, "{not json"))
	require.NoError(t, store.kv.Set(ctx, KeyAccessToken, "tok"))

	_, ok := store.CurrentUser(ctx)
	assert.False(t, ok)
	assert.False(t, store.IsLoggedIn(ctx))
}

func TestStore_NullOrAnonymousUserIsLoggedOut(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	require.NoError(t, store.kv.Set(ctx, KeyAccessToken, "tok"))

	for _, raw := range []string{"null", "{}", `{"id":0,"username":"ghost"}`} {
		require.NoError(t, store.kv.Set(ctx, KeyUser, raw))

		_, ok := store.CurrentUser(ctx)
		assert.False(t, ok, raw)
		assert.False(t, store.IsLoggedIn(ctx), raw)
		assert.False(t, store.IsAdmin(ctx), raw)
	}
}

func TestStore_IsAdmin(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.Save(ctx, entity.User{ID: 1, IsSuperuser: true}, entity.AuthTokens{Access: "a"}))
	assert.True(t, store.IsAdmin(ctx))

	require.NoError(t, store.Save(ctx, entity.User{ID: 1, IsStaff: true}, entity.AuthTokens{Access: "a"}))
	assert.True(t, store.IsAdmin(ctx))
}

func TestStore_AccessTokenExpiry(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	exp := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "1",
		"exp": exp.Unix(),
	}).SignedString([]byte("any-secret"))
	require.NoError(t, err)

	require.NoError(t, store.Save(ctx, entity.User{ID: 1}, entity.AuthTokens{Access: signed}))
	got, ok := store.AccessTokenExpiry(ctx)
	require.True(t, ok)
	assert.True(t, exp.Equal(got))

	require.NoError(t, store.Save(ctx, entity.User{ID: 1}, entity.AuthTokens{Access: "mock_access_token"}))
	_, ok = store.AccessTokenExpiry(ctx)
	assert.False(t, ok)
}
