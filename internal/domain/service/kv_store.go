// Package service declares the ports the storefront core depends on.
// Concrete implementations live under internal/infra.
package service

import (
	"context"

	"storefront/internal/errors"
)

// ErrKeyNotFound is returned by KeyValueStore.Get for a missing key.
var ErrKeyNotFound = errors.New("key not found")

// KeyValueStore is durable client-local storage with string keys and values,
// the equivalent of a browser's local storage.
type KeyValueStore interface {
	// Get returns the stored value or ErrKeyNotFound.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the underlying resources.
	Close() error
}
