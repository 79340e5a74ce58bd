// Package cache implements the process-local response cache used for
// idempotent catalog reads.
package cache

import (
	"strconv"
	"strings"
	"sync"
	"time"
)

// DefaultTTL is how long a cached response stays fresh.
const DefaultTTL = 5 * time.Minute

// Clock returns the current time. Tests inject a fake one.
type Clock func() time.Time

type entry struct {
	value    any
	storedAt time.Time
}

// ResponseCache memoizes responses by logical query key for a fixed TTL.
// There is no size bound and no background eviction: stale entries are simply
// reported as absent and overwritten by the next Set.
type ResponseCache struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
	now     Clock
}

// New creates a cache. A non-positive ttl selects DefaultTTL, a nil clock time.Now.
func New(ttl time.Duration, clock Clock) *ResponseCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if clock == nil {
		clock = time.Now
	}

	return &ResponseCache{
		entries: make(map[string]entry),
		ttl:     ttl,
		now:     clock,
	}
}

// TTL returns the freshness window.
func (c *ResponseCache) TTL() time.Duration {
	return c.ttl
}

// Get returns the value stored under key if it is younger than the TTL.
// The boolean distinguishes a miss from a cached nil or empty value.
func (c *ResponseCache) Get(key string) (any, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || c.now().Sub(e.storedAt) >= c.ttl {
		return nil, false
	}

	return e.value, true
}

// Set stores value under key stamped with the current time, replacing any previous entry.
func (c *ResponseCache) Set(key string, value any) {
	c.mu.Lock()
	c.entries[key] = entry{value: value, storedAt: c.now()}
	c.mu.Unlock()
}

// Delete drops a single key.
func (c *ResponseCache) Delete(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

// DeletePrefix drops every key starting with prefix and returns how many were removed.
func (c *ResponseCache) DeletePrefix(prefix string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
			removed++
		}
	}

	return removed
}

// Len returns the number of stored entries, stale ones included.
func (c *ResponseCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

// GetAs is a typed Get. A stored value of another type counts as a miss.
func GetAs[T any](c *ResponseCache, key string) (T, bool) {
	var zero T

	v, ok := c.Get(key)
	if !ok {
		return zero, false
	}
	typed, ok := v.(T)
	if !ok {
		return zero, false
	}

	return typed, true
}

// Cache keys of the catalog reads.
const (
	CategoriesKey     = "categories"
	ProductsPrefix    = "products_"
	productsAllKey    = ProductsPrefix + "all"
	productsByCatPref = ProductsPrefix + "category_"
)

// ProductsKey returns the key of a product listing, filtered by category when
// categoryID is set. The unfiltered listing has its own key.
func ProductsKey(categoryID *int64) string {
	if categoryID == nil {
		return productsAllKey
	}

	return productsByCatPref + strconv.FormatInt(*categoryID, 10)
}
