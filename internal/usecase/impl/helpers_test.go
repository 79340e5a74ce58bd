package impl

import (
	"io"
	"log/slog"
	"time"

	"storefront/config"
	"storefront/internal/infra/cache"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(onError string) *config.Config {
	cfg := config.Default()
	cfg.Catalog.OnError = onError

	return cfg
}

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

func newTestCache() (*cache.ResponseCache, *testClock) {
	clock := &testClock{now: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)}

	return cache.New(5*time.Minute, clock.Now), clock
}

func int64Ptr(v int64) *int64 { return &v }
