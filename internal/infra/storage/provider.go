package storage

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// StoreParams holds dependencies for the KeyValueStore, injected by Fx
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewKeyValueStore opens the session storage selected by session.driver.
func NewKeyValueStore(params StoreParams) (service.KeyValueStore, error) {
	logger := params.Logger

	store, err := Open(params.Ctx, params.Config.Session, logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing session storage")

			return store.Close()
		},
	})

	return store, nil
}

// Open opens the store described by cfg without any lifecycle wiring. The
// caller owns the returned store and must Close it.
func Open(ctx context.Context, cfg *config.SessionConfig, logger *slog.Logger) (service.KeyValueStore, error) {
	switch cfg.Driver {
	case config.SessionDriverBlob:
		logger.Info("Using blob session storage", slog.String("bucket_url", cfg.BucketURL))

		return OpenBlobStore(ctx, cfg.BucketURL)
	case config.SessionDriverSQLite:
		logger.Info("Using sqlite session storage", slog.String("path", cfg.SQLitePath))

		return OpenSQLiteStore(ctx, cfg.SQLitePath)
	default:
		return nil, errors.Errorf("unknown session driver: %s", cfg.Driver)
	}
}

// Module provides the storage FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewKeyValueStore),
)
