package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"storefront/config"
	"storefront/internal/domain/service"
	"storefront/internal/infra/api"
	"storefront/internal/infra/auth/demo"
	"storefront/internal/infra/cache"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/qrcode"
	"storefront/internal/infra/session"
	"storefront/internal/infra/storage"
	"storefront/internal/usecase"
	"storefront/internal/usecase/impl"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// app holds the usecases one CLI invocation works with.
type app struct {
	out     io.Writer
	printer *message.Printer
	logger  *slog.Logger
	store   service.KeyValueStore
	session service.SessionStore
	catalog usecase.CatalogUsecase
	auth    usecase.AuthUsecase
	orders  usecase.OrderUsecase
}

// newApp wires the CLI from config.yaml, or from defaults when no config
// file is found. Logs go to stderr so that stdout stays parseable.
func newApp(ctx context.Context, out io.Writer) (*app, error) {
	cfg, err := config.New()
	if err != nil {
		cfg = config.Default()
		cfg.Env.Log.Level = "warn"
	}

	logger, err := logs.NewWithWriter(cfg, os.Stderr)
	if err != nil {
		return nil, err
	}

	store, err := storage.Open(ctx, cfg.Session, logger)
	if err != nil {
		return nil, err
	}

	sessions := session.NewStore(store, logger)
	client := api.NewClient(cfg, sessions, logger)

	return &app{
		out:     out,
		printer: message.NewPrinter(language.MustParse("en-IN")),
		logger:  logger,
		store:   store,
		session: sessions,
		catalog: impl.NewCatalogService(client, cache.New(cfg.Cache.TTL, nil), cfg, logger),
		auth:    impl.NewAuthService(newAuthClient(cfg, client, logger), client, sessions, logger),
		orders: impl.NewOrderService(client, client,
			qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel), logger),
	}, nil
}

func newAuthClient(cfg *config.Config, client *api.Client, logger *slog.Logger) service.AuthClient {
	switch cfg.Auth.Mode {
	case config.AuthModeDemo:
		return demo.NewClient()
	case config.AuthModeRemoteWithDemoFallback:
		return demo.NewFallbackClient(client, logger)
	default:
		return client
	}
}

func (a *app) Close() error {
	return a.store.Close()
}
