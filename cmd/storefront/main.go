package main

import (
	"context"
	"log/slog"
	"os"

	"storefront/config"
	"storefront/internal/delivery"
	"storefront/internal/delivery/http"
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/infra/api"
	"storefront/internal/infra/auth/demo"
	"storefront/internal/infra/cache"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/qrcode"
	"storefront/internal/infra/session"
	"storefront/internal/infra/storage"
	"storefront/internal/infra/tracing"
	"storefront/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			tracing.Register,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			newResponseCache,
		),
		storage.Module,
	)
}

// injectRepo provides the remote API client under every repository port it serves.
func injectRepo() fx.Option {
	return fx.Provide(
		fx.Annotate(
			api.NewClient,
			fx.As(fx.Self()),
			fx.As(new(repository.CatalogRepository)),
			fx.As(new(repository.OrderRepository)),
			fx.As(new(repository.AccountRepository)),
			fx.As(new(repository.AddressRepository)),
			fx.As(new(repository.AdminRepository)),
		),
	)
}

func injectService() fx.Option {
	return fx.Provide(
		fx.Annotate(
			session.NewStore,
			fx.As(new(service.SessionStore)),
			fx.As(new(service.TokenSource)),
		),
		newAuthClient,
		newQRCodeService,
	)
}

func newResponseCache(cfg *config.Config) *cache.ResponseCache {
	return cache.New(cfg.Cache.TTL, nil)
}

// newAuthClient selects the login strategy configured by auth.mode.
func newAuthClient(cfg *config.Config, client *api.Client, logger *slog.Logger) service.AuthClient {
	switch cfg.Auth.Mode {
	case config.AuthModeDemo:
		logger.Warn("Demo login enabled, credentials are not checked")

		return demo.NewClient()
	case config.AuthModeRemoteWithDemoFallback:
		return demo.NewFallbackClient(client, logger)
	default:
		return client
	}
}

// newQRCodeService creates a UPI payment QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.PaymentQRService {
	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Provide(
		impl.NewCatalogService,
		impl.NewOrderService,
		impl.NewAuthService,
		impl.NewAdminService,
		impl.NewAddressService,
	)
}

func injectMiddleware() fx.Option {
	return fx.Provide(
		middleware.NewSessionMiddleware,
	)
}

func injectHandler() fx.Option {
	return fx.Provide(
		handler.NewCatalogHandler,
		handler.NewSessionHandler,
		handler.NewOrderHandler,
		handler.NewAddressHandler,
		handler.NewAdminHandler,
	)
}

func injectDelivery() fx.Option {
	return fx.Provide(
		fx.Annotate(
			http.NewServer,
			fx.ResultTags(`group:"deliveries"`),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
