package impl

import (
	"context"
	"log/slog"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/infra/cache"
	"storefront/internal/usecase"
)

// adminService implements the AdminUsecase interface.
type adminService struct {
	repo              repository.AdminRepository
	cache             *cache.ResponseCache
	fallback          bool
	invalidateOnWrite bool
	logger            *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(
	repo repository.AdminRepository,
	responseCache *cache.ResponseCache,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.AdminUsecase {
	return &adminService{
		repo:              repo,
		cache:             responseCache,
		fallback:          cfg.Catalog.OnError == config.CatalogOnErrorFallback,
		invalidateOnWrite: cfg.Cache.InvalidateOnWrite,
		logger:            logger,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerOr(ctx, srv.logger)
}

func (srv *adminService) Orders(ctx context.Context) ([]entity.Order, error) {
	return srv.repo.AdminOrders(ctx)
}

// DashboardStats returns the remote aggregates, or the sample dashboard when
// the call fails and the fallback policy is active.
func (srv *adminService) DashboardStats(ctx context.Context) (*entity.DashboardStats, error) {
	stats, err := srv.repo.AdminDashboardStats(ctx)
	if err == nil {
		return stats, nil
	}
	if !srv.fallback {
		return nil, err
	}

	srv.log(ctx).Warn("Dashboard stats request failed, serving sample data",
		slog.Int("status", domainerrors.StatusCode(err)),
		slog.Any("error", err),
	)

	return seedDashboardStats(), nil
}

func (srv *adminService) Products(ctx context.Context) ([]entity.Product, error) {
	return srv.repo.AdminProducts(ctx)
}

func (srv *adminService) CreateProduct(ctx context.Context, input entity.ProductInput) (*entity.Product, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	product, err := srv.repo.CreateProduct(ctx, input)
	if err != nil {
		return nil, err
	}
	srv.invalidateProducts(ctx)

	return product, nil
}

func (srv *adminService) UpdateProduct(ctx context.Context, id int64, patch entity.ProductPatch) (*entity.Product, error) {
	if patch.Price != nil && *patch.Price <= 0 {
		return nil, errors.Wrap(domainerrors.ErrValidation, "price must be positive")
	}
	if patch.Stock != nil && *patch.Stock < 0 {
		return nil, errors.Wrap(domainerrors.ErrValidation, "stock cannot be negative")
	}

	product, err := srv.repo.UpdateProduct(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	srv.invalidateProducts(ctx)

	return product, nil
}

func (srv *adminService) DeleteProduct(ctx context.Context, id int64) error {
	if err := srv.repo.DeleteProduct(ctx, id); err != nil {
		return err
	}
	srv.invalidateProducts(ctx)

	return nil
}

// invalidateProducts drops every cached product list so that the storefront
// sees catalog edits before the TTL runs out.
func (srv *adminService) invalidateProducts(ctx context.Context) {
	if !srv.invalidateOnWrite {
		return
	}

	n := srv.cache.DeletePrefix(cache.ProductsPrefix)
	srv.log(ctx).Debug("Invalidated cached product lists", slog.Int("entries", n))
}

func (srv *adminService) ApprovePayment(ctx context.Context, orderID int64) (entity.Ack, error) {
	return srv.repo.ApprovePayment(ctx, orderID)
}

func (srv *adminService) RejectPayment(ctx context.Context, orderID int64) (entity.Ack, error) {
	return srv.repo.RejectPayment(ctx, orderID)
}

func (srv *adminService) OrderTracking(ctx context.Context, orderID int64) (entity.Ack, error) {
	return srv.repo.OrderTracking(ctx, orderID)
}

func (srv *adminService) CreateDelhiveryShipment(ctx context.Context, shipmentID int64) (entity.Ack, error) {
	ack, err := srv.repo.CreateDelhiveryShipment(ctx, shipmentID)
	if err != nil {
		return nil, err
	}
	srv.log(ctx).Info("Delhivery shipment created", slog.Int64("shipment_id", shipmentID))

	return ack, nil
}

func (srv *adminService) VerifyRazorpayPayment(ctx context.Context, input entity.PaymentVerificationInput) (entity.Ack, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	return srv.repo.VerifyRazorpayPayment(ctx, input)
}

func (srv *adminService) CreateRazorpayRefund(ctx context.Context, input entity.RefundInput) (entity.Ack, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	ack, err := srv.repo.CreateRazorpayRefund(ctx, input)
	if err != nil {
		return nil, err
	}
	srv.log(ctx).Info("Razorpay refund created",
		slog.String("payment_id", input.PaymentID),
		slog.String("amount", input.Amount.String()),
	)

	return ack, nil
}
