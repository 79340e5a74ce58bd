package impl

import (
	"context"
	"io"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	orders  repository.OrderRepository
	catalog repository.CatalogRepository
	qrcode  service.PaymentQRService
	logger  *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(
	orders repository.OrderRepository,
	catalog repository.CatalogRepository,
	qrcode service.PaymentQRService,
	logger *slog.Logger,
) usecase.OrderUsecase {
	return &orderService{
		orders:  orders,
		catalog: catalog,
		qrcode:  qrcode,
		logger:  logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerOr(ctx, srv.logger)
}

// CreateOrder validates the checkout payload and places the order.
func (srv *orderService) CreateOrder(ctx context.Context, input entity.CreateOrderInput) (*entity.Order, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	order, err := srv.orders.CreateOrder(ctx, input)
	if err != nil {
		srv.log(ctx).Info("Order rejected", slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Order created",
		slog.Int64("order_id", order.ID),
		slog.String("total", order.TotalAmount.String()),
	)

	return order, nil
}

// UploadPaymentProof attaches the payment screenshot to an order.
func (srv *orderService) UploadPaymentProof(ctx context.Context, orderID int64, filename string, file io.Reader) (entity.Ack, error) {
	if orderID <= 0 {
		return nil, errors.Wrap(domainerrors.ErrValidation, "order id must be positive")
	}
	if file == nil {
		return nil, errors.Wrap(domainerrors.ErrValidation, "payment proof file is required")
	}

	return srv.orders.UploadPaymentProof(ctx, orderID, filename, file)
}

// PaymentQR renders the UPI QR code of the first active payee for order.
func (srv *orderService) PaymentQR(ctx context.Context, order entity.Order) ([]byte, error) {
	settings, err := srv.catalog.UPISettings(ctx)
	if err != nil {
		return nil, err
	}

	for _, s := range settings {
		if s.IsActive && s.UPIID != "" {
			png, err := srv.qrcode.GeneratePaymentQR(s, order)
			if err != nil {
				return nil, errors.Wrap(err, "failed to generate payment QR")
			}

			return png, nil
		}
	}

	return nil, domainerrors.ErrUPIUnavailable
}

// ReadPaymentURI rejects anything that is not a storefront UPI payment URI.
func (srv *orderService) ReadPaymentURI(uri string) (*service.PaymentRequest, error) {
	req, err := srv.qrcode.ParsePaymentQR(uri)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrValidation, err.Error())
	}

	return req, nil
}
