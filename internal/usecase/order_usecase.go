package usecase

import (
	"context"
	"io"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
)

// OrderUsecase defines checkout operations.
type OrderUsecase interface {
	CreateOrder(ctx context.Context, input entity.CreateOrderInput) (*entity.Order, error)
	UploadPaymentProof(ctx context.Context, orderID int64, filename string, file io.Reader) (entity.Ack, error)

	// PaymentQR renders the UPI QR code the customer scans to pay order.
	PaymentQR(ctx context.Context, order entity.Order) ([]byte, error)

	// ReadPaymentURI decodes the upi://pay URI a payment QR code carries.
	ReadPaymentURI(uri string) (*service.PaymentRequest, error)
}
