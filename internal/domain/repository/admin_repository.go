package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// AdminRepository covers the staff-only endpoints, including the courier and
// payment-gateway integrations. Every call carries the session token.
type AdminRepository interface {
	AdminOrders(ctx context.Context) ([]entity.Order, error)
	AdminDashboardStats(ctx context.Context) (*entity.DashboardStats, error)
	AdminProducts(ctx context.Context) ([]entity.Product, error)

	CreateProduct(ctx context.Context, input entity.ProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, id int64, patch entity.ProductPatch) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id int64) error

	ApprovePayment(ctx context.Context, orderID int64) (entity.Ack, error)
	RejectPayment(ctx context.Context, orderID int64) (entity.Ack, error)
	OrderTracking(ctx context.Context, orderID int64) (entity.Ack, error)

	CreateDelhiveryShipment(ctx context.Context, shipmentID int64) (entity.Ack, error)
	VerifyRazorpayPayment(ctx context.Context, input entity.PaymentVerificationInput) (entity.Ack, error)
	CreateRazorpayRefund(ctx context.Context, input entity.RefundInput) (entity.Ack, error)
}
