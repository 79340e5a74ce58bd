package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockAdminRepository is a mock of repository.AdminRepository.
type MockAdminRepository struct {
	mock.Mock
}

// NewMockAdminRepository creates a mock whose expectations are asserted at test cleanup.
func NewMockAdminRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAdminRepository {
	m := &MockAdminRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAdminRepository) AdminOrders(ctx context.Context) ([]entity.Order, error) {
	args := m.Called(ctx)
	v, _ := args.Get(0).([]entity.Order)

	return v, args.Error(1)
}

func (m *MockAdminRepository) AdminDashboardStats(ctx context.Context) (*entity.DashboardStats, error) {
	args := m.Called(ctx)
	v, _ := args.Get(0).(*entity.DashboardStats)

	return v, args.Error(1)
}

func (m *MockAdminRepository) AdminProducts(ctx context.Context) ([]entity.Product, error) {
	args := m.Called(ctx)
	v, _ := args.Get(0).([]entity.Product)

	return v, args.Error(1)
}

func (m *MockAdminRepository) CreateProduct(ctx context.Context, input entity.ProductInput) (*entity.Product, error) {
	args := m.Called(ctx, input)
	v, _ := args.Get(0).(*entity.Product)

	return v, args.Error(1)
}

func (m *MockAdminRepository) UpdateProduct(ctx context.Context, id int64, patch entity.ProductPatch) (*entity.Product, error) {
	args := m.Called(ctx, id, patch)
	v, _ := args.Get(0).(*entity.Product)

	return v, args.Error(1)
}

func (m *MockAdminRepository) DeleteProduct(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockAdminRepository) ApprovePayment(ctx context.Context, orderID int64) (entity.Ack, error) {
	return m.ack(m.Called(ctx, orderID))
}

func (m *MockAdminRepository) RejectPayment(ctx context.Context, orderID int64) (entity.Ack, error) {
	return m.ack(m.Called(ctx, orderID))
}

func (m *MockAdminRepository) OrderTracking(ctx context.Context, orderID int64) (entity.Ack, error) {
	return m.ack(m.Called(ctx, orderID))
}

func (m *MockAdminRepository) CreateDelhiveryShipment(ctx context.Context, shipmentID int64) (entity.Ack, error) {
	return m.ack(m.Called(ctx, shipmentID))
}

func (m *MockAdminRepository) VerifyRazorpayPayment(ctx context.Context, input entity.PaymentVerificationInput) (entity.Ack, error) {
	return m.ack(m.Called(ctx, input))
}

func (m *MockAdminRepository) CreateRazorpayRefund(ctx context.Context, input entity.RefundInput) (entity.Ack, error) {
	return m.ack(m.Called(ctx, input))
}

func (m *MockAdminRepository) ack(args mock.Arguments) (entity.Ack, error) {
	v, _ := args.Get(0).(entity.Ack)

	return v, args.Error(1)
}
