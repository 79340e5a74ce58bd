// Package repository provides testify mocks of the repository interfaces.
package repository

import (
	"context"
	"io"

	"storefront/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockCatalogRepository is a mock of repository.CatalogRepository.
type MockCatalogRepository struct {
	mock.Mock
}

// NewMockCatalogRepository creates a mock whose expectations are asserted at test cleanup.
func NewMockCatalogRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCatalogRepository {
	m := &MockCatalogRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCatalogRepository) ListCategories(ctx context.Context) ([]entity.Category, error) {
	args := m.Called(ctx)
	v, _ := args.Get(0).([]entity.Category)

	return v, args.Error(1)
}

func (m *MockCatalogRepository) ListProducts(ctx context.Context, categoryID *int64) ([]entity.Product, error) {
	args := m.Called(ctx, categoryID)
	v, _ := args.Get(0).([]entity.Product)

	return v, args.Error(1)
}

func (m *MockCatalogRepository) GetProduct(ctx context.Context, id int64) (*entity.Product, error) {
	args := m.Called(ctx, id)
	v, _ := args.Get(0).(*entity.Product)

	return v, args.Error(1)
}

func (m *MockCatalogRepository) UPISettings(ctx context.Context) ([]entity.UPISettings, error) {
	args := m.Called(ctx)
	v, _ := args.Get(0).([]entity.UPISettings)

	return v, args.Error(1)
}

// MockOrderRepository is a mock of repository.OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

// NewMockOrderRepository creates a mock whose expectations are asserted at test cleanup.
func NewMockOrderRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockOrderRepository {
	m := &MockOrderRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockOrderRepository) CreateOrder(ctx context.Context, input entity.CreateOrderInput) (*entity.Order, error) {
	args := m.Called(ctx, input)
	v, _ := args.Get(0).(*entity.Order)

	return v, args.Error(1)
}

func (m *MockOrderRepository) UploadPaymentProof(ctx context.Context, orderID int64, filename string, file io.Reader) (entity.Ack, error) {
	args := m.Called(ctx, orderID, filename, file)
	v, _ := args.Get(0).(entity.Ack)

	return v, args.Error(1)
}
