package impl

import (
	"context"
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"
	"storefront/internal/infra/cache"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type adminServiceFixtures struct {
	service usecase.AdminUsecase
	repo    *mockRepo.MockAdminRepository
	cache   *cache.ResponseCache
}

func createTestAdminService(t *testing.T, cfg *config.Config) adminServiceFixtures {
	repo := mockRepo.NewMockAdminRepository(t)
	responseCache, _ := newTestCache()

	return adminServiceFixtures{
		service: NewAdminService(repo, responseCache, cfg, newDiscardLogger()),
		repo:    repo,
		cache:   responseCache,
	}
}

func primeProductCache(c *cache.ResponseCache) {
	c.Set(cache.CategoriesKey, []entity.Category{{ID: 1}})
	c.Set(cache.ProductsKey(nil), []entity.Product{{ID: 1}})
	c.Set(cache.ProductsKey(int64Ptr(1)), []entity.Product{{ID: 1}})
}

func TestAdminService_ProductWritesInvalidateProductLists(t *testing.T) {
	fx := createTestAdminService(t, newTestConfig(config.CatalogOnErrorFallback))
	ctx := context.Background()
	input := entity.ProductInput{Name: "Kettle", Price: entity.Rupees(999), Category: 4, Stock: 10, IsActive: true}

	fx.repo.On("CreateProduct", ctx, input).Return(&entity.Product{ID: 9, Name: "Kettle"}, nil).Once()
	fx.repo.On("UpdateProduct", ctx, int64(9), mock.Anything).Return(&entity.Product{ID: 9}, nil).Once()
	fx.repo.On("DeleteProduct", ctx, int64(9)).Return(nil).Once()

	primeProductCache(fx.cache)
	_, err := fx.service.CreateProduct(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, 1, fx.cache.Len(), "only categories survive")

	primeProductCache(fx.cache)
	stock := 3
	_, err = fx.service.UpdateProduct(ctx, 9, entity.ProductPatch{Stock: &stock})
	require.NoError(t, err)
	assert.Equal(t, 1, fx.cache.Len())

	primeProductCache(fx.cache)
	require.NoError(t, fx.service.DeleteProduct(ctx, 9))
	_, ok := fx.cache.Get(cache.ProductsKey(nil))
	assert.False(t, ok)
}

func TestAdminService_FailedWriteKeepsCache(t *testing.T) {
	fx := createTestAdminService(t, newTestConfig(config.CatalogOnErrorFallback))
	ctx := context.Background()

	fx.repo.On("DeleteProduct", ctx, int64(9)).
		Return(domainerrors.NewHTTPError("delete product", 403, "You do not have permission")).Once()

	primeProductCache(fx.cache)
	err := fx.service.DeleteProduct(ctx, 9)
	require.Error(t, err)
	assert.True(t, domainerrors.IsForbidden(err))
	assert.Equal(t, 3, fx.cache.Len())
}

func TestAdminService_InvalidationDisabled(t *testing.T) {
	cfg := newTestConfig(config.CatalogOnErrorFallback)
	cfg.Cache.InvalidateOnWrite = false
	fx := createTestAdminService(t, cfg)
	ctx := context.Background()

	fx.repo.On("DeleteProduct", ctx, int64(1)).Return(nil).Once()

	primeProductCache(fx.cache)
	require.NoError(t, fx.service.DeleteProduct(ctx, 1))
	assert.Equal(t, 3, fx.cache.Len())
}

func TestAdminService_CreateProduct_Validation(t *testing.T) {
	fx := createTestAdminService(t, newTestConfig(config.CatalogOnErrorFallback))

	_, err := fx.service.CreateProduct(context.Background(), entity.ProductInput{Name: "", Price: 0})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidation))

	negative := entity.Money(-1)
	_, err = fx.service.UpdateProduct(context.Background(), 1, entity.ProductPatch{Price: &negative})
	assert.True(t, errors.Is(err, domainerrors.ErrValidation))
}

func TestAdminService_DashboardStats(t *testing.T) {
	t.Run("remote", func(t *testing.T) {
		fx := createTestAdminService(t, newTestConfig(config.CatalogOnErrorFallback))
		ctx := context.Background()
		want := &entity.DashboardStats{TotalOrders: 3}
		fx.repo.On("AdminDashboardStats", ctx).Return(want, nil).Once()

		got, err := fx.service.DashboardStats(ctx)
		require.NoError(t, err)
		assert.Same(t, want, got)
	})

	t.Run("fallback", func(t *testing.T) {
		fx := createTestAdminService(t, newTestConfig(config.CatalogOnErrorFallback))
		ctx := context.Background()
		fx.repo.On("AdminDashboardStats", ctx).Return(nil, errOffline).Once()

		got, err := fx.service.DashboardStats(ctx)
		require.NoError(t, err)
		assert.Equal(t, 47, got.TotalOrders)
		assert.Equal(t, 12, got.PendingPayments)
		require.Len(t, got.RecentOrders, 3)
		assert.Equal(t, "Rajesh Kumar", got.RecentOrders[0].CustomerName)
	})

	t.Run("propagate", func(t *testing.T) {
		fx := createTestAdminService(t, newTestConfig(config.CatalogOnErrorPropagate))
		ctx := context.Background()
		fx.repo.On("AdminDashboardStats", ctx).Return(nil, errOffline).Once()

		_, err := fx.service.DashboardStats(ctx)
		assert.True(t, errors.Is(err, domainerrors.ErrTransport))
	})
}

func TestAdminService_Integrations(t *testing.T) {
	fx := createTestAdminService(t, newTestConfig(config.CatalogOnErrorFallback))
	ctx := context.Background()
	verify := entity.PaymentVerificationInput{PaymentID: "pay_1", OrderID: 1001, Amount: entity.Rupees(1250)}
	refund := entity.RefundInput{PaymentID: "pay_1", Amount: entity.Rupees(1250), Reason: "damaged"}

	fx.repo.On("CreateDelhiveryShipment", ctx, int64(5)).Return(entity.Ack{"waybill": "123"}, nil).Once()
	fx.repo.On("VerifyRazorpayPayment", ctx, verify).Return(entity.Ack{"verified": true}, nil).Once()
	fx.repo.On("CreateRazorpayRefund", ctx, refund).
		Return(nil, domainerrors.NewHTTPError("create refund", 400, "Refund amount exceeds payment")).Once()
	fx.repo.On("ApprovePayment", ctx, int64(1001)).Return(entity.Ack{"message": "approved"}, nil).Once()
	fx.repo.On("RejectPayment", ctx, int64(1002)).Return(entity.Ack{"message": "rejected"}, nil).Once()
	fx.repo.On("OrderTracking", ctx, int64(1001)).Return(entity.Ack{"status": "in transit"}, nil).Once()

	ack, err := fx.service.CreateDelhiveryShipment(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, "123", ack["waybill"])

	_, err = fx.service.VerifyRazorpayPayment(ctx, verify)
	require.NoError(t, err)

	_, err = fx.service.CreateRazorpayRefund(ctx, refund)
	require.Error(t, err)
	assert.Equal(t, "Refund amount exceeds payment", err.Error())

	_, err = fx.service.CreateRazorpayRefund(ctx, entity.RefundInput{})
	assert.True(t, errors.Is(err, domainerrors.ErrValidation))

	ack, err = fx.service.ApprovePayment(ctx, 1001)
	require.NoError(t, err)
	assert.Equal(t, "approved", ack.Message())
	_, err = fx.service.RejectPayment(ctx, 1002)
	require.NoError(t, err)
	_, err = fx.service.OrderTracking(ctx, 1001)
	require.NoError(t, err)
}
