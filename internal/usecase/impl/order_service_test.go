package impl

import (
	"context"
	"strings"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"
	"storefront/internal/infra/qrcode"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderServiceFixtures struct {
	service usecase.OrderUsecase
	orders  *mockRepo.MockOrderRepository
	catalog *mockRepo.MockCatalogRepository
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	orders := mockRepo.NewMockOrderRepository(t)
	catalog := mockRepo.NewMockCatalogRepository(t)

	return orderServiceFixtures{
		service: NewOrderService(orders, catalog, qrcode.NewQRCodeService(128, "L"), newDiscardLogger()),
		orders:  orders,
		catalog: catalog,
	}
}

func validOrderInput() entity.CreateOrderInput {
	return entity.CreateOrderInput{
		CustomerName:    "Priya Sharma",
		CustomerPhone:   "+91 9876543211",
		CustomerEmail:   "priya@example.com",
		ShippingAddress: "456 Secondary Road",
		TotalAmount:     entity.Rupees(850),
		ShippingCharge:  entity.Rupees(50),
		Items:           []entity.CreateOrderItemInput{{ProductID: 3, Quantity: 1, Price: entity.Rupees(800)}},
	}
}

func TestOrderService_CreateOrder_Success(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	input := validOrderInput()
	want := &entity.Order{ID: 1002, TotalAmount: input.TotalAmount}

	fx.orders.On("CreateOrder", ctx, input).Return(want, nil).Once()

	got, err := fx.service.CreateOrder(ctx, input)
	require.NoError(t, err)
	assert.Same(t, want, got)
}

func TestOrderService_CreateOrder_ValidationFailsBeforeNetwork(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*entity.CreateOrderInput)
	}{
		{"missing name", func(in *entity.CreateOrderInput) { in.CustomerName = "" }},
		{"bad email", func(in *entity.CreateOrderInput) { in.CustomerEmail = "not-an-email" }},
		{"no items", func(in *entity.CreateOrderInput) { in.Items = nil }},
		{"zero quantity", func(in *entity.CreateOrderInput) { in.Items[0].Quantity = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderService(t)
			input := validOrderInput()
			tt.mutate(&input)

			_, err := fx.service.CreateOrder(context.Background(), input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrValidation))
		})
	}
}

func TestOrderService_CreateOrder_ServerMessageSurfaces(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	fx.orders.On("CreateOrder", ctx, mock.Anything).
		Return(nil, domainerrors.NewHTTPError("create order", 400, "Out of stock")).Once()

	_, err := fx.service.CreateOrder(ctx, validOrderInput())
	require.Error(t, err)
	assert.Equal(t, "Out of stock", err.Error())
	assert.Equal(t, 400, domainerrors.StatusCode(err))
}

func TestOrderService_UploadPaymentProof(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	file := strings.NewReader("png")

	fx.orders.On("UploadPaymentProof", ctx, int64(7), "proof.png", file).
		Return(entity.Ack{"message": "uploaded"}, nil).Once()

	ack, err := fx.service.UploadPaymentProof(ctx, 7, "proof.png", file)
	require.NoError(t, err)
	assert.Equal(t, "uploaded", ack.Message())

	_, err = fx.service.UploadPaymentProof(ctx, 0, "proof.png", file)
	assert.True(t, errors.Is(err, domainerrors.ErrValidation))

	_, err = fx.service.UploadPaymentProof(ctx, 7, "proof.png", nil)
	assert.True(t, errors.Is(err, domainerrors.ErrValidation))
}

func TestOrderService_PaymentQR(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	fx.catalog.On("UPISettings", ctx).Return([]entity.UPISettings{
		{ID: 1, MerchantName: "Old", UPIID: "old@upi", IsActive: false},
		{ID: 2, MerchantName: "Yuva Kart", UPIID: "yuvakart@upi", IsActive: true},
	}, nil).Once()

	png, err := fx.service.PaymentQR(ctx, entity.Order{ID: 1001, TotalAmount: entity.Rupees(1250)})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}

func TestOrderService_PaymentQR_NoActivePayee(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	fx.catalog.On("UPISettings", ctx).Return([]entity.UPISettings{{ID: 1, UPIID: "x@upi"}}, nil).Once()

	_, err := fx.service.PaymentQR(ctx, entity.Order{ID: 1, TotalAmount: 100})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUPIUnavailable))
}

func TestOrderService_ReadPaymentURI(t *testing.T) {
	fx := createTestOrderService(t)

	req, err := fx.service.ReadPaymentURI("upi://pay?am=1250.00&cu=INR&pa=yuvakart%40upi&pn=Yuva+Kart&tn=Order+1001")
	require.NoError(t, err)
	assert.Equal(t, "yuvakart@upi", req.PayeeAddress)
	assert.Equal(t, "Yuva Kart", req.PayeeName)
	assert.Equal(t, entity.Money(125000), req.Amount)
	assert.Equal(t, int64(1001), req.OrderID)

	for _, uri := range []string{
		"https://example.com/pay",
		"upi://pay?am=10.00&cu=USD&pa=a%40upi&tn=Order+1",
		"upi://pay?am=1.-5&cu=INR&pa=a%40upi&tn=Order+1",
	} {
		_, err := fx.service.ReadPaymentURI(uri)
		require.Error(t, err, uri)
		assert.True(t, errors.Is(err, domainerrors.ErrValidation), uri)
	}
}
