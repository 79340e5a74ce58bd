package handler

import (
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/infra/api"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler serves checkout.
type OrderHandler struct {
	uc usecase.OrderUsecase
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// CreateOrder handles POST /api/orders.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	var input entity.CreateOrderInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}

	order, err := h.uc.CreateOrder(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, order, "Order created successfully")
}

// UploadPaymentProof handles POST /api/orders/:id/payment-proof with a
// multipart file in the payment_proof field.
func (h *OrderHandler) UploadPaymentProof(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return response.BindingError(c, "INVALID_ID", "Order id must be a positive number")
	}

	header, err := c.FormFile(api.PaymentProofField)
	if err != nil {
		return response.BindingError(c, "MISSING_FILE", "A payment_proof file is required")
	}
	file, err := header.Open()
	if err != nil {
		return errors.Wrap(err, "open uploaded payment proof")
	}
	defer file.Close()

	ack, err := h.uc.UploadPaymentProof(c.Request().Context(), id, header.Filename, file)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ack, ack.Message())
}

// PaymentQR handles GET /api/orders/:id/payment-qr?amount=1250.00 and
// answers with a PNG image.
func (h *OrderHandler) PaymentQR(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return response.BindingError(c, "INVALID_ID", "Order id must be a positive number")
	}
	amount, err := entity.ParseMoney(c.QueryParam("amount"))
	if err != nil || amount <= 0 {
		return response.BindingError(c, "INVALID_AMOUNT", "Amount must be a positive rupee value")
	}

	png, err := h.uc.PaymentQR(c.Request().Context(), entity.Order{ID: id, TotalAmount: amount})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
