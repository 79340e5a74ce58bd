package handler

import (
	"context"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler serves the staff console. Routes are guarded by RequireAdmin.
type AdminHandler struct {
	uc usecase.AdminUsecase
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.AdminUsecase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

func (h *AdminHandler) Orders(c echo.Context) error {
	orders, err := h.uc.Orders(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "")
}

func (h *AdminHandler) Dashboard(c echo.Context) error {
	stats, err := h.uc.DashboardStats(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "")
}

func (h *AdminHandler) Products(c echo.Context) error {
	products, err := h.uc.Products(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "")
}

func (h *AdminHandler) CreateProduct(c echo.Context) error {
	var input entity.ProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	product, err := h.uc.CreateProduct(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product, "Product created successfully")
}

func (h *AdminHandler) UpdateProduct(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return response.BindingError(c, "INVALID_ID", "Product id must be a positive number")
	}
	var patch entity.ProductPatch
	if err := c.Bind(&patch); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	product, err := h.uc.UpdateProduct(c.Request().Context(), id, patch)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product updated successfully")
}

func (h *AdminHandler) DeleteProduct(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return response.BindingError(c, "INVALID_ID", "Product id must be a positive number")
	}

	if err := h.uc.DeleteProduct(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ApprovePayment handles POST /api/admin/orders/:id/approve.
func (h *AdminHandler) ApprovePayment(c echo.Context) error {
	return h.orderAction(c, h.uc.ApprovePayment)
}

// RejectPayment handles POST /api/admin/orders/:id/reject.
func (h *AdminHandler) RejectPayment(c echo.Context) error {
	return h.orderAction(c, h.uc.RejectPayment)
}

// Tracking handles GET /api/admin/orders/:id/tracking.
func (h *AdminHandler) Tracking(c echo.Context) error {
	return h.orderAction(c, h.uc.OrderTracking)
}

// CreateShipment handles POST /api/admin/shipments/:id/delhivery.
func (h *AdminHandler) CreateShipment(c echo.Context) error {
	return h.orderAction(c, h.uc.CreateDelhiveryShipment)
}

func (h *AdminHandler) VerifyPayment(c echo.Context) error {
	var input entity.PaymentVerificationInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment verification input")
	}

	ack, err := h.uc.VerifyRazorpayPayment(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ack, ack.Message())
}

func (h *AdminHandler) CreateRefund(c echo.Context) error {
	var input entity.RefundInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid refund input")
	}

	ack, err := h.uc.CreateRazorpayRefund(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ack, ack.Message())
}

type idAction func(ctx context.Context, id int64) (entity.Ack, error)

func (h *AdminHandler) orderAction(c echo.Context, action idAction) error {
	id, ok := pathID(c, "id")
	if !ok {
		return response.BindingError(c, "INVALID_ID", "Id must be a positive number")
	}

	ack, err := action(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ack, ack.Message())
}
