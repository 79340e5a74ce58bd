package api

import (
	"context"
	"net/http"
	"strconv"

	"storefront/internal/domain/entity"
)

func idPath(prefix string, id int64, suffix string) string {
	return prefix + strconv.FormatInt(id, 10) + "/" + suffix
}

// AdminOrders lists every order.
func (c *Client) AdminOrders(ctx context.Context) ([]entity.Order, error) {
	var orders []entity.Order
	err := c.do(ctx, &request{op: "fetch admin orders", method: http.MethodGet, path: "/admin/orders/", auth: authSession}, &orders)
	if err != nil {
		return nil, err
	}

	return orders, nil
}

// AdminDashboardStats fetches the dashboard aggregates.
func (c *Client) AdminDashboardStats(ctx context.Context) (*entity.DashboardStats, error) {
	var stats entity.DashboardStats
	err := c.do(ctx, &request{
		op:     "fetch dashboard stats",
		method: http.MethodGet,
		path:   "/admin/dashboard-stats/",
		auth:   authSession,
	}, &stats)
	if err != nil {
		return nil, err
	}

	return &stats, nil
}

// AdminProducts lists every product, inactive ones included.
func (c *Client) AdminProducts(ctx context.Context) ([]entity.Product, error) {
	var products []entity.Product
	err := c.do(ctx, &request{op: "fetch admin products", method: http.MethodGet, path: "/admin/products/", auth: authSession}, &products)
	if err != nil {
		return nil, err
	}

	return products, nil
}

// CreateProduct adds a product to the catalog.
func (c *Client) CreateProduct(ctx context.Context, input entity.ProductInput) (*entity.Product, error) {
	var product entity.Product
	err := c.do(ctx, &request{
		op:       "create product",
		method:   http.MethodPost,
		path:     "/admin/products/",
		jsonBody: input,
		auth:     authSession,
	}, &product)
	if err != nil {
		return nil, err
	}

	return &product, nil
}

// UpdateProduct applies a partial product update.
func (c *Client) UpdateProduct(ctx context.Context, id int64, patch entity.ProductPatch) (*entity.Product, error) {
	var product entity.Product
	err := c.do(ctx, &request{
		op:       "update product",
		method:   http.MethodPut,
		path:     idPath("/admin/products/", id, ""),
		jsonBody: patch,
		auth:     authSession,
	}, &product)
	if err != nil {
		return nil, err
	}

	return &product, nil
}

// DeleteProduct removes a product.
func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	return c.do(ctx, &request{
		op:     "delete product",
		method: http.MethodDelete,
		path:   idPath("/admin/products/", id, ""),
		auth:   authSession,
	}, nil)
}

// ApprovePayment marks the payment of an order as verified.
func (c *Client) ApprovePayment(ctx context.Context, orderID int64) (entity.Ack, error) {
	return c.postAction(ctx, "approve payment", idPath("/admin/orders/", orderID, "approve_payment/"), nil)
}

// RejectPayment marks the payment of an order as rejected.
func (c *Client) RejectPayment(ctx context.Context, orderID int64) (entity.Ack, error) {
	return c.postAction(ctx, "reject payment", idPath("/admin/orders/", orderID, "reject_payment/"), nil)
}

// OrderTracking fetches the courier tracking document of an order.
func (c *Client) OrderTracking(ctx context.Context, orderID int64) (entity.Ack, error) {
	var tracking entity.Ack
	err := c.do(ctx, &request{
		op:     "fetch tracking info",
		method: http.MethodGet,
		path:   idPath("/admin/orders/", orderID, "tracking/"),
		auth:   authSession,
	}, &tracking)
	if err != nil {
		return nil, err
	}

	return tracking, nil
}

// CreateDelhiveryShipment books the courier for a shipment.
func (c *Client) CreateDelhiveryShipment(ctx context.Context, shipmentID int64) (entity.Ack, error) {
	return c.postAction(ctx, "create Delhivery shipment", idPath("/admin/shipments/", shipmentID, "create_delhivery_shipment/"), nil)
}

// VerifyRazorpayPayment asks the server to verify a Razorpay payment.
func (c *Client) VerifyRazorpayPayment(ctx context.Context, input entity.PaymentVerificationInput) (entity.Ack, error) {
	return c.postAction(ctx, "verify payment", "/admin/verify-payment/", input)
}

// CreateRazorpayRefund asks the server to refund a Razorpay payment.
func (c *Client) CreateRazorpayRefund(ctx context.Context, input entity.RefundInput) (entity.Ack, error) {
	return c.postAction(ctx, "create refund", "/admin/create-refund/", input)
}

func (c *Client) postAction(ctx context.Context, op, path string, body any) (entity.Ack, error) {
	var ack entity.Ack
	err := c.do(ctx, &request{
		op:       op,
		method:   http.MethodPost,
		path:     path,
		jsonBody: body,
		auth:     authSession,
		emptyOK:  true,
	}, &ack)
	if err != nil {
		return nil, err
	}

	return ack, nil
}
