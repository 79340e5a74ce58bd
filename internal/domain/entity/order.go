package entity

import "time"

// OrderStatus is the fulfilment state of an order.
type OrderStatus string

const (
	OrderStatusPendingPayment  OrderStatus = "pending_payment"
	OrderStatusPaymentUploaded OrderStatus = "payment_uploaded"
	OrderStatusPaymentVerified OrderStatus = "payment_verified"
	OrderStatusPaymentRejected OrderStatus = "payment_rejected"
	OrderStatusProcessing      OrderStatus = "processing"
	OrderStatusShipped         OrderStatus = "shipped"
	OrderStatusDelivered       OrderStatus = "delivered"
	OrderStatusCancelled       OrderStatus = "cancelled"
)

// PaymentStatus is the verification state of an order's payment.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusVerified PaymentStatus = "verified"
	PaymentStatusRejected PaymentStatus = "rejected"
)

// Order is a customer order with its line items.
type Order struct {
	ID              int64         `json:"id"`
	CustomerName    string        `json:"customer_name"`
	CustomerPhone   string        `json:"customer_phone"`
	CustomerEmail   string        `json:"customer_email,omitempty"`
	ShippingAddress string        `json:"shipping_address"`
	TotalAmount     Money         `json:"total_amount"`
	ShippingCharge  Money         `json:"shipping_charge"`
	OrderStatus     OrderStatus   `json:"order_status"`
	PaymentStatus   PaymentStatus `json:"payment_status"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
	Items           []OrderItem   `json:"items"`
}

// OrderItem is one line of an order. Total is always Quantity * Price.
type OrderItem struct {
	ID           int64  `json:"id"`
	Order        int64  `json:"order,omitempty"`
	Product      int64  `json:"product,omitempty"`
	ProductName  string `json:"product_name"`
	ProductImage string `json:"product_image,omitempty"`
	Quantity     int    `json:"quantity"`
	Price        Money  `json:"price"`
	Total        Money  `json:"total"`
}

// NewOrderItem builds a line item with its total computed from quantity and price.
func NewOrderItem(id, productID int64, name string, qty int, price Money) OrderItem {
	return OrderItem{
		ID:          id,
		Product:     productID,
		ProductName: name,
		Quantity:    qty,
		Price:       price,
		Total:       price.Mul(qty),
	}
}

// Consistent reports whether the stored total matches quantity times price.
func (i OrderItem) Consistent() bool {
	return i.Total == i.Price.Mul(i.Quantity)
}

// ItemsTotal sums the line totals of the order.
func (o Order) ItemsTotal() Money {
	var sum Money
	for _, item := range o.Items {
		sum += item.Total
	}

	return sum
}

// CreateOrderItemInput is one requested line of a new order.
type CreateOrderItemInput struct {
	ProductID int64 `json:"product_id" validate:"gt=0"`
	Quantity  int   `json:"quantity" validate:"gt=0"`
	Price     Money `json:"price" validate:"gte=0"`
}

// CreateOrderInput is the checkout payload sent to the remote API.
type CreateOrderInput struct {
	CustomerName    string                 `json:"customer_name" validate:"required"`
	CustomerPhone   string                 `json:"customer_phone" validate:"required"`
	CustomerEmail   string                 `json:"customer_email,omitempty" validate:"omitempty,email"`
	ShippingAddress string                 `json:"shipping_address" validate:"required"`
	TotalAmount     Money                  `json:"total_amount" validate:"gte=0"`
	ShippingCharge  Money                  `json:"shipping_charge" validate:"gte=0"`
	Items           []CreateOrderItemInput `json:"items" validate:"required,min=1,dive"`
}

// Ack is an untyped acknowledgement document returned by action endpoints
// such as payment approval, proof upload or shipment creation.
type Ack map[string]any

// Message returns the "message" field of the acknowledgement, if any.
func (a Ack) Message() string {
	if msg, ok := a["message"].(string); ok {
		return msg
	}

	return ""
}
