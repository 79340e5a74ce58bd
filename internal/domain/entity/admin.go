package entity

import "time"

// DashboardStats is the aggregate shown on the admin dashboard.
type DashboardStats struct {
	TotalOrders      int     `json:"total_orders"`
	PendingPayments  int     `json:"pending_payments"`
	VerifiedPayments int     `json:"verified_payments"`
	TotalProducts    int     `json:"total_products"`
	LowStockProducts int     `json:"low_stock_products"`
	TotalRevenue     Money   `json:"total_revenue"`
	RecentOrders     []Order `json:"recent_orders"`
}

// PaymentVerificationInput asks the server to verify a Razorpay payment.
type PaymentVerificationInput struct {
	PaymentID string `json:"payment_id" validate:"required"`
	OrderID   int64  `json:"order_id" validate:"gt=0"`
	Amount    Money  `json:"amount" validate:"gt=0"`
}

// RefundInput asks the server to issue a Razorpay refund.
type RefundInput struct {
	PaymentID string `json:"payment_id" validate:"required"`
	Amount    Money  `json:"amount" validate:"gt=0"`
	Reason    string `json:"reason" validate:"required"`
}

// UPISettings describes the merchant's UPI payee used at checkout.
type UPISettings struct {
	ID           int64     `json:"id"`
	MerchantName string    `json:"merchant_name"`
	UPIID        string    `json:"upi_id"`
	QRCodeImage  *string   `json:"qr_code_image"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
