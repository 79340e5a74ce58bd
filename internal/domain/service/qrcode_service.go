package service

import "storefront/internal/domain/entity"

// PaymentRequest is the content of a UPI payment QR code.
type PaymentRequest struct {
	PayeeAddress string       // UPI id, e.g. "shop@upi"
	PayeeName    string       // merchant display name
	Amount       entity.Money // amount to pay
	OrderID      int64        // order the payment belongs to
}

// PaymentQRService defines the interface for UPI payment QR generation and parsing.
type PaymentQRService interface {
	// GeneratePaymentQR renders a PNG QR code asking the payer to pay order.
	GeneratePaymentQR(settings entity.UPISettings, order entity.Order) ([]byte, error)

	// ParsePaymentQR decodes the payment URI embedded in a QR code.
	ParsePaymentQR(data string) (*PaymentRequest, error)
}
