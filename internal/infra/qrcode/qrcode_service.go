package qrcode

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

const (
	upiScheme    = "upi"
	upiHost      = "pay"
	upiCurrency  = "INR"
	orderNotePfx = "Order "
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new UPI payment QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.PaymentQRService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// PaymentURI builds the upi://pay deep link asking the payer to pay order.
func PaymentURI(settings entity.UPISettings, order entity.Order) string {
	q := url.Values{}
	q.Set("pa", settings.UPIID)
	q.Set("pn", settings.MerchantName)
	q.Set("am", order.TotalAmount.String())
	q.Set("cu", upiCurrency)
	q.Set("tn", orderNotePfx+strconv.FormatInt(order.ID, 10))

	return (&url.URL{Scheme: upiScheme, Host: upiHost, RawQuery: q.Encode()}).String()
}

// GeneratePaymentQR generates a PNG QR code for the payment of an order
func (s *qrcodeService) GeneratePaymentQR(settings entity.UPISettings, order entity.Order) ([]byte, error) {
	if !settings.IsActive {
		return nil, fmt.Errorf("UPI settings %d are not active", settings.ID)
	}
	if settings.UPIID == "" {
		return nil, fmt.Errorf("UPI settings %d have no UPI id", settings.ID)
	}
	if order.TotalAmount <= 0 {
		return nil, fmt.Errorf("order %d has no amount to pay", order.ID)
	}

	qrCode, err := qrcode.New(PaymentURI(settings, order), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParsePaymentQR parses the payment URI carried by a QR code
func (s *qrcodeService) ParsePaymentQR(data string) (*service.PaymentRequest, error) {
	u, err := url.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse payment URI: %w", err)
	}
	if u.Scheme != upiScheme || u.Host != upiHost {
		return nil, fmt.Errorf("invalid payment URI: %s", data)
	}

	q := u.Query()
	if cu := q.Get("cu"); cu != upiCurrency {
		return nil, fmt.Errorf("unsupported currency: %q", cu)
	}

	amount, err := entity.ParseMoney(q.Get("am"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse amount: %w", err)
	}

	note := q.Get("tn")
	if !strings.HasPrefix(note, orderNotePfx) {
		return nil, fmt.Errorf("invalid transaction note: %q", note)
	}
	orderID, err := strconv.ParseInt(strings.TrimPrefix(note, orderNotePfx), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse order id: %w", err)
	}

	return &service.PaymentRequest{
		PayeeAddress: q.Get("pa"),
		PayeeName:    q.Get("pn"),
		Amount:       amount,
		OrderID:      orderID,
	}, nil
}
