package api

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"
)

// PaymentProofField is the multipart field carrying the payment screenshot.
const PaymentProofField = "payment_proof"

// CreateOrder places an order.
func (c *Client) CreateOrder(ctx context.Context, input entity.CreateOrderInput) (*entity.Order, error) {
	var order entity.Order
	err := c.do(ctx, &request{
		op:       "create order",
		method:   http.MethodPost,
		path:     "/orders/",
		jsonBody: input,
	}, &order)
	if err != nil {
		return nil, err
	}

	return &order, nil
}

// UploadPaymentProof sends the payment screenshot of an order as multipart form data.
func (c *Client) UploadPaymentProof(ctx context.Context, orderID int64, filename string, file io.Reader) (entity.Ack, error) {
	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)

	part, err := form.CreateFormFile(PaymentProofField, filename)
	if err != nil {
		return nil, errors.Wrap(err, "create multipart part")
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, errors.Wrap(err, "read payment proof")
	}
	if err := form.Close(); err != nil {
		return nil, errors.Wrap(err, "finish multipart body")
	}

	var ack entity.Ack
	err = c.do(ctx, &request{
		op:          "upload payment proof",
		method:      http.MethodPost,
		path:        "/orders/" + strconv.FormatInt(orderID, 10) + "/upload_payment_proof/",
		rawBody:     &buf,
		contentType: form.FormDataContentType(),
		emptyOK:     true,
	}, &ack)
	if err != nil {
		return nil, err
	}

	return ack, nil
}
