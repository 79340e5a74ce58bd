package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticTokens string

func (s staticTokens) AccessToken(context.Context) (string, bool) {
	return string(s), s != ""
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClient(t *testing.T, handler http.HandlerFunc, tokens staticTokens) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClientWithHTTP(srv.URL+"/api/", srv.Client(), tokens, discardLogger())
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func TestClient_ListProducts_CategoryQuery(t *testing.T) {
	var gotPath, gotQuery, gotAuth string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotAuth = r.Header.Get("Authorization")
		writeJSON(w, http.StatusOK, `[{"id":3,"name":"Python Programming Book","price":"599.00","category":2,"stock":100,"is_active":true}]`)
	}, "tok")

	cat := int64(2)
	products, err := c.ListProducts(context.Background(), &cat)
	require.NoError(t, err)

	assert.Equal(t, "/api/products/", gotPath)
	assert.Equal(t, "category=2", gotQuery)
	assert.Empty(t, gotAuth, "catalog reads are anonymous")
	require.Len(t, products, 1)
	assert.Equal(t, entity.Rupees(599), products[0].Price)
}

func TestClient_ListCategories_DecodeFailure(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, `{"not":"a list"}`)
	}, "")

	_, err := c.ListCategories(context.Background())
	require.Error(t, err)
	assert.Equal(t, 0, domainerrors.StatusCode(err))
	assert.False(t, errors.Is(err, domainerrors.ErrTransport))
}

func TestClient_EmptyBodyIsDecodeErrorForEntities(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}, "tok")
	ctx := context.Background()

	categories, err := c.ListCategories(ctx)
	require.Error(t, err)
	assert.Nil(t, categories)
	assert.Contains(t, err.Error(), "empty body")

	product, err := c.GetProduct(ctx, 1)
	require.Error(t, err)
	assert.Nil(t, product)
}

func TestClient_EmptyBodyIsFineForActions(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusNoContent)

			return
		}
		w.WriteHeader(http.StatusOK)
	}, "tok")
	ctx := context.Background()

	require.NoError(t, c.DeleteProduct(ctx, 9))
	require.NoError(t, c.DeleteAddress(ctx, 4, ""))

	ack, err := c.ApprovePayment(ctx, 1001)
	require.NoError(t, err)
	assert.Empty(t, ack.Message())

	_, err = c.UploadPaymentProof(ctx, 1001, "proof.png", strings.NewReader("png"))
	require.NoError(t, err)
}

func TestClient_CreateOrder_SurfacesErrorField(t *testing.T) {
	var body map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/orders/", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		writeJSON(w, http.StatusBadRequest, `{"error":"Out of stock"}`)
	}, "")

	_, err := c.CreateOrder(context.Background(), entity.CreateOrderInput{
		CustomerName:    "Rajesh Kumar",
		CustomerPhone:   "+91 9876543210",
		ShippingAddress: "123 Main Street",
		TotalAmount:     entity.Rupees(1250),
		Items:           []entity.CreateOrderItemInput{{ProductID: 1, Quantity: 1, Price: entity.Rupees(1200)}},
	})
	require.Error(t, err)
	assert.Equal(t, "Out of stock", err.Error())
	assert.Equal(t, http.StatusBadRequest, domainerrors.StatusCode(err))
	assert.InDelta(t, 1250.0, body["total_amount"], 0.001)
}

func TestClient_ErrorMessagePrecedence(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "detail wins", body: `{"detail":"Invalid credentials","error":"x"}`, want: "Invalid credentials"},
		{name: "message", body: `{"message":"Try later"}`, want: "Try later"},
		{name: "error", body: `{"error":"Payment not found"}`, want: "Payment not found"},
		{name: "non field errors", body: `{"non_field_errors":["Passwords don't match"]}`, want: "Passwords don't match"},
		{name: "raw text", body: `Bad Gateway`, want: "Bad Gateway"},
		{name: "empty body", body: ``, want: "Register failed - server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = io.WriteString(w, tt.body)
			}, "")

			_, err := c.Register(context.Background(), entity.RegisterInput{Username: "u"})
			require.Error(t, err)
			assert.Equal(t, tt.want, err.Error())
		})
	}
}

func TestClient_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	baseURL := srv.URL
	srv.Close()

	c := NewClientWithHTTP(baseURL, http.DefaultClient, nil, discardLogger())
	_, err := c.UploadPaymentProof(context.Background(), 7, "proof.png", strings.NewReader("png"))
	require.Error(t, err)

	assert.True(t, errors.Is(err, domainerrors.ErrTransport))
	assert.Equal(t, "Failed to upload payment proof", err.Error())
	assert.Equal(t, 0, domainerrors.StatusCode(err))
}

func TestClient_UploadPaymentProof_Multipart(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/orders/7/upload_payment_proof/", r.URL.Path)
		file, header, err := r.FormFile(PaymentProofField)
		if !assert.NoError(t, err) {
			return
		}
		defer file.Close()
		data, _ := io.ReadAll(file)
		assert.Equal(t, "proof.png", header.Filename)
		assert.Equal(t, "png-bytes", string(data))
		writeJSON(w, http.StatusOK, `{"message":"Payment proof uploaded"}`)
	}, "")

	ack, err := c.UploadPaymentProof(context.Background(), 7, "proof.png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "Payment proof uploaded", ack.Message())
}

func TestClient_AuthHeaders(t *testing.T) {
	var got []string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = append(got, r.Header.Get("Authorization"))
		switch {
		case strings.HasPrefix(r.URL.Path, "/api/addresses"):
			writeJSON(w, http.StatusOK, `[]`)
		case strings.HasPrefix(r.URL.Path, "/api/admin/orders"):
			writeJSON(w, http.StatusOK, `[]`)
		default:
			writeJSON(w, http.StatusOK, `{"id":1,"username":"admin"}`)
		}
	}, "session-token")

	ctx := context.Background()
	_, err := c.Profile(ctx, "explicit-token")
	require.NoError(t, err)
	_, err = c.Addresses(ctx, "")
	require.NoError(t, err)
	_, err = c.AdminOrders(ctx)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Bearer explicit-token",
		"Bearer session-token",
		"Bearer session-token",
	}, got)
}

func TestClient_NoTokenNoHeader(t *testing.T) {
	var header []string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		header = r.Header.Values("Authorization")
		writeJSON(w, http.StatusUnauthorized, `{"detail":"Authentication credentials were not provided."}`)
	}, "")

	_, err := c.AdminDashboardStats(context.Background())
	require.Error(t, err)
	assert.Empty(t, header)
	assert.True(t, domainerrors.IsUnauthorized(err))
}

func TestClient_PropagatesRequestID(t *testing.T) {
	var got string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get(deliverycontext.HeaderXRequestID)
		writeJSON(w, http.StatusOK, `[]`)
	}, "")

	ctx := deliverycontext.WithRequestID(context.Background(), "req-42")
	_, err := c.ListCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, "req-42", got)
}

func TestClient_AdminEndpoints(t *testing.T) {
	type call struct{ method, path string }
	var calls []call
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, call{r.Method, r.URL.Path})
		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusNoContent)

			return
		}
		writeJSON(w, http.StatusOK, `{"id":9,"message":"ok"}`)
	}, "tok")

	ctx := context.Background()
	name := "Renamed"
	_, err := c.UpdateProduct(ctx, 9, entity.ProductPatch{Name: &name})
	require.NoError(t, err)
	require.NoError(t, c.DeleteProduct(ctx, 9))
	_, err = c.ApprovePayment(ctx, 1001)
	require.NoError(t, err)
	_, err = c.RejectPayment(ctx, 1002)
	require.NoError(t, err)
	_, err = c.OrderTracking(ctx, 1001)
	require.NoError(t, err)
	_, err = c.CreateDelhiveryShipment(ctx, 5)
	require.NoError(t, err)
	_, err = c.VerifyRazorpayPayment(ctx, entity.PaymentVerificationInput{PaymentID: "pay_1", OrderID: 1, Amount: 100})
	require.NoError(t, err)
	_, err = c.CreateRazorpayRefund(ctx, entity.RefundInput{PaymentID: "pay_1", Amount: 100, Reason: "damaged"})
	require.NoError(t, err)

	assert.Equal(t, []call{
		{http.MethodPut, "/api/admin/products/9/"},
		{http.MethodDelete, "/api/admin/products/9/"},
		{http.MethodPost, "/api/admin/orders/1001/approve_payment/"},
		{http.MethodPost, "/api/admin/orders/1002/reject_payment/"},
		{http.MethodGet, "/api/admin/orders/1001/tracking/"},
		{http.MethodPost, "/api/admin/shipments/5/create_delhivery_shipment/"},
		{http.MethodPost, "/api/admin/verify-payment/"},
		{http.MethodPost, "/api/admin/create-refund/"},
	}, calls)
}
