// Package api is the typed HTTP client of the remote storefront REST API.
// It performs no caching and no fallback: every failure is returned as a
// *domainerrors.APIError so that callers can apply their own policy.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/infra/tracing"
)

const maxResponseBody = 10 << 20

// Client talks JSON to the remote API rooted at a base URL.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     service.TokenSource
	logger     *slog.Logger
}

// NewClient creates a client from configuration. tokens supplies the bearer
// token of authenticated calls and may be nil.
func NewClient(cfg *config.Config, tokens service.TokenSource, logger *slog.Logger) *Client {
	httpClient := &http.Client{
		Timeout:   cfg.API.Timeout,
		Transport: tracing.Transport(nil),
	}

	return NewClientWithHTTP(cfg.API.BaseURL, httpClient, tokens, logger)
}

// NewClientWithHTTP creates a client around a caller-supplied *http.Client.
func NewClientWithHTTP(baseURL string, httpClient *http.Client, tokens service.TokenSource, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		tokens:     tokens,
		logger:     logger,
	}
}

// BaseURL returns the API root every path is appended to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

type authMode int

const (
	authNone    authMode = iota
	authSession          // bearer token from the session, when present
	authToken            // explicit token, falling back to the session
)

type request struct {
	op          string // user-facing operation name, e.g. "create order"
	method      string
	path        string
	query       url.Values
	jsonBody    any
	rawBody     io.Reader
	contentType string
	auth        authMode
	token       string
	emptyOK     bool // 2xx with no body is a valid answer
}

func (c *Client) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerOr(ctx, c.logger)
}

// do sends req and decodes a 2xx JSON body into out (when out is non-nil).
func (c *Client) do(ctx context.Context, req *request, out any) error {
	httpReq, err := c.newHTTPRequest(ctx, req)
	if err != nil {
		return err
	}

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.log(ctx).Debug("API request failed",
			slog.String("op", req.op),
			slog.String("method", req.method),
			slog.String("url", httpReq.URL.String()),
			slog.Any("error", err),
		)

		return domainerrors.NewTransportError(req.op, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return domainerrors.NewTransportError(req.op, err)
	}

	c.log(ctx).Debug("API request completed",
		slog.String("op", req.op),
		slog.String("method", req.method),
		slog.String("url", httpReq.URL.String()),
		slog.Int("status", resp.StatusCode),
		slog.Duration("latency", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return domainerrors.NewHTTPError(req.op, resp.StatusCode, errorMessage(req.op, body))
	}

	if out == nil {
		return nil
	}
	if len(bytes.TrimSpace(body)) == 0 {
		if req.emptyOK {
			return nil
		}

		return errors.Errorf("decode %s response: empty body", req.op)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return errors.Wrapf(err, "decode %s response", req.op)
	}

	return nil
}

func (c *Client) newHTTPRequest(ctx context.Context, req *request) (*http.Request, error) {
	target := c.baseURL + req.path
	if len(req.query) > 0 {
		target += "?" + req.query.Encode()
	}

	var body io.Reader
	contentType := req.contentType
	switch {
	case req.jsonBody != nil:
		data, err := json.Marshal(req.jsonBody)
		if err != nil {
			return nil, errors.Wrapf(err, "encode %s request", req.op)
		}
		body = bytes.NewReader(data)
		contentType = "application/json"
	case req.rawBody != nil:
		body = req.rawBody
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, target, body)
	if err != nil {
		return nil, errors.Wrapf(err, "build %s request", req.op)
	}

	httpReq.Header.Set("Accept", "application/json")
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	if requestID := deliverycontext.RequestID(ctx); requestID != "" {
		httpReq.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}
	if token := c.bearer(ctx, req); token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	return httpReq, nil
}

func (c *Client) bearer(ctx context.Context, req *request) string {
	switch req.auth {
	case authToken:
		if req.token != "" {
			return req.token
		}
		fallthrough
	case authSession:
		if c.tokens == nil {
			return ""
		}
		token, _ := c.tokens.AccessToken(ctx)

		return token
	default:
		return ""
	}
}

// errorMessage extracts the user-facing message of an error response: the
// first of detail, message, error and non_field_errors[0]; otherwise the raw
// body; otherwise a generic server error text.
func errorMessage(op string, body []byte) string {
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err == nil {
		for _, field := range []string{"detail", "message", "error"} {
			if msg, ok := payload[field].(string); ok && msg != "" {
				return msg
			}
		}
		if list, ok := payload["non_field_errors"].([]any); ok && len(list) > 0 {
			if msg, ok := list[0].(string); ok && msg != "" {
				return msg
			}
		}
	}

	if text := strings.TrimSpace(string(body)); text != "" {
		return text
	}

	return capitalize(op) + " failed - server error"
}

func capitalize(s string) string {
	if s == "" {
		return s
	}

	return strings.ToUpper(s[:1]) + s[1:]
}

var (
	_ repository.CatalogRepository = (*Client)(nil)
	_ repository.OrderRepository   = (*Client)(nil)
	_ repository.AccountRepository = (*Client)(nil)
	_ repository.AddressRepository = (*Client)(nil)
	_ repository.AdminRepository   = (*Client)(nil)
	_ service.AuthClient           = (*Client)(nil)
)
