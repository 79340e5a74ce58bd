// Package context carries per-request values from the gateway middleware down
// to the usecases and the API client.
//
// The request ID travels in both directions: the gateway echoes it to the
// caller and the API client sends it upstream as X-Request-Id, so a storefront
// request and the remote API call it caused share one ID in both logs.
package context

import (
	"context"
	"log/slog"
)

// HeaderXRequestID is read from callers, echoed in responses and forwarded upstream.
const HeaderXRequestID = "X-Request-Id"

type (
	requestIDKey struct{}
	loggerKey    struct{}
)

// WithRequestID returns a copy of ctx carrying requestID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// RequestID returns the ID stored by WithRequestID, or "" outside a request.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)

	return id
}

// WithLogger returns a copy of ctx carrying a request-scoped logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// Logger returns the request-scoped logger, or nil.
func Logger(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(loggerKey{}).(*slog.Logger)

	return logger
}

// LoggerOr returns the request-scoped logger, or fallback when there is none.
// Background work such as CLI commands has no request logger.
func LoggerOr(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := Logger(ctx); logger != nil {
		return logger
	}

	return fallback
}
