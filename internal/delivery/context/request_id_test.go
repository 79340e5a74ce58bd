package context

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestID(t *testing.T) {
	assert.Empty(t, RequestID(context.Background()))

	ctx := WithRequestID(context.Background(), "req-7")
	assert.Equal(t, "req-7", RequestID(ctx))
}

func TestLoggerOr(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
	scoped := fallback.With(slog.String("request_id", "req-7"))

	assert.Nil(t, Logger(context.Background()))
	assert.Same(t, fallback, LoggerOr(context.Background(), fallback))
	assert.Same(t, scoped, LoggerOr(WithLogger(context.Background(), scoped), fallback))
}
