// Package tracing sets up OpenTelemetry span export for the gateway and its
// outbound API calls.
package tracing

import (
	"context"
	"log/slog"
	"net/http"

	"storefront/config"

	"github.com/pkg/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.uber.org/fx"
)

// ShutdownFunc flushes pending spans.
type ShutdownFunc func(context.Context) error

// Setup registers a global tracer provider exporting to cfg.Tracing.Endpoint.
// When tracing is disabled it returns a no-op shutdown and leaves the global
// provider untouched, so instrumented transports emit nothing.
func Setup(ctx context.Context, cfg *config.Config) (ShutdownFunc, error) {
	noop := func(context.Context) error { return nil }

	if cfg.Tracing == nil || !cfg.Tracing.Enabled || cfg.Tracing.Endpoint == "" {
		return noop, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpointURL(cfg.Tracing.Endpoint),
	)
	if err != nil {
		return noop, errors.Wrap(err, "create otlp exporter")
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(cfg.Env.ServiceName),
		),
	)
	if err != nil {
		return noop, errors.Wrap(err, "build trace resource")
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

// Transport wraps base so every outbound request gets a client span and
// carries the trace context. A nil base means http.DefaultTransport.
func Transport(base http.RoundTripper) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}

	return otelhttp.NewTransport(base)
}

// Handler wraps an inbound handler with a server span named after operation.
func Handler(h http.Handler, operation string) http.Handler {
	return otelhttp.NewHandler(h, operation)
}

// Register sets up tracing at startup and flushes it on shutdown.
func Register(lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger) error {
	shutdown, err := Setup(context.Background(), cfg)
	if err != nil {
		return err
	}

	if cfg.Tracing.Enabled {
		logger.Info("Tracing enabled", slog.String("endpoint", cfg.Tracing.Endpoint))
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return shutdown(ctx)
		},
	})

	return nil
}
