package middleware

import (
	"log/slog"
	"net/http"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/delivery/http/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler. Remote API
// failures keep their status code and user-facing message.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	// Check if it's Echo's HTTPError
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
		_ = response.Error(c, httpErr.Code, "", message)

		return
	}

	status := domainerrors.HTTPStatus(err)
	code := domainerrors.ErrorCode(err)
	logger := deliverycontext.LoggerOr(c.Request().Context(), m.logger)

	if code == "INTERNAL_ERROR" {
		logger.Error("Unhandled error",
			slog.Any("error", err),
			slog.Any("cause", errors.Cause(err)),
			slog.String("path", c.Request().URL.Path),
			slog.String("method", c.Request().Method),
		)
		_ = response.Error(c, http.StatusInternalServerError, code, "Internal server error, please try again later")

		return
	}

	if status >= http.StatusInternalServerError {
		logger.Warn("Upstream failure",
			slog.Any("error", err),
			slog.Int("status", status),
			slog.String("path", c.Request().URL.Path),
		)
	}

	_ = response.Error(c, status, code, domainerrors.Message(err))
}
