// Package response builds the JSON envelope returned by the storefront gateway.
package response

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// Envelope wraps every gateway answer. Data is set on success, Error otherwise.
type Envelope struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorBody `json:"error,omitempty"`
}

// ErrorBody carries the machine-readable code, e.g. "PRODUCT_NOT_FOUND".
type ErrorBody struct {
	Code string `json:"code"`
}

func Success(c echo.Context, status int, data any, message string) error {
	if message == "" {
		message = "Success"
	}

	return c.JSON(status, Envelope{Success: true, Code: status, Message: message, Data: data})
}

// Error writes a failure envelope. An empty errorCode is derived from the
// status text ("Not Found" becomes "NOT_FOUND").
func Error(c echo.Context, status int, errorCode, message string) error {
	if message == "" {
		message = http.StatusText(status)
	}
	if errorCode == "" {
		errorCode = StatusCode(status)
	}

	return c.JSON(status, Envelope{
		Code:    status,
		Message: message,
		Error:   &ErrorBody{Code: errorCode},
	})
}

// StatusCode turns an HTTP status into an upper snake case error code.
func StatusCode(status int) string {
	text := http.StatusText(status)
	if text == "" {
		return "HTTP_ERROR"
	}

	return strings.ToUpper(strings.NewReplacer(" ", "_", "-", "_", "'", "").Replace(text))
}

// BindingError answers 400 for malformed bodies or path parameters.
func BindingError(c echo.Context, errorCode, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message)
}

func Unauthorized(c echo.Context, errorCode, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message)
}

func Forbidden(c echo.Context, errorCode, message string) error {
	return Error(c, http.StatusForbidden, errorCode, message)
}
