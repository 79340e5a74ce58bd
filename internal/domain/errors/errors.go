// Package errors defines the error taxonomy of the storefront data-access layer.
package errors

import (
	"net/http"

	"storefront/internal/errors"
)

// Sentinel errors. Use errors.Is to test for them; they are usually wrapped.
var (
	// ErrTransport marks failures where no HTTP response was received.
	ErrTransport = errors.New("transport failure")

	// ErrProductNotFound is returned when a single product cannot be found,
	// neither remotely nor in the seed catalog.
	ErrProductNotFound = errors.New("Product not found")

	// ErrValidation is returned when an input is rejected before it is sent.
	ErrValidation = errors.New("validation failed")

	// ErrNotLoggedIn is returned by operations that need a stored session.
	ErrNotLoggedIn = errors.New("not logged in")

	// ErrForbidden is returned when the stored session lacks admin rights.
	ErrForbidden = errors.New("admin privileges required")

	// ErrUPIUnavailable is returned when no active UPI payee is configured.
	ErrUPIUnavailable = errors.New("UPI payments are not available")
)

// APIError is a failed call against the remote API. StatusCode is zero for
// transport failures, otherwise the HTTP status returned by the server.
type APIError struct {
	Op         string // logical operation, e.g. "create order"
	StatusCode int
	Message    string
	Cause      error
}

// NewHTTPError creates an error for a non-2xx response.
func NewHTTPError(op string, status int, message string) *APIError {
	return &APIError{Op: op, StatusCode: status, Message: message}
}

// NewTransportError creates an error for a request that never got a response.
func NewTransportError(op string, cause error) *APIError {
	return &APIError{Op: op, Message: "Failed to " + op, Cause: cause}
}

// Error implements the error interface. The message is meant for end users.
func (e *APIError) Error() string {
	return e.Message
}

// Unwrap exposes the transport cause.
func (e *APIError) Unwrap() error {
	return e.Cause
}

// Is lets errors.Is(err, ErrTransport) match transport failures.
func (e *APIError) Is(target error) bool {
	return target == ErrTransport && e.StatusCode == 0
}

// IsTransport reports whether no HTTP response was received.
func (e *APIError) IsTransport() bool {
	return e.StatusCode == 0
}

// StatusCode extracts the HTTP status of an APIError in err's chain, or 0.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}

	return 0
}

// IsUnauthorized reports whether the server rejected the credentials.
// Callers use it to redirect to the login page.
func IsUnauthorized(err error) bool {
	return StatusCode(err) == http.StatusUnauthorized
}

// IsForbidden reports whether the server refused the operation for this user.
func IsForbidden(err error) bool {
	return StatusCode(err) == http.StatusForbidden || errors.Is(err, ErrForbidden)
}

// IsNotFound reports whether the resource does not exist.
func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound || errors.Is(err, ErrProductNotFound)
}

// HTTPStatus maps any error of this layer to the status a gateway should answer with.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotLoggedIn):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrProductNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUPIUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, ErrTransport):
		return http.StatusBadGateway
	}
	if code := StatusCode(err); code != 0 {
		return code
	}

	return http.StatusInternalServerError
}

// ErrorCode returns a stable business code for gateway responses.
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrValidation):
		return "VALIDATION_FAILED"
	case errors.Is(err, ErrNotLoggedIn):
		return "NOT_LOGGED_IN"
	case errors.Is(err, ErrForbidden):
		return "FORBIDDEN"
	case errors.Is(err, ErrProductNotFound):
		return "PRODUCT_NOT_FOUND"
	case errors.Is(err, ErrUPIUnavailable):
		return "UPI_UNAVAILABLE"
	case errors.Is(err, ErrTransport):
		return "UPSTREAM_UNAVAILABLE"
	}
	if StatusCode(err) != 0 {
		return "UPSTREAM_ERROR"
	}

	return "INTERNAL_ERROR"
}

// Message returns the user-facing message of err: the APIError message when
// one is present in the chain, otherwise err.Error().
func Message(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}

	return err.Error()
}
