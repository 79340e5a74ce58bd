package middleware

import (
	"strings"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// SessionMiddleware guards routes with the state of the stored session.
type SessionMiddleware struct {
	session service.SessionStore
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(session service.SessionStore) *SessionMiddleware {
	return &SessionMiddleware{session: session}
}

// RequireLogin rejects requests that carry no bearer token while no user is
// logged in. An explicit token is left for the upstream API to judge.
func (m *SessionMiddleware) RequireLogin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if strings.HasPrefix(c.Request().Header.Get(echo.HeaderAuthorization), "Bearer ") {
			return next(c)
		}
		if !m.session.IsLoggedIn(c.Request().Context()) {
			return response.Unauthorized(c, "NOT_LOGGED_IN", "Please log in to continue")
		}

		return next(c)
	}
}

// RequireAdmin rejects requests unless the logged-in user is staff or superuser.
func (m *SessionMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		if !m.session.IsLoggedIn(ctx) {
			return response.Unauthorized(c, "NOT_LOGGED_IN", "Please log in to continue")
		}
		if !m.session.IsAdmin(ctx) {
			return response.Forbidden(c, "FORBIDDEN", "Admin privileges required")
		}

		return next(c)
	}
}
