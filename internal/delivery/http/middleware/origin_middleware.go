package middleware

import (
	"storefront/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// OriginMiddleware refuses browser requests whose Origin is not allow-listed.
// Requests without an Origin header (curl, the CLI, same-origin GETs) pass.
type OriginMiddleware struct {
	allowed map[string]struct{}
}

// NewOriginMiddleware is the constructor for OriginMiddleware.
func NewOriginMiddleware(origins []string) *OriginMiddleware {
	allowed := make(map[string]struct{}, len(origins))
	for _, o := range origins {
		allowed[o] = struct{}{}
	}

	return &OriginMiddleware{allowed: allowed}
}

func (m *OriginMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		origin := c.Request().Header.Get(echo.HeaderOrigin)
		if origin == "" {
			return next(c)
		}
		if _, ok := m.allowed[origin]; !ok {
			return response.Forbidden(c, "ORIGIN_NOT_ALLOWED", "Origin not allowed")
		}

		return next(c)
	}
}
