package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/carelink/health-gateway/internal/core/domain"
)

// RequireRole admits only principals whose role equals role. A request with
// no principal is unauthenticated, not forbidden.
func RequireRole(role domain.Role) Interceptor {
	return func(c echo.Context) error {
		p, ok := PrincipalFrom(c)
		if !ok {
			return domain.ErrUnauthenticated
		}
		if p.Role != role {
			return domain.ErrForbidden
		}
		return nil
	}
}
