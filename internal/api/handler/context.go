package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/carelink/health-gateway/internal/api/middleware"
	"github.com/carelink/health-gateway/internal/core/domain"
)

// ctxPrincipal returns the identity attached by the Authenticate interceptor.
// Its absence means the route was registered without authentication.
func ctxPrincipal(c echo.Context) (domain.Principal, error) {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		return domain.Principal{}, domain.ErrUnauthenticated
	}
	return p, nil
}
