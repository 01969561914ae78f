package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/carelink/health-gateway/internal/core/domain"
	"github.com/carelink/health-gateway/internal/core/ports"
)

type principalKey struct{}

const principalContextKey = "principal"

// Authenticate validates the bearer token and attaches the resulting
// principal to both the echo context and the request context.
func Authenticate(verifier ports.TokenVerifier) Interceptor {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domain.ErrUnauthenticated
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
			return domain.ErrUnauthenticated
		}

		principal, err := verifier.Verify(strings.TrimSpace(parts[1]))
		if err != nil {
			return err
		}

		SetPrincipal(c, principal)
		return nil
	}
}

// SetPrincipal attaches p to the echo context and the request context.
func SetPrincipal(c echo.Context, p domain.Principal) {
	c.Set(principalContextKey, p)
	req := c.Request()
	c.SetRequest(req.WithContext(WithPrincipal(req.Context(), p)))
}

// WithPrincipal returns a copy of ctx carrying p.
func WithPrincipal(ctx context.Context, p domain.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFromContext returns the principal stored by Authenticate.
func PrincipalFromContext(ctx context.Context) (domain.Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(domain.Principal)
	return p, ok
}

// PrincipalFrom returns the principal stored on the echo context.
func PrincipalFrom(c echo.Context) (domain.Principal, bool) {
	p, ok := c.Get(principalContextKey).(domain.Principal)
	return p, ok
}
