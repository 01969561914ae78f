package middleware

import "github.com/labstack/echo/v4"

// Interceptor inspects a request before its handler runs. Returning nil lets
// the request continue; any error terminates it and is rendered by the
// HTTP error handler.
type Interceptor func(c echo.Context) error

// Chain runs interceptors in order and calls the handler only when all of
// them pass.
func Chain(interceptors ...Interceptor) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			for _, intercept := range interceptors {
				if err := intercept(c); err != nil {
					return err
				}
			}
			return next(c)
		}
	}
}
