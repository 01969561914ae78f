package middleware

import (
	"bytes"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/carelink/health-gateway/internal/api/metrics"
	"github.com/carelink/health-gateway/internal/core/ports"
)

const (
	HeaderIdempotencyKey     = "Idempotency-Key"
	HeaderIdempotentReplayed = "Idempotent-Replayed"
)

// Idempotency replays the first successful response of a create request
// sent again with the same Idempotency-Key by the same principal. Requests
// without the header pass through untouched. Store failures are logged and
// the request proceeds as if no key had been sent.
func Idempotency(store ports.IdempotencyStore, ttl time.Duration, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := c.Request().Header.Get(HeaderIdempotencyKey)
			if key == "" {
				return next(c)
			}
			p, ok := PrincipalFrom(c)
			if !ok {
				return next(c)
			}

			ctx := c.Request().Context()
			scoped := p.Role.String() + ":" + p.SubjectID + ":" + c.Request().Method + ":" + c.Path() + ":" + key

			stored, err := store.Lookup(ctx, scoped)
			if err != nil {
				log.Warn().Err(err).Str("key", key).Msg("idempotency lookup failed")
			}
			if stored != nil {
				metrics.IdempotentReplays.Inc()
				c.Response().Header().Set(HeaderIdempotentReplayed, "true")
				return c.Blob(stored.Status, stored.ContentType, stored.Body)
			}

			res := c.Response()
			capture := &captureWriter{ResponseWriter: res.Writer}
			res.Writer = capture
			defer func() { res.Writer = capture.ResponseWriter }()

			if err := next(c); err != nil {
				return err
			}
			if res.Status < http.StatusOK || res.Status >= http.StatusMultipleChoices {
				return nil
			}

			if err := store.Save(ctx, scoped, ports.StoredResponse{
				Status:      res.Status,
				ContentType: res.Header().Get(echo.HeaderContentType),
				Body:        capture.body.Bytes(),
			}, ttl); err != nil {
				log.Warn().Err(err).Str("key", key).Msg("idempotency save failed")
			}
			return nil
		}
	}
}

type captureWriter struct {
	http.ResponseWriter
	body bytes.Buffer
}

func (w *captureWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}
