package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carelink/health-gateway/internal/core/domain"
	"github.com/carelink/health-gateway/internal/core/ports"
)

type memoryIdempotencyStore struct {
	mu      sync.Mutex
	entries map[string]ports.StoredResponse
	failGet bool
}

func newMemoryIdempotencyStore() *memoryIdempotencyStore {
	return &memoryIdempotencyStore{entries: map[string]ports.StoredResponse{}}
}

func (s *memoryIdempotencyStore) Lookup(_ context.Context, key string) (*ports.StoredResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failGet {
		return nil, errors.New("redis down")
	}
	if r, ok := s.entries[key]; ok {
		return &r, nil
	}
	return nil, nil
}

func (s *memoryIdempotencyStore) Save(_ context.Context, key string, resp ports.StoredResponse, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[key]; !ok {
		s.entries[key] = resp
	}
	return nil
}

func newIdempotentServer(store ports.IdempotencyStore, calls *int, status int) *echo.Echo {
	e := echo.New()
	setPrincipal := func(c echo.Context) error {
		SetPrincipal(c, domain.Principal{SubjectID: c.Request().Header.Get("X-Subject"), Role: domain.RolePatient})
		return nil
	}
	e.POST("/api/appointments", func(c echo.Context) error {
		*calls++
		return c.JSON(status, map[string]int{"id": *calls})
	}, Chain(setPrincipal), Idempotency(store, time.Hour, zerolog.Nop()))
	return e
}

func post(e *echo.Echo, subject, key string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/appointments", strings.NewReader(`{}`))
	req.Header.Set("X-Subject", subject)
	if key != "" {
		req.Header.Set(HeaderIdempotencyKey, key)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestIdempotency_ReplaysFirstResponse(t *testing.T) {
	calls := 0
	e := newIdempotentServer(newMemoryIdempotencyStore(), &calls, http.StatusCreated)

	first := post(e, "p-1", "abc")
	second := post(e, "p-1", "abc")

	require.Equal(t, http.StatusCreated, first.Code)
	require.Equal(t, http.StatusCreated, second.Code)
	assert.Equal(t, 1, calls)
	assert.JSONEq(t, first.Body.String(), second.Body.String())
	assert.Empty(t, first.Header().Get(HeaderIdempotentReplayed))
	assert.Equal(t, "true", second.Header().Get(HeaderIdempotentReplayed))
	assert.Contains(t, second.Header().Get(echo.HeaderContentType), "application/json")
}

func TestIdempotency_KeysAreScopedPerPrincipal(t *testing.T) {
	calls := 0
	e := newIdempotentServer(newMemoryIdempotencyStore(), &calls, http.StatusCreated)

	post(e, "p-1", "abc")
	rec := post(e, "p-2", "abc")

	assert.Equal(t, 2, calls)
	assert.Empty(t, rec.Header().Get(HeaderIdempotentReplayed))
}

func TestIdempotency_NoKeyPassesThrough(t *testing.T) {
	calls := 0
	e := newIdempotentServer(newMemoryIdempotencyStore(), &calls, http.StatusCreated)

	post(e, "p-1", "")
	post(e, "p-1", "")
	assert.Equal(t, 2, calls)
}

func TestIdempotency_ErrorResponsesAreNotStored(t *testing.T) {
	calls := 0
	e := newIdempotentServer(newMemoryIdempotencyStore(), &calls, http.StatusBadRequest)

	post(e, "p-1", "abc")
	post(e, "p-1", "abc")
	assert.Equal(t, 2, calls)
}

func TestIdempotency_StoreFailureFallsThrough(t *testing.T) {
	store := newMemoryIdempotencyStore()
	store.failGet = true
	calls := 0
	e := newIdempotentServer(store, &calls, http.StatusCreated)

	rec := post(e, "p-1", "abc")
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 1, calls)
}
