package ports

import (
	"context"
	"time"
)

// StoredResponse is a response captured for idempotent replay.
type StoredResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// IdempotencyStore remembers the first successful response per key.
type IdempotencyStore interface {
	// Lookup returns (nil, nil) when nothing is stored under key.
	Lookup(ctx context.Context, key string) (*StoredResponse, error)
	Save(ctx context.Context, key string, resp StoredResponse, ttl time.Duration) error
}
