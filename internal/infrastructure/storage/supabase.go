// Package storage implements ports.ObjectStorage backends.
package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

var ErrObjectStorage = errors.New("object storage request failed")

type SupabaseConfig struct {
	// URL is the project URL, e.g. https://<ref>.supabase.co.
	URL        string
	ServiceKey string
	Bucket     string
	Timeout    time.Duration
}

// Supabase talks to the Supabase Storage REST API.
type Supabase struct {
	client *resty.Client
	bucket string
}

type apiError struct {
	StatusCode string `json:"statusCode"`
	Error      string `json:"error"`
	Message    string `json:"message"`
}

func NewSupabase(cfg SupabaseConfig) *Supabase {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.URL, "/")+"/storage/v1").
		SetTimeout(cfg.Timeout).
		SetAuthToken(cfg.ServiceKey).
		SetHeader("apikey", cfg.ServiceKey)

	return &Supabase{client: cli, bucket: cfg.Bucket}
}

// Put uploads data under key. Existing objects are not overwritten.
func (s *Supabase) Put(ctx context.Context, key, contentType string, data []byte) error {
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", contentType).
		SetHeader("x-upsert", "false").
		SetBody(bytes.NewReader(data)).
		SetError(&apiError{}).
		SetPathParams(map[string]string{"bucket": s.bucket, "key": key}).
		Post("/object/{bucket}/{key}")
	if err != nil {
		return fmt.Errorf("upload request: %w", err)
	}
	return mapResponse(resp)
}

// Ping checks that the bucket exists and the key is accepted.
func (s *Supabase) Ping(ctx context.Context) error {
	resp, err := s.client.R().
		SetContext(ctx).
		SetError(&apiError{}).
		SetPathParam("bucket", s.bucket).
		Get("/bucket/{bucket}")
	if err != nil {
		return fmt.Errorf("bucket request: %w", err)
	}
	return mapResponse(resp)
}

func mapResponse(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	msg := strings.TrimSpace(string(resp.Body()))
	if apiErr, ok := resp.Error().(*apiError); ok && apiErr.Message != "" {
		msg = apiErr.Message
	}
	if msg == "" {
		msg = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("%w: http %d: %s", ErrObjectStorage, resp.StatusCode(), msg)
}
