package app

import (
	"context"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carelink/health-gateway/internal/infrastructure/storage"
	"github.com/carelink/health-gateway/internal/pkg/config"
)

func TestNewObjectStorage_Memory(t *testing.T) {
	objects, ping := newObjectStorage(config.StorageConfig{Driver: config.StorageDriverMemory})

	_, ok := objects.(*storage.Memory)
	assert.True(t, ok)
	assert.NoError(t, ping(context.Background()))
}

func TestNewObjectStorage_Supabase(t *testing.T) {
	objects, _ := newObjectStorage(config.StorageConfig{
		Driver:     config.StorageDriverSupabase,
		URL:        "http://localhost:54321",
		ServiceKey: "key",
		Bucket:     "prescriptions",
	})

	_, ok := objects.(*storage.Supabase)
	assert.True(t, ok)
}

func TestApp_Run_StopsOnCancel(t *testing.T) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	a := &App{
		cfg:  &config.Config{Port: "0", ShutdownTimeout: time.Second},
		log:  zerolog.Nop(),
		echo: e,
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestApp_Close_NilConnections(t *testing.T) {
	a := &App{log: zerolog.Nop()}
	assert.NotPanics(t, a.Close)
}
