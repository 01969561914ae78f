// Package app wires configuration, adapters and the HTTP router into a
// runnable gateway.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/carelink/health-gateway/internal/api"
	"github.com/carelink/health-gateway/internal/core/ports"
	"github.com/carelink/health-gateway/internal/core/service"
	"github.com/carelink/health-gateway/internal/infrastructure/db/postgres"
	"github.com/carelink/health-gateway/internal/infrastructure/db/redis"
	"github.com/carelink/health-gateway/internal/infrastructure/http/handlers"
	"github.com/carelink/health-gateway/internal/infrastructure/storage"
	"github.com/carelink/health-gateway/internal/pkg/config"
	"github.com/carelink/health-gateway/internal/pkg/password"
	"github.com/carelink/health-gateway/internal/pkg/token"
)

// App owns the long-lived connections and the Echo instance.
type App struct {
	cfg  *config.Config
	log  zerolog.Logger
	db   *postgres.DB
	rdb  *goredis.Client
	echo *echo.Echo
}

// New connects to every configured dependency and builds the router.
// Connections opened before a failure are closed.
func New(ctx context.Context, cfg *config.Config, log zerolog.Logger) (_ *App, err error) {
	a := &App{cfg: cfg, log: log}
	defer func() {
		if err != nil {
			a.Close()
		}
	}()

	a.db, err = postgres.Connect(ctx, postgres.Config{
		URL:          cfg.Postgres.URL,
		MaxOpenConns: cfg.Postgres.MaxOpenConns,
		MaxIdleConns: cfg.Postgres.MaxIdleConns,
	}, log)
	if err != nil {
		return nil, err
	}

	checks := []handlers.Check{{Name: "postgres", Ping: a.db.Ping}}

	objects, objectsPing := newObjectStorage(cfg.Storage)
	checks = append(checks, handlers.Check{Name: "storage", Ping: objectsPing})

	var idem ports.IdempotencyStore
	if cfg.IdempotencyEnabled() {
		a.rdb, err = redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			return nil, err
		}
		idem = redis.NewIdempotencyStore(a.rdb)
		checks = append(checks, handlers.Check{Name: "redis", Ping: redis.Pinger(a.rdb)})
		log.Info().Str("addr", cfg.Redis.Addr).Msg("idempotent replay enabled")
	}

	credentials := postgres.NewCredentialRepository(a.db)
	tokens := token.NewManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	a.echo = api.NewRouter(api.Dependencies{
		Log:            log,
		Tokens:         tokens,
		Auth:           service.NewAuthService(credentials, password.NewHasher(cfg.Auth.BcryptCost), tokens, log),
		Directory:      service.NewDirectoryService(credentials),
		Appointments:   service.NewAppointmentService(postgres.NewAppointmentRepository(a.db)),
		Inventory:      service.NewInventoryService(postgres.NewInventoryRepository(a.db)),
		Prescriptions:  service.NewPrescriptionService(postgres.NewPrescriptionRepository(a.db), objects, log),
		Idempotency:    idem,
		IdempotencyTTL: cfg.Redis.IdempotencyTTL,
		UploadMaxBytes: cfg.Storage.UploadMaxBytes,
		HealthChecks:   checks,
	})

	return a, nil
}

func newObjectStorage(cfg config.StorageConfig) (ports.ObjectStorage, func(context.Context) error) {
	if cfg.Driver == config.StorageDriverMemory {
		m := storage.NewMemory()
		return m, m.Ping
	}
	s := storage.NewSupabase(storage.SupabaseConfig{
		URL:        cfg.URL,
		ServiceKey: cfg.ServiceKey,
		Bucket:     cfg.Bucket,
		Timeout:    cfg.Timeout,
	})
	return s, s.Ping
}

// Run serves HTTP until ctx is cancelled, then drains in-flight requests for
// at most the configured shutdown timeout.
func (a *App) Run(ctx context.Context) error {
	addr := ":" + a.cfg.Port
	errCh := make(chan error, 1)

	go func() {
		a.log.Info().Str("addr", addr).Str("env", a.cfg.Env).Msg("http server listening")
		if err := a.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.log.Info().Msg("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout())
	defer cancel()
	if err := a.echo.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	a.log.Info().Msg("server shutdown gracefully")
	return nil
}

func (a *App) shutdownTimeout() time.Duration {
	if a.cfg.ShutdownTimeout > 0 {
		return a.cfg.ShutdownTimeout
	}
	return 10 * time.Second
}

// Close releases the database and redis connections.
func (a *App) Close() {
	if a.rdb != nil {
		if err := a.rdb.Close(); err != nil {
			a.log.Warn().Err(err).Msg("closing redis")
		}
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.log.Warn().Err(err).Msg("closing postgres")
		}
	}
}

// DB returns the relational pool, used by the migrate command.
func (a *App) DB() *postgres.DB {
	return a.db
}
