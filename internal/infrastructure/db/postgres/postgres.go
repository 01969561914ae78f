// Package postgres implements the relational store adapters on top of
// database/sql with the pgx driver.
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" driver
	"github.com/rs/zerolog"
)

// Config holds the connection settings for Connect.
type Config struct {
	URL          string
	MaxOpenConns int
	MaxIdleConns int
}

// DB wraps the connection pool shared by every repository.
type DB struct {
	*sql.DB
	log zerolog.Logger
}

// psql renders squirrel builders with $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Connect opens the pool and pings the database.
func Connect(ctx context.Context, cfg Config, log zerolog.Logger) (*DB, error) {
	conn, err := sql.Open("pgx", cfg.URL)
	if err != nil {
		log.Err(err).Str("func", "postgres.Connect").Msg("error opening database connection")
		return nil, fmt.Errorf("postgres: open: %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		conn.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		conn.SetMaxIdleConns(cfg.MaxIdleConns)
	}

	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		log.Err(err).Str("func", "postgres.Connect").Msg("error connecting database (ping)")
		return nil, fmt.Errorf("postgres: ping: %w", err)
	}
	log.Info().Str("func", "postgres.Connect").Msg("connected to database successfully")

	return &DB{DB: conn, log: log}, nil
}

// NewDB wraps an already opened pool.
func NewDB(conn *sql.DB, log zerolog.Logger) *DB {
	return &DB{DB: conn, log: log}
}

// Ping reports whether the database is reachable.
func (db *DB) Ping(ctx context.Context) error {
	return db.PingContext(ctx)
}

// nullString stores an empty optional field as NULL.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
