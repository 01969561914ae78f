package postgres

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"

	"github.com/carelink/health-gateway/internal/core/domain"
)

// storeError converts a driver error into a *domain.StoreError carrying the
// database message verbatim.
func storeError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return &domain.StoreError{Code: pgErr.Code, Message: pgErr.Message, Err: err}
	}
	return &domain.StoreError{Message: err.Error(), Err: err}
}

// isClientError reports whether err was caused by the submitted data rather
// than by the database itself.
func isClientError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgerrcode.IsIntegrityConstraintViolation(pgErr.Code) ||
		pgerrcode.IsDataException(pgErr.Code)
}

// logQueryError logs a failed statement at a level matching its cause.
func logQueryError(log zerolog.Logger, fn string, err error) {
	if errors.Is(err, sql.ErrNoRows) {
		return
	}
	ev := log.Error()
	if isClientError(err) {
		ev = log.Debug()
	}
	ev.Err(err).Str("func", fn).Msg("query failed")
}
