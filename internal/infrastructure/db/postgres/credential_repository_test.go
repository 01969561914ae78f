package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carelink/health-gateway/internal/core/domain"
)

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return NewDB(conn, zerolog.Nop()), mock
}

func pgError(code, msg string) error {
	return &pgconn.PgError{Code: code, Message: msg}
}

var userRowColumns = []string{"user_id", "full_name", "phone", "password_hash", "created_at"}

func TestTableFor(t *testing.T) {
	want := map[domain.Role]string{
		domain.RolePatient:  "patients",
		domain.RoleDoctor:   "doctors",
		domain.RoleASHA:     "asha_workers",
		domain.RolePharmacy: "pharmacies",
	}
	for _, role := range domain.Roles() {
		table, err := TableFor(role)
		require.NoError(t, err)
		assert.Equal(t, want[role], table)
	}

	_, err := TableFor(domain.Role(0))
	assert.ErrorIs(t, err, domain.ErrInvalidRole)
}

func TestCredentialRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCredentialRepository(db)
	now := time.Now().UTC()

	user := &domain.User{UserID: "d-1", FullName: "Dr. Rao", Phone: "98765", PasswordHash: "hash", CreatedAt: now}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO doctors (user_id,full_name,phone,password_hash,created_at) VALUES ($1,$2,$3,$4,$5) RETURNING")).
		WithArgs("d-1", "Dr. Rao", "98765", "hash", now).
		WillReturnRows(sqlmock.NewRows(userRowColumns).AddRow("d-1", "Dr. Rao", "98765", "hash", now))

	created, err := repo.Create(context.Background(), domain.RoleDoctor, user)
	require.NoError(t, err)
	assert.Equal(t, "d-1", created.UserID)
	assert.Equal(t, domain.RoleDoctor, created.Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCredentialRepository_Create_UniqueViolation(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCredentialRepository(db)

	mock.ExpectQuery("INSERT INTO asha_workers").
		WillReturnError(pgError(pgerrcode.UniqueViolation, `duplicate key value violates unique constraint "asha_workers_phone_key"`))

	_, err := repo.Create(context.Background(), domain.RoleASHA, &domain.User{UserID: "a-1", Phone: "1"})

	var storeErr *domain.StoreError
	require.True(t, errors.As(err, &storeErr), "expected StoreError, got %v", err)
	assert.Equal(t, pgerrcode.UniqueViolation, storeErr.Code)
	assert.Equal(t, `duplicate key value violates unique constraint "asha_workers_phone_key"`, err.Error())
}

func TestCredentialRepository_Create_InvalidRoleSkipsStore(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCredentialRepository(db)

	_, err := repo.Create(context.Background(), domain.Role(9), &domain.User{})
	assert.ErrorIs(t, err, domain.ErrInvalidRole)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCredentialRepository_FindByPhone(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCredentialRepository(db)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT user_id, full_name, phone, password_hash, created_at FROM pharmacies WHERE phone = $1 LIMIT 1")).
		WithArgs("555").
		WillReturnRows(sqlmock.NewRows(userRowColumns).AddRow("ph-1", nil, "555", "hash", now))

	user, err := repo.FindByPhone(context.Background(), domain.RolePharmacy, "555")
	require.NoError(t, err)
	assert.Equal(t, "ph-1", user.UserID)
	assert.Equal(t, "", user.FullName)
	assert.Equal(t, domain.RolePharmacy, user.Role)
}

func TestCredentialRepository_FindByPhone_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCredentialRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM patients").
		WithArgs("000").
		WillReturnRows(sqlmock.NewRows(userRowColumns))

	_, err := repo.FindByPhone(context.Background(), domain.RolePatient, "000")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestCredentialRepository_FindByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCredentialRepository(db)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("FROM asha_workers WHERE user_id = $1")).
		WithArgs("a-9").
		WillReturnRows(sqlmock.NewRows(userRowColumns).AddRow("a-9", "Sunita", "321", "hash", now))

	user, err := repo.FindByID(context.Background(), domain.RoleASHA, "a-9")
	require.NoError(t, err)
	assert.Equal(t, "Sunita", user.FullName)
}

func TestCredentialRepository_FindByID_DriverError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCredentialRepository(db)

	mock.ExpectQuery("FROM doctors").WillReturnError(errors.New("conn reset"))

	_, err := repo.FindByID(context.Background(), domain.RoleDoctor, "d-1")
	var storeErr *domain.StoreError
	require.True(t, errors.As(err, &storeErr))
	assert.Equal(t, "conn reset", storeErr.Message)
	assert.Empty(t, storeErr.Code)
}

func TestCredentialRepository_List(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCredentialRepository(db)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT user_id, full_name, phone, password_hash, created_at FROM doctors ORDER BY created_at")).
		WillReturnRows(sqlmock.NewRows(userRowColumns).
			AddRow("d-1", "One", "1", "h1", now).
			AddRow("d-2", "Two", "2", "h2", now))

	users, err := repo.List(context.Background(), domain.RoleDoctor)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "d-2", users[1].UserID)
}

func TestCredentialRepository_List_Empty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCredentialRepository(db)

	mock.ExpectQuery("FROM patients").WillReturnRows(sqlmock.NewRows(userRowColumns))

	users, err := repo.List(context.Background(), domain.RolePatient)
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}
