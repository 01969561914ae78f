package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/carelink/health-gateway/internal/core/domain"
)

// roleTables maps every role to the table holding its identities.
var roleTables = [...]string{
	domain.RolePatient:  "patients",
	domain.RoleDoctor:   "doctors",
	domain.RoleASHA:     "asha_workers",
	domain.RolePharmacy: "pharmacies",
}

// TableFor returns the identity table of role.
func TableFor(role domain.Role) (string, error) {
	if !role.Valid() {
		return "", domain.ErrInvalidRole
	}
	return roleTables[role], nil
}

var userColumns = []string{"user_id", "full_name", "phone", "password_hash", "created_at"}

// CredentialRepository reads and writes the four role-partitioned identity
// tables.
type CredentialRepository struct {
	db *DB
}

func NewCredentialRepository(db *DB) *CredentialRepository {
	return &CredentialRepository{db: db}
}

func (r *CredentialRepository) Create(ctx context.Context, role domain.Role, user *domain.User) (*domain.User, error) {
	table, err := TableFor(role)
	if err != nil {
		return nil, err
	}

	query, args, err := psql.Insert(table).
		Columns(userColumns...).
		Values(user.UserID, user.FullName, user.Phone, user.PasswordHash, user.CreatedAt).
		Suffix("RETURNING user_id, full_name, phone, password_hash, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert: %w", err)
	}

	created, err := scanUser(r.db.QueryRowContext(ctx, query, args...), role)
	if err != nil {
		logQueryError(r.db.log, "*CredentialRepository.Create", err)
		return nil, storeError(err)
	}
	return created, nil
}

func (r *CredentialRepository) FindByPhone(ctx context.Context, role domain.Role, phone string) (*domain.User, error) {
	return r.findOne(ctx, role, "phone", phone, "*CredentialRepository.FindByPhone")
}

func (r *CredentialRepository) FindByID(ctx context.Context, role domain.Role, userID string) (*domain.User, error) {
	return r.findOne(ctx, role, "user_id", userID, "*CredentialRepository.FindByID")
}

func (r *CredentialRepository) findOne(ctx context.Context, role domain.Role, column, value, fn string) (*domain.User, error) {
	table, err := TableFor(role)
	if err != nil {
		return nil, err
	}

	query, args, err := psql.Select(userColumns...).
		From(table).
		Where(sq.Eq{column: value}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...), role)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		logQueryError(r.db.log, fn, err)
		return nil, storeError(err)
	}
	return user, nil
}

func (r *CredentialRepository) List(ctx context.Context, role domain.Role) ([]*domain.User, error) {
	table, err := TableFor(role)
	if err != nil {
		return nil, err
	}

	query, args, err := psql.Select(userColumns...).From(table).OrderBy("created_at").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logQueryError(r.db.log, "*CredentialRepository.List", err)
		return nil, storeError(err)
	}
	defer rows.Close()

	users := make([]*domain.User, 0)
	for rows.Next() {
		u, err := scanUser(rows, role)
		if err != nil {
			return nil, storeError(err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		logQueryError(r.db.log, "*CredentialRepository.List", err)
		return nil, storeError(err)
	}
	return users, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(row scanner, role domain.Role) (*domain.User, error) {
	u := &domain.User{Role: role}
	var fullName sql.NullString
	if err := row.Scan(&u.UserID, &fullName, &u.Phone, &u.PasswordHash, &u.CreatedAt); err != nil {
		return nil, err
	}
	u.FullName = fullName.String
	return u, nil
}
