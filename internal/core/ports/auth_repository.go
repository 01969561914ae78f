package ports

import (
	"context"

	"github.com/carelink/health-gateway/internal/core/domain"
)

// CredentialRepository persists identities in their role partition.
type CredentialRepository interface {
	Create(ctx context.Context, role domain.Role, user *domain.User) (*domain.User, error)
	// FindByPhone returns domain.ErrUserNotFound when no row matches.
	FindByPhone(ctx context.Context, role domain.Role, phone string) (*domain.User, error)
	// FindByID returns domain.ErrUserNotFound when no row matches.
	FindByID(ctx context.Context, role domain.Role, userID string) (*domain.User, error)
	List(ctx context.Context, role domain.Role) ([]*domain.User, error)
}
