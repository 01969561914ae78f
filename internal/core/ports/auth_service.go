package ports

import (
	"context"

	"github.com/carelink/health-gateway/internal/core/domain"
)

// SignupInput carries the fields accepted by the signup endpoint.
type SignupInput struct {
	UserID   string
	FullName string
	Phone    string
	Password string
	Role     string
}

// LoginInput carries the login credentials and the partition to search.
type LoginInput struct {
	Phone    string
	Password string
	Role     string
}

type AuthService interface {
	Signup(ctx context.Context, input SignupInput) (*domain.User, error)
	Login(ctx context.Context, input LoginInput) (string, *domain.User, error)
	Me(ctx context.Context, principal domain.Principal) (*domain.User, error)
}

// DirectoryService lists the identities of one role partition.
type DirectoryService interface {
	ListMembers(ctx context.Context, role domain.Role) ([]*domain.User, error)
}
