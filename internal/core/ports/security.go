package ports

import "github.com/carelink/health-gateway/internal/core/domain"

// PasswordHasher hashes and verifies plaintext passwords.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}

// TokenIssuer signs session tokens.
type TokenIssuer interface {
	Issue(subjectID string, role domain.Role) (string, error)
}

// TokenVerifier validates session tokens. Failures wrap domain.ErrInvalidToken.
type TokenVerifier interface {
	Verify(token string) (domain.Principal, error)
}

// TokenManager both issues and verifies session tokens.
type TokenManager interface {
	TokenIssuer
	TokenVerifier
}
