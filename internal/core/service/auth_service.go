package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/carelink/health-gateway/internal/api/metrics"
	"github.com/carelink/health-gateway/internal/core/domain"
	"github.com/carelink/health-gateway/internal/core/ports"
)

// AuthService implements signup, login and identity lookup.
type AuthService struct {
	repo   ports.CredentialRepository
	hasher ports.PasswordHasher
	tokens ports.TokenIssuer
	log    zerolog.Logger
}

func NewAuthService(repo ports.CredentialRepository, hasher ports.PasswordHasher, tokens ports.TokenIssuer, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, tokens: tokens, log: log}
}

func (s *AuthService) Signup(ctx context.Context, input ports.SignupInput) (*domain.User, error) {
	role, err := domain.ParseRole(input.Role)
	if err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		UserID:       input.UserID,
		FullName:     input.FullName,
		Phone:        input.Phone,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, role, user)
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Login looks the phone up in the partition named by input.Role. An unknown
// phone yields domain.ErrUserNotFound and a wrong password
// domain.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, input ports.LoginInput) (string, *domain.User, error) {
	role, err := domain.ParseRole(input.Role)
	if err != nil {
		return "", nil, err
	}

	user, err := s.repo.FindByPhone(ctx, role, input.Phone)
	if err != nil {
		metrics.LoginAttempts.WithLabelValues(role.String(), loginOutcome(err)).Inc()
		return "", nil, err
	}

	if !s.hasher.Verify(input.Password, user.PasswordHash) {
		metrics.LoginAttempts.WithLabelValues(role.String(), "invalid_credentials").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.UserID, role)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}

	metrics.LoginAttempts.WithLabelValues(role.String(), "success").Inc()
	s.log.Debug().Str("user_id", user.UserID).Str("role", role.String()).Msg("login succeeded")
	return token, user, nil
}

// Me resolves the identity behind a verified token.
func (s *AuthService) Me(ctx context.Context, principal domain.Principal) (*domain.User, error) {
	return s.repo.FindByID(ctx, principal.Role, principal.SubjectID)
}

func loginOutcome(err error) string {
	if errors.Is(err, domain.ErrUserNotFound) {
		return "not_found"
	}
	return "error"
}
