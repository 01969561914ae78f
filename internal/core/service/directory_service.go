package service

import (
	"context"

	"github.com/carelink/health-gateway/internal/core/domain"
	"github.com/carelink/health-gateway/internal/core/ports"
)

// DirectoryService lists the members of a role partition.
type DirectoryService struct {
	repo ports.CredentialRepository
}

func NewDirectoryService(repo ports.CredentialRepository) *DirectoryService {
	return &DirectoryService{repo: repo}
}

func (s *DirectoryService) ListMembers(ctx context.Context, role domain.Role) ([]*domain.User, error) {
	if !role.Valid() {
		return nil, domain.ErrInvalidRole
	}
	return s.repo.List(ctx, role)
}
