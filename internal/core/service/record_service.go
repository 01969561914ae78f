package service

import (
	"context"
	"time"

	"github.com/carelink/health-gateway/internal/core/domain"
	"github.com/carelink/health-gateway/internal/core/ports"
)

// AppointmentService forwards appointment reads and writes to the store.
type AppointmentService struct {
	repo ports.AppointmentRepository
}

func NewAppointmentService(repo ports.AppointmentRepository) *AppointmentService {
	return &AppointmentService{repo: repo}
}

func (s *AppointmentService) Create(ctx context.Context, a domain.Appointment) (*domain.Appointment, error) {
	a.ID = 0
	a.CreatedAt = time.Now().UTC()
	return s.repo.Create(ctx, &a)
}

func (s *AppointmentService) List(ctx context.Context) ([]*domain.Appointment, error) {
	return s.repo.List(ctx)
}

// InventoryService forwards pharmacy stock reads and writes to the store.
type InventoryService struct {
	repo ports.InventoryRepository
}

func NewInventoryService(repo ports.InventoryRepository) *InventoryService {
	return &InventoryService{repo: repo}
}

func (s *InventoryService) Create(ctx context.Context, item domain.InventoryItem) (*domain.InventoryItem, error) {
	item.ID = 0
	item.CreatedAt = time.Now().UTC()
	return s.repo.Create(ctx, &item)
}

func (s *InventoryService) List(ctx context.Context) ([]*domain.InventoryItem, error) {
	return s.repo.List(ctx)
}
