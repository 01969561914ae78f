package ports

import (
	"context"

	"github.com/carelink/health-gateway/internal/core/domain"
)

// AppointmentRepository defines persistence operations for appointments.
type AppointmentRepository interface {
	Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error)
	List(ctx context.Context) ([]*domain.Appointment, error)
}

// InventoryRepository defines persistence operations for pharmacy stock.
type InventoryRepository interface {
	Create(ctx context.Context, item *domain.InventoryItem) (*domain.InventoryItem, error)
	List(ctx context.Context) ([]*domain.InventoryItem, error)
}

//go:generate mockgen -source=record_repository.go -destination=mocks/record_repository_mock.go -package=mocks

// PrescriptionRepository stores prescription metadata rows.
type PrescriptionRepository interface {
	Create(ctx context.Context, p *domain.Prescription) (*domain.Prescription, error)
	List(ctx context.Context) ([]*domain.Prescription, error)
}
