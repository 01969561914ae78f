package ports

import (
	"context"

	"github.com/carelink/health-gateway/internal/core/domain"
)

// AppointmentService defines use-case operations for appointments.
type AppointmentService interface {
	Create(ctx context.Context, a domain.Appointment) (*domain.Appointment, error)
	List(ctx context.Context) ([]*domain.Appointment, error)
}

// InventoryService defines use-case operations for pharmacy inventory.
type InventoryService interface {
	Create(ctx context.Context, item domain.InventoryItem) (*domain.InventoryItem, error)
	List(ctx context.Context) ([]*domain.InventoryItem, error)
}

// IssuePrescriptionInput is an uploaded prescription file plus its form fields.
type IssuePrescriptionInput struct {
	PatientID   string
	DoctorID    string
	Notes       string
	FileName    string // original name as sent by the client
	ContentType string
	Data        []byte
}

// PrescriptionService uploads prescription files and records their metadata.
type PrescriptionService interface {
	Issue(ctx context.Context, input IssuePrescriptionInput) (*domain.Prescription, error)
	List(ctx context.Context) ([]*domain.Prescription, error)
}
