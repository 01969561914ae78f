package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/carelink/health-gateway/internal/core/domain"
)

type stubAppointmentService struct {
	createFn func(ctx context.Context, a domain.Appointment) (*domain.Appointment, error)
	listFn   func(ctx context.Context) ([]*domain.Appointment, error)
}

func (s *stubAppointmentService) Create(ctx context.Context, a domain.Appointment) (*domain.Appointment, error) {
	return s.createFn(ctx, a)
}

func (s *stubAppointmentService) List(ctx context.Context) ([]*domain.Appointment, error) {
	return s.listFn(ctx)
}

type stubInventoryService struct {
	createFn func(ctx context.Context, item domain.InventoryItem) (*domain.InventoryItem, error)
	listFn   func(ctx context.Context) ([]*domain.InventoryItem, error)
}

func (s *stubInventoryService) Create(ctx context.Context, item domain.InventoryItem) (*domain.InventoryItem, error) {
	return s.createFn(ctx, item)
}

func (s *stubInventoryService) List(ctx context.Context) ([]*domain.InventoryItem, error) {
	return s.listFn(ctx)
}

type stubDirectoryService struct {
	listFn func(ctx context.Context, role domain.Role) ([]*domain.User, error)
}

func (s *stubDirectoryService) ListMembers(ctx context.Context, role domain.Role) ([]*domain.User, error) {
	return s.listFn(ctx, role)
}

func TestAppointmentHandler_Create(t *testing.T) {
	stub := &stubAppointmentService{
		createFn: func(ctx context.Context, a domain.Appointment) (*domain.Appointment, error) {
			a.ID = 1
			return &a, nil
		},
	}

	c, rec := newJSONContext(http.MethodPost, "/api/appointments",
		`{"patient_id":"p-1","doctor_id":"d-1","asha_id":"a-1","appointment_date":"2025-06-01","status":"scheduled"}`)
	if err := NewAppointmentHandler(stub).Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var got domain.Appointment
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.PatientID != "p-1" || got.DoctorID != "d-1" || got.AshaID != "a-1" || got.AppointmentDate != "2025-06-01" || got.Status != "scheduled" {
		t.Fatalf("response does not echo submitted fields: %+v", got)
	}
}

func TestAppointmentHandler_Create_MissingFields(t *testing.T) {
	stub := &stubAppointmentService{
		createFn: func(context.Context, domain.Appointment) (*domain.Appointment, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}

	c, _ := newJSONContext(http.MethodPost, "/api/appointments", `{"patient_id":"p-1"}`)
	expectHTTPError(t, NewAppointmentHandler(stub).Create(c), http.StatusBadRequest)
}

func TestAppointmentHandler_List(t *testing.T) {
	stub := &stubAppointmentService{
		listFn: func(context.Context) ([]*domain.Appointment, error) {
			return []*domain.Appointment{{ID: 1}, {ID: 2}}, nil
		},
	}

	c, rec := newJSONContext(http.MethodGet, "/api/appointments", "")
	if err := NewAppointmentHandler(stub).List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var got []domain.Appointment
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil || len(got) != 2 {
		t.Fatalf("expected two appointments, got %s (%v)", rec.Body.String(), err)
	}
}

func TestInventoryHandler_Create(t *testing.T) {
	stub := &stubInventoryService{
		createFn: func(ctx context.Context, item domain.InventoryItem) (*domain.InventoryItem, error) {
			if item.Stock != 25 || item.Price != 3.5 {
				t.Fatalf("numbers not bound: %+v", item)
			}
			item.ID = 9
			return &item, nil
		},
	}

	c, rec := newJSONContext(http.MethodPost, "/api/inventory",
		`{"pharmacy_user_id":"ph-1","medicine_name":"ORS","description":"sachet","stock":25,"price":3.5,"expiry_date":"2026-01-31"}`)
	if err := NewInventoryHandler(stub).Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestInventoryHandler_List_StoreError(t *testing.T) {
	storeErr := &domain.StoreError{Message: "permission denied for table inventory"}
	stub := &stubInventoryService{
		listFn: func(context.Context) ([]*domain.InventoryItem, error) { return nil, storeErr },
	}

	c, _ := newJSONContext(http.MethodGet, "/api/inventory", "")
	if err := NewInventoryHandler(stub).List(c); !errors.Is(err, storeErr) {
		t.Fatalf("expected store error, got %v", err)
	}
}

func TestDirectoryHandler_List(t *testing.T) {
	var gotRole domain.Role
	stub := &stubDirectoryService{
		listFn: func(ctx context.Context, role domain.Role) ([]*domain.User, error) {
			gotRole = role
			return []*domain.User{{UserID: "a-1", Role: role}}, nil
		},
	}

	c, rec := newJSONContext(http.MethodGet, "/api/asha", "")
	if err := NewDirectoryHandler(stub).List(domain.RoleASHA)(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if gotRole != domain.RoleASHA {
		t.Fatalf("expected asha partition, got %v", gotRole)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
