package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/carelink/health-gateway/internal/core/domain"
)

var appointmentColumns = []string{"id", "patient_id", "doctor_id", "asha_id", "appointment_date", "status", "created_at"}

type AppointmentRepository struct {
	db *DB
}

func NewAppointmentRepository(db *DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

func (r *AppointmentRepository) Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	query, args, err := psql.Insert("appointments").
		Columns("patient_id", "doctor_id", "asha_id", "appointment_date", "status", "created_at").
		Values(a.PatientID, a.DoctorID, nullString(a.AshaID), a.AppointmentDate, nullString(a.Status), a.CreatedAt).
		Suffix("RETURNING id, patient_id, doctor_id, asha_id, appointment_date, status, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert: %w", err)
	}

	created, err := scanAppointment(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		logQueryError(r.db.log, "*AppointmentRepository.Create", err)
		return nil, storeError(err)
	}
	return created, nil
}

func (r *AppointmentRepository) List(ctx context.Context) ([]*domain.Appointment, error) {
	query, args, err := psql.Select(appointmentColumns...).From("appointments").OrderBy("id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logQueryError(r.db.log, "*AppointmentRepository.List", err)
		return nil, storeError(err)
	}
	defer rows.Close()

	out := make([]*domain.Appointment, 0)
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, storeError(err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError(err)
	}
	return out, nil
}

func scanAppointment(row scanner) (*domain.Appointment, error) {
	var (
		a            domain.Appointment
		ashaID, stat sql.NullString
	)
	if err := row.Scan(&a.ID, &a.PatientID, &a.DoctorID, &ashaID, &a.AppointmentDate, &stat, &a.CreatedAt); err != nil {
		return nil, err
	}
	a.AshaID = ashaID.String
	a.Status = stat.String
	return &a, nil
}
