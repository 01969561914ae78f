package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/carelink/health-gateway/internal/core/domain"
)

var prescriptionColumns = []string{"prescription_id", "patient_id", "doctor_id", "file_name", "mime_type", "file_size", "notes", "issued_at"}

type PrescriptionRepository struct {
	db *DB
}

func NewPrescriptionRepository(db *DB) *PrescriptionRepository {
	return &PrescriptionRepository{db: db}
}

func (r *PrescriptionRepository) Create(ctx context.Context, p *domain.Prescription) (*domain.Prescription, error) {
	query, args, err := psql.Insert("prescriptions").
		Columns(prescriptionColumns...).
		Values(p.PrescriptionID, p.PatientID, p.DoctorID, p.FileName, p.MimeType, p.FileSize, nullString(p.Notes), p.IssuedAt).
		Suffix("RETURNING prescription_id, patient_id, doctor_id, file_name, mime_type, file_size, notes, issued_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert: %w", err)
	}

	created, err := scanPrescription(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		logQueryError(r.db.log, "*PrescriptionRepository.Create", err)
		return nil, storeError(err)
	}
	return created, nil
}

func (r *PrescriptionRepository) List(ctx context.Context) ([]*domain.Prescription, error) {
	query, args, err := psql.Select(prescriptionColumns...).From("prescriptions").OrderBy("issued_at DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logQueryError(r.db.log, "*PrescriptionRepository.List", err)
		return nil, storeError(err)
	}
	defer rows.Close()

	out := make([]*domain.Prescription, 0)
	for rows.Next() {
		p, err := scanPrescription(rows)
		if err != nil {
			return nil, storeError(err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError(err)
	}
	return out, nil
}

func scanPrescription(row scanner) (*domain.Prescription, error) {
	var (
		p     domain.Prescription
		notes sql.NullString
	)
	if err := row.Scan(&p.PrescriptionID, &p.PatientID, &p.DoctorID, &p.FileName, &p.MimeType, &p.FileSize, &notes, &p.IssuedAt); err != nil {
		return nil, err
	}
	p.Notes = notes.String
	return &p, nil
}
