package service

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/carelink/health-gateway/internal/api/metrics"
	"github.com/carelink/health-gateway/internal/core/domain"
	"github.com/carelink/health-gateway/internal/core/ports"
)

const defaultContentType = "application/octet-stream"

// PrescriptionService uploads prescription files and records their metadata.
type PrescriptionService struct {
	repo    ports.PrescriptionRepository
	storage ports.ObjectStorage
	log     zerolog.Logger
	newID   func() (uuid.UUID, error)
	now     func() time.Time
}

func NewPrescriptionService(repo ports.PrescriptionRepository, storage ports.ObjectStorage, log zerolog.Logger) *PrescriptionService {
	return &PrescriptionService{
		repo:    repo,
		storage: storage,
		log:     log,
		newID:   uuid.NewV7,
		now:     time.Now,
	}
}

// Issue uploads the file first and inserts the metadata row only when the
// upload succeeded. A failed insert leaves the uploaded object in place.
func (s *PrescriptionService) Issue(ctx context.Context, input ports.IssuePrescriptionInput) (*domain.Prescription, error) {
	id, err := s.newID()
	if err != nil {
		return nil, fmt.Errorf("generate prescription id: %w", err)
	}

	contentType := input.ContentType
	if contentType == "" {
		contentType = defaultContentType
	}
	key := ObjectKey(id.String(), input.FileName)

	if err := s.storage.Put(ctx, key, contentType, input.Data); err != nil {
		metrics.PrescriptionUploads.WithLabelValues("failed").Inc()
		s.log.Error().Err(err).Str("key", key).Msg("prescription upload failed")
		return nil, fmt.Errorf("%w: %v", domain.ErrUploadFailed, err)
	}
	metrics.PrescriptionUploads.WithLabelValues("stored").Inc()
	metrics.PrescriptionUploadBytes.Observe(float64(len(input.Data)))

	p := &domain.Prescription{
		PrescriptionID: id.String(),
		PatientID:      input.PatientID,
		DoctorID:       input.DoctorID,
		FileName:       key,
		MimeType:       contentType,
		FileSize:       int64(len(input.Data)),
		Notes:          input.Notes,
		IssuedAt:       s.now().UTC(),
	}

	created, err := s.repo.Create(ctx, p)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("prescription metadata insert failed after upload")
		return nil, err
	}
	return created, nil
}

func (s *PrescriptionService) List(ctx context.Context) ([]*domain.Prescription, error) {
	return s.repo.List(ctx)
}

// ObjectKey derives the storage key for an upload: the generated id followed
// by the extension of the original file name, if any.
func ObjectKey(id, originalName string) string {
	return id + path.Ext(path.Base(strings.ReplaceAll(originalName, "\\", "/")))
}
