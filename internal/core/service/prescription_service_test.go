package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/carelink/health-gateway/internal/core/domain"
	"github.com/carelink/health-gateway/internal/core/ports"
	"github.com/carelink/health-gateway/internal/core/ports/mocks"
)

func newTestPrescriptionService(t *testing.T) (*PrescriptionService, *mocks.MockPrescriptionRepository, *mocks.MockObjectStorage) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockPrescriptionRepository(ctrl)
	storage := mocks.NewMockObjectStorage(ctrl)

	svc := NewPrescriptionService(repo, storage, zerolog.Nop())
	svc.newID = func() (uuid.UUID, error) {
		return uuid.MustParse("01890a5d-ac96-774b-bcce-b302099a8057"), nil
	}
	svc.now = func() time.Time { return time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC) }
	return svc, repo, storage
}

func TestPrescriptionService_Issue(t *testing.T) {
	svc, repo, storage := newTestPrescriptionService(t)
	data := []byte("%PDF-1.7 fake scan")
	const key = "01890a5d-ac96-774b-bcce-b302099a8057.pdf"

	gomock.InOrder(
		storage.EXPECT().Put(gomock.Any(), key, "application/pdf", data).Return(nil),
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *domain.Prescription) (*domain.Prescription, error) {
				return p, nil
			}),
	)

	p, err := svc.Issue(context.Background(), ports.IssuePrescriptionInput{
		PatientID:   "p-1",
		DoctorID:    "d-1",
		Notes:       "twice daily",
		FileName:    "scan.pdf",
		ContentType: "application/pdf",
		Data:        data,
	})
	require.NoError(t, err)

	assert.Equal(t, "01890a5d-ac96-774b-bcce-b302099a8057", p.PrescriptionID)
	assert.Equal(t, key, p.FileName)
	assert.Equal(t, int64(len(data)), p.FileSize)
	assert.Equal(t, "application/pdf", p.MimeType)
	assert.Equal(t, "p-1", p.PatientID)
	assert.Equal(t, "d-1", p.DoctorID)
	assert.Equal(t, "twice daily", p.Notes)
	assert.Equal(t, time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC), p.IssuedAt)
}

func TestPrescriptionService_Issue_UploadFailureSkipsInsert(t *testing.T) {
	svc, repo, storage := newTestPrescriptionService(t)

	storage.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("bucket not found"))
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.Issue(context.Background(), ports.IssuePrescriptionInput{FileName: "scan.pdf", Data: []byte("x")})
	assert.ErrorIs(t, err, domain.ErrUploadFailed)
}

func TestPrescriptionService_Issue_DefaultContentType(t *testing.T) {
	svc, repo, storage := newTestPrescriptionService(t)

	storage.EXPECT().Put(gomock.Any(), "01890a5d-ac96-774b-bcce-b302099a8057", "application/octet-stream", gomock.Any()).Return(nil)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *domain.Prescription) (*domain.Prescription, error) { return p, nil })

	p, err := svc.Issue(context.Background(), ports.IssuePrescriptionInput{FileName: "noext", Data: []byte("abc")})
	require.NoError(t, err)
	assert.Equal(t, "application/octet-stream", p.MimeType)
}

func TestPrescriptionService_Issue_InsertFailureSurfacesStoreError(t *testing.T) {
	svc, repo, storage := newTestPrescriptionService(t)
	storeErr := &domain.StoreError{Code: "23502", Message: `null value in column "patient_id"`}

	storage.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, storeErr)

	_, err := svc.Issue(context.Background(), ports.IssuePrescriptionInput{FileName: "a.png", Data: []byte("img")})
	assert.ErrorIs(t, err, storeErr)
}

func TestObjectKey(t *testing.T) {
	cases := map[string]string{
		"scan.pdf":           "id.pdf",
		"photo.JPG":          "id.JPG",
		"archive.tar.gz":     "id.gz",
		"noext":              "id",
		"../../etc/passwd":   "id",
		`C:\Users\me\rx.png`: "id.png",
		"dir.d/file":         "id",
	}
	for in, want := range cases {
		if got := ObjectKey("id", in); got != want {
			t.Fatalf("ObjectKey(%q) = %q, want %q", in, got, want)
		}
	}
}
