package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/carelink/health-gateway/internal/core/ports"
)

const prescriptionUploaded = "Prescription uploaded successfully"

type PrescriptionHandler struct {
	service  ports.PrescriptionService
	maxBytes int64
}

// NewPrescriptionHandler returns a handler accepting files of at most
// maxBytes bytes.
func NewPrescriptionHandler(service ports.PrescriptionService, maxBytes int64) *PrescriptionHandler {
	return &PrescriptionHandler{service: service, maxBytes: maxBytes}
}

// Create handles POST /api/prescriptions. The file is buffered in memory and
// uploaded before the metadata row is written.
//
// @Summary      Upload a prescription
// @Tags         prescriptions
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string  false  "Replays the first response for a repeated key"
// @Param        file        formData  file    true   "Prescription file"
// @Param        patient_id  formData  string  true   "Patient user id"
// @Param        doctor_id   formData  string  true   "Doctor user id"
// @Param        notes       formData  string  false  "Free-text notes"
// @Success      201  {object}  prescriptionResponse
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      413  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/prescriptions [post]
func (h *PrescriptionHandler) Create(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		var (
			maxErr *http.MaxBytesError
			he     *echo.HTTPError
		)
		if errors.As(err, &maxErr) {
			return echo.ErrStatusRequestEntityTooLarge
		}
		if errors.As(err, &he) {
			return he
		}
		return echo.NewHTTPError(http.StatusBadRequest, "file is required")
	}
	if fh.Size > h.maxBytes {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, fmt.Sprintf("file exceeds %d bytes", h.maxBytes))
	}

	var form createPrescriptionForm
	if err := bindAndValidate(c, &form); err != nil {
		return err
	}

	src, err := fh.Open()
	if err != nil {
		return fmt.Errorf("open uploaded file: %w", err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return fmt.Errorf("read uploaded file: %w", err)
	}

	p, err := h.service.Issue(c.Request().Context(), ports.IssuePrescriptionInput{
		PatientID:   form.PatientID,
		DoctorID:    form.DoctorID,
		Notes:       form.Notes,
		FileName:    fh.Filename,
		ContentType: fh.Header.Get(echo.HeaderContentType),
		Data:        data,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, prescriptionResponse{Message: prescriptionUploaded, Prescription: p})
}

// List handles GET /api/prescriptions.
//
// @Summary      List prescriptions
// @Tags         prescriptions
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Prescription
// @Router       /api/prescriptions [get]
func (h *PrescriptionHandler) List(c echo.Context) error {
	out, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}
