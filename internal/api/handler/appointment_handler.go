package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/carelink/health-gateway/internal/core/domain"
	"github.com/carelink/health-gateway/internal/core/ports"
)

type AppointmentHandler struct {
	service ports.AppointmentService
}

func NewAppointmentHandler(service ports.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{service: service}
}

// Create handles POST /api/appointments.
//
// @Summary      Book an appointment
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string                    false  "Replays the first response for a repeated key"
// @Param        body             body      createAppointmentRequest  true   "Appointment"
// @Success      201              {object}  domain.Appointment
// @Failure      400              {object}  map[string]string
// @Failure      401              {object}  map[string]string
// @Failure      403              {object}  map[string]string
// @Router       /api/appointments [post]
func (h *AppointmentHandler) Create(c echo.Context) error {
	var req createAppointmentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	created, err := h.service.Create(c.Request().Context(), domain.Appointment{
		PatientID:       req.PatientID,
		DoctorID:        req.DoctorID,
		AshaID:          req.AshaID,
		AppointmentDate: req.AppointmentDate,
		Status:          req.Status,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// List handles GET /api/appointments.
//
// @Summary      List appointments
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Appointment
// @Failure      401  {object}  map[string]string
// @Router       /api/appointments [get]
func (h *AppointmentHandler) List(c echo.Context) error {
	out, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}
