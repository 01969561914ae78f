package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/carelink/health-gateway/internal/core/domain"
	"github.com/carelink/health-gateway/internal/core/ports"
)

// DirectoryHandler lists the members of each role partition.
type DirectoryHandler struct {
	service ports.DirectoryService
}

func NewDirectoryHandler(service ports.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{service: service}
}

// List returns a handler for GET /api/patients, /doctors, /asha and
// /pharmacies.
//
// @Summary      List identities of a role
// @Tags         directory
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.User
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/patients [get]
// @Router       /api/doctors [get]
// @Router       /api/asha [get]
// @Router       /api/pharmacies [get]
func (h *DirectoryHandler) List(role domain.Role) echo.HandlerFunc {
	return func(c echo.Context) error {
		users, err := h.service.ListMembers(c.Request().Context(), role)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, users)
	}
}
