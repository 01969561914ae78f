package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/carelink/health-gateway/internal/core/domain"
	"github.com/carelink/health-gateway/internal/core/ports"
)

type InventoryHandler struct {
	service ports.InventoryService
}

func NewInventoryHandler(service ports.InventoryService) *InventoryHandler {
	return &InventoryHandler{service: service}
}

// Create handles POST /api/inventory.
//
// @Summary      Add an inventory item
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string                  false  "Replays the first response for a repeated key"
// @Param        body             body      createInventoryRequest  true   "Inventory item"
// @Success      201              {object}  domain.InventoryItem
// @Failure      400              {object}  map[string]string
// @Failure      403              {object}  map[string]string
// @Router       /api/inventory [post]
func (h *InventoryHandler) Create(c echo.Context) error {
	var req createInventoryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	created, err := h.service.Create(c.Request().Context(), domain.InventoryItem{
		PharmacyUserID: req.PharmacyUserID,
		MedicineName:   req.MedicineName,
		Description:    req.Description,
		Stock:          req.Stock,
		Price:          req.Price,
		ExpiryDate:     req.ExpiryDate,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// List handles GET /api/inventory.
func (h *InventoryHandler) List(c echo.Context) error {
	out, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}
