package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/govindweb777/erp-sales-backend/internal/application/usecase"
)

// DashboardHandler contadores del tablero del admin.
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary arma los contadores de la empresa.
// GET /api/admin/dashboard
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	resp, err := h.uc.Summary(GetPrincipal(c))
	if err != nil {
		return respondErr(c, err)
	}
	return ok(c, fiber.StatusOK, "tablero", resp)
}
