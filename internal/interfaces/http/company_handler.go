package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/govindweb777/erp-sales-backend/internal/application/dto"
	"github.com/govindweb777/erp-sales-backend/internal/application/usecase"
)

// CompanyHandler lectura y edición de la empresa del principal.
type CompanyHandler struct {
	uc *usecase.CompanyUseCase
}

// NewCompanyHandler construye el handler.
func NewCompanyHandler(uc *usecase.CompanyUseCase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// Get obtiene la empresa.
// GET /api/admin/company
func (h *CompanyHandler) Get(c *fiber.Ctx) error {
	resp, err := h.uc.Get(GetPrincipal(c))
	if err != nil {
		return respondErr(c, err)
	}
	return ok(c, fiber.StatusOK, "empresa", resp)
}

// Update edita la empresa.
// PUT /api/admin/company
func (h *CompanyHandler) Update(c *fiber.Ctx) error {
	var in dto.CompanyRequest
	if !parseBody(c, &in) {
		return nil
	}
	resp, err := h.uc.Update(GetPrincipal(c), in)
	if err != nil {
		return respondErr(c, err)
	}
	return ok(c, fiber.StatusOK, "empresa actualizada", resp)
}
