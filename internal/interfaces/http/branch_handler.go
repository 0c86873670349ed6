package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/govindweb777/erp-sales-backend/internal/application/dto"
	"github.com/govindweb777/erp-sales-backend/internal/application/usecase"
)

// BranchHandler gestión de sucursales (panel de admin).
type BranchHandler struct {
	uc *usecase.BranchUseCase
}

// NewBranchHandler construye el handler.
func NewBranchHandler(uc *usecase.BranchUseCase) *BranchHandler {
	return &BranchHandler{uc: uc}
}

// Create da de alta una sucursal con código generado.
// POST /api/admin/branches
func (h *BranchHandler) Create(c *fiber.Ctx) error {
	var in dto.BranchRequest
	if !parseBody(c, &in) {
		return nil
	}
	resp, err := h.uc.Create(GetPrincipal(c), in)
	if err != nil {
		return respondErr(c, err)
	}
	return ok(c, fiber.StatusCreated, "sucursal creada", resp)
}

// Update edita una sucursal.
// PUT /api/admin/branches/:id
func (h *BranchHandler) Update(c *fiber.Ctx) error {
	var in dto.BranchRequest
	if !parseBody(c, &in) {
		return nil
	}
	resp, err := h.uc.Update(GetPrincipal(c), c.Params("id"), in)
	if err != nil {
		return respondErr(c, err)
	}
	return ok(c, fiber.StatusOK, "sucursal actualizada", resp)
}

// Get obtiene una sucursal viva.
// GET /api/admin/branches/:id
func (h *BranchHandler) Get(c *fiber.Ctx) error {
	resp, err := h.uc.Get(GetPrincipal(c), c.Params("id"))
	if err != nil {
		return respondErr(c, err)
	}
	return ok(c, fiber.StatusOK, "sucursal", resp)
}

// List lista sucursales vivas.
// GET /api/admin/branches
func (h *BranchHandler) List(c *fiber.Ctx) error {
	q, okQ := listQuery(c)
	if !okQ {
		return nil
	}
	branches, pagination, err := h.uc.List(GetPrincipal(c), q)
	if err != nil {
		return respondErr(c, err)
	}
	return ok(c, fiber.StatusOK, "sucursales", fiber.Map{"branches": branches, "pagination": pagination})
}

// ListDeleted lista la papelera de sucursales.
// GET /api/admin/branches/deleted/list
func (h *BranchHandler) ListDeleted(c *fiber.Ctx) error {
	q, okQ := listQuery(c)
	if !okQ {
		return nil
	}
	branches, pagination, err := h.uc.ListDeleted(GetPrincipal(c), q)
	if err != nil {
		return respondErr(c, err)
	}
	return ok(c, fiber.StatusOK, "sucursales borradas", fiber.Map{"branches": branches, "pagination": pagination})
}

// SoftDelete manda la sucursal a la papelera y desactiva a sus usuarios.
// DELETE /api/admin/branches/:id
func (h *BranchHandler) SoftDelete(c *fiber.Ctx) error {
	if err := h.uc.SoftDelete(c.Context(), GetPrincipal(c), c.Params("id")); err != nil {
		return respondErr(c, err)
	}
	return ok(c, fiber.StatusOK, "sucursal borrada", nil)
}

// ToggleStatus invierte el estado de la sucursal y arrastra a sus usuarios.
// PATCH /api/admin/branches/:id/toggle-status
func (h *BranchHandler) ToggleStatus(c *fiber.Ctx) error {
	resp, err := h.uc.ToggleActive(c.Context(), GetPrincipal(c), c.Params("id"))
	if err != nil {
		return respondErr(c, err)
	}
	message := "sucursal desactivada"
	if resp.IsActive {
		message = "sucursal activada"
	}
	return ok(c, fiber.StatusOK, message, resp)
}

// Restore saca la sucursal de la papelera (sin reactivar usuarios).
// PATCH /api/admin/branches/:id/restore
func (h *BranchHandler) Restore(c *fiber.Ctx) error {
	resp, err := h.uc.Restore(GetPrincipal(c), c.Params("id"))
	if err != nil {
		return respondErr(c, err)
	}
	return ok(c, fiber.StatusOK, "sucursal restaurada", resp)
}
