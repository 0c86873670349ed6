package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/govindweb777/erp-sales-backend/internal/application/dto"
	"github.com/govindweb777/erp-sales-backend/internal/application/usecase"
)

// ItemHandler CRUD de ítems de inventario.
type ItemHandler struct {
	uc *usecase.ItemUseCase
}

// NewItemHandler construye el handler.
func NewItemHandler(uc *usecase.ItemUseCase) *ItemHandler {
	return &ItemHandler{uc: uc}
}

// Create da de alta un ítem.
// POST /api/items
func (h *ItemHandler) Create(c *fiber.Ctx) error {
	var in dto.ItemRequest
	if !parseBody(c, &in) {
		return nil
	}
	resp, err := h.uc.Create(GetPrincipal(c), in)
	if err != nil {
		return respondErr(c, err)
	}
	return ok(c, fiber.StatusCreated, "ítem creado", resp)
}

// Update edita los datos maestros del ítem.
// PUT /api/items/:id
func (h *ItemHandler) Update(c *fiber.Ctx) error {
	var in dto.ItemRequest
	if !parseBody(c, &in) {
		return nil
	}
	resp, err := h.uc.Update(GetPrincipal(c), c.Params("id"), in)
	if err != nil {
		return respondErr(c, err)
	}
	return ok(c, fiber.StatusOK, "ítem actualizado", resp)
}

// Get obtiene un ítem vivo.
// GET /api/items/:id
func (h *ItemHandler) Get(c *fiber.Ctx) error {
	resp, err := h.uc.Get(GetPrincipal(c), c.Params("id"))
	if err != nil {
		return respondErr(c, err)
	}
	return ok(c, fiber.StatusOK, "ítem", resp)
}

// List lista ítems con filtro opcional por estado (?status=Available).
// GET /api/items
func (h *ItemHandler) List(c *fiber.Ctx) error {
	q, okQ := listQuery(c)
	if !okQ {
		return nil
	}
	items, pagination, err := h.uc.List(GetPrincipal(c), q, c.Query("status"))
	if err != nil {
		return respondErr(c, err)
	}
	return ok(c, fiber.StatusOK, "ítems", fiber.Map{"items": items, "pagination": pagination})
}

// SoftDelete manda el ítem a la papelera.
// DELETE /api/items/:id
func (h *ItemHandler) SoftDelete(c *fiber.Ctx) error {
	if err := h.uc.SoftDelete(GetPrincipal(c), c.Params("id")); err != nil {
		return respondErr(c, err)
	}
	return ok(c, fiber.StatusOK, "ítem borrado", nil)
}

// Restore saca el ítem de la papelera.
// PATCH /api/items/:id/restore
func (h *ItemHandler) Restore(c *fiber.Ctx) error {
	resp, err := h.uc.Restore(GetPrincipal(c), c.Params("id"))
	if err != nil {
		return respondErr(c, err)
	}
	return ok(c, fiber.StatusOK, "ítem restaurado", resp)
}
