package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/govindweb777/erp-sales-backend/internal/application/dto"
	"github.com/govindweb777/erp-sales-backend/internal/application/usecase"
)

// Handlers de maestros de ítems: grupos y categorías. Mismo CRUD uniforme que
// los maestros contables, salvo que el borrado es definitivo.

// ItemGroupHandler maestro de grupos de ítems.
type ItemGroupHandler struct {
	uc *usecase.ItemGroupUseCase
}

// NewItemGroupHandler construye el handler.
func NewItemGroupHandler(uc *usecase.ItemGroupUseCase) *ItemGroupHandler {
	return &ItemGroupHandler{uc: uc}
}

// Create da de alta un grupo de ítems.
// POST /api/item-groups
func (h *ItemGroupHandler) Create(c *fiber.Ctx) error {
	var in dto.ItemGroupRequest
	if !parseBody(c, &in) {
		return nil
	}
	group, err := h.uc.Create(GetPrincipal(c), in)
	if err != nil {
		return respondErr(c, err)
	}
	return ok(c, fiber.StatusCreated, "grupo de ítems creado", group)
}

// Update edita un grupo de ítems.
// PUT /api/item-groups/:id
func (h *ItemGroupHandler) Update(c *fiber.Ctx) error {
	var in dto.ItemGroupRequest
	if !parseBody(c, &in) {
		return nil
	}
	group, err := h.uc.Update(GetPrincipal(c), c.Params("id"), in)
	if err != nil {
		return respondErr(c, err)
	}
	return ok(c, fiber.StatusOK, "grupo de ítems actualizado", group)
}

// Get obtiene un grupo de ítems.
// GET /api/item-groups/:id
func (h *ItemGroupHandler) Get(c *fiber.Ctx) error {
	group, err := h.uc.Get(GetPrincipal(c), c.Params("id"))
	if err != nil {
		return respondErr(c, err)
	}
	return ok(c, fiber.StatusOK, "grupo de ítems", group)
}

// List lista grupos de ítems.
// GET /api/item-groups
func (h *ItemGroupHandler) List(c *fiber.Ctx) error {
	q, okQ := listQuery(c)
	if !okQ {
		return nil
	}
	groups, pagination, err := h.uc.List(GetPrincipal(c), q)
	if err != nil {
		return respondErr(c, err)
	}
	return ok(c, fiber.StatusOK, "grupos de ítems", fiber.Map{"groups": groups, "pagination": pagination})
}

// Delete elimina el grupo definitivamente.
// DELETE /api/item-groups/:id
func (h *ItemGroupHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetPrincipal(c), c.Params("id")); err != nil {
		return respondErr(c, err)
	}
	return ok(c, fiber.StatusOK, "grupo de ítems eliminado", nil)
}

// ItemCategoryHandler maestro de categorías de ítems.
type ItemCategoryHandler struct {
	uc *usecase.ItemCategoryUseCase
}

// NewItemCategoryHandler construye el handler.
func NewItemCategoryHandler(uc *usecase.ItemCategoryUseCase) *ItemCategoryHandler {
	return &ItemCategoryHandler{uc: uc}
}

// Create da de alta una categoría de ítems.
// POST /api/item-categories
func (h *ItemCategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.ItemCategoryRequest
	if !parseBody(c, &in) {
		return nil
	}
	category, err := h.uc.Create(GetPrincipal(c), in)
	if err != nil {
		return respondErr(c, err)
	}
	return ok(c, fiber.StatusCreated, "categoría creada", category)
}

// Update edita una categoría de ítems.
// PUT /api/item-categories/:id
func (h *ItemCategoryHandler) Update(c *fiber.Ctx) error {
	var in dto.ItemCategoryRequest
	if !parseBody(c, &in) {
		return nil
	}
	category, err := h.uc.Update(GetPrincipal(c), c.Params("id"), in)
	if err != nil {
		return respondErr(c, err)
	}
	return ok(c, fiber.StatusOK, "categoría actualizada", category)
}

// Get obtiene una categoría de ítems.
// GET /api/item-categories/:id
func (h *ItemCategoryHandler) Get(c *fiber.Ctx) error {
	category, err := h.uc.Get(GetPrincipal(c), c.Params("id"))
	if err != nil {
		return respondErr(c, err)
	}
	return ok(c, fiber.StatusOK, "categoría", category)
}

// List lista categorías de ítems.
// GET /api/item-categories
func (h *ItemCategoryHandler) List(c *fiber.Ctx) error {
	q, okQ := listQuery(c)
	if !okQ {
		return nil
	}
	categories, pagination, err := h.uc.List(GetPrincipal(c), q)
	if err != nil {
		return respondErr(c, err)
	}
	return ok(c, fiber.StatusOK, "categorías", fiber.Map{"categories": categories, "pagination": pagination})
}

// Delete elimina la categoría definitivamente.
// DELETE /api/item-categories/:id
func (h *ItemCategoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetPrincipal(c), c.Params("id")); err != nil {
		return respondErr(c, err)
	}
	return ok(c, fiber.StatusOK, "categoría eliminada", nil)
}
