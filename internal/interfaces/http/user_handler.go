package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/govindweb777/erp-sales-backend/internal/application/dto"
	"github.com/govindweb777/erp-sales-backend/internal/application/usecase"
)

// UserHandler gestión de usuarios (panel de admin).
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// Create da de alta un usuario.
// POST /api/admin/users
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if !parseBody(c, &in) {
		return nil
	}
	resp, err := h.uc.Create(GetPrincipal(c), in)
	if err != nil {
		return respondErr(c, err)
	}
	return ok(c, fiber.StatusCreated, "usuario creado", resp)
}

// Update edita un usuario.
// PUT /api/admin/users/:id
func (h *UserHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateUserRequest
	if !parseBody(c, &in) {
		return nil
	}
	resp, err := h.uc.Update(GetPrincipal(c), c.Params("id"), in)
	if err != nil {
		return respondErr(c, err)
	}
	return ok(c, fiber.StatusOK, "usuario actualizado", resp)
}

// ToggleStatus invierte isActive.
// PATCH /api/admin/users/:id/toggle-status
func (h *UserHandler) ToggleStatus(c *fiber.Ctx) error {
	resp, err := h.uc.ToggleStatus(GetPrincipal(c), c.Params("id"))
	if err != nil {
		return respondErr(c, err)
	}
	return ok(c, fiber.StatusOK, "estado actualizado", resp)
}

// Get obtiene un usuario.
// GET /api/admin/users/:id
func (h *UserHandler) Get(c *fiber.Ctx) error {
	resp, err := h.uc.Get(GetPrincipal(c), c.Params("id"))
	if err != nil {
		return respondErr(c, err)
	}
	return ok(c, fiber.StatusOK, "usuario", resp)
}

// List lista usuarios de la empresa.
// GET /api/admin/users
func (h *UserHandler) List(c *fiber.Ctx) error {
	q, okQ := listQuery(c)
	if !okQ {
		return nil
	}
	users, pagination, err := h.uc.List(GetPrincipal(c), q)
	if err != nil {
		return respondErr(c, err)
	}
	return ok(c, fiber.StatusOK, "usuarios", fiber.Map{"users": users, "pagination": pagination})
}

// Delete elimina un usuario.
// DELETE /api/admin/users/:id
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetPrincipal(c), c.Params("id")); err != nil {
		return respondErr(c, err)
	}
	return ok(c, fiber.StatusOK, "usuario eliminado", nil)
}
