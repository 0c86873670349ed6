package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/govindweb777/erp-sales-backend/internal/application/auth"
	"github.com/govindweb777/erp-sales-backend/internal/application/dto"
)

// AuthHandler maneja registro, login y reseteo de contraseña.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register da de alta empresa + admin.
// POST /api/auth/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if !parseBody(c, &in) {
		return nil
	}
	resp, err := h.uc.Register(in)
	if err != nil {
		return respondErr(c, err)
	}
	return ok(c, fiber.StatusCreated, "empresa registrada", resp)
}

// Login autentica y retorna el token.
// POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if !parseBody(c, &in) {
		return nil
	}
	resp, err := h.uc.Login(in)
	if err != nil {
		return respondErr(c, err)
	}
	return ok(c, fiber.StatusOK, "login exitoso", resp)
}

// Me retorna el perfil del usuario autenticado.
// GET /api/auth/me
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	p := GetPrincipal(c)
	resp, err := h.uc.Me(p.UserID)
	if err != nil {
		return respondErr(c, err)
	}
	return ok(c, fiber.StatusOK, "perfil", resp)
}

// ForgotPassword genera y envía el token de reseteo. Siempre responde 200.
// POST /api/auth/forgot-password
func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var in dto.ForgotPasswordRequest
	if !parseBody(c, &in) {
		return nil
	}
	if err := h.uc.ForgotPassword(in); err != nil {
		return respondErr(c, err)
	}
	return ok(c, fiber.StatusOK, "si el email existe, se envió un enlace de reseteo", nil)
}

// ResetPassword cambia la contraseña con un token vigente.
// POST /api/auth/reset-password
func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var in dto.ResetPasswordRequest
	if !parseBody(c, &in) {
		return nil
	}
	if err := h.uc.ResetPassword(in); err != nil {
		return respondErr(c, err)
	}
	return ok(c, fiber.StatusOK, "contraseña actualizada", nil)
}
