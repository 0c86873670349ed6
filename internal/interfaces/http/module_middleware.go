package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/govindweb777/erp-sales-backend/internal/domain/entity"
)

// RequireModule restringe una ruta a los user-panel con el módulo habilitado.
// Los demás roles pasan sin chequeo: moduleAccess solo aplica a user-panel.
// Debe usarse DESPUÉS de AuthMiddleware.
func RequireModule(enabled func(entity.ModuleAccess) bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p := GetPrincipal(c)
		if p.UserID == "" {
			return fail(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "no autorizado")
		}
		if p.Role != entity.RoleUserPanel {
			return c.Next()
		}
		access, _ := c.Locals(LocalModuleAccess).(entity.ModuleAccess)
		if !enabled(access) {
			return fail(c, fiber.StatusForbidden, "MODULE_DISABLED", "módulo no habilitado para este usuario")
		}
		return c.Next()
	}
}
