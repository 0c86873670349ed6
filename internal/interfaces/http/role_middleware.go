package http

import (
	"github.com/gofiber/fiber/v2"
)

// RequireRole deja pasar solo a los roles listados. Corre después de
// AuthMiddleware; sin principal responde 401.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p := GetPrincipal(c)
		if p.UserID == "" {
			return fail(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "no autorizado")
		}
		for _, role := range roles {
			if p.Role == role {
				return c.Next()
			}
		}
		return fail(c, fiber.StatusForbidden, "FORBIDDEN", "rol sin acceso a este recurso")
	}
}
