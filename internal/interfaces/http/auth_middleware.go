package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/govindweb777/erp-sales-backend/internal/application/scope"
	"github.com/govindweb777/erp-sales-backend/internal/domain/repository"
	"github.com/govindweb777/erp-sales-backend/pkg/jwt"
)

// Locals keys del principal resuelto y su moduleAccess.
const (
	LocalPrincipal    = "principal"
	LocalModuleAccess = "module_access"
)

// AuthMiddleware valida el Bearer Token y resuelve el principal contra la
// base: el token solo acredita userId y rol, el alcance (companyId/branchId)
// sale siempre del usuario persistido. Un usuario desactivado o borrado queda
// fuera en su siguiente request aunque su token siga vigente.
func AuthMiddleware(jwtSecret string, userRepo repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return fail(c, fiber.StatusUnauthorized, "MISSING_TOKEN", "Authorization header requerido")
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return fail(c, fiber.StatusUnauthorized, "INVALID_TOKEN", "formato: Bearer <token>")
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return fail(c, fiber.StatusUnauthorized, "MISSING_TOKEN", "token vacío")
		}
		userID, _, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return fail(c, fiber.StatusUnauthorized, "INVALID_TOKEN", "token inválido o expirado")
		}

		user, err := userRepo.GetByID(userID)
		if err != nil {
			return fail(c, fiber.StatusInternalServerError, "INTERNAL", "no se pudo resolver el usuario")
		}
		if user == nil || !user.IsActive {
			return fail(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "usuario inactivo o inexistente")
		}

		c.Locals(LocalPrincipal, scope.Principal{
			UserID:    user.ID,
			CompanyID: user.CompanyID,
			BranchID:  user.BranchID,
			Role:      user.Role,
		})
		c.Locals(LocalModuleAccess, user.ModuleAccess)
		return c.Next()
	}
}

// GetPrincipal devuelve el principal del contexto (después del middleware de auth).
func GetPrincipal(c *fiber.Ctx) scope.Principal {
	v := c.Locals(LocalPrincipal)
	if v == nil {
		return scope.Principal{}
	}
	p, _ := v.(scope.Principal)
	return p
}
