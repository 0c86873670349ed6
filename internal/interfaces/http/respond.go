package http

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/govindweb777/erp-sales-backend/internal/application/dto"
	"github.com/govindweb777/erp-sales-backend/internal/domain"
)

var validate = validator.New()

// parseBody deserializa y valida el body. Retorna false si ya respondió error.
func parseBody(c *fiber.Ctx, dst any) bool {
	if err := c.BodyParser(dst); err != nil {
		_ = fail(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
		return false
	}
	if err := validate.Struct(dst); err != nil {
		_ = fail(c, fiber.StatusBadRequest, "VALIDATION", err.Error())
		return false
	}
	return true
}

// ok responde la envolvente estándar de éxito.
func ok(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(dto.OK(message, data))
}

func fail(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Success: false, Code: code, Message: message})
}

// respondErr traduce errores de dominio a status + código. Todo lo no mapeado
// es 500 con mensaje genérico.
func respondErr(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return fail(c, fiber.StatusNotFound, "NOT_FOUND", "recurso no encontrado")
	case errors.Is(err, domain.ErrUnauthorized):
		return fail(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "no autorizado")
	case errors.Is(err, domain.ErrForbidden):
		return fail(c, fiber.StatusForbidden, "FORBIDDEN", "acceso denegado")
	case errors.Is(err, domain.ErrImbalancedEntry):
		return fail(c, fiber.StatusBadRequest, "IMBALANCED_ENTRY", err.Error())
	case errors.Is(err, domain.ErrDuplicateDocumentNo):
		return fail(c, fiber.StatusBadRequest, "DUPLICATE_DOCUMENT_NO", err.Error())
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return fail(c, fiber.StatusBadRequest, "EMAIL_EXISTS", err.Error())
	case errors.Is(err, domain.ErrDuplicate):
		return fail(c, fiber.StatusBadRequest, "DUPLICATE", err.Error())
	case errors.Is(err, domain.ErrInvalidInput):
		return fail(c, fiber.StatusBadRequest, "VALIDATION", err.Error())
	case errors.Is(err, domain.ErrItemUnavailable):
		return fail(c, fiber.StatusBadRequest, "ITEM_UNAVAILABLE", err.Error())
	case errors.Is(err, domain.ErrConcurrency):
		return fail(c, fiber.StatusConflict, "CONCURRENCY", err.Error())
	default:
		// El texto de errores no mapeados viene envuelto desde infraestructura
		// (tablas, detalle de pg); se loguea y al cliente va un mensaje genérico.
		log.Error().Err(err).Str("path", c.Path()).Msg("error no mapeado")
		return fail(c, fiber.StatusInternalServerError, "INTERNAL", "error interno del servidor")
	}
}

// listQuery parsea los parámetros comunes de listado del query string.
func listQuery(c *fiber.Ctx) (dto.ListQuery, bool) {
	var q dto.ListQuery
	if err := c.QueryParser(&q); err != nil {
		_ = fail(c, fiber.StatusBadRequest, "VALIDATION", "query inválido")
		return q, false
	}
	if err := validate.Struct(&q); err != nil {
		_ = fail(c, fiber.StatusBadRequest, "VALIDATION", err.Error())
		return q, false
	}
	q.DefaultPage()
	return q, true
}
