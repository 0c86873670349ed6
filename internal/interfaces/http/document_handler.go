package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/govindweb777/erp-sales-backend/internal/application/dto"
	appledger "github.com/govindweb777/erp-sales-backend/internal/application/ledger"
	"github.com/govindweb777/erp-sales-backend/internal/domain/entity"
)

// DocumentHandler maneja el ciclo de vida HTTP de un tipo de documento. Se
// instancia una vez por tipo (sales, purchases, ...) sobre el mismo servicio
// genérico; las siete colecciones comparten este código.
type DocumentHandler struct {
	svc     *appledger.Service
	docType entity.DocumentType
}

// NewDocumentHandler construye el handler para un tipo de documento.
func NewDocumentHandler(svc *appledger.Service, docType entity.DocumentType) *DocumentHandler {
	return &DocumentHandler{svc: svc, docType: docType}
}

// Create crea un documento del tipo.
// POST /api/<tipo>
func (h *DocumentHandler) Create(c *fiber.Ctx) error {
	var in dto.DocumentRequest
	if !parseBody(c, &in) {
		return nil
	}
	doc, err := h.svc.Create(c.Context(), GetPrincipal(c), h.docType, &in)
	if err != nil {
		return respondErr(c, err)
	}
	return ok(c, fiber.StatusCreated, "documento creado", dto.FromDocument(doc))
}

// Update actualiza un documento vivo.
// PUT /api/<tipo>/:id
func (h *DocumentHandler) Update(c *fiber.Ctx) error {
	var in dto.DocumentRequest
	if !parseBody(c, &in) {
		return nil
	}
	doc, err := h.svc.Update(c.Context(), GetPrincipal(c), h.docType, c.Params("id"), &in)
	if err != nil {
		return respondErr(c, err)
	}
	return ok(c, fiber.StatusOK, "documento actualizado", dto.FromDocument(doc))
}

// Get obtiene un documento vivo.
// GET /api/<tipo>/:id
func (h *DocumentHandler) Get(c *fiber.Ctx) error {
	doc, err := h.svc.Get(c.Context(), GetPrincipal(c), h.docType, c.Params("id"))
	if err != nil {
		return respondErr(c, err)
	}
	return ok(c, fiber.StatusOK, "documento", dto.FromDocument(doc))
}

// List lista documentos vivos con paginación y filtros.
// GET /api/<tipo>
func (h *DocumentHandler) List(c *fiber.Ctx) error {
	q, okQ := listQuery(c)
	if !okQ {
		return nil
	}
	docs, total, err := h.svc.List(c.Context(), GetPrincipal(c), h.docType, q)
	if err != nil {
		return respondErr(c, err)
	}
	return ok(c, fiber.StatusOK, "documentos", dto.DocumentListResponse{
		Docs:       dto.FromDocuments(docs),
		Pagination: dto.NewPagination(q.Page, q.Limit, total),
	})
}

// ListDeleted lista la papelera del tipo.
// GET /api/<tipo>/deleted/list
func (h *DocumentHandler) ListDeleted(c *fiber.Ctx) error {
	q, okQ := listQuery(c)
	if !okQ {
		return nil
	}
	docs, total, err := h.svc.ListDeleted(c.Context(), GetPrincipal(c), h.docType, q)
	if err != nil {
		return respondErr(c, err)
	}
	return ok(c, fiber.StatusOK, "documentos borrados", dto.DocumentListResponse{
		Docs:       dto.FromDocuments(docs),
		Pagination: dto.NewPagination(q.Page, q.Limit, total),
	})
}

// ToggleActive invierte el flag isActive.
// PATCH /api/<tipo>/:id/toggle-active
func (h *DocumentHandler) ToggleActive(c *fiber.Ctx) error {
	doc, err := h.svc.ToggleActive(c.Context(), GetPrincipal(c), h.docType, c.Params("id"))
	if err != nil {
		return respondErr(c, err)
	}
	return ok(c, fiber.StatusOK, "estado actualizado", dto.FromDocument(doc))
}

// SoftDelete manda el documento a la papelera.
// DELETE /api/<tipo>/:id
func (h *DocumentHandler) SoftDelete(c *fiber.Ctx) error {
	if err := h.svc.SoftDelete(c.Context(), GetPrincipal(c), h.docType, c.Params("id")); err != nil {
		return respondErr(c, err)
	}
	return ok(c, fiber.StatusOK, "documento borrado", nil)
}

// Restore saca el documento de la papelera.
// PATCH /api/<tipo>/:id/restore
func (h *DocumentHandler) Restore(c *fiber.Ctx) error {
	doc, err := h.svc.Restore(c.Context(), GetPrincipal(c), h.docType, c.Params("id"))
	if err != nil {
		return respondErr(c, err)
	}
	return ok(c, fiber.StatusOK, "documento restaurado", dto.FromDocument(doc))
}

// HardDelete elimina definitivamente un documento ya borrado (solo tipos que
// lo admiten, solo admin o branch).
// DELETE /api/<tipo>/:id/permanent
func (h *DocumentHandler) HardDelete(c *fiber.Ctx) error {
	if err := h.svc.HardDelete(c.Context(), GetPrincipal(c), h.docType, c.Params("id")); err != nil {
		return respondErr(c, err)
	}
	return ok(c, fiber.StatusOK, "documento eliminado definitivamente", nil)
}

// NextNumber previsualiza el próximo número del tipo.
// GET /api/<tipo>/next-number
func (h *DocumentHandler) NextNumber(c *fiber.Ctx) error {
	next, err := h.svc.NextNumber(c.Context(), GetPrincipal(c), h.docType, c.Query("branchId"))
	if err != nil {
		return respondErr(c, err)
	}
	return ok(c, fiber.StatusOK, "próximo número", dto.NextNumberResponse{NextNumber: next})
}
