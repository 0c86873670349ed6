package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/govindweb777/erp-sales-backend/internal/application/usecase"
)

// ReportHandler reportes contables de solo lectura.
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

func reportQuery(c *fiber.Ctx) (usecase.ReportQuery, bool) {
	var q usecase.ReportQuery
	if err := c.QueryParser(&q); err != nil {
		_ = fail(c, fiber.StatusBadRequest, "VALIDATION", "query inválido")
		return q, false
	}
	if err := validate.Struct(&q); err != nil {
		_ = fail(c, fiber.StatusBadRequest, "VALIDATION", err.Error())
		return q, false
	}
	return q, true
}

// Ledger mayor de una parte a través de los cuatro tipos que la referencian.
// GET /api/reports/ledger?account=&from=&to=
func (h *ReportHandler) Ledger(c *fiber.Ctx) error {
	q, okQ := reportQuery(c)
	if !okQ {
		return nil
	}
	report, err := h.uc.Ledger(GetPrincipal(c), q)
	if err != nil {
		return respondErr(c, err)
	}
	return ok(c, fiber.StatusOK, "mayor", report)
}

// TrialBalance totales por tipo de documento.
// GET /api/reports/trial-balance
func (h *ReportHandler) TrialBalance(c *fiber.Ctx) error {
	q, okQ := reportQuery(c)
	if !okQ {
		return nil
	}
	report, err := h.uc.TrialBalance(GetPrincipal(c), q)
	if err != nil {
		return respondErr(c, err)
	}
	return ok(c, fiber.StatusOK, "balance de comprobación", report)
}

// Receivables cuentas por cobrar agrupadas por cliente.
// GET /api/reports/receivables
func (h *ReportHandler) Receivables(c *fiber.Ctx) error {
	q, okQ := reportQuery(c)
	if !okQ {
		return nil
	}
	totals, err := h.uc.Receivables(GetPrincipal(c), q)
	if err != nil {
		return respondErr(c, err)
	}
	return ok(c, fiber.StatusOK, "cuentas por cobrar", fiber.Map{"receivables": totals})
}

// Payables cuentas por pagar agrupadas por proveedor.
// GET /api/reports/payables
func (h *ReportHandler) Payables(c *fiber.Ctx) error {
	q, okQ := reportQuery(c)
	if !okQ {
		return nil
	}
	totals, err := h.uc.Payables(GetPrincipal(c), q)
	if err != nil {
		return respondErr(c, err)
	}
	return ok(c, fiber.StatusOK, "cuentas por pagar", fiber.Map{"payables": totals})
}
