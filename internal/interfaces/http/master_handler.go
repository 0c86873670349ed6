package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/govindweb777/erp-sales-backend/internal/application/dto"
	"github.com/govindweb777/erp-sales-backend/internal/application/usecase"
)

// Handlers de maestros contables: plan de cuentas, grupos de cuenta y cuentas
// bancarias. CRUD uniforme, sin efectos cruzados.

// ChartOfAccountHandler maestro del plan de cuentas.
type ChartOfAccountHandler struct {
	uc *usecase.ChartOfAccountUseCase
}

// NewChartOfAccountHandler construye el handler.
func NewChartOfAccountHandler(uc *usecase.ChartOfAccountUseCase) *ChartOfAccountHandler {
	return &ChartOfAccountHandler{uc: uc}
}

// Create da de alta una cuenta del plan.
// POST /api/chart-of-accounts
func (h *ChartOfAccountHandler) Create(c *fiber.Ctx) error {
	var in dto.ChartOfAccountRequest
	if !parseBody(c, &in) {
		return nil
	}
	account, err := h.uc.Create(GetPrincipal(c), in)
	if err != nil {
		return respondErr(c, err)
	}
	return ok(c, fiber.StatusCreated, "cuenta creada", account)
}

// Update edita una cuenta del plan (las de sistema no se tocan).
// PUT /api/chart-of-accounts/:id
func (h *ChartOfAccountHandler) Update(c *fiber.Ctx) error {
	var in dto.ChartOfAccountRequest
	if !parseBody(c, &in) {
		return nil
	}
	account, err := h.uc.Update(GetPrincipal(c), c.Params("id"), in)
	if err != nil {
		return respondErr(c, err)
	}
	return ok(c, fiber.StatusOK, "cuenta actualizada", account)
}

// Get obtiene una cuenta del plan.
// GET /api/chart-of-accounts/:id
func (h *ChartOfAccountHandler) Get(c *fiber.Ctx) error {
	account, err := h.uc.Get(GetPrincipal(c), c.Params("id"))
	if err != nil {
		return respondErr(c, err)
	}
	return ok(c, fiber.StatusOK, "cuenta", account)
}

// List lista cuentas del plan.
// GET /api/chart-of-accounts
func (h *ChartOfAccountHandler) List(c *fiber.Ctx) error {
	q, okQ := listQuery(c)
	if !okQ {
		return nil
	}
	accounts, pagination, err := h.uc.List(GetPrincipal(c), q)
	if err != nil {
		return respondErr(c, err)
	}
	return ok(c, fiber.StatusOK, "cuentas", fiber.Map{"accounts": accounts, "pagination": pagination})
}

// SoftDelete manda la cuenta a la papelera.
// DELETE /api/chart-of-accounts/:id
func (h *ChartOfAccountHandler) SoftDelete(c *fiber.Ctx) error {
	if err := h.uc.SoftDelete(GetPrincipal(c), c.Params("id")); err != nil {
		return respondErr(c, err)
	}
	return ok(c, fiber.StatusOK, "cuenta borrada", nil)
}

// AccountGroupHandler maestro de grupos de cuenta (terceros).
type AccountGroupHandler struct {
	uc *usecase.AccountGroupUseCase
}

// NewAccountGroupHandler construye el handler.
func NewAccountGroupHandler(uc *usecase.AccountGroupUseCase) *AccountGroupHandler {
	return &AccountGroupHandler{uc: uc}
}

// Create da de alta un grupo de cuenta.
// POST /api/account-groups
func (h *AccountGroupHandler) Create(c *fiber.Ctx) error {
	var in dto.AccountGroupRequest
	if !parseBody(c, &in) {
		return nil
	}
	group, err := h.uc.Create(GetPrincipal(c), in)
	if err != nil {
		return respondErr(c, err)
	}
	return ok(c, fiber.StatusCreated, "grupo creado", group)
}

// Update edita un grupo de cuenta.
// PUT /api/account-groups/:id
func (h *AccountGroupHandler) Update(c *fiber.Ctx) error {
	var in dto.AccountGroupRequest
	if !parseBody(c, &in) {
		return nil
	}
	group, err := h.uc.Update(GetPrincipal(c), c.Params("id"), in)
	if err != nil {
		return respondErr(c, err)
	}
	return ok(c, fiber.StatusOK, "grupo actualizado", group)
}

// Get obtiene un grupo de cuenta.
// GET /api/account-groups/:id
func (h *AccountGroupHandler) Get(c *fiber.Ctx) error {
	group, err := h.uc.Get(GetPrincipal(c), c.Params("id"))
	if err != nil {
		return respondErr(c, err)
	}
	return ok(c, fiber.StatusOK, "grupo", group)
}

// List lista grupos de cuenta.
// GET /api/account-groups
func (h *AccountGroupHandler) List(c *fiber.Ctx) error {
	q, okQ := listQuery(c)
	if !okQ {
		return nil
	}
	groups, pagination, err := h.uc.List(GetPrincipal(c), q)
	if err != nil {
		return respondErr(c, err)
	}
	return ok(c, fiber.StatusOK, "grupos", fiber.Map{"groups": groups, "pagination": pagination})
}

// ToggleStatus invierte el estado activo del grupo.
// PATCH /api/account-groups/:id/toggle-status
func (h *AccountGroupHandler) ToggleStatus(c *fiber.Ctx) error {
	group, err := h.uc.ToggleActive(GetPrincipal(c), c.Params("id"))
	if err != nil {
		return respondErr(c, err)
	}
	msg := "grupo desactivado"
	if group.IsActive {
		msg = "grupo activado"
	}
	return ok(c, fiber.StatusOK, msg, group)
}

// SoftDelete manda el grupo a la papelera.
// DELETE /api/account-groups/:id
func (h *AccountGroupHandler) SoftDelete(c *fiber.Ctx) error {
	if err := h.uc.SoftDelete(GetPrincipal(c), c.Params("id")); err != nil {
		return respondErr(c, err)
	}
	return ok(c, fiber.StatusOK, "grupo borrado", nil)
}

// BankAccountHandler maestro de cuentas bancarias.
type BankAccountHandler struct {
	uc *usecase.BankAccountUseCase
}

// NewBankAccountHandler construye el handler.
func NewBankAccountHandler(uc *usecase.BankAccountUseCase) *BankAccountHandler {
	return &BankAccountHandler{uc: uc}
}

// Create da de alta una cuenta bancaria.
// POST /api/bank-accounts
func (h *BankAccountHandler) Create(c *fiber.Ctx) error {
	var in dto.BankAccountRequest
	if !parseBody(c, &in) {
		return nil
	}
	account, err := h.uc.Create(GetPrincipal(c), in)
	if err != nil {
		return respondErr(c, err)
	}
	return ok(c, fiber.StatusCreated, "cuenta bancaria creada", account)
}

// Update edita una cuenta bancaria.
// PUT /api/bank-accounts/:id
func (h *BankAccountHandler) Update(c *fiber.Ctx) error {
	var in dto.BankAccountRequest
	if !parseBody(c, &in) {
		return nil
	}
	account, err := h.uc.Update(GetPrincipal(c), c.Params("id"), in)
	if err != nil {
		return respondErr(c, err)
	}
	return ok(c, fiber.StatusOK, "cuenta bancaria actualizada", account)
}

// Get obtiene una cuenta bancaria.
// GET /api/bank-accounts/:id
func (h *BankAccountHandler) Get(c *fiber.Ctx) error {
	account, err := h.uc.Get(GetPrincipal(c), c.Params("id"))
	if err != nil {
		return respondErr(c, err)
	}
	return ok(c, fiber.StatusOK, "cuenta bancaria", account)
}

// List lista cuentas bancarias.
// GET /api/bank-accounts
func (h *BankAccountHandler) List(c *fiber.Ctx) error {
	q, okQ := listQuery(c)
	if !okQ {
		return nil
	}
	accounts, pagination, err := h.uc.List(GetPrincipal(c), q)
	if err != nil {
		return respondErr(c, err)
	}
	return ok(c, fiber.StatusOK, "cuentas bancarias", fiber.Map{"accounts": accounts, "pagination": pagination})
}

// SoftDelete manda la cuenta bancaria a la papelera.
// DELETE /api/bank-accounts/:id
func (h *BankAccountHandler) SoftDelete(c *fiber.Ctx) error {
	if err := h.uc.SoftDelete(GetPrincipal(c), c.Params("id")); err != nil {
		return respondErr(c, err)
	}
	return ok(c, fiber.StatusOK, "cuenta bancaria borrada", nil)
}
