package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Naturaleza contable de una cuenta del plan de cuentas.
const (
	AccountNatureAssets      = "ASSETS"
	AccountNatureLiabilities = "LIABILITIES"
	AccountNatureIncome      = "INCOME"
	AccountNatureExpenses    = "EXPENSES"
)

// ChartOfAccount nodo del plan de cuentas (PRIMARY / GROUP / SUBGROUP).
type ChartOfAccount struct {
	ID              string
	CompanyID       string
	BranchID        string
	Name            string
	GroupType       string // PRIMARY, GROUP, SUBGROUP
	ParentGroupID   string
	Statement       string // BALANCE_SHEET, PROFIT_AND_LOSS
	Nature          string // ver constantes AccountNature*
	IsSystemDefined bool
	IsActive        bool
	IsDeleted       bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// OpeningBalance saldo de apertura con su lado (Debit/Credit).
type OpeningBalance struct {
	Amount decimal.Decimal `json:"amount"`
	Side   string          `json:"side"` // Debit | Credit
}

// AccountGroup grupo de cuenta / tercero (cliente, proveedor) colgado del
// plan de cuentas. Es el maestro referenciado por receipts y payments.
type AccountGroup struct {
	ID                 string
	CompanyID          string
	BranchID           string
	ChartOfAccountID   string
	UnderGroup         string
	GroupName          string
	ShortName          string
	GSTIN              string
	PAN                string
	NatureOfBusiness   string
	CreditPeriodDays   int
	CreditLimit        decimal.Decimal
	DefaultPaymentMode string // Cash, Bank, Credit, UPI, Cheque
	Contact            Contact
	OpeningBalance     OpeningBalance
	CreatedBy          string
	IsActive           bool
	IsDeleted          bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
