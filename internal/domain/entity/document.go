package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DocumentType tipos de documento contable soportados.
type DocumentType string

const (
	DocTypeSales          DocumentType = "sales"
	DocTypePurchase       DocumentType = "purchase"
	DocTypeExpense        DocumentType = "expense"
	DocTypeReceipt        DocumentType = "receipt"
	DocTypePayment        DocumentType = "payment"
	DocTypeContraEntry    DocumentType = "contra-entry"
	DocTypeJournalVoucher DocumentType = "journal-voucher"
)

// Estados de pago para documentos tipo factura.
const (
	PaymentStatusPending = "Pending"
	PaymentStatusPartial = "Partial"
	PaymentStatusPaid    = "Paid"
)

// Modos de pago aceptados.
const (
	PaymentModeCash   = "Cash"
	PaymentModeBank   = "Bank"
	PaymentModeCheque = "Cheque"
	PaymentModeUPI    = "UPI"
	PaymentModeCard   = "Card"
	PaymentModeEMI    = "EMI"
)

// DocumentLine línea de un documento contable. Según el tipo de documento se
// usan los campos de factura (qty × rate = amount) o los de asiento
// (debit/credit); nunca ambos. Se serializa tal cual a la columna JSONB.
type DocumentLine struct {
	ItemID      string          `json:"itemId,omitempty"`
	ItemName    string          `json:"itemName,omitempty"`
	AccountID   string          `json:"accountId,omitempty"`
	AccountName string          `json:"accountName,omitempty"`
	Description string          `json:"description,omitempty"`
	Qty         decimal.Decimal `json:"qty"`
	Rate        decimal.Decimal `json:"rate"`
	Amount      decimal.Decimal `json:"amount"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// LedgerDocument forma compartida de todos los documentos contables (sales,
// purchase, expense, receipt, payment, contra entry, journal voucher).
//
// Invariantes para un documento persistido no borrado:
//   - DocumentNo es único dentro de (CompanyID, BranchID, Type).
//   - Para documentos tipo asiento: sum(Lines.Debit) == sum(Lines.Credit).
//   - Todos los montos y cantidades son >= 0.
//   - CompanyID/BranchID son inmutables después de la creación.
//   - IsDeleted=true lo excluye de todas las consultas normales.
type LedgerDocument struct {
	ID          string
	Type        DocumentType
	CompanyID   string
	BranchID    string
	DocumentNo  string
	Date        time.Time // fecha de negocio, independiente de CreatedAt
	ReferenceNo string

	// Tercero del documento (cliente en sales/receipt, proveedor en
	// purchase/expense/payment).
	PartyName    string
	PartyContact Contact

	Lines []DocumentLine

	// Totales derivados: una vez que hay líneas, se recalculan siempre desde
	// ellas y nunca se confía en los valores del caller.
	SubTotal    decimal.Decimal
	Tax         decimal.Decimal
	Discount    decimal.Decimal
	Total       decimal.Decimal
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal

	PaymentStatus string
	PaymentMode   string
	AmountPaid    decimal.Decimal
	Balance       decimal.Decimal

	// Para receipts/payments: banco de depósito / cuenta origen.
	BankAccountID  string
	AccountGroupID string

	Notes     string
	CreatedBy string
	IsActive  bool
	IsDeleted bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasLines indica si el documento trae líneas que obligan a re-agregar.
func (d *LedgerDocument) HasLines() bool {
	return len(d.Lines) > 0
}

// ItemIDs devuelve los IDs de ítem referenciados por las líneas (sin vacíos).
func (d *LedgerDocument) ItemIDs() []string {
	ids := make([]string, 0, len(d.Lines))
	for _, l := range d.Lines {
		if l.ItemID != "" {
			ids = append(ids, l.ItemID)
		}
	}
	return ids
}
