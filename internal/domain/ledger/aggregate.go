package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/govindweb777/erp-sales-backend/internal/domain"
	"github.com/govindweb777/erp-sales-backend/internal/domain/entity"
)

// Totals totales derivados de las líneas de un documento.
type Totals struct {
	SubTotal    decimal.Decimal
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
	Total       decimal.Decimal
}

// Compute agrega las líneas según la clase del documento. Cálculo puro sobre
// decimales de punto fijo (nunca floats binarios: la igualdad débito/crédito
// es exacta, sin epsilon).
//
//   - KindJournal: suma debit y credit por separado; si difieren retorna
//     domain.ErrImbalancedEntry. Total = TotalDebit (comportamiento del
//     totalAmount original).
//   - KindInvoice: cada línea debe cumplir amount == qty × rate; subtotal es
//     la suma de amounts; tax y discount vienen del caller y
//     Total = subtotal + tax − discount.
//   - KindSimple: sin líneas que agregar; los montos se validan aguas arriba.
//
// Montos o cantidades negativos retornan domain.ErrInvalidInput.
func Compute(lines []entity.DocumentLine, kind Kind, tax, discount decimal.Decimal) (Totals, error) {
	var t Totals
	if tax.IsNegative() || discount.IsNegative() {
		return Totals{}, domain.ErrInvalidInput
	}

	switch kind {
	case KindJournal:
		for _, l := range lines {
			if l.Debit.IsNegative() || l.Credit.IsNegative() {
				return Totals{}, domain.ErrInvalidInput
			}
			t.TotalDebit = t.TotalDebit.Add(l.Debit)
			t.TotalCredit = t.TotalCredit.Add(l.Credit)
		}
		if !t.TotalDebit.Equal(t.TotalCredit) {
			return Totals{}, domain.ErrImbalancedEntry
		}
		t.Total = t.TotalDebit
		return t, nil

	case KindInvoice:
		for _, l := range lines {
			if l.Qty.IsNegative() || l.Rate.IsNegative() || l.Amount.IsNegative() {
				return Totals{}, domain.ErrInvalidInput
			}
			// amount declarado debe coincidir con qty × rate
			if !l.Amount.Equal(l.Qty.Mul(l.Rate)) {
				return Totals{}, domain.ErrInvalidInput
			}
			t.SubTotal = t.SubTotal.Add(l.Amount)
		}
		t.Total = t.SubTotal.Add(tax).Sub(discount)
		if t.Total.IsNegative() {
			return Totals{}, domain.ErrInvalidInput
		}
		return t, nil

	case KindSimple:
		return Totals{}, nil

	default:
		return Totals{}, domain.ErrInvalidInput
	}
}

// Apply recalcula y valida los totales derivados del documento in place.
// Se invoca antes de persistir, tanto en create como en cualquier update que
// toque las líneas: un cambio en un solo debit re-valida el balance completo.
//
// Para facturas, si el caller declaró un total se valida contra
// subtotal + tax − discount y un desajuste es ErrInvalidInput (el sistema no
// confía en totales del cliente). Para documentos simples solo se exige que
// los montos sean no negativos.
func Apply(doc *entity.LedgerDocument, spec TypeSpec) error {
	if doc.AmountPaid.IsNegative() || doc.Total.IsNegative() {
		return domain.ErrInvalidInput
	}

	switch spec.Kind {
	case KindSimple:
		if doc.Tax.IsNegative() || doc.Discount.IsNegative() {
			return domain.ErrInvalidInput
		}
		doc.Balance = doc.Total.Sub(doc.AmountPaid)
		if doc.Balance.IsNegative() {
			doc.Balance = decimal.Zero
		}
		return nil

	case KindJournal, KindInvoice:
		if !doc.HasLines() {
			return domain.ErrInvalidInput
		}
		totals, err := Compute(doc.Lines, spec.Kind, doc.Tax, doc.Discount)
		if err != nil {
			return err
		}
		if spec.Kind == KindInvoice && !doc.Total.IsZero() && !doc.Total.Equal(totals.Total) {
			// El total declarado no cuadra con subtotal + tax − discount.
			return domain.ErrInvalidInput
		}
		doc.SubTotal = totals.SubTotal
		doc.TotalDebit = totals.TotalDebit
		doc.TotalCredit = totals.TotalCredit
		doc.Total = totals.Total
		doc.Balance = doc.Total.Sub(doc.AmountPaid)
		if doc.Balance.IsNegative() {
			doc.Balance = decimal.Zero
		}
		return nil

	default:
		return domain.ErrInvalidInput
	}
}
