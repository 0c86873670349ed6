package ledger

import (
	"github.com/govindweb777/erp-sales-backend/internal/domain"
	"github.com/govindweb777/erp-sales-backend/internal/domain/entity"
)

// Kind clase de agregación de un tipo de documento.
type Kind int

const (
	// KindInvoice: líneas qty × rate = amount; subtotal + tax - discount = total.
	KindInvoice Kind = iota
	// KindJournal: líneas debit/credit; invariante sum(debit) == sum(credit).
	KindJournal
	// KindSimple: documento de monto único (receipt, payment); los totales se
	// validan pero no se derivan de líneas.
	KindSimple
)

// TypeSpec parámetros por tipo de documento: prefijo de numeración, clase de
// agregación, si admite hard delete y si mueve inventario.
type TypeSpec struct {
	Type       entity.DocumentType
	Prefix     string
	Kind       Kind
	HardDelete bool // solo journal voucher, contra entry y receipt
	Inventory  bool // sales y purchase mutan ítems
}

// BranchCodePrefix prefijo de los códigos de sucursal (BR00001, ...).
const BranchCodePrefix = "BR"

var typeSpecs = map[entity.DocumentType]TypeSpec{
	entity.DocTypeSales:          {Type: entity.DocTypeSales, Prefix: "INV", Kind: KindInvoice, Inventory: true},
	entity.DocTypePurchase:       {Type: entity.DocTypePurchase, Prefix: "PUR", Kind: KindInvoice, Inventory: true},
	entity.DocTypeExpense:        {Type: entity.DocTypeExpense, Prefix: "EXP", Kind: KindInvoice},
	entity.DocTypeReceipt:        {Type: entity.DocTypeReceipt, Prefix: "RCP", Kind: KindSimple, HardDelete: true},
	entity.DocTypePayment:        {Type: entity.DocTypePayment, Prefix: "P", Kind: KindSimple},
	entity.DocTypeContraEntry:    {Type: entity.DocTypeContraEntry, Prefix: "CTR", Kind: KindJournal, HardDelete: true},
	entity.DocTypeJournalVoucher: {Type: entity.DocTypeJournalVoucher, Prefix: "JV", Kind: KindJournal, HardDelete: true},
}

// Spec devuelve los parámetros del tipo de documento.
// Retorna ErrInvalidInput si el tipo no existe.
func Spec(t entity.DocumentType) (TypeSpec, error) {
	s, ok := typeSpecs[t]
	if !ok {
		return TypeSpec{}, domain.ErrInvalidInput
	}
	return s, nil
}

// Types lista los tipos de documento soportados (orden estable para rutas).
func Types() []entity.DocumentType {
	return []entity.DocumentType{
		entity.DocTypeSales,
		entity.DocTypePurchase,
		entity.DocTypeExpense,
		entity.DocTypeReceipt,
		entity.DocTypePayment,
		entity.DocTypeContraEntry,
		entity.DocTypeJournalVoucher,
	}
}
