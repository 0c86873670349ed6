package ledger_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/govindweb777/erp-sales-backend/internal/domain"
	"github.com/govindweb777/erp-sales-backend/internal/domain/entity"
	"github.com/govindweb777/erp-sales-backend/internal/domain/ledger"
)

func d(s string) decimal.Decimal {
	dec, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return dec
}

func journalLine(debit, credit string) entity.DocumentLine {
	return entity.DocumentLine{Debit: d(debit), Credit: d(credit)}
}

func invoiceLine(qty, rate, amount string) entity.DocumentLine {
	return entity.DocumentLine{Qty: d(qty), Rate: d(rate), Amount: d(amount)}
}

// Asiento balanceado: 100 al debe y 100 al haber.
func TestCompute_AsientoBalanceado(t *testing.T) {
	lines := []entity.DocumentLine{
		journalLine("100", "0"),
		journalLine("0", "100"),
	}

	totals, err := ledger.Compute(lines, ledger.KindJournal, decimal.Zero, decimal.Zero)
	require.NoError(t, err)

	assert.True(t, totals.TotalDebit.Equal(d("100")), "totalDebit debe ser 100")
	assert.True(t, totals.TotalCredit.Equal(d("100")), "totalCredit debe ser 100")
	assert.True(t, totals.Total.Equal(d("100")), "total = totalDebit")
}

// Asiento desbalanceado: 100 vs 50 debe rechazarse, nunca auto-corregirse.
func TestCompute_AsientoDesbalanceado(t *testing.T) {
	lines := []entity.DocumentLine{
		journalLine("100", "0"),
		journalLine("0", "50"),
	}

	_, err := ledger.Compute(lines, ledger.KindJournal, decimal.Zero, decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrImbalancedEntry)
}

// La igualdad es exacta sobre decimales: centavos cuentan.
func TestCompute_DesbalancePorUnCentavo(t *testing.T) {
	lines := []entity.DocumentLine{
		journalLine("100.00", "0"),
		journalLine("0", "99.99"),
	}

	_, err := ledger.Compute(lines, ledger.KindJournal, decimal.Zero, decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrImbalancedEntry)
}

func TestCompute_MontosNegativosRechazados(t *testing.T) {
	_, err := ledger.Compute([]entity.DocumentLine{journalLine("-5", "0")}, ledger.KindJournal, decimal.Zero, decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = ledger.Compute([]entity.DocumentLine{invoiceLine("1", "-10", "-10")}, ledger.KindInvoice, decimal.Zero, decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Factura: subtotal = Σ amount, total = subtotal + tax − discount.
func TestCompute_FacturaTotales(t *testing.T) {
	lines := []entity.DocumentLine{
		invoiceLine("2", "500.50", "1001.00"),
		invoiceLine("1", "99.00", "99.00"),
	}

	totals, err := ledger.Compute(lines, ledger.KindInvoice, d("110"), d("10"))
	require.NoError(t, err)

	assert.True(t, totals.SubTotal.Equal(d("1100.00")), "subtotal incorrecto: %s", totals.SubTotal)
	assert.True(t, totals.Total.Equal(d("1200.00")), "total incorrecto: %s", totals.Total)
}

// amount declarado distinto de qty × rate se rechaza.
func TestCompute_FacturaAmountNoCuadra(t *testing.T) {
	lines := []entity.DocumentLine{invoiceLine("2", "500", "999")}

	_, err := ledger.Compute(lines, ledger.KindInvoice, decimal.Zero, decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Apply sobre un journal voucher setea los totales derivados del documento.
func TestApply_JournalVoucher(t *testing.T) {
	spec, err := ledger.Spec(entity.DocTypeJournalVoucher)
	require.NoError(t, err)

	doc := &entity.LedgerDocument{
		Type: entity.DocTypeJournalVoucher,
		Lines: []entity.DocumentLine{
			journalLine("250", "0"),
			journalLine("0", "150"),
			journalLine("0", "100"),
		},
	}

	require.NoError(t, ledger.Apply(doc, spec))
	assert.True(t, doc.TotalDebit.Equal(d("250")))
	assert.True(t, doc.TotalCredit.Equal(d("250")))
	assert.True(t, doc.Total.Equal(d("250")))
}

// Un journal voucher sin líneas no es persistible.
func TestApply_JournalSinLineas(t *testing.T) {
	spec, _ := ledger.Spec(entity.DocTypeJournalVoucher)
	doc := &entity.LedgerDocument{Type: entity.DocTypeJournalVoucher}

	assert.ErrorIs(t, ledger.Apply(doc, spec), domain.ErrInvalidInput)
}

// El total declarado por el cliente se valida contra la relación derivada
// (cambio deliberado frente al sistema original, que confiaba en el caller).
func TestApply_FacturaTotalDeclaradoNoCuadra(t *testing.T) {
	spec, _ := ledger.Spec(entity.DocTypeSales)
	doc := &entity.LedgerDocument{
		Type:  entity.DocTypeSales,
		Lines: []entity.DocumentLine{invoiceLine("1", "1000", "1000")},
		Tax:   d("180"),
		Total: d("999"), // debería ser 1180
	}

	assert.ErrorIs(t, ledger.Apply(doc, spec), domain.ErrInvalidInput)
}

func TestApply_FacturaConSaldo(t *testing.T) {
	spec, _ := ledger.Spec(entity.DocTypeSales)
	doc := &entity.LedgerDocument{
		Type:       entity.DocTypeSales,
		Lines:      []entity.DocumentLine{invoiceLine("1", "1000", "1000")},
		Tax:        d("180"),
		AmountPaid: d("500"),
	}

	require.NoError(t, ledger.Apply(doc, spec))
	assert.True(t, doc.Total.Equal(d("1180")))
	assert.True(t, doc.Balance.Equal(d("680")))
}

// Receipt (KindSimple): los montos se llevan tal cual, solo se exige >= 0.
func TestApply_ReciboSimple(t *testing.T) {
	spec, _ := ledger.Spec(entity.DocTypeReceipt)
	doc := &entity.LedgerDocument{
		Type:       entity.DocTypeReceipt,
		Total:      d("5000"),
		AmountPaid: d("5000"),
	}

	require.NoError(t, ledger.Apply(doc, spec))
	assert.True(t, doc.Balance.IsZero())
}

func TestSpec_TipoDesconocido(t *testing.T) {
	_, err := ledger.Spec(entity.DocumentType("nope"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "INV00001", ledger.FormatNumber("INV", 1))
	assert.Equal(t, "JV00042", ledger.FormatNumber("JV", 42))
	assert.Equal(t, "P123456", ledger.FormatNumber("P", 123456), "más de 5 dígitos no se trunca")
	assert.Equal(t, "BR00001", ledger.FormatNumber(ledger.BranchCodePrefix, 1))
}

// Los prefijos por tipo son estables: forman parte del contrato con el front.
func TestSpec_Prefijos(t *testing.T) {
	want := map[entity.DocumentType]string{
		entity.DocTypeSales:          "INV",
		entity.DocTypePurchase:       "PUR",
		entity.DocTypeExpense:        "EXP",
		entity.DocTypeReceipt:        "RCP",
		entity.DocTypePayment:        "P",
		entity.DocTypeContraEntry:    "CTR",
		entity.DocTypeJournalVoucher: "JV",
	}
	for docType, prefix := range want {
		spec, err := ledger.Spec(docType)
		require.NoError(t, err)
		assert.Equal(t, prefix, spec.Prefix, "prefijo de %s", docType)
	}
}

// Hard delete solo está habilitado para JV, contra entry y receipt.
func TestSpec_HardDelete(t *testing.T) {
	for _, docType := range ledger.Types() {
		spec, err := ledger.Spec(docType)
		require.NoError(t, err)
		switch docType {
		case entity.DocTypeJournalVoucher, entity.DocTypeContraEntry, entity.DocTypeReceipt:
			assert.True(t, spec.HardDelete, "%s debe permitir hard delete", docType)
		default:
			assert.False(t, spec.HardDelete, "%s no debe permitir hard delete", docType)
		}
	}
}
