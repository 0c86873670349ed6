package ledger_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/govindweb777/erp-sales-backend/internal/application/dto"
	appledger "github.com/govindweb777/erp-sales-backend/internal/application/ledger"
	"github.com/govindweb777/erp-sales-backend/internal/application/scope"
	"github.com/govindweb777/erp-sales-backend/internal/domain"
	"github.com/govindweb777/erp-sales-backend/internal/domain/entity"
	"github.com/govindweb777/erp-sales-backend/pkg/logger"
)

func d(s string) decimal.Decimal {
	dec, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return dec
}

func newService(t *testing.T) (*appledger.Service, *fakeTxRunner, *fakeSink) {
	t.Helper()
	txr := newFakeTxRunner()
	sink := &fakeSink{}
	log := logger.Nop()
	svc := appledger.NewService(txr, txr.docs, txr.seqs, sink, log)
	return svc, txr, sink
}

func adminPrincipal() scope.Principal {
	return scope.Principal{UserID: "u-admin", CompanyID: "comp-1", Role: entity.RoleAdmin}
}

func branchPrincipal(branchID string) scope.Principal {
	return scope.Principal{UserID: "u-branch", CompanyID: "comp-1", BranchID: branchID, Role: entity.RoleBranch}
}

func journalRequest(branchID string) *dto.DocumentRequest {
	return &dto.DocumentRequest{
		BranchID: branchID,
		Lines: []dto.DocumentLineRequest{
			{AccountName: "Caja", Debit: d("100")},
			{AccountName: "Ventas", Credit: d("100")},
		},
	}
}

func saleRequest(branchID, itemID string, amountPaid string) *dto.DocumentRequest {
	return &dto.DocumentRequest{
		BranchID:   branchID,
		PartyName:  "Cliente Uno",
		Lines:      []dto.DocumentLineRequest{{ItemID: itemID, ItemName: "Lote A1", Qty: d("1"), Rate: d("1000"), Amount: d("1000")}},
		AmountPaid: d(amountPaid),
	}
}

func seedItem(txr *fakeTxRunner, id, branchID string, stock int64) {
	_ = txr.items.Create(&entity.Item{
		ID:           id,
		CompanyID:    "comp-1",
		BranchID:     branchID,
		ItemCode:     "IT-" + id,
		ItemName:     "Lote A1",
		Status:       entity.ItemStatusAvailable,
		OpeningStock: stock,
		CurrentStock: stock,
		IsActive:     true,
	})
}

func TestCreate_NumeracionSecuencial(t *testing.T) {
	svc, _, sink := newService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, branchPrincipal("br-1"), entity.DocTypeJournalVoucher, journalRequest(""))
	require.NoError(t, err)
	second, err := svc.Create(ctx, branchPrincipal("br-1"), entity.DocTypeJournalVoucher, journalRequest(""))
	require.NoError(t, err)

	assert.Equal(t, "JV00001", first.DocumentNo)
	assert.Equal(t, "JV00002", second.DocumentNo)
	assert.Equal(t, []string{"journal-voucher:created", "journal-voucher:created"}, sink.types())
}

// Las secuencias son independientes por sucursal y por tipo.
func TestCreate_SecuenciasIndependientes(t *testing.T) {
	svc, _, _ := newService(t)
	ctx := context.Background()

	jv1, err := svc.Create(ctx, branchPrincipal("br-1"), entity.DocTypeJournalVoucher, journalRequest(""))
	require.NoError(t, err)
	jv2, err := svc.Create(ctx, branchPrincipal("br-2"), entity.DocTypeJournalVoucher, journalRequest(""))
	require.NoError(t, err)
	ce, err := svc.Create(ctx, branchPrincipal("br-1"), entity.DocTypeContraEntry, journalRequest(""))
	require.NoError(t, err)

	assert.Equal(t, "JV00001", jv1.DocumentNo)
	assert.Equal(t, "JV00001", jv2.DocumentNo)
	assert.Equal(t, "CTR00001", ce.DocumentNo)
}

func TestCreate_NumeroExplicitoDuplicado(t *testing.T) {
	svc, _, _ := newService(t)
	ctx := context.Background()

	req := journalRequest("")
	req.DocumentNo = "JV-CUSTOM"
	_, err := svc.Create(ctx, branchPrincipal("br-1"), entity.DocTypeJournalVoucher, req)
	require.NoError(t, err)

	again := journalRequest("")
	again.DocumentNo = "JV-CUSTOM"
	_, err = svc.Create(ctx, branchPrincipal("br-1"), entity.DocTypeJournalVoucher, again)
	assert.ErrorIs(t, err, domain.ErrDuplicateDocumentNo)
}

// Si un número explícito ya ocupó el que generaría el contador, la creación
// auto-numerada reintenta una vez con número fresco.
func TestCreate_ReintentoNumeroAutogenerado(t *testing.T) {
	svc, _, _ := newService(t)
	ctx := context.Background()

	req := journalRequest("")
	req.DocumentNo = "JV00001"
	_, err := svc.Create(ctx, branchPrincipal("br-1"), entity.DocTypeJournalVoucher, req)
	require.NoError(t, err)

	doc, err := svc.Create(ctx, branchPrincipal("br-1"), entity.DocTypeJournalVoucher, journalRequest(""))
	require.NoError(t, err)
	assert.Equal(t, "JV00002", doc.DocumentNo)
}

func TestCreate_AsientoDesbalanceado(t *testing.T) {
	svc, txr, sink := newService(t)

	req := &dto.DocumentRequest{
		Lines: []dto.DocumentLineRequest{
			{Debit: d("100")},
			{Credit: d("50")},
		},
	}
	_, err := svc.Create(context.Background(), branchPrincipal("br-1"), entity.DocTypeJournalVoucher, req)
	assert.ErrorIs(t, err, domain.ErrImbalancedEntry)
	assert.Empty(t, txr.docs.docs, "nada debe persistirse")
	assert.Empty(t, sink.types(), "nada debe notificarse")
}

// Alias heredados: un journal voucher con jvNo/entries/narration se normaliza
// a los campos canónicos.
func TestCreate_AliasHeredados(t *testing.T) {
	svc, _, _ := newService(t)

	req := &dto.DocumentRequest{
		JVNo: "JV-LEGADO",
		Entries: []dto.DocumentLineRequest{
			{Debit: d("10")},
			{Credit: d("10")},
		},
		Narration: "asiento migrado",
	}
	doc, err := svc.Create(context.Background(), branchPrincipal("br-1"), entity.DocTypeJournalVoucher, req)
	require.NoError(t, err)
	assert.Equal(t, "JV-LEGADO", doc.DocumentNo)
	assert.Len(t, doc.Lines, 2)
	assert.Equal(t, "asiento migrado", doc.Notes)
}

func TestCreate_VentaPagadaMarcaItemSold(t *testing.T) {
	svc, txr, _ := newService(t)
	seedItem(txr, "item-1", "br-1", 1)

	doc, err := svc.Create(context.Background(), branchPrincipal("br-1"), entity.DocTypeSales, saleRequest("", "item-1", "1000"))
	require.NoError(t, err)

	assert.Equal(t, "INV00001", doc.DocumentNo)
	assert.Equal(t, entity.PaymentStatusPaid, doc.PaymentStatus)

	item, _ := txr.items.GetByID("item-1")
	assert.Equal(t, entity.ItemStatusSold, item.Status)
	assert.EqualValues(t, 0, item.CurrentStock)
}

func TestCreate_VentaParcialMarcaItemBooked(t *testing.T) {
	svc, txr, _ := newService(t)
	seedItem(txr, "item-1", "br-1", 1)

	doc, err := svc.Create(context.Background(), branchPrincipal("br-1"), entity.DocTypeSales, saleRequest("", "item-1", "400"))
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusPartial, doc.PaymentStatus)

	item, _ := txr.items.GetByID("item-1")
	assert.Equal(t, entity.ItemStatusBooked, item.Status)
}

// Vender una unidad ya vendida falla y no deja rastro: ni documento ni
// consumo de stock.
func TestCreate_VentaItemAgotado(t *testing.T) {
	svc, txr, _ := newService(t)
	seedItem(txr, "item-1", "br-1", 1)

	_, err := svc.Create(context.Background(), branchPrincipal("br-1"), entity.DocTypeSales, saleRequest("", "item-1", "1000"))
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), branchPrincipal("br-1"), entity.DocTypeSales, saleRequest("", "item-1", "1000"))
	assert.ErrorIs(t, err, domain.ErrItemUnavailable)
	assert.Len(t, txr.docs.docs, 1, "la segunda venta no debe persistirse")
}

func TestCreate_CompraSumaStock(t *testing.T) {
	svc, txr, _ := newService(t)
	seedItem(txr, "item-1", "br-1", 0)
	stored := txr.items.items["item-1"]
	stored.Status = entity.ItemStatusSold

	req := &dto.DocumentRequest{
		PartyName: "Proveedor Uno",
		Lines:     []dto.DocumentLineRequest{{ItemID: "item-1", Qty: d("2"), Rate: d("500"), Amount: d("1000")}},
	}
	_, err := svc.Create(context.Background(), branchPrincipal("br-1"), entity.DocTypePurchase, req)
	require.NoError(t, err)

	item, _ := txr.items.GetByID("item-1")
	assert.EqualValues(t, 2, item.CurrentStock)
	assert.Equal(t, entity.ItemStatusAvailable, item.Status)
}

// Un escritor concurrente entre lectura y escritura del ítem aborta la
// transacción completa con ErrConcurrency.
func TestCreate_ConflictoDeVersion(t *testing.T) {
	svc, txr, _ := newService(t)
	seedItem(txr, "item-1", "br-1", 1)
	txr.items.afterGet = func(stored *entity.Item) {
		stored.Version++
	}

	_, err := svc.Create(context.Background(), branchPrincipal("br-1"), entity.DocTypeSales, saleRequest("", "item-1", "1000"))
	assert.ErrorIs(t, err, domain.ErrConcurrency)
	assert.Empty(t, txr.docs.docs)
}

func TestSoftDelete_RevierteItemYRestoreLoReaplica(t *testing.T) {
	svc, txr, sink := newService(t)
	seedItem(txr, "item-1", "br-1", 1)
	ctx := context.Background()
	p := branchPrincipal("br-1")

	doc, err := svc.Create(ctx, p, entity.DocTypeSales, saleRequest("", "item-1", "1000"))
	require.NoError(t, err)

	require.NoError(t, svc.SoftDelete(ctx, p, entity.DocTypeSales, doc.ID))
	item, _ := txr.items.GetByID("item-1")
	assert.Equal(t, entity.ItemStatusAvailable, item.Status)
	assert.EqualValues(t, 1, item.CurrentStock)

	// invisible en listados normales, visible en la papelera
	docs, _, err := svc.List(ctx, p, entity.DocTypeSales, dto.ListQuery{})
	require.NoError(t, err)
	assert.Empty(t, docs)
	deleted, _, err := svc.ListDeleted(ctx, p, entity.DocTypeSales, dto.ListQuery{})
	require.NoError(t, err)
	require.Len(t, deleted, 1)

	restored, err := svc.Restore(ctx, p, entity.DocTypeSales, doc.ID)
	require.NoError(t, err)
	assert.False(t, restored.IsDeleted)
	item, _ = txr.items.GetByID("item-1")
	assert.Equal(t, entity.ItemStatusSold, item.Status)
	assert.EqualValues(t, 0, item.CurrentStock)

	assert.Equal(t, []string{"sales:created", "sales:deleted", "sales:restored"}, sink.types())
}

// Si la unidad se vendió en otro documento mientras la venta original estaba
// en la papelera, la restauración falla.
func TestRestore_ItemYaVendido(t *testing.T) {
	svc, txr, _ := newService(t)
	seedItem(txr, "item-1", "br-1", 1)
	ctx := context.Background()
	p := branchPrincipal("br-1")

	original, err := svc.Create(ctx, p, entity.DocTypeSales, saleRequest("", "item-1", "1000"))
	require.NoError(t, err)
	require.NoError(t, svc.SoftDelete(ctx, p, entity.DocTypeSales, original.ID))

	_, err = svc.Create(ctx, p, entity.DocTypeSales, saleRequest("", "item-1", "1000"))
	require.NoError(t, err)

	_, err = svc.Restore(ctx, p, entity.DocTypeSales, original.ID)
	assert.ErrorIs(t, err, domain.ErrItemUnavailable)
}

// El número de un documento borrado queda consumido para siempre.
func TestSoftDelete_NumeroNoSeReusa(t *testing.T) {
	svc, _, _ := newService(t)
	ctx := context.Background()
	p := branchPrincipal("br-1")

	first, err := svc.Create(ctx, p, entity.DocTypeJournalVoucher, journalRequest(""))
	require.NoError(t, err)
	assert.Equal(t, "JV00001", first.DocumentNo)
	require.NoError(t, svc.SoftDelete(ctx, p, entity.DocTypeJournalVoucher, first.ID))

	second, err := svc.Create(ctx, p, entity.DocTypeJournalVoucher, journalRequest(""))
	require.NoError(t, err)
	assert.Equal(t, "JV00002", second.DocumentNo)
}

func TestGet_AislamientoEntreTenants(t *testing.T) {
	svc, _, _ := newService(t)
	ctx := context.Background()

	doc, err := svc.Create(ctx, branchPrincipal("br-1"), entity.DocTypeJournalVoucher, journalRequest(""))
	require.NoError(t, err)

	intruder := scope.Principal{UserID: "u-x", CompanyID: "comp-2", Role: entity.RoleAdmin}
	_, err = svc.Get(ctx, intruder, entity.DocTypeJournalVoucher, doc.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound, "otro tenant ve not found, nunca forbidden")

	otherBranch := branchPrincipal("br-2")
	_, err = svc.Get(ctx, otherBranch, entity.DocTypeJournalVoucher, doc.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestList_AlcancePorRol(t *testing.T) {
	svc, _, _ := newService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, branchPrincipal("br-1"), entity.DocTypeJournalVoucher, journalRequest(""))
	require.NoError(t, err)
	_, err = svc.Create(ctx, branchPrincipal("br-2"), entity.DocTypeJournalVoucher, journalRequest(""))
	require.NoError(t, err)

	// admin ve las dos sucursales
	docs, total, err := svc.List(ctx, adminPrincipal(), entity.DocTypeJournalVoucher, dto.ListQuery{})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, docs, 2)

	// branch solo la suya, pida lo que pida
	docs, total, err = svc.List(ctx, branchPrincipal("br-1"), entity.DocTypeJournalVoucher, dto.ListQuery{BranchID: "br-2"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, docs, 1)
	assert.Equal(t, "br-1", docs[0].BranchID)
}

func TestUpdate_ReemplazaLineasYRevalida(t *testing.T) {
	svc, _, _ := newService(t)
	ctx := context.Background()
	p := branchPrincipal("br-1")

	doc, err := svc.Create(ctx, p, entity.DocTypeJournalVoucher, journalRequest(""))
	require.NoError(t, err)

	// un update que desbalancea el asiento se rechaza
	bad := &dto.DocumentRequest{
		Lines: []dto.DocumentLineRequest{
			{Debit: d("100")},
			{Credit: d("99")},
		},
	}
	_, err = svc.Update(ctx, p, entity.DocTypeJournalVoucher, doc.ID, bad)
	assert.ErrorIs(t, err, domain.ErrImbalancedEntry)

	good := &dto.DocumentRequest{
		Lines: []dto.DocumentLineRequest{
			{Debit: d("300")},
			{Credit: d("300")},
		},
	}
	updated, err := svc.Update(ctx, p, entity.DocTypeJournalVoucher, doc.ID, good)
	require.NoError(t, err)
	assert.True(t, updated.TotalDebit.Equal(d("300")))
	assert.Equal(t, doc.DocumentNo, updated.DocumentNo, "el número no cambia si no se manda")
}

func TestUpdate_ItemDiffRevierteYReaplica(t *testing.T) {
	svc, txr, _ := newService(t)
	seedItem(txr, "item-1", "br-1", 1)
	seedItem(txr, "item-2", "br-1", 1)
	ctx := context.Background()
	p := branchPrincipal("br-1")

	doc, err := svc.Create(ctx, p, entity.DocTypeSales, saleRequest("", "item-1", "1000"))
	require.NoError(t, err)

	swap := saleRequest("", "item-2", "1000")
	_, err = svc.Update(ctx, p, entity.DocTypeSales, doc.ID, swap)
	require.NoError(t, err)

	released, _ := txr.items.GetByID("item-1")
	taken, _ := txr.items.GetByID("item-2")
	assert.Equal(t, entity.ItemStatusAvailable, released.Status)
	assert.EqualValues(t, 1, released.CurrentStock)
	assert.Equal(t, entity.ItemStatusSold, taken.Status)
	assert.EqualValues(t, 0, taken.CurrentStock)
}

func TestToggleActive(t *testing.T) {
	svc, _, _ := newService(t)
	ctx := context.Background()
	p := branchPrincipal("br-1")

	doc, err := svc.Create(ctx, p, entity.DocTypeJournalVoucher, journalRequest(""))
	require.NoError(t, err)
	require.True(t, doc.IsActive)

	toggled, err := svc.ToggleActive(ctx, p, entity.DocTypeJournalVoucher, doc.ID)
	require.NoError(t, err)
	assert.False(t, toggled.IsActive)

	// sigue visible en el listado normal
	docs, _, err := svc.List(ctx, p, entity.DocTypeJournalVoucher, dto.ListQuery{})
	require.NoError(t, err)
	assert.Len(t, docs, 1)
}

func TestHardDelete(t *testing.T) {
	svc, txr, _ := newService(t)
	ctx := context.Background()
	p := branchPrincipal("br-1")

	jv, err := svc.Create(ctx, p, entity.DocTypeJournalVoucher, journalRequest(""))
	require.NoError(t, err)

	// solo documentos ya en papelera
	err = svc.HardDelete(ctx, p, entity.DocTypeJournalVoucher, jv.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, svc.SoftDelete(ctx, p, entity.DocTypeJournalVoucher, jv.ID))

	// un operador raso no puede
	operator := scope.Principal{UserID: "u-op", CompanyID: "comp-1", BranchID: "br-1", Role: entity.RoleUser}
	err = svc.HardDelete(ctx, operator, entity.DocTypeJournalVoucher, jv.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	require.NoError(t, svc.HardDelete(ctx, p, entity.DocTypeJournalVoucher, jv.ID))
	assert.Empty(t, txr.docs.docs)
}

// sales no admite hard delete por tipo.
func TestHardDelete_TipoNoPermitido(t *testing.T) {
	svc, txr, _ := newService(t)
	seedItem(txr, "item-1", "br-1", 1)
	ctx := context.Background()
	p := branchPrincipal("br-1")

	doc, err := svc.Create(ctx, p, entity.DocTypeSales, saleRequest("", "item-1", "1000"))
	require.NoError(t, err)
	require.NoError(t, svc.SoftDelete(ctx, p, entity.DocTypeSales, doc.ID))

	err = svc.HardDelete(ctx, p, entity.DocTypeSales, doc.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestNextNumber(t *testing.T) {
	svc, _, _ := newService(t)
	ctx := context.Background()
	p := branchPrincipal("br-1")

	preview, err := svc.NextNumber(ctx, p, entity.DocTypeSales, "")
	require.NoError(t, err)
	assert.Equal(t, "INV00001", preview)

	// la previsualización no consume el contador
	preview, err = svc.NextNumber(ctx, p, entity.DocTypeSales, "")
	require.NoError(t, err)
	assert.Equal(t, "INV00001", preview)
}

// La falla del sink de notificaciones no voltea la operación.
func TestCreate_FallaDeNotificacionNoEsFatal(t *testing.T) {
	svc, txr, sink := newService(t)
	sink.err = context.DeadlineExceeded

	doc, err := svc.Create(context.Background(), branchPrincipal("br-1"), entity.DocTypeJournalVoucher, journalRequest(""))
	require.NoError(t, err)
	assert.NotEmpty(t, doc.ID)
	assert.Len(t, txr.docs.docs, 1)
}
