package usecase_test

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/govindweb777/erp-sales-backend/internal/application/scope"
	"github.com/govindweb777/erp-sales-backend/internal/application/usecase"
	"github.com/govindweb777/erp-sales-backend/internal/domain"
	"github.com/govindweb777/erp-sales-backend/internal/domain/entity"
	"github.com/govindweb777/erp-sales-backend/internal/domain/repository"
)

type fakeDocRepo struct {
	docs []*entity.LedgerDocument
}

func (r *fakeDocRepo) Create(d *entity.LedgerDocument) error {
	cp := *d
	r.docs = append(r.docs, &cp)
	return nil
}

func (r *fakeDocRepo) Update(d *entity.LedgerDocument) error {
	for i, existing := range r.docs {
		if existing.ID == d.ID {
			cp := *d
			r.docs[i] = &cp
		}
	}
	return nil
}

func (r *fakeDocRepo) GetByID(id string) (*entity.LedgerDocument, error) {
	for _, d := range r.docs {
		if d.ID == id {
			cp := *d
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeDocRepo) matches(d *entity.LedgerDocument, filter repository.DocumentFilter) bool {
	if d.CompanyID != filter.CompanyID || d.IsDeleted != filter.Deleted {
		return false
	}
	if filter.BranchID != "" && d.BranchID != filter.BranchID {
		return false
	}
	if filter.Type != "" && d.Type != filter.Type {
		return false
	}
	if filter.Search != "" {
		s := strings.ToLower(filter.Search)
		if !strings.Contains(strings.ToLower(d.PartyName), s) &&
			!strings.Contains(strings.ToLower(d.DocumentNo), s) {
			return false
		}
	}
	if filter.From != nil && d.Date.Before(*filter.From) {
		return false
	}
	if filter.To != nil && d.Date.After(*filter.To) {
		return false
	}
	return true
}

func (r *fakeDocRepo) List(filter repository.DocumentFilter) ([]*entity.LedgerDocument, int64, error) {
	var out []*entity.LedgerDocument
	for _, d := range r.docs {
		if r.matches(d, filter) {
			cp := *d
			out = append(out, &cp)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeDocRepo) SumTotal(filter repository.DocumentFilter) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, d := range r.docs {
		if r.matches(d, filter) {
			total = total.Add(d.Total)
		}
	}
	return total, nil
}

func (r *fakeDocRepo) SumTotalByParty(filter repository.DocumentFilter) ([]repository.PartyTotal, error) {
	byParty := map[string]decimal.Decimal{}
	var order []string
	for _, d := range r.docs {
		if !r.matches(d, filter) {
			continue
		}
		if _, ok := byParty[d.PartyName]; !ok {
			order = append(order, d.PartyName)
		}
		byParty[d.PartyName] = byParty[d.PartyName].Add(d.Total)
	}
	out := make([]repository.PartyTotal, 0, len(order))
	for _, name := range order {
		out = append(out, repository.PartyTotal{PartyName: name, Total: byParty[name]})
	}
	return out, nil
}

func (r *fakeDocRepo) HardDelete(id string) error {
	for i, d := range r.docs {
		if d.ID == id {
			r.docs = append(r.docs[:i], r.docs[i+1:]...)
			return nil
		}
	}
	return nil
}

func seedReportDocs(t *testing.T) *fakeDocRepo {
	t.Helper()
	repo := &fakeDocRepo{}
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	docs := []*entity.LedgerDocument{
		{ID: "s1", Type: entity.DocTypeSales, CompanyID: "comp-1", BranchID: "br-1", DocumentNo: "INV00001", PartyName: "Acme SA", Total: decimal.NewFromInt(100), Date: date, IsActive: true},
		{ID: "s2", Type: entity.DocTypeSales, CompanyID: "comp-1", BranchID: "br-1", DocumentNo: "INV00002", PartyName: "Acme SA", Total: decimal.NewFromInt(150), Date: date, IsActive: true},
		{ID: "s3", Type: entity.DocTypeSales, CompanyID: "comp-1", BranchID: "br-2", DocumentNo: "INV00001", PartyName: "Beta SRL", Total: decimal.NewFromInt(200), Date: date, IsActive: true},
		{ID: "p1", Type: entity.DocTypePurchase, CompanyID: "comp-1", BranchID: "br-1", DocumentNo: "PUR00001", PartyName: "Proveedora Sur", Total: decimal.NewFromInt(80), Date: date, IsActive: true},
		{ID: "r1", Type: entity.DocTypeReceipt, CompanyID: "comp-1", BranchID: "br-1", DocumentNo: "REC00001", PartyName: "Acme SA", Total: decimal.NewFromInt(50), Date: date, IsActive: true},
		{ID: "x1", Type: entity.DocTypeSales, CompanyID: "comp-2", BranchID: "br-9", DocumentNo: "INV00001", PartyName: "Ajena", Total: decimal.NewFromInt(999), Date: date, IsActive: true},
	}
	for _, d := range docs {
		require.NoError(t, repo.Create(d))
	}
	return repo
}

func TestReport_TrialBalancePorAlcance(t *testing.T) {
	uc := usecase.NewReportUseCase(seedReportDocs(t))

	// admin ve toda la empresa
	out, err := uc.TrialBalance(admin(), usecase.ReportQuery{})
	require.NoError(t, err)
	assert.True(t, out.Sales.Equal(decimal.NewFromInt(450)), "sales = %s", out.Sales)
	assert.True(t, out.Purchases.Equal(decimal.NewFromInt(80)))
	assert.True(t, out.Receipts.Equal(decimal.NewFromInt(50)))
	assert.True(t, out.Payments.Equal(decimal.Zero))

	// rol user confinado a su sucursal, aunque pida otra
	user := scope.Principal{UserID: "u1", CompanyID: "comp-1", BranchID: "br-1", Role: entity.RoleUser}
	out, err = uc.TrialBalance(user, usecase.ReportQuery{BranchID: "br-2"})
	require.NoError(t, err)
	assert.True(t, out.Sales.Equal(decimal.NewFromInt(250)), "solo la sucursal propia: %s", out.Sales)
}

func TestReport_MayorDeUnaParte(t *testing.T) {
	uc := usecase.NewReportUseCase(seedReportDocs(t))

	report, err := uc.Ledger(admin(), usecase.ReportQuery{Account: "Acme"})
	require.NoError(t, err)
	require.Len(t, report.Sales, 2)
	require.Len(t, report.Receipts, 1)
	assert.Empty(t, report.Purchases)
	assert.Empty(t, report.Payments)
	assert.Equal(t, "Acme SA", report.Sales[0].PartyName)
}

func TestReport_CuentasPorCobrarAgrupadas(t *testing.T) {
	uc := usecase.NewReportUseCase(seedReportDocs(t))

	totals, err := uc.Receivables(admin(), usecase.ReportQuery{})
	require.NoError(t, err)
	require.Len(t, totals, 2)

	byParty := map[string]decimal.Decimal{}
	for _, pt := range totals {
		byParty[pt.PartyName] = pt.Total
	}
	assert.True(t, byParty["Acme SA"].Equal(decimal.NewFromInt(250)))
	assert.True(t, byParty["Beta SRL"].Equal(decimal.NewFromInt(200)))
}

func TestReport_FechaInvalida(t *testing.T) {
	uc := usecase.NewReportUseCase(&fakeDocRepo{})

	_, err := uc.TrialBalance(admin(), usecase.ReportQuery{From: "10-03-2026"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
