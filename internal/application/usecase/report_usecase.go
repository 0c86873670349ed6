package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/govindweb777/erp-sales-backend/internal/application/dto"
	"github.com/govindweb777/erp-sales-backend/internal/application/scope"
	"github.com/govindweb777/erp-sales-backend/internal/domain"
	"github.com/govindweb777/erp-sales-backend/internal/domain/entity"
	"github.com/govindweb777/erp-sales-backend/internal/domain/repository"
)

// Tope de filas por tipo en el reporte de mayor; los reportes no paginan.
const ledgerReportLimit = 500

// ReportQuery parámetros de los reportes contables.
type ReportQuery struct {
	Account  string `query:"account"`
	BranchID string `query:"branchId"`
	From     string `query:"from" validate:"omitempty,datetime=2006-01-02"`
	To       string `query:"to" validate:"omitempty,datetime=2006-01-02"`
}

// ReportUseCase reportes contables: mayor por parte, balance de comprobación,
// cuentas por cobrar y por pagar. Lecturas puras sobre los documentos.
type ReportUseCase struct {
	docRepo repository.DocumentRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(docRepo repository.DocumentRepository) *ReportUseCase {
	return &ReportUseCase{docRepo: docRepo}
}

// Ledger arma el mayor de una parte: sus ventas, compras, recibos y pagos
// dentro del alcance y el rango de fechas.
func (uc *ReportUseCase) Ledger(p scope.Principal, q ReportQuery) (*dto.LedgerReportResponse, error) {
	base, err := uc.reportFilter(p, q)
	if err != nil {
		return nil, err
	}
	base.Search = q.Account
	base.Limit = ledgerReportLimit

	out := &dto.LedgerReportResponse{}
	sections := []struct {
		docType entity.DocumentType
		dst     *[]dto.DocumentResponse
	}{
		{entity.DocTypeSales, &out.Sales},
		{entity.DocTypePurchase, &out.Purchases},
		{entity.DocTypeReceipt, &out.Receipts},
		{entity.DocTypePayment, &out.Payments},
	}
	for _, s := range sections {
		filter := base
		filter.Type = s.docType
		docs, _, err := uc.docRepo.List(filter)
		if err != nil {
			return nil, err
		}
		*s.dst = dto.FromDocuments(docs)
	}
	return out, nil
}

// TrialBalance suma el total por tipo de documento dentro del alcance.
func (uc *ReportUseCase) TrialBalance(p scope.Principal, q ReportQuery) (*dto.TrialBalanceResponse, error) {
	base, err := uc.reportFilter(p, q)
	if err != nil {
		return nil, err
	}

	sum := func(docType entity.DocumentType) (decimal.Decimal, error) {
		filter := base
		filter.Type = docType
		return uc.docRepo.SumTotal(filter)
	}

	out := &dto.TrialBalanceResponse{}
	if out.Sales, err = sum(entity.DocTypeSales); err != nil {
		return nil, err
	}
	if out.Purchases, err = sum(entity.DocTypePurchase); err != nil {
		return nil, err
	}
	if out.Receipts, err = sum(entity.DocTypeReceipt); err != nil {
		return nil, err
	}
	if out.Payments, err = sum(entity.DocTypePayment); err != nil {
		return nil, err
	}
	return out, nil
}

// Receivables total por cobrar agrupado por cliente (ventas).
func (uc *ReportUseCase) Receivables(p scope.Principal, q ReportQuery) ([]dto.PartyTotalResponse, error) {
	return uc.totalsByParty(p, q, entity.DocTypeSales)
}

// Payables total por pagar agrupado por proveedor (compras).
func (uc *ReportUseCase) Payables(p scope.Principal, q ReportQuery) ([]dto.PartyTotalResponse, error) {
	return uc.totalsByParty(p, q, entity.DocTypePurchase)
}

func (uc *ReportUseCase) totalsByParty(p scope.Principal, q ReportQuery, docType entity.DocumentType) ([]dto.PartyTotalResponse, error) {
	filter, err := uc.reportFilter(p, q)
	if err != nil {
		return nil, err
	}
	filter.Type = docType
	totals, err := uc.docRepo.SumTotalByParty(filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PartyTotalResponse, 0, len(totals))
	for _, t := range totals {
		out = append(out, dto.PartyTotalResponse{PartyName: t.PartyName, Total: t.Total})
	}
	return out, nil
}

func (uc *ReportUseCase) reportFilter(p scope.Principal, q ReportQuery) (repository.DocumentFilter, error) {
	rf, err := scope.ForRead(p, q.BranchID)
	if err != nil {
		return repository.DocumentFilter{}, err
	}
	filter := repository.DocumentFilter{
		CompanyID: rf.CompanyID,
		BranchID:  rf.BranchID,
	}
	if q.From != "" {
		d, perr := time.Parse("2006-01-02", q.From)
		if perr != nil {
			return repository.DocumentFilter{}, domain.ErrInvalidInput
		}
		filter.From = &d
	}
	if q.To != "" {
		d, perr := time.Parse("2006-01-02", q.To)
		if perr != nil {
			return repository.DocumentFilter{}, domain.ErrInvalidInput
		}
		filter.To = &d
	}
	return filter, nil
}
