package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/govindweb777/erp-sales-backend/internal/domain"
	"github.com/govindweb777/erp-sales-backend/internal/domain/entity"
)

// DocumentLineRequest línea de documento en requests. Una misma forma sirve
// para facturas (qty/rate/amount) y asientos (debit/credit).
type DocumentLineRequest struct {
	ItemID      string          `json:"itemId"`
	ItemName    string          `json:"itemName"`
	AccountID   string          `json:"accountId"`
	AccountName string          `json:"accountName"`
	Description string          `json:"description"`
	Qty         decimal.Decimal `json:"qty"`
	Rate        decimal.Decimal `json:"rate"`
	Amount      decimal.Decimal `json:"amount"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// DocumentRequest body de create/update para cualquier tipo de documento.
//
// Los clientes heredados mandan alias por tipo: voucherNo/jvNo en lugar de
// documentNo, entries o items en lugar de lines, specialNotes/narration en
// lugar de notes. Normalize pliega esos alias al campo canónico antes de
// entrar a la capa de aplicación; el modelo persistido solo conoce los
// nombres canónicos.
type DocumentRequest struct {
	BranchID       string                `json:"branchId"`
	DocumentNo     string                `json:"documentNo"`
	Date           string                `json:"date" validate:"omitempty,datetime=2006-01-02"`
	ReferenceNo    string                `json:"referenceNo"`
	PartyName      string                `json:"partyName"`
	PartyPhone     string                `json:"partyPhone"`
	PartyEmail     string                `json:"partyEmail"`
	PartyAddress   string                `json:"partyAddress"`
	Lines          []DocumentLineRequest `json:"lines" validate:"omitempty,dive"`
	SubTotal       decimal.Decimal       `json:"subTotal"`
	Tax            decimal.Decimal       `json:"tax"`
	Discount       decimal.Decimal       `json:"discount"`
	Total          decimal.Decimal       `json:"total"`
	PaymentStatus  string                `json:"paymentStatus" validate:"omitempty,oneof=Pending Partial Paid"`
	PaymentMode    string                `json:"paymentMode" validate:"omitempty,oneof=Cash Bank Cheque UPI Card EMI"`
	AmountPaid     decimal.Decimal       `json:"amountPaid"`
	BankAccountID  string                `json:"bankAccountId"`
	AccountGroupID string                `json:"accountGroupId"`
	Notes          string                `json:"notes"`

	// Alias heredados, solo entrada.
	VoucherNo    string                `json:"voucherNo"`
	JVNo         string                `json:"jvNo"`
	Entries      []DocumentLineRequest `json:"entries"`
	Items        []DocumentLineRequest `json:"items"`
	SpecialNotes string                `json:"specialNotes"`
	Narration    string                `json:"narration"`
}

// Normalize pliega los alias heredados al campo canónico. El canónico gana si
// vienen ambos.
func (r *DocumentRequest) Normalize() {
	if r.DocumentNo == "" {
		if r.VoucherNo != "" {
			r.DocumentNo = r.VoucherNo
		} else if r.JVNo != "" {
			r.DocumentNo = r.JVNo
		}
	}
	if len(r.Lines) == 0 {
		if len(r.Entries) > 0 {
			r.Lines = r.Entries
		} else if len(r.Items) > 0 {
			r.Lines = r.Items
		}
	}
	if r.Notes == "" {
		if r.SpecialNotes != "" {
			r.Notes = r.SpecialNotes
		} else if r.Narration != "" {
			r.Notes = r.Narration
		}
	}
}

// ToEntity materializa el request como LedgerDocument sin alcance ni totales
// (eso lo resuelven scope y el agregador). Fecha vacía = hoy.
func (r *DocumentRequest) ToEntity(docType entity.DocumentType) (*entity.LedgerDocument, error) {
	r.Normalize()

	date := time.Now().UTC()
	if r.Date != "" {
		parsed, err := time.Parse("2006-01-02", r.Date)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		date = parsed
	}

	lines := make([]entity.DocumentLine, 0, len(r.Lines))
	for _, l := range r.Lines {
		lines = append(lines, entity.DocumentLine{
			ItemID:      l.ItemID,
			ItemName:    l.ItemName,
			AccountID:   l.AccountID,
			AccountName: l.AccountName,
			Description: l.Description,
			Qty:         l.Qty,
			Rate:        l.Rate,
			Amount:      l.Amount,
			Debit:       l.Debit,
			Credit:      l.Credit,
		})
	}

	return &entity.LedgerDocument{
		Type:        docType,
		BranchID:    r.BranchID,
		DocumentNo:  r.DocumentNo,
		Date:        date,
		ReferenceNo: r.ReferenceNo,
		PartyName:   r.PartyName,
		PartyContact: entity.Contact{
			Phone:   r.PartyPhone,
			Email:   r.PartyEmail,
			Address: r.PartyAddress,
		},
		Lines:          lines,
		SubTotal:       r.SubTotal,
		Tax:            r.Tax,
		Discount:       r.Discount,
		Total:          r.Total,
		PaymentStatus:  r.PaymentStatus,
		PaymentMode:    r.PaymentMode,
		AmountPaid:     r.AmountPaid,
		BankAccountID:  r.BankAccountID,
		AccountGroupID: r.AccountGroupID,
		Notes:          r.Notes,
	}, nil
}

// DocumentLineResponse línea en respuestas.
type DocumentLineResponse struct {
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

// DocumentResponse documento en respuestas. Solo expone los nombres
// canónicos; los alias por tipo quedaron en los clientes viejos.
type DocumentResponse struct {
	ID             string                 `json:"id"`
	Type           string                 `json:"type"`
	CompanyID      string                 `json:"companyId"`
	BranchID       string                 `json:"branchId"`
	DocumentNo     string                 `json:"documentNo"`
	Date           string                 `json:"date"`
	ReferenceNo    string                 `json:"referenceNo,omitempty"`
	PartyName      string                 `json:"partyName,omitempty"`
	PartyPhone     string                 `json:"partyPhone,omitempty"`
	PartyEmail     string                 `json:"partyEmail,omitempty"`
	PartyAddress   string                 `json:"partyAddress,omitempty"`
	Lines          []DocumentLineResponse `json:"lines,omitempty"`
	SubTotal       decimal.Decimal        `json:"subTotal"`
	Tax            decimal.Decimal        `json:"tax"`
	Discount       decimal.Decimal        `json:"discount"`
	Total          decimal.Decimal        `json:"total"`
	TotalDebit     decimal.Decimal        `json:"totalDebit"`
	TotalCredit    decimal.Decimal        `json:"totalCredit"`
	PaymentStatus  string                 `json:"paymentStatus,omitempty"`
	PaymentMode    string                 `json:"paymentMode,omitempty"`
	AmountPaid     decimal.Decimal        `json:"amountPaid"`
	Balance        decimal.Decimal        `json:"balance"`
	BankAccountID  string                 `json:"bankAccountId,omitempty"`
	AccountGroupID string                 `json:"accountGroupId,omitempty"`
	Notes          string                 `json:"notes,omitempty"`
	CreatedBy      string                 `json:"createdBy,omitempty"`
	IsActive       bool                   `json:"isActive"`
	IsDeleted      bool                   `json:"isDeleted"`
	CreatedAt      time.Time              `json:"createdAt"`
	UpdatedAt      time.Time              `json:"updatedAt"`
}

// FromDocument mapea la entidad a su DTO de respuesta.
func FromDocument(doc *entity.LedgerDocument) DocumentResponse {
	lines := make([]DocumentLineResponse, 0, len(doc.Lines))
	for _, l := range doc.Lines {
		lines = append(lines, DocumentLineResponse{
			ItemID:      l.ItemID,
			ItemName:    l.ItemName,
			AccountID:   l.AccountID,
			AccountName: l.AccountName,
			Description: l.Description,
			Qty:         l.Qty,
			Rate:        l.Rate,
			Amount:      l.Amount,
			Debit:       l.Debit,
			Credit:      l.Credit,
		})
	}
	return DocumentResponse{
		ID:             doc.ID,
		Type:           string(doc.Type),
		CompanyID:      doc.CompanyID,
		BranchID:       doc.BranchID,
		DocumentNo:     doc.DocumentNo,
		Date:           doc.Date.Format("2006-01-02"),
		ReferenceNo:    doc.ReferenceNo,
		PartyName:      doc.PartyName,
		PartyPhone:     doc.PartyContact.Phone,
		PartyEmail:     doc.PartyContact.Email,
		PartyAddress:   doc.PartyContact.Address,
		Lines:          lines,
		SubTotal:       doc.SubTotal,
		Tax:            doc.Tax,
		Discount:       doc.Discount,
		Total:          doc.Total,
		TotalDebit:     doc.TotalDebit,
		TotalCredit:    doc.TotalCredit,
		PaymentStatus:  doc.PaymentStatus,
		PaymentMode:    doc.PaymentMode,
		AmountPaid:     doc.AmountPaid,
		Balance:        doc.Balance,
		BankAccountID:  doc.BankAccountID,
		AccountGroupID: doc.AccountGroupID,
		Notes:          doc.Notes,
		CreatedBy:      doc.CreatedBy,
		IsActive:       doc.IsActive,
		IsDeleted:      doc.IsDeleted,
		CreatedAt:      doc.CreatedAt,
		UpdatedAt:      doc.UpdatedAt,
	}
}

// FromDocuments mapea una página de entidades.
func FromDocuments(docs []*entity.LedgerDocument) []DocumentResponse {
	out := make([]DocumentResponse, 0, len(docs))
	for _, d := range docs {
		out = append(out, FromDocument(d))
	}
	return out
}

// DocumentListResponse página de documentos con metadatos.
type DocumentListResponse struct {
	Docs       []DocumentResponse `json:"docs"`
	Pagination Pagination         `json:"pagination"`
}

// NextNumberResponse previsualización del próximo número de documento.
type NextNumberResponse struct {
	NextNumber string `json:"nextNumber"`
}
