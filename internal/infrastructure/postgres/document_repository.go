package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/govindweb777/erp-sales-backend/internal/domain"
	"github.com/govindweb777/erp-sales-backend/internal/domain/entity"
	"github.com/govindweb777/erp-sales-backend/internal/domain/repository"
)

var _ repository.DocumentRepository = (*DocumentRepo)(nil)

// DocumentRepo implementación de DocumentRepository (usable con pool o tx).
// Todos los tipos de documento viven en ledger_documents; las líneas se
// guardan como JSONB (se leen y escriben siempre como bloque, nunca se
// consultan línea a línea).
type DocumentRepo struct {
	q Querier
}

// NewDocumentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDocumentRepository(q Querier) *DocumentRepo {
	return &DocumentRepo{q: q}
}

const documentColumns = `
	id, document_type, company_id, branch_id, document_no, date, reference_no,
	party_name, party_contact, lines,
	sub_total, tax, discount, total, total_debit, total_credit,
	payment_status, payment_mode, amount_paid, balance,
	bank_account_id, account_group_id, notes, created_by,
	is_active, is_deleted, created_at, updated_at`

// Create inserta el documento. El único
// (company_id, branch_id, document_type, document_no) cubre también filas
// borradas en modo lógico: un número consumido no vuelve a aceptarse.
func (r *DocumentRepo) Create(doc *entity.LedgerDocument) error {
	if doc.ID == "" {
		doc.ID = uuid.New().String()
	}
	lines, contact, err := marshalDocJSON(doc)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO ledger_documents (` + documentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
		        $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28)`
	_, err = r.q.Exec(context.Background(), query,
		doc.ID, doc.Type, doc.CompanyID, doc.BranchID, doc.DocumentNo, doc.Date,
		nullIfEmpty(doc.ReferenceNo), nullIfEmpty(doc.PartyName), contact, lines,
		doc.SubTotal, doc.Tax, doc.Discount, doc.Total, doc.TotalDebit, doc.TotalCredit,
		nullIfEmpty(doc.PaymentStatus), nullIfEmpty(doc.PaymentMode), doc.AmountPaid, doc.Balance,
		nullIfEmpty(doc.BankAccountID), nullIfEmpty(doc.AccountGroupID), nullIfEmpty(doc.Notes), nullIfEmpty(doc.CreatedBy),
		doc.IsActive, doc.IsDeleted, doc.CreatedAt, doc.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateDocumentNo
		}
		return fmt.Errorf("insert ledger document: %w", err)
	}
	return nil
}

// Update reemplaza los campos mutables. company_id, branch_id y
// document_type no están en el SET: el tenant de un documento es inmutable.
func (r *DocumentRepo) Update(doc *entity.LedgerDocument) error {
	lines, contact, err := marshalDocJSON(doc)
	if err != nil {
		return err
	}
	query := `
		UPDATE ledger_documents
		SET document_no      = $2,
		    date             = $3,
		    reference_no     = $4,
		    party_name       = $5,
		    party_contact    = $6,
		    lines            = $7,
		    sub_total        = $8,
		    tax              = $9,
		    discount         = $10,
		    total            = $11,
		    total_debit      = $12,
		    total_credit     = $13,
		    payment_status   = $14,
		    payment_mode     = $15,
		    amount_paid      = $16,
		    balance          = $17,
		    bank_account_id  = $18,
		    account_group_id = $19,
		    notes            = $20,
		    is_active        = $21,
		    is_deleted       = $22,
		    updated_at       = $23
		WHERE id = $1`
	_, err = r.q.Exec(context.Background(), query,
		doc.ID, doc.DocumentNo, doc.Date,
		nullIfEmpty(doc.ReferenceNo), nullIfEmpty(doc.PartyName), contact, lines,
		doc.SubTotal, doc.Tax, doc.Discount, doc.Total, doc.TotalDebit, doc.TotalCredit,
		nullIfEmpty(doc.PaymentStatus), nullIfEmpty(doc.PaymentMode), doc.AmountPaid, doc.Balance,
		nullIfEmpty(doc.BankAccountID), nullIfEmpty(doc.AccountGroupID), nullIfEmpty(doc.Notes),
		doc.IsActive, doc.IsDeleted, doc.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateDocumentNo
		}
		return fmt.Errorf("update ledger document: %w", err)
	}
	return nil
}

// GetByID obtiene un documento por ID. Retorna (nil, nil) si no existe.
func (r *DocumentRepo) GetByID(id string) (*entity.LedgerDocument, error) {
	query := `SELECT ` + documentColumns + ` FROM ledger_documents WHERE id = $1`
	doc, err := scanDocument(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ledger document: %w", err)
	}
	return doc, nil
}

// documentWhere arma la cláusula WHERE compartida por listados y reportes.
func documentWhere(filter repository.DocumentFilter) (string, []any) {
	where := []string{"company_id = $1", "document_type = $2", "is_deleted = $3"}
	args := []any{filter.CompanyID, filter.Type, filter.Deleted}

	if filter.BranchID != "" {
		args = append(args, filter.BranchID)
		where = append(where, fmt.Sprintf("branch_id = $%d", len(args)))
	}
	if filter.IsActive != nil {
		args = append(args, *filter.IsActive)
		where = append(where, fmt.Sprintf("is_active = $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		where = append(where, fmt.Sprintf("(document_no ILIKE $%d OR reference_no ILIKE $%d OR party_name ILIKE $%d)", n, n, n))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		where = append(where, fmt.Sprintf("date >= $%d", len(args)))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		where = append(where, fmt.Sprintf("date <= $%d", len(args)))
	}
	return strings.Join(where, " AND "), args
}

// List retorna la página y el total que matchea el filtro.
func (r *DocumentRepo) List(filter repository.DocumentFilter) ([]*entity.LedgerDocument, int64, error) {
	cond, args := documentWhere(filter)

	var total int64
	countQuery := `SELECT COUNT(*) FROM ledger_documents WHERE ` + cond
	if err := r.q.QueryRow(context.Background(), countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count ledger documents: %w", err)
	}

	args = append(args, filter.Limit, filter.Offset)
	query := fmt.Sprintf(`SELECT %s FROM ledger_documents WHERE %s
		ORDER BY date DESC, created_at DESC
		LIMIT $%d OFFSET $%d`, documentColumns, cond, len(args)-1, len(args))

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list ledger documents: %w", err)
	}
	defer rows.Close()

	var docs []*entity.LedgerDocument
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan ledger document: %w", err)
		}
		docs = append(docs, doc)
	}
	return docs, total, rows.Err()
}

// SumTotal suma la columna total de los documentos que matchean el filtro.
func (r *DocumentRepo) SumTotal(filter repository.DocumentFilter) (decimal.Decimal, error) {
	cond, args := documentWhere(filter)
	var sum decimal.Decimal
	query := `SELECT COALESCE(SUM(total), 0) FROM ledger_documents WHERE ` + cond
	if err := r.q.QueryRow(context.Background(), query, args...).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("sum ledger documents: %w", err)
	}
	return sum, nil
}

// SumTotalByParty agrupa el total por nombre de parte, de mayor a menor.
func (r *DocumentRepo) SumTotalByParty(filter repository.DocumentFilter) ([]repository.PartyTotal, error) {
	cond, args := documentWhere(filter)
	query := `
		SELECT COALESCE(party_name, ''), COALESCE(SUM(total), 0)
		FROM ledger_documents WHERE ` + cond + `
		GROUP BY party_name
		ORDER BY 2 DESC`
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("sum ledger documents by party: %w", err)
	}
	defer rows.Close()

	var totals []repository.PartyTotal
	for rows.Next() {
		var pt repository.PartyTotal
		if err := rows.Scan(&pt.PartyName, &pt.Total); err != nil {
			return nil, fmt.Errorf("scan party total: %w", err)
		}
		totals = append(totals, pt)
	}
	return totals, rows.Err()
}

// HardDelete elimina la fila definitivamente.
func (r *DocumentRepo) HardDelete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM ledger_documents WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("hard delete ledger document: %w", err)
	}
	return nil
}

func marshalDocJSON(doc *entity.LedgerDocument) (lines, contact []byte, err error) {
	if doc.Lines == nil {
		lines = []byte("[]")
	} else if lines, err = json.Marshal(doc.Lines); err != nil {
		return nil, nil, fmt.Errorf("marshal lines: %w", err)
	}
	if contact, err = json.Marshal(doc.PartyContact); err != nil {
		return nil, nil, fmt.Errorf("marshal party contact: %w", err)
	}
	return lines, contact, nil
}

func scanDocument(row pgx.Row) (*entity.LedgerDocument, error) {
	var doc entity.LedgerDocument
	var referenceNo, partyName, paymentStatus, paymentMode *string
	var bankAccountID, accountGroupID, notes, createdBy *string
	var lines, contact []byte

	err := row.Scan(
		&doc.ID, &doc.Type, &doc.CompanyID, &doc.BranchID, &doc.DocumentNo, &doc.Date,
		&referenceNo, &partyName, &contact, &lines,
		&doc.SubTotal, &doc.Tax, &doc.Discount, &doc.Total, &doc.TotalDebit, &doc.TotalCredit,
		&paymentStatus, &paymentMode, &doc.AmountPaid, &doc.Balance,
		&bankAccountID, &accountGroupID, &notes, &createdBy,
		&doc.IsActive, &doc.IsDeleted, &doc.CreatedAt, &doc.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	doc.ReferenceNo = derefStr(referenceNo)
	doc.PartyName = derefStr(partyName)
	doc.PaymentStatus = derefStr(paymentStatus)
	doc.PaymentMode = derefStr(paymentMode)
	doc.BankAccountID = derefStr(bankAccountID)
	doc.AccountGroupID = derefStr(accountGroupID)
	doc.Notes = derefStr(notes)
	doc.CreatedBy = derefStr(createdBy)

	if len(lines) > 0 {
		if err := json.Unmarshal(lines, &doc.Lines); err != nil {
			return nil, fmt.Errorf("unmarshal lines: %w", err)
		}
	}
	if len(contact) > 0 {
		if err := json.Unmarshal(contact, &doc.PartyContact); err != nil {
			return nil, fmt.Errorf("unmarshal party contact: %w", err)
		}
	}
	return &doc, nil
}
