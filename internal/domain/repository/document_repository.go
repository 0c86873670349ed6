package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/govindweb777/erp-sales-backend/internal/domain/entity"
)

// DocumentFilter criterios de listado de documentos. CompanyID es obligatorio;
// BranchID vacío significa toda la empresa (solo roles de alcance empresa).
type DocumentFilter struct {
	CompanyID string
	BranchID  string
	Type      entity.DocumentType
	Search    string // busca en document_no, reference_no y party_name
	IsActive  *bool
	From      *time.Time
	To        *time.Time
	Deleted   bool // true lista la papelera en lugar de los vivos
	Limit     int
	Offset    int
}

// DocumentRepository define el puerto de persistencia para LedgerDocument.
// Todos los tipos de documento comparten la misma tabla; el filtro por Type
// separa cada colección lógica.
type DocumentRepository interface {
	// Create inserta el documento. Un choque con el único
	// (company_id, branch_id, document_type, document_no) retorna
	// domain.ErrDuplicateDocumentNo.
	Create(doc *entity.LedgerDocument) error
	// Update reemplaza los campos mutables. CompanyID/BranchID/Type nunca
	// cambian después de crear.
	Update(doc *entity.LedgerDocument) error
	// GetByID retorna (nil, nil) si no existe.
	GetByID(id string) (*entity.LedgerDocument, error)
	// List retorna la página y el total de documentos que matchean el filtro.
	List(filter DocumentFilter) ([]*entity.LedgerDocument, int64, error)
	// SumTotal suma la columna total de los documentos que matchean el filtro
	// (reportes: balance de comprobación).
	SumTotal(filter DocumentFilter) (decimal.Decimal, error)
	// SumTotalByParty agrupa el total por nombre de parte (reportes: cuentas
	// por cobrar / por pagar).
	SumTotalByParty(filter DocumentFilter) ([]PartyTotal, error)
	// HardDelete elimina la fila definitivamente (solo tipos que lo admiten).
	HardDelete(id string) error
}

// PartyTotal total acumulado de documentos de una parte.
type PartyTotal struct {
	PartyName string
	Total     decimal.Decimal
}
