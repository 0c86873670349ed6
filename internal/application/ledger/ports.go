package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/govindweb777/erp-sales-backend/internal/domain/entity"
	"github.com/govindweb777/erp-sales-backend/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Escritura del documento y efectos sobre ítems
// confirman o se deshacen juntos. El repositorio de secuencias es la
// excepción: va atado al pool en autocommit, de modo que un rollback quema el
// número consumido en lugar de devolverlo. Así el reintento por número
// duplicado obtiene un número fresco y los números nunca se reusan.
type TxRunner interface {
	RunLedger(ctx context.Context, fn func(
		docRepo repository.DocumentRepository,
		seqRepo repository.SequenceRepository,
		itemRepo repository.ItemRepository,
	) error) error
}

// Acciones notificadas sobre documentos.
const (
	ActionCreated  = "created"
	ActionUpdated  = "updated"
	ActionDeleted  = "deleted"
	ActionRestored = "restored"
)

// Event evento de dominio publicado después del commit.
type Event struct {
	Type       string    `json:"type"` // "<docType>:<acción>", ej. "sales:created"
	CompanyID  string    `json:"companyId"`
	BranchID   string    `json:"branchId"`
	DocumentID string    `json:"documentId"`
	DocumentNo string    `json:"documentNo"`
	ActorID    string    `json:"actorId"`
	At         time.Time `json:"at"`
}

// NewEvent arma el evento para un documento y una acción.
func NewEvent(doc *entity.LedgerDocument, action, actorID string) Event {
	return Event{
		Type:       fmt.Sprintf("%s:%s", doc.Type, action),
		CompanyID:  doc.CompanyID,
		BranchID:   doc.BranchID,
		DocumentID: doc.ID,
		DocumentNo: doc.DocumentNo,
		ActorID:    actorID,
		At:         time.Now().UTC(),
	}
}

// NotificationSink destino de eventos de dominio. La publicación ocurre
// después del commit y su falla nunca revierte la operación: se loguea y se
// sigue.
type NotificationSink interface {
	Publish(ctx context.Context, event Event) error
}
