package ledger

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/govindweb777/erp-sales-backend/internal/application/dto"
	"github.com/govindweb777/erp-sales-backend/internal/application/scope"
	"github.com/govindweb777/erp-sales-backend/internal/domain"
	"github.com/govindweb777/erp-sales-backend/internal/domain/entity"
	domledger "github.com/govindweb777/erp-sales-backend/internal/domain/ledger"
	"github.com/govindweb777/erp-sales-backend/internal/domain/repository"
	"github.com/govindweb777/erp-sales-backend/pkg/logger"
)

// Service ciclo de vida genérico de documentos contables. Un solo servicio
// atiende los siete tipos (sales, purchase, expense, receipt, payment,
// contra-entry, journal-voucher); el comportamiento por tipo sale de la tabla
// TypeSpec, no de código duplicado por colección.
type Service struct {
	txRunner TxRunner
	docRepo  repository.DocumentRepository
	seqRepo  repository.SequenceRepository
	sink     NotificationSink
	log      *logger.Logger
}

// NewService construye el servicio.
func NewService(
	txRunner TxRunner,
	docRepo repository.DocumentRepository,
	seqRepo repository.SequenceRepository,
	sink NotificationSink,
	log *logger.Logger,
) *Service {
	return &Service{
		txRunner: txRunner,
		docRepo:  docRepo,
		seqRepo:  seqRepo,
		sink:     sink,
		log:      log,
	}
}

// Create crea un documento del tipo dado: resuelve alcance, asigna número (lo
// genera si no vino), agrega y valida totales, aplica efectos sobre ítems y
// persiste, todo en una transacción. Si el número fue auto-generado y chocó
// con uno existente se reintenta la transacción completa una vez con número
// fresco; un número explícito duplicado falla directo con
// ErrDuplicateDocumentNo.
func (s *Service) Create(ctx context.Context, p scope.Principal, docType entity.DocumentType, req *dto.DocumentRequest) (*entity.LedgerDocument, error) {
	spec, err := domledger.Spec(docType)
	if err != nil {
		return nil, err
	}
	doc, err := req.ToEntity(docType)
	if err != nil {
		return nil, err
	}

	wf, err := scope.ForWrite(p, doc.BranchID)
	if err != nil {
		return nil, err
	}
	doc.CompanyID = wf.CompanyID
	doc.BranchID = wf.BranchID
	doc.CreatedBy = p.UserID
	doc.IsActive = true

	autoNumbered := doc.DocumentNo == ""
	attempts := 1
	if autoNumbered {
		attempts = 2
	}

	for attempt := 0; attempt < attempts; attempt++ {
		now := time.Now().UTC()
		doc.ID = uuid.New().String()
		doc.CreatedAt = now
		doc.UpdatedAt = now

		err = s.txRunner.RunLedger(ctx, func(
			docRepo repository.DocumentRepository,
			seqRepo repository.SequenceRepository,
			itemRepo repository.ItemRepository,
		) error {
			if autoNumbered {
				n, seqErr := seqRepo.Next(doc.CompanyID, doc.BranchID, string(docType))
				if seqErr != nil {
					return seqErr
				}
				doc.DocumentNo = domledger.FormatNumber(spec.Prefix, n)
			}
			if applyErr := domledger.Apply(doc, spec); applyErr != nil {
				return applyErr
			}
			s.defaultPaymentStatus(doc, spec)
			if fxErr := applyItemEffects(itemRepo, doc, spec); fxErr != nil {
				return fxErr
			}
			return docRepo.Create(doc)
		})
		if err == nil {
			s.publish(ctx, NewEvent(doc, ActionCreated, p.UserID))
			return doc, nil
		}
		// Solo el choque de un número auto-generado amerita reintento.
		if !autoNumbered || !errors.Is(err, domain.ErrDuplicateDocumentNo) {
			return nil, err
		}
		doc.DocumentNo = ""
	}
	return nil, err
}

// Update actualiza un documento vivo dentro del alcance del principal. El
// tenant (companyId/branchId) es inmutable; si el request trae líneas se
// revierten los efectos viejos sobre ítems, se re-agrega y se aplican los
// nuevos, en la misma transacción que la escritura.
func (s *Service) Update(ctx context.Context, p scope.Principal, docType entity.DocumentType, id string, req *dto.DocumentRequest) (*entity.LedgerDocument, error) {
	spec, err := domledger.Spec(docType)
	if err != nil {
		return nil, err
	}
	current, err := s.getInScope(p, docType, id)
	if err != nil {
		return nil, err
	}

	incoming, err := req.ToEntity(docType)
	if err != nil {
		return nil, err
	}

	updated := *current
	updated.Date = incoming.Date
	updated.ReferenceNo = incoming.ReferenceNo
	updated.PartyName = incoming.PartyName
	updated.PartyContact = incoming.PartyContact
	updated.Tax = incoming.Tax
	updated.Discount = incoming.Discount
	updated.Total = incoming.Total
	updated.PaymentStatus = incoming.PaymentStatus
	updated.PaymentMode = incoming.PaymentMode
	updated.AmountPaid = incoming.AmountPaid
	updated.BankAccountID = incoming.BankAccountID
	updated.AccountGroupID = incoming.AccountGroupID
	updated.Notes = incoming.Notes
	updated.UpdatedAt = time.Now().UTC()
	if incoming.DocumentNo != "" {
		updated.DocumentNo = incoming.DocumentNo
	}
	linesChanged := incoming.HasLines()
	if linesChanged {
		updated.Lines = incoming.Lines
	}

	if err := domledger.Apply(&updated, spec); err != nil {
		return nil, err
	}
	s.defaultPaymentStatus(&updated, spec)

	err = s.txRunner.RunLedger(ctx, func(
		docRepo repository.DocumentRepository,
		_ repository.SequenceRepository,
		itemRepo repository.ItemRepository,
	) error {
		if linesChanged {
			if fxErr := revertItemEffects(itemRepo, current, spec); fxErr != nil {
				return fxErr
			}
			if fxErr := applyItemEffects(itemRepo, &updated, spec); fxErr != nil {
				return fxErr
			}
		}
		return docRepo.Update(&updated)
	})
	if err != nil {
		return nil, err
	}
	s.publish(ctx, NewEvent(&updated, ActionUpdated, p.UserID))
	return &updated, nil
}

// ToggleActive invierte el flag isActive. Un documento inactivo sigue visible
// en listados (filtrable); no revierte efectos sobre ítems.
func (s *Service) ToggleActive(ctx context.Context, p scope.Principal, docType entity.DocumentType, id string) (*entity.LedgerDocument, error) {
	doc, err := s.getInScope(p, docType, id)
	if err != nil {
		return nil, err
	}
	doc.IsActive = !doc.IsActive
	doc.UpdatedAt = time.Now().UTC()
	if err := s.docRepo.Update(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// SoftDelete manda el documento a la papelera y revierte sus efectos sobre
// ítems (una venta borrada libera la unidad). El número queda consumido: no
// se reusa aunque el documento nunca vuelva.
func (s *Service) SoftDelete(ctx context.Context, p scope.Principal, docType entity.DocumentType, id string) error {
	spec, err := domledger.Spec(docType)
	if err != nil {
		return err
	}
	doc, err := s.getInScope(p, docType, id)
	if err != nil {
		return err
	}
	doc.IsDeleted = true
	doc.IsActive = false
	doc.UpdatedAt = time.Now().UTC()

	err = s.txRunner.RunLedger(ctx, func(
		docRepo repository.DocumentRepository,
		_ repository.SequenceRepository,
		itemRepo repository.ItemRepository,
	) error {
		if fxErr := revertItemEffects(itemRepo, doc, spec); fxErr != nil {
			return fxErr
		}
		return docRepo.Update(doc)
	})
	if err != nil {
		return err
	}
	s.publish(ctx, NewEvent(doc, ActionDeleted, p.UserID))
	return nil
}

// Restore saca el documento de la papelera y re-aplica sus efectos sobre
// ítems. Si la unidad vendida ya se vendió en otro documento mientras tanto,
// la restauración falla con ErrItemUnavailable.
func (s *Service) Restore(ctx context.Context, p scope.Principal, docType entity.DocumentType, id string) (*entity.LedgerDocument, error) {
	spec, err := domledger.Spec(docType)
	if err != nil {
		return nil, err
	}
	doc, err := s.getDeletedInScope(p, docType, id)
	if err != nil {
		return nil, err
	}
	doc.IsDeleted = false
	doc.IsActive = true
	doc.UpdatedAt = time.Now().UTC()

	err = s.txRunner.RunLedger(ctx, func(
		docRepo repository.DocumentRepository,
		_ repository.SequenceRepository,
		itemRepo repository.ItemRepository,
	) error {
		if fxErr := applyItemEffects(itemRepo, doc, spec); fxErr != nil {
			return fxErr
		}
		return docRepo.Update(doc)
	})
	if err != nil {
		return nil, err
	}
	s.publish(ctx, NewEvent(doc, ActionRestored, p.UserID))
	return doc, nil
}

// HardDelete elimina definitivamente un documento ya borrado en modo lógico.
// Solo para los tipos que lo admiten y solo para admin o branch.
func (s *Service) HardDelete(ctx context.Context, p scope.Principal, docType entity.DocumentType, id string) error {
	spec, err := domledger.Spec(docType)
	if err != nil {
		return err
	}
	if !spec.HardDelete {
		return domain.ErrForbidden
	}
	if p.Role != entity.RoleAdmin && p.Role != entity.RoleBranch {
		return domain.ErrForbidden
	}
	doc, err := s.getDeletedInScope(p, docType, id)
	if err != nil {
		return err
	}
	return s.docRepo.HardDelete(doc.ID)
}

// Get retorna un documento vivo dentro del alcance. Fuera de alcance o
// borrado se reporta como inexistente.
func (s *Service) Get(ctx context.Context, p scope.Principal, docType entity.DocumentType, id string) (*entity.LedgerDocument, error) {
	return s.getInScope(p, docType, id)
}

// List lista documentos vivos del tipo con el filtro del query, acotados al
// alcance del principal.
func (s *Service) List(ctx context.Context, p scope.Principal, docType entity.DocumentType, q dto.ListQuery) ([]*entity.LedgerDocument, int64, error) {
	return s.list(p, docType, q, false)
}

// ListDeleted lista la papelera del tipo.
func (s *Service) ListDeleted(ctx context.Context, p scope.Principal, docType entity.DocumentType, q dto.ListQuery) ([]*entity.LedgerDocument, int64, error) {
	return s.list(p, docType, q, true)
}

// NextNumber previsualiza el próximo número del tipo para la sucursal
// efectiva. Es informativo: el número real se asigna dentro de la transacción
// de creación y puede diferir bajo concurrencia.
func (s *Service) NextNumber(ctx context.Context, p scope.Principal, docType entity.DocumentType, requestedBranchID string) (string, error) {
	spec, err := domledger.Spec(docType)
	if err != nil {
		return "", err
	}
	wf, err := scope.ForWrite(p, requestedBranchID)
	if err != nil {
		return "", err
	}
	current, err := s.seqRepo.Current(wf.CompanyID, wf.BranchID, string(docType))
	if err != nil {
		return "", err
	}
	return domledger.FormatNumber(spec.Prefix, current+1), nil
}

func (s *Service) list(p scope.Principal, docType entity.DocumentType, q dto.ListQuery, deleted bool) ([]*entity.LedgerDocument, int64, error) {
	if _, err := domledger.Spec(docType); err != nil {
		return nil, 0, err
	}
	rf, err := scope.ForRead(p, q.BranchID)
	if err != nil {
		return nil, 0, err
	}
	q.DefaultPage()

	filter := repository.DocumentFilter{
		CompanyID: rf.CompanyID,
		BranchID:  rf.BranchID,
		Type:      docType,
		Search:    q.Search,
		Deleted:   deleted,
		Limit:     q.Limit,
		Offset:    q.Offset(),
	}
	switch q.IsActive {
	case "true":
		v := true
		filter.IsActive = &v
	case "false":
		v := false
		filter.IsActive = &v
	}
	if q.From != "" {
		from, perr := time.Parse("2006-01-02", q.From)
		if perr != nil {
			return nil, 0, domain.ErrInvalidInput
		}
		filter.From = &from
	}
	if q.To != "" {
		to, perr := time.Parse("2006-01-02", q.To)
		if perr != nil {
			return nil, 0, domain.ErrInvalidInput
		}
		filter.To = &to
	}
	return s.docRepo.List(filter)
}

// getInScope carga un documento vivo verificando tipo y alcance. Cualquier
// mismatch (tenant ajeno, sucursal fuera de alcance, borrado, tipo distinto)
// es ErrNotFound: el caller no distingue "no existe" de "no es tuyo".
func (s *Service) getInScope(p scope.Principal, docType entity.DocumentType, id string) (*entity.LedgerDocument, error) {
	doc, err := s.docRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if doc == nil || doc.IsDeleted || doc.Type != docType ||
		doc.CompanyID != p.CompanyID || !scope.CanAccess(p, doc.BranchID) {
		return nil, domain.ErrNotFound
	}
	return doc, nil
}

func (s *Service) getDeletedInScope(p scope.Principal, docType entity.DocumentType, id string) (*entity.LedgerDocument, error) {
	doc, err := s.docRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if doc == nil || !doc.IsDeleted || doc.Type != docType ||
		doc.CompanyID != p.CompanyID || !scope.CanAccess(p, doc.BranchID) {
		return nil, domain.ErrNotFound
	}
	return doc, nil
}

// defaultPaymentStatus deriva el estado de pago de una factura cuando el
// caller no lo mandó: Paid si no queda saldo, Partial si hay abono, Pending
// si no hay nada pagado.
func (s *Service) defaultPaymentStatus(doc *entity.LedgerDocument, spec domledger.TypeSpec) {
	if spec.Kind != domledger.KindInvoice || doc.PaymentStatus != "" {
		return
	}
	switch {
	case doc.AmountPaid.IsPositive() && doc.Balance.IsZero():
		doc.PaymentStatus = entity.PaymentStatusPaid
	case doc.AmountPaid.IsPositive():
		doc.PaymentStatus = entity.PaymentStatusPartial
	default:
		doc.PaymentStatus = entity.PaymentStatusPending
	}
}

func (s *Service) publish(ctx context.Context, ev Event) {
	if s.sink == nil {
		return
	}
	if err := s.sink.Publish(ctx, ev); err != nil {
		s.log.Warn().Err(err).Str("event", ev.Type).Str("document", ev.DocumentNo).
			Msg("no se pudo publicar el evento")
	}
}
