package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	appledger "github.com/govindweb777/erp-sales-backend/internal/application/ledger"
	"github.com/govindweb777/erp-sales-backend/internal/application/usecase"
	"github.com/govindweb777/erp-sales-backend/internal/domain/repository"
)

var _ appledger.TxRunner = (*TxRunner)(nil)
var _ usecase.AdminTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunLedger inicia una transacción con los repos del ciclo de vida de
// documentos y hace Commit o Rollback. El repo de secuencias va atado al POOL
// a propósito: el incremento del contador confirma solo, así un rollback del
// documento quema el número en lugar de devolverlo y el reintento por
// duplicado obtiene uno fresco.
func (r *TxRunner) RunLedger(ctx context.Context, fn func(
	docRepo repository.DocumentRepository,
	seqRepo repository.SequenceRepository,
	itemRepo repository.ItemRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	docRepo := NewDocumentRepository(tx)
	seqRepo := NewSequenceRepository(r.pool)
	itemRepo := NewItemRepository(tx)

	if err := fn(docRepo, seqRepo, itemRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunAdmin inicia una transacción con repos administrativos (cascada de
// borrado de sucursal sobre sus usuarios).
func (r *TxRunner) RunAdmin(ctx context.Context, fn func(
	branchRepo repository.BranchRepository,
	userRepo repository.UserRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	branchRepo := NewBranchRepository(tx)
	userRepo := NewUserRepository(tx)

	if err := fn(branchRepo, userRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
