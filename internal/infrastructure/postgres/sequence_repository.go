package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/govindweb777/erp-sales-backend/internal/domain/repository"
)

var _ repository.SequenceRepository = (*SequenceRepo)(nil)

// SequenceRepo contador monotónico sobre document_sequences. El upsert
// incrementa y lee en una sola sentencia: dos transacciones concurrentes
// nunca ven el mismo valor (la fila queda bloqueada hasta el commit del
// upsert).
type SequenceRepo struct {
	q Querier
}

// NewSequenceRepository construye el adaptador. En el flujo de documentos se
// pasa el pool (no la tx): el número consumido sobrevive al rollback.
func NewSequenceRepository(q Querier) *SequenceRepo {
	return &SequenceRepo{q: q}
}

// Next incrementa el contador de la tupla y retorna el nuevo valor.
func (r *SequenceRepo) Next(companyID, branchID, key string) (int64, error) {
	query := `
		INSERT INTO document_sequences (company_id, branch_id, sequence_key, value)
		VALUES ($1, $2, $3, 1)
		ON CONFLICT (company_id, branch_id, sequence_key)
		DO UPDATE SET value = document_sequences.value + 1
		RETURNING value`
	var value int64
	err := r.q.QueryRow(context.Background(), query, companyID, branchID, key).Scan(&value)
	if err != nil {
		return 0, fmt.Errorf("next sequence value: %w", err)
	}
	return value, nil
}

// Current retorna el último valor emitido sin consumir (0 si la tupla no existe).
func (r *SequenceRepo) Current(companyID, branchID, key string) (int64, error) {
	query := `
		SELECT value FROM document_sequences
		WHERE company_id = $1 AND branch_id = $2 AND sequence_key = $3`
	var value int64
	err := r.q.QueryRow(context.Background(), query, companyID, branchID, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("current sequence value: %w", err)
	}
	return value, nil
}
