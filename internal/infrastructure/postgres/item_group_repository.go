package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/govindweb777/erp-sales-backend/internal/domain"
	"github.com/govindweb777/erp-sales-backend/internal/domain/entity"
	"github.com/govindweb777/erp-sales-backend/internal/domain/repository"
)

var _ repository.ItemGroupRepository = (*ItemGroupRepo)(nil)

// ItemGroupRepo implementación de ItemGroupRepository. Sin papelera: los
// grupos se borran de verdad y los ítems conservan la referencia colgante.
type ItemGroupRepo struct {
	q Querier
}

// NewItemGroupRepository construye el adaptador. Pasar pool o tx (Querier).
func NewItemGroupRepository(q Querier) *ItemGroupRepo {
	return &ItemGroupRepo{q: q}
}

const itemGroupColumns = `
	id, company_id, branch_id, name, short_name, description, is_active,
	created_at, updated_at`

func (r *ItemGroupRepo) Create(group *entity.ItemGroup) error {
	if group.ID == "" {
		group.ID = uuid.New().String()
	}
	query := `
		INSERT INTO item_groups (` + itemGroupColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		group.ID, group.CompanyID, group.BranchID, group.Name,
		group.ShortName, nullIfEmpty(group.Description), group.IsActive,
		group.CreatedAt, group.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert item group: %w", err)
	}
	return nil
}

// GetByID retorna (nil, nil) si no existe.
func (r *ItemGroupRepo) GetByID(id string) (*entity.ItemGroup, error) {
	query := `SELECT ` + itemGroupColumns + ` FROM item_groups WHERE id = $1`
	group, err := scanItemGroup(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item group: %w", err)
	}
	return group, nil
}

func (r *ItemGroupRepo) Update(group *entity.ItemGroup) error {
	query := `
		UPDATE item_groups
		SET name        = $2,
		    short_name  = $3,
		    description = $4,
		    is_active   = $5,
		    updated_at  = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		group.ID, group.Name, group.ShortName,
		nullIfEmpty(group.Description), group.IsActive, group.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update item group: %w", err)
	}
	return nil
}

// List retorna la página y el total que matchea el filtro.
func (r *ItemGroupRepo) List(filter repository.MasterFilter) ([]*entity.ItemGroup, int64, error) {
	cond, args := itemMasterWhere(filter, "name", "short_name")

	var total int64
	if err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM item_groups WHERE `+cond, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count item groups: %w", err)
	}

	args = append(args, masterLimit(filter), filter.Offset)
	query := fmt.Sprintf(`SELECT %s FROM item_groups WHERE %s
		ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, itemGroupColumns, cond, len(args)-1, len(args))

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list item groups: %w", err)
	}
	defer rows.Close()

	var groups []*entity.ItemGroup
	for rows.Next() {
		group, err := scanItemGroup(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan item group: %w", err)
		}
		groups = append(groups, group)
	}
	return groups, total, rows.Err()
}

// Delete elimina la fila definitivamente.
func (r *ItemGroupRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM item_groups WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item group: %w", err)
	}
	return nil
}

func scanItemGroup(row pgx.Row) (*entity.ItemGroup, error) {
	var group entity.ItemGroup
	var description *string

	err := row.Scan(
		&group.ID, &group.CompanyID, &group.BranchID, &group.Name,
		&group.ShortName, &description, &group.IsActive,
		&group.CreatedAt, &group.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	group.Description = derefStr(description)
	return &group, nil
}

// itemMasterWhere arma el WHERE de los maestros de ítems (sin is_deleted:
// estas tablas no llevan papelera).
func itemMasterWhere(filter repository.MasterFilter, searchCols ...string) (string, []any) {
	where := []string{"company_id = $1"}
	args := []any{filter.CompanyID}

	if filter.BranchID != "" {
		args = append(args, filter.BranchID)
		where = append(where, fmt.Sprintf("branch_id = $%d", len(args)))
	}
	if filter.IsActive != nil {
		args = append(args, *filter.IsActive)
		where = append(where, fmt.Sprintf("is_active = $%d", len(args)))
	}
	if filter.Search != "" && len(searchCols) > 0 {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		parts := make([]string, len(searchCols))
		for i, col := range searchCols {
			parts[i] = fmt.Sprintf("%s ILIKE $%d", col, n)
		}
		where = append(where, "("+strings.Join(parts, " OR ")+")")
	}
	return strings.Join(where, " AND "), args
}
