package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/govindweb777/erp-sales-backend/internal/domain"
	"github.com/govindweb777/erp-sales-backend/internal/domain/entity"
	"github.com/govindweb777/erp-sales-backend/internal/domain/repository"
)

var _ repository.ItemCategoryRepository = (*ItemCategoryRepo)(nil)

// ItemCategoryRepo implementación de ItemCategoryRepository.
type ItemCategoryRepo struct {
	q Querier
}

// NewItemCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewItemCategoryRepository(q Querier) *ItemCategoryRepo {
	return &ItemCategoryRepo{q: q}
}

const itemCategoryColumns = `
	id, company_id, branch_id, name, description, is_active, created_at, updated_at`

func (r *ItemCategoryRepo) Create(category *entity.ItemCategory) error {
	if category.ID == "" {
		category.ID = uuid.New().String()
	}
	query := `
		INSERT INTO item_categories (` + itemCategoryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		category.ID, category.CompanyID, category.BranchID, category.Name,
		nullIfEmpty(category.Description), category.IsActive,
		category.CreatedAt, category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert item category: %w", err)
	}
	return nil
}

// GetByID retorna (nil, nil) si no existe.
func (r *ItemCategoryRepo) GetByID(id string) (*entity.ItemCategory, error) {
	query := `SELECT ` + itemCategoryColumns + ` FROM item_categories WHERE id = $1`
	category, err := scanItemCategory(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item category: %w", err)
	}
	return category, nil
}

func (r *ItemCategoryRepo) Update(category *entity.ItemCategory) error {
	query := `
		UPDATE item_categories
		SET name        = $2,
		    description = $3,
		    is_active   = $4,
		    updated_at  = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		category.ID, category.Name, nullIfEmpty(category.Description),
		category.IsActive, category.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update item category: %w", err)
	}
	return nil
}

// List retorna la página y el total que matchea el filtro.
func (r *ItemCategoryRepo) List(filter repository.MasterFilter) ([]*entity.ItemCategory, int64, error) {
	cond, args := itemMasterWhere(filter, "name")

	var total int64
	if err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM item_categories WHERE `+cond, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count item categories: %w", err)
	}

	args = append(args, masterLimit(filter), filter.Offset)
	query := fmt.Sprintf(`SELECT %s FROM item_categories WHERE %s
		ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, itemCategoryColumns, cond, len(args)-1, len(args))

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list item categories: %w", err)
	}
	defer rows.Close()

	var categories []*entity.ItemCategory
	for rows.Next() {
		category, err := scanItemCategory(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan item category: %w", err)
		}
		categories = append(categories, category)
	}
	return categories, total, rows.Err()
}

// Delete elimina la fila definitivamente.
func (r *ItemCategoryRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM item_categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item category: %w", err)
	}
	return nil
}

func scanItemCategory(row pgx.Row) (*entity.ItemCategory, error) {
	var category entity.ItemCategory
	var description *string

	err := row.Scan(
		&category.ID, &category.CompanyID, &category.BranchID, &category.Name,
		&description, &category.IsActive, &category.CreatedAt, &category.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	category.Description = derefStr(description)
	return &category, nil
}
