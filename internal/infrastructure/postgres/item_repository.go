package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/govindweb777/erp-sales-backend/internal/domain"
	"github.com/govindweb777/erp-sales-backend/internal/domain/entity"
	"github.com/govindweb777/erp-sales-backend/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación de ItemRepository (usable con pool o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

const itemColumns = `
	id, company_id, branch_id, item_code, item_name, property_type, project_name,
	area, hsn_code, rate_per_unit, total_price, booking_amount, status,
	opening_stock, current_stock, description, show_in_sales, group_id, category_id,
	is_active, is_deleted, version, created_at, updated_at`

// Create inserta el ítem.
func (r *ItemRepo) Create(item *entity.Item) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	area, err := json.Marshal(item.Area)
	if err != nil {
		return fmt.Errorf("marshal area: %w", err)
	}
	query := `
		INSERT INTO items (` + itemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
		        $15, $16, $17, $18, $19, $20, $21, $22, $23, $24)`
	_, err = r.q.Exec(context.Background(), query,
		item.ID, item.CompanyID, item.BranchID, item.ItemCode, item.ItemName,
		nullIfEmpty(item.PropertyType), nullIfEmpty(item.ProjectName),
		area, nullIfEmpty(item.HSNCode), item.RatePerUnit, item.TotalPrice, item.BookingAmount, item.Status,
		item.OpeningStock, item.CurrentStock, nullIfEmpty(item.Description), item.ShowInSales,
		nullIfEmpty(item.GroupID), nullIfEmpty(item.CategoryID),
		item.IsActive, item.IsDeleted, item.Version, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByID obtiene un ítem por ID. Retorna (nil, nil) si no existe.
func (r *ItemRepo) GetByID(id string) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1`
	item, err := scanItem(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return item, nil
}

// Update escribe los datos maestros del ítem. No toca status, stock ni
// versión: eso es exclusivo de UpdateState.
func (r *ItemRepo) Update(item *entity.Item) error {
	area, err := json.Marshal(item.Area)
	if err != nil {
		return fmt.Errorf("marshal area: %w", err)
	}
	query := `
		UPDATE items
		SET item_code      = $2,
		    item_name      = $3,
		    property_type  = $4,
		    project_name   = $5,
		    area           = $6,
		    hsn_code       = $7,
		    rate_per_unit  = $8,
		    total_price    = $9,
		    booking_amount = $10,
		    description    = $11,
		    show_in_sales  = $12,
		    group_id       = $13,
		    category_id    = $14,
		    updated_at     = $15
		WHERE id = $1`
	_, err = r.q.Exec(context.Background(), query,
		item.ID, item.ItemCode, item.ItemName,
		nullIfEmpty(item.PropertyType), nullIfEmpty(item.ProjectName), area,
		nullIfEmpty(item.HSNCode), item.RatePerUnit, item.TotalPrice, item.BookingAmount,
		nullIfEmpty(item.Description), item.ShowInSales,
		nullIfEmpty(item.GroupID), nullIfEmpty(item.CategoryID), item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	return nil
}

// UpdateState escribe status y stock con escritura condicional por versión.
// Si la versión persistida ya no es expectedVersion otro escritor ganó y se
// retorna domain.ErrConcurrency: el caller decide si reintenta o aborta.
func (r *ItemRepo) UpdateState(item *entity.Item, expectedVersion int64) error {
	query := `
		UPDATE items
		SET status        = $2,
		    current_stock = $3,
		    version       = version + 1,
		    updated_at    = NOW()
		WHERE id = $1 AND version = $4`
	tag, err := r.q.Exec(context.Background(), query,
		item.ID, item.Status, item.CurrentStock, expectedVersion,
	)
	if err != nil {
		return fmt.Errorf("update item state: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrConcurrency
	}
	item.Version = expectedVersion + 1
	return nil
}

// List retorna la página y el total que matchea el filtro.
func (r *ItemRepo) List(filter repository.ItemFilter) ([]*entity.Item, int64, error) {
	where := []string{"company_id = $1", "is_deleted = $2"}
	args := []any{filter.CompanyID, filter.Deleted}

	if filter.BranchID != "" {
		args = append(args, filter.BranchID)
		where = append(where, fmt.Sprintf("branch_id = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.IsActive != nil {
		args = append(args, *filter.IsActive)
		where = append(where, fmt.Sprintf("is_active = $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		where = append(where, fmt.Sprintf("(item_code ILIKE $%d OR item_name ILIKE $%d OR project_name ILIKE $%d)", n, n, n))
	}
	cond := strings.Join(where, " AND ")

	var total int64
	if err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM items WHERE `+cond, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count items: %w", err)
	}

	args = append(args, filter.Limit, filter.Offset)
	query := fmt.Sprintf(`SELECT %s FROM items WHERE %s
		ORDER BY item_code LIMIT $%d OFFSET $%d`, itemColumns, cond, len(args)-1, len(args))

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var items []*entity.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, item)
	}
	return items, total, rows.Err()
}

// SoftDelete manda el ítem a la papelera.
func (r *ItemRepo) SoftDelete(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE items SET is_deleted = TRUE, is_active = FALSE, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("soft delete item: %w", err)
	}
	return nil
}

// Restore saca el ítem de la papelera.
func (r *ItemRepo) Restore(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE items SET is_deleted = FALSE, is_active = TRUE, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("restore item: %w", err)
	}
	return nil
}

func scanItem(row pgx.Row) (*entity.Item, error) {
	var item entity.Item
	var propertyType, projectName, hsnCode, description, groupID, categoryID *string
	var area []byte

	err := row.Scan(
		&item.ID, &item.CompanyID, &item.BranchID, &item.ItemCode, &item.ItemName,
		&propertyType, &projectName, &area, &hsnCode,
		&item.RatePerUnit, &item.TotalPrice, &item.BookingAmount, &item.Status,
		&item.OpeningStock, &item.CurrentStock, &description, &item.ShowInSales,
		&groupID, &categoryID,
		&item.IsActive, &item.IsDeleted, &item.Version, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	item.PropertyType = derefStr(propertyType)
	item.ProjectName = derefStr(projectName)
	item.HSNCode = derefStr(hsnCode)
	item.Description = derefStr(description)
	item.GroupID = derefStr(groupID)
	item.CategoryID = derefStr(categoryID)

	if len(area) > 0 {
		if err := json.Unmarshal(area, &item.Area); err != nil {
			return nil, fmt.Errorf("unmarshal area: %w", err)
		}
	}
	return &item, nil
}
