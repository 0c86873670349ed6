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

var _ repository.ChartOfAccountRepository = (*ChartOfAccountRepo)(nil)

// ChartOfAccountRepo implementación de ChartOfAccountRepository.
type ChartOfAccountRepo struct {
	q Querier
}

// NewChartOfAccountRepository construye el adaptador. Pasar pool o tx (Querier).
func NewChartOfAccountRepository(q Querier) *ChartOfAccountRepo {
	return &ChartOfAccountRepo{q: q}
}

const chartOfAccountColumns = `
	id, company_id, branch_id, name, group_type, parent_group_id, statement,
	nature, is_system_defined, is_active, is_deleted, created_at, updated_at`

func (r *ChartOfAccountRepo) Create(account *entity.ChartOfAccount) error {
	if account.ID == "" {
		account.ID = uuid.New().String()
	}
	query := `
		INSERT INTO chart_of_accounts (` + chartOfAccountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		account.ID, account.CompanyID, account.BranchID, account.Name,
		account.GroupType, nullIfEmpty(account.ParentGroupID),
		nullIfEmpty(account.Statement), nullIfEmpty(account.Nature),
		account.IsSystemDefined, account.IsActive, account.IsDeleted,
		account.CreatedAt, account.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert chart of account: %w", err)
	}
	return nil
}

// GetByID retorna (nil, nil) si no existe.
func (r *ChartOfAccountRepo) GetByID(id string) (*entity.ChartOfAccount, error) {
	query := `SELECT ` + chartOfAccountColumns + ` FROM chart_of_accounts WHERE id = $1`
	account, err := scanChartOfAccount(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get chart of account: %w", err)
	}
	return account, nil
}

func (r *ChartOfAccountRepo) Update(account *entity.ChartOfAccount) error {
	query := `
		UPDATE chart_of_accounts
		SET name            = $2,
		    group_type      = $3,
		    parent_group_id = $4,
		    statement       = $5,
		    nature          = $6,
		    is_active       = $7,
		    updated_at      = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		account.ID, account.Name, account.GroupType,
		nullIfEmpty(account.ParentGroupID), nullIfEmpty(account.Statement),
		nullIfEmpty(account.Nature), account.IsActive, account.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update chart of account: %w", err)
	}
	return nil
}

// List retorna la página y el total que matchea el filtro.
func (r *ChartOfAccountRepo) List(filter repository.MasterFilter) ([]*entity.ChartOfAccount, int64, error) {
	cond, args := masterWhere(filter, "name")

	var total int64
	if err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM chart_of_accounts WHERE `+cond, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count chart of accounts: %w", err)
	}

	args = append(args, masterLimit(filter), filter.Offset)
	query := fmt.Sprintf(`SELECT %s FROM chart_of_accounts WHERE %s
		ORDER BY name LIMIT $%d OFFSET $%d`, chartOfAccountColumns, cond, len(args)-1, len(args))

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list chart of accounts: %w", err)
	}
	defer rows.Close()

	var accounts []*entity.ChartOfAccount
	for rows.Next() {
		account, err := scanChartOfAccount(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan chart of account: %w", err)
		}
		accounts = append(accounts, account)
	}
	return accounts, total, rows.Err()
}

func (r *ChartOfAccountRepo) SoftDelete(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE chart_of_accounts SET is_deleted = TRUE, is_active = FALSE, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("soft delete chart of account: %w", err)
	}
	return nil
}

func (r *ChartOfAccountRepo) Restore(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE chart_of_accounts SET is_deleted = FALSE, is_active = TRUE, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("restore chart of account: %w", err)
	}
	return nil
}

func scanChartOfAccount(row pgx.Row) (*entity.ChartOfAccount, error) {
	var account entity.ChartOfAccount
	var parentGroupID, statement, nature *string

	err := row.Scan(
		&account.ID, &account.CompanyID, &account.BranchID, &account.Name,
		&account.GroupType, &parentGroupID, &statement, &nature,
		&account.IsSystemDefined, &account.IsActive, &account.IsDeleted,
		&account.CreatedAt, &account.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	account.ParentGroupID = derefStr(parentGroupID)
	account.Statement = derefStr(statement)
	account.Nature = derefStr(nature)
	return &account, nil
}

// masterWhere arma la cláusula WHERE compartida por los maestros contables.
// searchCols son las columnas comparadas con ILIKE cuando hay búsqueda.
func masterWhere(filter repository.MasterFilter, searchCols ...string) (string, []any) {
	where := []string{"company_id = $1", "is_deleted = $2"}
	args := []any{filter.CompanyID, filter.Deleted}

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

func masterLimit(filter repository.MasterFilter) int {
	if filter.Limit <= 0 {
		return 20
	}
	return filter.Limit
}
