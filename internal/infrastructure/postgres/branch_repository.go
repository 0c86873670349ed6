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

var _ repository.BranchRepository = (*BranchRepo)(nil)

// BranchRepo implementación de BranchRepository (usable con pool o tx).
type BranchRepo struct {
	q Querier
}

// NewBranchRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBranchRepository(q Querier) *BranchRepo {
	return &BranchRepo{q: q}
}

const branchColumns = `
	id, company_id, branch_name, branch_code, address, phone_number, email,
	branch_manager_name, opening_hours, established_date, no_of_users,
	services_offered, latitude, longitude, is_head_office, is_active, is_deleted,
	created_at, updated_at`

// Create inserta la sucursal. Código duplicado retorna ErrDuplicate.
func (r *BranchRepo) Create(branch *entity.Branch) error {
	if branch.ID == "" {
		branch.ID = uuid.New().String()
	}
	query := `
		INSERT INTO branches (` + branchColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`
	_, err := r.q.Exec(context.Background(), query,
		branch.ID, branch.CompanyID, branch.BranchName, branch.BranchCode,
		nullIfEmpty(branch.Address), nullIfEmpty(branch.PhoneNumber), nullIfEmpty(branch.Email),
		nullIfEmpty(branch.BranchManagerName), nullIfEmpty(branch.OpeningHours),
		branch.EstablishedDate, branch.NoOfUsers, branch.ServicesOffered,
		branch.Location.Latitude, branch.Location.Longitude,
		branch.IsHeadOffice, branch.IsActive, branch.IsDeleted,
		branch.CreatedAt, branch.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert branch: %w", err)
	}
	return nil
}

// GetByID obtiene una sucursal por ID. Retorna (nil, nil) si no existe.
func (r *BranchRepo) GetByID(id string) (*entity.Branch, error) {
	query := `SELECT ` + branchColumns + ` FROM branches WHERE id = $1`
	branch, err := scanBranch(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get branch: %w", err)
	}
	return branch, nil
}

// Update reemplaza los campos mutables. El código nunca está en el SET.
func (r *BranchRepo) Update(branch *entity.Branch) error {
	query := `
		UPDATE branches
		SET branch_name         = $2,
		    address             = $3,
		    phone_number        = $4,
		    email               = $5,
		    branch_manager_name = $6,
		    opening_hours       = $7,
		    established_date    = $8,
		    services_offered    = $9,
		    latitude            = $10,
		    longitude           = $11,
		    is_head_office      = $12,
		    is_active           = $13,
		    updated_at          = $14
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		branch.ID, branch.BranchName,
		nullIfEmpty(branch.Address), nullIfEmpty(branch.PhoneNumber), nullIfEmpty(branch.Email),
		nullIfEmpty(branch.BranchManagerName), nullIfEmpty(branch.OpeningHours),
		branch.EstablishedDate, branch.ServicesOffered,
		branch.Location.Latitude, branch.Location.Longitude,
		branch.IsHeadOffice, branch.IsActive, branch.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update branch: %w", err)
	}
	return nil
}

// List retorna la página y el total que matchea el filtro.
func (r *BranchRepo) List(filter repository.BranchFilter) ([]*entity.Branch, int64, error) {
	where := []string{"company_id = $1", "is_deleted = $2"}
	args := []any{filter.CompanyID, filter.Deleted}

	if filter.IsActive != nil {
		args = append(args, *filter.IsActive)
		where = append(where, fmt.Sprintf("is_active = $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		where = append(where, fmt.Sprintf("(branch_name ILIKE $%d OR branch_code ILIKE $%d)", n, n))
	}
	cond := strings.Join(where, " AND ")

	var total int64
	if err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM branches WHERE `+cond, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count branches: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	args = append(args, limit, filter.Offset)
	query := fmt.Sprintf(`SELECT %s FROM branches WHERE %s
		ORDER BY branch_code LIMIT $%d OFFSET $%d`, branchColumns, cond, len(args)-1, len(args))

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list branches: %w", err)
	}
	defer rows.Close()

	var branches []*entity.Branch
	for rows.Next() {
		branch, err := scanBranch(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan branch: %w", err)
		}
		branches = append(branches, branch)
	}
	return branches, total, rows.Err()
}

// AdjustUserCount suma delta (puede ser negativo) a no_of_users.
func (r *BranchRepo) AdjustUserCount(branchID string, delta int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE branches SET no_of_users = GREATEST(no_of_users + $2, 0), updated_at = NOW() WHERE id = $1`,
		branchID, delta)
	if err != nil {
		return fmt.Errorf("adjust branch user count: %w", err)
	}
	return nil
}

// SoftDelete manda la sucursal a la papelera.
func (r *BranchRepo) SoftDelete(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE branches SET is_deleted = TRUE, is_active = FALSE, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("soft delete branch: %w", err)
	}
	return nil
}

// Restore saca la sucursal de la papelera.
func (r *BranchRepo) Restore(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE branches SET is_deleted = FALSE, is_active = TRUE, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("restore branch: %w", err)
	}
	return nil
}

func scanBranch(row pgx.Row) (*entity.Branch, error) {
	var branch entity.Branch
	var address, phoneNumber, email, managerName, openingHours *string

	err := row.Scan(
		&branch.ID, &branch.CompanyID, &branch.BranchName, &branch.BranchCode,
		&address, &phoneNumber, &email, &managerName, &openingHours,
		&branch.EstablishedDate, &branch.NoOfUsers, &branch.ServicesOffered,
		&branch.Location.Latitude, &branch.Location.Longitude,
		&branch.IsHeadOffice, &branch.IsActive, &branch.IsDeleted,
		&branch.CreatedAt, &branch.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	branch.Address = derefStr(address)
	branch.PhoneNumber = derefStr(phoneNumber)
	branch.Email = derefStr(email)
	branch.BranchManagerName = derefStr(managerName)
	branch.OpeningHours = derefStr(openingHours)
	return &branch, nil
}
