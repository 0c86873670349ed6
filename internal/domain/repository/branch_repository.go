package repository

import "github.com/govindweb777/erp-sales-backend/internal/domain/entity"

// BranchFilter criterios de listado de sucursales.
type BranchFilter struct {
	CompanyID string
	Search    string // branch_name, branch_code
	IsActive  *bool
	Deleted   bool
	Limit     int
	Offset    int
}

// BranchRepository define el puerto de persistencia para Branch.
type BranchRepository interface {
	Create(branch *entity.Branch) error
	// GetByID retorna (nil, nil) si no existe.
	GetByID(id string) (*entity.Branch, error)
	Update(branch *entity.Branch) error
	List(filter BranchFilter) ([]*entity.Branch, int64, error)
	// AdjustUserCount suma delta (puede ser negativo) a no_of_users.
	AdjustUserCount(branchID string, delta int) error
	SoftDelete(id string) error
	Restore(id string) error
}
