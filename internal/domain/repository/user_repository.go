package repository

import "github.com/govindweb777/erp-sales-backend/internal/domain/entity"

// UserFilter criterios de listado de usuarios.
type UserFilter struct {
	CompanyID string
	BranchID  string
	Role      string
	Search    string // name, email
	IsActive  *bool
	Limit     int
	Offset    int
}

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	// GetByID retorna (nil, nil) si no existe.
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	GetByResetToken(tokenHash string) (*entity.User, error)
	Update(user *entity.User) error
	List(filter UserFilter) ([]*entity.User, int64, error)
	// SetActiveByBranch activa o desactiva en bloque los usuarios de una
	// sucursal (cascada de soft delete de Branch).
	SetActiveByBranch(branchID string, active bool) error
	Delete(id string) error
}
