package repository

import "github.com/govindweb777/erp-sales-backend/internal/domain/entity"

// MasterFilter criterios de listado compartidos por los maestros contables.
type MasterFilter struct {
	CompanyID string
	BranchID  string
	Search    string
	IsActive  *bool
	Deleted   bool
	Limit     int
	Offset    int
}

// ChartOfAccountRepository puerto de persistencia del plan de cuentas.
type ChartOfAccountRepository interface {
	Create(account *entity.ChartOfAccount) error
	GetByID(id string) (*entity.ChartOfAccount, error)
	Update(account *entity.ChartOfAccount) error
	List(filter MasterFilter) ([]*entity.ChartOfAccount, int64, error)
	SoftDelete(id string) error
	Restore(id string) error
}

// AccountGroupRepository puerto de persistencia de grupos de cuenta (terceros).
type AccountGroupRepository interface {
	Create(group *entity.AccountGroup) error
	GetByID(id string) (*entity.AccountGroup, error)
	Update(group *entity.AccountGroup) error
	List(filter MasterFilter) ([]*entity.AccountGroup, int64, error)
	SoftDelete(id string) error
	Restore(id string) error
}

// BankAccountRepository puerto de persistencia de cuentas bancarias.
type BankAccountRepository interface {
	Create(account *entity.BankAccount) error
	GetByID(id string) (*entity.BankAccount, error)
	Update(account *entity.BankAccount) error
	List(filter MasterFilter) ([]*entity.BankAccount, int64, error)
	SoftDelete(id string) error
	Restore(id string) error
}
