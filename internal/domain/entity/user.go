package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin     = "admin"      // alcance de toda la empresa
	RoleBranch    = "branch"     // gerente, confinado a su sucursal
	RoleUser      = "user"       // operador, confinado a su sucursal
	RoleUserPanel = "user-panel" // lectura a nivel empresa, limitado por moduleAccess
)

// ModuleAccess capacidades por módulo para el rol user-panel.
type ModuleAccess struct {
	IsDashboard        bool `json:"isDashboard"`
	IsUserManagement   bool `json:"isUserManagement"`
	IsBranchManagement bool `json:"isBranchManagement"`
	IsReports          bool `json:"isReports"`
	IsSettings         bool `json:"isSettings"`
}

// User principal del sistema (pertenece a una Company; branch/user
// referencian además una Branch). IsActive gobierna la elegibilidad de login.
type User struct {
	ID           string
	CompanyID    string
	BranchID     string // vacío para admin / user-panel
	Name         string
	Email        string
	PasswordHash string // bcrypt, nunca plano después de persistir
	PhoneNumber  string
	Role         string
	ModuleAccess ModuleAccess
	ProfilePic   string
	IsActive     bool
	ResetToken   string // hash del token de reseteo, transitorio
	ResetExpiry  *time.Time
	LastLogin    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
