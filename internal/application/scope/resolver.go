package scope

import (
	"github.com/govindweb777/erp-sales-backend/internal/domain"
	"github.com/govindweb777/erp-sales-backend/internal/domain/entity"
)

// Principal identidad resuelta del request. CompanyID y BranchID salen del
// usuario persistido, nunca del token: el JWT solo acredita userId y rol, y
// cambiar la sucursal de un usuario surte efecto en su siguiente request.
type Principal struct {
	UserID    string
	CompanyID string
	BranchID  string
	Role      string
}

// Filter alcance efectivo de una lectura. BranchID vacío = toda la empresa.
type Filter struct {
	CompanyID string
	BranchID  string
}

// ForRead resuelve el alcance de lectura del principal.
//
//   - admin y user-panel leen toda la empresa; un requestedBranchID explícito
//     la acota a esa sucursal.
//   - branch y user quedan confinados a su propia sucursal; cualquier
//     requestedBranchID del caller se ignora (no es error: nunca se amplía el
//     alcance por parámetro).
//
// Un rol desconocido retorna domain.ErrUnauthorized: ante la duda, sin acceso.
func ForRead(p Principal, requestedBranchID string) (Filter, error) {
	switch p.Role {
	case entity.RoleAdmin, entity.RoleUserPanel:
		return Filter{CompanyID: p.CompanyID, BranchID: requestedBranchID}, nil
	case entity.RoleBranch, entity.RoleUser:
		return Filter{CompanyID: p.CompanyID, BranchID: p.BranchID}, nil
	default:
		return Filter{}, domain.ErrUnauthorized
	}
}

// ForWrite resuelve el (companyId, branchId) que debe llevar un documento
// nuevo. branch y user escriben siempre en su sucursal; admin y user-panel
// pueden apuntar a una sucursal pedida, pero deben nombrar alguna.
func ForWrite(p Principal, requestedBranchID string) (Filter, error) {
	switch p.Role {
	case entity.RoleAdmin, entity.RoleUserPanel:
		if requestedBranchID == "" {
			return Filter{}, domain.ErrInvalidInput
		}
		return Filter{CompanyID: p.CompanyID, BranchID: requestedBranchID}, nil
	case entity.RoleBranch, entity.RoleUser:
		return Filter{CompanyID: p.CompanyID, BranchID: p.BranchID}, nil
	default:
		return Filter{}, domain.ErrUnauthorized
	}
}

// CanAccess indica si el principal puede ver un recurso de la sucursal dada.
// Se usa en gets puntuales: un recurso fuera de alcance se reporta como
// inexistente, nunca como prohibido.
func CanAccess(p Principal, branchID string) bool {
	switch p.Role {
	case entity.RoleAdmin, entity.RoleUserPanel:
		return true
	case entity.RoleBranch, entity.RoleUser:
		return p.BranchID == branchID
	default:
		return false
	}
}
