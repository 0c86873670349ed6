package domain

import "errors"

// Errores de dominio (sin dependencias externas). Los handlers HTTP los
// traducen a código de error + status; los repositorios los producen al
// mapear errores de infraestructura (ej. violación de constraint único).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")

	// ErrImbalancedEntry: la suma de débitos no es igual a la suma de créditos
	// en un documento tipo asiento (journal voucher, contra entry).
	ErrImbalancedEntry = errors.New("el total débito debe ser igual al total crédito")

	// ErrDuplicateDocumentNo: colisión de número de documento dentro del
	// alcance (companyId, branchId, tipo de documento).
	ErrDuplicateDocumentNo = errors.New("el número de documento ya existe")

	// ErrItemUnavailable: el ítem referenciado ya fue vendido o no existe.
	ErrItemUnavailable = errors.New("el ítem no está disponible")

	// ErrConcurrency: conflicto de lock optimista (versión del ítem cambió
	// entre la lectura y la escritura). El caller debe reintentar.
	ErrConcurrency = errors.New("conflicto de concurrencia, reintente la operación")
)
