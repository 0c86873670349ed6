package repository

import "github.com/govindweb777/erp-sales-backend/internal/domain/entity"

// ItemFilter criterios de listado de ítems.
type ItemFilter struct {
	CompanyID string
	BranchID  string
	Search    string // item_code, item_name, project_name
	Status    string
	IsActive  *bool
	Deleted   bool
	Limit     int
	Offset    int
}

// ItemRepository define el puerto de persistencia para Item.
type ItemRepository interface {
	Create(item *entity.Item) error
	// GetByID retorna (nil, nil) si no existe.
	GetByID(id string) (*entity.Item, error)
	Update(item *entity.Item) error
	// UpdateState escribe status/stock solo si la versión persistida sigue
	// siendo expectedVersion; si otro escritor ganó retorna
	// domain.ErrConcurrency. Incrementa Version en el ítem al confirmar.
	UpdateState(item *entity.Item, expectedVersion int64) error
	List(filter ItemFilter) ([]*entity.Item, int64, error)
	SoftDelete(id string) error
	Restore(id string) error
}
