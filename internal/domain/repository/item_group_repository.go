package repository

import "github.com/govindweb777/erp-sales-backend/internal/domain/entity"

// ItemGroupRepository puerto de persistencia de grupos de ítems. Estos
// maestros no llevan papelera: Delete elimina la fila (el campo Deleted del
// filtro se ignora).
type ItemGroupRepository interface {
	Create(group *entity.ItemGroup) error
	GetByID(id string) (*entity.ItemGroup, error)
	Update(group *entity.ItemGroup) error
	List(filter MasterFilter) ([]*entity.ItemGroup, int64, error)
	Delete(id string) error
}

// ItemCategoryRepository puerto de persistencia de categorías de ítems.
type ItemCategoryRepository interface {
	Create(category *entity.ItemCategory) error
	GetByID(id string) (*entity.ItemCategory, error)
	Update(category *entity.ItemCategory) error
	List(filter MasterFilter) ([]*entity.ItemCategory, int64, error)
	Delete(id string) error
}
