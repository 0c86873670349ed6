package entity

import "time"

// ItemGroup agrupador de ítems de inventario (proyecto, torre, manzana).
// Los ítems lo referencian por GroupID; borrarlo no toca los ítems.
type ItemGroup struct {
	ID          string
	CompanyID   string
	BranchID    string
	Name        string
	ShortName   string
	Description string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ItemCategory categoría de ítems de inventario (residencial, comercial).
type ItemCategory struct {
	ID          string
	CompanyID   string
	BranchID    string
	Name        string
	Description string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
