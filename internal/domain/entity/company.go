package entity

import "time"

// Contact datos de contacto embebidos (empresa, sucursal, tercero de un documento).
type Contact struct {
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
}

// Company representa la organización raíz del tenant. Una Company posee
// sucursales (Branch) y usuarios (User); nunca se elimina en operación normal.
type Company struct {
	ID               string
	CompanyName      string
	RegistrationType string
	BusinessType     string
	GSTIN            string
	EstablishedFrom  *time.Time
	Address          string
	Contact          Contact
	Logo             string
	IsActive         bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
