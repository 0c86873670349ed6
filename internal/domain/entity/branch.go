package entity

import "time"

// GeoLocation coordenadas de la sucursal.
type GeoLocation struct {
	Latitude  float64 `json:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty"`
}

// Branch sub-tenant bajo una Company. El código (BR00001, monotónico por
// empresa) se genera con el mismo contador atómico de secuencias que los
// documentos. Se borra en modo soft (oculta y desactiva sus usuarios) y es
// restaurable.
type Branch struct {
	ID                string
	CompanyID         string
	BranchName        string
	BranchCode        string
	Address           string
	PhoneNumber       string
	Email             string
	BranchManagerName string
	OpeningHours      string
	EstablishedDate   *time.Time
	NoOfUsers         int
	ServicesOffered   []string
	Location          GeoLocation
	IsHeadOffice      bool
	IsActive          bool
	IsDeleted         bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
