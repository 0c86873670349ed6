package repository

import "github.com/govindweb777/erp-sales-backend/internal/domain/entity"

// CompanyRepository define el puerto de persistencia para Company.
type CompanyRepository interface {
	Create(company *entity.Company) error
	// GetByID retorna (nil, nil) si no existe.
	GetByID(id string) (*entity.Company, error)
	Update(company *entity.Company) error
}
