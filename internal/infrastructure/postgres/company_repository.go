package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/govindweb777/erp-sales-backend/internal/domain/entity"
	"github.com/govindweb777/erp-sales-backend/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación de CompanyRepository (usable con pool o tx).
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

const companyColumns = `
	id, company_name, registration_type, business_type, gstin, established_from,
	address, contact, logo, is_active, created_at, updated_at`

// Create inserta la empresa (solo durante el registro).
func (r *CompanyRepo) Create(company *entity.Company) error {
	if company.ID == "" {
		company.ID = uuid.New().String()
	}
	contact, err := json.Marshal(company.Contact)
	if err != nil {
		return fmt.Errorf("marshal company contact: %w", err)
	}
	query := `
		INSERT INTO companies (` + companyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err = r.q.Exec(context.Background(), query,
		company.ID, company.CompanyName,
		nullIfEmpty(company.RegistrationType), nullIfEmpty(company.BusinessType),
		nullIfEmpty(company.GSTIN), company.EstablishedFrom,
		nullIfEmpty(company.Address), contact, nullIfEmpty(company.Logo),
		company.IsActive, company.CreatedAt, company.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID obtiene la empresa por ID. Retorna (nil, nil) si no existe.
func (r *CompanyRepo) GetByID(id string) (*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = $1`

	var company entity.Company
	var registrationType, businessType, gstin, address, logo *string
	var contact []byte

	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&company.ID, &company.CompanyName, &registrationType, &businessType,
		&gstin, &company.EstablishedFrom, &address, &contact, &logo,
		&company.IsActive, &company.CreatedAt, &company.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}

	company.RegistrationType = derefStr(registrationType)
	company.BusinessType = derefStr(businessType)
	company.GSTIN = derefStr(gstin)
	company.Address = derefStr(address)
	company.Logo = derefStr(logo)

	if len(contact) > 0 {
		if err := json.Unmarshal(contact, &company.Contact); err != nil {
			return nil, fmt.Errorf("unmarshal company contact: %w", err)
		}
	}
	return &company, nil
}

// Update reemplaza los campos mutables de la empresa.
func (r *CompanyRepo) Update(company *entity.Company) error {
	contact, err := json.Marshal(company.Contact)
	if err != nil {
		return fmt.Errorf("marshal company contact: %w", err)
	}
	query := `
		UPDATE companies
		SET company_name      = $2,
		    registration_type = $3,
		    business_type     = $4,
		    gstin             = $5,
		    established_from  = $6,
		    address           = $7,
		    contact           = $8,
		    logo              = $9,
		    is_active         = $10,
		    updated_at        = $11
		WHERE id = $1`
	_, err = r.q.Exec(context.Background(), query,
		company.ID, company.CompanyName,
		nullIfEmpty(company.RegistrationType), nullIfEmpty(company.BusinessType),
		nullIfEmpty(company.GSTIN), company.EstablishedFrom,
		nullIfEmpty(company.Address), contact, nullIfEmpty(company.Logo),
		company.IsActive, company.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update company: %w", err)
	}
	return nil
}
