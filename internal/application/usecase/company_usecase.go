package usecase

import (
	"time"

	"github.com/govindweb777/erp-sales-backend/internal/application/dto"
	"github.com/govindweb777/erp-sales-backend/internal/application/scope"
	"github.com/govindweb777/erp-sales-backend/internal/domain"
	"github.com/govindweb777/erp-sales-backend/internal/domain/entity"
	"github.com/govindweb777/erp-sales-backend/internal/domain/repository"
)

// CompanyUseCase lectura y edición de los datos de la empresa del principal.
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase construye el caso de uso.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// Get obtiene la empresa del principal.
func (uc *CompanyUseCase) Get(p scope.Principal) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(p.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.FromCompany(company)
	return &resp, nil
}

// Update edita los datos de la empresa del principal.
func (uc *CompanyUseCase) Update(p scope.Principal, in dto.CompanyRequest) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(p.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}

	company.CompanyName = in.CompanyName
	company.RegistrationType = in.RegistrationType
	company.BusinessType = in.BusinessType
	company.GSTIN = in.GSTIN
	company.Address = in.Address
	company.Contact = entity.Contact{Phone: in.Phone, Email: in.Email, Address: in.Address}
	company.Logo = in.Logo
	if in.EstablishedFrom != "" {
		d, perr := time.Parse("2006-01-02", in.EstablishedFrom)
		if perr != nil {
			return nil, domain.ErrInvalidInput
		}
		company.EstablishedFrom = &d
	}
	company.UpdatedAt = time.Now().UTC()

	if err := uc.repo.Update(company); err != nil {
		return nil, err
	}
	resp := dto.FromCompany(company)
	return &resp, nil
}
