package dto

import (
	"time"

	"github.com/govindweb777/erp-sales-backend/internal/domain/entity"
)

// CreateUserRequest alta de usuario por el admin.
type CreateUserRequest struct {
	Name         string              `json:"name" validate:"required"`
	Email        string              `json:"email" validate:"required,email"`
	Password     string              `json:"password" validate:"omitempty,min=6"` // vacío genera una temporal
	PhoneNumber  string              `json:"phoneNumber"`
	Role         string              `json:"role" validate:"required,oneof=admin branch user user-panel"`
	BranchID     string              `json:"branchId"`
	ModuleAccess entity.ModuleAccess `json:"moduleAccess"`
}

// UpdateUserRequest edición parcial de usuario (punteros = campo no enviado).
type UpdateUserRequest struct {
	Name         string               `json:"name"`
	PhoneNumber  string               `json:"phoneNumber"`
	BranchID     *string              `json:"branchId"`
	Role         string               `json:"role" validate:"omitempty,oneof=admin branch user user-panel"`
	ModuleAccess *entity.ModuleAccess `json:"moduleAccess"`
	ProfilePic   string               `json:"profilePic"`
}

// CreateUserResponse usuario creado; TempPassword solo viaja cuando se generó.
type CreateUserResponse struct {
	User         UserResponse `json:"user"`
	TempPassword string       `json:"tempPassword,omitempty"`
}

// BranchRequest body de create/update de sucursal.
type BranchRequest struct {
	BranchName        string             `json:"branchName" validate:"required"`
	Address           string             `json:"address"`
	PhoneNumber       string             `json:"phoneNumber"`
	Email             string             `json:"email" validate:"omitempty,email"`
	BranchManagerName string             `json:"branchManagerName"`
	OpeningHours      string             `json:"openingHours"`
	EstablishedDate   string             `json:"establishedDate" validate:"omitempty,datetime=2006-01-02"`
	ServicesOffered   []string           `json:"servicesOffered"`
	Location          entity.GeoLocation `json:"location"`
	IsHeadOffice      bool               `json:"isHeadOffice"`
}

// BranchResponse sucursal en respuestas.
type BranchResponse struct {
	ID                string             `json:"id"`
	CompanyID         string             `json:"companyId"`
	BranchName        string             `json:"branchName"`
	BranchCode        string             `json:"branchCode"`
	Address           string             `json:"address,omitempty"`
	PhoneNumber       string             `json:"phoneNumber,omitempty"`
	Email             string             `json:"email,omitempty"`
	BranchManagerName string             `json:"branchManagerName,omitempty"`
	OpeningHours      string             `json:"openingHours,omitempty"`
	EstablishedDate   *time.Time         `json:"establishedDate,omitempty"`
	NoOfUsers         int                `json:"noOfUsers"`
	ServicesOffered   []string           `json:"servicesOffered,omitempty"`
	Location          entity.GeoLocation `json:"location"`
	IsHeadOffice      bool               `json:"isHeadOffice"`
	IsActive          bool               `json:"isActive"`
	IsDeleted         bool               `json:"isDeleted"`
	CreatedAt         time.Time          `json:"createdAt"`
}

// FromBranch mapea la entidad a su DTO de respuesta.
func FromBranch(b *entity.Branch) BranchResponse {
	return BranchResponse{
		ID:                b.ID,
		CompanyID:         b.CompanyID,
		BranchName:        b.BranchName,
		BranchCode:        b.BranchCode,
		Address:           b.Address,
		PhoneNumber:       b.PhoneNumber,
		Email:             b.Email,
		BranchManagerName: b.BranchManagerName,
		OpeningHours:      b.OpeningHours,
		EstablishedDate:   b.EstablishedDate,
		NoOfUsers:         b.NoOfUsers,
		ServicesOffered:   b.ServicesOffered,
		Location:          b.Location,
		IsHeadOffice:      b.IsHeadOffice,
		IsActive:          b.IsActive,
		IsDeleted:         b.IsDeleted,
		CreatedAt:         b.CreatedAt,
	}
}

// CompanyRequest edición de los datos de la empresa.
type CompanyRequest struct {
	CompanyName      string `json:"companyName" validate:"required"`
	RegistrationType string `json:"registrationType"`
	BusinessType     string `json:"businessType"`
	GSTIN            string `json:"gstin"`
	EstablishedFrom  string `json:"establishedFrom" validate:"omitempty,datetime=2006-01-02"`
	Address          string `json:"address"`
	Phone            string `json:"phone"`
	Email            string `json:"email" validate:"omitempty,email"`
	Logo             string `json:"logo"`
}

// CompanyResponse empresa en respuestas.
type CompanyResponse struct {
	ID               string     `json:"id"`
	CompanyName      string     `json:"companyName"`
	RegistrationType string     `json:"registrationType,omitempty"`
	BusinessType     string     `json:"businessType,omitempty"`
	GSTIN            string     `json:"gstin,omitempty"`
	EstablishedFrom  *time.Time `json:"establishedFrom,omitempty"`
	Address          string     `json:"address,omitempty"`
	Phone            string     `json:"phone,omitempty"`
	Email            string     `json:"email,omitempty"`
	Logo             string     `json:"logo,omitempty"`
	IsActive         bool       `json:"isActive"`
	CreatedAt        time.Time  `json:"createdAt"`
}

// FromCompany mapea la entidad a su DTO de respuesta.
func FromCompany(c *entity.Company) CompanyResponse {
	return CompanyResponse{
		ID:               c.ID,
		CompanyName:      c.CompanyName,
		RegistrationType: c.RegistrationType,
		BusinessType:     c.BusinessType,
		GSTIN:            c.GSTIN,
		EstablishedFrom:  c.EstablishedFrom,
		Address:          c.Address,
		Phone:            c.Contact.Phone,
		Email:            c.Contact.Email,
		Logo:             c.Logo,
		IsActive:         c.IsActive,
		CreatedAt:        c.CreatedAt,
	}
}

// DashboardResponse contadores del tablero del admin.
type DashboardResponse struct {
	TotalUsers      int64 `json:"totalUsers"`
	ActiveUsers     int64 `json:"activeUsers"`
	TotalBranches   int64 `json:"totalBranches"`
	ActiveBranches  int64 `json:"activeBranches"`
	TotalSales      int64 `json:"totalSales"`
	TotalPurchases  int64 `json:"totalPurchases"`
	ItemsAvailable  int64 `json:"itemsAvailable"`
	ItemsSold       int64 `json:"itemsSold"`
}
