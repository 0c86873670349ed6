package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/govindweb777/erp-sales-backend/internal/domain/entity"
)

// ItemRequest body de create/update de ítem de inventario.
type ItemRequest struct {
	BranchID      string          `json:"branchId"`
	ItemCode      string          `json:"itemCode"`
	ItemName      string          `json:"itemName" validate:"required"`
	PropertyType  string          `json:"propertyType"`
	ProjectName   string          `json:"projectName"`
	Area          entity.ItemArea `json:"area"`
	HSNCode       string          `json:"hsnCode"`
	RatePerUnit   decimal.Decimal `json:"ratePerUnit"`
	TotalPrice    decimal.Decimal `json:"totalPrice"`
	BookingAmount decimal.Decimal `json:"bookingAmount"`
	OpeningStock  int64           `json:"openingStock" validate:"min=0"`
	Description   string          `json:"description"`
	ShowInSales   bool            `json:"showInSales"`
	GroupID       string          `json:"groupId"`
	CategoryID    string          `json:"categoryId"`
}

// ItemResponse ítem en respuestas.
type ItemResponse struct {
	ID            string          `json:"id"`
	CompanyID     string          `json:"companyId"`
	BranchID      string          `json:"branchId"`
	ItemCode      string          `json:"itemCode"`
	ItemName      string          `json:"itemName"`
	PropertyType  string          `json:"propertyType,omitempty"`
	ProjectName   string          `json:"projectName,omitempty"`
	Area          entity.ItemArea `json:"area"`
	HSNCode       string          `json:"hsnCode,omitempty"`
	RatePerUnit   decimal.Decimal `json:"ratePerUnit"`
	TotalPrice    decimal.Decimal `json:"totalPrice"`
	BookingAmount decimal.Decimal `json:"bookingAmount"`
	Status        string          `json:"status"`
	OpeningStock  int64           `json:"openingStock"`
	CurrentStock  int64           `json:"currentStock"`
	Description   string          `json:"description,omitempty"`
	ShowInSales   bool            `json:"showInSales"`
	GroupID       string          `json:"groupId,omitempty"`
	CategoryID    string          `json:"categoryId,omitempty"`
	IsActive      bool            `json:"isActive"`
	IsDeleted     bool            `json:"isDeleted"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// FromItem mapea la entidad a su DTO de respuesta.
func FromItem(i *entity.Item) ItemResponse {
	return ItemResponse{
		ID:            i.ID,
		CompanyID:     i.CompanyID,
		BranchID:      i.BranchID,
		ItemCode:      i.ItemCode,
		ItemName:      i.ItemName,
		PropertyType:  i.PropertyType,
		ProjectName:   i.ProjectName,
		Area:          i.Area,
		HSNCode:       i.HSNCode,
		RatePerUnit:   i.RatePerUnit,
		TotalPrice:    i.TotalPrice,
		BookingAmount: i.BookingAmount,
		Status:        i.Status,
		OpeningStock:  i.OpeningStock,
		CurrentStock:  i.CurrentStock,
		Description:   i.Description,
		ShowInSales:   i.ShowInSales,
		GroupID:       i.GroupID,
		CategoryID:    i.CategoryID,
		IsActive:      i.IsActive,
		IsDeleted:     i.IsDeleted,
		CreatedAt:     i.CreatedAt,
		UpdatedAt:     i.UpdatedAt,
	}
}

// ItemGroupRequest body de create/update de grupo de ítems.
type ItemGroupRequest struct {
	BranchID    string `json:"branchId"`
	Name        string `json:"name" validate:"required,max=100"`
	ShortName   string `json:"shortName" validate:"required,max=20"`
	Description string `json:"description" validate:"max=500"`
}

// ItemCategoryRequest body de create/update de categoría de ítems.
type ItemCategoryRequest struct {
	BranchID    string `json:"branchId"`
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=500"`
}

// ChartOfAccountRequest body de create/update de cuenta del plan.
type ChartOfAccountRequest struct {
	BranchID      string `json:"branchId"`
	Name          string `json:"name" validate:"required"`
	GroupType     string `json:"groupType" validate:"required,oneof=PRIMARY GROUP SUBGROUP"`
	ParentGroupID string `json:"parentGroupId"`
	Statement     string `json:"statement" validate:"omitempty,oneof=BALANCE_SHEET PROFIT_AND_LOSS"`
	Nature        string `json:"nature" validate:"omitempty,oneof=ASSETS LIABILITIES INCOME EXPENSES"`
}

// AccountGroupRequest body de create/update de grupo de cuenta (tercero).
type AccountGroupRequest struct {
	BranchID           string                `json:"branchId"`
	ChartOfAccountID   string                `json:"chartOfAccountId"`
	UnderGroup         string                `json:"underGroup"`
	GroupName          string                `json:"groupName" validate:"required"`
	ShortName          string                `json:"shortName"`
	GSTIN              string                `json:"gstin"`
	PAN                string                `json:"pan"`
	NatureOfBusiness   string                `json:"natureOfBusiness"`
	CreditPeriodDays   int                   `json:"creditPeriodDays" validate:"min=0"`
	CreditLimit        decimal.Decimal       `json:"creditLimit"`
	DefaultPaymentMode string                `json:"defaultPaymentMode"`
	Phone              string                `json:"phone"`
	Email              string                `json:"email" validate:"omitempty,email"`
	Address            string                `json:"address"`
	OpeningBalance     entity.OpeningBalance `json:"openingBalance"`
}

// BankAccountRequest body de create/update de cuenta bancaria.
type BankAccountRequest struct {
	BranchID       string          `json:"branchId"`
	UnderGroupID   string          `json:"underGroupId"`
	AccountName    string          `json:"accountName" validate:"required"`
	ShortName      string          `json:"shortName"`
	BankHolderName string          `json:"bankHolderName"`
	AccountNumber  string          `json:"accountNumber"`
	IFSC           string          `json:"ifsc"`
	BankName       string          `json:"bankName"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	BalanceType    string          `json:"balanceType" validate:"omitempty,oneof=Dr Cr"`
}
