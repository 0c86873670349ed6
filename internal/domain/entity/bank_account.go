package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// BankAccount cuenta bancaria de la empresa (maestro de depósito para
// receipts/payments).
type BankAccount struct {
	ID             string
	CompanyID      string
	BranchID       string
	UnderGroupID   string
	AccountName    string
	ShortName      string
	BankHolderName string
	AccountNumber  string
	IFSC           string
	BankName       string
	OpeningBalance decimal.Decimal
	BalanceType    string // Dr | Cr
	CreatedBy      string
	IsActive       bool
	IsDeleted      bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
