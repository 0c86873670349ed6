package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/govindweb777/erp-sales-backend/internal/application/dto"
	"github.com/govindweb777/erp-sales-backend/internal/application/scope"
	"github.com/govindweb777/erp-sales-backend/internal/domain"
	"github.com/govindweb777/erp-sales-backend/internal/domain/entity"
	"github.com/govindweb777/erp-sales-backend/internal/domain/repository"
)

// Casos de uso de maestros contables: plan de cuentas, grupos de cuenta
// (terceros) y cuentas bancarias. CRUD tenant-scoped sin efectos cruzados.

// ChartOfAccountUseCase maestro del plan de cuentas.
type ChartOfAccountUseCase struct {
	repo repository.ChartOfAccountRepository
}

// NewChartOfAccountUseCase construye el caso de uso.
func NewChartOfAccountUseCase(repo repository.ChartOfAccountRepository) *ChartOfAccountUseCase {
	return &ChartOfAccountUseCase{repo: repo}
}

// Create da de alta una cuenta del plan.
func (uc *ChartOfAccountUseCase) Create(p scope.Principal, in dto.ChartOfAccountRequest) (*entity.ChartOfAccount, error) {
	wf, err := scope.ForWrite(p, in.BranchID)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	account := &entity.ChartOfAccount{
		ID:            uuid.New().String(),
		CompanyID:     wf.CompanyID,
		BranchID:      wf.BranchID,
		Name:          in.Name,
		GroupType:     in.GroupType,
		ParentGroupID: in.ParentGroupID,
		Statement:     in.Statement,
		Nature:        in.Nature,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(account); err != nil {
		return nil, err
	}
	return account, nil
}

// Update edita una cuenta del plan. Las cuentas de sistema no se tocan.
func (uc *ChartOfAccountUseCase) Update(p scope.Principal, id string, in dto.ChartOfAccountRequest) (*entity.ChartOfAccount, error) {
	account, err := uc.get(p, id)
	if err != nil {
		return nil, err
	}
	if account.IsSystemDefined {
		return nil, domain.ErrForbidden
	}
	account.Name = in.Name
	account.GroupType = in.GroupType
	account.ParentGroupID = in.ParentGroupID
	account.Statement = in.Statement
	account.Nature = in.Nature
	account.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(account); err != nil {
		return nil, err
	}
	return account, nil
}

// Get obtiene una cuenta del plan dentro del alcance.
func (uc *ChartOfAccountUseCase) Get(p scope.Principal, id string) (*entity.ChartOfAccount, error) {
	return uc.get(p, id)
}

// List lista cuentas del plan dentro del alcance.
func (uc *ChartOfAccountUseCase) List(p scope.Principal, q dto.ListQuery) ([]*entity.ChartOfAccount, dto.Pagination, error) {
	filter, page, err := masterFilter(p, q)
	if err != nil {
		return nil, dto.Pagination{}, err
	}
	accounts, total, err := uc.repo.List(filter)
	if err != nil {
		return nil, dto.Pagination{}, err
	}
	return accounts, dto.NewPagination(page.Page, page.Limit, total), nil
}

// SoftDelete manda la cuenta a la papelera. Las de sistema no se borran.
func (uc *ChartOfAccountUseCase) SoftDelete(p scope.Principal, id string) error {
	account, err := uc.get(p, id)
	if err != nil {
		return err
	}
	if account.IsSystemDefined {
		return domain.ErrForbidden
	}
	return uc.repo.SoftDelete(account.ID)
}

func (uc *ChartOfAccountUseCase) get(p scope.Principal, id string) (*entity.ChartOfAccount, error) {
	account, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if account == nil || account.CompanyID != p.CompanyID || !scope.CanAccess(p, account.BranchID) || account.IsDeleted {
		return nil, domain.ErrNotFound
	}
	return account, nil
}

// AccountGroupUseCase maestro de grupos de cuenta (terceros).
type AccountGroupUseCase struct {
	repo repository.AccountGroupRepository
}

// NewAccountGroupUseCase construye el caso de uso.
func NewAccountGroupUseCase(repo repository.AccountGroupRepository) *AccountGroupUseCase {
	return &AccountGroupUseCase{repo: repo}
}

// Create da de alta un grupo de cuenta.
func (uc *AccountGroupUseCase) Create(p scope.Principal, in dto.AccountGroupRequest) (*entity.AccountGroup, error) {
	wf, err := scope.ForWrite(p, in.BranchID)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	group := &entity.AccountGroup{
		ID:                 uuid.New().String(),
		CompanyID:          wf.CompanyID,
		BranchID:           wf.BranchID,
		ChartOfAccountID:   in.ChartOfAccountID,
		UnderGroup:         in.UnderGroup,
		GroupName:          in.GroupName,
		ShortName:          in.ShortName,
		GSTIN:              in.GSTIN,
		PAN:                in.PAN,
		NatureOfBusiness:   in.NatureOfBusiness,
		CreditPeriodDays:   in.CreditPeriodDays,
		CreditLimit:        in.CreditLimit,
		DefaultPaymentMode: in.DefaultPaymentMode,
		Contact:            entity.Contact{Phone: in.Phone, Email: in.Email, Address: in.Address},
		OpeningBalance:     in.OpeningBalance,
		CreatedBy:          p.UserID,
		IsActive:           true,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := uc.repo.Create(group); err != nil {
		return nil, err
	}
	return group, nil
}

// Update edita un grupo de cuenta.
func (uc *AccountGroupUseCase) Update(p scope.Principal, id string, in dto.AccountGroupRequest) (*entity.AccountGroup, error) {
	group, err := uc.get(p, id)
	if err != nil {
		return nil, err
	}
	group.ChartOfAccountID = in.ChartOfAccountID
	group.UnderGroup = in.UnderGroup
	group.GroupName = in.GroupName
	group.ShortName = in.ShortName
	group.GSTIN = in.GSTIN
	group.PAN = in.PAN
	group.NatureOfBusiness = in.NatureOfBusiness
	group.CreditPeriodDays = in.CreditPeriodDays
	group.CreditLimit = in.CreditLimit
	group.DefaultPaymentMode = in.DefaultPaymentMode
	group.Contact = entity.Contact{Phone: in.Phone, Email: in.Email, Address: in.Address}
	group.OpeningBalance = in.OpeningBalance
	group.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(group); err != nil {
		return nil, err
	}
	return group, nil
}

// Get obtiene un grupo de cuenta dentro del alcance.
func (uc *AccountGroupUseCase) Get(p scope.Principal, id string) (*entity.AccountGroup, error) {
	return uc.get(p, id)
}

// List lista grupos de cuenta dentro del alcance.
func (uc *AccountGroupUseCase) List(p scope.Principal, q dto.ListQuery) ([]*entity.AccountGroup, dto.Pagination, error) {
	filter, page, err := masterFilter(p, q)
	if err != nil {
		return nil, dto.Pagination{}, err
	}
	groups, total, err := uc.repo.List(filter)
	if err != nil {
		return nil, dto.Pagination{}, err
	}
	return groups, dto.NewPagination(page.Page, page.Limit, total), nil
}

// ToggleActive invierte el estado activo del grupo.
func (uc *AccountGroupUseCase) ToggleActive(p scope.Principal, id string) (*entity.AccountGroup, error) {
	group, err := uc.get(p, id)
	if err != nil {
		return nil, err
	}
	group.IsActive = !group.IsActive
	group.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(group); err != nil {
		return nil, err
	}
	return group, nil
}

// SoftDelete manda el grupo a la papelera.
func (uc *AccountGroupUseCase) SoftDelete(p scope.Principal, id string) error {
	group, err := uc.get(p, id)
	if err != nil {
		return err
	}
	return uc.repo.SoftDelete(group.ID)
}

func (uc *AccountGroupUseCase) get(p scope.Principal, id string) (*entity.AccountGroup, error) {
	group, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if group == nil || group.CompanyID != p.CompanyID || !scope.CanAccess(p, group.BranchID) || group.IsDeleted {
		return nil, domain.ErrNotFound
	}
	return group, nil
}

// BankAccountUseCase maestro de cuentas bancarias.
type BankAccountUseCase struct {
	repo repository.BankAccountRepository
}

// NewBankAccountUseCase construye el caso de uso.
func NewBankAccountUseCase(repo repository.BankAccountRepository) *BankAccountUseCase {
	return &BankAccountUseCase{repo: repo}
}

// Create da de alta una cuenta bancaria.
func (uc *BankAccountUseCase) Create(p scope.Principal, in dto.BankAccountRequest) (*entity.BankAccount, error) {
	wf, err := scope.ForWrite(p, in.BranchID)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	account := &entity.BankAccount{
		ID:             uuid.New().String(),
		CompanyID:      wf.CompanyID,
		BranchID:       wf.BranchID,
		UnderGroupID:   in.UnderGroupID,
		AccountName:    in.AccountName,
		ShortName:      in.ShortName,
		BankHolderName: in.BankHolderName,
		AccountNumber:  in.AccountNumber,
		IFSC:           in.IFSC,
		BankName:       in.BankName,
		OpeningBalance: in.OpeningBalance,
		BalanceType:    in.BalanceType,
		CreatedBy:      p.UserID,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(account); err != nil {
		return nil, err
	}
	return account, nil
}

// Update edita una cuenta bancaria.
func (uc *BankAccountUseCase) Update(p scope.Principal, id string, in dto.BankAccountRequest) (*entity.BankAccount, error) {
	account, err := uc.get(p, id)
	if err != nil {
		return nil, err
	}
	account.UnderGroupID = in.UnderGroupID
	account.AccountName = in.AccountName
	account.ShortName = in.ShortName
	account.BankHolderName = in.BankHolderName
	account.AccountNumber = in.AccountNumber
	account.IFSC = in.IFSC
	account.BankName = in.BankName
	account.OpeningBalance = in.OpeningBalance
	account.BalanceType = in.BalanceType
	account.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(account); err != nil {
		return nil, err
	}
	return account, nil
}

// Get obtiene una cuenta bancaria dentro del alcance.
func (uc *BankAccountUseCase) Get(p scope.Principal, id string) (*entity.BankAccount, error) {
	return uc.get(p, id)
}

// List lista cuentas bancarias dentro del alcance.
func (uc *BankAccountUseCase) List(p scope.Principal, q dto.ListQuery) ([]*entity.BankAccount, dto.Pagination, error) {
	filter, page, err := masterFilter(p, q)
	if err != nil {
		return nil, dto.Pagination{}, err
	}
	accounts, total, err := uc.repo.List(filter)
	if err != nil {
		return nil, dto.Pagination{}, err
	}
	return accounts, dto.NewPagination(page.Page, page.Limit, total), nil
}

// SoftDelete manda la cuenta bancaria a la papelera.
func (uc *BankAccountUseCase) SoftDelete(p scope.Principal, id string) error {
	account, err := uc.get(p, id)
	if err != nil {
		return err
	}
	return uc.repo.SoftDelete(account.ID)
}

func (uc *BankAccountUseCase) get(p scope.Principal, id string) (*entity.BankAccount, error) {
	account, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if account == nil || account.CompanyID != p.CompanyID || !scope.CanAccess(p, account.BranchID) || account.IsDeleted {
		return nil, domain.ErrNotFound
	}
	return account, nil
}

// masterFilter arma el filtro común de maestros con el alcance del principal.
func masterFilter(p scope.Principal, q dto.ListQuery) (repository.MasterFilter, dto.ListQuery, error) {
	rf, err := scope.ForRead(p, q.BranchID)
	if err != nil {
		return repository.MasterFilter{}, q, err
	}
	q.DefaultPage()
	filter := repository.MasterFilter{
		CompanyID: rf.CompanyID,
		BranchID:  rf.BranchID,
		Search:    q.Search,
		Limit:     q.Limit,
		Offset:    q.Offset(),
	}
	switch q.IsActive {
	case "true":
		v := true
		filter.IsActive = &v
	case "false":
		v := false
		filter.IsActive = &v
	}
	return filter, q, nil
}
