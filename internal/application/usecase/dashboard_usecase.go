package usecase

import (
	"github.com/govindweb777/erp-sales-backend/internal/application/dto"
	"github.com/govindweb777/erp-sales-backend/internal/application/scope"
	"github.com/govindweb777/erp-sales-backend/internal/domain/entity"
	"github.com/govindweb777/erp-sales-backend/internal/domain/repository"
)

// DashboardUseCase contadores del tablero del admin. Reutiliza los totales de
// los listados (limit 1) en vez de queries de conteo dedicadas.
type DashboardUseCase struct {
	userRepo   repository.UserRepository
	branchRepo repository.BranchRepository
	docRepo    repository.DocumentRepository
	itemRepo   repository.ItemRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	userRepo repository.UserRepository,
	branchRepo repository.BranchRepository,
	docRepo repository.DocumentRepository,
	itemRepo repository.ItemRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		userRepo:   userRepo,
		branchRepo: branchRepo,
		docRepo:    docRepo,
		itemRepo:   itemRepo,
	}
}

// Summary arma los contadores de la empresa del principal.
func (uc *DashboardUseCase) Summary(p scope.Principal) (*dto.DashboardResponse, error) {
	active := true

	_, totalUsers, err := uc.userRepo.List(repository.UserFilter{CompanyID: p.CompanyID, Limit: 1})
	if err != nil {
		return nil, err
	}
	_, activeUsers, err := uc.userRepo.List(repository.UserFilter{CompanyID: p.CompanyID, IsActive: &active, Limit: 1})
	if err != nil {
		return nil, err
	}
	_, totalBranches, err := uc.branchRepo.List(repository.BranchFilter{CompanyID: p.CompanyID, Limit: 1})
	if err != nil {
		return nil, err
	}
	_, activeBranches, err := uc.branchRepo.List(repository.BranchFilter{CompanyID: p.CompanyID, IsActive: &active, Limit: 1})
	if err != nil {
		return nil, err
	}
	_, totalSales, err := uc.docRepo.List(repository.DocumentFilter{CompanyID: p.CompanyID, Type: entity.DocTypeSales, Limit: 1})
	if err != nil {
		return nil, err
	}
	_, totalPurchases, err := uc.docRepo.List(repository.DocumentFilter{CompanyID: p.CompanyID, Type: entity.DocTypePurchase, Limit: 1})
	if err != nil {
		return nil, err
	}
	_, itemsAvailable, err := uc.itemRepo.List(repository.ItemFilter{CompanyID: p.CompanyID, Status: entity.ItemStatusAvailable, Limit: 1})
	if err != nil {
		return nil, err
	}
	_, itemsSold, err := uc.itemRepo.List(repository.ItemFilter{CompanyID: p.CompanyID, Status: entity.ItemStatusSold, Limit: 1})
	if err != nil {
		return nil, err
	}

	return &dto.DashboardResponse{
		TotalUsers:     totalUsers,
		ActiveUsers:    activeUsers,
		TotalBranches:  totalBranches,
		ActiveBranches: activeBranches,
		TotalSales:     totalSales,
		TotalPurchases: totalPurchases,
		ItemsAvailable: itemsAvailable,
		ItemsSold:      itemsSold,
	}, nil
}
