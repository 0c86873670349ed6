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

// Maestros de ítems: grupos y categorías. CRUD tenant-scoped sin papelera;
// el borrado es definitivo y queda reservado a admin y branch.

// ItemGroupUseCase maestro de grupos de ítems.
type ItemGroupUseCase struct {
	repo repository.ItemGroupRepository
}

// NewItemGroupUseCase construye el caso de uso.
func NewItemGroupUseCase(repo repository.ItemGroupRepository) *ItemGroupUseCase {
	return &ItemGroupUseCase{repo: repo}
}

// Create da de alta un grupo de ítems.
func (uc *ItemGroupUseCase) Create(p scope.Principal, in dto.ItemGroupRequest) (*entity.ItemGroup, error) {
	wf, err := scope.ForWrite(p, in.BranchID)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	group := &entity.ItemGroup{
		ID:          uuid.New().String(),
		CompanyID:   wf.CompanyID,
		BranchID:    wf.BranchID,
		Name:        in.Name,
		ShortName:   in.ShortName,
		Description: in.Description,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(group); err != nil {
		return nil, err
	}
	return group, nil
}

// Update edita un grupo de ítems.
func (uc *ItemGroupUseCase) Update(p scope.Principal, id string, in dto.ItemGroupRequest) (*entity.ItemGroup, error) {
	group, err := uc.get(p, id)
	if err != nil {
		return nil, err
	}
	group.Name = in.Name
	group.ShortName = in.ShortName
	group.Description = in.Description
	group.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(group); err != nil {
		return nil, err
	}
	return group, nil
}

// Get obtiene un grupo de ítems dentro del alcance.
func (uc *ItemGroupUseCase) Get(p scope.Principal, id string) (*entity.ItemGroup, error) {
	return uc.get(p, id)
}

// List lista grupos de ítems dentro del alcance.
func (uc *ItemGroupUseCase) List(p scope.Principal, q dto.ListQuery) ([]*entity.ItemGroup, dto.Pagination, error) {
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

// Delete elimina el grupo definitivamente. Solo admin o branch; los ítems que
// lo referencian no se tocan.
func (uc *ItemGroupUseCase) Delete(p scope.Principal, id string) error {
	if p.Role != entity.RoleAdmin && p.Role != entity.RoleBranch {
		return domain.ErrForbidden
	}
	group, err := uc.get(p, id)
	if err != nil {
		return err
	}
	return uc.repo.Delete(group.ID)
}

func (uc *ItemGroupUseCase) get(p scope.Principal, id string) (*entity.ItemGroup, error) {
	group, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if group == nil || group.CompanyID != p.CompanyID || !scope.CanAccess(p, group.BranchID) {
		return nil, domain.ErrNotFound
	}
	return group, nil
}

// ItemCategoryUseCase maestro de categorías de ítems.
type ItemCategoryUseCase struct {
	repo repository.ItemCategoryRepository
}

// NewItemCategoryUseCase construye el caso de uso.
func NewItemCategoryUseCase(repo repository.ItemCategoryRepository) *ItemCategoryUseCase {
	return &ItemCategoryUseCase{repo: repo}
}

// Create da de alta una categoría de ítems.
func (uc *ItemCategoryUseCase) Create(p scope.Principal, in dto.ItemCategoryRequest) (*entity.ItemCategory, error) {
	wf, err := scope.ForWrite(p, in.BranchID)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	category := &entity.ItemCategory{
		ID:          uuid.New().String(),
		CompanyID:   wf.CompanyID,
		BranchID:    wf.BranchID,
		Name:        in.Name,
		Description: in.Description,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

// Update edita una categoría de ítems.
func (uc *ItemCategoryUseCase) Update(p scope.Principal, id string, in dto.ItemCategoryRequest) (*entity.ItemCategory, error) {
	category, err := uc.get(p, id)
	if err != nil {
		return nil, err
	}
	category.Name = in.Name
	category.Description = in.Description
	category.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

// Get obtiene una categoría dentro del alcance.
func (uc *ItemCategoryUseCase) Get(p scope.Principal, id string) (*entity.ItemCategory, error) {
	return uc.get(p, id)
}

// List lista categorías dentro del alcance.
func (uc *ItemCategoryUseCase) List(p scope.Principal, q dto.ListQuery) ([]*entity.ItemCategory, dto.Pagination, error) {
	filter, page, err := masterFilter(p, q)
	if err != nil {
		return nil, dto.Pagination{}, err
	}
	categories, total, err := uc.repo.List(filter)
	if err != nil {
		return nil, dto.Pagination{}, err
	}
	return categories, dto.NewPagination(page.Page, page.Limit, total), nil
}

// Delete elimina la categoría definitivamente. Solo admin o branch.
func (uc *ItemCategoryUseCase) Delete(p scope.Principal, id string) error {
	if p.Role != entity.RoleAdmin && p.Role != entity.RoleBranch {
		return domain.ErrForbidden
	}
	category, err := uc.get(p, id)
	if err != nil {
		return err
	}
	return uc.repo.Delete(category.ID)
}

func (uc *ItemCategoryUseCase) get(p scope.Principal, id string) (*entity.ItemCategory, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil || category.CompanyID != p.CompanyID || !scope.CanAccess(p, category.BranchID) {
		return nil, domain.ErrNotFound
	}
	return category, nil
}
