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

// ItemUseCase CRUD de ítems de inventario. El estado y el stock los mutan las
// ventas y compras, no este caso de uso: acá solo se editan los datos
// maestros.
type ItemUseCase struct {
	repo repository.ItemRepository
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(repo repository.ItemRepository) *ItemUseCase {
	return &ItemUseCase{repo: repo}
}

// Create da de alta un ítem en la sucursal efectiva del principal.
func (uc *ItemUseCase) Create(p scope.Principal, in dto.ItemRequest) (*dto.ItemResponse, error) {
	wf, err := scope.ForWrite(p, in.BranchID)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	item := &entity.Item{
		ID:            uuid.New().String(),
		CompanyID:     wf.CompanyID,
		BranchID:      wf.BranchID,
		ItemCode:      in.ItemCode,
		ItemName:      in.ItemName,
		PropertyType:  in.PropertyType,
		ProjectName:   in.ProjectName,
		Area:          in.Area,
		HSNCode:       in.HSNCode,
		RatePerUnit:   in.RatePerUnit,
		TotalPrice:    in.TotalPrice,
		BookingAmount: in.BookingAmount,
		Status:        entity.ItemStatusAvailable,
		OpeningStock:  in.OpeningStock,
		CurrentStock:  in.OpeningStock,
		Description:   in.Description,
		ShowInSales:   in.ShowInSales,
		GroupID:       in.GroupID,
		CategoryID:    in.CategoryID,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	resp := dto.FromItem(item)
	return &resp, nil
}

// Update edita los datos maestros del ítem. No toca status, stock ni versión.
func (uc *ItemUseCase) Update(p scope.Principal, id string, in dto.ItemRequest) (*dto.ItemResponse, error) {
	item, err := uc.getInScope(p, id)
	if err != nil {
		return nil, err
	}

	item.ItemName = in.ItemName
	item.PropertyType = in.PropertyType
	item.ProjectName = in.ProjectName
	item.Area = in.Area
	item.HSNCode = in.HSNCode
	item.RatePerUnit = in.RatePerUnit
	item.TotalPrice = in.TotalPrice
	item.BookingAmount = in.BookingAmount
	item.Description = in.Description
	item.ShowInSales = in.ShowInSales
	item.GroupID = in.GroupID
	item.CategoryID = in.CategoryID
	if in.ItemCode != "" {
		item.ItemCode = in.ItemCode
	}
	item.UpdatedAt = time.Now().UTC()

	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	resp := dto.FromItem(item)
	return &resp, nil
}

// Get obtiene un ítem vivo dentro del alcance.
func (uc *ItemUseCase) Get(p scope.Principal, id string) (*dto.ItemResponse, error) {
	item, err := uc.getInScope(p, id)
	if err != nil {
		return nil, err
	}
	resp := dto.FromItem(item)
	return &resp, nil
}

// List lista ítems dentro del alcance del principal.
func (uc *ItemUseCase) List(p scope.Principal, q dto.ListQuery, status string) ([]dto.ItemResponse, dto.Pagination, error) {
	rf, err := scope.ForRead(p, q.BranchID)
	if err != nil {
		return nil, dto.Pagination{}, err
	}
	q.DefaultPage()
	filter := repository.ItemFilter{
		CompanyID: rf.CompanyID,
		BranchID:  rf.BranchID,
		Search:    q.Search,
		Status:    status,
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
	items, total, err := uc.repo.List(filter)
	if err != nil {
		return nil, dto.Pagination{}, err
	}
	out := make([]dto.ItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, dto.FromItem(item))
	}
	return out, dto.NewPagination(q.Page, q.Limit, total), nil
}

// SoftDelete manda el ítem a la papelera.
func (uc *ItemUseCase) SoftDelete(p scope.Principal, id string) error {
	item, err := uc.getInScope(p, id)
	if err != nil {
		return err
	}
	return uc.repo.SoftDelete(item.ID)
}

// Restore saca el ítem de la papelera.
func (uc *ItemUseCase) Restore(p scope.Principal, id string) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil || item.CompanyID != p.CompanyID || !scope.CanAccess(p, item.BranchID) || !item.IsDeleted {
		return nil, domain.ErrNotFound
	}
	if err := uc.repo.Restore(item.ID); err != nil {
		return nil, err
	}
	item.IsDeleted = false
	resp := dto.FromItem(item)
	return &resp, nil
}

func (uc *ItemUseCase) getInScope(p scope.Principal, id string) (*entity.Item, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil || item.CompanyID != p.CompanyID || !scope.CanAccess(p, item.BranchID) || item.IsDeleted {
		return nil, domain.ErrNotFound
	}
	return item, nil
}
