package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/govindweb777/erp-sales-backend/internal/application/dto"
	"github.com/govindweb777/erp-sales-backend/internal/application/scope"
	"github.com/govindweb777/erp-sales-backend/internal/domain"
	"github.com/govindweb777/erp-sales-backend/internal/domain/entity"
	"github.com/govindweb777/erp-sales-backend/internal/domain/ledger"
	"github.com/govindweb777/erp-sales-backend/internal/domain/repository"
)

// BranchUseCase gestión de sucursales. El código BR se asigna con el mismo
// contador atómico que los números de documento (clave "branch", por empresa)
// así un borrado no libera códigos ya emitidos.
type BranchUseCase struct {
	branchRepo repository.BranchRepository
	seqRepo    repository.SequenceRepository
	txRunner   AdminTxRunner
}

// NewBranchUseCase construye el caso de uso.
func NewBranchUseCase(branchRepo repository.BranchRepository, seqRepo repository.SequenceRepository, txRunner AdminTxRunner) *BranchUseCase {
	return &BranchUseCase{branchRepo: branchRepo, seqRepo: seqRepo, txRunner: txRunner}
}

// Create da de alta una sucursal con código generado.
func (uc *BranchUseCase) Create(p scope.Principal, in dto.BranchRequest) (*dto.BranchResponse, error) {
	n, err := uc.seqRepo.Next(p.CompanyID, "", "branch")
	if err != nil {
		return nil, err
	}

	branch := &entity.Branch{
		ID:                uuid.New().String(),
		CompanyID:         p.CompanyID,
		BranchName:        in.BranchName,
		BranchCode:        ledger.FormatNumber(ledger.BranchCodePrefix, n),
		Address:           in.Address,
		PhoneNumber:       in.PhoneNumber,
		Email:             in.Email,
		BranchManagerName: in.BranchManagerName,
		OpeningHours:      in.OpeningHours,
		ServicesOffered:   in.ServicesOffered,
		Location:          in.Location,
		IsHeadOffice:      in.IsHeadOffice,
		IsActive:          true,
		CreatedAt:         time.Now().UTC(),
		UpdatedAt:         time.Now().UTC(),
	}
	if in.EstablishedDate != "" {
		d, perr := time.Parse("2006-01-02", in.EstablishedDate)
		if perr != nil {
			return nil, domain.ErrInvalidInput
		}
		branch.EstablishedDate = &d
	}
	if err := uc.branchRepo.Create(branch); err != nil {
		return nil, err
	}
	resp := dto.FromBranch(branch)
	return &resp, nil
}

// Update edita una sucursal viva de la empresa. El código nunca cambia.
func (uc *BranchUseCase) Update(p scope.Principal, id string, in dto.BranchRequest) (*dto.BranchResponse, error) {
	branch, err := uc.getInCompany(p, id)
	if err != nil {
		return nil, err
	}

	branch.BranchName = in.BranchName
	branch.Address = in.Address
	branch.PhoneNumber = in.PhoneNumber
	branch.Email = in.Email
	branch.BranchManagerName = in.BranchManagerName
	branch.OpeningHours = in.OpeningHours
	branch.ServicesOffered = in.ServicesOffered
	branch.Location = in.Location
	branch.IsHeadOffice = in.IsHeadOffice
	if in.EstablishedDate != "" {
		d, perr := time.Parse("2006-01-02", in.EstablishedDate)
		if perr != nil {
			return nil, domain.ErrInvalidInput
		}
		branch.EstablishedDate = &d
	}
	branch.UpdatedAt = time.Now().UTC()

	if err := uc.branchRepo.Update(branch); err != nil {
		return nil, err
	}
	resp := dto.FromBranch(branch)
	return &resp, nil
}

// Get obtiene una sucursal viva de la empresa.
func (uc *BranchUseCase) Get(p scope.Principal, id string) (*dto.BranchResponse, error) {
	branch, err := uc.getInCompany(p, id)
	if err != nil {
		return nil, err
	}
	resp := dto.FromBranch(branch)
	return &resp, nil
}

// List lista sucursales vivas de la empresa.
func (uc *BranchUseCase) List(p scope.Principal, q dto.ListQuery) ([]dto.BranchResponse, dto.Pagination, error) {
	return uc.list(p, q, false)
}

// ListDeleted lista la papelera de sucursales.
func (uc *BranchUseCase) ListDeleted(p scope.Principal, q dto.ListQuery) ([]dto.BranchResponse, dto.Pagination, error) {
	return uc.list(p, q, true)
}

func (uc *BranchUseCase) list(p scope.Principal, q dto.ListQuery, deleted bool) ([]dto.BranchResponse, dto.Pagination, error) {
	q.DefaultPage()
	filter := repository.BranchFilter{
		CompanyID: p.CompanyID,
		Search:    q.Search,
		Deleted:   deleted,
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
	branches, total, err := uc.branchRepo.List(filter)
	if err != nil {
		return nil, dto.Pagination{}, err
	}
	out := make([]dto.BranchResponse, 0, len(branches))
	for _, b := range branches {
		out = append(out, dto.FromBranch(b))
	}
	return out, dto.NewPagination(q.Page, q.Limit, total), nil
}

// SoftDelete manda la sucursal a la papelera y desactiva en cascada a todos
// sus usuarios, en una sola transacción: nadie queda logueable contra una
// sucursal borrada.
func (uc *BranchUseCase) SoftDelete(ctx context.Context, p scope.Principal, id string) error {
	branch, err := uc.getInCompany(p, id)
	if err != nil {
		return err
	}
	return uc.txRunner.RunAdmin(ctx, func(
		branchRepo repository.BranchRepository,
		userRepo repository.UserRepository,
	) error {
		if err := branchRepo.SoftDelete(branch.ID); err != nil {
			return err
		}
		return userRepo.SetActiveByBranch(branch.ID, false)
	})
}

// ToggleActive invierte el estado de la sucursal y arrastra a todos sus
// usuarios al nuevo estado, en una sola transacción. A diferencia de la
// restauración, el toggle sí es simétrico: activar la sucursal reactiva a
// su gente.
func (uc *BranchUseCase) ToggleActive(ctx context.Context, p scope.Principal, id string) (*dto.BranchResponse, error) {
	branch, err := uc.getInCompany(p, id)
	if err != nil {
		return nil, err
	}
	branch.IsActive = !branch.IsActive
	branch.UpdatedAt = time.Now().UTC()

	err = uc.txRunner.RunAdmin(ctx, func(
		branchRepo repository.BranchRepository,
		userRepo repository.UserRepository,
	) error {
		if err := branchRepo.Update(branch); err != nil {
			return err
		}
		return userRepo.SetActiveByBranch(branch.ID, branch.IsActive)
	})
	if err != nil {
		return nil, err
	}
	resp := dto.FromBranch(branch)
	return &resp, nil
}

// Restore saca la sucursal de la papelera. Deliberadamente NO reactiva a sus
// usuarios: el admin decide a quién reactivar uno por uno. La cascada de
// borrado es colectiva; la de restauración no.
func (uc *BranchUseCase) Restore(p scope.Principal, id string) (*dto.BranchResponse, error) {
	branch, err := uc.branchRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if branch == nil || branch.CompanyID != p.CompanyID || !branch.IsDeleted {
		return nil, domain.ErrNotFound
	}
	if err := uc.branchRepo.Restore(branch.ID); err != nil {
		return nil, err
	}
	branch.IsDeleted = false
	resp := dto.FromBranch(branch)
	return &resp, nil
}

func (uc *BranchUseCase) getInCompany(p scope.Principal, id string) (*entity.Branch, error) {
	branch, err := uc.branchRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if branch == nil || branch.CompanyID != p.CompanyID || branch.IsDeleted {
		return nil, domain.ErrNotFound
	}
	return branch, nil
}
