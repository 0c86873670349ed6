package usecase_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/govindweb777/erp-sales-backend/internal/application/dto"
	"github.com/govindweb777/erp-sales-backend/internal/application/scope"
	"github.com/govindweb777/erp-sales-backend/internal/application/usecase"
	"github.com/govindweb777/erp-sales-backend/internal/domain"
	"github.com/govindweb777/erp-sales-backend/internal/domain/entity"
	"github.com/govindweb777/erp-sales-backend/internal/domain/repository"
)

type fakeItemGroupRepo struct {
	groups map[string]*entity.ItemGroup
}

func newFakeItemGroupRepo() *fakeItemGroupRepo {
	return &fakeItemGroupRepo{groups: map[string]*entity.ItemGroup{}}
}

func (r *fakeItemGroupRepo) Create(g *entity.ItemGroup) error {
	cp := *g
	r.groups[g.ID] = &cp
	return nil
}

func (r *fakeItemGroupRepo) GetByID(id string) (*entity.ItemGroup, error) {
	g, ok := r.groups[id]
	if !ok {
		return nil, nil
	}
	cp := *g
	return &cp, nil
}

func (r *fakeItemGroupRepo) Update(g *entity.ItemGroup) error {
	cp := *g
	r.groups[g.ID] = &cp
	return nil
}

func (r *fakeItemGroupRepo) List(filter repository.MasterFilter) ([]*entity.ItemGroup, int64, error) {
	var out []*entity.ItemGroup
	for _, g := range r.groups {
		if g.CompanyID != filter.CompanyID {
			continue
		}
		if filter.BranchID != "" && g.BranchID != filter.BranchID {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(g.Name), strings.ToLower(filter.Search)) {
			continue
		}
		cp := *g
		out = append(out, &cp)
	}
	return out, int64(len(out)), nil
}

func (r *fakeItemGroupRepo) Delete(id string) error {
	delete(r.groups, id)
	return nil
}

type fakeAccountGroupRepo struct {
	groups map[string]*entity.AccountGroup
}

func (r *fakeAccountGroupRepo) Create(g *entity.AccountGroup) error {
	if r.groups == nil {
		r.groups = map[string]*entity.AccountGroup{}
	}
	cp := *g
	r.groups[g.ID] = &cp
	return nil
}

func (r *fakeAccountGroupRepo) GetByID(id string) (*entity.AccountGroup, error) {
	g, ok := r.groups[id]
	if !ok {
		return nil, nil
	}
	cp := *g
	return &cp, nil
}

func (r *fakeAccountGroupRepo) Update(g *entity.AccountGroup) error {
	cp := *g
	r.groups[g.ID] = &cp
	return nil
}

func (r *fakeAccountGroupRepo) List(filter repository.MasterFilter) ([]*entity.AccountGroup, int64, error) {
	var out []*entity.AccountGroup
	for _, g := range r.groups {
		if g.CompanyID == filter.CompanyID && !g.IsDeleted {
			cp := *g
			out = append(out, &cp)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeAccountGroupRepo) SoftDelete(id string) error {
	if g, ok := r.groups[id]; ok {
		g.IsDeleted = true
	}
	return nil
}

func (r *fakeAccountGroupRepo) Restore(id string) error {
	if g, ok := r.groups[id]; ok {
		g.IsDeleted = false
	}
	return nil
}

func TestItemGroup_BorradoDefinitivoSoloAdminOBranch(t *testing.T) {
	repo := newFakeItemGroupRepo()
	uc := usecase.NewItemGroupUseCase(repo)

	created, err := uc.Create(admin(), dto.ItemGroupRequest{BranchID: "br-1", Name: "Departamentos", ShortName: "DEP"})
	require.NoError(t, err)
	assert.True(t, created.IsActive)

	// el rol user no borra maestros de ítems
	user := scope.Principal{UserID: "u1", CompanyID: "comp-1", BranchID: "br-1", Role: entity.RoleUser}
	err = uc.Delete(user, created.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// branch sí, y el borrado es definitivo: no hay papelera de la que volver
	branch := scope.Principal{UserID: "b1", CompanyID: "comp-1", BranchID: "br-1", Role: entity.RoleBranch}
	require.NoError(t, uc.Delete(branch, created.ID))

	_, err = uc.Get(admin(), created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestItemGroup_AlcancePorEmpresaYSucursal(t *testing.T) {
	repo := newFakeItemGroupRepo()
	uc := usecase.NewItemGroupUseCase(repo)

	created, err := uc.Create(admin(), dto.ItemGroupRequest{BranchID: "br-1", Name: "Locales", ShortName: "LOC"})
	require.NoError(t, err)

	// otra empresa: no existe
	outsider := scope.Principal{UserID: "x", CompanyID: "comp-2", Role: entity.RoleAdmin}
	_, err = uc.Get(outsider, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// usuario de otra sucursal de la misma empresa: tampoco
	otherBranch := scope.Principal{UserID: "u2", CompanyID: "comp-1", BranchID: "br-2", Role: entity.RoleUser}
	_, err = uc.Get(otherBranch, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAccountGroup_ToggleInvierteEstado(t *testing.T) {
	repo := &fakeAccountGroupRepo{}
	uc := usecase.NewAccountGroupUseCase(repo)

	created, err := uc.Create(admin(), dto.AccountGroupRequest{BranchID: "br-1", GroupName: "Clientes Mayoristas"})
	require.NoError(t, err)
	require.True(t, created.IsActive)

	toggled, err := uc.ToggleActive(admin(), created.ID)
	require.NoError(t, err)
	assert.False(t, toggled.IsActive)

	toggled, err = uc.ToggleActive(admin(), created.ID)
	require.NoError(t, err)
	assert.True(t, toggled.IsActive)

	// fuera de la empresa del principal: no encontrado
	outsider := scope.Principal{UserID: "x", CompanyID: "comp-2", Role: entity.RoleAdmin}
	_, err = uc.ToggleActive(outsider, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
