package usecase_test

import (
	"context"
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

type fakeBranchRepo struct {
	branches map[string]*entity.Branch
}

func newFakeBranchRepo() *fakeBranchRepo {
	return &fakeBranchRepo{branches: map[string]*entity.Branch{}}
}

func (r *fakeBranchRepo) Create(b *entity.Branch) error {
	cp := *b
	r.branches[b.ID] = &cp
	return nil
}

func (r *fakeBranchRepo) GetByID(id string) (*entity.Branch, error) {
	b, ok := r.branches[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (r *fakeBranchRepo) Update(b *entity.Branch) error {
	cp := *b
	r.branches[b.ID] = &cp
	return nil
}

func (r *fakeBranchRepo) List(filter repository.BranchFilter) ([]*entity.Branch, int64, error) {
	var out []*entity.Branch
	for _, b := range r.branches {
		if b.CompanyID != filter.CompanyID || b.IsDeleted != filter.Deleted {
			continue
		}
		if filter.IsActive != nil && b.IsActive != *filter.IsActive {
			continue
		}
		cp := *b
		out = append(out, &cp)
	}
	return out, int64(len(out)), nil
}

func (r *fakeBranchRepo) AdjustUserCount(branchID string, delta int) error {
	if b, ok := r.branches[branchID]; ok {
		b.NoOfUsers += delta
	}
	return nil
}

func (r *fakeBranchRepo) SoftDelete(id string) error {
	if b, ok := r.branches[id]; ok {
		b.IsDeleted = true
		b.IsActive = false
	}
	return nil
}

func (r *fakeBranchRepo) Restore(id string) error {
	if b, ok := r.branches[id]; ok {
		b.IsDeleted = false
		b.IsActive = true
	}
	return nil
}

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByResetToken(tokenHash string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ResetToken != "" && u.ResetToken == tokenHash {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) List(filter repository.UserFilter) ([]*entity.User, int64, error) {
	var out []*entity.User
	for _, u := range r.users {
		if u.CompanyID != filter.CompanyID {
			continue
		}
		if filter.BranchID != "" && u.BranchID != filter.BranchID {
			continue
		}
		if filter.IsActive != nil && u.IsActive != *filter.IsActive {
			continue
		}
		cp := *u
		out = append(out, &cp)
	}
	return out, int64(len(out)), nil
}

func (r *fakeUserRepo) SetActiveByBranch(branchID string, active bool) error {
	for _, u := range r.users {
		if u.BranchID == branchID {
			u.IsActive = active
		}
	}
	return nil
}

func (r *fakeUserRepo) Delete(id string) error {
	delete(r.users, id)
	return nil
}

type fakeSeqRepo struct {
	counters map[string]int64
}

func (r *fakeSeqRepo) Next(companyID, branchID, key string) (int64, error) {
	if r.counters == nil {
		r.counters = map[string]int64{}
	}
	k := companyID + "|" + branchID + "|" + key
	r.counters[k]++
	return r.counters[k], nil
}

func (r *fakeSeqRepo) Current(companyID, branchID, key string) (int64, error) {
	return r.counters[companyID+"|"+branchID+"|"+key], nil
}

type fakeAdminTx struct {
	branches *fakeBranchRepo
	users    *fakeUserRepo
}

func (t *fakeAdminTx) RunAdmin(_ context.Context, fn func(repository.BranchRepository, repository.UserRepository) error) error {
	return fn(t.branches, t.users)
}

func admin() scope.Principal {
	return scope.Principal{UserID: "u-admin", CompanyID: "comp-1", Role: entity.RoleAdmin}
}

func TestBranch_CodigoGenerado(t *testing.T) {
	branches := newFakeBranchRepo()
	users := newFakeUserRepo()
	uc := usecase.NewBranchUseCase(branches, &fakeSeqRepo{}, &fakeAdminTx{branches: branches, users: users})

	first, err := uc.Create(admin(), dto.BranchRequest{BranchName: "Sucursal Centro"})
	require.NoError(t, err)
	second, err := uc.Create(admin(), dto.BranchRequest{BranchName: "Sucursal Norte"})
	require.NoError(t, err)

	assert.Equal(t, "BR00001", first.BranchCode)
	assert.Equal(t, "BR00002", second.BranchCode)
}

// El borrado de la sucursal desactiva a sus usuarios; la restauración los
// deja inactivos: la reactivación es decisión explícita del admin.
func TestBranch_CascadaAsimetrica(t *testing.T) {
	branches := newFakeBranchRepo()
	users := newFakeUserRepo()
	uc := usecase.NewBranchUseCase(branches, &fakeSeqRepo{}, &fakeAdminTx{branches: branches, users: users})

	created, err := uc.Create(admin(), dto.BranchRequest{BranchName: "Sucursal Centro"})
	require.NoError(t, err)
	_ = users.Create(&entity.User{ID: "u1", CompanyID: "comp-1", BranchID: created.ID, Role: entity.RoleUser, IsActive: true})
	_ = users.Create(&entity.User{ID: "u2", CompanyID: "comp-1", BranchID: created.ID, Role: entity.RoleBranch, IsActive: true})
	_ = users.Create(&entity.User{ID: "u3", CompanyID: "comp-1", BranchID: "otra", Role: entity.RoleUser, IsActive: true})

	require.NoError(t, uc.SoftDelete(context.Background(), admin(), created.ID))

	u1, _ := users.GetByID("u1")
	u2, _ := users.GetByID("u2")
	u3, _ := users.GetByID("u3")
	assert.False(t, u1.IsActive)
	assert.False(t, u2.IsActive)
	assert.True(t, u3.IsActive, "usuarios de otras sucursales no se tocan")

	// invisible para gets normales mientras está en papelera
	_, err = uc.Get(admin(), created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	restored, err := uc.Restore(admin(), created.ID)
	require.NoError(t, err)
	assert.False(t, restored.IsDeleted)

	u1, _ = users.GetByID("u1")
	u2, _ = users.GetByID("u2")
	assert.False(t, u1.IsActive, "restore no reactiva usuarios")
	assert.False(t, u2.IsActive, "restore no reactiva usuarios")
}

// El toggle de sucursal arrastra a sus usuarios en ambas direcciones:
// desactivar apaga a todos, reactivar los vuelve a encender.
func TestBranch_ToggleArrastraUsuarios(t *testing.T) {
	branches := newFakeBranchRepo()
	users := newFakeUserRepo()
	uc := usecase.NewBranchUseCase(branches, &fakeSeqRepo{}, &fakeAdminTx{branches: branches, users: users})

	created, err := uc.Create(admin(), dto.BranchRequest{BranchName: "Sucursal Centro"})
	require.NoError(t, err)
	_ = users.Create(&entity.User{ID: "u1", CompanyID: "comp-1", BranchID: created.ID, Role: entity.RoleUser, IsActive: true})
	_ = users.Create(&entity.User{ID: "u2", CompanyID: "comp-1", BranchID: "otra", Role: entity.RoleUser, IsActive: true})

	toggled, err := uc.ToggleActive(context.Background(), admin(), created.ID)
	require.NoError(t, err)
	assert.False(t, toggled.IsActive)

	u1, _ := users.GetByID("u1")
	u2, _ := users.GetByID("u2")
	assert.False(t, u1.IsActive, "usuario de la sucursal se desactiva")
	assert.True(t, u2.IsActive, "usuarios de otras sucursales no se tocan")

	toggled, err = uc.ToggleActive(context.Background(), admin(), created.ID)
	require.NoError(t, err)
	assert.True(t, toggled.IsActive)

	u1, _ = users.GetByID("u1")
	assert.True(t, u1.IsActive, "reactivar la sucursal reactiva a sus usuarios")

	// sucursal de otra empresa o en papelera: no encontrada
	_, err = uc.ToggleActive(context.Background(), scope.Principal{UserID: "x", CompanyID: "comp-2", Role: entity.RoleAdmin}, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUser_CreateConPasswordTemporal(t *testing.T) {
	branches := newFakeBranchRepo()
	users := newFakeUserRepo()
	_ = branches.Create(&entity.Branch{ID: "br-1", CompanyID: "comp-1", BranchName: "Centro", IsActive: true})
	uc := usecase.NewUserUseCase(users, branches)

	resp, err := uc.Create(admin(), dto.CreateUserRequest{
		Name:     "Operador Uno",
		Email:    "op1@example.com",
		Role:     entity.RoleUser,
		BranchID: "br-1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.TempPassword, "sin password en el request se genera una temporal")
	assert.Equal(t, "br-1", resp.User.BranchID)

	branch, _ := branches.GetByID("br-1")
	assert.Equal(t, 1, branch.NoOfUsers)

	// email duplicado
	_, err = uc.Create(admin(), dto.CreateUserRequest{
		Name:     "Otro",
		Email:    "op1@example.com",
		Role:     entity.RoleUser,
		BranchID: "br-1",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)

	// rol de sucursal sin sucursal
	_, err = uc.Create(admin(), dto.CreateUserRequest{
		Name:  "Sin Sucursal",
		Email: "op2@example.com",
		Role:  entity.RoleBranch,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUser_NoPuedeBorrarseASiMismo(t *testing.T) {
	branches := newFakeBranchRepo()
	users := newFakeUserRepo()
	_ = users.Create(&entity.User{ID: "u-admin", CompanyID: "comp-1", Role: entity.RoleAdmin, IsActive: true})
	uc := usecase.NewUserUseCase(users, branches)

	err := uc.Delete(admin(), "u-admin")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
