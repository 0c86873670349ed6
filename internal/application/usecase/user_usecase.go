package usecase

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/govindweb777/erp-sales-backend/internal/application/dto"
	"github.com/govindweb777/erp-sales-backend/internal/application/scope"
	"github.com/govindweb777/erp-sales-backend/internal/domain"
	"github.com/govindweb777/erp-sales-backend/internal/domain/entity"
	"github.com/govindweb777/erp-sales-backend/internal/domain/repository"
)

// UserUseCase gestión de usuarios por el admin de la empresa.
type UserUseCase struct {
	userRepo   repository.UserRepository
	branchRepo repository.BranchRepository
}

// NewUserUseCase construye el caso de uso con los puertos de persistencia.
func NewUserUseCase(userRepo repository.UserRepository, branchRepo repository.BranchRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo, branchRepo: branchRepo}
}

// Create da de alta un usuario de la empresa del principal. Los roles branch
// y user exigen una sucursal viva de la misma empresa; admin y user-panel no
// llevan sucursal. Si no vino contraseña se genera una temporal y se devuelve
// una única vez en la respuesta.
func (uc *UserUseCase) Create(p scope.Principal, in dto.CreateUserRequest) (*dto.CreateUserResponse, error) {
	existing, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	branchID := ""
	switch in.Role {
	case entity.RoleBranch, entity.RoleUser:
		if in.BranchID == "" {
			return nil, domain.ErrInvalidInput
		}
		branch, err := uc.branchRepo.GetByID(in.BranchID)
		if err != nil {
			return nil, err
		}
		if branch == nil || branch.CompanyID != p.CompanyID || branch.IsDeleted {
			return nil, domain.ErrNotFound
		}
		branchID = in.BranchID
	case entity.RoleAdmin, entity.RoleUserPanel:
		// sin sucursal: alcance de empresa
	default:
		return nil, domain.ErrInvalidInput
	}

	password := in.Password
	tempPassword := ""
	if password == "" {
		tempPassword = generateTempPassword()
		password = tempPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &entity.User{
		ID:           uuid.New().String(),
		CompanyID:    p.CompanyID,
		BranchID:     branchID,
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		PhoneNumber:  in.PhoneNumber,
		Role:         in.Role,
		ModuleAccess: in.ModuleAccess,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	if branchID != "" {
		if err := uc.branchRepo.AdjustUserCount(branchID, 1); err != nil {
			return nil, err
		}
	}
	return &dto.CreateUserResponse{User: dto.FromUser(user), TempPassword: tempPassword}, nil
}

// Update edita un usuario de la empresa. Cambiar de sucursal mueve también el
// contador noOfUsers de ambas.
func (uc *UserUseCase) Update(p scope.Principal, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.getInCompany(p, id)
	if err != nil {
		return nil, err
	}

	if in.Name != "" {
		user.Name = in.Name
	}
	if in.PhoneNumber != "" {
		user.PhoneNumber = in.PhoneNumber
	}
	if in.Role != "" {
		user.Role = in.Role
	}
	if in.ProfilePic != "" {
		user.ProfilePic = in.ProfilePic
	}
	if in.ModuleAccess != nil {
		user.ModuleAccess = *in.ModuleAccess
	}
	if in.BranchID != nil && *in.BranchID != user.BranchID {
		oldBranch := user.BranchID
		newBranch := *in.BranchID
		if newBranch != "" {
			branch, err := uc.branchRepo.GetByID(newBranch)
			if err != nil {
				return nil, err
			}
			if branch == nil || branch.CompanyID != p.CompanyID || branch.IsDeleted {
				return nil, domain.ErrNotFound
			}
			if err := uc.branchRepo.AdjustUserCount(newBranch, 1); err != nil {
				return nil, err
			}
		}
		if oldBranch != "" {
			if err := uc.branchRepo.AdjustUserCount(oldBranch, -1); err != nil {
				return nil, err
			}
		}
		user.BranchID = newBranch
	}
	user.UpdatedAt = time.Now().UTC()

	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	resp := dto.FromUser(user)
	return &resp, nil
}

// ToggleStatus invierte isActive (un usuario inactivo no puede loguearse).
func (uc *UserUseCase) ToggleStatus(p scope.Principal, id string) (*dto.UserResponse, error) {
	user, err := uc.getInCompany(p, id)
	if err != nil {
		return nil, err
	}
	user.IsActive = !user.IsActive
	user.UpdatedAt = time.Now().UTC()
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	resp := dto.FromUser(user)
	return &resp, nil
}

// Get obtiene un usuario de la empresa.
func (uc *UserUseCase) Get(p scope.Principal, id string) (*dto.UserResponse, error) {
	user, err := uc.getInCompany(p, id)
	if err != nil {
		return nil, err
	}
	resp := dto.FromUser(user)
	return &resp, nil
}

// List lista usuarios de la empresa con paginación y búsqueda.
func (uc *UserUseCase) List(p scope.Principal, q dto.ListQuery) ([]dto.UserResponse, dto.Pagination, error) {
	q.DefaultPage()
	filter := repository.UserFilter{
		CompanyID: p.CompanyID,
		BranchID:  q.BranchID,
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
	users, total, err := uc.userRepo.List(filter)
	if err != nil {
		return nil, dto.Pagination{}, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, dto.FromUser(u))
	}
	return out, dto.NewPagination(q.Page, q.Limit, total), nil
}

// Delete elimina el usuario y descuenta el contador de su sucursal. El admin
// no puede borrarse a sí mismo.
func (uc *UserUseCase) Delete(p scope.Principal, id string) error {
	if id == p.UserID {
		return domain.ErrForbidden
	}
	user, err := uc.getInCompany(p, id)
	if err != nil {
		return err
	}
	if err := uc.userRepo.Delete(user.ID); err != nil {
		return err
	}
	if user.BranchID != "" {
		return uc.branchRepo.AdjustUserCount(user.BranchID, -1)
	}
	return nil
}

func (uc *UserUseCase) getInCompany(p scope.Principal, id string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil || user.CompanyID != p.CompanyID {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func generateTempPassword() string {
	buf := make([]byte, 5)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}
