package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/govindweb777/erp-sales-backend/internal/application/dto"
	"github.com/govindweb777/erp-sales-backend/internal/domain"
	"github.com/govindweb777/erp-sales-backend/internal/domain/entity"
	"github.com/govindweb777/erp-sales-backend/internal/domain/repository"
	"github.com/govindweb777/erp-sales-backend/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// Mailer puerto de envío de correos transaccionales (reseteo de contraseña).
type Mailer interface {
	SendPasswordReset(email, token string) error
}

// AuthUseCase casos de uso de autenticación: registro, login, perfil y
// reseteo de contraseña.
type AuthUseCase struct {
	userRepo    repository.UserRepository
	companyRepo repository.CompanyRepository
	mailer      Mailer
	jwtCfg      JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, companyRepo repository.CompanyRepository, mailer Mailer, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, companyRepo: companyRepo, mailer: mailer, jwtCfg: jwtCfg}
}

// Register da de alta una empresa con su usuario admin en un solo paso.
// Devuelve ErrEmailAlreadyExists si el email ya está tomado.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.LoginResponse, error) {
	existing, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()

	company := &entity.Company{
		ID:          uuid.New().String(),
		CompanyName: in.CompanyName,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.companyRepo.Create(company); err != nil {
		return nil, err
	}

	user := &entity.User{
		ID:           uuid.New().String(),
		CompanyID:    company.ID,
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		PhoneNumber:  in.PhoneNumber,
		Role:         entity.RoleAdmin,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: dto.FromUser(user)}, nil
}

// Login verifica email/password, registra el último acceso y retorna
// token + usuario. Credenciales malas y usuario inactivo responden igual:
// no autorizado, sin distinguir el motivo.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.IsActive {
		return nil, domain.ErrUnauthorized
	}

	now := time.Now().UTC()
	user.LastLogin = &now
	user.UpdatedAt = now
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: dto.FromUser(user)}, nil
}

// Me retorna el perfil del usuario autenticado.
func (uc *AuthUseCase) Me(userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.FromUser(user)
	return &resp, nil
}

// ForgotPassword genera un token de reseteo de un solo uso (30 minutos) y lo
// manda por correo. Siempre responde igual exista o no el email, para no
// filtrar qué cuentas hay registradas.
func (uc *AuthUseCase) ForgotPassword(in dto.ForgotPasswordRequest) error {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return err
	}
	if user == nil || !user.IsActive {
		return nil
	}

	token := uuid.New().String()
	expiry := time.Now().UTC().Add(30 * time.Minute)
	user.ResetToken = hashToken(token)
	user.ResetExpiry = &expiry
	user.UpdatedAt = time.Now().UTC()
	if err := uc.userRepo.Update(user); err != nil {
		return err
	}
	return uc.mailer.SendPasswordReset(user.Email, token)
}

// ResetPassword cambia la contraseña si el token es válido y no expiró, y
// consume el token.
func (uc *AuthUseCase) ResetPassword(in dto.ResetPasswordRequest) error {
	user, err := uc.userRepo.GetByResetToken(hashToken(in.Token))
	if err != nil {
		return err
	}
	if user == nil || user.ResetExpiry == nil || time.Now().UTC().After(*user.ResetExpiry) {
		return domain.ErrUnauthorized
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)
	user.ResetToken = ""
	user.ResetExpiry = nil
	user.UpdatedAt = time.Now().UTC()
	return uc.userRepo.Update(user)
}

// Solo el hash del token toca la base; el token plano viaja una única vez en
// el correo.
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
