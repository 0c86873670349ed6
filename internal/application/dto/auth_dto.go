package dto

import (
	"time"

	"github.com/govindweb777/erp-sales-backend/internal/domain/entity"
)

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginResponse token + usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// RegisterRequest alta de empresa + su admin en un solo paso.
type RegisterRequest struct {
	CompanyName string `json:"companyName" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	PhoneNumber string `json:"phoneNumber"`
}

// ForgotPasswordRequest body para POST /api/auth/forgot-password.
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordRequest body para POST /api/auth/reset-password.
type ResetPasswordRequest struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

// UserResponse usuario en respuestas (nunca incluye el hash).
type UserResponse struct {
	ID           string              `json:"id"`
	CompanyID    string              `json:"companyId"`
	BranchID     string              `json:"branchId,omitempty"`
	Name         string              `json:"name"`
	Email        string              `json:"email"`
	PhoneNumber  string              `json:"phoneNumber,omitempty"`
	Role         string              `json:"role"`
	ModuleAccess entity.ModuleAccess `json:"moduleAccess"`
	ProfilePic   string              `json:"profilePic,omitempty"`
	IsActive     bool                `json:"isActive"`
	LastLogin    *time.Time          `json:"lastLogin,omitempty"`
	CreatedAt    time.Time           `json:"createdAt"`
}

// FromUser mapea la entidad a su DTO de respuesta.
func FromUser(u *entity.User) UserResponse {
	return UserResponse{
		ID:           u.ID,
		CompanyID:    u.CompanyID,
		BranchID:     u.BranchID,
		Name:         u.Name,
		Email:        u.Email,
		PhoneNumber:  u.PhoneNumber,
		Role:         u.Role,
		ModuleAccess: u.ModuleAccess,
		ProfilePic:   u.ProfilePic,
		IsActive:     u.IsActive,
		LastLogin:    u.LastLogin,
		CreatedAt:    u.CreatedAt,
	}
}
