package usecase

import (
	"context"

	"github.com/govindweb777/erp-sales-backend/internal/domain/repository"
)

// AdminTxRunner ejecuta operaciones administrativas transaccionales (cascada
// de borrado de sucursal sobre sus usuarios).
type AdminTxRunner interface {
	RunAdmin(ctx context.Context, fn func(
		branchRepo repository.BranchRepository,
		userRepo repository.UserRepository,
	) error) error
}
