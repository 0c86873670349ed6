package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/govindweb777/erp-sales-backend/internal/domain"
	"github.com/govindweb777/erp-sales-backend/internal/domain/entity"
	"github.com/govindweb777/erp-sales-backend/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación de UserRepository (usable con pool o tx).
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

const userColumns = `
	id, company_id, branch_id, name, email, password_hash, phone_number, role,
	module_access, profile_pic, is_active, reset_token, reset_expiry, last_login,
	created_at, updated_at`

// Create inserta el usuario. Email duplicado retorna ErrEmailAlreadyExists.
func (r *UserRepo) Create(user *entity.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	moduleAccess, err := json.Marshal(user.ModuleAccess)
	if err != nil {
		return fmt.Errorf("marshal module access: %w", err)
	}
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err = r.q.Exec(context.Background(), query,
		user.ID, user.CompanyID, nullIfEmpty(user.BranchID), user.Name, user.Email,
		user.PasswordHash, nullIfEmpty(user.PhoneNumber), user.Role,
		moduleAccess, nullIfEmpty(user.ProfilePic), user.IsActive,
		nullIfEmpty(user.ResetToken), user.ResetExpiry, user.LastLogin,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID. Retorna (nil, nil) si no existe.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	return r.getBy("id = $1", id)
}

// GetByEmail obtiene un usuario por email (para login).
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	return r.getBy("email = $1", email)
}

// GetByResetToken obtiene un usuario por el hash de su token de reseteo.
func (r *UserRepo) GetByResetToken(tokenHash string) (*entity.User, error) {
	return r.getBy("reset_token = $1", tokenHash)
}

func (r *UserRepo) getBy(cond string, arg any) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE ` + cond
	user, err := scanUser(r.q.QueryRow(context.Background(), query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

// Update reemplaza los campos mutables del usuario.
func (r *UserRepo) Update(user *entity.User) error {
	moduleAccess, err := json.Marshal(user.ModuleAccess)
	if err != nil {
		return fmt.Errorf("marshal module access: %w", err)
	}
	query := `
		UPDATE users
		SET branch_id     = $2,
		    name          = $3,
		    password_hash = $4,
		    phone_number  = $5,
		    role          = $6,
		    module_access = $7,
		    profile_pic   = $8,
		    is_active     = $9,
		    reset_token   = $10,
		    reset_expiry  = $11,
		    last_login    = $12,
		    updated_at    = $13
		WHERE id = $1`
	_, err = r.q.Exec(context.Background(), query,
		user.ID, nullIfEmpty(user.BranchID), user.Name, user.PasswordHash,
		nullIfEmpty(user.PhoneNumber), user.Role, moduleAccess,
		nullIfEmpty(user.ProfilePic), user.IsActive,
		nullIfEmpty(user.ResetToken), user.ResetExpiry, user.LastLogin, user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// List retorna la página y el total que matchea el filtro.
func (r *UserRepo) List(filter repository.UserFilter) ([]*entity.User, int64, error) {
	where := []string{"company_id = $1"}
	args := []any{filter.CompanyID}

	if filter.BranchID != "" {
		args = append(args, filter.BranchID)
		where = append(where, fmt.Sprintf("branch_id = $%d", len(args)))
	}
	if filter.Role != "" {
		args = append(args, filter.Role)
		where = append(where, fmt.Sprintf("role = $%d", len(args)))
	}
	if filter.IsActive != nil {
		args = append(args, *filter.IsActive)
		where = append(where, fmt.Sprintf("is_active = $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		where = append(where, fmt.Sprintf("(name ILIKE $%d OR email ILIKE $%d)", n, n))
	}
	cond := strings.Join(where, " AND ")

	var total int64
	if err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM users WHERE `+cond, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	args = append(args, limit, filter.Offset)
	query := fmt.Sprintf(`SELECT %s FROM users WHERE %s
		ORDER BY name LIMIT $%d OFFSET $%d`, userColumns, cond, len(args)-1, len(args))

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []*entity.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, user)
	}
	return users, total, rows.Err()
}

// SetActiveByBranch activa o desactiva en bloque los usuarios de una sucursal.
func (r *UserRepo) SetActiveByBranch(branchID string, active bool) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE users SET is_active = $2, updated_at = NOW() WHERE branch_id = $1`, branchID, active)
	if err != nil {
		return fmt.Errorf("set users active by branch: %w", err)
	}
	return nil
}

// Delete elimina el usuario.
func (r *UserRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var user entity.User
	var branchID, phoneNumber, profilePic, resetToken *string
	var moduleAccess []byte

	err := row.Scan(
		&user.ID, &user.CompanyID, &branchID, &user.Name, &user.Email,
		&user.PasswordHash, &phoneNumber, &user.Role,
		&moduleAccess, &profilePic, &user.IsActive,
		&resetToken, &user.ResetExpiry, &user.LastLogin,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	user.BranchID = derefStr(branchID)
	user.PhoneNumber = derefStr(phoneNumber)
	user.ProfilePic = derefStr(profilePic)
	user.ResetToken = derefStr(resetToken)

	if len(moduleAccess) > 0 {
		if err := json.Unmarshal(moduleAccess, &user.ModuleAccess); err != nil {
			return nil, fmt.Errorf("unmarshal module access: %w", err)
		}
	}
	return &user, nil
}
