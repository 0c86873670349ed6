package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/govindweb777/erp-sales-backend/internal/domain"
	"github.com/govindweb777/erp-sales-backend/internal/domain/entity"
	"github.com/govindweb777/erp-sales-backend/internal/domain/repository"
)

var _ repository.AccountGroupRepository = (*AccountGroupRepo)(nil)

// AccountGroupRepo implementación de AccountGroupRepository.
type AccountGroupRepo struct {
	q Querier
}

// NewAccountGroupRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAccountGroupRepository(q Querier) *AccountGroupRepo {
	return &AccountGroupRepo{q: q}
}

const accountGroupColumns = `
	id, company_id, branch_id, chart_of_account_id, under_group, group_name,
	short_name, gstin, pan, nature_of_business, credit_period_days, credit_limit,
	default_payment_mode, contact, opening_balance, created_by,
	is_active, is_deleted, created_at, updated_at`

func (r *AccountGroupRepo) Create(group *entity.AccountGroup) error {
	if group.ID == "" {
		group.ID = uuid.New().String()
	}
	contact, openingBalance, err := marshalAccountGroupJSON(group)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO account_groups (` + accountGroupColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
		        $15, $16, $17, $18, $19, $20)`
	_, err = r.q.Exec(context.Background(), query,
		group.ID, group.CompanyID, group.BranchID,
		nullIfEmpty(group.ChartOfAccountID), nullIfEmpty(group.UnderGroup), group.GroupName,
		nullIfEmpty(group.ShortName), nullIfEmpty(group.GSTIN), nullIfEmpty(group.PAN),
		nullIfEmpty(group.NatureOfBusiness), group.CreditPeriodDays, group.CreditLimit,
		nullIfEmpty(group.DefaultPaymentMode), contact, openingBalance, nullIfEmpty(group.CreatedBy),
		group.IsActive, group.IsDeleted, group.CreatedAt, group.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert account group: %w", err)
	}
	return nil
}

// GetByID retorna (nil, nil) si no existe.
func (r *AccountGroupRepo) GetByID(id string) (*entity.AccountGroup, error) {
	query := `SELECT ` + accountGroupColumns + ` FROM account_groups WHERE id = $1`
	group, err := scanAccountGroup(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get account group: %w", err)
	}
	return group, nil
}

func (r *AccountGroupRepo) Update(group *entity.AccountGroup) error {
	contact, openingBalance, err := marshalAccountGroupJSON(group)
	if err != nil {
		return err
	}
	query := `
		UPDATE account_groups
		SET chart_of_account_id  = $2,
		    under_group          = $3,
		    group_name           = $4,
		    short_name           = $5,
		    gstin                = $6,
		    pan                  = $7,
		    nature_of_business   = $8,
		    credit_period_days   = $9,
		    credit_limit         = $10,
		    default_payment_mode = $11,
		    contact              = $12,
		    opening_balance      = $13,
		    is_active            = $14,
		    updated_at           = $15
		WHERE id = $1`
	_, err = r.q.Exec(context.Background(), query,
		group.ID, nullIfEmpty(group.ChartOfAccountID), nullIfEmpty(group.UnderGroup), group.GroupName,
		nullIfEmpty(group.ShortName), nullIfEmpty(group.GSTIN), nullIfEmpty(group.PAN),
		nullIfEmpty(group.NatureOfBusiness), group.CreditPeriodDays, group.CreditLimit,
		nullIfEmpty(group.DefaultPaymentMode), contact, openingBalance,
		group.IsActive, group.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update account group: %w", err)
	}
	return nil
}

// List retorna la página y el total que matchea el filtro.
func (r *AccountGroupRepo) List(filter repository.MasterFilter) ([]*entity.AccountGroup, int64, error) {
	cond, args := masterWhere(filter, "group_name", "short_name", "gstin")

	var total int64
	if err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM account_groups WHERE `+cond, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count account groups: %w", err)
	}

	args = append(args, masterLimit(filter), filter.Offset)
	query := fmt.Sprintf(`SELECT %s FROM account_groups WHERE %s
		ORDER BY group_name LIMIT $%d OFFSET $%d`, accountGroupColumns, cond, len(args)-1, len(args))

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list account groups: %w", err)
	}
	defer rows.Close()

	var groups []*entity.AccountGroup
	for rows.Next() {
		group, err := scanAccountGroup(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan account group: %w", err)
		}
		groups = append(groups, group)
	}
	return groups, total, rows.Err()
}

func (r *AccountGroupRepo) SoftDelete(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE account_groups SET is_deleted = TRUE, is_active = FALSE, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("soft delete account group: %w", err)
	}
	return nil
}

func (r *AccountGroupRepo) Restore(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE account_groups SET is_deleted = FALSE, is_active = TRUE, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("restore account group: %w", err)
	}
	return nil
}

func marshalAccountGroupJSON(group *entity.AccountGroup) (contact, openingBalance []byte, err error) {
	if contact, err = json.Marshal(group.Contact); err != nil {
		return nil, nil, fmt.Errorf("marshal account group contact: %w", err)
	}
	if openingBalance, err = json.Marshal(group.OpeningBalance); err != nil {
		return nil, nil, fmt.Errorf("marshal opening balance: %w", err)
	}
	return contact, openingBalance, nil
}

func scanAccountGroup(row pgx.Row) (*entity.AccountGroup, error) {
	var group entity.AccountGroup
	var chartOfAccountID, underGroup, shortName, gstin, pan *string
	var natureOfBusiness, defaultPaymentMode, createdBy *string
	var contact, openingBalance []byte

	err := row.Scan(
		&group.ID, &group.CompanyID, &group.BranchID,
		&chartOfAccountID, &underGroup, &group.GroupName,
		&shortName, &gstin, &pan,
		&natureOfBusiness, &group.CreditPeriodDays, &group.CreditLimit,
		&defaultPaymentMode, &contact, &openingBalance, &createdBy,
		&group.IsActive, &group.IsDeleted, &group.CreatedAt, &group.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	group.ChartOfAccountID = derefStr(chartOfAccountID)
	group.UnderGroup = derefStr(underGroup)
	group.ShortName = derefStr(shortName)
	group.GSTIN = derefStr(gstin)
	group.PAN = derefStr(pan)
	group.NatureOfBusiness = derefStr(natureOfBusiness)
	group.DefaultPaymentMode = derefStr(defaultPaymentMode)
	group.CreatedBy = derefStr(createdBy)

	if len(contact) > 0 {
		if err := json.Unmarshal(contact, &group.Contact); err != nil {
			return nil, fmt.Errorf("unmarshal account group contact: %w", err)
		}
	}
	if len(openingBalance) > 0 {
		if err := json.Unmarshal(openingBalance, &group.OpeningBalance); err != nil {
			return nil, fmt.Errorf("unmarshal opening balance: %w", err)
		}
	}
	return &group, nil
}
