package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/govindweb777/erp-sales-backend/internal/domain"
	"github.com/govindweb777/erp-sales-backend/internal/domain/entity"
	"github.com/govindweb777/erp-sales-backend/internal/domain/repository"
)

var _ repository.BankAccountRepository = (*BankAccountRepo)(nil)

// BankAccountRepo implementación de BankAccountRepository.
type BankAccountRepo struct {
	q Querier
}

// NewBankAccountRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBankAccountRepository(q Querier) *BankAccountRepo {
	return &BankAccountRepo{q: q}
}

const bankAccountColumns = `
	id, company_id, branch_id, under_group_id, account_name, short_name,
	bank_holder_name, account_number, ifsc, bank_name, opening_balance,
	balance_type, created_by, is_active, is_deleted, created_at, updated_at`

func (r *BankAccountRepo) Create(account *entity.BankAccount) error {
	if account.ID == "" {
		account.ID = uuid.New().String()
	}
	query := `
		INSERT INTO bank_accounts (` + bankAccountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.q.Exec(context.Background(), query,
		account.ID, account.CompanyID, account.BranchID,
		nullIfEmpty(account.UnderGroupID), account.AccountName, nullIfEmpty(account.ShortName),
		nullIfEmpty(account.BankHolderName), nullIfEmpty(account.AccountNumber),
		nullIfEmpty(account.IFSC), nullIfEmpty(account.BankName), account.OpeningBalance,
		nullIfEmpty(account.BalanceType), nullIfEmpty(account.CreatedBy),
		account.IsActive, account.IsDeleted, account.CreatedAt, account.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert bank account: %w", err)
	}
	return nil
}

// GetByID retorna (nil, nil) si no existe.
func (r *BankAccountRepo) GetByID(id string) (*entity.BankAccount, error) {
	query := `SELECT ` + bankAccountColumns + ` FROM bank_accounts WHERE id = $1`
	account, err := scanBankAccount(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bank account: %w", err)
	}
	return account, nil
}

func (r *BankAccountRepo) Update(account *entity.BankAccount) error {
	query := `
		UPDATE bank_accounts
		SET under_group_id   = $2,
		    account_name     = $3,
		    short_name       = $4,
		    bank_holder_name = $5,
		    account_number   = $6,
		    ifsc             = $7,
		    bank_name        = $8,
		    opening_balance  = $9,
		    balance_type     = $10,
		    is_active        = $11,
		    updated_at       = $12
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		account.ID, nullIfEmpty(account.UnderGroupID), account.AccountName,
		nullIfEmpty(account.ShortName), nullIfEmpty(account.BankHolderName),
		nullIfEmpty(account.AccountNumber), nullIfEmpty(account.IFSC),
		nullIfEmpty(account.BankName), account.OpeningBalance,
		nullIfEmpty(account.BalanceType), account.IsActive, account.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update bank account: %w", err)
	}
	return nil
}

// List retorna la página y el total que matchea el filtro.
func (r *BankAccountRepo) List(filter repository.MasterFilter) ([]*entity.BankAccount, int64, error) {
	cond, args := masterWhere(filter, "account_name", "short_name", "bank_name")

	var total int64
	if err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM bank_accounts WHERE `+cond, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count bank accounts: %w", err)
	}

	args = append(args, masterLimit(filter), filter.Offset)
	query := fmt.Sprintf(`SELECT %s FROM bank_accounts WHERE %s
		ORDER BY account_name LIMIT $%d OFFSET $%d`, bankAccountColumns, cond, len(args)-1, len(args))

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list bank accounts: %w", err)
	}
	defer rows.Close()

	var accounts []*entity.BankAccount
	for rows.Next() {
		account, err := scanBankAccount(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan bank account: %w", err)
		}
		accounts = append(accounts, account)
	}
	return accounts, total, rows.Err()
}

func (r *BankAccountRepo) SoftDelete(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE bank_accounts SET is_deleted = TRUE, is_active = FALSE, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("soft delete bank account: %w", err)
	}
	return nil
}

func (r *BankAccountRepo) Restore(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE bank_accounts SET is_deleted = FALSE, is_active = TRUE, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("restore bank account: %w", err)
	}
	return nil
}

func scanBankAccount(row pgx.Row) (*entity.BankAccount, error) {
	var account entity.BankAccount
	var underGroupID, shortName, bankHolderName, accountNumber *string
	var ifsc, bankName, balanceType, createdBy *string

	err := row.Scan(
		&account.ID, &account.CompanyID, &account.BranchID,
		&underGroupID, &account.AccountName, &shortName,
		&bankHolderName, &accountNumber, &ifsc, &bankName, &account.OpeningBalance,
		&balanceType, &createdBy,
		&account.IsActive, &account.IsDeleted, &account.CreatedAt, &account.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	account.UnderGroupID = derefStr(underGroupID)
	account.ShortName = derefStr(shortName)
	account.BankHolderName = derefStr(bankHolderName)
	account.AccountNumber = derefStr(accountNumber)
	account.IFSC = derefStr(ifsc)
	account.BankName = derefStr(bankName)
	account.BalanceType = derefStr(balanceType)
	account.CreatedBy = derefStr(createdBy)
	return &account, nil
}
