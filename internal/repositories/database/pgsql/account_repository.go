package pgsql

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/ZhouChenhao-hub/personal-accounting-app/internal/apperrors"
	"github.com/ZhouChenhao-hub/personal-accounting-app/internal/core/domain"
	portsrepo "github.com/ZhouChenhao-hub/personal-accounting-app/internal/core/ports/repositories"
	"github.com/ZhouChenhao-hub/personal-accounting-app/internal/models"
	"github.com/ZhouChenhao-hub/personal-accounting-app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

const accountColumns = `account_id, name, type, balance, created_at, last_updated_at`

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var modelAcc models.Account
	err := row.Scan(
		&modelAcc.AccountID,
		&modelAcc.Name,
		&modelAcc.Type,
		&modelAcc.Balance,
		&modelAcc.CreatedAt,
		&modelAcc.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	domainAcc := mapping.ToDomainAccount(modelAcc)
	return &domainAcc, nil
}

// SaveAccount inserts a new account.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	modelAcc := mapping.ToModelAccount(account)

	query := `
		INSERT INTO accounts (account_id, name, type, balance, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelAcc.AccountID,
		modelAcc.Name,
		modelAcc.Type,
		modelAcc.Balance,
		modelAcc.CreatedAt,
		modelAcc.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: account with ID %s already exists", apperrors.ErrDuplicate, modelAcc.AccountID)
		}
		return apperrors.NewAppError(500, "failed to save account "+modelAcc.AccountID, err)
	}
	return nil
}

// FindAccountByID retrieves an account by its ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = $1;`

	acc, err := scanAccount(r.Pool.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
		}
		return nil, apperrors.NewAppError(500, "failed to find account by ID "+accountID, err)
	}
	return acc, nil
}

// ListAccounts retrieves all accounts, newest first.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts ORDER BY created_at DESC;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query accounts", err)
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		var modelAcc models.Account
		if err := rows.Scan(
			&modelAcc.AccountID,
			&modelAcc.Name,
			&modelAcc.Type,
			&modelAcc.Balance,
			&modelAcc.CreatedAt,
			&modelAcc.LastUpdatedAt,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan account row", err)
		}
		accounts = append(accounts, mapping.ToDomainAccount(modelAcc))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating account rows", err)
	}
	return accounts, nil
}

// UpdateAccount updates an account's name and type.
func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	query := `
		UPDATE accounts
		SET name = $1, type = $2, last_updated_at = $3
		WHERE account_id = $4;
	`
	tag, err := r.Pool.Exec(ctx, query, account.Name, account.Type, account.LastUpdatedAt, account.AccountID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update account "+account.AccountID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, account.AccountID)
	}
	return nil
}

// DeleteAccount removes a transaction-free account. The reference count check
// and the delete share one database transaction so a concurrent insert cannot
// slip between them.
func (r *PgxAccountRepository) DeleteAccount(ctx context.Context, accountID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var count int
	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM transactions WHERE account_id = $1;`, accountID).Scan(&count); err != nil {
		return apperrors.NewAppError(500, "failed to count transactions for account "+accountID, err)
	}
	if count > 0 {
		return fmt.Errorf("%w: account %s still has %d transaction(s)", apperrors.ErrConstraintViolation, accountID, count)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM accounts WHERE account_id = $1;`, accountID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete account "+accountID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
	}

	return r.Commit(ctx, tx)
}

// FindAccountForUpdate selects an account and locks its row within tx.
func (r *PgxAccountRepository) FindAccountForUpdate(ctx context.Context, tx pgx.Tx, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = $1 FOR UPDATE;`

	acc, err := scanAccount(tx.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
		}
		return nil, apperrors.NewAppError(500, "failed to lock account "+accountID, err)
	}
	return acc, nil
}

// ApplyBalanceDeltasInTx adds each delta to the matching account balance
// within tx. Accounts are processed in sorted ID order so concurrent
// mutations acquire row locks in a consistent sequence.
func (r *PgxAccountRepository) ApplyBalanceDeltasInTx(ctx context.Context, tx pgx.Tx, deltas map[string]decimal.Decimal, now time.Time) error {
	accountIDs := make([]string, 0, len(deltas))
	for accID := range deltas {
		accountIDs = append(accountIDs, accID)
	}
	sort.Strings(accountIDs)

	query := `
		UPDATE accounts
		SET balance = balance + $1, last_updated_at = $2
		WHERE account_id = $3;
	`
	for _, accID := range accountIDs {
		tag, err := tx.Exec(ctx, query, deltas[accID], now, accID)
		if err != nil {
			return apperrors.NewAppError(500, "failed to apply balance delta to account "+accID, err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accID)
		}
	}
	return nil
}

// SetAccountBalanceInTx force-sets an account balance within tx. Adjustments
// write the target value directly instead of accumulating deltas.
func (r *PgxAccountRepository) SetAccountBalanceInTx(ctx context.Context, tx pgx.Tx, accountID string, balance decimal.Decimal, now time.Time) error {
	query := `
		UPDATE accounts
		SET balance = $1, last_updated_at = $2
		WHERE account_id = $3;
	`
	tag, err := tx.Exec(ctx, query, balance, now, accountID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to set balance for account "+accountID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
	}
	return nil
}
