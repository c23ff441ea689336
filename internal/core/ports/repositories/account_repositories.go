package repositories

import (
	"context"
	"time"

	"github.com/ZhouChenhao-hub/personal-accounting-app/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccounts retrieves all accounts, newest first.
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateAccount updates an account's name and type.
	UpdateAccount(ctx context.Context, account domain.Account) error

	// DeleteAccount removes an account. It fails with ErrConstraintViolation
	// if any transaction still references the account; the existence check
	// and the delete happen in one atomic unit.
	DeleteAccount(ctx context.Context, accountID string) error
}

// AccountTransactionSupport defines operations used by ledger mutations that
// must touch account balances inside an open database transaction.
type AccountTransactionSupport interface {
	// FindAccountForUpdate selects an account and locks its row within tx.
	FindAccountForUpdate(ctx context.Context, tx pgx.Tx, accountID string) (*domain.Account, error)

	// ApplyBalanceDeltasInTx adds each delta to the matching account balance within tx.
	ApplyBalanceDeltasInTx(ctx context.Context, tx pgx.Tx, deltas map[string]decimal.Decimal, now time.Time) error

	// SetAccountBalanceInTx force-sets an account balance within tx. Used by
	// adjustments, which write the target value directly rather than
	// accumulating deltas.
	SetAccountBalanceInTx(ctx context.Context, tx pgx.Tx, accountID string, balance decimal.Decimal, now time.Time) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
	AccountTransactionSupport
}
