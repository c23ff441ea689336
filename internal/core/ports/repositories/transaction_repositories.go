package repositories

import (
	"context"
	"time"

	"github.com/ZhouChenhao-hub/personal-accounting-app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionReader defines read operations for transaction data
type TransactionReader interface {
	// FindTransactionByID retrieves a transaction (with its account name) by ID.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves the most recent transactions, ordered by
	// date descending then creation time descending.
	ListTransactions(ctx context.Context, limit int) ([]domain.Transaction, error)

	// SearchTransactions applies the filter predicates conjunctively and
	// returns matches ordered by date descending then creation time descending.
	SearchTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error)
}

// LedgerWriter defines the mutating ledger operations. Each call is a single
// atomic unit: the transaction row change and the account balance change
// either both commit or neither does.
type LedgerWriter interface {
	// SaveTransaction inserts a transaction and applies delta to its account balance.
	SaveTransaction(ctx context.Context, txn domain.Transaction, delta decimal.Decimal) error

	// UpdateTransaction replaces a transaction. The pre-image is read under a
	// row lock inside the same unit; its balance effect is reversed on the old
	// account before the new effect is applied to the (possibly different) new
	// account.
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error

	// DeleteTransaction removes a transaction and reverses its balance
	// effect. Returns ErrNotFound if the transaction does not exist.
	DeleteTransaction(ctx context.Context, transactionID string) error

	// AdjustAccountBalance force-sets an account balance and, when the
	// resulting delta is non-zero, inserts one compensating transaction dated
	// today. The synthetic transaction is returned, or nil for a no-op adjust.
	AdjustAccountBalance(ctx context.Context, accountID string, newBalance decimal.Decimal, reason string, now time.Time) (*domain.Transaction, error)
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	LedgerWriter
}
