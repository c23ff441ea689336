package pgsql

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/ZhouChenhao-hub/personal-accounting-app/internal/apperrors"
	"github.com/ZhouChenhao-hub/personal-accounting-app/internal/core/domain"
	portsrepo "github.com/ZhouChenhao-hub/personal-accounting-app/internal/core/ports/repositories"
	"github.com/ZhouChenhao-hub/personal-accounting-app/internal/models"
	"github.com/ZhouChenhao-hub/personal-accounting-app/internal/utils/accounting"
	"github.com/ZhouChenhao-hub/personal-accounting-app/internal/utils/mapping"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxTransactionRepository struct {
	BaseRepository
	accountRepo portsrepo.AccountRepositoryFacade
}

// newPgxTransactionRepository creates a new repository for transaction data
// and the atomic balance mutations that accompany it.
func newPgxTransactionRepository(pool *pgxpool.Pool, accountRepo portsrepo.AccountRepositoryFacade) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
		accountRepo:    accountRepo,
	}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepositoryFacade
var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

const txnSelectColumns = `
	t.transaction_id, t.account_id, t.amount, t.kind,
	t.category1, t.category2, t.category3, t.description,
	t.date, t.created_at, t.last_updated_at, a.name AS account_name`

const txnInsertQuery = `
	INSERT INTO transactions (transaction_id, account_id, amount, kind, category1, category2, category3, description, date, created_at, last_updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);`

func execInsertTransaction(ctx context.Context, tx pgx.Tx, modelTxn models.Transaction) error {
	_, err := tx.Exec(ctx, txnInsertQuery,
		modelTxn.TransactionID,
		modelTxn.AccountID,
		modelTxn.Amount,
		modelTxn.Kind,
		modelTxn.Category1,
		modelTxn.Category2,
		modelTxn.Category3,
		modelTxn.Description,
		modelTxn.Date,
		modelTxn.CreatedAt,
		modelTxn.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23503": // FK violation: account does not exist
				return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, modelTxn.AccountID)
			case "23514": // CHECK violation: kind or amount out of range
				return fmt.Errorf("%w: transaction violates schema constraints", apperrors.ErrValidation)
			}
		}
		return apperrors.NewAppError(500, "failed to insert transaction "+modelTxn.TransactionID, err)
	}
	return nil
}

// lockAccounts locks the given account rows in sorted ID order.
func (r *PgxTransactionRepository) lockAccounts(ctx context.Context, tx pgx.Tx, accountIDs ...string) (map[string]domain.Account, error) {
	ids := make([]string, 0, len(accountIDs))
	seen := map[string]bool{}
	for _, id := range accountIDs {
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	accounts := make(map[string]domain.Account, len(ids))
	for _, id := range ids {
		acc, err := r.accountRepo.FindAccountForUpdate(ctx, tx, id)
		if err != nil {
			return nil, err
		}
		accounts[id] = *acc
	}
	return accounts, nil
}

// SaveTransaction inserts a transaction and applies delta to its account
// balance within one database transaction.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction, delta decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := r.lockAccounts(ctx, tx, txn.AccountID); err != nil {
		return err
	}
	if err := execInsertTransaction(ctx, tx, mapping.ToModelTransaction(txn)); err != nil {
		return err
	}
	deltas := map[string]decimal.Decimal{txn.AccountID: delta}
	if err := r.accountRepo.ApplyBalanceDeltasInTx(ctx, tx, deltas, txn.CreatedAt); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// findTransactionForUpdate reads the pre-image of a transaction under a row
// lock inside tx.
func (r *PgxTransactionRepository) findTransactionForUpdate(ctx context.Context, tx pgx.Tx, transactionID string) (*domain.Transaction, error) {
	query := `
		SELECT transaction_id, account_id, amount, kind, category1, category2, category3, description, date, created_at, last_updated_at
		FROM transactions
		WHERE transaction_id = $1
		FOR UPDATE;
	`
	var modelTxn models.Transaction
	err := tx.QueryRow(ctx, query, transactionID).Scan(
		&modelTxn.TransactionID,
		&modelTxn.AccountID,
		&modelTxn.Amount,
		&modelTxn.Kind,
		&modelTxn.Category1,
		&modelTxn.Category2,
		&modelTxn.Category3,
		&modelTxn.Description,
		&modelTxn.Date,
		&modelTxn.CreatedAt,
		&modelTxn.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: transaction %s", apperrors.ErrNotFound, transactionID)
		}
		return nil, apperrors.NewAppError(500, "failed to lock transaction "+transactionID, err)
	}
	domainTxn := mapping.ToDomainTransaction(modelTxn)
	return &domainTxn, nil
}

// UpdateTransaction replaces a transaction, reversing the old balance effect
// before applying the new one. The pre-image is read inside the same
// database transaction as the write, so concurrent updates cannot be lost.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	old, err := r.findTransactionForUpdate(ctx, tx, txn.TransactionID)
	if err != nil {
		return err
	}

	// A zero date means "keep the original transaction date".
	if txn.Date.IsZero() {
		txn.Date = old.Date
	}
	txn.CreatedAt = old.CreatedAt

	if _, err := r.lockAccounts(ctx, tx, old.AccountID, txn.AccountID); err != nil {
		return err
	}

	deltas, err := accounting.UpdateDeltas(*old, txn)
	if err != nil {
		return apperrors.NewAppError(500, "failed to compute balance deltas for transaction "+txn.TransactionID, err)
	}

	query := `
		UPDATE transactions
		SET account_id = $1, amount = $2, kind = $3,
		    category1 = $4, category2 = $5, category3 = $6,
		    description = $7, date = $8, last_updated_at = $9
		WHERE transaction_id = $10;
	`
	modelTxn := mapping.ToModelTransaction(txn)
	if _, err := tx.Exec(ctx, query,
		modelTxn.AccountID,
		modelTxn.Amount,
		modelTxn.Kind,
		modelTxn.Category1,
		modelTxn.Category2,
		modelTxn.Category3,
		modelTxn.Description,
		modelTxn.Date,
		modelTxn.LastUpdatedAt,
		modelTxn.TransactionID,
	); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, txn.AccountID)
		}
		return apperrors.NewAppError(500, "failed to update transaction "+txn.TransactionID, err)
	}

	if err := r.accountRepo.ApplyBalanceDeltasInTx(ctx, tx, deltas, txn.LastUpdatedAt); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// DeleteTransaction removes a transaction and reverses its balance effect
// within one database transaction.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	old, err := r.findTransactionForUpdate(ctx, tx, transactionID)
	if err != nil {
		return err
	}
	if _, err := r.lockAccounts(ctx, tx, old.AccountID); err != nil {
		return err
	}

	reversal, err := accounting.DeleteDelta(*old)
	if err != nil {
		return apperrors.NewAppError(500, "failed to compute reversal for transaction "+transactionID, err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM transactions WHERE transaction_id = $1;`, transactionID); err != nil {
		return apperrors.NewAppError(500, "failed to delete transaction "+transactionID, err)
	}

	deltas := map[string]decimal.Decimal{old.AccountID: reversal}
	if err := r.accountRepo.ApplyBalanceDeltasInTx(ctx, tx, deltas, time.Now()); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// AdjustAccountBalance force-sets an account balance and records one
// compensating transaction when the delta is non-zero. The balance is
// written absolutely rather than delta-summed, so repeated adjustments
// cannot accumulate rounding drift.
func (r *PgxTransactionRepository) AdjustAccountBalance(ctx context.Context, accountID string, newBalance decimal.Decimal, reason string, now time.Time) (*domain.Transaction, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	accounts, err := r.lockAccounts(ctx, tx, accountID)
	if err != nil {
		return nil, err
	}
	current := accounts[accountID].Balance
	adjustment := newBalance.Sub(current)

	if err := r.accountRepo.SetAccountBalanceInTx(ctx, tx, accountID, newBalance, now); err != nil {
		return nil, err
	}

	if adjustment.IsZero() {
		// Nothing to compensate; no synthetic transaction.
		return nil, r.Commit(ctx, tx)
	}

	kind := domain.Income
	if adjustment.IsNegative() {
		kind = domain.Expense
	}
	description := fmt.Sprintf("balance adjustment (from %s to %s)", current.StringFixed(2), newBalance.StringFixed(2))
	if reason != "" {
		description = fmt.Sprintf("balance adjustment: %s (from %s to %s)", reason, current.StringFixed(2), newBalance.StringFixed(2))
	}

	synthetic := domain.Transaction{
		TransactionID: uuid.NewString(),
		AccountID:     accountID,
		Amount:        adjustment.Abs(),
		Kind:          kind,
		Category1:     domain.AdjustmentCategory1,
		Category2:     domain.AdjustmentCategory2,
		Category3:     domain.AdjustmentCategory3,
		Description:   description,
		Date:          now,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if err := execInsertTransaction(ctx, tx, mapping.ToModelTransaction(synthetic)); err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &synthetic, nil
}

// FindTransactionByID retrieves a transaction with its account name.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `
		SELECT ` + txnSelectColumns + `
		FROM transactions t
		JOIN accounts a ON t.account_id = a.account_id
		WHERE t.transaction_id = $1;
	`
	txn, err := scanJoinedTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: transaction %s", apperrors.ErrNotFound, transactionID)
		}
		return nil, apperrors.NewAppError(500, "failed to find transaction by ID "+transactionID, err)
	}
	return txn, nil
}

// ListTransactions retrieves the most recent transactions, ordered by date
// descending then creation time descending.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, limit int) ([]domain.Transaction, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `
		SELECT ` + txnSelectColumns + `
		FROM transactions t
		JOIN accounts a ON t.account_id = a.account_id
		ORDER BY t.date DESC, t.created_at DESC
		LIMIT $1;
	`
	rows, err := r.Pool.Query(ctx, query, limit)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query transactions", err)
	}
	defer rows.Close()

	return collectJoinedTransactions(rows)
}

// SearchTransactions compiles the filter predicates into a parameterized
// query. Values are always bound, never interpolated into the query text.
func (r *PgxTransactionRepository) SearchTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	var sb strings.Builder
	sb.WriteString(`
		SELECT ` + txnSelectColumns + `
		FROM transactions t
		JOIN accounts a ON t.account_id = a.account_id
		WHERE 1=1`)

	args := []any{}
	addClause := func(clause string, value any) {
		args = append(args, value)
		placeholder := "$" + strconv.Itoa(len(args))
		sb.WriteString(" AND " + strings.ReplaceAll(clause, "?", placeholder))
	}

	if filter.Keyword != "" {
		args = append(args, "%"+filter.Keyword+"%")
		placeholder := "$" + strconv.Itoa(len(args))
		sb.WriteString(fmt.Sprintf(
			" AND (t.description ILIKE %[1]s OR t.category1 ILIKE %[1]s OR t.category2 ILIKE %[1]s OR t.category3 ILIKE %[1]s)",
			placeholder,
		))
	}
	if filter.AccountID != "" {
		addClause("t.account_id = ?", filter.AccountID)
	}
	if filter.Kind != "" {
		addClause("t.kind = ?", string(filter.Kind))
	}
	if filter.Category1 != "" {
		addClause("t.category1 = ?", filter.Category1)
	}
	if filter.Category2 != "" {
		addClause("t.category2 = ?", filter.Category2)
	}
	if filter.Category3 != "" {
		addClause("t.category3 = ?", filter.Category3)
	}
	if filter.DateFrom != nil {
		addClause("t.date >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		addClause("t.date <= ?", *filter.DateTo)
	}

	sb.WriteString(" ORDER BY t.date DESC, t.created_at DESC;")

	rows, err := r.Pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to search transactions", err)
	}
	defer rows.Close()

	return collectJoinedTransactions(rows)
}

func scanJoinedTransaction(row pgx.Row) (*domain.Transaction, error) {
	var modelTxn models.Transaction
	var accountName string
	err := row.Scan(
		&modelTxn.TransactionID,
		&modelTxn.AccountID,
		&modelTxn.Amount,
		&modelTxn.Kind,
		&modelTxn.Category1,
		&modelTxn.Category2,
		&modelTxn.Category3,
		&modelTxn.Description,
		&modelTxn.Date,
		&modelTxn.CreatedAt,
		&modelTxn.LastUpdatedAt,
		&accountName,
	)
	if err != nil {
		return nil, err
	}
	domainTxn := mapping.ToDomainTransaction(modelTxn)
	domainTxn.AccountName = accountName
	return &domainTxn, nil
}

func collectJoinedTransactions(rows pgx.Rows) ([]domain.Transaction, error) {
	transactions := []domain.Transaction{}
	for rows.Next() {
		txn, err := scanJoinedTransaction(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan transaction row", err)
		}
		transactions = append(transactions, *txn)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating transaction rows", err)
	}
	return transactions, nil
}
