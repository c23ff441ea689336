package pgsql

import (
	"context"
	"time"

	"github.com/ZhouChenhao-hub/personal-accounting-app/internal/apperrors"
	"github.com/ZhouChenhao-hub/personal-accounting-app/internal/core/domain"
	portsrepo "github.com/ZhouChenhao-hub/personal-accounting-app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository
func newReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// GetTotalBalance sums the balances of all accounts.
func (r *reportingRepository) GetTotalBalance(ctx context.Context) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(balance), 0) FROM accounts;`

	var total decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query).Scan(&total); err != nil {
		return decimal.Zero, apperrors.NewAppError(500, "failed to query total balance", err)
	}
	return total, nil
}

// SumAmountByKind sums transaction amounts of one kind inside [from, to).
func (r *reportingRepository) SumAmountByKind(ctx context.Context, kind domain.TransactionKind, from, to time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM transactions
		WHERE kind = $1 AND date >= $2 AND date < $3;
	`
	var sum decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, string(kind), from, to).Scan(&sum); err != nil {
		return decimal.Zero, apperrors.NewAppError(500, "failed to sum amounts for kind "+string(kind), err)
	}
	return sum, nil
}

// GetCategoryTotals groups transactions of one kind inside [from, to) by
// category1, ordered by summed amount descending.
func (r *reportingRepository) GetCategoryTotals(ctx context.Context, kind domain.TransactionKind, from, to time.Time) ([]domain.CategoryTotal, error) {
	query := `
		SELECT category1, SUM(amount) AS amount
		FROM transactions
		WHERE kind = $1 AND date >= $2 AND date < $3
		GROUP BY category1
		ORDER BY amount DESC;
	`
	rows, err := r.Pool.Query(ctx, query, string(kind), from, to)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query category totals", err)
	}
	defer rows.Close()

	totals := []domain.CategoryTotal{}
	for rows.Next() {
		var row domain.CategoryTotal
		if err := rows.Scan(&row.Category1, &row.Amount); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan category total row", err)
		}
		totals = append(totals, row)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating category total rows", err)
	}
	return totals, nil
}

// ListAmountsSince returns the (date, kind, amount) projection of every
// transaction dated on or after from. Bucketing happens in the service so the
// query stays free of engine-specific date formatting.
func (r *reportingRepository) ListAmountsSince(ctx context.Context, from time.Time) ([]domain.TransactionAmount, error) {
	query := `
		SELECT date, kind, amount
		FROM transactions
		WHERE date >= $1
		ORDER BY date;
	`
	rows, err := r.Pool.Query(ctx, query, from)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query transaction amounts", err)
	}
	defer rows.Close()

	amounts := []domain.TransactionAmount{}
	for rows.Next() {
		var row domain.TransactionAmount
		var kind string
		if err := rows.Scan(&row.Date, &kind, &row.Amount); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan transaction amount row", err)
		}
		row.Kind = domain.TransactionKind(kind)
		amounts = append(amounts, row)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating transaction amount rows", err)
	}
	return amounts, nil
}
