package repositories

import (
	"context"
	"time"

	"github.com/ZhouChenhao-hub/personal-accounting-app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportingRepository defines the read-only projections used by dashboards.
// Date windows are half-open [from, to) and computed by the caller, so no
// date arithmetic happens inside SQL.
type ReportingRepository interface {
	// GetTotalBalance sums the balances of all accounts.
	GetTotalBalance(ctx context.Context) (decimal.Decimal, error)

	// SumAmountByKind sums transaction amounts of one kind inside [from, to).
	SumAmountByKind(ctx context.Context, kind domain.TransactionKind, from, to time.Time) (decimal.Decimal, error)

	// GetCategoryTotals groups transactions of one kind inside [from, to) by
	// category1, ordered by summed amount descending.
	GetCategoryTotals(ctx context.Context, kind domain.TransactionKind, from, to time.Time) ([]domain.CategoryTotal, error)

	// ListAmountsSince returns the (date, kind, amount) projection of every
	// transaction dated on or after from, for trend bucketing.
	ListAmountsSince(ctx context.Context, from time.Time) ([]domain.TransactionAmount, error)
}
