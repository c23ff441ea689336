package services

import (
	"context"

	"github.com/ZhouChenhao-hub/personal-accounting-app/internal/core/domain"
)

// ReportingSvcFacade defines the read-only dashboard projections.
type ReportingSvcFacade interface {
	// GetStats returns the total balance and the current month's income,
	// expense and net.
	GetStats(ctx context.Context) (*domain.Stats, error)

	// GetExpenseByCategory breaks down the current month's expenses by
	// category1, largest first.
	GetExpenseByCategory(ctx context.Context) ([]domain.CategoryTotal, error)

	// GetIncomeByCategory breaks down the current month's income by
	// category1, largest first.
	GetIncomeByCategory(ctx context.Context) ([]domain.CategoryTotal, error)

	// GetMonthlyTrend returns month-bucketed income/expense sums over the
	// last n months. Buckets without transactions are omitted.
	GetMonthlyTrend(ctx context.Context, months int) ([]domain.TrendPoint, error)

	// GetIncomeExpenseTrend returns bucketed income/expense sums for a period
	// of "week", "month" or "year". Buckets without transactions are omitted.
	GetIncomeExpenseTrend(ctx context.Context, period string) ([]domain.TrendPoint, error)
}
