package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/ZhouChenhao-hub/personal-accounting-app/internal/apperrors"
	"github.com/ZhouChenhao-hub/personal-accounting-app/internal/core/domain"
	portsrepo "github.com/ZhouChenhao-hub/personal-accounting-app/internal/core/ports/repositories"
	portssvc "github.com/ZhouChenhao-hub/personal-accounting-app/internal/core/ports/services"
	"github.com/ZhouChenhao-hub/personal-accounting-app/internal/utils/timebucket"
	"github.com/shopspring/decimal"
)

// reportingService provides read-only dashboard projections.
type reportingService struct {
	reportingRepo portsrepo.ReportingRepository
	now           func() time.Time
}

// ReportingServiceOption is a functional option for configuring the reporting service
type ReportingServiceOption func(*reportingService)

// WithReportingClock overrides the clock used for window computation. Intended for tests.
func WithReportingClock(now func() time.Time) ReportingServiceOption {
	return func(s *reportingService) {
		s.now = now
	}
}

// NewReportingService creates a new ReportingService.
func NewReportingService(reportingRepo portsrepo.ReportingRepository, options ...ReportingServiceOption) portssvc.ReportingSvcFacade {
	svc := &reportingService{
		reportingRepo: reportingRepo,
		now:           time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure reportingService implements the portssvc.ReportingSvcFacade interface
var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

func (s *reportingService) GetStats(ctx context.Context) (*domain.Stats, error) {
	total, err := s.reportingRepo.GetTotalBalance(ctx)
	if err != nil {
		return nil, err
	}

	from, to := timebucket.MonthBounds(s.now())
	income, err := s.reportingRepo.SumAmountByKind(ctx, domain.Income, from, to)
	if err != nil {
		return nil, err
	}
	expense, err := s.reportingRepo.SumAmountByKind(ctx, domain.Expense, from, to)
	if err != nil {
		return nil, err
	}

	return &domain.Stats{
		TotalBalance:   total,
		MonthlyIncome:  income,
		MonthlyExpense: expense,
		MonthlyNet:     income.Sub(expense),
	}, nil
}

func (s *reportingService) GetExpenseByCategory(ctx context.Context) ([]domain.CategoryTotal, error) {
	from, to := timebucket.MonthBounds(s.now())
	return s.reportingRepo.GetCategoryTotals(ctx, domain.Expense, from, to)
}

func (s *reportingService) GetIncomeByCategory(ctx context.Context) ([]domain.CategoryTotal, error) {
	from, to := timebucket.MonthBounds(s.now())
	return s.reportingRepo.GetCategoryTotals(ctx, domain.Income, from, to)
}

func (s *reportingService) GetMonthlyTrend(ctx context.Context, months int) ([]domain.TrendPoint, error) {
	if months <= 0 {
		months = 12
	}
	from := timebucket.MonthsWindowStart(s.now(), months)
	amounts, err := s.reportingRepo.ListAmountsSince(ctx, from)
	if err != nil {
		return nil, err
	}
	return bucketize(amounts, timebucket.MonthKey), nil
}

func (s *reportingService) GetIncomeExpenseTrend(ctx context.Context, period string) ([]domain.TrendPoint, error) {
	p, err := timebucket.ParsePeriod(period)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	from := p.WindowStart(s.now())
	amounts, err := s.reportingRepo.ListAmountsSince(ctx, from)
	if err != nil {
		return nil, err
	}
	return bucketize(amounts, p.Key), nil
}

// bucketize groups transaction amounts by bucket key and sums income and
// expense per bucket. Only buckets with at least one transaction appear, in
// ascending key order.
func bucketize(amounts []domain.TransactionAmount, key func(time.Time) string) []domain.TrendPoint {
	buckets := map[string]*domain.TrendPoint{}
	for _, amt := range amounts {
		k := key(amt.Date)
		point, ok := buckets[k]
		if !ok {
			point = &domain.TrendPoint{Bucket: k, Income: decimal.Zero, Expense: decimal.Zero}
			buckets[k] = point
		}
		switch amt.Kind {
		case domain.Income:
			point.Income = point.Income.Add(amt.Amount)
		case domain.Expense:
			point.Expense = point.Expense.Add(amt.Amount)
		}
	}

	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	points := make([]domain.TrendPoint, 0, len(keys))
	for _, k := range keys {
		points = append(points, *buckets[k])
	}
	return points
}
