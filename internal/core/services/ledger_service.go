package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ZhouChenhao-hub/personal-accounting-app/internal/apperrors"
	"github.com/ZhouChenhao-hub/personal-accounting-app/internal/core/domain"
	portsrepo "github.com/ZhouChenhao-hub/personal-accounting-app/internal/core/ports/repositories"
	portssvc "github.com/ZhouChenhao-hub/personal-accounting-app/internal/core/ports/services"
	"github.com/ZhouChenhao-hub/personal-accounting-app/internal/dto"
	"github.com/ZhouChenhao-hub/personal-accounting-app/internal/middleware"
	"github.com/ZhouChenhao-hub/personal-accounting-app/internal/utils/accounting"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ledgerService provides transaction posting and balance mutation operations.
// All balance arithmetic happens on decimals and every mutation is delegated
// to the repository as a single atomic unit.
type ledgerService struct {
	transactionRepo portsrepo.TransactionRepositoryFacade
	accountRepo     portsrepo.AccountReader
	now             func() time.Time
}

// LedgerServiceOption is a functional option for configuring the ledger service
type LedgerServiceOption func(*ledgerService)

// WithLedgerClock overrides the clock used for default dates. Intended for tests.
func WithLedgerClock(now func() time.Time) LedgerServiceOption {
	return func(s *ledgerService) {
		s.now = now
	}
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(transactionRepo portsrepo.TransactionRepositoryFacade, accountRepo portsrepo.AccountReader, options ...LedgerServiceOption) portssvc.LedgerSvcFacade {
	svc := &ledgerService{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		now:             time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure ledgerService implements the portssvc.LedgerSvcFacade interface
var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// validateCategories rejects empty required tiers and system-reserved values.
func validateCategories(category1, category2, category3 string) error {
	if category1 == "" || category2 == "" {
		return fmt.Errorf("%w: category1 and category2 are required", apperrors.ErrValidation)
	}
	for _, value := range []string{category1, category2, category3} {
		if domain.IsReservedCategory(value) {
			return fmt.Errorf("%w: category values starting with %q are reserved", apperrors.ErrValidation, domain.ReservedCategoryPrefix)
		}
	}
	return nil
}

func validateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive, got %s", apperrors.ErrValidation, amount.String())
	}
	if amount.Exponent() < -2 {
		return fmt.Errorf("%w: amount must have at most 2 decimal places, got %s", apperrors.ErrValidation, amount.String())
	}
	return nil
}

func validateKind(kind domain.TransactionKind) error {
	if kind != domain.Income && kind != domain.Expense {
		return fmt.Errorf("%w: kind must be income or expense, got %q", apperrors.ErrValidation, kind)
	}
	return nil
}

// parseDate parses a wire-format date; an empty string yields the zero time.
func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	d, err := time.Parse(dto.DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q", apperrors.ErrValidation, value)
	}
	return d, nil
}

func (s *ledgerService) today() time.Time {
	now := s.now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func (s *ledgerService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := validateKind(req.Kind); err != nil {
		return nil, err
	}
	if err := validateAmount(req.Amount); err != nil {
		return nil, err
	}
	if err := validateCategories(req.Category1, req.Category2, req.Category3); err != nil {
		return nil, err
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	if date.IsZero() {
		date = s.today()
	}

	now := s.now()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		AccountID:     req.AccountID,
		Amount:        req.Amount,
		Kind:          req.Kind,
		Category1:     req.Category1,
		Category2:     req.Category2,
		Category3:     req.Category3,
		Description:   req.Description,
		Date:          date,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	delta, err := accounting.AddDelta(txn)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	if err := s.transactionRepo.SaveTransaction(ctx, txn, delta); err != nil {
		logger.Error("Failed to save transaction",
			slog.String("account_id", req.AccountID),
			slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Transaction created",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("account_id", txn.AccountID),
		slog.String("kind", string(txn.Kind)),
		slog.String("amount", txn.Amount.StringFixed(2)))
	return &txn, nil
}

func (s *ledgerService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	return s.transactionRepo.FindTransactionByID(ctx, transactionID)
}

func (s *ledgerService) ListTransactions(ctx context.Context, limit int) ([]domain.Transaction, error) {
	return s.transactionRepo.ListTransactions(ctx, limit)
}

func (s *ledgerService) SearchTransactions(ctx context.Context, req dto.SearchTransactionsRequest) ([]domain.Transaction, error) {
	filter := domain.TransactionFilter{
		Keyword:   req.Keyword,
		AccountID: req.AccountID,
		Kind:      domain.TransactionKind(req.Kind),
		Category1: req.Category1,
		Category2: req.Category2,
		Category3: req.Category3,
	}
	if req.DateFrom != "" {
		from, err := parseDate(req.DateFrom)
		if err != nil {
			return nil, err
		}
		filter.DateFrom = &from
	}
	if req.DateTo != "" {
		to, err := parseDate(req.DateTo)
		if err != nil {
			return nil, err
		}
		filter.DateTo = &to
	}
	if filter.DateFrom != nil && filter.DateTo != nil && filter.DateFrom.After(*filter.DateTo) {
		return nil, fmt.Errorf("%w: dateFrom is after dateTo", apperrors.ErrValidation)
	}

	return s.transactionRepo.SearchTransactions(ctx, filter)
}

func (s *ledgerService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := validateKind(req.Kind); err != nil {
		return nil, err
	}
	if err := validateAmount(req.Amount); err != nil {
		return nil, err
	}
	if err := validateCategories(req.Category1, req.Category2, req.Category3); err != nil {
		return nil, err
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	txn := domain.Transaction{
		TransactionID: transactionID,
		AccountID:     req.AccountID,
		Amount:        req.Amount,
		Kind:          req.Kind,
		Category1:     req.Category1,
		Category2:     req.Category2,
		Category3:     req.Category3,
		Description:   req.Description,
		// Zero date keeps the original transaction date; the repository
		// resolves it from the pre-image inside the atomic unit.
		Date: date,
		AuditFields: domain.AuditFields{
			LastUpdatedAt: s.now(),
		},
	}

	if err := s.transactionRepo.UpdateTransaction(ctx, txn); err != nil {
		logger.Error("Failed to update transaction",
			slog.String("transaction_id", transactionID),
			slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Transaction updated", slog.String("transaction_id", transactionID))
	return s.transactionRepo.FindTransactionByID(ctx, transactionID)
}

func (s *ledgerService) DeleteTransaction(ctx context.Context, transactionID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.transactionRepo.DeleteTransaction(ctx, transactionID); err != nil {
		logger.Warn("Failed to delete transaction",
			slog.String("transaction_id", transactionID),
			slog.String("error", err.Error()))
		return err
	}

	logger.Info("Transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}

func (s *ledgerService) AdjustAccountBalance(ctx context.Context, accountID string, req dto.AdjustBalanceRequest) (*dto.AdjustBalanceResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.NewBalance.Exponent() < -2 {
		return nil, fmt.Errorf("%w: balance must have at most 2 decimal places, got %s", apperrors.ErrValidation, req.NewBalance.String())
	}

	synthetic, err := s.transactionRepo.AdjustAccountBalance(ctx, accountID, req.NewBalance, req.Reason, s.today())
	if err != nil {
		logger.Error("Failed to adjust account balance",
			slog.String("account_id", accountID),
			slog.String("error", err.Error()))
		return nil, err
	}

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	resp := &dto.AdjustBalanceResponse{Account: dto.ToAccountResponse(account)}
	if synthetic != nil {
		adjustment := dto.ToTransactionResponse(synthetic)
		resp.Adjustment = &adjustment
		logger.Info("Account balance adjusted",
			slog.String("account_id", accountID),
			slog.String("new_balance", req.NewBalance.StringFixed(2)),
			slog.String("adjustment", synthetic.Amount.StringFixed(2)),
			slog.String("kind", string(synthetic.Kind)))
	} else {
		logger.Info("Account balance adjustment was a no-op", slog.String("account_id", accountID))
	}
	return resp, nil
}
