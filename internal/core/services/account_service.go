package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ZhouChenhao-hub/personal-accounting-app/internal/apperrors"
	"github.com/ZhouChenhao-hub/personal-accounting-app/internal/core/domain"
	portsrepo "github.com/ZhouChenhao-hub/personal-accounting-app/internal/core/ports/repositories"
	portssvc "github.com/ZhouChenhao-hub/personal-accounting-app/internal/core/ports/services"
	"github.com/ZhouChenhao-hub/personal-accounting-app/internal/dto"
	"github.com/ZhouChenhao-hub/personal-accounting-app/internal/middleware"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// accountService provides account management operations.
type accountService struct {
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates a new AccountService.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: accountRepo}
}

// Ensure accountService implements the portssvc.AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	name := strings.TrimSpace(req.Name)
	accountType := strings.TrimSpace(req.Type)
	if name == "" || accountType == "" {
		return nil, fmt.Errorf("%w: account name and type are required", apperrors.ErrValidation)
	}

	now := time.Now()
	account := domain.Account{
		AccountID: uuid.NewString(),
		Name:      name,
		Type:      accountType,
		Balance:   decimal.Zero,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		logger.Error("Failed to save account", slog.String("account_name", name), slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Account created", slog.String("account_id", account.AccountID))
	return &account, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	return s.accountRepo.FindAccountByID(ctx, accountID)
}

func (s *accountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	return s.accountRepo.ListAccounts(ctx)
}

func (s *accountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: account name cannot be empty", apperrors.ErrValidation)
		}
		account.Name = name
	}
	if req.Type != nil {
		accountType := strings.TrimSpace(*req.Type)
		if accountType == "" {
			return nil, fmt.Errorf("%w: account type cannot be empty", apperrors.ErrValidation)
		}
		account.Type = accountType
	}
	account.LastUpdatedAt = time.Now()

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		logger.Error("Failed to update account", slog.String("account_id", accountID), slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Account updated", slog.String("account_id", accountID))
	return account, nil
}

func (s *accountService) DeleteAccount(ctx context.Context, accountID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.accountRepo.DeleteAccount(ctx, accountID); err != nil {
		logger.Warn("Failed to delete account", slog.String("account_id", accountID), slog.String("error", err.Error()))
		return err
	}

	logger.Info("Account deleted", slog.String("account_id", accountID))
	return nil
}
