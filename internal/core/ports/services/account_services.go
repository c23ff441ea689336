package services

import (
	"context"

	"github.com/ZhouChenhao-hub/personal-accounting-app/internal/core/domain"
	"github.com/ZhouChenhao-hub/personal-accounting-app/internal/dto"
)

// AccountSvcFacade defines the account management operations.
type AccountSvcFacade interface {
	// CreateAccount creates a new account with a zero balance.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)

	// GetAccountByID retrieves a single account.
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccounts retrieves all accounts, newest first.
	ListAccounts(ctx context.Context) ([]domain.Account, error)

	// UpdateAccount renames and/or retypes an account.
	UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error)

	// DeleteAccount removes a transaction-free account. Accounts with
	// transactions are protected by ErrConstraintViolation.
	DeleteAccount(ctx context.Context, accountID string) error
}
