package dto

import (
	"time"

	"github.com/ZhouChenhao-hub/personal-accounting-app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Name string `json:"name" binding:"required"`
	Type string `json:"type" binding:"required"`
}

// UpdateAccountRequest defines the data allowed for updating an account.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateAccountRequest struct {
	Name *string `json:"name"`
	Type *string `json:"type"`
}

// AdjustBalanceRequest defines the data for a manual balance correction.
type AdjustBalanceRequest struct {
	NewBalance decimal.Decimal `json:"newBalance" binding:"required"`
	Reason     string          `json:"reason"`
}

// AdjustBalanceResponse reports the outcome of a balance adjustment. The
// Adjustment transaction is nil when the requested balance already matched.
type AdjustBalanceResponse struct {
	Account    AccountResponse      `json:"account"`
	Adjustment *TransactionResponse `json:"adjustment,omitempty"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID     string          `json:"accountID"`
	Name          string          `json:"name"`
	Type          string          `json:"type"`
	Balance       decimal.Decimal `json:"balance"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:     acc.AccountID,
		Name:          acc.Name,
		Type:          acc.Type,
		Balance:       acc.Balance,
		CreatedAt:     acc.CreatedAt,
		LastUpdatedAt: acc.LastUpdatedAt,
	}
}

// ToListAccountResponse converts a slice of domain.Account to AccountResponse DTOs
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToAccountResponse(&acc)
	}
	return res
}
