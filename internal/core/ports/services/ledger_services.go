package services

import (
	"context"

	"github.com/ZhouChenhao-hub/personal-accounting-app/internal/core/domain"
	"github.com/ZhouChenhao-hub/personal-accounting-app/internal/dto"
)

// LedgerSvcFacade defines the transaction and balance mutation operations.
// Every mutation keeps the account balance equal to the sum of signed
// transaction amounts; partial application is never visible.
type LedgerSvcFacade interface {
	// CreateTransaction validates and posts a new transaction, applying its
	// signed amount to the account balance.
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// GetTransactionByID retrieves a single transaction.
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves the most recent transactions.
	ListTransactions(ctx context.Context, limit int) ([]domain.Transaction, error)

	// SearchTransactions filters transactions by the optional predicates in req.
	SearchTransactions(ctx context.Context, req dto.SearchTransactionsRequest) ([]domain.Transaction, error)

	// UpdateTransaction corrects a transaction, reversing the old balance
	// effect before applying the new one (cross-account moves included).
	UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)

	// DeleteTransaction removes a transaction and reverses its balance effect.
	DeleteTransaction(ctx context.Context, transactionID string) error

	// AdjustAccountBalance force-sets an account balance, synthesizing a
	// compensating transaction when the delta is non-zero.
	AdjustAccountBalance(ctx context.Context, accountID string, req dto.AdjustBalanceRequest) (*dto.AdjustBalanceResponse, error)
}
