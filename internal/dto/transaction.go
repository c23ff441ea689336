package dto

import (
	"time"

	"github.com/ZhouChenhao-hub/personal-accounting-app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// CreateTransactionRequest defines the data needed to post a transaction.
// Date is optional and defaults to today.
type CreateTransactionRequest struct {
	AccountID   string                 `json:"accountID" binding:"required"`
	Amount      decimal.Decimal        `json:"amount" binding:"required"`
	Kind        domain.TransactionKind `json:"kind" binding:"required,oneof=income expense"`
	Category1   string                 `json:"category1" binding:"required,notreserved"`
	Category2   string                 `json:"category2" binding:"required,notreserved"`
	Category3   string                 `json:"category3" binding:"omitempty,notreserved"`
	Description string                 `json:"description"`
	Date        string                 `json:"date" binding:"omitempty,datetime=2006-01-02"`
}

// UpdateTransactionRequest defines the data for correcting a transaction.
// Date is optional and defaults to the original transaction date.
type UpdateTransactionRequest struct {
	AccountID   string                 `json:"accountID" binding:"required"`
	Amount      decimal.Decimal        `json:"amount" binding:"required"`
	Kind        domain.TransactionKind `json:"kind" binding:"required,oneof=income expense"`
	Category1   string                 `json:"category1" binding:"required,notreserved"`
	Category2   string                 `json:"category2" binding:"required,notreserved"`
	Category3   string                 `json:"category3" binding:"omitempty,notreserved"`
	Description string                 `json:"description"`
	Date        string                 `json:"date" binding:"omitempty,datetime=2006-01-02"`
}

// SearchTransactionsRequest carries the optional search predicates. All
// fields are combined conjunctively; absent fields add no constraint.
type SearchTransactionsRequest struct {
	Keyword   string `form:"keyword"`
	AccountID string `form:"accountID"`
	Kind      string `form:"kind" binding:"omitempty,oneof=income expense"`
	Category1 string `form:"category1"`
	Category2 string `form:"category2"`
	Category3 string `form:"category3"`
	DateFrom  string `form:"dateFrom" binding:"omitempty,datetime=2006-01-02"`
	DateTo    string `form:"dateTo" binding:"omitempty,datetime=2006-01-02"`
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	Limit int `form:"limit,default=50" binding:"omitempty,min=1"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID string                 `json:"transactionID"`
	AccountID     string                 `json:"accountID"`
	AccountName   string                 `json:"accountName,omitempty"`
	Amount        decimal.Decimal        `json:"amount"`
	Kind          domain.TransactionKind `json:"kind"`
	Category1     string                 `json:"category1"`
	Category2     string                 `json:"category2"`
	Category3     string                 `json:"category3,omitempty"`
	Description   string                 `json:"description,omitempty"`
	Date          string                 `json:"date"`
	CreatedAt     time.Time              `json:"createdAt"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		AccountID:     txn.AccountID,
		AccountName:   txn.AccountName,
		Amount:        txn.Amount,
		Kind:          txn.Kind,
		Category1:     txn.Category1,
		Category2:     txn.Category2,
		Category3:     txn.Category3,
		Description:   txn.Description,
		Date:          txn.Date.Format(DateLayout),
		CreatedAt:     txn.CreatedAt,
	}
}

// ToListTransactionResponse converts a slice of domain.Transaction to DTOs
func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		res[i] = ToTransactionResponse(&txn)
	}
	return res
}
