package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind mirrors the CHECK constraint on transactions.kind.
type TransactionKind string

const (
	Income  TransactionKind = "income"
	Expense TransactionKind = "expense"
)

// Transaction is the storage model for a ledger transaction.
// Amount is stored positive; kind carries the sign.
type Transaction struct {
	TransactionID string          `db:"transaction_id"`
	AccountID     string          `db:"account_id"`
	Amount        decimal.Decimal `db:"amount"`
	Kind          TransactionKind `db:"kind"`
	Category1     string          `db:"category1"`
	Category2     string          `db:"category2"`
	Category3     string          `db:"category3"`
	Description   string          `db:"description"`
	Date          time.Time       `db:"date"`
	AuditFields
}
