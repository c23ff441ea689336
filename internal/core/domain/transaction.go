package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind indicates whether a transaction is money in or money out.
type TransactionKind string

const (
	Income  TransactionKind = "income"
	Expense TransactionKind = "expense"
)

// Reserved category tuple stamped onto synthetic balance-correction
// transactions. The "__" prefix is rejected for user-supplied categories, so
// a manually created category can never collide with it.
const (
	AdjustmentCategory1 = "__adjustment"
	AdjustmentCategory2 = "__manual"
	AdjustmentCategory3 = "__balance"

	// ReservedCategoryPrefix marks category values owned by the system.
	ReservedCategoryPrefix = "__"
)

// IsReservedCategory reports whether a category value is system-owned.
func IsReservedCategory(value string) bool {
	return strings.HasPrefix(value, ReservedCategoryPrefix)
}

// Transaction represents a single income or expense entry posted against an
// account. Amount is always positive; the sign is derived from Kind.
type Transaction struct {
	TransactionID string          `json:"transactionID"`
	AccountID     string          `json:"accountID"`
	Amount        decimal.Decimal `json:"amount"`
	Kind          TransactionKind `json:"kind"`
	Category1     string          `json:"category1"`
	Category2     string          `json:"category2"`
	Category3     string          `json:"category3"`
	Description   string          `json:"description"`
	// Date is the calendar day the transaction belongs to; CreatedAt (in
	// AuditFields) breaks ties between same-date transactions.
	Date time.Time `json:"date"`
	AuditFields
	// AccountName is populated by read queries that join the accounts table.
	AccountName string `json:"accountName,omitempty"`
}

// TransactionFilter is the set of conjunctive predicates accepted by search.
// Zero values mean "no constraint".
type TransactionFilter struct {
	Keyword   string
	AccountID string
	Kind      TransactionKind
	Category1 string
	Category2 string
	Category3 string
	DateFrom  *time.Time
	DateTo    *time.Time
}
