package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stats is the dashboard summary: overall balance plus the current calendar
// month's income, expense and net.
type Stats struct {
	TotalBalance   decimal.Decimal `json:"totalBalance"`
	MonthlyIncome  decimal.Decimal `json:"monthlyIncome"`
	MonthlyExpense decimal.Decimal `json:"monthlyExpense"`
	MonthlyNet     decimal.Decimal `json:"monthlyNet"`
}

// CategoryTotal is one row of a per-category breakdown.
type CategoryTotal struct {
	Category1 string          `json:"category1"`
	Amount    decimal.Decimal `json:"amount"`
}

// TrendPoint is one time bucket of an income/expense trend. Buckets with no
// transactions are omitted, so consumers must not assume contiguity.
type TrendPoint struct {
	Bucket  string          `json:"bucket"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// TransactionAmount is the minimal projection the trend queries need: the
// date, kind and amount of a transaction inside the lookback window.
type TransactionAmount struct {
	Date   time.Time
	Kind   TransactionKind
	Amount decimal.Decimal
}
