package models

import (
	"github.com/shopspring/decimal"
)

// Account is the storage model for a ledger account.
type Account struct {
	AccountID string          `db:"account_id"`
	Name      string          `db:"name"`
	Type      string          `db:"type"`
	Balance   decimal.Decimal `db:"balance"`
	AuditFields
}
