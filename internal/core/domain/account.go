package domain

import (
	"github.com/shopspring/decimal"
)

// Account represents a financial account within the ledger.
// Balance is cached but derived: at every commit point it equals the sum of
// signed transaction amounts posted against the account.
type Account struct {
	AccountID string `json:"accountID"`
	Name      string `json:"name"`
	// Type is a free-text tag chosen by the user (e.g. "cash", "bank card").
	Type    string          `json:"type"`
	Balance decimal.Decimal `json:"balance"`
	AuditFields
}
