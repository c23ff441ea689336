package accounting

import (
	"fmt"

	"github.com/ZhouChenhao-hub/personal-accounting-app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SignedAmount applies the correct sign to a transaction amount based on its
// kind: +amount for income, -amount for expense. This is used in both
// services and repositories to keep balance arithmetic consistent.
func SignedAmount(txn domain.Transaction) (decimal.Decimal, error) {
	switch txn.Kind {
	case domain.Income:
		return txn.Amount, nil
	case domain.Expense:
		return txn.Amount.Neg(), nil
	default:
		return decimal.Zero, fmt.Errorf("unknown transaction kind '%s' for transaction ID %s", txn.Kind, txn.TransactionID)
	}
}

// AddDelta returns the balance delta applied when a transaction is created.
func AddDelta(txn domain.Transaction) (decimal.Decimal, error) {
	return SignedAmount(txn)
}

// DeleteDelta returns the balance delta applied when a transaction is
// removed: the reversal of its original effect.
func DeleteDelta(txn domain.Transaction) (decimal.Decimal, error) {
	signed, err := SignedAmount(txn)
	if err != nil {
		return decimal.Zero, err
	}
	return signed.Neg(), nil
}

// UpdateDeltas returns the per-account balance deltas for replacing old with
// new. When both transactions post to the same account the two deltas are
// merged into a single entry, so the map always describes the minimal set of
// balance changes.
func UpdateDeltas(old, new domain.Transaction) (map[string]decimal.Decimal, error) {
	reversal, err := DeleteDelta(old)
	if err != nil {
		return nil, err
	}
	effect, err := SignedAmount(new)
	if err != nil {
		return nil, err
	}

	deltas := map[string]decimal.Decimal{old.AccountID: reversal}
	if existing, ok := deltas[new.AccountID]; ok {
		deltas[new.AccountID] = existing.Add(effect)
	} else {
		deltas[new.AccountID] = effect
	}
	return deltas, nil
}
