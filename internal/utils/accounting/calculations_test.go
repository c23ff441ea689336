package accounting_test

import (
	"testing"

	"github.com/ZhouChenhao-hub/personal-accounting-app/internal/core/domain"
	"github.com/ZhouChenhao-hub/personal-accounting-app/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func txn(kind domain.TransactionKind, amount string, accountID string) domain.Transaction {
	return domain.Transaction{
		TransactionID: "txn-1",
		AccountID:     accountID,
		Amount:        decimal.RequireFromString(amount),
		Kind:          kind,
	}
}

func TestSignedAmount(t *testing.T) {
	signed, err := accounting.SignedAmount(txn(domain.Income, "100.00", "a"))
	require.NoError(t, err)
	assert.True(t, signed.Equal(decimal.RequireFromString("100.00")))

	signed, err = accounting.SignedAmount(txn(domain.Expense, "30.00", "a"))
	require.NoError(t, err)
	assert.True(t, signed.Equal(decimal.RequireFromString("-30.00")))
}

func TestSignedAmount_UnknownKind(t *testing.T) {
	_, err := accounting.SignedAmount(txn("transfer", "10.00", "a"))
	assert.Error(t, err)
}

func TestDeleteDelta_ReversesOriginalEffect(t *testing.T) {
	income := txn(domain.Income, "100.00", "a")

	add, err := accounting.AddDelta(income)
	require.NoError(t, err)
	del, err := accounting.DeleteDelta(income)
	require.NoError(t, err)

	assert.True(t, add.Add(del).IsZero())
}

func TestUpdateDeltas_SameAccount(t *testing.T) {
	old := txn(domain.Expense, "30.00", "a")
	updated := txn(domain.Expense, "50.00", "a")

	deltas, err := accounting.UpdateDeltas(old, updated)
	require.NoError(t, err)
	require.Len(t, deltas, 1)
	// +30 reversal, -50 new effect
	assert.True(t, deltas["a"].Equal(decimal.RequireFromString("-20.00")))
}

func TestUpdateDeltas_CrossAccountMove(t *testing.T) {
	old := txn(domain.Income, "100.00", "a")
	updated := txn(domain.Income, "80.00", "b")

	deltas, err := accounting.UpdateDeltas(old, updated)
	require.NoError(t, err)
	require.Len(t, deltas, 2)
	assert.True(t, deltas["a"].Equal(decimal.RequireFromString("-100.00")))
	assert.True(t, deltas["b"].Equal(decimal.RequireFromString("80.00")))
}

// Walks the sequence from the dashboard example: +100 income, +30 expense,
// expense updated to 50, income deleted. The running balance must track the
// sum of signed amounts at every step.
func TestDeltaSequence(t *testing.T) {
	balance := decimal.Zero

	income := txn(domain.Income, "100.00", "a")
	d, err := accounting.AddDelta(income)
	require.NoError(t, err)
	balance = balance.Add(d)
	assert.Equal(t, "100", balance.String())

	expense := txn(domain.Expense, "30.00", "a")
	d, err = accounting.AddDelta(expense)
	require.NoError(t, err)
	balance = balance.Add(d)
	assert.Equal(t, "70", balance.String())

	updated := txn(domain.Expense, "50.00", "a")
	deltas, err := accounting.UpdateDeltas(expense, updated)
	require.NoError(t, err)
	balance = balance.Add(deltas["a"])
	assert.Equal(t, "50", balance.String())

	d, err = accounting.DeleteDelta(income)
	require.NoError(t, err)
	balance = balance.Add(d)
	assert.Equal(t, "-50", balance.String())

	// Adjusting to 200 from -50 requires a +250 income correction.
	target := decimal.RequireFromString("200.00")
	adjustment := target.Sub(balance)
	assert.Equal(t, "250", adjustment.String())
	assert.True(t, adjustment.IsPositive())
}
