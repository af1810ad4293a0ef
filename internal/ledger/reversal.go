package ledger

import (
	"context"
	"fmt"

	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/storage"
)

// reverse applies the exact inverse of deltas and returns what it applied.
func reverse(ctx context.Context, tx storage.Tx, deltas []models.Delta) ([]models.Delta, error) {
	inverse := models.InvertDeltas(deltas)
	if err := tx.ApplyDeltas(ctx, inverse); err != nil {
		return nil, fmt.Errorf("failed to apply reversal: %w", err)
	}
	return inverse, nil
}

// reverseExpense undoes the balance effect of a stored expense.
func reverseExpense(ctx context.Context, tx storage.Tx, expense *models.Expense) ([]models.Delta, error) {
	return reverse(ctx, tx, expense.Deltas())
}

// reversePayment undoes the balance effect of a payment and marks it reversed.
// A payment is reversed at most once.
func reversePayment(ctx context.Context, tx storage.Tx, payment *models.Payment) ([]models.Delta, error) {
	if payment.Reversed {
		return nil, fmt.Errorf("payment %s already reversed: %w", payment.ID, models.ErrInvalidStateTransition)
	}
	inverse, err := reverse(ctx, tx, payment.Deltas())
	if err != nil {
		return nil, err
	}
	payment.Reversed = true
	return inverse, nil
}
