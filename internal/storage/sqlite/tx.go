package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/storage"
)

var _ storage.Tx = (*sqliteTx)(nil)

// sqliteTx scopes every statement to one group.
type sqliteTx struct {
	tx      *sql.Tx
	groupID string
}

func (t *sqliteTx) Group(ctx context.Context) (*models.Group, error) {
	return getGroup(ctx, t.tx, t.groupID)
}

func (t *sqliteTx) SetGroupStatus(ctx context.Context, status models.GroupStatus) error {
	return setGroupStatus(ctx, t.tx, t.groupID, status)
}

func (t *sqliteTx) IsMember(ctx context.Context, userID string) (bool, error) {
	return isMember(ctx, t.tx, t.groupID, userID)
}

func (t *sqliteTx) ApplyDeltas(ctx context.Context, deltas []models.Delta) error {
	merged, err := models.MergeDeltas(deltas)
	if err != nil {
		return err
	}
	for _, d := range merged {
		if d.GroupID != t.groupID {
			return fmt.Errorf("delta for group %s in transaction for %s: %w", d.GroupID, t.groupID, models.ErrInvalidRequest)
		}
		if _, err := applyDelta(ctx, t.tx, d); err != nil {
			return err
		}
	}
	return nil
}

func (t *sqliteTx) Balances(ctx context.Context) ([]models.MemberBalance, error) {
	return balances(ctx, t.tx, t.groupID)
}

func (t *sqliteTx) GetExpense(ctx context.Context, expenseID string) (*models.Expense, error) {
	return getExpense(ctx, t.tx, t.groupID, expenseID)
}

func (t *sqliteTx) CreateExpense(ctx context.Context, expense *models.Expense) error {
	if expense.ID == "" {
		expense.ID = newID()
	}
	if expense.CreatedAt == 0 {
		expense.CreatedAt = time.Now().Unix()
	}
	if expense.UpdatedAt == 0 {
		expense.UpdatedAt = expense.CreatedAt
	}
	expense.GroupID = t.groupID
	return insertExpense(ctx, t.tx, expense)
}

func (t *sqliteTx) ReplaceExpense(ctx context.Context, expense *models.Expense) error {
	return replaceExpense(ctx, t.tx, t.groupID, expense)
}

func (t *sqliteTx) DeleteExpense(ctx context.Context, expenseID string) error {
	return deleteExpense(ctx, t.tx, t.groupID, expenseID)
}

func (t *sqliteTx) GetPayment(ctx context.Context, paymentID string) (*models.Payment, error) {
	return getPayment(ctx, t.tx, t.groupID, paymentID)
}

func (t *sqliteTx) CreatePayment(ctx context.Context, payment *models.Payment) error {
	if payment.ID == "" {
		payment.ID = newID()
	}
	if payment.CreatedAt == 0 {
		payment.CreatedAt = time.Now().Unix()
	}
	if payment.UpdatedAt == 0 {
		payment.UpdatedAt = payment.CreatedAt
	}
	payment.GroupID = t.groupID
	return insertPayment(ctx, t.tx, payment)
}

func (t *sqliteTx) UpdatePayment(ctx context.Context, payment *models.Payment) error {
	return updatePayment(ctx, t.tx, t.groupID, payment)
}

func (t *sqliteTx) DeletePayment(ctx context.Context, paymentID string) error {
	return deletePayment(ctx, t.tx, t.groupID, paymentID)
}

func (t *sqliteTx) AppendActivity(ctx context.Context, activity *models.Activity) error {
	if activity.ID == "" {
		activity.ID = newID()
	}
	if activity.CreatedAt == 0 {
		activity.CreatedAt = time.Now().Unix()
	}
	activity.GroupID = t.groupID
	return insertActivity(ctx, t.tx, activity)
}
