package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/storage"
)

var _ storage.Tx = (*memTx)(nil)

type memTx struct {
	store   *Store
	groupID string
	work    *groupData
	// id -> kind, applied to the store indexes on commit
	created map[string]string
	deleted map[string]string
}

func (t *memTx) Group(ctx context.Context) (*models.Group, error) {
	g := cloneGroup(&t.work.group)
	return &g, nil
}

func (t *memTx) SetGroupStatus(ctx context.Context, status models.GroupStatus) error {
	t.work.group.Status = status
	return nil
}

func (t *memTx) IsMember(ctx context.Context, userID string) (bool, error) {
	return t.work.joined[userID], nil
}

func (t *memTx) ApplyDeltas(ctx context.Context, deltas []models.Delta) error {
	merged, err := models.MergeDeltas(deltas)
	if err != nil {
		return err
	}
	next := make([]int64, len(merged))
	for i, d := range merged {
		if d.GroupID != t.groupID {
			return fmt.Errorf("delta for group %s in transaction for %s: %w", d.GroupID, t.groupID, models.ErrInvalidRequest)
		}
		if d.UserID == "" {
			return fmt.Errorf("delta must name a user: %w", models.ErrInvalidRequest)
		}
		if next[i], err = models.AddBalance(t.work.balances[d.UserID], d.Amount); err != nil {
			return fmt.Errorf("failed to apply delta for %s: %w", d.UserID, err)
		}
	}
	for i, d := range merged {
		t.work.balances[d.UserID] = next[i]
	}
	return nil
}

func (t *memTx) Balances(ctx context.Context) ([]models.MemberBalance, error) {
	return t.work.snapshot(), nil
}

func (t *memTx) GetExpense(ctx context.Context, expenseID string) (*models.Expense, error) {
	return t.work.getExpense(expenseID)
}

func (t *memTx) CreateExpense(ctx context.Context, expense *models.Expense) error {
	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}
	if _, exists := t.work.expenses[expense.ID]; exists || t.store.idTaken(kindExpense, expense.ID) {
		return fmt.Errorf("expense %s already exists: %w", expense.ID, models.ErrInvalidRequest)
	}
	if expense.Amount <= 0 {
		return fmt.Errorf("expense amount %d: %w", expense.Amount, models.ErrInvalidAmount)
	}
	if expense.CreatedAt == 0 {
		expense.CreatedAt = time.Now().Unix()
	}
	if expense.UpdatedAt == 0 {
		expense.UpdatedAt = expense.CreatedAt
	}
	expense.GroupID = t.groupID
	markShares(expense)

	t.work.expenses[expense.ID] = &record[models.Expense]{seq: t.store.nextSeq(), v: expense.Clone()}
	t.created[expense.ID] = kindExpense
	delete(t.deleted, expense.ID)
	return nil
}

func (t *memTx) ReplaceExpense(ctx context.Context, expense *models.Expense) error {
	existing, ok := t.work.expenses[expense.ID]
	if !ok {
		return fmt.Errorf("expense %s: %w", expense.ID, models.ErrNotFound)
	}
	if expense.Amount <= 0 {
		return fmt.Errorf("expense amount %d: %w", expense.Amount, models.ErrInvalidAmount)
	}
	markShares(expense)

	stored := expense.Clone()
	stored.GroupID = t.groupID
	stored.CreatedAt = existing.v.CreatedAt
	stored.CreatedBy = existing.v.CreatedBy
	t.work.expenses[expense.ID] = &record[models.Expense]{seq: existing.seq, v: stored}
	return nil
}

func (t *memTx) DeleteExpense(ctx context.Context, expenseID string) error {
	if _, ok := t.work.expenses[expenseID]; !ok {
		return fmt.Errorf("expense %s: %w", expenseID, models.ErrNotFound)
	}
	delete(t.work.expenses, expenseID)
	delete(t.created, expenseID)
	t.deleted[expenseID] = kindExpense
	return nil
}

func (t *memTx) GetPayment(ctx context.Context, paymentID string) (*models.Payment, error) {
	return t.work.getPayment(paymentID)
}

func (t *memTx) CreatePayment(ctx context.Context, payment *models.Payment) error {
	if payment.ID == "" {
		payment.ID = uuid.New().String()
	}
	if _, exists := t.work.payments[payment.ID]; exists || t.store.idTaken(kindPayment, payment.ID) {
		return fmt.Errorf("payment %s already exists: %w", payment.ID, models.ErrInvalidRequest)
	}
	if payment.Amount <= 0 {
		return fmt.Errorf("payment amount %d: %w", payment.Amount, models.ErrInvalidAmount)
	}
	if payment.CreatedAt == 0 {
		payment.CreatedAt = time.Now().Unix()
	}
	if payment.UpdatedAt == 0 {
		payment.UpdatedAt = payment.CreatedAt
	}
	payment.GroupID = t.groupID

	stored := *payment
	t.work.payments[payment.ID] = &record[models.Payment]{seq: t.store.nextSeq(), v: &stored}
	t.created[payment.ID] = kindPayment
	delete(t.deleted, payment.ID)
	return nil
}

func (t *memTx) UpdatePayment(ctx context.Context, payment *models.Payment) error {
	existing, ok := t.work.payments[payment.ID]
	if !ok {
		return fmt.Errorf("payment %s: %w", payment.ID, models.ErrNotFound)
	}
	stored := *existing.v
	stored.Status = payment.Status
	stored.Reversed = payment.Reversed
	stored.Note = payment.Note
	stored.UpdatedAt = payment.UpdatedAt
	t.work.payments[payment.ID] = &record[models.Payment]{seq: existing.seq, v: &stored}
	return nil
}

func (t *memTx) DeletePayment(ctx context.Context, paymentID string) error {
	if _, ok := t.work.payments[paymentID]; !ok {
		return fmt.Errorf("payment %s: %w", paymentID, models.ErrNotFound)
	}
	delete(t.work.payments, paymentID)
	delete(t.created, paymentID)
	t.deleted[paymentID] = kindPayment
	return nil
}

func (t *memTx) AppendActivity(ctx context.Context, activity *models.Activity) error {
	if activity.ID == "" {
		activity.ID = uuid.New().String()
	}
	if activity.CreatedAt == 0 {
		activity.CreatedAt = time.Now().Unix()
	}
	activity.GroupID = t.groupID
	if activity.Deltas == nil {
		activity.Deltas = []models.Delta{}
	}
	t.work.activity = append(t.work.activity, cloneActivity(activity))
	return nil
}

func markShares(expense *models.Expense) {
	for i := range expense.Shares {
		expense.Shares[i].ExpenseID = expense.ID
		expense.Shares[i].Paid = expense.Shares[i].UserID == expense.PayerID
	}
}
