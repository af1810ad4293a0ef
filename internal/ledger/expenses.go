package ledger

import (
	"context"
	"fmt"

	"github.com/mmynk/splitledger/internal/calculator"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/storage"
)

// NewExpense describes an expense to record.
type NewExpense struct {
	GroupID      string
	PayerID      string
	Description  string
	Amount       int64
	Policy       models.SplitPolicy
	Participants []calculator.Participant
}

// ExpenseUpdate holds the fields to change on an existing expense.
// Nil fields keep their stored values. When Participants is nil the stored
// participants are reused with their stored percentages or amounts.
type ExpenseUpdate struct {
	PayerID      *string
	Description  *string
	Amount       *int64
	Policy       *models.SplitPolicy
	Participants []calculator.Participant
}

// CreateExpense splits the expense and applies its deltas atomically.
func (e *Engine) CreateExpense(ctx context.Context, in NewExpense) (expense *models.Expense, err error) {
	defer e.track("CreateExpense")(&err)

	if in.GroupID == "" || in.PayerID == "" {
		return nil, fmt.Errorf("CreateExpense: group and payer are required: %w", models.ErrInvalidRequest)
	}
	shares, err := split(in.Amount, in.Policy, in.Participants)
	if err != nil {
		return nil, fmt.Errorf("CreateExpense: %w", err)
	}

	now := e.now().Unix()
	expense = &models.Expense{
		GroupID:     in.GroupID,
		PayerID:     in.PayerID,
		Description: in.Description,
		Amount:      in.Amount,
		Policy:      in.Policy,
		Shares:      shares,
		CreatedBy:   ActorFromContext(ctx),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = e.mutate(ctx, in.GroupID, func(ctx context.Context, tx storage.Tx, group *models.Group) (*models.Activity, error) {
		if err := e.requireMembers(ctx, tx, group.ID, append([]string{expense.PayerID}, expense.Participants()...)...); err != nil {
			return nil, err
		}
		if err := tx.CreateExpense(ctx, expense); err != nil {
			return nil, err
		}
		deltas := expense.Deltas()
		if err := tx.ApplyDeltas(ctx, deltas); err != nil {
			return nil, err
		}
		return &models.Activity{
			Action:    models.ActivityExpenseCreated,
			ExpenseID: expense.ID,
			Deltas:    deltas,
		}, nil
	})
	if err != nil {
		return nil, fmt.Errorf("CreateExpense: %w", err)
	}
	return expense, nil
}

// EditExpense reverses the stored expense and re-applies it with the update
// merged in, in one unit of work.
func (e *Engine) EditExpense(ctx context.Context, expenseID string, update ExpenseUpdate) (expense *models.Expense, err error) {
	defer e.track("EditExpense")(&err)

	current, err := e.store.GetExpense(ctx, expenseID)
	if err != nil {
		return nil, fmt.Errorf("EditExpense: %w", err)
	}

	err = e.mutate(ctx, current.GroupID, func(ctx context.Context, tx storage.Tx, group *models.Group) (*models.Activity, error) {
		original, err := tx.GetExpense(ctx, expenseID)
		if err != nil {
			return nil, err
		}
		updated, err := applyUpdate(original, update)
		if err != nil {
			return nil, err
		}
		if err := e.requireMembers(ctx, tx, group.ID, append([]string{updated.PayerID}, updated.Participants()...)...); err != nil {
			return nil, err
		}
		updated.UpdatedAt = e.now().Unix()

		reversal, err := reverseExpense(ctx, tx, original)
		if err != nil {
			return nil, err
		}
		if err := tx.ReplaceExpense(ctx, updated); err != nil {
			return nil, err
		}
		applied := updated.Deltas()
		if err := tx.ApplyDeltas(ctx, applied); err != nil {
			return nil, err
		}

		net, err := models.MergeDeltas(append(reversal, applied...))
		if err != nil {
			return nil, err
		}

		expense = updated
		return &models.Activity{
			Action:    models.ActivityExpenseUpdated,
			ExpenseID: updated.ID,
			Deltas:    net,
		}, nil
	})
	if err != nil {
		return nil, fmt.Errorf("EditExpense: %w", err)
	}
	return expense, nil
}

// DeleteExpense reverses the expense's deltas and removes it with its shares.
func (e *Engine) DeleteExpense(ctx context.Context, expenseID string) (err error) {
	defer e.track("DeleteExpense")(&err)

	current, err := e.store.GetExpense(ctx, expenseID)
	if err != nil {
		return fmt.Errorf("DeleteExpense: %w", err)
	}

	err = e.mutate(ctx, current.GroupID, func(ctx context.Context, tx storage.Tx, group *models.Group) (*models.Activity, error) {
		expense, err := tx.GetExpense(ctx, expenseID)
		if err != nil {
			return nil, err
		}
		reversal, err := reverseExpense(ctx, tx, expense)
		if err != nil {
			return nil, err
		}
		if err := tx.DeleteExpense(ctx, expenseID); err != nil {
			return nil, err
		}
		return &models.Activity{
			Action:    models.ActivityExpenseDeleted,
			ExpenseID: expenseID,
			Deltas:    reversal,
		}, nil
	})
	if err != nil {
		return fmt.Errorf("DeleteExpense: %w", err)
	}
	return nil
}

// GetExpense returns one expense with its shares.
func (e *Engine) GetExpense(ctx context.Context, expenseID string) (*models.Expense, error) {
	expense, err := e.store.GetExpense(ctx, expenseID)
	if err != nil {
		return nil, fmt.Errorf("GetExpense: %w", err)
	}
	return expense, nil
}

// ListExpenses returns a group's expenses, newest first.
func (e *Engine) ListExpenses(ctx context.Context, groupID string) ([]*models.Expense, error) {
	if _, err := e.store.GetGroup(ctx, groupID); err != nil {
		return nil, fmt.Errorf("ListExpenses: %w", err)
	}
	expenses, err := e.store.ListExpensesByGroup(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("ListExpenses: %w", err)
	}
	return expenses, nil
}

func split(amount int64, policy models.SplitPolicy, participants []calculator.Participant) ([]models.ParticipantShare, error) {
	if !policy.Valid() {
		return nil, fmt.Errorf("unknown split policy %q: %w", policy, models.ErrInvalidRequest)
	}
	return calculator.Split(amount, policy, participants)
}

// applyUpdate returns a copy of original with update merged in and its
// shares recomputed.
func applyUpdate(original *models.Expense, update ExpenseUpdate) (*models.Expense, error) {
	updated := original.Clone()
	if update.PayerID != nil {
		updated.PayerID = *update.PayerID
	}
	if update.Description != nil {
		updated.Description = *update.Description
	}
	if update.Amount != nil {
		updated.Amount = *update.Amount
	}
	if update.Policy != nil {
		updated.Policy = *update.Policy
	}
	if updated.PayerID == "" {
		return nil, fmt.Errorf("payer is required: %w", models.ErrInvalidRequest)
	}

	participants := update.Participants
	if participants == nil {
		participants = make([]calculator.Participant, len(original.Shares))
		for i, s := range original.Shares {
			participants[i] = calculator.Participant{UserID: s.UserID, Percent: s.Percent, Amount: s.Amount}
		}
	}

	shares, err := split(updated.Amount, updated.Policy, participants)
	if err != nil {
		return nil, err
	}
	updated.Shares = shares
	return updated, nil
}
