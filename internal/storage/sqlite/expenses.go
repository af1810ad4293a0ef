package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mmynk/splitledger/internal/models"
)

// GetExpense retrieves an expense by ID, including its shares.
func (s *SQLiteStore) GetExpense(ctx context.Context, expenseID string) (*models.Expense, error) {
	return getExpense(ctx, s.db, "", expenseID)
}

// ListExpensesByGroup retrieves all expenses of a group, newest first.
func (s *SQLiteStore) ListExpensesByGroup(ctx context.Context, groupID string) ([]*models.Expense, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id FROM expenses WHERE group_id = ? ORDER BY created_at DESC, rowid DESC",
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		ids = append(ids, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}

	expenses := make([]*models.Expense, 0, len(ids))
	for _, id := range ids {
		expense, err := getExpense(ctx, s.db, groupID, id)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, expense)
	}
	return expenses, nil
}

// getExpense loads an expense and its shares. A non-empty groupID restricts
// the lookup to that group.
func getExpense(ctx context.Context, q querier, groupID, expenseID string) (*models.Expense, error) {
	query := "SELECT id, group_id, payer_id, description, amount, policy, created_by, created_at, updated_at FROM expenses WHERE id = ?"
	args := []any{expenseID}
	if groupID != "" {
		query += " AND group_id = ?"
		args = append(args, groupID)
	}

	expense := &models.Expense{}
	err := q.QueryRowContext(ctx, query, args...).Scan(
		&expense.ID, &expense.GroupID, &expense.PayerID, &expense.Description,
		&expense.Amount, &expense.Policy, &expense.CreatedBy,
		&expense.CreatedAt, &expense.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("expense %s: %w", expenseID, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get expense: %w", classify(err))
	}

	rows, err := q.QueryContext(ctx,
		"SELECT user_id, amount, percent, paid FROM expense_shares WHERE expense_id = ? ORDER BY position",
		expenseID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get expense shares: %w", classify(err))
	}
	defer rows.Close()

	for rows.Next() {
		share := models.ParticipantShare{ExpenseID: expense.ID}
		var percent sql.NullString
		var paid int
		if err := rows.Scan(&share.UserID, &share.Amount, &percent, &paid); err != nil {
			return nil, fmt.Errorf("failed to scan share: %w", err)
		}
		if percent.Valid {
			share.Percent, err = decimal.NewFromString(percent.String)
			if err != nil {
				return nil, fmt.Errorf("failed to parse share percent: %w", err)
			}
		}
		share.Paid = paid != 0
		expense.Shares = append(expense.Shares, share)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate shares: %w", err)
	}

	return expense, nil
}

func insertExpense(ctx context.Context, q querier, expense *models.Expense) error {
	_, err := q.ExecContext(ctx,
		`INSERT INTO expenses (id, group_id, payer_id, description, amount, policy, created_by, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		expense.ID, expense.GroupID, expense.PayerID, expense.Description,
		expense.Amount, expense.Policy, expense.CreatedBy,
		expense.CreatedAt, expense.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert expense: %w", classify(err))
	}
	return insertShares(ctx, q, expense)
}

func insertShares(ctx context.Context, q querier, expense *models.Expense) error {
	for i := range expense.Shares {
		share := &expense.Shares[i]
		share.ExpenseID = expense.ID
		share.Paid = share.UserID == expense.PayerID

		var percent any
		if expense.Policy == models.SplitPolicyPercentage {
			percent = share.Percent.String()
		}
		_, err := q.ExecContext(ctx,
			"INSERT INTO expense_shares (expense_id, user_id, position, amount, percent, paid) VALUES (?, ?, ?, ?, ?, ?)",
			expense.ID, share.UserID, i, share.Amount, percent, boolToInt(share.Paid),
		)
		if err != nil {
			return fmt.Errorf("failed to insert share: %w", classify(err))
		}
	}
	return nil
}

func replaceExpense(ctx context.Context, q querier, groupID string, expense *models.Expense) error {
	res, err := q.ExecContext(ctx,
		`UPDATE expenses SET payer_id = ?, description = ?, amount = ?, policy = ?, updated_at = ?
		 WHERE id = ? AND group_id = ?`,
		expense.PayerID, expense.Description, expense.Amount, expense.Policy,
		expense.UpdatedAt, expense.ID, groupID,
	)
	if err != nil {
		return fmt.Errorf("failed to update expense: %w", classify(err))
	}
	if err := expectOneRow(res, "expense", expense.ID); err != nil {
		return err
	}

	if _, err := q.ExecContext(ctx, "DELETE FROM expense_shares WHERE expense_id = ?", expense.ID); err != nil {
		return fmt.Errorf("failed to delete shares: %w", classify(err))
	}
	return insertShares(ctx, q, expense)
}

func deleteExpense(ctx context.Context, q querier, groupID, expenseID string) error {
	// Shares go with the expense through ON DELETE CASCADE.
	res, err := q.ExecContext(ctx,
		"DELETE FROM expenses WHERE id = ? AND group_id = ?",
		expenseID, groupID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", classify(err))
	}
	return expectOneRow(res, "expense", expenseID)
}

func expectOneRow(res sql.Result, kind, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", kind, id, models.ErrNotFound)
	}
	return nil
}
