package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/mmynk/splitledger/internal/models"
)

// ListActivity returns the most recent activity of a group. A limit of zero
// or less returns everything.
func (s *SQLiteStore) ListActivity(ctx context.Context, groupID string, limit int) ([]*models.Activity, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, group_id, actor, action, expense_id, payment_id, deltas, created_at
		 FROM activity WHERE group_id = ? ORDER BY created_at DESC, rowid DESC LIMIT ?`,
		groupID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity: %w", err)
	}
	defer rows.Close()

	var entries []*models.Activity
	for rows.Next() {
		a := &models.Activity{}
		var expenseID, paymentID sql.NullString
		var deltas string
		if err := rows.Scan(&a.ID, &a.GroupID, &a.Actor, &a.Action, &expenseID, &paymentID, &deltas, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		a.ExpenseID = expenseID.String
		a.PaymentID = paymentID.String
		if err := json.Unmarshal([]byte(deltas), &a.Deltas); err != nil {
			return nil, fmt.Errorf("failed to decode activity deltas: %w", err)
		}
		entries = append(entries, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate activity: %w", err)
	}
	return entries, nil
}

func insertActivity(ctx context.Context, q querier, a *models.Activity) error {
	if a.Deltas == nil {
		a.Deltas = []models.Delta{}
	}
	deltas, err := json.Marshal(a.Deltas)
	if err != nil {
		return fmt.Errorf("failed to encode activity deltas: %w", err)
	}
	_, err = q.ExecContext(ctx,
		`INSERT INTO activity (id, group_id, actor, action, expense_id, payment_id, deltas, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.GroupID, a.Actor, a.Action, nullString(a.ExpenseID), nullString(a.PaymentID), string(deltas), a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert activity: %w", classify(err))
	}
	return nil
}
