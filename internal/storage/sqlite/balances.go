package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mmynk/splitledger/internal/models"
)

// GetBalance returns a member's balance. Members without a row read as zero.
func (s *SQLiteStore) GetBalance(ctx context.Context, groupID, userID string) (int64, error) {
	var balance int64
	err := s.db.QueryRowContext(ctx,
		"SELECT balance FROM member_balances WHERE group_id = ? AND user_id = ?",
		groupID, userID,
	).Scan(&balance)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get balance: %w", classify(err))
	}
	return balance, nil
}

// ApplyDelta atomically increments a single balance and returns the new value.
func (s *SQLiteStore) ApplyDelta(ctx context.Context, delta models.Delta) (int64, error) {
	return applyDelta(ctx, s.db, delta)
}

// ApplyDeltas applies all deltas in one transaction.
func (s *SQLiteStore) ApplyDeltas(ctx context.Context, deltas []models.Delta) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", classify(err))
	}
	defer tx.Rollback()

	merged, err := models.MergeDeltas(deltas)
	if err != nil {
		return err
	}
	for _, d := range merged {
		if _, err := applyDelta(ctx, tx, d); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w: %w", models.ErrTransactionAborted, err)
	}
	return nil
}

// BalanceSnapshot reads all balances of a group with a single statement.
func (s *SQLiteStore) BalanceSnapshot(ctx context.Context, groupID string) ([]models.MemberBalance, error) {
	return balances(ctx, s.db, groupID)
}

// applyDelta increments the row in place so concurrent writers never
// overwrite each other with a stale read.
//
// SQLite silently promotes an overflowing integer sum to REAL, so the update
// only fires while the stored balance leaves room for the delta. A row that
// fails the guard is left untouched and RETURNING yields nothing.
func applyDelta(ctx context.Context, q querier, d models.Delta) (int64, error) {
	if d.GroupID == "" || d.UserID == "" {
		return 0, fmt.Errorf("delta must name a group and a user: %w", models.ErrInvalidRequest)
	}
	if d.Amount < -models.MaxBalance {
		return 0, fmt.Errorf("delta %d for %s: %w", d.Amount, d.UserID, models.ErrInvalidAmount)
	}
	lo, hi := balanceRoom(d.Amount)

	var balance int64
	err := q.QueryRowContext(ctx,
		`INSERT INTO member_balances (group_id, user_id, balance) VALUES (?, ?, ?)
		 ON CONFLICT (group_id, user_id) DO UPDATE SET balance = balance + excluded.balance
		 WHERE member_balances.balance BETWEEN ? AND ?
		 RETURNING balance`,
		d.GroupID, d.UserID, d.Amount, lo, hi,
	).Scan(&balance)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("balance of %s cannot absorb %d: %w", d.UserID, d.Amount, models.ErrInvalidAmount)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to apply delta: %w", classify(err))
	}
	return balance, nil
}

// balanceRoom returns the range a stored balance must lie in for
// balance+amount to stay within [-MaxBalance, MaxBalance].
func balanceRoom(amount int64) (lo, hi int64) {
	lo, hi = -models.MaxBalance, models.MaxBalance
	if amount > 0 {
		hi -= amount
	} else {
		lo -= amount
	}
	return lo, hi
}

func balances(ctx context.Context, q querier, groupID string) ([]models.MemberBalance, error) {
	rows, err := q.QueryContext(ctx,
		"SELECT user_id, balance FROM member_balances WHERE group_id = ? ORDER BY user_id",
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to read balances: %w", classify(err))
	}
	defer rows.Close()

	var result []models.MemberBalance
	for rows.Next() {
		b := models.MemberBalance{GroupID: groupID}
		if err := rows.Scan(&b.UserID, &b.Balance); err != nil {
			return nil, fmt.Errorf("failed to scan balance: %w", err)
		}
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate balances: %w", err)
	}
	return result, nil
}
