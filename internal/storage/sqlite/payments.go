package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mmynk/splitledger/internal/models"
)

const paymentColumns = "id, group_id, from_user_id, to_user_id, amount, status, reversed, note, created_by, created_at, updated_at"

// GetPayment retrieves a payment by ID.
func (s *SQLiteStore) GetPayment(ctx context.Context, paymentID string) (*models.Payment, error) {
	return getPayment(ctx, s.db, "", paymentID)
}

// ListPaymentsByGroup retrieves all payments of a group, newest first.
func (s *SQLiteStore) ListPaymentsByGroup(ctx context.Context, groupID string) ([]*models.Payment, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+paymentColumns+" FROM payments WHERE group_id = ? ORDER BY created_at DESC, rowid DESC",
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	defer rows.Close()

	var payments []*models.Payment
	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, payment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payments: %w", err)
	}
	return payments, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPayment(row rowScanner) (*models.Payment, error) {
	p := &models.Payment{}
	var note sql.NullString
	var reversed int
	err := row.Scan(
		&p.ID, &p.GroupID, &p.FromUserID, &p.ToUserID, &p.Amount,
		&p.Status, &reversed, &note, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.Reversed = reversed != 0
	p.Note = note.String
	return p, nil
}

// getPayment loads a payment. A non-empty groupID restricts the lookup to that group.
func getPayment(ctx context.Context, q querier, groupID, paymentID string) (*models.Payment, error) {
	query := "SELECT " + paymentColumns + " FROM payments WHERE id = ?"
	args := []any{paymentID}
	if groupID != "" {
		query += " AND group_id = ?"
		args = append(args, groupID)
	}

	payment, err := scanPayment(q.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("payment %s: %w", paymentID, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get payment: %w", classify(err))
	}
	return payment, nil
}

func insertPayment(ctx context.Context, q querier, p *models.Payment) error {
	_, err := q.ExecContext(ctx,
		"INSERT INTO payments ("+paymentColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		p.ID, p.GroupID, p.FromUserID, p.ToUserID, p.Amount,
		p.Status, boolToInt(p.Reversed), nullString(p.Note), p.CreatedBy, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert payment: %w", classify(err))
	}
	return nil
}

// updatePayment persists the mutable fields of a payment.
func updatePayment(ctx context.Context, q querier, groupID string, p *models.Payment) error {
	res, err := q.ExecContext(ctx,
		"UPDATE payments SET status = ?, reversed = ?, note = ?, updated_at = ? WHERE id = ? AND group_id = ?",
		p.Status, boolToInt(p.Reversed), nullString(p.Note), p.UpdatedAt, p.ID, groupID,
	)
	if err != nil {
		return fmt.Errorf("failed to update payment: %w", classify(err))
	}
	return expectOneRow(res, "payment", p.ID)
}

func deletePayment(ctx context.Context, q querier, groupID, paymentID string) error {
	res, err := q.ExecContext(ctx,
		"DELETE FROM payments WHERE id = ? AND group_id = ?",
		paymentID, groupID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete payment: %w", classify(err))
	}
	return expectOneRow(res, "payment", paymentID)
}
