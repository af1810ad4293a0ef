package ledger

import (
	"context"
	"fmt"

	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/storage"
)

// NewPayment describes a direct transfer between two members.
type NewPayment struct {
	GroupID    string
	FromUserID string
	ToUserID   string
	Amount     int64
	Note       string
}

// CreatePayment records a pending payment and applies its balance effect
// immediately: the payer's balance drops by Amount, the payee's rises by it.
func (e *Engine) CreatePayment(ctx context.Context, in NewPayment) (payment *models.Payment, err error) {
	defer e.track("CreatePayment")(&err)

	if in.GroupID == "" || in.FromUserID == "" || in.ToUserID == "" {
		return nil, fmt.Errorf("CreatePayment: group, payer and payee are required: %w", models.ErrInvalidRequest)
	}
	if in.Amount <= 0 {
		return nil, fmt.Errorf("CreatePayment: %w", models.ErrInvalidAmount)
	}
	if in.FromUserID == in.ToUserID {
		return nil, fmt.Errorf("CreatePayment: payer and payee must differ: %w", models.ErrInvalidRequest)
	}

	now := e.now().Unix()
	payment = &models.Payment{
		GroupID:    in.GroupID,
		FromUserID: in.FromUserID,
		ToUserID:   in.ToUserID,
		Amount:     in.Amount,
		Status:     models.PaymentStatusPending,
		Note:       in.Note,
		CreatedBy:  ActorFromContext(ctx),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err = e.mutate(ctx, in.GroupID, func(ctx context.Context, tx storage.Tx, group *models.Group) (*models.Activity, error) {
		if err := e.requireMembers(ctx, tx, group.ID, payment.FromUserID, payment.ToUserID); err != nil {
			return nil, err
		}
		if err := tx.CreatePayment(ctx, payment); err != nil {
			return nil, err
		}
		deltas := payment.Deltas()
		if err := tx.ApplyDeltas(ctx, deltas); err != nil {
			return nil, err
		}
		return &models.Activity{
			Action:    models.ActivityPaymentCreated,
			PaymentID: payment.ID,
			Deltas:    deltas,
		}, nil
	})
	if err != nil {
		return nil, fmt.Errorf("CreatePayment: %w", err)
	}
	return payment, nil
}

// CompletePayment moves a pending payment to completed. Balances are untouched.
func (e *Engine) CompletePayment(ctx context.Context, paymentID string) (payment *models.Payment, err error) {
	defer e.track("CompletePayment")(&err)

	payment, err = e.transition(ctx, paymentID, models.PaymentStatusCompleted)
	if err != nil {
		return nil, fmt.Errorf("CompletePayment: %w", err)
	}
	return payment, nil
}

// FailPayment moves a pending payment to failed and reverses its balance effect.
func (e *Engine) FailPayment(ctx context.Context, paymentID string) (payment *models.Payment, err error) {
	defer e.track("FailPayment")(&err)

	payment, err = e.transition(ctx, paymentID, models.PaymentStatusFailed)
	if err != nil {
		return nil, fmt.Errorf("FailPayment: %w", err)
	}
	return payment, nil
}

// transition applies pending -> completed|failed. Any move out of a terminal
// state fails with ErrInvalidStateTransition before touching a balance.
func (e *Engine) transition(ctx context.Context, paymentID string, to models.PaymentStatus) (*models.Payment, error) {
	current, err := e.store.GetPayment(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	var payment *models.Payment
	err = e.mutate(ctx, current.GroupID, func(ctx context.Context, tx storage.Tx, group *models.Group) (*models.Activity, error) {
		p, err := tx.GetPayment(ctx, paymentID)
		if err != nil {
			return nil, err
		}
		if p.Status != models.PaymentStatusPending {
			return nil, fmt.Errorf("payment %s is %s, cannot become %s: %w", p.ID, p.Status, to, models.ErrInvalidStateTransition)
		}

		entry := &models.Activity{PaymentID: p.ID}
		switch to {
		case models.PaymentStatusCompleted:
			entry.Action = models.ActivityPaymentCompleted
		case models.PaymentStatusFailed:
			entry.Action = models.ActivityPaymentFailed
			entry.Deltas, err = reversePayment(ctx, tx, p)
			if err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("unknown target status %q: %w", to, models.ErrInvalidStateTransition)
		}

		p.Status = to
		p.UpdatedAt = e.now().Unix()
		if err := tx.UpdatePayment(ctx, p); err != nil {
			return nil, err
		}
		payment = p
		return entry, nil
	})
	if err != nil {
		return nil, err
	}
	return payment, nil
}

// DeletePayment removes a payment. Unless it was already reversed by a
// failure, its balance effect is reversed first, whether pending or completed.
func (e *Engine) DeletePayment(ctx context.Context, paymentID string) (err error) {
	defer e.track("DeletePayment")(&err)

	current, err := e.store.GetPayment(ctx, paymentID)
	if err != nil {
		return fmt.Errorf("DeletePayment: %w", err)
	}

	err = e.mutate(ctx, current.GroupID, func(ctx context.Context, tx storage.Tx, group *models.Group) (*models.Activity, error) {
		p, err := tx.GetPayment(ctx, paymentID)
		if err != nil {
			return nil, err
		}
		var reversal []models.Delta
		if !p.Reversed {
			reversal, err = reversePayment(ctx, tx, p)
			if err != nil {
				return nil, err
			}
		}
		if err := tx.DeletePayment(ctx, paymentID); err != nil {
			return nil, err
		}
		return &models.Activity{
			Action:    models.ActivityPaymentDeleted,
			PaymentID: paymentID,
			Deltas:    reversal,
		}, nil
	})
	if err != nil {
		return fmt.Errorf("DeletePayment: %w", err)
	}
	return nil
}

// GetPayment returns one payment.
func (e *Engine) GetPayment(ctx context.Context, paymentID string) (*models.Payment, error) {
	payment, err := e.store.GetPayment(ctx, paymentID)
	if err != nil {
		return nil, fmt.Errorf("GetPayment: %w", err)
	}
	return payment, nil
}

// ListPayments returns a group's payments, newest first.
func (e *Engine) ListPayments(ctx context.Context, groupID string) ([]*models.Payment, error) {
	if _, err := e.store.GetGroup(ctx, groupID); err != nil {
		return nil, fmt.Errorf("ListPayments: %w", err)
	}
	payments, err := e.store.ListPaymentsByGroup(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("ListPayments: %w", err)
	}
	return payments, nil
}
