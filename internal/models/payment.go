package models

// PaymentStatus is the state of a payment.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// Terminal reports whether no further transition is allowed from s.
func (s PaymentStatus) Terminal() bool {
	return s == PaymentStatusCompleted || s == PaymentStatusFailed
}

// Payment represents a direct transfer between group members to clear debts.
//
// The balance effect is applied when the payment is created (pending): the
// payer's balance decreases by Amount and the payee's increases by Amount.
type Payment struct {
	// ID is the unique identifier for the payment (UUID format).
	ID string

	// GroupID is the group this payment belongs to.
	GroupID string

	// FromUserID is the user who paid (debtor settling up).
	FromUserID string

	// ToUserID is the user who received payment (creditor being paid).
	ToUserID string

	// Amount is the payment amount in minor units.
	Amount int64

	// Status follows pending -> completed | failed.
	Status PaymentStatus

	// Reversed is set once the balance effect has been undone.
	Reversed bool

	// Note is an optional description for the payment.
	Note string

	// CreatedBy is the user ID who recorded this payment.
	CreatedBy string

	CreatedAt int64
	UpdatedAt int64
}

// Deltas returns the balance changes applied when the payment was created.
func (p *Payment) Deltas() []Delta {
	if p.FromUserID == p.ToUserID || p.Amount == 0 {
		return nil
	}
	deltas := []Delta{
		{GroupID: p.GroupID, UserID: p.FromUserID, Amount: -p.Amount},
		{GroupID: p.GroupID, UserID: p.ToUserID, Amount: p.Amount},
	}
	sortDeltas(deltas)
	return deltas
}
