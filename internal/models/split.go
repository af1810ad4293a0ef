package models

import "github.com/shopspring/decimal"

// SplitPolicy governs how an expense total is divided into participant shares.
type SplitPolicy string

const (
	SplitPolicyEqual      SplitPolicy = "equal"
	SplitPolicyPercentage SplitPolicy = "percentage"
	SplitPolicyAmount     SplitPolicy = "amount"
	SplitPolicyCustom     SplitPolicy = "custom"
)

// Valid reports whether p is a known split policy.
func (p SplitPolicy) Valid() bool {
	switch p {
	case SplitPolicyEqual, SplitPolicyPercentage, SplitPolicyAmount, SplitPolicyCustom:
		return true
	}
	return false
}

// Expense represents a shared expense paid by one member of a group.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string

	// GroupID is the group whose ledger this expense affects.
	GroupID string

	// PayerID is the user who paid the full amount.
	PayerID string

	// Description is a free-form label (e.g., "Dinner", "Groceries").
	Description string

	// Amount is the expense total in minor units.
	Amount int64

	// Policy is the split policy the shares were computed with.
	Policy SplitPolicy

	// Shares holds one entry per participant, in input order.
	// The sum of share amounts always equals Amount.
	Shares []ParticipantShare

	// CreatedBy is the user ID who recorded this expense.
	CreatedBy string

	// CreatedAt is the Unix timestamp when the expense was created.
	CreatedAt int64

	// UpdatedAt is the Unix timestamp of the last edit.
	UpdatedAt int64
}

// ParticipantShare is one participant's owed part of an expense.
type ParticipantShare struct {
	ExpenseID string
	UserID    string

	// Amount is what this participant owes for the expense, in minor units.
	Amount int64

	// Percent is only set for percentage splits.
	Percent decimal.Decimal

	// Paid is true for the payer's own share.
	Paid bool
}

// Deltas returns the balance changes this expense applies to its group:
// +share for every participant other than the payer and minus the sum of
// those shares for the payer. Shares are unique per user and sum to Amount,
// so the payer's entry cannot overflow.
func (e *Expense) Deltas() []Delta {
	deltas := make([]Delta, 0, len(e.Shares)+1)
	var owed int64
	for _, s := range e.Shares {
		if s.UserID == e.PayerID || s.Amount == 0 {
			continue
		}
		deltas = append(deltas, Delta{GroupID: e.GroupID, UserID: s.UserID, Amount: s.Amount})
		owed += s.Amount
	}
	if owed != 0 {
		deltas = append(deltas, Delta{GroupID: e.GroupID, UserID: e.PayerID, Amount: -owed})
	}
	sortDeltas(deltas)
	return deltas
}

// Participants returns the user IDs of all shares in order.
func (e *Expense) Participants() []string {
	ids := make([]string, len(e.Shares))
	for i, s := range e.Shares {
		ids[i] = s.UserID
	}
	return ids
}

// Clone returns a deep copy of the expense.
func (e *Expense) Clone() *Expense {
	c := *e
	c.Shares = append([]ParticipantShare(nil), e.Shares...)
	return &c
}
