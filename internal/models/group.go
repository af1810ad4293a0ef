package models

import "github.com/shopspring/decimal"

// GroupStatus is the lifecycle state of a group.
type GroupStatus string

const (
	// GroupStatusActive means at least one member balance is non-zero.
	GroupStatusActive GroupStatus = "active"
	// GroupStatusSettled means every member balance is zero.
	GroupStatusSettled GroupStatus = "settled"
	// GroupStatusArchived groups are read-only. Archiving is sticky.
	GroupStatusArchived GroupStatus = "archived"
)

// DefaultCurrency is used when a group is created without a currency.
const DefaultCurrency = "USD"

// Group represents an expense-sharing group.
type Group struct {
	// ID is the unique identifier for the group (UUID format).
	ID string

	// Name is the display name of the group (e.g., "Roommates", "Work Lunch").
	Name string

	// Currency is the ISO 4217 code all amounts in this group are expressed in.
	Currency string

	// Status is maintained by the ledger engine after every mutation.
	Status GroupStatus

	// Members is the list of opaque user IDs belonging to this group.
	Members []string

	// CreatedAt is the Unix timestamp when the group was created.
	CreatedAt int64
}

// HasMember reports whether userID is listed in the group's members.
func (g *Group) HasMember(userID string) bool {
	for _, m := range g.Members {
		if m == userID {
			return true
		}
	}
	return false
}

// MemberBalance is one row of the ledger.
type MemberBalance struct {
	GroupID string
	UserID  string
	// Balance in minor units. Positive = owes, negative = is owed.
	Balance int64
}

// SumBalances returns the exact sum of all balances. It is zero for a
// consistent group. Members can each hold up to MaxBalance, so the sum is
// computed without an int64 accumulator.
func SumBalances(balances []MemberBalance) decimal.Decimal {
	sum := decimal.Zero
	for _, b := range balances {
		sum = sum.Add(decimal.NewFromInt(b.Balance))
	}
	return sum
}
