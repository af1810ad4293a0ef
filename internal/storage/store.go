// Package storage provides abstractions for persistent ledger storage.
package storage

import (
	"context"

	"github.com/mmynk/splitledger/internal/models"
)

// Store defines the interface for ledger storage operations.
// This abstraction allows swapping storage backends (SQLite, in-memory, etc.)
// without changing the engine.
type Store interface {
	// CreateGroup persists a new group and a zero balance row per member.
	// The group.ID and CreatedAt fields are populated by the store.
	CreateGroup(ctx context.Context, group *models.Group) error

	// GetGroup retrieves a group with its members.
	GetGroup(ctx context.Context, groupID string) (*models.Group, error)

	// ListGroups returns all groups ordered by creation time.
	ListGroups(ctx context.Context) ([]*models.Group, error)

	// AddGroupMembers adds users to a group, creating zero balance rows.
	// Users that are already members are ignored.
	AddGroupMembers(ctx context.Context, groupID string, userIDs []string) error

	// IsMember reports whether userID belongs to groupID.
	IsMember(ctx context.Context, groupID, userID string) (bool, error)

	// GetExpense retrieves an expense with its shares.
	GetExpense(ctx context.Context, expenseID string) (*models.Expense, error)

	// ListExpensesByGroup returns a group's expenses, newest first.
	ListExpensesByGroup(ctx context.Context, groupID string) ([]*models.Expense, error)

	// GetPayment retrieves a payment by ID.
	GetPayment(ctx context.Context, paymentID string) (*models.Payment, error)

	// ListPaymentsByGroup returns a group's payments, newest first.
	ListPaymentsByGroup(ctx context.Context, groupID string) ([]*models.Payment, error)

	// ListActivity returns up to limit activity entries of a group, newest first.
	ListActivity(ctx context.Context, groupID string, limit int) ([]*models.Activity, error)

	// GetBalance returns a member's balance. Unknown rows read as zero.
	GetBalance(ctx context.Context, groupID, userID string) (int64, error)

	// ApplyDelta atomically increments one balance and returns the new value.
	ApplyDelta(ctx context.Context, delta models.Delta) (int64, error)

	// ApplyDeltas applies every delta or none of them.
	ApplyDeltas(ctx context.Context, deltas []models.Delta) error

	// BalanceSnapshot reads every balance of a group at one point in time.
	BalanceSnapshot(ctx context.Context, groupID string) ([]models.MemberBalance, error)

	// InTx runs fn as one unit of work scoped to a group. Everything fn writes
	// is committed together, or nothing is if fn returns an error, the context
	// is done, or the commit fails.
	InTx(ctx context.Context, groupID string, fn func(tx Tx) error) error

	// Close releases any resources held by the store.
	Close() error
}

// Tx is the write side of a unit of work. All reads observe the tx's own writes.
type Tx interface {
	// Group returns the group the transaction is scoped to.
	Group(ctx context.Context) (*models.Group, error)
	SetGroupStatus(ctx context.Context, status models.GroupStatus) error

	IsMember(ctx context.Context, userID string) (bool, error)

	// ApplyDeltas increments balances atomically. Deltas must target the tx's group.
	ApplyDeltas(ctx context.Context, deltas []models.Delta) error
	Balances(ctx context.Context) ([]models.MemberBalance, error)

	GetExpense(ctx context.Context, expenseID string) (*models.Expense, error)
	CreateExpense(ctx context.Context, expense *models.Expense) error
	// ReplaceExpense overwrites an expense and all of its shares.
	ReplaceExpense(ctx context.Context, expense *models.Expense) error
	DeleteExpense(ctx context.Context, expenseID string) error

	GetPayment(ctx context.Context, paymentID string) (*models.Payment, error)
	CreatePayment(ctx context.Context, payment *models.Payment) error
	UpdatePayment(ctx context.Context, payment *models.Payment) error
	DeletePayment(ctx context.Context, paymentID string) error

	AppendActivity(ctx context.Context, activity *models.Activity) error
}
