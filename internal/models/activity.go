package models

// ActivityAction names a ledger-affecting operation.
type ActivityAction string

const (
	ActivityExpenseCreated   ActivityAction = "expense.created"
	ActivityExpenseUpdated   ActivityAction = "expense.updated"
	ActivityExpenseDeleted   ActivityAction = "expense.deleted"
	ActivityPaymentCreated   ActivityAction = "payment.created"
	ActivityPaymentCompleted ActivityAction = "payment.completed"
	ActivityPaymentFailed    ActivityAction = "payment.failed"
	ActivityPaymentDeleted   ActivityAction = "payment.deleted"
)

// Activity is an immutable audit record. It is never read back to derive balances.
type Activity struct {
	ID        string         `json:"id"`
	GroupID   string         `json:"group_id"`
	Actor     string         `json:"actor"`
	Action    ActivityAction `json:"action"`
	ExpenseID string         `json:"expense_id,omitempty"`
	PaymentID string         `json:"payment_id,omitempty"`
	// Deltas are the balance changes the operation applied.
	Deltas    []Delta `json:"deltas"`
	CreatedAt int64   `json:"created_at"`
}
