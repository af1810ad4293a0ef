// Package activity delivers committed ledger activity to downstream consumers.
package activity

import (
	"context"
	"encoding/json"
	"time"

	"github.com/mmynk/splitledger/internal/models"
)

// Publisher receives every activity record after its unit of work commits.
// Delivery is best effort: a failure never undoes the committed change.
type Publisher interface {
	Publish(ctx context.Context, a *models.Activity) error
}

// Nop discards activity.
type Nop struct{}

func (Nop) Publish(context.Context, *models.Activity) error { return nil }

// Message is the wire form of an activity record.
type Message struct {
	ID        string                `json:"id"`
	GroupID   string                `json:"group_id"`
	Actor     string                `json:"actor"`
	Action    models.ActivityAction `json:"action"`
	ExpenseID string                `json:"expense_id,omitempty"`
	PaymentID string                `json:"payment_id,omitempty"`
	Deltas    []models.Delta        `json:"deltas"`
	CreatedAt int64                 `json:"created_at"`
	Timestamp time.Time             `json:"timestamp"`
}

// NewMessage wraps a for publishing.
func NewMessage(a *models.Activity) *Message {
	deltas := a.Deltas
	if deltas == nil {
		deltas = []models.Delta{}
	}
	return &Message{
		ID:        a.ID,
		GroupID:   a.GroupID,
		Actor:     a.Actor,
		Action:    a.Action,
		ExpenseID: a.ExpenseID,
		PaymentID: a.PaymentID,
		Deltas:    deltas,
		CreatedAt: a.CreatedAt,
		Timestamp: time.Now().UTC(),
	}
}

// ToJSON converts the message to JSON bytes
func (m *Message) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// MessageFromJSON decodes a message produced by ToJSON.
func MessageFromJSON(data []byte) (*Message, error) {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
