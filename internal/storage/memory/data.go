package memory

import (
	"errors"
	"fmt"
	"maps"
	"sort"

	"github.com/mmynk/splitledger/internal/models"
)

// clone copies everything a unit of work may mutate. Stored values are
// replaced, never edited in place, so records can be shared between copies.
func (d *groupData) clone() *groupData {
	c := &groupData{
		group:    cloneGroup(&d.group),
		joined:   maps.Clone(d.joined),
		balances: maps.Clone(d.balances),
		expenses: maps.Clone(d.expenses),
		payments: maps.Clone(d.payments),
		activity: append([]*models.Activity(nil), d.activity...),
	}
	return c
}

func (d *groupData) addMembers(userIDs []string) error {
	for _, userID := range userIDs {
		if userID == "" {
			return fmt.Errorf("member id required: %w", models.ErrInvalidRequest)
		}
		if d.joined[userID] {
			continue
		}
		d.joined[userID] = true
		d.group.Members = append(d.group.Members, userID)
		if _, ok := d.balances[userID]; !ok {
			d.balances[userID] = 0
		}
	}
	return nil
}

func (d *groupData) snapshot() []models.MemberBalance {
	snapshot := make([]models.MemberBalance, 0, len(d.balances))
	for userID, balance := range d.balances {
		snapshot = append(snapshot, models.MemberBalance{GroupID: d.group.ID, UserID: userID, Balance: balance})
	}
	sort.Slice(snapshot, func(i, j int) bool { return snapshot[i].UserID < snapshot[j].UserID })
	return snapshot
}

func (d *groupData) getExpense(expenseID string) (*models.Expense, error) {
	r, ok := d.expenses[expenseID]
	if !ok {
		return nil, fmt.Errorf("expense %s: %w", expenseID, models.ErrNotFound)
	}
	return r.v.Clone(), nil
}

func (d *groupData) getPayment(paymentID string) (*models.Payment, error) {
	r, ok := d.payments[paymentID]
	if !ok {
		return nil, fmt.Errorf("payment %s: %w", paymentID, models.ErrNotFound)
	}
	p := *r.v
	return &p, nil
}

// newestFirst orders records by creation time, then by insertion, descending.
func newestFirst[T any](m map[string]*record[T], createdAt func(*T) int64) []*T {
	records := make([]*record[T], 0, len(m))
	for _, r := range m {
		records = append(records, r)
	}
	sort.Slice(records, func(i, j int) bool {
		ci, cj := createdAt(records[i].v), createdAt(records[j].v)
		if ci != cj {
			return ci > cj
		}
		return records[i].seq > records[j].seq
	})
	out := make([]*T, len(records))
	for i, r := range records {
		out[i] = r.v
	}
	return out
}

func cloneGroup(g *models.Group) models.Group {
	c := *g
	c.Members = append([]string(nil), g.Members...)
	return c
}

func cloneActivity(a *models.Activity) *models.Activity {
	c := *a
	c.Deltas = append([]models.Delta{}, a.Deltas...)
	return &c
}

func isNotFound(err error) bool {
	return errors.Is(err, models.ErrNotFound)
}
