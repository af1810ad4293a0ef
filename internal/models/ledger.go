package models

import (
	"fmt"
	"math"
	"sort"
)

// Delta is a signed change to one member balance.
type Delta struct {
	GroupID string `json:"group_id"`
	UserID  string `json:"user_id"`
	Amount  int64  `json:"amount"`
}

// MaxBalance bounds every member balance on both sides, so a balance can
// always be negated without overflow.
const MaxBalance = math.MaxInt64

// AddBalance returns balance+amount, or ErrInvalidAmount when the result would
// leave [-MaxBalance, MaxBalance].
func AddBalance(balance, amount int64) (int64, error) {
	if (amount > 0 && balance > MaxBalance-amount) ||
		(amount < 0 && balance < -MaxBalance-amount) {
		return balance, fmt.Errorf("balance %d cannot absorb %d: %w", balance, amount, ErrInvalidAmount)
	}
	return balance + amount, nil
}

// MergeDeltas folds deltas touching the same (group, user) into one entry and
// drops entries that cancel out. The result is sorted by group then user so that
// rows are always touched in the same order.
func MergeDeltas(deltas []Delta) ([]Delta, error) {
	type key struct{ group, user string }
	sums := make(map[key]int64, len(deltas))
	for _, d := range deltas {
		k := key{d.GroupID, d.UserID}
		sum, err := AddBalance(sums[k], d.Amount)
		if err != nil {
			return nil, fmt.Errorf("delta for %s: %w", d.UserID, err)
		}
		sums[k] = sum
	}

	merged := make([]Delta, 0, len(sums))
	for k, amount := range sums {
		if amount == 0 {
			continue
		}
		merged = append(merged, Delta{GroupID: k.group, UserID: k.user, Amount: amount})
	}
	sortDeltas(merged)
	return merged, nil
}

func sortDeltas(deltas []Delta) {
	sort.Slice(deltas, func(i, j int) bool {
		if deltas[i].GroupID != deltas[j].GroupID {
			return deltas[i].GroupID < deltas[j].GroupID
		}
		return deltas[i].UserID < deltas[j].UserID
	})
}

// InvertDeltas returns the exact inverse of deltas.
func InvertDeltas(deltas []Delta) []Delta {
	inverse := make([]Delta, len(deltas))
	for i, d := range deltas {
		inverse[i] = Delta{GroupID: d.GroupID, UserID: d.UserID, Amount: -d.Amount}
	}
	return inverse
}
