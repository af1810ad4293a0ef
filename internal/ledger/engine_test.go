package ledger

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/splitledger/internal/calculator"
	"github.com/mmynk/splitledger/internal/metrics"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/storage"
	"github.com/mmynk/splitledger/internal/storage/memory"
	"github.com/mmynk/splitledger/internal/storage/sqlite"
)

type backend struct {
	name     string
	newStore func(t *testing.T) storage.Store
}

func backends() []backend {
	return []backend{
		{"memory", func(t *testing.T) storage.Store { return memory.New() }},
		{"sqlite", func(t *testing.T) storage.Store {
			store, err := sqlite.New(filepath.Join(t.TempDir(), "ledger.db"))
			require.NoError(t, err)
			t.Cleanup(func() { store.Close() })
			return store
		}},
	}
}

// forEachBackend runs fn once per storage backend.
func forEachBackend(t *testing.T, fn func(t *testing.T, newStore func(t *testing.T) storage.Store)) {
	for _, b := range backends() {
		t.Run(b.name, func(t *testing.T) { fn(t, b.newStore) })
	}
}

func fixedClock() func() time.Time {
	var tick int64
	return func() time.Time {
		return time.Unix(1_700_000_000+atomic.AddInt64(&tick, 1), 0)
	}
}

func newEngine(t *testing.T, store storage.Store, opts ...Option) *Engine {
	t.Helper()
	return New(store, append([]Option{WithClock(fixedClock())}, opts...)...)
}

func mustGroup(t *testing.T, e *Engine, members ...string) *models.Group {
	t.Helper()
	group, err := e.CreateGroup(context.Background(), "test", "usd", members)
	require.NoError(t, err)
	return group
}

func equal(ids ...string) []calculator.Participant {
	ps := make([]calculator.Participant, len(ids))
	for i, id := range ids {
		ps[i] = calculator.Participant{UserID: id}
	}
	return ps
}

func balancesOf(t *testing.T, e *Engine, groupID string) map[string]int64 {
	t.Helper()
	snapshot, err := e.GetGroupBalances(context.Background(), groupID)
	require.NoError(t, err)
	out := make(map[string]int64, len(snapshot))
	for _, b := range snapshot {
		out[b.UserID] = b.Balance
	}
	return out
}

func assertZeroSum(t *testing.T, e *Engine, groupID string) {
	t.Helper()
	snapshot, err := e.GetGroupBalances(context.Background(), groupID)
	require.NoError(t, err)
	assert.True(t, models.SumBalances(snapshot).IsZero(), "group balances must sum to zero")
}

func TestEqualSplitBalances(t *testing.T) {
	forEachBackend(t, func(t *testing.T, newStore func(t *testing.T) storage.Store) {
		e := newEngine(t, newStore(t))
		ctx := context.Background()
		group := mustGroup(t, e, "A", "B", "C")

		expense, err := e.CreateExpense(ctx, NewExpense{
			GroupID:      group.ID,
			PayerID:      "A",
			Description:  "Dinner",
			Amount:       1200,
			Policy:       models.SplitPolicyEqual,
			Participants: equal("A", "B", "C"),
		})
		require.NoError(t, err)
		assert.NotEmpty(t, expense.ID)

		assert.Equal(t, map[string]int64{"A": -800, "B": 400, "C": 400}, balancesOf(t, e, group.ID))
		assertZeroSum(t, e, group.ID)

		for _, user := range []string{"A", "B", "C"} {
			balance, err := e.GetBalance(ctx, group.ID, user)
			require.NoError(t, err)
			assert.Equal(t, balancesOf(t, e, group.ID)[user], balance)
		}

		g, err := e.GetGroup(ctx, group.ID)
		require.NoError(t, err)
		assert.Equal(t, models.GroupStatusActive, g.Status)
	})
}

func TestEqualSplitRemainderGoesToFirstParticipants(t *testing.T) {
	forEachBackend(t, func(t *testing.T, newStore func(t *testing.T) storage.Store) {
		e := newEngine(t, newStore(t))
		group := mustGroup(t, e, "A", "B", "C")

		expense, err := e.CreateExpense(context.Background(), NewExpense{
			GroupID:      group.ID,
			PayerID:      "A",
			Amount:       1000,
			Policy:       models.SplitPolicyEqual,
			Participants: equal("A", "B", "C"),
		})
		require.NoError(t, err)

		got := make([]int64, len(expense.Shares))
		for i, s := range expense.Shares {
			got[i] = s.Amount
		}
		assert.Equal(t, []int64{334, 333, 333}, got)

		stored, err := e.GetExpense(context.Background(), expense.ID)
		require.NoError(t, err)
		assert.Equal(t, expense.Shares[0].Amount, stored.Shares[0].Amount)
		assert.True(t, stored.Shares[0].Paid)
	})
}

func TestSettlementSuggestionsSettleTheGroup(t *testing.T) {
	forEachBackend(t, func(t *testing.T, newStore func(t *testing.T) storage.Store) {
		e := newEngine(t, newStore(t))
		ctx := context.Background()
		group := mustGroup(t, e, "A", "B", "C")

		_, err := e.CreateExpense(ctx, NewExpense{
			GroupID: group.ID, PayerID: "A", Amount: 1200,
			Policy: models.SplitPolicyEqual, Participants: equal("A", "B", "C"),
		})
		require.NoError(t, err)

		transfers, err := e.GenerateSettlementSuggestions(ctx, group.ID)
		require.NoError(t, err)
		assert.ElementsMatch(t, []models.Transfer{
			{FromUserID: "B", ToUserID: "A", Amount: 400},
			{FromUserID: "C", ToUserID: "A", Amount: 400},
		}, transfers)

		// Paying the plan as completed payments settles the group.
		for _, tr := range transfers {
			p, err := e.CreatePayment(ctx, NewPayment{GroupID: group.ID, FromUserID: tr.FromUserID, ToUserID: tr.ToUserID, Amount: tr.Amount})
			require.NoError(t, err)
			_, err = e.CompletePayment(ctx, p.ID)
			require.NoError(t, err)
		}
		assert.Equal(t, map[string]int64{"A": 0, "B": 0, "C": 0}, balancesOf(t, e, group.ID))

		g, err := e.GetGroup(ctx, group.ID)
		require.NoError(t, err)
		assert.Equal(t, models.GroupStatusSettled, g.Status)

		transfers, err = e.GenerateSettlementSuggestions(ctx, group.ID)
		require.NoError(t, err)
		assert.Empty(t, transfers)
	})
}

func TestFailedPaymentIsReversed(t *testing.T) {
	forEachBackend(t, func(t *testing.T, newStore func(t *testing.T) storage.Store) {
		e := newEngine(t, newStore(t))
		ctx := context.Background()
		group := mustGroup(t, e, "X", "Y")

		payment, err := e.CreatePayment(ctx, NewPayment{GroupID: group.ID, FromUserID: "X", ToUserID: "Y", Amount: 500})
		require.NoError(t, err)
		assert.Equal(t, models.PaymentStatusPending, payment.Status)
		assert.Equal(t, map[string]int64{"X": -500, "Y": 500}, balancesOf(t, e, group.ID))

		failed, err := e.FailPayment(ctx, payment.ID)
		require.NoError(t, err)
		assert.Equal(t, models.PaymentStatusFailed, failed.Status)
		assert.True(t, failed.Reversed)
		assert.Equal(t, map[string]int64{"X": 0, "Y": 0}, balancesOf(t, e, group.ID))
	})
}

func TestDeleteExpenseRestoresBalances(t *testing.T) {
	forEachBackend(t, func(t *testing.T, newStore func(t *testing.T) storage.Store) {
		e := newEngine(t, newStore(t))
		ctx := context.Background()
		group := mustGroup(t, e, "A", "B", "C", "D")

		_, err := e.CreateExpense(ctx, NewExpense{
			GroupID: group.ID, PayerID: "D", Amount: 999,
			Policy: models.SplitPolicyEqual, Participants: equal("A", "D"),
		})
		require.NoError(t, err)
		before := balancesOf(t, e, group.ID)

		target, err := e.CreateExpense(ctx, NewExpense{
			GroupID: group.ID, PayerID: "A", Amount: 1200,
			Policy: models.SplitPolicyAmount,
			Participants: []calculator.Participant{
				{UserID: "A", Amount: 400}, {UserID: "B", Amount: 400}, {UserID: "C", Amount: 400},
			},
		})
		require.NoError(t, err)

		unrelated, err := e.CreateExpense(ctx, NewExpense{
			GroupID: group.ID, PayerID: "C", Amount: 77,
			Policy: models.SplitPolicyEqual, Participants: equal("B", "C", "D"),
		})
		require.NoError(t, err)
		require.NoError(t, e.DeleteExpense(ctx, unrelated.ID))

		require.NoError(t, e.DeleteExpense(ctx, target.ID))
		assert.Equal(t, before, balancesOf(t, e, group.ID))

		_, err = e.GetExpense(ctx, target.ID)
		assert.ErrorIs(t, err, models.ErrNotFound)
	})
}

func TestPercentageSplitIsExact(t *testing.T) {
	e := newEngine(t, memory.New())
	group := mustGroup(t, e, "A", "B", "C")

	expense, err := e.CreateExpense(context.Background(), NewExpense{
		GroupID: group.ID, PayerID: "B", Amount: 1001,
		Policy: models.SplitPolicyPercentage,
		Participants: []calculator.Participant{
			{UserID: "A", Percent: decimal.RequireFromString("33.33")},
			{UserID: "B", Percent: decimal.RequireFromString("33.33")},
			{UserID: "C", Percent: decimal.RequireFromString("33.34")},
		},
	})
	require.NoError(t, err)

	var sum int64
	for _, s := range expense.Shares {
		sum += s.Amount
	}
	assert.Equal(t, int64(1001), sum)
	assertZeroSum(t, e, group.ID)
}

func TestPreconditionFailuresWriteNothing(t *testing.T) {
	tests := []struct {
		name    string
		in      NewExpense
		wantErr error
	}{
		{
			name:    "payer not a member",
			in:      NewExpense{PayerID: "Z", Amount: 100, Policy: models.SplitPolicyEqual, Participants: equal("A", "B")},
			wantErr: models.ErrNotAMember,
		},
		{
			name:    "participant not a member",
			in:      NewExpense{PayerID: "A", Amount: 100, Policy: models.SplitPolicyEqual, Participants: equal("A", "Z")},
			wantErr: models.ErrNotAMember,
		},
		{
			name: "amounts do not sum",
			in: NewExpense{PayerID: "A", Amount: 100, Policy: models.SplitPolicyCustom, Participants: []calculator.Participant{
				{UserID: "A", Amount: 50}, {UserID: "B", Amount: 49},
			}},
			wantErr: models.ErrSplitMismatch,
		},
		{
			name: "percentages do not sum",
			in: NewExpense{PayerID: "A", Amount: 100, Policy: models.SplitPolicyPercentage, Participants: []calculator.Participant{
				{UserID: "A", Percent: decimal.NewFromInt(50)}, {UserID: "B", Percent: decimal.NewFromInt(49)},
			}},
			wantErr: models.ErrSplitMismatch,
		},
		{
			name:    "zero amount",
			in:      NewExpense{PayerID: "A", Amount: 0, Policy: models.SplitPolicyEqual, Participants: equal("A", "B")},
			wantErr: models.ErrInvalidAmount,
		},
		{
			name:    "unknown policy",
			in:      NewExpense{PayerID: "A", Amount: 10, Policy: "shares", Participants: equal("A", "B")},
			wantErr: models.ErrInvalidRequest,
		},
	}

	forEachBackend(t, func(t *testing.T, newStore func(t *testing.T) storage.Store) {
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				e := newEngine(t, newStore(t))
				ctx := context.Background()
				group := mustGroup(t, e, "A", "B")

				in := tt.in
				in.GroupID = group.ID
				_, err := e.CreateExpense(ctx, in)
				require.ErrorIs(t, err, tt.wantErr)

				assert.Equal(t, map[string]int64{"A": 0, "B": 0}, balancesOf(t, e, group.ID))
				expenses, err := e.ListExpenses(ctx, group.ID)
				require.NoError(t, err)
				assert.Empty(t, expenses)
				entries, err := e.ListActivity(ctx, group.ID, 0)
				require.NoError(t, err)
				assert.Empty(t, entries)
			})
		}
	})
}

func TestBalancesNeverWrapAround(t *testing.T) {
	forEachBackend(t, func(t *testing.T, newStore func(t *testing.T) storage.Store) {
		e := newEngine(t, newStore(t))
		ctx := context.Background()
		group := mustGroup(t, e, "A", "B", "C", "P")
		zero := map[string]int64{"A": 0, "B": 0, "C": 0, "P": 0}

		// MaxInt64 + MaxInt64 + 3 wraps to 1 in int64.
		_, err := e.CreateExpense(ctx, NewExpense{
			GroupID: group.ID,
			PayerID: "P",
			Amount:  1,
			Policy:  models.SplitPolicyCustom,
			Participants: []calculator.Participant{
				{UserID: "A", Amount: math.MaxInt64},
				{UserID: "B", Amount: math.MaxInt64},
				{UserID: "C", Amount: 3},
			},
		})
		require.ErrorIs(t, err, models.ErrSplitMismatch)
		assert.Equal(t, zero, balancesOf(t, e, group.ID))

		largest := NewExpense{
			GroupID:      group.ID,
			PayerID:      "P",
			Amount:       math.MaxInt64,
			Policy:       models.SplitPolicyAmount,
			Participants: []calculator.Participant{{UserID: "A", Amount: math.MaxInt64}},
		}
		_, err = e.CreateExpense(ctx, largest)
		require.NoError(t, err)
		want := map[string]int64{"A": math.MaxInt64, "B": 0, "C": 0, "P": -math.MaxInt64}
		assert.Equal(t, want, balancesOf(t, e, group.ID))

		_, err = e.CreateExpense(ctx, largest)
		require.ErrorIs(t, err, models.ErrInvalidAmount)
		assert.Equal(t, want, balancesOf(t, e, group.ID))
		assertZeroSum(t, e, group.ID)

		expenses, err := e.ListExpenses(ctx, group.ID)
		require.NoError(t, err)
		assert.Len(t, expenses, 1)
		entries, err := e.ListActivity(ctx, group.ID, 0)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})
}

func TestUnknownGroup(t *testing.T) {
	e := newEngine(t, memory.New())
	ctx := context.Background()

	_, err := e.CreateExpense(ctx, NewExpense{GroupID: "nope", PayerID: "A", Amount: 10, Policy: models.SplitPolicyEqual, Participants: equal("A")})
	assert.ErrorIs(t, err, models.ErrNotFound)

	_, err = e.GenerateSettlementSuggestions(ctx, "nope")
	assert.ErrorIs(t, err, models.ErrNotFound)

	_, err = e.GetBalance(ctx, "nope", "A")
	assert.ErrorIs(t, err, models.ErrNotFound)

	group := mustGroup(t, e, "A")
	_, err = e.GetBalance(ctx, group.ID, "stranger")
	assert.ErrorIs(t, err, models.ErrNotFound)

	assert.ErrorIs(t, e.DeleteExpense(ctx, "missing"), models.ErrNotFound)
	assert.ErrorIs(t, e.DeletePayment(ctx, "missing"), models.ErrNotFound)
	_, err = e.CompletePayment(ctx, "missing")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestEditExpense(t *testing.T) {
	forEachBackend(t, func(t *testing.T, newStore func(t *testing.T) storage.Store) {
		e := newEngine(t, newStore(t))
		ctx := context.Background()
		group := mustGroup(t, e, "A", "B", "C")

		expense, err := e.CreateExpense(ctx, NewExpense{
			GroupID: group.ID, PayerID: "A", Description: "Taxi", Amount: 900,
			Policy: models.SplitPolicyEqual, Participants: equal("A", "B", "C"),
		})
		require.NoError(t, err)

		t.Run("amount only keeps participants", func(t *testing.T) {
			amount := int64(600)
			updated, err := e.EditExpense(ctx, expense.ID, ExpenseUpdate{Amount: &amount})
			require.NoError(t, err)
			assert.Equal(t, "Taxi", updated.Description)
			assert.Equal(t, []string{"A", "B", "C"}, updated.Participants())
			assert.Equal(t, map[string]int64{"A": -400, "B": 200, "C": 200}, balancesOf(t, e, group.ID))
		})

		t.Run("change payer and participants", func(t *testing.T) {
			payer := "C"
			updated, err := e.EditExpense(ctx, expense.ID, ExpenseUpdate{PayerID: &payer, Participants: equal("A", "B")})
			require.NoError(t, err)
			assert.Equal(t, "C", updated.PayerID)
			assert.Equal(t, map[string]int64{"A": 300, "B": 300, "C": -600}, balancesOf(t, e, group.ID))
		})

		t.Run("invalid edit changes nothing", func(t *testing.T) {
			before := balancesOf(t, e, group.ID)
			_, err := e.EditExpense(ctx, expense.ID, ExpenseUpdate{Participants: equal("A", "stranger")})
			require.ErrorIs(t, err, models.ErrNotAMember)

			policy := models.SplitPolicyAmount
			amount := int64(1)
			_, err = e.EditExpense(ctx, expense.ID, ExpenseUpdate{Policy: &policy, Amount: &amount})
			require.ErrorIs(t, err, models.ErrSplitMismatch)

			assert.Equal(t, before, balancesOf(t, e, group.ID))
			stored, err := e.GetExpense(ctx, expense.ID)
			require.NoError(t, err)
			assert.Equal(t, int64(600), stored.Amount)
		})

		t.Run("activity records net deltas", func(t *testing.T) {
			entries, err := e.ListActivity(ctx, group.ID, 1)
			require.NoError(t, err)
			require.Len(t, entries, 1)
			assert.Equal(t, models.ActivityExpenseUpdated, entries[0].Action)
			assert.ElementsMatch(t, []models.Delta{
				{GroupID: group.ID, UserID: "A", Amount: 700},
				{GroupID: group.ID, UserID: "B", Amount: 100},
				{GroupID: group.ID, UserID: "C", Amount: -800},
			}, entries[0].Deltas)
		})
	})
}

func TestPaymentStateMachine(t *testing.T) {
	forEachBackend(t, func(t *testing.T, newStore func(t *testing.T) storage.Store) {
		e := newEngine(t, newStore(t))
		ctx := context.Background()
		group := mustGroup(t, e, "X", "Y")

		t.Run("terminal states reject transitions without touching balances", func(t *testing.T) {
			completed, err := e.CreatePayment(ctx, NewPayment{GroupID: group.ID, FromUserID: "X", ToUserID: "Y", Amount: 100})
			require.NoError(t, err)
			_, err = e.CompletePayment(ctx, completed.ID)
			require.NoError(t, err)

			failed, err := e.CreatePayment(ctx, NewPayment{GroupID: group.ID, FromUserID: "Y", ToUserID: "X", Amount: 30})
			require.NoError(t, err)
			_, err = e.FailPayment(ctx, failed.ID)
			require.NoError(t, err)

			before := balancesOf(t, e, group.ID)
			assert.Equal(t, map[string]int64{"X": -100, "Y": 100}, before)

			for _, id := range []string{completed.ID, failed.ID} {
				_, err = e.FailPayment(ctx, id)
				assert.ErrorIs(t, err, models.ErrInvalidStateTransition)
				_, err = e.CompletePayment(ctx, id)
				assert.ErrorIs(t, err, models.ErrInvalidStateTransition)
			}
			assert.Equal(t, before, balancesOf(t, e, group.ID))
		})

		t.Run("deleting a completed payment reverses it", func(t *testing.T) {
			before := balancesOf(t, e, group.ID)
			p, err := e.CreatePayment(ctx, NewPayment{GroupID: group.ID, FromUserID: "Y", ToUserID: "X", Amount: 40})
			require.NoError(t, err)
			_, err = e.CompletePayment(ctx, p.ID)
			require.NoError(t, err)

			require.NoError(t, e.DeletePayment(ctx, p.ID))
			assert.Equal(t, before, balancesOf(t, e, group.ID))
			_, err = e.GetPayment(ctx, p.ID)
			assert.ErrorIs(t, err, models.ErrNotFound)
		})

		t.Run("deleting a failed payment does not reverse twice", func(t *testing.T) {
			before := balancesOf(t, e, group.ID)
			p, err := e.CreatePayment(ctx, NewPayment{GroupID: group.ID, FromUserID: "X", ToUserID: "Y", Amount: 15})
			require.NoError(t, err)
			_, err = e.FailPayment(ctx, p.ID)
			require.NoError(t, err)

			require.NoError(t, e.DeletePayment(ctx, p.ID))
			assert.Equal(t, before, balancesOf(t, e, group.ID))
		})

		t.Run("invalid payments", func(t *testing.T) {
			_, err := e.CreatePayment(ctx, NewPayment{GroupID: group.ID, FromUserID: "X", ToUserID: "X", Amount: 1})
			assert.ErrorIs(t, err, models.ErrInvalidRequest)
			_, err = e.CreatePayment(ctx, NewPayment{GroupID: group.ID, FromUserID: "X", ToUserID: "Y", Amount: -1})
			assert.ErrorIs(t, err, models.ErrInvalidAmount)
			_, err = e.CreatePayment(ctx, NewPayment{GroupID: group.ID, FromUserID: "X", ToUserID: "Q", Amount: 1})
			assert.ErrorIs(t, err, models.ErrNotAMember)
		})

		assertZeroSum(t, e, group.ID)
	})
}

func TestArchivedGroupRejectsMutations(t *testing.T) {
	forEachBackend(t, func(t *testing.T, newStore func(t *testing.T) storage.Store) {
		e := newEngine(t, newStore(t))
		ctx := context.Background()
		group := mustGroup(t, e, "A", "B")

		expense, err := e.CreateExpense(ctx, NewExpense{
			GroupID: group.ID, PayerID: "A", Amount: 10,
			Policy: models.SplitPolicyEqual, Participants: equal("A", "B"),
		})
		require.NoError(t, err)

		_, err = e.ArchiveGroup(ctx, group.ID)
		require.ErrorIs(t, err, models.ErrInvalidStateTransition)

		require.NoError(t, e.DeleteExpense(ctx, expense.ID))
		archived, err := e.ArchiveGroup(ctx, group.ID)
		require.NoError(t, err)
		assert.Equal(t, models.GroupStatusArchived, archived.Status)

		again, err := e.ArchiveGroup(ctx, group.ID)
		require.NoError(t, err)
		assert.Equal(t, models.GroupStatusArchived, again.Status)

		_, err = e.CreatePayment(ctx, NewPayment{GroupID: group.ID, FromUserID: "A", ToUserID: "B", Amount: 1})
		assert.ErrorIs(t, err, models.ErrGroupArchived)
		_, err = e.AddMembers(ctx, group.ID, []string{"C"})
		assert.ErrorIs(t, err, models.ErrGroupArchived)
	})
}

func TestAddMembers(t *testing.T) {
	e := newEngine(t, memory.New())
	ctx := context.Background()
	group := mustGroup(t, e, "A")

	updated, err := e.AddMembers(ctx, group.ID, []string{"B", "A", " ", "B"})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, updated.Members)

	balance, err := e.GetBalance(ctx, group.ID, "B")
	require.NoError(t, err)
	assert.Zero(t, balance)
}

// skewStore drops the first delta of every batch so balances drift.
type skewStore struct{ storage.Store }

func (s skewStore) InTx(ctx context.Context, groupID string, fn func(tx storage.Tx) error) error {
	return s.Store.InTx(ctx, groupID, func(tx storage.Tx) error { return fn(skewTx{tx}) })
}

type skewTx struct{ storage.Tx }

func (t skewTx) ApplyDeltas(ctx context.Context, deltas []models.Delta) error {
	if len(deltas) > 0 {
		deltas = deltas[1:]
	}
	return t.Tx.ApplyDeltas(ctx, deltas)
}

func TestInvariantViolationRollsBack(t *testing.T) {
	forEachBackend(t, func(t *testing.T, newStore func(t *testing.T) storage.Store) {
		base := newStore(t)
		m := metrics.New()
		e := newEngine(t, skewStore{base}, WithMetrics(m))
		ctx := context.Background()
		group := mustGroup(t, e, "A", "B")

		_, err := e.CreateExpense(ctx, NewExpense{
			GroupID: group.ID, PayerID: "A", Amount: 10,
			Policy: models.SplitPolicyEqual, Participants: equal("A", "B"),
		})
		require.ErrorIs(t, err, models.ErrInvariantViolation)

		assert.Equal(t, map[string]int64{"A": 0, "B": 0}, balancesOf(t, e, group.ID))
		expenses, err := e.ListExpenses(ctx, group.ID)
		require.NoError(t, err)
		assert.Empty(t, expenses)
	})
}

func TestCancelledContextAborts(t *testing.T) {
	forEachBackend(t, func(t *testing.T, newStore func(t *testing.T) storage.Store) {
		e := newEngine(t, newStore(t))
		group := mustGroup(t, e, "A", "B")

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := e.CreatePayment(ctx, NewPayment{GroupID: group.ID, FromUserID: "A", ToUserID: "B", Amount: 5})
		require.ErrorIs(t, err, models.ErrTransactionAborted)

		assert.Equal(t, map[string]int64{"A": 0, "B": 0}, balancesOf(t, e, group.ID))
	})
}

func TestConcurrentMutationsKeepZeroSum(t *testing.T) {
	forEachBackend(t, func(t *testing.T, newStore func(t *testing.T) storage.Store) {
		e := newEngine(t, newStore(t))
		ctx := context.Background()
		shared := mustGroup(t, e, "A", "B", "C")
		other := mustGroup(t, e, "A", "B")

		const workers = 8
		const perWorker = 10
		var wg sync.WaitGroup
		errs := make(chan error, workers*perWorker*2)
		for w := 0; w < workers; w++ {
			wg.Add(1)
			go func(w int) {
				defer wg.Done()
				for i := 0; i < perWorker; i++ {
					_, err := e.CreateExpense(ctx, NewExpense{
						GroupID: shared.ID, PayerID: "A", Amount: 301,
						Policy: models.SplitPolicyEqual, Participants: equal("A", "B", "C"),
					})
					if err != nil {
						errs <- err
					}
					_, err = e.CreatePayment(ctx, NewPayment{GroupID: other.ID, FromUserID: "A", ToUserID: "B", Amount: int64(w + 1)})
					if err != nil {
						errs <- err
					}
				}
			}(w)
		}
		wg.Wait()
		close(errs)
		for err := range errs {
			require.NoError(t, err)
		}

		n := int64(workers * perWorker)
		// 301 splits as [101, 100, 100]
		assert.Equal(t, map[string]int64{"A": -200 * n, "B": 100 * n, "C": 100 * n}, balancesOf(t, e, shared.ID))
		assertZeroSum(t, e, shared.ID)

		var paid int64
		for w := 1; w <= workers; w++ {
			paid += int64(w * perWorker)
		}
		assert.Equal(t, map[string]int64{"A": -paid, "B": paid}, balancesOf(t, e, other.ID))
	})
}

func TestRandomOperationsPreserveInvariants(t *testing.T) {
	forEachBackend(t, func(t *testing.T, newStore func(t *testing.T) storage.Store) {
		e := newEngine(t, newStore(t))
		ctx := context.Background()
		members := []string{"u1", "u2", "u3", "u4", "u5", "u6"}
		group := mustGroup(t, e, members...)
		rng := rand.New(rand.NewSource(42))

		var expenses, payments []string
		for step := 0; step < 120; step++ {
			switch op := rng.Intn(5); {
			case op <= 1:
				n := 1 + rng.Intn(len(members))
				perm := rng.Perm(len(members))[:n]
				ids := make([]string, n)
				for i, p := range perm {
					ids[i] = members[p]
				}
				exp, err := e.CreateExpense(ctx, NewExpense{
					GroupID: group.ID, PayerID: members[rng.Intn(len(members))],
					Amount: 1 + rng.Int63n(10_000), Policy: models.SplitPolicyEqual, Participants: equal(ids...),
				})
				require.NoError(t, err)
				var sum int64
				for _, s := range exp.Shares {
					sum += s.Amount
				}
				require.Equal(t, exp.Amount, sum)
				expenses = append(expenses, exp.ID)
			case op == 2 && len(expenses) > 0:
				i := rng.Intn(len(expenses))
				require.NoError(t, e.DeleteExpense(ctx, expenses[i]))
				expenses = append(expenses[:i], expenses[i+1:]...)
			case op == 3:
				from, to := rng.Intn(len(members)), rng.Intn(len(members))
				if from == to {
					continue
				}
				p, err := e.CreatePayment(ctx, NewPayment{GroupID: group.ID, FromUserID: members[from], ToUserID: members[to], Amount: 1 + rng.Int63n(500)})
				require.NoError(t, err)
				payments = append(payments, p.ID)
			case op == 4 && len(payments) > 0:
				id := payments[rng.Intn(len(payments))]
				switch rng.Intn(3) {
				case 0:
					_, err := e.CompletePayment(ctx, id)
					if err != nil {
						require.ErrorIs(t, err, models.ErrInvalidStateTransition)
					}
				case 1:
					_, err := e.FailPayment(ctx, id)
					if err != nil {
						require.ErrorIs(t, err, models.ErrInvalidStateTransition)
					}
				default:
					require.NoError(t, e.DeletePayment(ctx, id))
					for i, pid := range payments {
						if pid == id {
							payments = append(payments[:i], payments[i+1:]...)
							break
						}
					}
				}
			}
			assertZeroSum(t, e, group.ID)
		}

		snapshot, err := e.GetGroupBalances(ctx, group.ID)
		require.NoError(t, err)
		nonZero := 0
		for _, b := range snapshot {
			if b.Balance != 0 {
				nonZero++
			}
		}
		transfers, err := e.GenerateSettlementSuggestions(ctx, group.ID)
		require.NoError(t, err)
		if nonZero > 0 {
			assert.LessOrEqual(t, len(transfers), nonZero-1)
		}
		for userID, remaining := range calculator.ApplyTransfers(snapshot, transfers) {
			assert.Zero(t, remaining, "balance of %s after settlement", userID)
		}
	})
}

type recordingPublisher struct {
	mu      sync.Mutex
	entries []*models.Activity
	err     error
}

func (p *recordingPublisher) Publish(ctx context.Context, a *models.Activity) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.entries = append(p.entries, a)
	return p.err
}

func TestActivityIsRecordedAndPublished(t *testing.T) {
	pub := &recordingPublisher{}
	e := newEngine(t, memory.New(), WithPublisher(pub))
	ctx := ContextWithActor(context.Background(), "A")
	group := mustGroup(t, e, "A", "B")

	expense, err := e.CreateExpense(ctx, NewExpense{
		GroupID: group.ID, PayerID: "A", Amount: 20,
		Policy: models.SplitPolicyEqual, Participants: equal("A", "B"),
	})
	require.NoError(t, err)
	assert.Equal(t, "A", expense.CreatedBy)

	payment, err := e.CreatePayment(ctx, NewPayment{GroupID: group.ID, FromUserID: "B", ToUserID: "A", Amount: 10, Note: "cash"})
	require.NoError(t, err)
	_, err = e.CompletePayment(ctx, payment.ID)
	require.NoError(t, err)

	require.Len(t, pub.entries, 3)
	assert.Equal(t, models.ActivityExpenseCreated, pub.entries[0].Action)
	assert.Equal(t, models.ActivityPaymentCreated, pub.entries[1].Action)
	assert.Equal(t, models.ActivityPaymentCompleted, pub.entries[2].Action)
	assert.Empty(t, pub.entries[2].Deltas)
	for _, entry := range pub.entries {
		assert.Equal(t, "A", entry.Actor)
		assert.Equal(t, group.ID, entry.GroupID)
		assert.NotEmpty(t, entry.ID)
	}

	stored, err := e.ListActivity(ctx, group.ID, 0)
	require.NoError(t, err)
	require.Len(t, stored, 3)
	assert.Equal(t, models.ActivityPaymentCompleted, stored[0].Action)
}

func TestPublishFailureDoesNotFailOperation(t *testing.T) {
	pub := &recordingPublisher{err: errors.New("broker down")}
	e := newEngine(t, memory.New(), WithPublisher(pub), WithMetrics(metrics.New()))
	group := mustGroup(t, e, "A", "B")

	_, err := e.CreatePayment(context.Background(), NewPayment{GroupID: group.ID, FromUserID: "A", ToUserID: "B", Amount: 3})
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"A": -3, "B": 3}, balancesOf(t, e, group.ID))
}

type denyAll struct{}

func (denyAll) IsMember(context.Context, string, string) (bool, error) { return false, nil }

type brokenMembership struct{}

func (brokenMembership) IsMember(context.Context, string, string) (bool, error) {
	return false, fmt.Errorf("directory unavailable")
}

func TestExternalMembership(t *testing.T) {
	ctx := context.Background()

	e := newEngine(t, memory.New(), WithMembership(denyAll{}))
	group := mustGroup(t, e, "A", "B")
	_, err := e.CreatePayment(ctx, NewPayment{GroupID: group.ID, FromUserID: "A", ToUserID: "B", Amount: 1})
	assert.ErrorIs(t, err, models.ErrNotAMember)

	e = newEngine(t, memory.New(), WithMembership(brokenMembership{}))
	group = mustGroup(t, e, "A", "B")
	_, err = e.CreatePayment(ctx, NewPayment{GroupID: group.ID, FromUserID: "A", ToUserID: "B", Amount: 1})
	require.Error(t, err)
	assert.NotErrorIs(t, err, models.ErrNotAMember)
	assert.Equal(t, map[string]int64{"A": 0, "B": 0}, balancesOf(t, e, group.ID))
}
