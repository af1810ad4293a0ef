// Package storagetest holds behavioural tests shared by every storage.Store
// implementation.
package storagetest

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/storage"
)

// Run exercises store against the storage.Store contract. newStore must
// return an empty store; it is called once per subtest.
func Run(t *testing.T, newStore func(t *testing.T) storage.Store) {
	t.Run("CreateGroup assigns defaults and zero balances", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		group := &models.Group{Name: "Flat", Members: []string{"alice", "bob"}}
		require.NoError(t, s.CreateGroup(ctx, group))

		assert.NotEmpty(t, group.ID)
		assert.NotZero(t, group.CreatedAt)
		assert.Equal(t, models.DefaultCurrency, group.Currency)
		assert.Equal(t, models.GroupStatusSettled, group.Status)

		got, err := s.GetGroup(ctx, group.ID)
		require.NoError(t, err)
		assert.Equal(t, "Flat", got.Name)
		assert.Equal(t, []string{"alice", "bob"}, got.Members)

		snapshot, err := s.BalanceSnapshot(ctx, group.ID)
		require.NoError(t, err)
		assert.Equal(t, []models.MemberBalance{
			{GroupID: group.ID, UserID: "alice", Balance: 0},
			{GroupID: group.ID, UserID: "bob", Balance: 0},
		}, snapshot)
	})

	t.Run("GetGroup unknown returns ErrNotFound", func(t *testing.T) {
		s := newStore(t)
		_, err := s.GetGroup(context.Background(), "missing")
		assert.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run("AddGroupMembers is idempotent", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		group := mustGroup(t, s, "alice")

		require.NoError(t, s.AddGroupMembers(ctx, group.ID, []string{"bob", "alice", "carol"}))
		got, err := s.GetGroup(ctx, group.ID)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"alice", "bob", "carol"}, got.Members)

		ok, err := s.IsMember(ctx, group.ID, "carol")
		require.NoError(t, err)
		assert.True(t, ok)
		ok, err = s.IsMember(ctx, group.ID, "dave")
		require.NoError(t, err)
		assert.False(t, ok)

		assert.ErrorIs(t, s.AddGroupMembers(ctx, "missing", []string{"x"}), models.ErrNotFound)
	})

	t.Run("ListGroups returns every group", func(t *testing.T) {
		s := newStore(t)
		a := mustGroup(t, s, "alice")
		b := mustGroup(t, s, "bob")
		groups, err := s.ListGroups(context.Background())
		require.NoError(t, err)
		ids := make([]string, len(groups))
		for i, g := range groups {
			ids[i] = g.ID
		}
		assert.ElementsMatch(t, []string{a.ID, b.ID}, ids)
	})

	t.Run("GetBalance of unknown member is zero", func(t *testing.T) {
		s := newStore(t)
		group := mustGroup(t, s, "alice")
		balance, err := s.GetBalance(context.Background(), group.ID, "nobody")
		require.NoError(t, err)
		assert.Zero(t, balance)
	})

	t.Run("ApplyDelta returns the new balance", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		group := mustGroup(t, s, "alice", "bob")

		balance, err := s.ApplyDelta(ctx, models.Delta{GroupID: group.ID, UserID: "alice", Amount: 250})
		require.NoError(t, err)
		assert.Equal(t, int64(250), balance)

		balance, err = s.ApplyDelta(ctx, models.Delta{GroupID: group.ID, UserID: "alice", Amount: -100})
		require.NoError(t, err)
		assert.Equal(t, int64(150), balance)
	})

	t.Run("concurrent ApplyDelta loses no update", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		group := mustGroup(t, s, "alice")

		const workers, perWorker = 8, 25
		var wg sync.WaitGroup
		errs := make(chan error, workers*perWorker)
		for w := 0; w < workers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := 0; i < perWorker; i++ {
					if _, err := s.ApplyDelta(ctx, models.Delta{GroupID: group.ID, UserID: "alice", Amount: 1}); err != nil {
						errs <- err
					}
				}
			}()
		}
		wg.Wait()
		close(errs)
		for err := range errs {
			require.NoError(t, err)
		}

		balance, err := s.GetBalance(ctx, group.ID, "alice")
		require.NoError(t, err)
		assert.Equal(t, int64(workers*perWorker), balance)
	})

	t.Run("ApplyDeltas is all or nothing", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		group := mustGroup(t, s, "alice", "bob")

		require.NoError(t, s.ApplyDeltas(ctx, []models.Delta{
			{GroupID: group.ID, UserID: "alice", Amount: 40},
			{GroupID: group.ID, UserID: "bob", Amount: -40},
		}))

		err := s.ApplyDeltas(ctx, []models.Delta{
			{GroupID: group.ID, UserID: "alice", Amount: 10},
			{GroupID: "", UserID: "bob", Amount: -10},
		})
		require.Error(t, err)

		alice, err := s.GetBalance(ctx, group.ID, "alice")
		require.NoError(t, err)
		assert.Equal(t, int64(40), alice)
	})

	t.Run("balances stay within int64 range", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		group := mustGroup(t, s, "alice", "bob")

		_, err := s.ApplyDelta(ctx, models.Delta{GroupID: group.ID, UserID: "alice", Amount: math.MaxInt64})
		require.NoError(t, err)
		_, err = s.ApplyDelta(ctx, models.Delta{GroupID: group.ID, UserID: "alice", Amount: 1})
		assert.ErrorIs(t, err, models.ErrInvalidAmount)
		assertBalance(t, s, group.ID, "alice", math.MaxInt64)

		_, err = s.ApplyDelta(ctx, models.Delta{GroupID: group.ID, UserID: "bob", Amount: math.MinInt64})
		assert.ErrorIs(t, err, models.ErrInvalidAmount)
		_, err = s.ApplyDelta(ctx, models.Delta{GroupID: group.ID, UserID: "bob", Amount: -math.MaxInt64})
		require.NoError(t, err)
		_, err = s.ApplyDelta(ctx, models.Delta{GroupID: group.ID, UserID: "bob", Amount: -1})
		assert.ErrorIs(t, err, models.ErrInvalidAmount)
		assertBalance(t, s, group.ID, "bob", -math.MaxInt64)

		err = s.ApplyDeltas(ctx, []models.Delta{
			{GroupID: group.ID, UserID: "alice", Amount: 1},
			{GroupID: group.ID, UserID: "bob", Amount: -1},
		})
		assert.ErrorIs(t, err, models.ErrInvalidAmount)

		err = s.InTx(ctx, group.ID, func(tx storage.Tx) error {
			return tx.ApplyDeltas(ctx, []models.Delta{
				{GroupID: group.ID, UserID: "bob", Amount: 5},
				{GroupID: group.ID, UserID: "alice", Amount: 1},
			})
		})
		assert.ErrorIs(t, err, models.ErrInvalidAmount)

		err = s.ApplyDeltas(ctx, []models.Delta{
			{GroupID: group.ID, UserID: "bob", Amount: math.MaxInt64},
			{GroupID: group.ID, UserID: "bob", Amount: math.MaxInt64},
		})
		assert.ErrorIs(t, err, models.ErrInvalidAmount)

		assertBalance(t, s, group.ID, "alice", math.MaxInt64)
		assertBalance(t, s, group.ID, "bob", -math.MaxInt64)
	})

	t.Run("InTx commits expense, deltas and activity together", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		group := mustGroup(t, s, "alice", "bob", "carol")

		expense := &models.Expense{
			PayerID:     "alice",
			Description: "Dinner",
			Amount:      90,
			Policy:      models.SplitPolicyPercentage,
			Shares: []models.ParticipantShare{
				{UserID: "alice", Amount: 30, Percent: decimal.NewFromInt(30)},
				{UserID: "bob", Amount: 30, Percent: decimal.NewFromInt(30)},
				{UserID: "carol", Amount: 30, Percent: decimal.RequireFromString("40.0")},
			},
			CreatedBy: "alice",
		}
		err := s.InTx(ctx, group.ID, func(tx storage.Tx) error {
			if err := tx.CreateExpense(ctx, expense); err != nil {
				return err
			}
			if err := tx.ApplyDeltas(ctx, expense.Deltas()); err != nil {
				return err
			}
			return tx.AppendActivity(ctx, &models.Activity{
				Actor:     "alice",
				Action:    models.ActivityExpenseCreated,
				ExpenseID: expense.ID,
				Deltas:    expense.Deltas(),
			})
		})
		require.NoError(t, err)
		require.NotEmpty(t, expense.ID)

		got, err := s.GetExpense(ctx, expense.ID)
		require.NoError(t, err)
		assert.Equal(t, group.ID, got.GroupID)
		assert.Equal(t, []string{"alice", "bob", "carol"}, got.Participants())
		assert.True(t, got.Shares[0].Paid)
		assert.False(t, got.Shares[1].Paid)
		assert.True(t, decimal.NewFromInt(40).Equal(got.Shares[2].Percent))

		snapshot, err := s.BalanceSnapshot(ctx, group.ID)
		require.NoError(t, err)
		assert.True(t, models.SumBalances(snapshot).IsZero())
		assertBalance(t, s, group.ID, "alice", -60)
		assertBalance(t, s, group.ID, "bob", 30)

		activity, err := s.ListActivity(ctx, group.ID, 10)
		require.NoError(t, err)
		require.Len(t, activity, 1)
		assert.Equal(t, models.ActivityExpenseCreated, activity[0].Action)
		assert.Equal(t, expense.ID, activity[0].ExpenseID)
		assert.Equal(t, expense.Deltas(), activity[0].Deltas)

		expenses, err := s.ListExpensesByGroup(ctx, group.ID)
		require.NoError(t, err)
		assert.Len(t, expenses, 1)
	})

	t.Run("InTx rolls back when fn fails", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		group := mustGroup(t, s, "alice", "bob")
		boom := errors.New("boom")

		payment := &models.Payment{FromUserID: "bob", ToUserID: "alice", Amount: 10, Status: models.PaymentStatusPending}
		err := s.InTx(ctx, group.ID, func(tx storage.Tx) error {
			if err := tx.CreatePayment(ctx, payment); err != nil {
				return err
			}
			if err := tx.ApplyDeltas(ctx, payment.Deltas()); err != nil {
				return err
			}
			if err := tx.SetGroupStatus(ctx, models.GroupStatusActive); err != nil {
				return err
			}
			return boom
		})
		require.ErrorIs(t, err, boom)

		_, err = s.GetPayment(ctx, payment.ID)
		assert.ErrorIs(t, err, models.ErrNotFound)
		assertBalance(t, s, group.ID, "alice", 0)
		assertBalance(t, s, group.ID, "bob", 0)
		got, err := s.GetGroup(ctx, group.ID)
		require.NoError(t, err)
		assert.Equal(t, models.GroupStatusSettled, got.Status)
	})

	t.Run("InTx sees its own writes", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		group := mustGroup(t, s, "alice", "bob")

		err := s.InTx(ctx, group.ID, func(tx storage.Tx) error {
			if err := tx.ApplyDeltas(ctx, []models.Delta{
				{GroupID: group.ID, UserID: "alice", Amount: 5},
				{GroupID: group.ID, UserID: "bob", Amount: -5},
			}); err != nil {
				return err
			}
			balances, err := tx.Balances(ctx)
			if err != nil {
				return err
			}
			assert.Equal(t, []models.MemberBalance{
				{GroupID: group.ID, UserID: "alice", Balance: 5},
				{GroupID: group.ID, UserID: "bob", Balance: -5},
			}, balances)
			return nil
		})
		require.NoError(t, err)
	})

	t.Run("InTx rejects deltas for another group", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		a := mustGroup(t, s, "alice")
		b := mustGroup(t, s, "alice")

		err := s.InTx(ctx, a.ID, func(tx storage.Tx) error {
			return tx.ApplyDeltas(ctx, []models.Delta{{GroupID: b.ID, UserID: "alice", Amount: 1}})
		})
		assert.ErrorIs(t, err, models.ErrInvalidRequest)
	})

	t.Run("InTx with cancelled context aborts", func(t *testing.T) {
		s := newStore(t)
		group := mustGroup(t, s, "alice")
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := s.InTx(ctx, group.ID, func(tx storage.Tx) error { return nil })
		assert.ErrorIs(t, err, models.ErrTransactionAborted)
	})

	t.Run("payments update and delete", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		group := mustGroup(t, s, "alice", "bob")

		payment := &models.Payment{FromUserID: "bob", ToUserID: "alice", Amount: 70, Status: models.PaymentStatusPending, Note: "rent"}
		require.NoError(t, s.InTx(ctx, group.ID, func(tx storage.Tx) error {
			return tx.CreatePayment(ctx, payment)
		}))

		require.NoError(t, s.InTx(ctx, group.ID, func(tx storage.Tx) error {
			p, err := tx.GetPayment(ctx, payment.ID)
			if err != nil {
				return err
			}
			p.Status = models.PaymentStatusFailed
			p.Reversed = true
			return tx.UpdatePayment(ctx, p)
		}))

		got, err := s.GetPayment(ctx, payment.ID)
		require.NoError(t, err)
		assert.Equal(t, models.PaymentStatusFailed, got.Status)
		assert.True(t, got.Reversed)
		assert.Equal(t, "rent", got.Note)

		payments, err := s.ListPaymentsByGroup(ctx, group.ID)
		require.NoError(t, err)
		assert.Len(t, payments, 1)

		require.NoError(t, s.InTx(ctx, group.ID, func(tx storage.Tx) error {
			return tx.DeletePayment(ctx, payment.ID)
		}))
		_, err = s.GetPayment(ctx, payment.ID)
		assert.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run("Tx lookups are scoped to the group", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		a := mustGroup(t, s, "alice", "bob")
		b := mustGroup(t, s, "alice", "bob")

		payment := &models.Payment{FromUserID: "bob", ToUserID: "alice", Amount: 1, Status: models.PaymentStatusPending}
		require.NoError(t, s.InTx(ctx, a.ID, func(tx storage.Tx) error {
			return tx.CreatePayment(ctx, payment)
		}))

		err := s.InTx(ctx, b.ID, func(tx storage.Tx) error {
			_, err := tx.GetPayment(ctx, payment.ID)
			return err
		})
		assert.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run("ReplaceExpense swaps shares", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		group := mustGroup(t, s, "alice", "bob", "carol")

		expense := &models.Expense{
			PayerID: "alice",
			Amount:  10,
			Policy:  models.SplitPolicyEqual,
			Shares: []models.ParticipantShare{
				{UserID: "alice", Amount: 5},
				{UserID: "bob", Amount: 5},
			},
		}
		require.NoError(t, s.InTx(ctx, group.ID, func(tx storage.Tx) error {
			return tx.CreateExpense(ctx, expense)
		}))

		updated := expense.Clone()
		updated.Amount = 9
		updated.Shares = []models.ParticipantShare{
			{UserID: "bob", Amount: 3},
			{UserID: "carol", Amount: 6},
		}
		require.NoError(t, s.InTx(ctx, group.ID, func(tx storage.Tx) error {
			return tx.ReplaceExpense(ctx, updated)
		}))

		got, err := s.GetExpense(ctx, expense.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(9), got.Amount)
		assert.Equal(t, []string{"bob", "carol"}, got.Participants())

		require.NoError(t, s.InTx(ctx, group.ID, func(tx storage.Tx) error {
			return tx.DeleteExpense(ctx, expense.ID)
		}))
		_, err = s.GetExpense(ctx, expense.ID)
		assert.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run("ListActivity honours limit and order", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		group := mustGroup(t, s, "alice")

		for i, action := range []models.ActivityAction{
			models.ActivityPaymentCreated,
			models.ActivityPaymentCompleted,
			models.ActivityPaymentDeleted,
		} {
			a := &models.Activity{Action: action, CreatedAt: int64(100 + i)}
			require.NoError(t, s.InTx(ctx, group.ID, func(tx storage.Tx) error {
				return tx.AppendActivity(ctx, a)
			}))
		}

		entries, err := s.ListActivity(ctx, group.ID, 2)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, models.ActivityPaymentDeleted, entries[0].Action)
		assert.Equal(t, models.ActivityPaymentCompleted, entries[1].Action)
		assert.NotNil(t, entries[0].Deltas)

		all, err := s.ListActivity(ctx, group.ID, 0)
		require.NoError(t, err)
		assert.Len(t, all, 3)
	})
}

func mustGroup(t *testing.T, s storage.Store, members ...string) *models.Group {
	t.Helper()
	group := &models.Group{Name: "test", Members: members}
	require.NoError(t, s.CreateGroup(context.Background(), group))
	return group
}

func assertBalance(t *testing.T, s storage.Store, groupID, userID string, want int64) {
	t.Helper()
	got, err := s.GetBalance(context.Background(), groupID, userID)
	require.NoError(t, err)
	assert.Equal(t, want, got, "balance of %s", userID)
}
