package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/storage"
	"github.com/mmynk/splitledger/internal/storage/storagetest"
)

func TestMemoryStore(t *testing.T) {
	storagetest.Run(t, func(t *testing.T) storage.Store {
		return New()
	})
}

func TestReturnedValuesAreCopies(t *testing.T) {
	s := New()
	ctx := context.Background()

	group := &models.Group{Name: "Copies", Members: []string{"alice", "bob"}}
	require.NoError(t, s.CreateGroup(ctx, group))

	expense := &models.Expense{
		PayerID: "alice",
		Amount:  10,
		Policy:  models.SplitPolicyAmount,
		Shares: []models.ParticipantShare{
			{UserID: "alice", Amount: 4},
			{UserID: "bob", Amount: 6},
		},
	}
	require.NoError(t, s.InTx(ctx, group.ID, func(tx storage.Tx) error {
		return tx.CreateExpense(ctx, expense)
	}))

	expense.Shares[1].Amount = 999
	got, err := s.GetExpense(ctx, expense.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(6), got.Shares[1].Amount)

	got.Shares[0].UserID = "mallory"
	again, err := s.GetExpense(ctx, expense.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", again.Shares[0].UserID)

	g, err := s.GetGroup(ctx, group.ID)
	require.NoError(t, err)
	g.Members[0] = "mallory"
	ok, err := s.IsMember(ctx, group.ID, "alice")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRolledBackCreateIsNotIndexed(t *testing.T) {
	s := New()
	ctx := context.Background()

	group := &models.Group{Name: "Rollback", Members: []string{"alice", "bob"}}
	require.NoError(t, s.CreateGroup(ctx, group))

	payment := &models.Payment{FromUserID: "alice", ToUserID: "bob", Amount: 5, Status: models.PaymentStatusPending}
	err := s.InTx(ctx, group.ID, func(tx storage.Tx) error {
		if err := tx.CreatePayment(ctx, payment); err != nil {
			return err
		}
		return models.ErrInvalidRequest
	})
	require.ErrorIs(t, err, models.ErrInvalidRequest)

	_, err = s.GetPayment(ctx, payment.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
}
