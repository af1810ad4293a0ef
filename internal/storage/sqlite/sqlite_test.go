package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/storage"
	"github.com/mmynk/splitledger/internal/storage/storagetest"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStore(t *testing.T) {
	storagetest.Run(t, func(t *testing.T) storage.Store {
		return newTestStore(t)
	})
}

func TestMigrationsAreIdempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	first, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	ctx := context.Background()
	group := &models.Group{Name: "Trip", Members: []string{"alice", "bob"}}
	if err := first.CreateGroup(ctx, group); err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}
	first.Close()

	second, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to reopen store: %v", err)
	}
	defer second.Close()

	got, err := second.GetGroup(ctx, group.ID)
	if err != nil {
		t.Fatalf("GetGroup after reopen failed: %v", err)
	}
	if got.Name != "Trip" {
		t.Errorf("Name mismatch: got %s, want Trip", got.Name)
	}
}

func TestSharesKeepInputOrder(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	group := &models.Group{Name: "Order", Members: []string{"zed", "amy", "kim"}}
	if err := store.CreateGroup(ctx, group); err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}

	expense := &models.Expense{
		PayerID: "kim",
		Amount:  3,
		Policy:  models.SplitPolicyEqual,
		Shares: []models.ParticipantShare{
			{UserID: "zed", Amount: 1},
			{UserID: "amy", Amount: 1},
			{UserID: "kim", Amount: 1},
		},
	}
	err := store.InTx(ctx, group.ID, func(tx storage.Tx) error {
		return tx.CreateExpense(ctx, expense)
	})
	if err != nil {
		t.Fatalf("CreateExpense failed: %v", err)
	}

	got, err := store.GetExpense(ctx, expense.ID)
	if err != nil {
		t.Fatalf("GetExpense failed: %v", err)
	}
	want := []string{"zed", "amy", "kim"}
	for i, id := range got.Participants() {
		if id != want[i] {
			t.Errorf("share %d: got %s, want %s", i, id, want[i])
		}
	}
	if !got.Shares[2].Paid {
		t.Error("Expected payer share to be marked paid")
	}
}

func TestSchemaRejectsNonPositiveAmounts(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	group := &models.Group{Name: "Check", Members: []string{"alice", "bob"}}
	if err := store.CreateGroup(ctx, group); err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}

	err := store.InTx(ctx, group.ID, func(tx storage.Tx) error {
		return tx.CreatePayment(ctx, &models.Payment{
			FromUserID: "alice",
			ToUserID:   "bob",
			Amount:     0,
			Status:     models.PaymentStatusPending,
		})
	})
	if err == nil {
		t.Fatal("Expected CHECK constraint failure, got nil")
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		aborted bool
	}{
		{"nil", nil, false},
		{"plain", errors.New("syntax error"), false},
		{"canceled", context.Canceled, true},
		{"deadline", context.DeadlineExceeded, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify(tt.err)
			if errors.Is(got, models.ErrTransactionAborted) != tt.aborted {
				t.Errorf("classify(%v) aborted = %v, want %v", tt.err, !tt.aborted, tt.aborted)
			}
		})
	}
}
