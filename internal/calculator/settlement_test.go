package calculator

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/mmynk/splitledger/internal/models"
)

func balancesOf(m map[string]int64) []models.MemberBalance {
	out := make([]models.MemberBalance, 0, len(m))
	for user, bal := range m {
		out = append(out, models.MemberBalance{GroupID: "g", UserID: user, Balance: bal})
	}
	return out
}

func nonZero(balances []models.MemberBalance) int {
	n := 0
	for _, b := range balances {
		if b.Balance != 0 {
			n++
		}
	}
	return n
}

func TestPlanSettlement(t *testing.T) {
	tests := []struct {
		name          string
		balances      map[string]int64
		wantTransfers int
		validateFunc  func(t *testing.T, transfers []models.Transfer)
	}{
		{
			name:          "all zero balances yield empty plan",
			balances:      map[string]int64{"A": 0, "B": 0},
			wantTransfers: 0,
		},
		{
			name:          "empty group",
			balances:      map[string]int64{},
			wantTransfers: 0,
		},
		{
			name:          "one debtor one creditor",
			balances:      map[string]int64{"A": -500, "B": 500},
			wantTransfers: 1,
			validateFunc: func(t *testing.T, transfers []models.Transfer) {
				want := models.Transfer{FromUserID: "B", ToUserID: "A", Amount: 500}
				if transfers[0] != want {
					t.Errorf("transfer = %+v, want %+v", transfers[0], want)
				}
			},
		},
		{
			name:          "payer of 1200 split three ways is owed by both others",
			balances:      map[string]int64{"A": -800, "B": 400, "C": 400},
			wantTransfers: 2,
			validateFunc: func(t *testing.T, transfers []models.Transfer) {
				got := map[string]int64{}
				for _, tr := range transfers {
					if tr.ToUserID != "A" {
						t.Errorf("transfer to %s, want A", tr.ToUserID)
					}
					got[tr.FromUserID] = tr.Amount
				}
				if got["B"] != 400 || got["C"] != 400 {
					t.Errorf("transfers = %+v, want B->A 400 and C->A 400", transfers)
				}
			},
		},
		{
			name:          "largest debtor is matched with largest creditor first",
			balances:      map[string]int64{"A": -700, "B": -300, "C": 100, "D": 900},
			wantTransfers: 3,
			validateFunc: func(t *testing.T, transfers []models.Transfer) {
				first := models.Transfer{FromUserID: "D", ToUserID: "A", Amount: 700}
				if transfers[0] != first {
					t.Errorf("first transfer = %+v, want %+v", transfers[0], first)
				}
			},
		},
		{
			name:          "matching magnitudes settle pairwise",
			balances:      map[string]int64{"A": -50, "B": 50, "C": -20, "D": 20},
			wantTransfers: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			balances := balancesOf(tt.balances)
			transfers, err := PlanSettlement(balances)
			if err != nil {
				t.Fatalf("PlanSettlement() error: %v", err)
			}
			if len(transfers) != tt.wantTransfers {
				t.Fatalf("got %d transfers, want %d: %+v", len(transfers), tt.wantTransfers, transfers)
			}
			for user, bal := range ApplyTransfers(balances, transfers) {
				if bal != 0 {
					t.Errorf("balance of %s after settlement = %d, want 0", user, bal)
				}
			}
			if tt.validateFunc != nil {
				tt.validateFunc(t, transfers)
			}
		})
	}
}

func TestPlanSettlement_RejectsUnbalancedInput(t *testing.T) {
	_, err := PlanSettlement(balancesOf(map[string]int64{"A": 100, "B": -99}))
	if !errors.Is(err, models.ErrInvariantViolation) {
		t.Fatalf("error = %v, want ErrInvariantViolation", err)
	}
}

func TestPlanSettlement_BalancesNearInt64Limit(t *testing.T) {
	balances := balancesOf(map[string]int64{
		"A": math.MaxInt64,
		"B": math.MaxInt64,
		"C": -math.MaxInt64,
		"D": -math.MaxInt64,
	})

	transfers, err := PlanSettlement(balances)
	if err != nil {
		t.Fatalf("PlanSettlement() unexpected error: %v", err)
	}
	if len(transfers) != 2 {
		t.Fatalf("got %d transfers, want 2", len(transfers))
	}
	for user, remaining := range ApplyTransfers(balances, transfers) {
		if remaining != 0 {
			t.Errorf("%s left at %d after settlement", user, remaining)
		}
	}
}

func TestPlanSettlement_RejectsOutOfRangeBalance(t *testing.T) {
	_, err := PlanSettlement(balancesOf(map[string]int64{"A": math.MinInt64, "B": math.MaxInt64, "C": 1}))
	if !errors.Is(err, models.ErrInvariantViolation) {
		t.Fatalf("error = %v, want ErrInvariantViolation", err)
	}
}

func TestPlanSettlement_RandomGroups(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for iter := 0; iter < 200; iter++ {
		members := 2 + rng.Intn(12)
		balances := make([]models.MemberBalance, members)
		var sum int64
		for i := 0; i < members-1; i++ {
			b := rng.Int63n(20001) - 10000
			balances[i] = models.MemberBalance{UserID: string(rune('A' + i)), Balance: b}
			sum += b
		}
		balances[members-1] = models.MemberBalance{UserID: string(rune('A' + members - 1)), Balance: -sum}

		transfers, err := PlanSettlement(balances)
		if err != nil {
			t.Fatalf("iteration %d: %v", iter, err)
		}
		if k := nonZero(balances); k > 0 && len(transfers) > k-1 {
			t.Fatalf("iteration %d: %d transfers for %d non-zero members", iter, len(transfers), k)
		}
		for _, tr := range transfers {
			if tr.Amount <= 0 {
				t.Fatalf("iteration %d: non-positive transfer %+v", iter, tr)
			}
		}
		for user, bal := range ApplyTransfers(balances, transfers) {
			if bal != 0 {
				t.Fatalf("iteration %d: %s left with %d", iter, user, bal)
			}
		}
	}
}

func TestPlanSettlement_Deterministic(t *testing.T) {
	balances := balancesOf(map[string]int64{"A": 300, "B": 300, "C": -300, "D": -300})
	first, err := PlanSettlement(balances)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		again, _ := PlanSettlement(balancesOf(map[string]int64{"A": 300, "B": 300, "C": -300, "D": -300}))
		for j := range first {
			if first[j] != again[j] {
				t.Fatalf("plan changed between runs: %+v vs %+v", first, again)
			}
		}
	}
}
