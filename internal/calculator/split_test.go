package calculator

import (
	"errors"
	"math"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mmynk/splitledger/internal/models"
)

func pct(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func sumShares(shares []models.ParticipantShare) int64 {
	var sum int64
	for _, s := range shares {
		sum += s.Amount
	}
	return sum
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name         string
		total        int64
		policy       models.SplitPolicy
		participants []Participant
		want         []int64
		wantErr      error
	}{
		{
			name:   "equal split divides evenly",
			total:  1200,
			policy: models.SplitPolicyEqual,
			participants: []Participant{
				{UserID: "A"}, {UserID: "B"}, {UserID: "C"},
			},
			want: []int64{400, 400, 400},
		},
		{
			name:   "equal split gives remainder to first participant",
			total:  1000,
			policy: models.SplitPolicyEqual,
			participants: []Participant{
				{UserID: "A"}, {UserID: "B"}, {UserID: "C"},
			},
			want: []int64{334, 333, 333},
		},
		{
			name:   "equal split spreads remainder in input order",
			total:  1003,
			policy: models.SplitPolicyEqual,
			participants: []Participant{
				{UserID: "C"}, {UserID: "A"}, {UserID: "D"}, {UserID: "B"},
			},
			want: []int64{251, 251, 251, 250},
		},
		{
			name:   "equal split smaller than participant count",
			total:  2,
			policy: models.SplitPolicyEqual,
			participants: []Participant{
				{UserID: "A"}, {UserID: "B"}, {UserID: "C"},
			},
			want: []int64{1, 1, 0},
		},
		{
			name:   "percentage split exact",
			total:  1000,
			policy: models.SplitPolicyPercentage,
			participants: []Participant{
				{UserID: "A", Percent: pct("50")},
				{UserID: "B", Percent: pct("30")},
				{UserID: "C", Percent: pct("20")},
			},
			want: []int64{500, 300, 200},
		},
		{
			name:   "percentage split distributes rounding loss",
			total:  100,
			policy: models.SplitPolicyPercentage,
			participants: []Participant{
				{UserID: "A", Percent: pct("33.34")},
				{UserID: "B", Percent: pct("33.33")},
				{UserID: "C", Percent: pct("33.33")},
			},
			// exact: 33.34, 33.33, 33.33 -> floors 33, 33, 33, one unit left
			want: []int64{34, 33, 33},
		},
		{
			name:   "percentage remainder skips exact shares",
			total:  10,
			policy: models.SplitPolicyPercentage,
			participants: []Participant{
				{UserID: "A", Percent: pct("50")},
				{UserID: "B", Percent: pct("25")},
				{UserID: "C", Percent: pct("25")},
			},
			// exact: 5, 2.5, 2.5
			want: []int64{5, 3, 2},
		},
		{
			name:   "percentages not summing to 100",
			total:  1000,
			policy: models.SplitPolicyPercentage,
			participants: []Participant{
				{UserID: "A", Percent: pct("50")},
				{UserID: "B", Percent: pct("49.99")},
			},
			wantErr: models.ErrSplitMismatch,
		},
		{
			name:   "negative percentage",
			total:  1000,
			policy: models.SplitPolicyPercentage,
			participants: []Participant{
				{UserID: "A", Percent: pct("110")},
				{UserID: "B", Percent: pct("-10")},
			},
			wantErr: models.ErrInvalidAmount,
		},
		{
			name:   "amount split matching total",
			total:  1000,
			policy: models.SplitPolicyAmount,
			participants: []Participant{
				{UserID: "A", Amount: 700},
				{UserID: "B", Amount: 300},
			},
			want: []int64{700, 300},
		},
		{
			name:   "custom split with a zero share",
			total:  1000,
			policy: models.SplitPolicyCustom,
			participants: []Participant{
				{UserID: "A", Amount: 1000},
				{UserID: "B", Amount: 0},
			},
			want: []int64{1000, 0},
		},
		{
			name:   "amount split mismatch",
			total:  1000,
			policy: models.SplitPolicyAmount,
			participants: []Participant{
				{UserID: "A", Amount: 700},
				{UserID: "B", Amount: 299},
			},
			wantErr: models.ErrSplitMismatch,
		},
		{
			name:   "custom split negative share",
			total:  1000,
			policy: models.SplitPolicyCustom,
			participants: []Participant{
				{UserID: "A", Amount: 1100},
				{UserID: "B", Amount: -100},
			},
			wantErr: models.ErrInvalidAmount,
		},
		{
			name:   "custom shares that wrap around int64",
			total:  1,
			policy: models.SplitPolicyCustom,
			participants: []Participant{
				{UserID: "A", Amount: math.MaxInt64},
				{UserID: "B", Amount: math.MaxInt64},
				{UserID: "C", Amount: 3},
			},
			wantErr: models.ErrSplitMismatch,
		},
		{
			name:   "amount split of the largest total",
			total:  math.MaxInt64,
			policy: models.SplitPolicyAmount,
			participants: []Participant{
				{UserID: "A", Amount: math.MaxInt64 - 1},
				{UserID: "B", Amount: 1},
			},
			want: []int64{math.MaxInt64 - 1, 1},
		},
		{
			name:         "zero total",
			total:        0,
			policy:       models.SplitPolicyEqual,
			participants: []Participant{{UserID: "A"}},
			wantErr:      models.ErrInvalidAmount,
		},
		{
			name:         "no participants",
			total:        100,
			policy:       models.SplitPolicyEqual,
			participants: []Participant{},
			wantErr:      models.ErrInvalidRequest,
		},
		{
			name:         "duplicate participant",
			total:        100,
			policy:       models.SplitPolicyEqual,
			participants: []Participant{{UserID: "A"}, {UserID: "A"}},
			wantErr:      models.ErrInvalidRequest,
		},
		{
			name:         "unknown policy",
			total:        100,
			policy:       models.SplitPolicy("shares"),
			participants: []Participant{{UserID: "A"}},
			wantErr:      models.ErrInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shares, err := Split(tt.total, tt.policy, tt.participants)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Split() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Split() unexpected error: %v", err)
			}
			if len(shares) != len(tt.want) {
				t.Fatalf("Split() returned %d shares, want %d", len(shares), len(tt.want))
			}
			for i, s := range shares {
				if s.UserID != tt.participants[i].UserID {
					t.Errorf("share %d user = %s, want %s", i, s.UserID, tt.participants[i].UserID)
				}
				if s.Amount != tt.want[i] {
					t.Errorf("share %d (%s) = %d, want %d", i, s.UserID, s.Amount, tt.want[i])
				}
			}
			if got := sumShares(shares); got != tt.total {
				t.Errorf("shares sum to %d, want %d", got, tt.total)
			}
		})
	}
}

func TestEqualShares_AlwaysExact(t *testing.T) {
	for total := int64(1); total <= 500; total += 7 {
		for n := 1; n <= 13; n++ {
			shares, err := EqualShares(total, n)
			if err != nil {
				t.Fatalf("EqualShares(%d, %d) error: %v", total, n, err)
			}
			var sum int64
			for i, s := range shares {
				if s < 0 {
					t.Fatalf("EqualShares(%d, %d)[%d] = %d, negative", total, n, i, s)
				}
				if i > 0 && s > shares[i-1] {
					t.Fatalf("EqualShares(%d, %d) not front-loaded: %v", total, n, shares)
				}
				sum += s
			}
			if sum != total {
				t.Fatalf("EqualShares(%d, %d) sums to %d", total, n, sum)
			}
		}
	}
}

func TestPercentageShares_AlwaysExact(t *testing.T) {
	percents := []decimal.Decimal{pct("12.5"), pct("37.25"), pct("0.25"), pct("50")}
	for total := int64(1); total <= 1000; total += 13 {
		shares, err := PercentageShares(total, percents)
		if err != nil {
			t.Fatalf("PercentageShares(%d) error: %v", total, err)
		}
		var sum int64
		for _, s := range shares {
			sum += s
		}
		if sum != total {
			t.Fatalf("PercentageShares(%d) sums to %d: %v", total, sum, shares)
		}
	}
}

func TestSplit_PercentRecordedOnShares(t *testing.T) {
	shares, err := Split(300, models.SplitPolicyPercentage, []Participant{
		{UserID: "A", Percent: pct("66.5")},
		{UserID: "B", Percent: pct("33.5")},
	})
	if err != nil {
		t.Fatalf("Split() error: %v", err)
	}
	if !shares[0].Percent.Equal(pct("66.5")) {
		t.Errorf("share A percent = %s, want 66.5", shares[0].Percent)
	}
}
