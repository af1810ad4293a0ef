package calculator

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mmynk/splitledger/internal/models"
)

var hundred = decimal.NewFromInt(100)

// Participant is one input row for a split.
// Percent is read for percentage splits, Amount for amount and custom splits.
type Participant struct {
	UserID  string
	Percent decimal.Decimal
	Amount  int64
}

// Split divides total (minor units) among participants according to policy.
// The returned shares are in input order and always sum to total exactly.
func Split(total int64, policy models.SplitPolicy, participants []Participant) ([]models.ParticipantShare, error) {
	if total <= 0 {
		return nil, models.ErrInvalidAmount
	}
	if len(participants) == 0 {
		return nil, fmt.Errorf("must have at least one participant: %w", models.ErrInvalidRequest)
	}
	seen := make(map[string]bool, len(participants))
	for _, p := range participants {
		if p.UserID == "" {
			return nil, fmt.Errorf("participant id required: %w", models.ErrInvalidRequest)
		}
		if seen[p.UserID] {
			return nil, fmt.Errorf("duplicate participant %q: %w", p.UserID, models.ErrInvalidRequest)
		}
		seen[p.UserID] = true
	}

	var (
		amounts []int64
		err     error
	)
	switch policy {
	case models.SplitPolicyEqual:
		amounts, err = EqualShares(total, len(participants))
	case models.SplitPolicyPercentage:
		percents := make([]decimal.Decimal, len(participants))
		for i, p := range participants {
			percents[i] = p.Percent
		}
		amounts, err = PercentageShares(total, percents)
	case models.SplitPolicyAmount, models.SplitPolicyCustom:
		amounts = make([]int64, len(participants))
		for i, p := range participants {
			amounts[i] = p.Amount
		}
		err = ValidateExactShares(total, amounts)
	default:
		return nil, fmt.Errorf("unknown split policy %q: %w", policy, models.ErrInvalidRequest)
	}
	if err != nil {
		return nil, err
	}

	shares := make([]models.ParticipantShare, len(participants))
	for i, p := range participants {
		shares[i] = models.ParticipantShare{UserID: p.UserID, Amount: amounts[i]}
		if policy == models.SplitPolicyPercentage {
			shares[i].Percent = p.Percent
		}
	}
	return shares, nil
}

// EqualShares splits total into n shares of floor(total/n). The remainder is
// handed out one minor unit at a time to the first total mod n shares.
func EqualShares(total int64, n int) ([]int64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("must have at least one participant: %w", models.ErrInvalidRequest)
	}
	if total < 0 {
		return nil, models.ErrInvalidAmount
	}

	base := total / int64(n)
	remainder := total % int64(n)

	shares := make([]int64, n)
	for i := range shares {
		shares[i] = base
		if int64(i) < remainder {
			shares[i]++
		}
	}
	return shares, nil
}

// PercentageShares computes floor(total * pct / 100) for each percentage and
// hands the lost minor units, in input order, to the shares that were rounded
// down. Percentages must be non-negative and sum to exactly 100.
func PercentageShares(total int64, percents []decimal.Decimal) ([]int64, error) {
	if len(percents) == 0 {
		return nil, fmt.Errorf("must have at least one participant: %w", models.ErrInvalidRequest)
	}

	sum := decimal.Zero
	for _, p := range percents {
		if p.IsNegative() {
			return nil, fmt.Errorf("negative percentage %s: %w", p, models.ErrInvalidAmount)
		}
		sum = sum.Add(p)
	}
	if !sum.Equal(hundred) {
		return nil, fmt.Errorf("percentages sum to %s, want 100: %w", sum, models.ErrSplitMismatch)
	}

	totalDec := decimal.NewFromInt(total)
	shares := make([]int64, len(percents))
	rounded := make([]bool, len(percents))
	var allocated int64
	for i, p := range percents {
		exact := totalDec.Mul(p).Shift(-2)
		floor := exact.Floor()
		shares[i] = floor.IntPart()
		rounded[i] = !exact.Equal(floor)
		allocated += shares[i]
	}

	remainder := total - allocated
	for i := 0; remainder > 0 && i < len(shares); i++ {
		if rounded[i] {
			shares[i]++
			remainder--
		}
	}
	if remainder != 0 {
		return nil, fmt.Errorf("percentage split left %d units unallocated: %w", remainder, models.ErrInvariantViolation)
	}
	return shares, nil
}

// ValidateExactShares checks explicit share amounts against the total. The
// running sum never exceeds total, so large shares cannot wrap around.
func ValidateExactShares(total int64, amounts []int64) error {
	for _, a := range amounts {
		if a < 0 {
			return fmt.Errorf("negative share %d: %w", a, models.ErrInvalidAmount)
		}
	}
	var sum int64
	for _, a := range amounts {
		if a > total-sum {
			return fmt.Errorf("shares exceed total %d: %w", total, models.ErrSplitMismatch)
		}
		sum += a
	}
	if sum != total {
		return fmt.Errorf("shares sum to %d, want %d: %w", sum, total, models.ErrSplitMismatch)
	}
	return nil
}
