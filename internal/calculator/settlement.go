package calculator

import (
	"container/heap"
	"fmt"

	"github.com/mmynk/splitledger/internal/models"
)

// party is a debtor or creditor with the amount still to settle.
type party struct {
	userID    string
	remaining int64
}

// partyHeap is a max-heap on remaining; ties break on user ID so plans are deterministic.
type partyHeap []party

func (h partyHeap) Len() int { return len(h) }
func (h partyHeap) Less(i, j int) bool {
	if h[i].remaining != h[j].remaining {
		return h[i].remaining > h[j].remaining
	}
	return h[i].userID < h[j].userID
}
func (h partyHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *partyHeap) Push(x any)   { *h = append(*h, x.(party)) }
func (h *partyHeap) Pop() any {
	old := *h
	n := len(old)
	p := old[n-1]
	*h = old[:n-1]
	return p
}

// PlanSettlement computes an ordered list of transfers that drives every
// balance to zero.
//
// Algorithm (greedy minimum cash flow):
//   - Members with a positive balance are debtors, negative are creditors.
//   - Repeatedly match the largest remaining debtor with the largest remaining
//     creditor and settle min(debtor, creditor) between them.
//   - Each transfer zeroes at least one party, so a group with k non-zero
//     members needs at most k-1 transfers.
func PlanSettlement(balances []models.MemberBalance) ([]models.Transfer, error) {
	if sum := models.SumBalances(balances); !sum.IsZero() {
		return nil, fmt.Errorf("balances sum to %s: %w", sum, models.ErrInvariantViolation)
	}

	debtors := &partyHeap{}
	creditors := &partyHeap{}
	for _, b := range balances {
		switch {
		case b.Balance < -models.MaxBalance:
			return nil, fmt.Errorf("balance of %s is out of range: %w", b.UserID, models.ErrInvariantViolation)
		case b.Balance > 0:
			*debtors = append(*debtors, party{userID: b.UserID, remaining: b.Balance})
		case b.Balance < 0:
			*creditors = append(*creditors, party{userID: b.UserID, remaining: -b.Balance})
		}
	}
	heap.Init(debtors)
	heap.Init(creditors)

	transfers := make([]models.Transfer, 0, max(debtors.Len()+creditors.Len()-1, 0))
	for debtors.Len() > 0 && creditors.Len() > 0 {
		debtor := heap.Pop(debtors).(party)
		creditor := heap.Pop(creditors).(party)

		amount := min(debtor.remaining, creditor.remaining)
		transfers = append(transfers, models.Transfer{
			FromUserID: debtor.userID,
			ToUserID:   creditor.userID,
			Amount:     amount,
		})

		debtor.remaining -= amount
		creditor.remaining -= amount
		if debtor.remaining > 0 {
			heap.Push(debtors, debtor)
		}
		if creditor.remaining > 0 {
			heap.Push(creditors, creditor)
		}
	}

	return transfers, nil
}

// ApplyTransfers returns balances after every transfer is paid, the way a
// payment from FromUserID to ToUserID would move them.
func ApplyTransfers(balances []models.MemberBalance, transfers []models.Transfer) map[string]int64 {
	result := make(map[string]int64, len(balances))
	for _, b := range balances {
		result[b.UserID] += b.Balance
	}
	for _, t := range transfers {
		result[t.FromUserID] -= t.Amount
		result[t.ToUserID] += t.Amount
	}
	return result
}
