package ledger

import (
	"context"
	"fmt"

	"github.com/mmynk/splitledger/internal/calculator"
	"github.com/mmynk/splitledger/internal/models"
)

// GetBalance returns one member's balance in minor units.
func (e *Engine) GetBalance(ctx context.Context, groupID, userID string) (int64, error) {
	group, err := e.store.GetGroup(ctx, groupID)
	if err != nil {
		return 0, fmt.Errorf("GetBalance: %w", err)
	}
	if !group.HasMember(userID) {
		return 0, fmt.Errorf("GetBalance: member %s of group %s: %w", userID, groupID, models.ErrNotFound)
	}
	balance, err := e.store.GetBalance(ctx, groupID, userID)
	if err != nil {
		return 0, fmt.Errorf("GetBalance: %w", err)
	}
	return balance, nil
}

// GetGroupBalances returns every member balance of a group, zero rows included.
func (e *Engine) GetGroupBalances(ctx context.Context, groupID string) ([]models.MemberBalance, error) {
	if _, err := e.store.GetGroup(ctx, groupID); err != nil {
		return nil, fmt.Errorf("GetGroupBalances: %w", err)
	}
	balances, err := e.store.BalanceSnapshot(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("GetGroupBalances: %w", err)
	}
	return balances, nil
}

// GenerateSettlementSuggestions plans the transfers that zero every balance
// of the group, from one point-in-time snapshot.
func (e *Engine) GenerateSettlementSuggestions(ctx context.Context, groupID string) (transfers []models.Transfer, err error) {
	defer e.track("GenerateSettlementSuggestions")(&err)

	if _, err := e.store.GetGroup(ctx, groupID); err != nil {
		return nil, fmt.Errorf("GenerateSettlementSuggestions: %w", err)
	}
	snapshot, err := e.store.BalanceSnapshot(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("GenerateSettlementSuggestions: %w", err)
	}

	transfers, err = calculator.PlanSettlement(snapshot)
	if err != nil {
		if e.checkInvariant {
			e.metrics.IncInvariantViolation()
		}
		e.logger.ErrorContext(ctx, "Settlement snapshot is not balanced",
			"group_id", groupID,
			"sum", models.SumBalances(snapshot).String(),
		)
		return nil, fmt.Errorf("GenerateSettlementSuggestions: %w", err)
	}

	if e.checkInvariant {
		for userID, remaining := range calculator.ApplyTransfers(snapshot, transfers) {
			if remaining != 0 {
				e.metrics.IncInvariantViolation()
				return nil, fmt.Errorf("GenerateSettlementSuggestions: plan leaves %s at %d: %w", userID, remaining, models.ErrInvariantViolation)
			}
		}
	}
	return transfers, nil
}

// ListActivity returns up to limit activity entries of a group, newest first.
// A limit of zero or less returns everything.
func (e *Engine) ListActivity(ctx context.Context, groupID string, limit int) ([]*models.Activity, error) {
	if _, err := e.store.GetGroup(ctx, groupID); err != nil {
		return nil, fmt.Errorf("ListActivity: %w", err)
	}
	entries, err := e.store.ListActivity(ctx, groupID, limit)
	if err != nil {
		return nil, fmt.Errorf("ListActivity: %w", err)
	}
	return entries, nil
}
