package ledger

import (
	"context"
	"fmt"
	"strings"

	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/storage"
)

// CreateGroup registers a group and opens a zero balance for every member.
func (e *Engine) CreateGroup(ctx context.Context, name, currency string, members []string) (group *models.Group, err error) {
	defer e.track("CreateGroup")(&err)

	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("CreateGroup: group name is required: %w", models.ErrInvalidRequest)
	}
	members = dedupe(members)
	if len(members) == 0 {
		return nil, fmt.Errorf("CreateGroup: at least one member is required: %w", models.ErrInvalidRequest)
	}

	group = &models.Group{
		Name:      name,
		Currency:  strings.ToUpper(currency),
		Status:    models.GroupStatusSettled,
		Members:   members,
		CreatedAt: e.now().Unix(),
	}
	if err := e.store.CreateGroup(ctx, group); err != nil {
		return nil, fmt.Errorf("CreateGroup: %w", err)
	}
	return group, nil
}

func (e *Engine) GetGroup(ctx context.Context, groupID string) (*models.Group, error) {
	group, err := e.store.GetGroup(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("GetGroup: %w", err)
	}
	return group, nil
}

func (e *Engine) ListGroups(ctx context.Context) ([]*models.Group, error) {
	groups, err := e.store.ListGroups(ctx)
	if err != nil {
		return nil, fmt.Errorf("ListGroups: %w", err)
	}
	return groups, nil
}

// AddMembers adds users to a group. Existing members are ignored.
func (e *Engine) AddMembers(ctx context.Context, groupID string, userIDs []string) (group *models.Group, err error) {
	defer e.track("AddMembers")(&err)

	if len(userIDs) == 0 {
		return nil, fmt.Errorf("AddMembers: no users given: %w", models.ErrInvalidRequest)
	}

	unlock, err := e.lockGroup(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("AddMembers: %w", err)
	}
	defer unlock()

	current, err := e.store.GetGroup(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("AddMembers: %w", err)
	}
	if current.Status == models.GroupStatusArchived {
		return nil, fmt.Errorf("AddMembers: group %s: %w", groupID, models.ErrGroupArchived)
	}
	if err := e.store.AddGroupMembers(ctx, groupID, dedupe(userIDs)); err != nil {
		return nil, fmt.Errorf("AddMembers: %w", err)
	}

	group, err = e.store.GetGroup(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("AddMembers: %w", err)
	}
	return group, nil
}

// ArchiveGroup makes a settled group read-only. Archiving an archived group
// is a no-op; a group with outstanding balances cannot be archived.
func (e *Engine) ArchiveGroup(ctx context.Context, groupID string) (group *models.Group, err error) {
	defer e.track("ArchiveGroup")(&err)

	unlock, err := e.lockGroup(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("ArchiveGroup: %w", err)
	}
	defer unlock()

	err = e.store.InTx(ctx, groupID, func(tx storage.Tx) error {
		g, err := tx.Group(ctx)
		if err != nil {
			return err
		}
		if g.Status == models.GroupStatusArchived {
			group = g
			return nil
		}

		balances, err := tx.Balances(ctx)
		if err != nil {
			return err
		}
		for _, b := range balances {
			if b.Balance != 0 {
				return fmt.Errorf("group %s has outstanding balances: %w", groupID, models.ErrInvalidStateTransition)
			}
		}

		if err := tx.SetGroupStatus(ctx, models.GroupStatusArchived); err != nil {
			return err
		}
		g.Status = models.GroupStatusArchived
		group = g
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("ArchiveGroup: %w", err)
	}
	return group, nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
