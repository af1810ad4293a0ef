// Package memory provides an in-memory implementation of the storage.Store
// interface, for tests and single-process deployments.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/storage"
)

var _ storage.Store = (*Store)(nil)

// Store keeps every group in its own partition guarded by its own mutex.
// A unit of work holds the partition lock, mutates a copy and swaps it in on
// commit, so readers never observe partial writes.
type Store struct {
	mu     sync.RWMutex
	groups map[string]*partition
	// expense and payment id -> group id
	expenseIdx map[string]string
	paymentIdx map[string]string
	seq        int64
}

type partition struct {
	mu   sync.Mutex
	data *groupData
}

type groupData struct {
	group    models.Group
	joined   map[string]bool
	balances map[string]int64
	expenses map[string]*record[models.Expense]
	payments map[string]*record[models.Payment]
	activity []*models.Activity
}

type record[T any] struct {
	seq int64
	v   *T
}

// New returns an empty store.
func New() *Store {
	return &Store{
		groups:     make(map[string]*partition),
		expenseIdx: make(map[string]string),
		paymentIdx: make(map[string]string),
	}
}

// Close is a no-op.
func (s *Store) Close() error { return nil }

func (s *Store) nextSeq() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	return s.seq
}

func (s *Store) partition(groupID string) (*partition, error) {
	s.mu.RLock()
	p, ok := s.groups[groupID]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("group %s: %w", groupID, models.ErrNotFound)
	}
	return p, nil
}

// read runs fn with the group's committed state while holding its lock.
func (s *Store) read(groupID string, fn func(d *groupData) error) error {
	p, err := s.partition(groupID)
	if err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return fn(p.data)
}

func (s *Store) CreateGroup(ctx context.Context, group *models.Group) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", models.ErrTransactionAborted, err)
	}
	if group.ID == "" {
		group.ID = uuid.New().String()
	}
	if group.CreatedAt == 0 {
		group.CreatedAt = time.Now().Unix()
	}
	if group.Currency == "" {
		group.Currency = models.DefaultCurrency
	}
	if group.Status == "" {
		group.Status = models.GroupStatusSettled
	}

	data := &groupData{
		group:    cloneGroup(group),
		joined:   make(map[string]bool),
		balances: make(map[string]int64),
		expenses: make(map[string]*record[models.Expense]),
		payments: make(map[string]*record[models.Payment]),
	}
	data.group.Members = nil
	if err := data.addMembers(group.Members); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.groups[group.ID]; exists {
		return fmt.Errorf("group %s already exists: %w", group.ID, models.ErrInvalidRequest)
	}
	s.groups[group.ID] = &partition{data: data}
	return nil
}

func (s *Store) GetGroup(ctx context.Context, groupID string) (*models.Group, error) {
	var group models.Group
	err := s.read(groupID, func(d *groupData) error {
		group = cloneGroup(&d.group)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &group, nil
}

func (s *Store) ListGroups(ctx context.Context) ([]*models.Group, error) {
	s.mu.RLock()
	ids := make([]string, 0, len(s.groups))
	for id := range s.groups {
		ids = append(ids, id)
	}
	s.mu.RUnlock()

	groups := make([]*models.Group, 0, len(ids))
	for _, id := range ids {
		g, err := s.GetGroup(ctx, id)
		if err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	sort.SliceStable(groups, func(i, j int) bool {
		if groups[i].CreatedAt != groups[j].CreatedAt {
			return groups[i].CreatedAt < groups[j].CreatedAt
		}
		return groups[i].ID < groups[j].ID
	})
	return groups, nil
}

func (s *Store) AddGroupMembers(ctx context.Context, groupID string, userIDs []string) error {
	p, err := s.partition(groupID)
	if err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	work := p.data.clone()
	if err := work.addMembers(userIDs); err != nil {
		return err
	}
	p.data = work
	return nil
}

func (s *Store) IsMember(ctx context.Context, groupID, userID string) (bool, error) {
	var ok bool
	err := s.read(groupID, func(d *groupData) error {
		ok = d.joined[userID]
		return nil
	})
	return ok, err
}

func (s *Store) GetExpense(ctx context.Context, expenseID string) (*models.Expense, error) {
	s.mu.RLock()
	groupID, ok := s.expenseIdx[expenseID]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("expense %s: %w", expenseID, models.ErrNotFound)
	}
	var expense *models.Expense
	err := s.read(groupID, func(d *groupData) error {
		var err error
		expense, err = d.getExpense(expenseID)
		return err
	})
	return expense, err
}

func (s *Store) ListExpensesByGroup(ctx context.Context, groupID string) ([]*models.Expense, error) {
	var expenses []*models.Expense
	err := s.read(groupID, func(d *groupData) error {
		for _, r := range newestFirst(d.expenses, func(e *models.Expense) int64 { return e.CreatedAt }) {
			expenses = append(expenses, r.Clone())
		}
		return nil
	})
	if isMissingGroup(err) {
		return nil, nil
	}
	return expenses, err
}

func (s *Store) GetPayment(ctx context.Context, paymentID string) (*models.Payment, error) {
	s.mu.RLock()
	groupID, ok := s.paymentIdx[paymentID]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("payment %s: %w", paymentID, models.ErrNotFound)
	}
	var payment *models.Payment
	err := s.read(groupID, func(d *groupData) error {
		var err error
		payment, err = d.getPayment(paymentID)
		return err
	})
	return payment, err
}

func (s *Store) ListPaymentsByGroup(ctx context.Context, groupID string) ([]*models.Payment, error) {
	var payments []*models.Payment
	err := s.read(groupID, func(d *groupData) error {
		for _, p := range newestFirst(d.payments, func(p *models.Payment) int64 { return p.CreatedAt }) {
			c := *p
			payments = append(payments, &c)
		}
		return nil
	})
	if isMissingGroup(err) {
		return nil, nil
	}
	return payments, err
}

func (s *Store) ListActivity(ctx context.Context, groupID string, limit int) ([]*models.Activity, error) {
	var entries []*models.Activity
	err := s.read(groupID, func(d *groupData) error {
		// newest insert first, then a stable sort by timestamp
		ordered := make([]*models.Activity, 0, len(d.activity))
		for i := len(d.activity) - 1; i >= 0; i-- {
			ordered = append(ordered, d.activity[i])
		}
		sort.SliceStable(ordered, func(i, j int) bool {
			return ordered[i].CreatedAt > ordered[j].CreatedAt
		})
		for _, a := range ordered {
			if limit > 0 && len(entries) == limit {
				break
			}
			entries = append(entries, cloneActivity(a))
		}
		return nil
	})
	if isMissingGroup(err) {
		return nil, nil
	}
	return entries, err
}

func (s *Store) GetBalance(ctx context.Context, groupID, userID string) (int64, error) {
	var balance int64
	err := s.read(groupID, func(d *groupData) error {
		balance = d.balances[userID]
		return nil
	})
	if isMissingGroup(err) {
		return 0, nil
	}
	return balance, err
}

func (s *Store) ApplyDelta(ctx context.Context, delta models.Delta) (int64, error) {
	if delta.GroupID == "" || delta.UserID == "" {
		return 0, fmt.Errorf("delta must name a group and a user: %w", models.ErrInvalidRequest)
	}
	var balance int64
	err := s.read(delta.GroupID, func(d *groupData) error {
		next, err := models.AddBalance(d.balances[delta.UserID], delta.Amount)
		if err != nil {
			return fmt.Errorf("failed to apply delta for %s: %w", delta.UserID, err)
		}
		d.balances[delta.UserID] = next
		balance = next
		return nil
	})
	return balance, err
}

// ApplyDeltas locks every touched group in id order, validates the whole
// batch and only then applies it.
func (s *Store) ApplyDeltas(ctx context.Context, deltas []models.Delta) error {
	merged, err := models.MergeDeltas(deltas)
	if err != nil {
		return err
	}
	var locked []*partition
	defer func() {
		for _, p := range locked {
			p.mu.Unlock()
		}
	}()

	byGroup := make(map[string]*partition)
	for _, d := range merged {
		if d.GroupID == "" || d.UserID == "" {
			return fmt.Errorf("delta must name a group and a user: %w", models.ErrInvalidRequest)
		}
		if _, ok := byGroup[d.GroupID]; ok {
			continue
		}
		p, err := s.partition(d.GroupID)
		if err != nil {
			return err
		}
		// merged is sorted by group id, so partitions are locked in a stable order
		p.mu.Lock()
		locked = append(locked, p)
		byGroup[d.GroupID] = p
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", models.ErrTransactionAborted, err)
	}
	next := make([]int64, len(merged))
	for i, d := range merged {
		if next[i], err = models.AddBalance(byGroup[d.GroupID].data.balances[d.UserID], d.Amount); err != nil {
			return fmt.Errorf("failed to apply delta for %s: %w", d.UserID, err)
		}
	}
	for i, d := range merged {
		byGroup[d.GroupID].data.balances[d.UserID] = next[i]
	}
	return nil
}

func (s *Store) BalanceSnapshot(ctx context.Context, groupID string) ([]models.MemberBalance, error) {
	var snapshot []models.MemberBalance
	err := s.read(groupID, func(d *groupData) error {
		snapshot = d.snapshot()
		return nil
	})
	if isMissingGroup(err) {
		return nil, nil
	}
	return snapshot, err
}

// InTx runs fn against a private copy of the group and publishes the copy
// only if fn succeeds and ctx is still live.
func (s *Store) InTx(ctx context.Context, groupID string, fn func(tx storage.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("transaction cancelled: %w: %w", models.ErrTransactionAborted, err)
	}
	p, err := s.partition(groupID)
	if err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	tx := &memTx{
		store:   s,
		groupID: groupID,
		work:    p.data.clone(),
		created: make(map[string]string),
		deleted: make(map[string]string),
	}
	if err := fn(tx); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("transaction cancelled: %w: %w", models.ErrTransactionAborted, err)
	}

	s.mu.Lock()
	for id, kind := range tx.created {
		s.index(kind)[id] = groupID
	}
	for id, kind := range tx.deleted {
		delete(s.index(kind), id)
	}
	s.mu.Unlock()
	p.data = tx.work
	return nil
}

const (
	kindExpense = "expense"
	kindPayment = "payment"
)

// index must be called with s.mu held.
func (s *Store) index(kind string) map[string]string {
	if kind == kindExpense {
		return s.expenseIdx
	}
	return s.paymentIdx
}

func (s *Store) idTaken(kind, id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.index(kind)[id]
	return ok
}

func isMissingGroup(err error) bool {
	return err != nil && isNotFound(err)
}
