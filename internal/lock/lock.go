// Package lock serializes ledger mutations per group.
package lock

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrLockNotAcquired is returned when a group lock could not be taken before
// the context ended or the retry budget ran out.
var ErrLockNotAcquired = errors.New("group lock not acquired")

// GroupLocker grants exclusive access to one group at a time. Different
// groups never contend.
type GroupLocker interface {
	// Lock blocks until the group is held or ctx is done. The returned
	// function releases the lock and is safe to call once.
	Lock(ctx context.Context, groupID string) (unlock func(), err error)
}

// Local is an in-process GroupLocker backed by one channel per held key.
type Local struct {
	mu    sync.Mutex
	slots map[string]*slot
}

type slot struct {
	ch   chan struct{}
	refs int
}

// NewLocal returns an in-process locker.
func NewLocal() *Local {
	return &Local{slots: make(map[string]*slot)}
}

func (l *Local) Lock(ctx context.Context, groupID string) (func(), error) {
	l.mu.Lock()
	s, ok := l.slots[groupID]
	if !ok {
		s = &slot{ch: make(chan struct{}, 1)}
		l.slots[groupID] = s
	}
	s.refs++
	l.mu.Unlock()

	select {
	case s.ch <- struct{}{}:
	case <-ctx.Done():
		l.release(groupID, s)
		return nil, fmt.Errorf("lock group %s: %w: %w", groupID, ErrLockNotAcquired, ctx.Err())
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-s.ch
			l.release(groupID, s)
		})
	}, nil
}

// release drops a reference and forgets the key once nobody holds or waits on it.
func (l *Local) release(groupID string, s *slot) {
	l.mu.Lock()
	defer l.mu.Unlock()
	s.refs--
	if s.refs == 0 {
		delete(l.slots, groupID)
	}
}
