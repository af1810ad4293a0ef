// Package ledger implements the ledger and settlement engine: every expense
// and payment mutation runs as one unit of work that validates preconditions,
// applies balance deltas and records activity, all or nothing.
package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mmynk/splitledger/internal/activity"
	"github.com/mmynk/splitledger/internal/lock"
	"github.com/mmynk/splitledger/internal/metrics"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/storage"
)

// Membership answers whether a user belongs to a group.
type Membership interface {
	IsMember(ctx context.Context, groupID, userID string) (bool, error)
}

// Engine is safe for concurrent use. Mutations on one group are serialized by
// the group locker; mutations on different groups never share a lock.
type Engine struct {
	store          storage.Store
	locker         lock.GroupLocker
	membership     Membership
	publisher      activity.Publisher
	metrics        *metrics.Metrics
	logger         *slog.Logger
	checkInvariant bool
	now            func() time.Time
}

type Option func(*Engine)

// WithLocker replaces the default in-process group locker.
func WithLocker(l lock.GroupLocker) Option {
	return func(e *Engine) { e.locker = l }
}

// WithMembership replaces the store's membership table as the source of truth
// for membership checks.
func WithMembership(m Membership) Option {
	return func(e *Engine) { e.membership = m }
}

func WithPublisher(p activity.Publisher) Option {
	return func(e *Engine) { e.publisher = p }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(e *Engine) { e.metrics = m }
}

func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithInvariantCheck verifies before every commit that the group's balances
// still sum to zero. A violation rolls the unit of work back.
func WithInvariantCheck(enabled bool) Option {
	return func(e *Engine) { e.checkInvariant = enabled }
}

// WithClock overrides the time source used for record timestamps.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// New creates an engine on top of store.
func New(store storage.Store, opts ...Option) *Engine {
	e := &Engine{
		store:          store,
		locker:         lock.NewLocal(),
		publisher:      activity.Nop{},
		logger:         slog.Default(),
		checkInvariant: true,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

type actorKey struct{}

// ContextWithActor records the user performing an operation.
func ContextWithActor(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, actorKey{}, userID)
}

// ActorFromContext returns the acting user, or "" when unknown.
func ActorFromContext(ctx context.Context) string {
	actor, _ := ctx.Value(actorKey{}).(string)
	return actor
}

// mutation does the work of one operation inside a unit of work and returns
// the activity entry describing it. It must finish every precondition check
// before its first write.
type mutation func(ctx context.Context, tx storage.Tx, group *models.Group) (*models.Activity, error)

// mutate runs fn under the group lock in a single unit of work, appends its
// activity, refreshes the group status and publishes after commit.
func (e *Engine) mutate(ctx context.Context, groupID string, fn mutation) error {
	unlock, err := e.lockGroup(ctx, groupID)
	if err != nil {
		return err
	}
	defer unlock()

	var entry *models.Activity
	err = e.store.InTx(ctx, groupID, func(tx storage.Tx) error {
		group, err := tx.Group(ctx)
		if err != nil {
			return err
		}
		if group.Status == models.GroupStatusArchived {
			return fmt.Errorf("group %s: %w", groupID, models.ErrGroupArchived)
		}

		entry, err = fn(ctx, tx, group)
		if err != nil {
			return err
		}

		entry.Actor = ActorFromContext(ctx)
		entry.CreatedAt = e.now().Unix()
		if err := tx.AppendActivity(ctx, entry); err != nil {
			return err
		}
		return e.refreshStatus(ctx, tx, group)
	})
	if err != nil {
		return err
	}

	e.publish(ctx, entry)
	return nil
}

func (e *Engine) lockGroup(ctx context.Context, groupID string) (func(), error) {
	start := time.Now()
	unlock, err := e.locker.Lock(ctx, groupID)
	e.metrics.ObserveLockWait(time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrTransactionAborted, err)
	}
	return unlock, nil
}

// refreshStatus keeps the group's settled/active status in line with its
// balances and, when enabled, enforces the zero-sum invariant.
func (e *Engine) refreshStatus(ctx context.Context, tx storage.Tx, group *models.Group) error {
	balances, err := tx.Balances(ctx)
	if err != nil {
		return err
	}

	if e.checkInvariant {
		if sum := models.SumBalances(balances); !sum.IsZero() {
			e.metrics.IncInvariantViolation()
			e.logger.ErrorContext(ctx, "Ledger invariant violated, rolling back",
				"group_id", group.ID,
				"sum", sum.String(),
			)
			return fmt.Errorf("group %s balances sum to %s: %w", group.ID, sum, models.ErrInvariantViolation)
		}
	}

	status := models.GroupStatusSettled
	for _, b := range balances {
		if b.Balance != 0 {
			status = models.GroupStatusActive
			break
		}
	}
	if status == group.Status {
		return nil
	}
	return tx.SetGroupStatus(ctx, status)
}

// requireMembers fails with ErrNotAMember unless every user belongs to the group.
func (e *Engine) requireMembers(ctx context.Context, tx storage.Tx, groupID string, userIDs ...string) error {
	for _, userID := range userIDs {
		var (
			ok  bool
			err error
		)
		if e.membership != nil {
			ok, err = e.membership.IsMember(ctx, groupID, userID)
		} else {
			ok, err = tx.IsMember(ctx, userID)
		}
		if err != nil {
			return fmt.Errorf("failed to check membership: %w", err)
		}
		if !ok {
			return fmt.Errorf("user %s in group %s: %w", userID, groupID, models.ErrNotAMember)
		}
	}
	return nil
}

// publish hands a committed activity entry to the publisher. Failures are
// logged and counted; the committed change stands.
func (e *Engine) publish(ctx context.Context, entry *models.Activity) {
	if err := e.publisher.Publish(context.WithoutCancel(ctx), entry); err != nil {
		e.metrics.IncPublishFailure()
		e.logger.WarnContext(ctx, "Failed to publish activity",
			"activity_id", entry.ID,
			"action", entry.Action,
			"group_id", entry.GroupID,
			"error", err,
		)
	}
}

// track starts timing op. Call the result with the operation's named error:
//
//	defer e.track("CreateExpense")(&err)
func (e *Engine) track(op string) func(*error) {
	start := time.Now()
	return func(errp *error) {
		e.metrics.ObserveOperation(op, start, *errp)
	}
}
