package lock

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "splitledger:lock:group:"

// RedisOptions tunes the RedLock mutex.
type RedisOptions struct {
	// Expiry bounds how long a crashed holder keeps the group locked.
	Expiry      time.Duration
	Tries       int
	RetryDelay  time.Duration
	DriftFactor float64
}

// DefaultRedisOptions suits short ledger transactions.
func DefaultRedisOptions() RedisOptions {
	return RedisOptions{
		Expiry:      10 * time.Second,
		Tries:       32,
		RetryDelay:  50 * time.Millisecond,
		DriftFactor: 0.01,
	}
}

// Redis is a GroupLocker shared by every process pointing at the same Redis.
type Redis struct {
	rs   *redsync.Redsync
	opts RedisOptions
}

// NewRedis builds a Redis locker on top of an existing client.
func NewRedis(client redis.UniversalClient, opts RedisOptions) (*Redis, error) {
	if client == nil {
		return nil, errors.New("redis client is nil")
	}
	if opts.Expiry <= 0 {
		return nil, fmt.Errorf("lock expiry must be greater than 0, got %s", opts.Expiry)
	}
	if opts.Tries < 1 {
		return nil, fmt.Errorf("lock tries must be at least 1, got %d", opts.Tries)
	}
	if opts.RetryDelay < 0 {
		return nil, fmt.Errorf("lock retry delay must not be negative, got %s", opts.RetryDelay)
	}
	return &Redis{
		rs:   redsync.New(goredis.NewPool(client)),
		opts: opts,
	}, nil
}

func (r *Redis) Lock(ctx context.Context, groupID string) (func(), error) {
	mutex := r.rs.NewMutex(
		keyPrefix+groupID,
		redsync.WithExpiry(r.opts.Expiry),
		redsync.WithTries(r.opts.Tries),
		redsync.WithRetryDelay(r.opts.RetryDelay),
		redsync.WithDriftFactor(r.opts.DriftFactor),
	)

	if err := mutex.LockContext(ctx); err != nil {
		return nil, fmt.Errorf("lock group %s: %w: %w", groupID, ErrLockNotAcquired, err)
	}

	return func() {
		// Release with a fresh context so a cancelled request still frees the key.
		unlockCtx, cancel := context.WithTimeout(context.Background(), r.opts.Expiry)
		defer cancel()
		if ok, err := mutex.UnlockContext(unlockCtx); err != nil || !ok {
			slog.Warn("Failed to release group lock", "group_id", groupID, "error", err)
		}
	}, nil
}
