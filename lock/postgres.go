package lock

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sethvargo/go-retry"
)

// NewPostgresSessionLocker returns a SessionLocker that uses Postgres session level advisory locks.
//
// Lock acquisition polls pg_try_advisory_lock every second until the lock duration elapses.
func NewPostgresSessionLocker(opts ...SessionLockerOption) (SessionLocker, error) {
	cfg, err := newSessionLockerConfig(opts)
	if err != nil {
		return nil, err
	}
	return &postgresSessionLocker{
		lockID:      cfg.lockID,
		retryLock:   newBackoff(cfg.pollInterval, cfg.lockDuration),
		retryUnlock: newBackoff(cfg.pollInterval, cfg.unlockDuration),
	}, nil
}

type postgresSessionLocker struct {
	lockID      int64
	retryLock   func() retry.Backoff
	retryUnlock func() retry.Backoff
}

var _ SessionLocker = (*postgresSessionLocker)(nil)

func (l *postgresSessionLocker) SessionLock(ctx context.Context, conn *sql.Conn) error {
	err := retry.Do(ctx, l.retryLock(), func(ctx context.Context) error {
		var locked bool
		if err := conn.QueryRowContext(ctx, `SELECT pg_try_advisory_lock($1)`, l.lockID).Scan(&locked); err != nil {
			return retry.RetryableError(fmt.Errorf("failed to execute pg_try_advisory_lock: %w", err))
		}
		if locked {
			return nil
		}
		return retry.RetryableError(ErrLockNotAcquired)
	})
	if err != nil {
		return fmt.Errorf("postgres lock %d: %w", l.lockID, err)
	}
	return nil
}

func (l *postgresSessionLocker) SessionUnlock(ctx context.Context, conn *sql.Conn) error {
	return retry.Do(ctx, l.retryUnlock(), func(ctx context.Context) error {
		var unlocked bool
		if err := conn.QueryRowContext(ctx, `SELECT pg_advisory_unlock($1)`, l.lockID).Scan(&unlocked); err != nil {
			return retry.RetryableError(fmt.Errorf("failed to execute pg_advisory_unlock: %w", err))
		}
		if !unlocked {
			return fmt.Errorf("postgres lock %d: not held by this session", l.lockID)
		}
		return nil
	})
}
