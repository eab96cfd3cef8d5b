package lock

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"
)

// NewMySQLSessionLocker returns a SessionLocker that uses MySQL named locks (GET_LOCK and
// RELEASE_LOCK). The lock is released automatically by the server if the connection drops.
//
// Lock acquisition polls every second until the lock duration elapses.
func NewMySQLSessionLocker(opts ...SessionLockerOption) (SessionLocker, error) {
	cfg, err := newSessionLockerConfig(opts)
	if err != nil {
		return nil, err
	}
	return &mysqlSessionLocker{
		name:        cfg.lockName,
		retryLock:   newBackoff(cfg.pollInterval, cfg.lockDuration),
		retryUnlock: newBackoff(cfg.pollInterval, cfg.unlockDuration),
	}, nil
}

type mysqlSessionLocker struct {
	name        string
	retryLock   func() retry.Backoff
	retryUnlock func() retry.Backoff
}

var _ SessionLocker = (*mysqlSessionLocker)(nil)

func (l *mysqlSessionLocker) SessionLock(ctx context.Context, conn *sql.Conn) error {
	err := retry.Do(ctx, l.retryLock(), func(ctx context.Context) error {
		// GET_LOCK returns 1 on success, 0 if another session holds the lock and NULL on error.
		var got sql.NullInt64
		if err := conn.QueryRowContext(ctx, `SELECT GET_LOCK(?, 0)`, l.name).Scan(&got); err != nil {
			return retry.RetryableError(fmt.Errorf("failed to execute GET_LOCK: %w", err))
		}
		if got.Valid && got.Int64 == 1 {
			return nil
		}
		return retry.RetryableError(ErrLockNotAcquired)
	})
	if err != nil {
		return fmt.Errorf("mysql lock %q: %w", l.name, err)
	}
	return nil
}

func (l *mysqlSessionLocker) SessionUnlock(ctx context.Context, conn *sql.Conn) error {
	return retry.Do(ctx, l.retryUnlock(), func(ctx context.Context) error {
		// RELEASE_LOCK returns 1 on success, 0 if the lock belongs to another session and NULL if
		// it does not exist. Only the first is worth retrying on error.
		var released sql.NullInt64
		if err := conn.QueryRowContext(ctx, `SELECT RELEASE_LOCK(?)`, l.name).Scan(&released); err != nil {
			return retry.RetryableError(fmt.Errorf("failed to execute RELEASE_LOCK: %w", err))
		}
		if !released.Valid || released.Int64 != 1 {
			return fmt.Errorf("mysql lock %q: not held by this session", l.name)
		}
		return nil
	})
}

func newBackoff(interval, maxDuration time.Duration) func() retry.Backoff {
	// Backoffs are stateful, so every Do gets a fresh one.
	return func() retry.Backoff {
		return retry.WithMaxDuration(maxDuration, retry.NewConstant(interval))
	}
}
