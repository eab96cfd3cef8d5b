// Package lock provides session level advisory locks so that two runs cannot rewrite emails at the
// same time.
package lock

import (
	"context"
	"database/sql"
	"errors"
)

// ErrLockNotAcquired is returned when the lock is held by another session for longer than the
// configured lock duration.
var ErrLockNotAcquired = errors.New("failed to acquire lock")

// SessionLocker is used to lock the database for the duration of a session.
//
// The session is defined as the duration of a single connection and both methods must be called on
// the same connection.
type SessionLocker interface {
	SessionLock(ctx context.Context, conn *sql.Conn) error
	SessionUnlock(ctx context.Context, conn *sql.Conn) error
}
