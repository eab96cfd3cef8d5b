package lock_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/devopsacademy/emailmigrate/internal/testdb"
	"github.com/devopsacademy/emailmigrate/lock"
	"github.com/stretchr/testify/require"
)

func TestMySQLSessionLocker(t *testing.T) {
	t.Parallel()

	dsn := testdb.MySQLDSN(t)
	db, cleanup, err := testdb.NewMySQL(dsn, testdb.WithTableName("lock_test_users"))
	require.NoError(t, err)
	t.Cleanup(cleanup)

	ctx := context.Background()
	locker, err := lock.NewMySQLSessionLocker(
		lock.WithLockName("emailmigrate_lock_test"),
		lock.WithLockDuration(2*time.Second),
	)
	require.NoError(t, err)

	first, err := db.Conn(ctx)
	require.NoError(t, err)
	defer first.Close()
	second, err := db.Conn(ctx)
	require.NoError(t, err)
	defer second.Close()

	require.NoError(t, locker.SessionLock(ctx, first))
	// The second session gives up once the lock duration elapses.
	err = locker.SessionLock(ctx, second)
	require.Error(t, err)
	require.True(t, errors.Is(err, lock.ErrLockNotAcquired), err.Error())
	// Only the owner can release.
	require.Error(t, locker.SessionUnlock(ctx, second))
	require.NoError(t, locker.SessionUnlock(ctx, first))
	require.NoError(t, locker.SessionLock(ctx, second))
	require.NoError(t, locker.SessionUnlock(ctx, second))
}
