package emailmigrate_test

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/devopsacademy/emailmigrate"
	"github.com/devopsacademy/emailmigrate/lock"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func TestNewRunner(t *testing.T) {
	dir := t.TempDir()
	db, err := sql.Open("sqlite", filepath.Join(dir, "options.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	t.Run("invalid", func(t *testing.T) {
		// Empty dialect not allowed
		_, err := emailmigrate.NewRunner("", db)
		require.EqualError(t, err, "dialect must not be empty")
		// Invalid dialect not allowed
		_, err = emailmigrate.NewRunner("unknown-dialect", db)
		require.EqualError(t, err, `unknown dialect: "unknown-dialect"`)
		// Nil db not allowed
		_, err = emailmigrate.NewRunner(emailmigrate.DialectSQLite3, nil)
		require.EqualError(t, err, "db must not be nil")
		// Duplicate table name not allowed
		_, err = emailmigrate.NewRunner(emailmigrate.DialectSQLite3, db,
			emailmigrate.WithTableName("foo"), emailmigrate.WithTableName("bar"))
		require.EqualError(t, err, `table already set to "foo"`)
		// Empty table name not allowed
		_, err = emailmigrate.NewRunner(emailmigrate.DialectSQLite3, db, emailmigrate.WithTableName(""))
		require.EqualError(t, err, "table must not be empty")
		// Nil logger not allowed
		_, err = emailmigrate.NewRunner(emailmigrate.DialectSQLite3, db, emailmigrate.WithLogger(nil))
		require.EqualError(t, err, "logger must not be nil")
		// Nil session locker not allowed
		_, err = emailmigrate.NewRunner(emailmigrate.DialectSQLite3, db, emailmigrate.WithSessionLocker(nil))
		require.EqualError(t, err, "session locker must not be nil")
		// Only one session locker
		locker, err := lock.NewMySQLSessionLocker()
		require.NoError(t, err)
		_, err = emailmigrate.NewRunner(emailmigrate.DialectSQLite3, db,
			emailmigrate.WithSessionLocker(locker), emailmigrate.WithSessionLocker(locker))
		require.EqualError(t, err, "lock already enabled")
	})
	t.Run("valid", func(t *testing.T) {
		_, err := emailmigrate.NewRunner(emailmigrate.DialectSQLite3, db)
		require.NoError(t, err)
		_, err = emailmigrate.NewRunner(emailmigrate.DialectMySQL, db,
			emailmigrate.WithTableName("members"),
			emailmigrate.WithVerbose(true),
			emailmigrate.WithTransaction(true),
			emailmigrate.WithStrict(true),
			emailmigrate.WithLogger(emailmigrate.NopLogger()),
		)
		require.NoError(t, err)
	})
}
