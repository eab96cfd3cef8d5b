package testdb

import (
	"os"
	"strconv"
	"testing"
)

const (
	// key_TESTDB_MYSQL_DSN is the environment variable holding the DSN of an external MySQL server
	// used by integration tests.
	key_TESTDB_MYSQL_DSN = "EMAILMIGRATE_TEST_MYSQL_DSN"
	// key_TESTDB_POSTGRES_DSN is the environment variable holding the DSN of an external Postgres
	// server used by the lock tests.
	key_TESTDB_POSTGRES_DSN = "EMAILMIGRATE_TEST_POSTGRES_DSN"
	// key_TESTDB_NOCLEANUP is the environment variable that keeps seeded tables after the tests.
	key_TESTDB_NOCLEANUP = "TESTDB_NOCLEANUP"
)

// MySQLDSN returns the DSN of the external MySQL server, skipping the test when none is
// configured or when running in short mode.
func MySQLDSN(t *testing.T) string {
	t.Helper()
	return externalDSN(t, key_TESTDB_MYSQL_DSN)
}

// PostgresDSN is like [MySQLDSN] for an external Postgres server.
func PostgresDSN(t *testing.T) string {
	t.Helper()
	return externalDSN(t, key_TESTDB_POSTGRES_DSN)
}

func externalDSN(t *testing.T, key string) string {
	t.Helper()
	if testing.Short() {
		t.Skip("skip long-running test")
	}
	dsn := os.Getenv(key)
	if dsn == "" {
		t.Skipf("%s not set", key)
	}
	return dsn
}

// NoCleanup reports whether seeded tables should be kept for debugging.
func NoCleanup() bool {
	return envIsTrue(key_TESTDB_NOCLEANUP)
}

func envIsTrue(key string) bool {
	b, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && b
}
