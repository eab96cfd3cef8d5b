package emailmigrate

import (
	"fmt"
	"strings"
)

// Dialect is the type of database dialect.
type Dialect string

const (
	DialectClickHouse Dialect = "clickhouse"
	DialectMSSQL      Dialect = "mssql"
	DialectMySQL      Dialect = "mysql"
	DialectPostgres   Dialect = "postgres"
	DialectRedshift   Dialect = "redshift"
	DialectSpanner    Dialect = "spanner"
	DialectSQLite3    Dialect = "sqlite3"
	DialectTiDB       Dialect = "tidb"
	DialectTurso      Dialect = "turso"
	DialectVertica    Dialect = "vertica"
	DialectYdB        Dialect = "ydb"
)

// ResolveDialect returns the dialect for the first string that matches a known dialect name or
// alias. If no match is found, an error is returned.
//
// The aliases follow the dburl scheme aliases, so a scheme taken from a database URL resolves to
// the same dialect as its long name.
func ResolveDialect(ss ...string) (Dialect, error) {
	for _, s := range ss {
		switch strings.ToLower(s) {
		case "postgres", "pg", "pgx", "postgresql", "pgsql":
			return DialectPostgres, nil
		case "mysql", "my", "mariadb", "maria", "percona", "aurora", "mymysql":
			return DialectMySQL, nil
		case "sqlite", "sqlite3", "file":
			return DialectSQLite3, nil
		case "sqlserver", "ms", "mssql", "azuresql":
			return DialectMSSQL, nil
		case "redshift", "rs":
			return DialectRedshift, nil
		case "tidb", "ti":
			return DialectTiDB, nil
		case "clickhouse", "ch":
			return DialectClickHouse, nil
		case "vertica", "ve":
			return DialectVertica, nil
		case "turso", "libsql":
			return DialectTurso, nil
		case "spanner", "sp":
			return DialectSpanner, nil
		case "ydb", "yd":
			return DialectYdB, nil
		}
	}
	return "", fmt.Errorf("failed to resolve scheme names or aliases to a dialect: %q", strings.Join(ss, ","))
}
