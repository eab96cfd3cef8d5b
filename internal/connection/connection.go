// Package connection turns configuration into an open database handle.
package connection

import (
	"database/sql"
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"strings"

	"github.com/devopsacademy/emailmigrate"
	"github.com/devopsacademy/emailmigrate/internal/normalizedsn"
	"github.com/mfridman/interpolate"
	"github.com/xo/dburl"
)

// dialectToDriverMapping maps dialects to the actual driver names used by the CLI.
//
// See the ./cmd/emailmigrate directory for driver imports, which are conditionally compiled based
// on build tags. For example, for postgres we use github.com/jackc/pgx/v5/stdlib, and the driver
// name is "pgx". For sqlite3 we use modernc.org/sqlite and the driver name is "sqlite".
var dialectToDriverMapping = map[emailmigrate.Dialect]string{
	emailmigrate.DialectPostgres:   "pgx",
	emailmigrate.DialectRedshift:   "pgx",
	emailmigrate.DialectMySQL:      "mysql",
	emailmigrate.DialectTiDB:       "mysql",
	emailmigrate.DialectSQLite3:    "sqlite",
	emailmigrate.DialectMSSQL:      "sqlserver",
	emailmigrate.DialectClickHouse: "clickhouse",
	emailmigrate.DialectVertica:    "vertica",
	emailmigrate.DialectTurso:      "libsql",
	emailmigrate.DialectSpanner:    "spanner",
	emailmigrate.DialectYdB:        "ydb",
}

// Config describes how to reach the database. DBString takes precedence over the endpoint fields.
type Config struct {
	Dialect  string
	Driver   string
	DBString string

	Host     string
	Port     string
	User     string
	Password string
	Database string

	// CertFile is a PEM file with the CA certificates trusted for mysql TLS connections.
	CertFile string
}

// Target is a resolved connection: the dialect of the database and what to pass to sql.Open.
type Target struct {
	Dialect emailmigrate.Dialect
	Driver  string
	DSN     string
}

// Open resolves the config and opens the database. The returned db has not been pinged.
func Open(c Config) (*sql.DB, *Target, error) {
	target, err := Resolve(c)
	if err != nil {
		return nil, nil, err
	}
	if c.CertFile != "" {
		if target.Driver != "mysql" {
			return nil, nil, fmt.Errorf("certfile is only supported by the mysql driver, got %q", target.Driver)
		}
		if err := registerTLSConfig(c.CertFile); err != nil {
			return nil, nil, fmt.Errorf("failed to register TLS config: %w", err)
		}
		if target.DSN, err = normalizedsn.WithTLSConfig(target.DSN, tlsConfigKey); err != nil {
			return nil, nil, err
		}
	}
	db, err := sql.Open(target.Driver, target.DSN)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open connection: %w", err)
	}
	return db, target, nil
}

// Resolve returns the dialect, driver and DSN for the config without opening a connection.
func Resolve(c Config) (*Target, error) {
	dbstring, err := interpolate.Interpolate(interpolate.NewSliceEnv(os.Environ()), c.DBString)
	if err != nil {
		return nil, fmt.Errorf("failed to expand dbstring: %w", err)
	}
	if strings.Contains(dbstring, "://") {
		return fromURL(dbstring, c.Driver)
	}
	dialect, err := emailmigrate.ResolveDialect(c.Dialect)
	if err != nil {
		return nil, err
	}
	driver, err := driverFor(dialect, c.Driver, c.Dialect)
	if err != nil {
		return nil, err
	}
	dsn := dbstring
	if dsn == "" {
		if dsn, err = endpointDSN(dialect, driver, c); err != nil {
			return nil, err
		}
	}
	if driver == "mysql" {
		if dsn, err = normalizedsn.DBString(dsn); err != nil {
			return nil, fmt.Errorf("failed to normalize mysql DSN: %w", err)
		}
	}
	return &Target{Dialect: dialect, Driver: driver, DSN: dsn}, nil
}

func fromURL(dbstring, driver string) (*Target, error) {
	dbURL, err := dburl.Parse(dbstring)
	if err != nil {
		return nil, fmt.Errorf("failed to parse DSN: %w", err)
	}
	dialect, err := emailmigrate.ResolveDialect(dbURL.UnaliasedDriver, dbURL.Scheme)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve dialect: %w", err)
	}
	driver, err = driverFor(dialect, driver, dbURL.UnaliasedDriver)
	if err != nil {
		return nil, err
	}
	dsn := dbURL.DSN
	if driver == "mysql" {
		if dsn, err = normalizedsn.DBString(dsn); err != nil {
			return nil, fmt.Errorf("failed to normalize mysql DSN: %w", err)
		}
	}
	return &Target{Dialect: dialect, Driver: driver, DSN: dsn}, nil
}

// driverFor returns the explicit driver when set, the mymysql driver when the dialect was named by
// it, or the default driver of the dialect.
func driverFor(dialect emailmigrate.Dialect, explicit, named string) (string, error) {
	if explicit != "" {
		if explicit == "mymysql" && dialect != emailmigrate.DialectMySQL && dialect != emailmigrate.DialectTiDB {
			return "", fmt.Errorf("driver %q cannot serve dialect %s", explicit, dialect)
		}
		return explicit, nil
	}
	if strings.EqualFold(named, "mymysql") {
		return "mymysql", nil
	}
	driver, ok := dialectToDriverMapping[dialect]
	if !ok {
		return "", fmt.Errorf("unknown database dialect: %s", dialect)
	}
	return driver, nil
}

func endpointDSN(dialect emailmigrate.Dialect, driver string, c Config) (string, error) {
	addr := net.JoinHostPort(c.Host, c.Port)
	userinfo := url.UserPassword(c.User, c.Password)
	switch dialect {
	case emailmigrate.DialectMySQL, emailmigrate.DialectTiDB:
		if driver == "mymysql" {
			return fmt.Sprintf("tcp:%s*%s/%s/%s", addr, c.Database, c.User, c.Password), nil
		}
		return normalizedsn.MySQL(addr, c.User, c.Password, c.Database), nil
	case emailmigrate.DialectPostgres, emailmigrate.DialectRedshift:
		u := url.URL{Scheme: "postgres", User: userinfo, Host: addr, Path: "/" + c.Database}
		return u.String(), nil
	case emailmigrate.DialectMSSQL:
		u := url.URL{
			Scheme:   "sqlserver",
			User:     userinfo,
			Host:     addr,
			RawQuery: url.Values{"database": {c.Database}}.Encode(),
		}
		return u.String(), nil
	case emailmigrate.DialectVertica:
		u := url.URL{Scheme: "vertica", User: userinfo, Host: addr, Path: "/" + c.Database}
		return u.String(), nil
	case emailmigrate.DialectClickHouse:
		u := url.URL{Scheme: "clickhouse", User: userinfo, Host: addr, Path: "/" + c.Database}
		return u.String(), nil
	case emailmigrate.DialectSQLite3:
		if c.Database == "" {
			return "", errors.New("sqlite3 requires a database file")
		}
		return c.Database, nil
	default:
		return "", fmt.Errorf("dialect %s requires a dbstring", dialect)
	}
}
