// Package normalizedsn rewrites driver DSNs into the form the runner expects.
package normalizedsn

import "github.com/go-sql-driver/mysql"

// DBString parses the dsn used with the mysql driver to always have the parameter `parseTime` set
// to true. This allows user listings to scan DATETIME/DATE/TIMESTAMP columns into time.Time should
// the users table carry any.
func DBString(dsn string) (string, error) {
	config, err := mysql.ParseDSN(dsn)
	if err != nil {
		return "", err
	}
	config.ParseTime = true
	return config.FormatDSN(), nil
}

// MySQL builds a normalized mysql driver DSN from its parts.
func MySQL(addr, user, password, database string) string {
	config := mysql.NewConfig()
	config.Net = "tcp"
	config.Addr = addr
	config.User = user
	config.Passwd = password
	config.DBName = database
	config.ParseTime = true
	return config.FormatDSN()
}

// WithTLSConfig sets the named TLS config registered with mysql.RegisterTLSConfig on the dsn.
func WithTLSConfig(dsn, key string) (string, error) {
	config, err := mysql.ParseDSN(dsn)
	if err != nil {
		return "", err
	}
	config.TLSConfig = key
	return config.FormatDSN(), nil
}
