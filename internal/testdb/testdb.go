// Package testdb opens seeded databases for tests.
package testdb

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// User is a row seeded into the users table.
type User struct {
	ID      int64
	Name    string
	Email   string
	IsAdmin bool
}

// DefaultUsers returns the three users the rewrite rules were written for.
func DefaultUsers() []User {
	return []User{
		{ID: 1, Name: "Admin", Email: "admin@cliniquejuriste.com", IsAdmin: true},
		{ID: 2, Name: "Sami", Email: "sami@cliniquejuriste.com", IsAdmin: false},
		{ID: 3, Name: "Rami", Email: "rami@cliniquejuriste.com", IsAdmin: false},
	}
}

// NewSQLite creates a SQLite database file in dir with a seeded users table. Returns the db
// connection and a cleanup function.
func NewSQLite(dir string, opts ...OptionsFunc) (db *sql.DB, cleanup func(), err error) {
	return newSQLite(dir, opts...)
}

// NewMySQL connects to an existing MySQL server, waits until it answers and creates a seeded users
// table. Returns the db connection and a cleanup function that drops the table.
func NewMySQL(dsn string, opts ...OptionsFunc) (db *sql.DB, cleanup func(), err error) {
	return newMySQL(dsn, opts...)
}

func seed(ctx context.Context, db *sql.DB, createTable string, option *options) error {
	if _, err := db.ExecContext(ctx, createTable); err != nil {
		return fmt.Errorf("failed to create table %s: %w", option.tableName, err)
	}
	if len(option.users) == 0 {
		return nil
	}
	var sb strings.Builder
	args := make([]any, 0, len(option.users)*4)
	fmt.Fprintf(&sb, "INSERT INTO %s (id, name, email, is_admin) VALUES ", option.tableName)
	for i, u := range option.users {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("(?, ?, ?, ?)")
		args = append(args, u.ID, u.Name, u.Email, u.IsAdmin)
	}
	if _, err := db.ExecContext(ctx, sb.String(), args...); err != nil {
		return fmt.Errorf("failed to seed table %s: %w", option.tableName, err)
	}
	return nil
}
