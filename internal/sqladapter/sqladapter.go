// Package sqladapter provides an interface for interacting with the users table of a SQL
// database.
//
// All supported database dialects must implement the Store interface.
package sqladapter

import (
	"context"
	"database/sql"
)

// DBTxConn is an interface that is satisfied by *sql.DB, *sql.Tx and *sql.Conn.
//
// There is a long outstanding issue to formalize a std lib interface, but alas...
// See: https://github.com/golang/go/issues/14468
type DBTxConn interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	_ DBTxConn = (*sql.DB)(nil)
	_ DBTxConn = (*sql.Tx)(nil)
	_ DBTxConn = (*sql.Conn)(nil)
)

// Store is the interface that wraps the basic methods for a database dialect.
//
// A dialect is a set of SQL statements that are specific to a database.
//
// The underlying implementation wraps errors with context but does not otherwise modify them. It
// is the callers responsibility to assert for driver specific errors with errors.As.
type Store interface {
	// UpdateEmail sets the email of every row whose email equals oldEmail to newEmail.
	//
	// The raw result is returned so the caller can decide how to report rows affected, which not
	// every driver supports.
	UpdateEmail(ctx context.Context, db DBTxConn, oldEmail, newEmail string) (sql.Result, error)

	// CountEmail returns the number of rows whose email equals email.
	CountEmail(ctx context.Context, db DBTxConn, email string) (int64, error)

	// ListUsers retrieves all users in the order the database returns them.
	//
	// If there are no users, an empty slice is returned with no error.
	ListUsers(ctx context.Context, db DBTxConn) ([]*UserRow, error)
}

// UserRow is a row of the users table. Every column but the id may be NULL.
type UserRow struct {
	ID      int64
	Name    sql.NullString
	Email   sql.NullString
	IsAdmin sql.NullBool
}
