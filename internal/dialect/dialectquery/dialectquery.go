// Package dialectquery holds the dialect specific SQL text issued against the users table.
package dialectquery

// Querier is the interface that wraps the basic methods to create a dialect specific query.
type Querier interface {
	// UpdateEmail returns the SQL query string that rewrites the email column. The query takes two
	// arguments: the new email, then the old email.
	UpdateEmail(tableName string) string

	// CountEmail returns the SQL query string that counts rows with the given email. The query
	// takes one argument.
	CountEmail(tableName string) string

	// ListUsers returns the SQL query string to list all users.
	//
	// The query should return the id, name, email and is_admin columns, in that order. No explicit
	// ordering is requested.
	ListUsers(tableName string) string
}
