package dialectquery

import "fmt"

// Spanner takes positional parameters; go-sql-spanner rewrites them to @p1, @p2.
type Spanner struct{}

var _ Querier = (*Spanner)(nil)

func (s *Spanner) UpdateEmail(tableName string) string {
	q := `UPDATE %s SET email = ? WHERE email = ?`
	return fmt.Sprintf(q, tableName)
}

func (s *Spanner) CountEmail(tableName string) string {
	q := `SELECT COUNT(*) FROM %s WHERE email = ?`
	return fmt.Sprintf(q, tableName)
}

func (s *Spanner) ListUsers(tableName string) string {
	q := `SELECT id, name, email, is_admin FROM %s`
	return fmt.Sprintf(q, tableName)
}
