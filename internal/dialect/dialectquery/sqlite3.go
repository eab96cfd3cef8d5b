package dialectquery

import "fmt"

type Sqlite3 struct{}

var _ Querier = (*Sqlite3)(nil)

func (s *Sqlite3) UpdateEmail(tableName string) string {
	q := `UPDATE %s SET email=? WHERE email=?`
	return fmt.Sprintf(q, tableName)
}

func (s *Sqlite3) CountEmail(tableName string) string {
	q := `SELECT COUNT(*) FROM %s WHERE email=?`
	return fmt.Sprintf(q, tableName)
}

func (s *Sqlite3) ListUsers(tableName string) string {
	q := `SELECT id, name, email, is_admin FROM %s`
	return fmt.Sprintf(q, tableName)
}
