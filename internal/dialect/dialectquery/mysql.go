package dialectquery

import "fmt"

type Mysql struct{}

var _ Querier = (*Mysql)(nil)

func (m *Mysql) UpdateEmail(tableName string) string {
	q := `UPDATE %s SET email = ? WHERE email = ?`
	return fmt.Sprintf(q, tableName)
}

func (m *Mysql) CountEmail(tableName string) string {
	q := `SELECT COUNT(*) FROM %s WHERE email = ?`
	return fmt.Sprintf(q, tableName)
}

func (m *Mysql) ListUsers(tableName string) string {
	q := `SELECT id, name, email, is_admin FROM %s`
	return fmt.Sprintf(q, tableName)
}
