package dialectquery

import "fmt"

type Tidb struct{}

var _ Querier = (*Tidb)(nil)

func (t *Tidb) UpdateEmail(tableName string) string {
	q := `UPDATE %s SET email = ? WHERE email = ?`
	return fmt.Sprintf(q, tableName)
}

func (t *Tidb) CountEmail(tableName string) string {
	q := `SELECT COUNT(*) FROM %s WHERE email = ?`
	return fmt.Sprintf(q, tableName)
}

func (t *Tidb) ListUsers(tableName string) string {
	q := `SELECT id, name, email, is_admin FROM %s`
	return fmt.Sprintf(q, tableName)
}
