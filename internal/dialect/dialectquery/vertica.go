package dialectquery

import "fmt"

type Vertica struct{}

var _ Querier = (*Vertica)(nil)

func (v *Vertica) UpdateEmail(tableName string) string {
	q := `UPDATE %s SET email = ? WHERE email = ?`
	return fmt.Sprintf(q, tableName)
}

func (v *Vertica) CountEmail(tableName string) string {
	q := `SELECT COUNT(*) FROM %s WHERE email = ?`
	return fmt.Sprintf(q, tableName)
}

func (v *Vertica) ListUsers(tableName string) string {
	q := `SELECT id, name, email, is_admin FROM %s`
	return fmt.Sprintf(q, tableName)
}
