package dialectquery

import "fmt"

type Redshift struct{}

var _ Querier = (*Redshift)(nil)

func (r *Redshift) UpdateEmail(tableName string) string {
	q := `UPDATE %s SET email = $1 WHERE email = $2`
	return fmt.Sprintf(q, tableName)
}

func (r *Redshift) CountEmail(tableName string) string {
	q := `SELECT COUNT(*) FROM %s WHERE email = $1`
	return fmt.Sprintf(q, tableName)
}

func (r *Redshift) ListUsers(tableName string) string {
	q := `SELECT id, name, email, is_admin FROM %s`
	return fmt.Sprintf(q, tableName)
}
