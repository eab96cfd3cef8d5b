package dialectquery

import "fmt"

type Postgres struct{}

var _ Querier = (*Postgres)(nil)

func (p *Postgres) UpdateEmail(tableName string) string {
	q := `UPDATE %s SET email = $1 WHERE email = $2`
	return fmt.Sprintf(q, tableName)
}

func (p *Postgres) CountEmail(tableName string) string {
	q := `SELECT COUNT(*) FROM %s WHERE email = $1`
	return fmt.Sprintf(q, tableName)
}

func (p *Postgres) ListUsers(tableName string) string {
	q := `SELECT id, name, email, is_admin FROM %s`
	return fmt.Sprintf(q, tableName)
}
