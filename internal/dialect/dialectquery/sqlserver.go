package dialectquery

import "fmt"

type Sqlserver struct{}

var _ Querier = (*Sqlserver)(nil)

func (s *Sqlserver) UpdateEmail(tableName string) string {
	q := `UPDATE %s SET email = @p1 WHERE email = @p2`
	return fmt.Sprintf(q, tableName)
}

func (s *Sqlserver) CountEmail(tableName string) string {
	q := `SELECT COUNT(*) FROM %s WHERE email = @p1`
	return fmt.Sprintf(q, tableName)
}

func (s *Sqlserver) ListUsers(tableName string) string {
	q := `SELECT id, name, email, is_admin FROM %s`
	return fmt.Sprintf(q, tableName)
}
