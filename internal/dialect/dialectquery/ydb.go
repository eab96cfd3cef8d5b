package dialectquery

import "fmt"

// Ydb expects the connection to bind numeric parameters with automatic declares, i.e. the dbstring
// carries go_query_bind=declare,numeric.
type Ydb struct{}

var _ Querier = (*Ydb)(nil)

func (c *Ydb) UpdateEmail(tableName string) string {
	q := `UPDATE %s SET email = $1 WHERE email = $2`
	return fmt.Sprintf(q, tableName)
}

func (c *Ydb) CountEmail(tableName string) string {
	q := `SELECT COUNT(*) FROM %s WHERE email = $1`
	return fmt.Sprintf(q, tableName)
}

func (c *Ydb) ListUsers(tableName string) string {
	q := `SELECT id, name, email, is_admin FROM %s`
	return fmt.Sprintf(q, tableName)
}
