package dialectquery

import "fmt"

// Clickhouse rewrites rows with an ALTER TABLE mutation. Mutations run asynchronously unless the
// connection sets mutations_sync, so the dbstring should carry mutations_sync=2.
type Clickhouse struct{}

var _ Querier = (*Clickhouse)(nil)

func (c *Clickhouse) UpdateEmail(tableName string) string {
	q := `ALTER TABLE %s UPDATE email = ? WHERE email = ?`
	return fmt.Sprintf(q, tableName)
}

func (c *Clickhouse) CountEmail(tableName string) string {
	q := `SELECT count() FROM %s WHERE email = ?`
	return fmt.Sprintf(q, tableName)
}

func (c *Clickhouse) ListUsers(tableName string) string {
	q := `SELECT id, name, email, is_admin FROM %s`
	return fmt.Sprintf(q, tableName)
}
