package dialectquery

// Turso speaks the SQLite dialect over libsql.
type Turso struct {
	Sqlite3
}

var _ Querier = (*Turso)(nil)
