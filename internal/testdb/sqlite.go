package testdb

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"

	_ "modernc.org/sqlite"
)

func newSQLite(dir string, opts ...OptionsFunc) (*sql.DB, func(), error) {
	option := newOptions(opts)
	db, err := sql.Open("sqlite", filepath.Join(dir, "emailmigrate.db"))
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() { _ = db.Close() }
	notNull := " NOT NULL"
	if option.nullable {
		notNull = ""
	}
	emailColumn := "email TEXT" + notNull
	if option.uniqueEmail {
		emailColumn += " UNIQUE"
	}
	createTable := fmt.Sprintf(`CREATE TABLE %s (
		id INTEGER PRIMARY KEY,
		name TEXT,
		%s,
		is_admin BOOLEAN%s DEFAULT 0
	)`, option.tableName, emailColumn, notNull)
	if err := seed(context.Background(), db, createTable, option); err != nil {
		cleanup()
		return nil, nil, err
	}
	return db, cleanup, nil
}
