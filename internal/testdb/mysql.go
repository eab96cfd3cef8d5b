package testdb

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/sethvargo/go-retry"
)

func newMySQL(dsn string, opts ...OptionsFunc) (*sql.DB, func(), error) {
	option := newOptions(opts)
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, nil, err
	}
	ctx := context.Background()
	// The server may still be starting when the tests begin.
	backoff := retry.WithMaxDuration(30*time.Second, retry.NewConstant(time.Second))
	if err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := db.PingContext(ctx); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	}); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("could not connect to mysql: %w", err)
	}
	cleanup := func() {
		defer db.Close()
		if NoCleanup() {
			// User must manually drop the table.
			return
		}
		if _, err := db.Exec("DROP TABLE IF EXISTS " + option.tableName); err != nil {
			log.Printf("failed to drop table %s: %v", option.tableName, err)
		}
	}
	notNull := " NOT NULL"
	if option.nullable {
		notNull = ""
	}
	emailColumn := "email VARCHAR(255)" + notNull
	if option.uniqueEmail {
		emailColumn += " UNIQUE"
	}
	createTable := fmt.Sprintf(`CREATE TABLE %s (
		id INT NOT NULL PRIMARY KEY,
		name VARCHAR(255),
		%s,
		is_admin BOOLEAN%s DEFAULT FALSE
	)`, option.tableName, emailColumn, notNull)
	if _, err := db.ExecContext(ctx, "DROP TABLE IF EXISTS "+option.tableName); err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	if err := seed(ctx, db, createTable, option); err != nil {
		cleanup()
		return nil, nil, err
	}
	return db, cleanup, nil
}
