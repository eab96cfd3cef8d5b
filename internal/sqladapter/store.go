package sqladapter

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/devopsacademy/emailmigrate/internal/dialect/dialectquery"
)

var _ Store = (*store)(nil)

type store struct {
	tablename string
	querier   dialectquery.Querier
}

// NewStore returns a new Store backed by the given dialect.
//
// The dialect must match one of the supported dialects defined in dialect.go at the module root.
func NewStore(dialect string, table string) (Store, error) {
	if table == "" {
		return nil, errors.New("table must not be empty")
	}
	if dialect == "" {
		return nil, errors.New("dialect must not be empty")
	}
	var querier dialectquery.Querier
	switch dialect {
	case "clickhouse":
		querier = &dialectquery.Clickhouse{}
	case "mssql":
		querier = &dialectquery.Sqlserver{}
	case "mysql":
		querier = &dialectquery.Mysql{}
	case "postgres":
		querier = &dialectquery.Postgres{}
	case "redshift":
		querier = &dialectquery.Redshift{}
	case "spanner":
		querier = &dialectquery.Spanner{}
	case "sqlite3":
		querier = &dialectquery.Sqlite3{}
	case "tidb":
		querier = &dialectquery.Tidb{}
	case "turso":
		querier = &dialectquery.Turso{}
	case "vertica":
		querier = &dialectquery.Vertica{}
	case "ydb":
		querier = &dialectquery.Ydb{}
	default:
		return nil, fmt.Errorf("unknown dialect: %q", dialect)
	}
	return &store{
		tablename: table,
		querier:   querier,
	}, nil
}

func (s *store) UpdateEmail(ctx context.Context, db DBTxConn, oldEmail, newEmail string) (sql.Result, error) {
	q := s.querier.UpdateEmail(s.tablename)
	res, err := db.ExecContext(ctx, q, newEmail, oldEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to update email %q: %w", oldEmail, err)
	}
	return res, nil
}

func (s *store) CountEmail(ctx context.Context, db DBTxConn, email string) (int64, error) {
	q := s.querier.CountEmail(s.tablename)
	var count int64
	if err := db.QueryRowContext(ctx, q, email).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count email %q: %w", email, err)
	}
	return count, nil
}

func (s *store) ListUsers(ctx context.Context, db DBTxConn) ([]*UserRow, error) {
	q := s.querier.ListUsers(s.tablename)
	rows, err := db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := make([]*UserRow, 0)
	for rows.Next() {
		u := new(UserRow)
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.IsAdmin); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return users, nil
}
