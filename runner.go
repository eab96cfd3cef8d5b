package emailmigrate

import (
	"context"
	"database/sql"
	"errors"
	"slices"
	"sync"

	"github.com/devopsacademy/emailmigrate/internal/sqladapter"
)

// NewRunner returns a new Runner that rewrites user emails in db.
//
// The caller is responsible for matching the database dialect with the database/sql driver. For
// example, if the database dialect is "postgres", the database/sql driver could be
// github.com/jackc/pgx/v5/stdlib.
//
// The rewrite rules are the ones returned by [DefaultRules] and cannot be changed. See
// [RunnerOption] for the behavior that can be configured.
//
// Unless otherwise specified, all methods on Runner are safe for concurrent use; calls that talk to
// the database are serialized.
func NewRunner(dialect Dialect, db *sql.DB, opts ...RunnerOption) (*Runner, error) {
	if db == nil {
		return nil, errors.New("db must not be nil")
	}
	if dialect == "" {
		return nil, errors.New("dialect must not be empty")
	}
	var cfg config
	for _, opt := range opts {
		if err := opt.apply(&cfg); err != nil {
			return nil, err
		}
	}
	// Set defaults after applying user-supplied options so option funcs can check for empty values.
	if cfg.tableName == "" {
		cfg.tableName = defaultTableName
	}
	if cfg.logger == nil {
		cfg.logger = &stdLogger{}
	}
	if cfg.rules == nil {
		cfg.rules = DefaultRules()
	}
	if err := validateRules(cfg.rules); err != nil {
		return nil, err
	}
	store, err := sqladapter.NewStore(string(dialect), cfg.tableName)
	if err != nil {
		return nil, err
	}
	return &Runner{
		db:      db,
		dialect: dialect,
		store:   store,
		cfg:     cfg,
	}, nil
}

// Runner applies the email rewrite rules to a database.
type Runner struct {
	// mu protects all accesses to the runner and the database connection.
	mu sync.Mutex

	db      *sql.DB
	dialect Dialect
	store   sqladapter.Store
	cfg     config
}

// Run connects to the database, applies every rule in order, lists the resulting users and
// releases the connection.
//
// The first failure stops the run. If a rule fails, the returned error is a *[PartialError]. The
// connection (and session lock, if any) is released on every path; a release failure is joined to
// the returned error, in which case the result is still returned.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	return r.run(ctx)
}

// Status reports, for every rule, how many users still carry the old email and how many already
// carry the new one. It does not modify the database.
func (r *Runner) Status(ctx context.Context) ([]*RuleStatus, error) {
	return r.status(ctx)
}

// ListUsers returns all users in the order the database returns them.
func (r *Runner) ListUsers(ctx context.Context) ([]*User, error) {
	return r.listUsers(ctx)
}

// Rules returns the rewrite rules in the order they are applied.
func (r *Runner) Rules() []Rule {
	return slices.Clone(r.cfg.rules)
}

// Dialect returns the database dialect of the runner.
func (r *Runner) Dialect() Dialect {
	return r.dialect
}

// Ping attempts to ping the database to verify a connection is available.
func (r *Runner) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// Close closes the database connection.
func (r *Runner) Close() error {
	return r.db.Close()
}
