package emailmigrate

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/devopsacademy/emailmigrate/internal/dbutil"
	"github.com/devopsacademy/emailmigrate/internal/sqladapter"
	"go.uber.org/multierr"
)

func (r *Runner) run(ctx context.Context) (_ *Result, retErr error) {
	start := time.Now()
	conn, cleanup, err := r.initialize(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", StateConnecting, err)
	}
	result := new(Result)
	defer func() {
		if err := cleanup(); err != nil {
			retErr = multierr.Append(retErr, fmt.Errorf("%s: %w", StateDisconnecting, err))
		}
		result.Duration = time.Since(start)
	}()
	r.printf("connected to database")
	if r.cfg.verbose {
		for i, rule := range r.cfg.rules {
			r.printf("rule %d %s", i+1, rule)
		}
	}

	result.Rules, err = r.applyRules(ctx, conn)
	if err != nil {
		return nil, err
	}
	rows, err := r.store.ListUsers(ctx, conn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", StateQueryAll, err)
	}
	result.Users = toUsers(rows)
	return result, nil
}

// applyRules runs the rules in order. Without a transaction every rule commits on its own, so
// a failure leaves the rules before it applied. With a transaction a failure rolls back all of
// them.
func (r *Runner) applyRules(ctx context.Context, conn *sql.Conn) ([]*RuleResult, error) {
	if !r.cfg.useTx {
		return r.runRules(ctx, conn, r.reportApplied)
	}
	var results []*RuleResult
	err := beginTx(ctx, conn, func(tx *sql.Tx) error {
		var err error
		// Nothing is visible until commit, so report afterwards.
		results, err = r.runRules(ctx, tx, func(*RuleResult) {})
		return err
	})
	if err != nil {
		var partialErr *PartialError
		if errors.As(err, &partialErr) {
			partialErr.Applied = nil
		}
		r.printf("rolled back all email updates")
		return nil, err
	}
	for _, res := range results {
		r.reportApplied(res)
	}
	return results, nil
}

func (r *Runner) runRules(
	ctx context.Context,
	db sqladapter.DBTxConn,
	onApplied func(*RuleResult),
) ([]*RuleResult, error) {
	// Avoid allocating a slice because we may have a partial error.
	var results []*RuleResult
	for i, rule := range r.cfg.rules {
		current := &RuleResult{
			Rule:         rule,
			State:        StateUpdateRule(i + 1),
			RowsAffected: -1,
		}
		start := time.Now()
		if err := r.runRule(ctx, db, current); err != nil {
			current.Error = err
			current.Duration = time.Since(start)
			return results, &PartialError{
				Applied: results,
				Failed:  current,
				Err:     err,
			}
		}
		current.Duration = time.Since(start)
		results = append(results, current)
		onApplied(current)
	}
	return results, nil
}

func (r *Runner) runRule(ctx context.Context, db sqladapter.DBTxConn, current *RuleResult) error {
	rule := current.Rule
	if r.cfg.strict {
		n, err := r.store.CountEmail(ctx, db, rule.Old)
		if err != nil {
			return err
		}
		if n > 1 {
			return fmt.Errorf("%w %q: %d rows", ErrDuplicateEmail, rule.Old, n)
		}
	}
	res, err := r.store.UpdateEmail(ctx, db, rule.Old, rule.New)
	if err != nil {
		return err
	}
	current.RowsAffected = dbutil.RowsAffected(res)
	if r.cfg.verbose {
		if info := dbutil.FormatSQLResultInfo(res); info != "" {
			r.printf("%s: %s", rule.Name, info)
		}
	}
	return nil
}

func (r *Runner) reportApplied(res *RuleResult) {
	switch n := res.RowsAffected; {
	case n == 0:
		r.printf("updated %s email (no user with %s)", res.Rule.Name, res.Rule.Old)
	case n > 1:
		r.printf("updated %s email (rows affected: %d)", res.Rule.Name, n)
		r.printf("warning: %d users shared the email %s", n, res.Rule.Old)
	case n == 1:
		r.printf("updated %s email (rows affected: 1)", res.Rule.Name)
	default:
		r.printf("updated %s email", res.Rule.Name)
	}
}

func (r *Runner) status(ctx context.Context) (_ []*RuleStatus, retErr error) {
	conn, cleanup, err := r.initialize(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", StateConnecting, err)
	}
	defer func() {
		retErr = multierr.Append(retErr, cleanup())
	}()

	status := make([]*RuleStatus, 0, len(r.cfg.rules))
	for _, rule := range r.cfg.rules {
		oldCount, err := r.store.CountEmail(ctx, conn, rule.Old)
		if err != nil {
			return nil, err
		}
		newCount, err := r.store.CountEmail(ctx, conn, rule.New)
		if err != nil {
			return nil, err
		}
		status = append(status, &RuleStatus{
			Rule:     rule,
			State:    ruleState(oldCount, newCount),
			OldCount: oldCount,
			NewCount: newCount,
		})
	}
	return status, nil
}

func (r *Runner) listUsers(ctx context.Context) (_ []*User, retErr error) {
	conn, cleanup, err := r.initialize(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", StateConnecting, err)
	}
	defer func() {
		retErr = multierr.Append(retErr, cleanup())
	}()
	rows, err := r.store.ListUsers(ctx, conn)
	if err != nil {
		return nil, err
	}
	return toUsers(rows), nil
}

// initialize acquires a scoped connection and, when lock is true and a session locker is
// configured, the session lock. The returned cleanup function releases both and must always be
// called.
func (r *Runner) initialize(ctx context.Context, lock bool) (*sql.Conn, func() error, error) {
	r.mu.Lock()
	conn, err := r.db.Conn(ctx)
	if err != nil {
		r.mu.Unlock()
		return nil, nil, err
	}
	cleanup := func() error {
		r.mu.Unlock()
		return conn.Close()
	}
	if l := r.cfg.sessionLocker; l != nil && r.cfg.lockEnabled && lock {
		if err := l.SessionLock(ctx, conn); err != nil {
			return nil, nil, multierr.Append(err, cleanup())
		}
		cleanup = func() error {
			r.mu.Unlock()
			// Use a detached context to unlock the session. The context passed to SessionLock may
			// have been canceled, and we don't want to cancel the unlock.
			detachedCtx := context.WithoutCancel(ctx)
			return multierr.Append(l.SessionUnlock(detachedCtx, conn), conn.Close())
		}
	}
	return conn, cleanup, nil
}

// beginTx begins a transaction and runs the given function. If the function returns an error, the
// transaction is rolled back. Otherwise, the transaction is committed.
func beginTx(
	ctx context.Context,
	conn *sql.Conn,
	fn func(tx *sql.Tx) error,
) (retErr error) {
	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if retErr != nil {
			retErr = multierr.Append(retErr, tx.Rollback())
		}
	}()
	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *Runner) printf(format string, v ...any) {
	r.cfg.logger.Printf(format, v...)
}

func toUsers(rows []*sqladapter.UserRow) []*User {
	users := make([]*User, 0, len(rows))
	for _, row := range rows {
		users = append(users, &User{
			ID:      row.ID,
			Name:    row.Name.String,
			Email:   row.Email.String,
			IsAdmin: row.IsAdmin.Bool,
		})
	}
	return users
}
