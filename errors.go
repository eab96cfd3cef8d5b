package emailmigrate

import (
	"errors"
	"fmt"

	"github.com/devopsacademy/emailmigrate/lock"
)

var (
	// ErrDuplicateEmail is returned in strict mode when more than one row matches the old email of a
	// rule. The rule's rows are left untouched.
	ErrDuplicateEmail = errors.New("more than one user matches email")

	// ErrNoRules is returned by [NewRunner] when the rule set is empty.
	ErrNoRules = errors.New("no rewrite rules")

	// ErrLockNotAcquired is returned when the session lock could not be taken before the lock
	// duration elapsed.
	ErrLockNotAcquired = lock.ErrLockNotAcquired
)

// PartialError is returned when a rule fails. Rules that ran before it may already be committed.
type PartialError struct {
	// Applied are the rules that were committed before the failure. Always empty when the run is
	// wrapped in a transaction, because the transaction is rolled back.
	Applied []*RuleResult
	// Failed contains the result of the rule that failed. Cannot be nil.
	Failed *RuleResult
	// Err is the error that caused the failure.
	Err error
}

func (e *PartialError) Error() string {
	return fmt.Sprintf(
		"partial email update error (state:%s,rule:%s): %v",
		e.Failed.State, e.Failed.Rule.Name, e.Err,
	)
}

func (e *PartialError) Unwrap() error {
	return e.Err
}
