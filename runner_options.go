package emailmigrate

import (
	"errors"
	"fmt"

	"github.com/devopsacademy/emailmigrate/lock"
)

const (
	defaultTableName = "users"
)

// RunnerOption is a configuration option for a Runner.
type RunnerOption interface {
	apply(*config) error
}

// WithTableName sets the name of the users table.
//
// If WithTableName is not called, the default value is "users".
func WithTableName(name string) RunnerOption {
	return configFunc(func(c *config) error {
		if c.tableName != "" {
			return fmt.Errorf("table already set to %q", c.tableName)
		}
		if name == "" {
			return errors.New("table must not be empty")
		}
		c.tableName = name
		return nil
	})
}

// WithLogger sets the logger used to report progress. Defaults to a logger writing through the
// standard library log package.
func WithLogger(l Logger) RunnerOption {
	return configFunc(func(c *config) error {
		if l == nil {
			return errors.New("logger must not be nil")
		}
		c.logger = l
		return nil
	})
}

// WithVerbose enables verbose logging: the raw driver result of every update and the rule set
// before a run.
func WithVerbose(b bool) RunnerOption {
	return configFunc(func(c *config) error {
		c.verbose = b
		return nil
	})
}

// WithTransaction wraps all rule updates of a run in a single transaction. A failing rule rolls
// back every rule of the run.
//
// By default each rule commits on its own and a failure may leave earlier rules applied.
func WithTransaction(b bool) RunnerOption {
	return configFunc(func(c *config) error {
		c.useTx = b
		return nil
	})
}

// WithStrict counts the rows matching the old email before each update and fails with
// [ErrDuplicateEmail] instead of rewriting more than one row.
func WithStrict(b bool) RunnerOption {
	return configFunc(func(c *config) error {
		c.strict = b
		return nil
	})
}

// WithSessionLocker enables locking using the provided SessionLocker. The lock is held on the
// run's connection from before the first update until the connection is released.
//
// If WithSessionLocker is not called, locking is disabled.
func WithSessionLocker(locker lock.SessionLocker) RunnerOption {
	return configFunc(func(c *config) error {
		if c.lockEnabled {
			return errors.New("lock already enabled")
		}
		if locker == nil {
			return errors.New("session locker must not be nil")
		}
		c.lockEnabled = true
		c.sessionLocker = locker
		return nil
	})
}

// withRules replaces the rewrite rules. The rule set is fixed for users of the package; tests
// use this to exercise failure paths.
func withRules(rules ...Rule) RunnerOption {
	return configFunc(func(c *config) error {
		c.rules = rules
		return nil
	})
}

type config struct {
	tableName string
	rules     []Rule
	logger    Logger
	verbose   bool
	useTx     bool
	strict    bool

	lockEnabled   bool
	sessionLocker lock.SessionLocker
}

type configFunc func(*config) error

func (f configFunc) apply(cfg *config) error {
	return f(cfg)
}
