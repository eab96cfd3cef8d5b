package lock

import (
	"errors"
	"fmt"
	"hash/crc64"
	"time"
)

const (
	// DefaultLockName is the name of the MySQL named lock.
	DefaultLockName = "emailmigrate"

	// Default values for the lock (time to wait for the lock to be acquired) and unlock (time to
	// wait for the lock to be released) durations.
	DefaultLockDuration   time.Duration = 1 * time.Minute
	DefaultUnlockDuration time.Duration = 1 * time.Minute

	defaultPollInterval = 1 * time.Second
)

// DefaultLockID is the Postgres advisory lock key: the crc64 hash of DefaultLockName.
var DefaultLockID = int64(crc64.Checksum([]byte(DefaultLockName), crc64.MakeTable(crc64.ECMA)))

// SessionLockerOption is used to configure a SessionLocker.
type SessionLockerOption interface {
	apply(*sessionLockerConfig) error
}

// WithLockName sets the name of the lock. Used by MySQL, which locks on strings.
//
// If WithLockName is not called, DefaultLockName is used.
func WithLockName(name string) SessionLockerOption {
	return sessionLockerConfigFunc(func(c *sessionLockerConfig) error {
		if name == "" {
			return errors.New("lock name must not be empty")
		}
		// MySQL rejects names longer than 64 characters.
		if len(name) > 64 {
			return fmt.Errorf("lock name must be at most 64 characters: %q", name)
		}
		c.lockName = name
		return nil
	})
}

// WithLockID sets the lock ID. Used by Postgres, which locks on integers.
//
// If WithLockID is not called, DefaultLockID is used.
func WithLockID(lockID int64) SessionLockerOption {
	return sessionLockerConfigFunc(func(c *sessionLockerConfig) error {
		c.lockID = lockID
		return nil
	})
}

// WithLockDuration sets the max duration to wait for the lock to be acquired.
func WithLockDuration(duration time.Duration) SessionLockerOption {
	return sessionLockerConfigFunc(func(c *sessionLockerConfig) error {
		if duration <= 0 {
			return fmt.Errorf("lock duration must be positive: %s", duration)
		}
		c.lockDuration = duration
		return nil
	})
}

// WithUnlockDuration sets the max duration to wait for the lock to be released.
func WithUnlockDuration(duration time.Duration) SessionLockerOption {
	return sessionLockerConfigFunc(func(c *sessionLockerConfig) error {
		if duration <= 0 {
			return fmt.Errorf("unlock duration must be positive: %s", duration)
		}
		c.unlockDuration = duration
		return nil
	})
}

type sessionLockerConfig struct {
	lockName       string
	lockID         int64
	lockDuration   time.Duration
	unlockDuration time.Duration
	pollInterval   time.Duration
}

func newSessionLockerConfig(opts []SessionLockerOption) (*sessionLockerConfig, error) {
	cfg := &sessionLockerConfig{
		lockName:       DefaultLockName,
		lockID:         DefaultLockID,
		lockDuration:   DefaultLockDuration,
		unlockDuration: DefaultUnlockDuration,
		pollInterval:   defaultPollInterval,
	}
	for _, opt := range opts {
		if err := opt.apply(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

var _ SessionLockerOption = (sessionLockerConfigFunc)(nil)

type sessionLockerConfigFunc func(*sessionLockerConfig) error

func (f sessionLockerConfigFunc) apply(cfg *sessionLockerConfig) error {
	return f(cfg)
}
