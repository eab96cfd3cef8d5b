package emailmigrate

import (
	"fmt"
	"time"
)

// State is a step of a run. A run moves through the states in order and stops at StateFailed on the
// first error.
type State string

const (
	StateConnecting    State = "connecting"
	StateQueryAll      State = "query_all"
	StateDisconnecting State = "disconnecting"
	StateDone          State = "done"
	StateFailed        State = "failed"
)

// StateUpdateRule returns the state of the n-th rule update, counting from 1.
func StateUpdateRule(n int) State {
	return State(fmt.Sprintf("update_rule_%d", n))
}

// User is a row of the users table. A NULL column is reported as its zero value.
type User struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
}

// RuleResult is the result of a single rule update.
//
// Note, the caller is responsible for checking the Error field. If it is not nil, the rule failed.
type RuleResult struct {
	Rule  Rule
	State State
	// RowsAffected is the number of rows rewritten by the rule, or -1 if the driver cannot report
	// it.
	RowsAffected int64
	Duration     time.Duration

	// Error is any error that occurred while running the rule.
	Error error
}

// Result is the result of a complete run.
type Result struct {
	Rules    []*RuleResult
	Users    []*User
	Duration time.Duration
}

// RuleState is the state of a rule as observed in the database.
type RuleState string

const (
	// RuleStatePending means at least one row still carries the old email.
	RuleStatePending RuleState = "pending"
	// RuleStateApplied means no row carries the old email and at least one carries the new one.
	RuleStateApplied RuleState = "applied"
	// RuleStateAbsent means neither email is present.
	RuleStateAbsent RuleState = "absent"
)

// RuleStatus is the status of a single rule.
type RuleStatus struct {
	Rule     Rule      `json:"rule"`
	State    RuleState `json:"state"`
	OldCount int64     `json:"old_count"`
	NewCount int64     `json:"new_count"`
}

func ruleState(oldCount, newCount int64) RuleState {
	switch {
	case oldCount > 0:
		return RuleStatePending
	case newCount > 0:
		return RuleStateApplied
	default:
		return RuleStateAbsent
	}
}
