package emailmigrate

import (
	"fmt"
)

// Rule rewrites every user whose email equals Old to New.
type Rule struct {
	// Name is a short label used in progress output, such as "admin".
	Name string `json:"name"`
	Old  string `json:"old"`
	New  string `json:"new"`
}

func (r Rule) String() string {
	return fmt.Sprintf("%s: %s -> %s", r.Name, r.Old, r.New)
}

// DefaultRules returns the rewrite rules applied by a Runner, in order. The returned slice is a
// copy and may be modified by the caller.
func DefaultRules() []Rule {
	return []Rule{
		{Name: "admin", Old: "admin@cliniquejuriste.com", New: "admin@devopsacademy.com"},
		{Name: "sami", Old: "sami@cliniquejuriste.com", New: "sami@devopsacademy.com"},
		{Name: "rami", Old: "rami@cliniquejuriste.com", New: "rami@devopsacademy.com"},
	}
}

func validateRules(rules []Rule) error {
	if len(rules) == 0 {
		return ErrNoRules
	}
	seen := make(map[string]string, len(rules))
	for i, r := range rules {
		if r.Old == "" || r.New == "" {
			return fmt.Errorf("rule %d (%s): emails must not be empty", i+1, r.Name)
		}
		if r.Old == r.New {
			return fmt.Errorf("rule %d (%s): old and new email are the same: %q", i+1, r.Name, r.Old)
		}
		if prev, ok := seen[r.Old]; ok {
			return fmt.Errorf("rules %s and %s rewrite the same email: %q", prev, r.Name, r.Old)
		}
		seen[r.Old] = r.Name
	}
	return nil
}
