package output

import (
	"strconv"

	"github.com/devopsacademy/emailmigrate"
	"github.com/devopsacademy/emailmigrate/internal/cfg"
)

// Users prints the users table under its heading.
func (p *Printer) Users(users []*emailmigrate.User) error {
	p.Println()
	p.Println("Current users in database:")
	data := TableData{Headers: []string{"id", "name", "email", "is_admin"}}
	for _, u := range users {
		data.Rows = append(data.Rows, []string{
			strconv.FormatInt(u.ID, 10),
			u.Name,
			u.Email,
			strconv.FormatBool(u.IsAdmin),
		})
	}
	return p.Table(data)
}

// Completed prints the closing lines of a successful run. The login hint is the new email of the
// first rule.
func (p *Printer) Completed(rules []emailmigrate.Rule) {
	p.Println()
	p.Println("all email updates completed")
	if len(rules) > 0 {
		p.Printf("you can now login with: %s\n", rules[0].New)
	}
}

// Status prints the state of every rule.
func (p *Printer) Status(status []*emailmigrate.RuleStatus) error {
	data := TableData{Headers: []string{"rule", "old email", "new email", "state", "old", "new"}}
	for _, s := range status {
		data.Rows = append(data.Rows, []string{
			s.Rule.Name,
			s.Rule.Old,
			s.Rule.New,
			string(s.State),
			strconv.FormatInt(s.OldCount, 10),
			strconv.FormatInt(s.NewCount, 10),
		})
	}
	return p.Table(data)
}

// Env prints the resolved environment variables.
func (p *Printer) Env(vars []cfg.EnvVar) {
	for _, v := range vars {
		p.Printf("%s=%q\n", v.Name, v.Value)
	}
}

// RunJSON is the JSON form of a run.
type RunJSON struct {
	Rules      []RuleJSON           `json:"rules"`
	Users      []*emailmigrate.User `json:"users"`
	DurationMS int64                `json:"duration_ms"`
	Error      string               `json:"error,omitempty"`
}

// RuleJSON is the JSON form of a single rule update.
type RuleJSON struct {
	Name         string `json:"name"`
	Old          string `json:"old"`
	New          string `json:"new"`
	State        string `json:"state"`
	RowsAffected int64  `json:"rows_affected"`
	DurationMS   int64  `json:"duration_ms"`
	Error        string `json:"error,omitempty"`
}

// ConvertResult converts a run result to its JSON form.
func ConvertResult(res *emailmigrate.Result) RunJSON {
	out := RunJSON{
		Rules:      make([]RuleJSON, 0, len(res.Rules)),
		Users:      res.Users,
		DurationMS: res.Duration.Milliseconds(),
	}
	if out.Users == nil {
		out.Users = []*emailmigrate.User{}
	}
	for _, r := range res.Rules {
		out.Rules = append(out.Rules, convertRule(r))
	}
	return out
}

// ConvertPartialError converts a failed run to its JSON form.
func ConvertPartialError(e *emailmigrate.PartialError) RunJSON {
	out := RunJSON{
		Rules: make([]RuleJSON, 0, len(e.Applied)+1),
		Users: []*emailmigrate.User{},
		Error: e.Error(),
	}
	for _, r := range e.Applied {
		out.Rules = append(out.Rules, convertRule(r))
	}
	if e.Failed != nil {
		out.Rules = append(out.Rules, convertRule(e.Failed))
	}
	return out
}

func convertRule(r *emailmigrate.RuleResult) RuleJSON {
	rule := RuleJSON{
		Name:         r.Rule.Name,
		Old:          r.Rule.Old,
		New:          r.Rule.New,
		State:        string(r.State),
		RowsAffected: r.RowsAffected,
		DurationMS:   r.Duration.Milliseconds(),
	}
	if r.Error != nil {
		rule.Error = r.Error.Error()
	}
	return rule
}
