package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/devopsacademy/emailmigrate"
	"github.com/devopsacademy/emailmigrate/internal/cfg"
	"github.com/stretchr/testify/require"
)

func TestTable(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := New(&buf, true)
	err := p.Table(TableData{
		Headers: []string{"id", "email"},
		Rows: [][]string{
			{"1", "admin@devopsacademy.com"},
			{"22", "x@example.com"},
		},
	})
	require.NoError(t, err)
	want := strings.Join([]string{
		"id   email",
		"──   ─────",
		"1    admin@devopsacademy.com",
		"22   x@example.com",
		"",
	}, "\n")
	require.Equal(t, want, buf.String())

	require.EqualError(t, p.Table(TableData{}), "headers slice cannot be empty")
	require.EqualError(t,
		p.Table(TableData{Headers: []string{"a"}, Rows: [][]string{{"1", "2"}}}),
		"each row must have the same number of columns as headers",
	)
}

func TestUsersAndCompleted(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := New(&buf, true)
	require.NoError(t, p.Users([]*emailmigrate.User{
		{ID: 1, Name: "Admin", Email: "admin@devopsacademy.com", IsAdmin: true},
		{ID: 2, Name: "Sami", Email: "sami@devopsacademy.com"},
	}))
	p.Completed(emailmigrate.DefaultRules())
	out := buf.String()
	require.Contains(t, out, "Current users in database:\n")
	require.Contains(t, out, "id   name    email                     is_admin\n")
	require.Contains(t, out, "1    Admin   admin@devopsacademy.com   true\n")
	require.Contains(t, out, "2    Sami    sami@devopsacademy.com    false\n")
	require.True(t, strings.HasSuffix(out,
		"\nall email updates completed\nyou can now login with: admin@devopsacademy.com\n"))
}

func TestStatusAndEnv(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := New(&buf, true)
	require.NoError(t, p.Status([]*emailmigrate.RuleStatus{
		{Rule: emailmigrate.DefaultRules()[0], State: emailmigrate.RuleStatePending, OldCount: 1},
	}))
	require.Contains(t, buf.String(), "admin@cliniquejuriste.com")
	require.Contains(t, buf.String(), "pending")

	buf.Reset()
	p.Env([]cfg.EnvVar{{Name: "EMAILMIGRATE_HOST", Value: "localhost"}})
	require.Equal(t, "EMAILMIGRATE_HOST=\"localhost\"\n", buf.String())
}

func TestJSON(t *testing.T) {
	t.Parallel()

	rules := emailmigrate.DefaultRules()
	res := &emailmigrate.Result{
		Rules: []*emailmigrate.RuleResult{
			{Rule: rules[0], State: emailmigrate.StateUpdateRule(1), RowsAffected: 1, Duration: 2 * time.Millisecond},
		},
		Duration: 5 * time.Millisecond,
	}
	var buf bytes.Buffer
	require.NoError(t, New(&buf, true).JSON(ConvertResult(res)))
	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.EqualValues(t, 5, got["duration_ms"])
	require.Equal(t, []any{}, got["users"])
	rule := got["rules"].([]any)[0].(map[string]any)
	require.Equal(t, "admin", rule["name"])
	require.Equal(t, "update_rule_1", rule["state"])
	require.EqualValues(t, 1, rule["rows_affected"])
	require.NotContains(t, rule, "error")

	partial := &emailmigrate.PartialError{
		Applied: res.Rules,
		Failed:  &emailmigrate.RuleResult{Rule: rules[1], State: emailmigrate.StateUpdateRule(2), RowsAffected: -1, Error: errors.New("boom")},
		Err:     errors.New("boom"),
	}
	out := ConvertPartialError(partial)
	require.Len(t, out.Rules, 2)
	require.Equal(t, "boom", out.Rules[1].Error)
	require.Equal(t, "partial email update error (state:update_rule_2,rule:sami): boom", out.Error)
}
