package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/devopsacademy/emailmigrate/internal/cfg"
	"github.com/devopsacademy/emailmigrate/internal/testdb"
	"github.com/stretchr/testify/require"
)

func TestFirstNonEmpty(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected string
	}{
		{
			name:     "no values",
			input:    []string{},
			expected: "",
		},
		{
			name:     "all empty values",
			input:    []string{"", "", ""},
			expected: "",
		},
		{
			name:     "single non-empty value in middle",
			input:    []string{"", "value", ""},
			expected: "value",
		},
		{
			name:     "multiple non-empty values",
			input:    []string{"first", "second", "third"},
			expected: "first",
		},
		{
			name:     "only one value, non-empty",
			input:    []string{"value"},
			expected: "value",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, firstNonEmpty(tt.input...))
		})
	}
}

func TestRunCommand(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	restoreConfig(t)

	dbPath := newSQLiteFile(t)
	stdout, _, err := runCLI(t, "-dialect", "sqlite3", "-database", dbPath, "-env", "none")
	require.NoError(t, err)
	out := stdout.String()
	require.Contains(t, out, "connected to database\n")
	require.Contains(t, out, "updated admin email (rows affected: 1)\n")
	require.Contains(t, out, "updated sami email (rows affected: 1)\n")
	require.Contains(t, out, "updated rami email (rows affected: 1)\n")
	require.Contains(t, out, "Current users in database:\n")
	require.Contains(t, out, "rami@devopsacademy.com")
	require.NotContains(t, out, "@cliniquejuriste.com")
	require.Contains(t, out, "all email updates completed\n")
	require.Contains(t, out, "you can now login with: admin@devopsacademy.com\n")

	// Flags may follow the command.
	stdout, _, err = runCLI(t, "status", "-dialect", "sqlite3", "-database", dbPath, "-env", "none", "-json")
	require.NoError(t, err)
	var status []map[string]any
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &status))
	require.Len(t, status, 3)
	for _, s := range status {
		require.Equal(t, "applied", s["state"])
	}
}

func TestRunJSON(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	restoreConfig(t)

	dbPath := newSQLiteFile(t)
	stdout, stderr, err := runCLI(t, "-json", "-tx", "-dialect", "sqlite3", "-database", dbPath, "-env", "none")
	require.NoError(t, err)
	var got struct {
		Rules []struct {
			Name         string `json:"name"`
			RowsAffected int64  `json:"rows_affected"`
		} `json:"rules"`
		Users []struct {
			ID    int64  `json:"id"`
			Email string `json:"email"`
		} `json:"users"`
	}
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &got))
	require.Len(t, got.Rules, 3)
	require.Equal(t, "admin", got.Rules[0].Name)
	require.Len(t, got.Users, 3)
	require.Equal(t, "admin@devopsacademy.com", got.Users[0].Email)
	// Progress moves to stderr.
	require.Contains(t, stderr.String(), "connected to database")

	stdout, _, err = runCLI(t, "users", "-json", "-dialect", "sqlite3", "-database", dbPath, "-env", "none")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &got.Users))
	require.Len(t, got.Users, 3)
}

func TestRunErrors(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	restoreConfig(t)

	_, _, err := runCLI(t, "-env", "none", "frobnicate")
	require.EqualError(t, err, `unknown command: "frobnicate"`)

	_, _, err = runCLI(t, "-env", "none", "run", "extra")
	require.EqualError(t, err, `too many arguments: ["extra"]`)

	_, _, err = runCLI(t, "-env", filepath.Join(t.TempDir(), "missing.env"), "version")
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to load env file")

	_, _, err = runCLI(t, "-h")
	require.ErrorIs(t, err, flag.ErrHelp)

	// Nothing listens on port 1.
	_, _, err = runCLI(t, "-env", "none", "-dialect", "mysql", "-host", "127.0.0.1", "-port", "1")
	require.Error(t, err)
	require.Contains(t, err.Error(), "connecting:")

	dbPath := newSQLiteFile(t)
	_, _, err = runCLI(t, "-env", "none", "-dialect", "sqlite3", "-database", dbPath, "-lock")
	require.EqualError(t, err, "locking is not supported for dialect sqlite3")

	_, _, err = runCLI(t, "-env", "none", "-dialect", "spanner")
	require.EqualError(t, err, "dialect spanner requires a dbstring")
}

func TestEnvCommand(t *testing.T) {
	before := cfg.EMAILMIGRATEDATABASE
	t.Run("env_file", func(t *testing.T) {
		t.Cleanup(func() { _ = os.Unsetenv("EMAILMIGRATE_DATABASE") })
		restoreConfig(t)

		envFile := filepath.Join(t.TempDir(), "test.env")
		require.NoError(t, os.WriteFile(envFile, []byte("EMAILMIGRATE_DATABASE=legal_from_env_file\n"), 0o644))
		stdout, _, err := runCLI(t, "-env", envFile, "env")
		require.NoError(t, err)
		require.Contains(t, stdout.String(), `EMAILMIGRATE_DATABASE="legal_from_env_file"`)
		require.Contains(t, stdout.String(), `EMAILMIGRATE_PASSWORD="********"`)
	})
	// Values loaded by the previous run must not leak into later ones.
	require.Equal(t, before, cfg.EMAILMIGRATEDATABASE)

	restoreConfig(t)
	stdout, _, err := runCLI(t, "-env", "none", "version")
	require.NoError(t, err)
	require.Contains(t, stdout.String(), "emailmigrate version: ")
}

// restoreConfig resets the cfg package variables once the test is done. run loads the environment
// into them, and a later Load keeps their current values as defaults.
func restoreConfig(t *testing.T) {
	t.Helper()

	saved := []struct {
		ptr *string
		val string
	}{
		{&cfg.EMAILMIGRATEDIALECT, cfg.EMAILMIGRATEDIALECT},
		{&cfg.EMAILMIGRATEDRIVER, cfg.EMAILMIGRATEDRIVER},
		{&cfg.EMAILMIGRATEDBSTRING, cfg.EMAILMIGRATEDBSTRING},
		{&cfg.EMAILMIGRATEHOST, cfg.EMAILMIGRATEHOST},
		{&cfg.EMAILMIGRATEPORT, cfg.EMAILMIGRATEPORT},
		{&cfg.EMAILMIGRATEUSER, cfg.EMAILMIGRATEUSER},
		{&cfg.EMAILMIGRATEPASSWORD, cfg.EMAILMIGRATEPASSWORD},
		{&cfg.EMAILMIGRATEDATABASE, cfg.EMAILMIGRATEDATABASE},
		{&cfg.EMAILMIGRATETABLENAME, cfg.EMAILMIGRATETABLENAME},
		{&cfg.EMAILMIGRATENOCOLOR, cfg.EMAILMIGRATENOCOLOR},
	}
	t.Cleanup(func() {
		for _, s := range saved {
			*s.ptr = s.val
		}
	})
}

func runCLI(t *testing.T, args ...string) (stdout, stderr *bytes.Buffer, err error) {
	t.Helper()

	stdout, stderr = new(bytes.Buffer), new(bytes.Buffer)
	err = run(context.Background(), args, stdout, stderr)
	return stdout, stderr, err
}

func newSQLiteFile(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	db, cleanup, err := testdb.NewSQLite(dir)
	require.NoError(t, err)
	require.NoError(t, db.Close())
	cleanup()
	return filepath.Join(dir, "emailmigrate.db")
}
