package emailmigrate_test

import (
	"testing"

	"github.com/devopsacademy/emailmigrate"
	"github.com/stretchr/testify/require"
)

func TestResolveDialect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		names []string
		want  emailmigrate.Dialect
	}{
		{[]string{"mysql"}, emailmigrate.DialectMySQL},
		{[]string{"MySQL"}, emailmigrate.DialectMySQL},
		{[]string{"mymysql"}, emailmigrate.DialectMySQL},
		{[]string{"mariadb"}, emailmigrate.DialectMySQL},
		{[]string{"pgx"}, emailmigrate.DialectPostgres},
		{[]string{"postgresql"}, emailmigrate.DialectPostgres},
		{[]string{"file"}, emailmigrate.DialectSQLite3},
		{[]string{"sqlserver"}, emailmigrate.DialectMSSQL},
		{[]string{"libsql"}, emailmigrate.DialectTurso},
		{[]string{"ch"}, emailmigrate.DialectClickHouse},
		{[]string{"unknown", "tidb"}, emailmigrate.DialectTiDB},
		{[]string{"", "sp"}, emailmigrate.DialectSpanner},
		{[]string{"ydb"}, emailmigrate.DialectYdB},
		{[]string{"vertica"}, emailmigrate.DialectVertica},
		{[]string{"rs"}, emailmigrate.DialectRedshift},
	}
	for _, tt := range tests {
		got, err := emailmigrate.ResolveDialect(tt.names...)
		require.NoError(t, err, tt.names)
		require.Equal(t, tt.want, got, tt.names)
	}
}

func TestResolveDialectFail(t *testing.T) {
	t.Parallel()

	dialect, err := emailmigrate.ResolveDialect("fail", "duckdb")
	require.Empty(t, dialect)
	require.EqualError(t, err, `failed to resolve scheme names or aliases to a dialect: "fail,duckdb"`)
	_, err = emailmigrate.ResolveDialect()
	require.Error(t, err)
}
