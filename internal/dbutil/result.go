// Package dbutil holds small helpers for reporting database/sql results.
package dbutil

import (
	"database/sql"
	"fmt"
	"strings"
)

// RowsAffected returns the number of rows affected by res, or -1 when the driver does not report
// it.
func RowsAffected(res sql.Result) int64 {
	if res == nil {
		return -1
	}
	n, err := res.RowsAffected()
	if err != nil {
		return -1
	}
	return n
}

// FormatSQLResultInfo formats the result of a SQL operation into a string to use in logging:
// "rows affected: 1, last insert id: 2".
//
// Each detail is skipped if the driver does not support it. Returns an empty string if nothing is
// supported.
func FormatSQLResultInfo(res sql.Result) string {
	if res == nil {
		return ""
	}
	var details []string
	if rowsAffected, err := res.RowsAffected(); err == nil {
		details = append(details, fmt.Sprintf("rows affected: %d", rowsAffected))
	}
	if lastInsertID, err := res.LastInsertId(); err == nil && lastInsertID != 0 {
		details = append(details, fmt.Sprintf("last insert id: %d", lastInsertID))
	}
	return strings.Join(details, ", ")
}
