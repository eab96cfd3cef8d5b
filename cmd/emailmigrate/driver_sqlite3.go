//go:build !no_sqlite3

package main

import (
	_ "modernc.org/sqlite"
)
