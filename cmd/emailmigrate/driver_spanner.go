//go:build !no_spanner

package main

import (
	_ "github.com/googleapis/go-sql-spanner"
)
