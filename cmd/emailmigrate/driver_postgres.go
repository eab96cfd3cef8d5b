//go:build !no_postgres

package main

import (
	// Import the pgx driver, registered as "pgx". Also serves redshift.
	_ "github.com/jackc/pgx/v5/stdlib"
)
