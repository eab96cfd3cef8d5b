// Package emailmigrate moves the legacy cliniquejuriste.com user addresses to devopsacademy.com.
//
// A [Runner] applies a fixed, ordered set of rewrite rules to the users table over a single
// scoped connection and lists the table afterwards:
//
//	db, err := sql.Open("mysql", dsn)
//	...
//	r, err := emailmigrate.NewRunner(emailmigrate.DialectMySQL, db)
//	...
//	res, err := r.Run(ctx)
package emailmigrate
