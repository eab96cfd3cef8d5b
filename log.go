package emailmigrate

import (
	std "log"
)

// Logger is the logger used by a Runner to report progress.
type Logger interface {
	Printf(format string, v ...any)
}

// stdLogger is a default logger that outputs to a stdlib's log.std logger.
type stdLogger struct{}

var _ Logger = (*stdLogger)(nil)

func (*stdLogger) Printf(format string, v ...any) { std.Printf(format, v...) }

// NopLogger returns a logger that discards all logged output.
func NopLogger() Logger {
	return &nopLogger{}
}

type nopLogger struct{}

var _ Logger = (*nopLogger)(nil)

func (*nopLogger) Printf(format string, v ...any) {}
