package main

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/devopsacademy/emailmigrate"
)

const warningPrefix = "warning: "

// apexLogger reports runner progress through apex/log.
type apexLogger struct {
	*log.Logger
}

var _ emailmigrate.Logger = (*apexLogger)(nil)

func newLogger(w io.Writer, noColor, verbose bool) *apexLogger {
	var handler log.Handler = cli.New(w)
	if noColor {
		handler = &plainHandler{w: w}
	}
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return &apexLogger{
		Logger: &log.Logger{Handler: handler, Level: level},
	}
}

func (l *apexLogger) Printf(format string, v ...any) {
	if msg, ok := strings.CutPrefix(fmt.Sprintf(format, v...), warningPrefix); ok {
		l.Logger.Warn(msg)
		return
	}
	l.Logger.Infof(format, v...)
}

// plainHandler writes one uncolored line per entry.
type plainHandler struct {
	mu sync.Mutex
	w  io.Writer
}

func (h *plainHandler) HandleLog(e *log.Entry) error {
	names := e.Fields.Names()

	h.mu.Lock()
	defer h.mu.Unlock()

	if e.Level >= log.WarnLevel {
		fmt.Fprintf(h.w, "%s: ", e.Level)
	}
	fmt.Fprint(h.w, e.Message)
	for _, name := range names {
		fmt.Fprintf(h.w, " %s=%v", name, e.Fields.Get(name))
	}
	_, err := fmt.Fprintln(h.w)
	return err
}
