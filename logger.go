package bucketsort

import (
	"context"
	"fmt"
	"log"
	"strings"
)

type nopLogger struct{}

func (nopLogger) Debug(context.Context, string, ...any) {}
func (nopLogger) Info(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, string, ...any) {}

// StdLogger writes events to a standard library logger as "LEVEL msg key=value ..." lines
type StdLogger struct {
	l     *log.Logger
	debug bool
}

// NewStdLogger returns a Logger backed by l, or by log.Default() when l is nil.
// Debug events are only written when debug is true.
func NewStdLogger(l *log.Logger, debug bool) *StdLogger {
	if l == nil {
		l = log.Default()
	}
	return &StdLogger{l: l, debug: debug}
}

func (s *StdLogger) Debug(_ context.Context, msg string, keyvals ...any) {
	if s.debug {
		s.output("DEBUG", msg, keyvals)
	}
}

func (s *StdLogger) Info(_ context.Context, msg string, keyvals ...any) {
	s.output("INFO", msg, keyvals)
}

func (s *StdLogger) Error(_ context.Context, msg string, keyvals ...any) {
	s.output("ERROR", msg, keyvals)
}

func (s *StdLogger) output(level, msg string, keyvals []any) {
	var b strings.Builder
	b.WriteString(level)
	b.WriteByte(' ')
	b.WriteString(msg)
	for i := 0; i < len(keyvals); i += 2 {
		if i+1 < len(keyvals) {
			fmt.Fprintf(&b, " %v=%v", keyvals[i], keyvals[i+1])
		} else {
			fmt.Fprintf(&b, " %v=<missing>", keyvals[i])
		}
	}
	s.l.Print(b.String())
}
