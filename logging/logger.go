package logging

import (
	"fmt"
	"io"
	"log"
)

// Logger writes leveled messages, each attributed to a source (a worker, a file or the runner),
// formatted as "source: level [LEVEL]: message".
type Logger struct {
	level int
	out   *log.Logger
}

// NewLogger produces a Logger which discards any message below level
func NewLogger(w io.Writer, level int) *Logger {
	return &Logger{level: level, out: log.New(w, "", log.LstdFlags)}
}

// Enabled returns true iff a message at level would be emitted
func (l *Logger) Enabled(level int) bool {
	return l != nil && level >= l.level
}

// Logf logs a formatted message from source at a given level
func (l *Logger) Logf(level int, source string, format string, args ...interface{}) {
	if !l.Enabled(level) {
		return
	}
	l.out.Printf("%s: level [%s]: %s", source, LogLevelToString(level), fmt.Sprintf(format, args...))
}
