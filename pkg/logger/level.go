package logger

import (
	"io"
	"log"
)

// Level orders messages by severity.
type Level int

const (
	LevelInfo Level = iota
	LevelWarning
	LevelError
)

// LevelLogger drops messages below a minimum level before handing them to
// the wrapped logger.
type LevelLogger struct {
	next Logger
	min  Level
}

// Filter wraps next so that only messages at min or above pass.
func Filter(next Logger, min Level) *LevelLogger {
	return &LevelLogger{next: next, min: min}
}

func (l *LevelLogger) Info(format string, args ...interface{}) {
	if l.min <= LevelInfo {
		l.next.Info(format, args...)
	}
}

func (l *LevelLogger) Warning(format string, args ...interface{}) {
	if l.min <= LevelWarning {
		l.next.Warning(format, args...)
	}
}

func (l *LevelLogger) Error(format string, args ...interface{}) {
	l.next.Error(format, args...)
}

func (l *LevelLogger) Close() error {
	return l.next.Close()
}

var _ Logger = (*LevelLogger)(nil)

// New builds the console logger used by the command line: everything when
// debug is set, warnings and errors otherwise.
func New(w io.Writer, debug bool) Logger {
	std := NewStandardLogger(log.New(w, "warpstore: ", 0))
	if debug {
		return Filter(std, LevelInfo)
	}
	return Filter(std, LevelWarning)
}
