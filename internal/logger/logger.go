package logger

import (
	"fmt"
	"io"
	"log"
)

type Logger struct {
	l     *log.Logger
	debug bool
}

func New(l *log.Logger) *Logger {
	return &Logger{l: l}
}

// Discard returns a logger that drops everything. Used by tests and one-shot CLI runs.
func Discard() *Logger {
	return New(log.New(io.Discard, "", 0))
}

func (l *Logger) SetDebug(enabled bool) {
	l.debug = enabled
}

func (l *Logger) Writer() io.Writer {
	return l.l.Writer()
}

func (l *Logger) LogErrorf(format string, v ...any) {
	l.print("Error", format, v...)
}

func (l *Logger) LogWarnf(format string, v ...any) {
	l.print("Warn", format, v...)
}

func (l *Logger) LogInfo(format string, v ...any) {
	l.print("Info", format, v...)
}

func (l *Logger) LogDebug(format string, v ...any) {
	if !l.debug {
		return
	}

	l.print("Debug", format, v...)
}

func (l *Logger) print(level, format string, v ...any) {
	msg := fmt.Sprintf(format, v...)
	l.l.Printf("[%s]: %s\n", level, msg)
}
