// Package logging provides the levelled logger shared by the game, the asset
// loaders and the command line tools.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
)

type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// DefaultLogger writes DEBUG and INFO lines to one writer and WARN and ERROR
// lines to another. DEBUG lines are dropped unless debug was set.
type DefaultLogger struct {
	debug bool
	tag   string
	out   *log.Logger
	err   *log.Logger
}

func New(prefix string, debug bool) *DefaultLogger {
	return NewWithWriters(prefix, debug, os.Stdout, os.Stderr)
}

func NewWithWriters(prefix string, debug bool, out, errOut io.Writer) *DefaultLogger {
	tag := ""
	if prefix != "" {
		tag = "[" + prefix + "] "
	}
	flags := log.LstdFlags | log.Lmicroseconds
	return &DefaultLogger{
		debug: debug,
		tag:   tag,
		out:   log.New(out, "", flags),
		err:   log.New(errOut, "", flags),
	}
}

// Nop returns a logger that discards everything.
func Nop() *DefaultLogger {
	return NewWithWriters("", false, io.Discard, io.Discard)
}

func (l *DefaultLogger) write(to *log.Logger, level, format string, args []any) {
	to.Printf("%s%s: %s", l.tag, level, fmt.Sprintf(format, args...))
}

func (l *DefaultLogger) Debugf(format string, args ...any) {
	if l.debug {
		l.write(l.out, "DEBUG", format, args)
	}
}

func (l *DefaultLogger) Infof(format string, args ...any) {
	l.write(l.out, "INFO", format, args)
}

func (l *DefaultLogger) Warnf(format string, args ...any) {
	l.write(l.err, "WARN", format, args)
}

func (l *DefaultLogger) Errorf(format string, args ...any) {
	l.write(l.err, "ERROR", format, args)
}
