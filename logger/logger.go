package logger

import (
	"fmt"
	"io"
	"os"
)

// Logger writes diagnostic traces to a sink, usually stderr. A disabled
// logger keeps the same interface but drops everything, so callers never
// check whether --debug was given.
type Logger struct {
	out     io.Writer
	enabled bool
}

func Init(debug bool) *Logger {
	return &Logger{out: os.Stderr, enabled: debug}
}

// New returns an always-enabled logger writing to the given sink; used by tests.
func New(out io.Writer) *Logger {
	return &Logger{out: out, enabled: true}
}

func (l *Logger) Print(s string) {
	if !l.enabled {
		return
	}
	fmt.Fprintf(l.out, "[debug] %s\n", s)
}

func (l *Logger) Printf(s string, as ...interface{}) {
	if !l.enabled {
		return
	}
	l.Print(fmt.Sprintf(s, as...))
}

func (l *Logger) PrintError(source string, err error) {
	if !l.enabled {
		return
	}
	fmt.Fprintf(l.out, "[error] %s -> %s\n", source, err.Error())
}
