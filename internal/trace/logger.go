// Package trace provides the progress logger handed to the encoders.
package trace

import (
	"fmt"
	"io"
)

// Logger writes line-oriented progress messages to the wrapped writer.
// A nil *Logger discards everything.
type Logger struct {
	io.Writer
}

// New returns a Logger writing to w.
func New(w io.Writer) *Logger {
	return &Logger{Writer: w}
}

func (l *Logger) Println(a ...any) {
	if l != nil && l.Writer != nil {
		fmt.Fprintln(l, a...)
	}
}

func (l *Logger) Printf(format string, a ...any) {
	if l != nil && l.Writer != nil {
		fmt.Fprintf(l, format+"\n", a...)
	}
}
