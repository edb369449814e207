package runner

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Trace receives the runner's diagnostic lines. The output is purely
// observational: nothing in the run depends on it and its format is not
// stable.
type Trace interface {
	Emitf(format string, args ...interface{})
}

// NopTrace discards every line.
var NopTrace Trace = nopTrace{}

type nopTrace struct{}

func (nopTrace) Emitf(string, ...interface{}) {}

type consoleTrace struct {
	out io.Writer
	tag *color.Color
}

// NewConsoleTrace writes trace lines to w. With forceColor the lines are
// always colorized; otherwise the package-wide color default applies,
// which fatih/color derives from the process's own stdout, not from w.
func NewConsoleTrace(w io.Writer, forceColor bool) Trace {
	tag := color.New(color.FgCyan)
	if forceColor {
		tag.EnableColor()
	}
	return &consoleTrace{out: w, tag: tag}
}

func (t *consoleTrace) Emitf(format string, args ...interface{}) {
	fmt.Fprintln(t.out, t.tag.Sprintf(format, args...))
}
