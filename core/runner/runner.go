// Package runner executes parsed command directives: detached launches
// for plain commands, a blocking stdout-to-stdin bridge for piped pairs,
// and wall-clock delays between lines.
package runner

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/afero"

	"github.com/msjuck/teemo/core/config"
	"github.com/msjuck/teemo/core/directive"
)

// Runner executes a directive file strictly sequentially: trace the line,
// parse it, dispatch it, sleep out any "@" delay, move on. Any failure
// aborts the remaining batch; earlier lines have already run and detached
// children from them are not rolled back.
type Runner struct {
	trace      Trace
	stdout     io.Writer
	stderr     io.Writer
	stripDelay bool
	dir        string
	env        []string

	// sleep is swapped out by tests.
	sleep func(time.Duration)
}

// New builds a Runner for the given configuration. A nil trace discards
// diagnostics.
func New(cfg *config.Configuration, trace Trace, stdout, stderr io.Writer) *Runner {
	if trace == nil {
		trace = NopTrace
	}
	return &Runner{
		trace:      trace,
		stdout:     stdout,
		stderr:     stderr,
		stripDelay: cfg.StripDelaySuffix,
		dir:        cfg.WorkingDir,
		env:        cfg.Environment,
		sleep:      time.Sleep,
	}
}

// RunFile reads the directive file at path and executes it line by line.
func (r *Runner) RunFile(fsys afero.Fs, path string) error {
	r.trace.Emitf("[start] %s", path)

	contents, err := afero.ReadFile(fsys, path)
	if err != nil {
		return err
	}

	for _, line := range directive.Split(string(contents)) {
		if err := r.runLine(line); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) runLine(line directive.Line) error {
	r.trace.Emitf("[line] [ %s ]", line.Text)

	d, err := directive.Parse(line.Text)
	if err != nil {
		return fmt.Errorf("line %d: %w", line.Number, err)
	}

	if d.Piped() {
		r.trace.Emitf("[exec] %v | %v", d.Argv, d.PipeArgv)
		err = r.launchAndAwaitPipe(d.Argv, d.PipeArgv)
	} else {
		argv := d.Argv
		if r.stripDelay && d.HasDelay {
			argv = strings.Split(directive.StripDelaySuffix(d.Raw), " ")
		}
		r.trace.Emitf("[exec] %v", argv)
		err = r.launchDetached(argv)
	}
	if err != nil {
		return fmt.Errorf("line %d: %w", line.Number, err)
	}

	if d.HasDelay {
		r.trace.Emitf("[wait] %gs", d.Delay)
		r.sleep(time.Duration(d.Delay * float64(time.Second)))
	}
	return nil
}
