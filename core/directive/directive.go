// Package directive parses batch command files: one shell command per
// line, with an optional "@<seconds>" delay suffix and an optional
// two-stage "left | right" pipe. There is no quoting, escaping or comment
// syntax; tokens are produced by naive whitespace splitting.
package directive

import (
	"fmt"
	"strconv"
	"strings"
)

// Line is a single non-empty line of a directive file along with its
// 1-based position in the original text.
type Line struct {
	Number int
	Text   string
}

// Split breaks a directive file into its non-empty lines, in file order.
// Blank lines are dropped entirely; they are not an error.
func Split(text string) []Line {
	var out []Line
	for i, raw := range strings.Split(text, "\n") {
		if raw == "" {
			continue
		}
		out = append(out, Line{Number: i + 1, Text: raw})
	}
	return out
}

// Directive is the decomposition of one directive line.
type Directive struct {
	// Raw is the original line text.
	Raw string

	// Argv is the stage-one argument vector. For a non-piped line this is
	// the whole line split on single space characters, empty tokens
	// preserved, so a "@10" delay suffix survives as a literal trailing
	// token. For a piped line it is the whitespace-split left half.
	Argv []string

	// PipeArgv is the stage-two argument vector, nil when the line has no
	// pipe.
	PipeArgv []string

	// Delay is the post-execution delay in seconds, valid iff HasDelay.
	Delay    float64
	HasDelay bool
}

// Piped reports whether the line carries a two-stage pipe.
func (d *Directive) Piped() bool { return d.PipeArgv != nil }

// Parse decomposes a single directive line.
//
// The delay is read from the raw line before the pipe split, so a line
// carrying both "@" and "|" keeps the "@N" text inside stage two's tokens
// while the delay still applies. A "|" as the very first character does
// not trigger the pipe; such a line runs as a single command.
//
// A malformed delay value is an error raised here, during parsing: the
// failing line's command is never launched, even though the delay itself
// would only have applied after execution.
func Parse(raw string) (Directive, error) {
	d := Directive{Raw: raw}

	// The delay is the exact substring between the first "@" and the next
	// "@" or end of line, no trimming.
	if segs := strings.Split(raw, "@"); len(segs) > 1 {
		delay, err := strconv.ParseFloat(segs[1], 64)
		if err != nil {
			return Directive{}, fmt.Errorf("bad delay %q: %w", segs[1], err)
		}
		d.Delay = delay
		d.HasDelay = true
	}

	if idx := strings.Index(raw, "|"); idx < 1 {
		d.Argv = strings.Split(raw, " ")
		return d, nil
	}

	halves := strings.SplitN(raw, "|", 2)
	d.Argv = strings.Fields(halves[0])
	d.PipeArgv = strings.Fields(halves[1])
	return d, nil
}

// StripDelaySuffix returns the line with everything from the first "@"
// removed, along with the spaces immediately before it. Used by runners
// configured to keep the delay marker out of the launched command's
// argument vector.
func StripDelaySuffix(raw string) string {
	idx := strings.Index(raw, "@")
	if idx < 0 {
		return raw
	}
	return strings.TrimRight(raw[:idx], " ")
}
