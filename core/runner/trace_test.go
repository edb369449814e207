package runner

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestConsoleTrace(t *testing.T) {
	old := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = old }()

	var buf bytes.Buffer
	tr := NewConsoleTrace(&buf, false)
	tr.Emitf("[exec] %v", []string{"echo", "hi"})

	assert.Equal(t, "[exec] [echo hi]\n", buf.String())
}

func TestConsoleTraceForcedColor(t *testing.T) {
	old := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = old }()

	var buf bytes.Buffer
	tr := NewConsoleTrace(&buf, true)
	tr.Emitf("[start] %s", "commands.txt")

	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "[start] commands.txt")
}

func TestNopTrace(t *testing.T) {
	// Must not panic; discards everything.
	NopTrace.Emitf("[line] %s", "anything")
}
