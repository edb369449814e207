package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCommand executes the CLI against fsys and captures its output.
func runCommand(t *testing.T, fsys afero.Fs, args ...string) (string, error) {
	t.Helper()

	oldFs := appFs
	appFs = fsys
	defer func() { appFs = oldFs }()

	if args == nil {
		args = []string{}
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRootNoArgs(t *testing.T) {
	out, err := runCommand(t, afero.NewMemMapFs())

	// Usage goes to stdout and the exit is clean; no file is touched.
	require.NoError(t, err)
	assert.Contains(t, out, "usage: teemo <commandfile>")
}

func TestRootRunsFirstArgOnly(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "a.txt", []byte("true\n"), 0644))

	// The second argument names no file; it is ignored entirely.
	_, err := runCommand(t, fsys, "a.txt", "missing.txt", "--trace", "off")
	assert.NoError(t, err)
}

func TestRootMissingFile(t *testing.T) {
	_, err := runCommand(t, afero.NewMemMapFs(), "missing.txt", "--trace", "off")
	assert.Error(t, err)
}

func TestRunTrace(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "a.txt", []byte("true extra @0\n"), 0644))

	out, err := runCommand(t, fsys, "run", "a.txt", "--trace", "on")
	require.NoError(t, err)
	assert.Contains(t, out, "[exec]")
	assert.Contains(t, out, "true extra @0")
}

func TestRunStripDelayFlag(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "a.txt", []byte("true extra @0\n"), 0644))

	out, err := runCommand(t, fsys, "run", "a.txt", "--trace", "on", "--strip-delay")
	require.NoError(t, err)
	assert.Contains(t, out, "[true extra]")
	assert.NotContains(t, out, "[true extra @0]")
}

func TestCheck(t *testing.T) {
	fsys := afero.NewMemMapFs()
	script := `echo "HELLO"
echo "HELLO" @10
ping google.com -t 256

echo "WORLD" | cat
`
	require.NoError(t, afero.WriteFile(fsys, "commands.txt", []byte(script), 0644))

	out, err := runCommand(t, fsys, "check", "commands.txt")
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir(filepath.Join("testdata", "golden")),
		goldie.WithDiffEngine(goldie.ColoredDiff),
	)
	g.Assert(t, "check", []byte(out))
}

func TestCheckBadDelay(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "commands.txt", []byte("echo hi @ten\n"), 0644))

	_, err := runCommand(t, fsys, "check", "commands.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 1")
}

func TestInit(t *testing.T) {
	fsys := afero.NewMemMapFs()

	_, err := runCommand(t, fsys, "init", "work")
	require.NoError(t, err)

	_, err = fsys.Stat("work/config.yaml")
	assert.NoError(t, err)
	_, err = fsys.Stat("work/commands.txt")
	assert.NoError(t, err)
}
