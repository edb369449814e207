package runner

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
)

func (r *Runner) command(argv []string) *exec.Cmd {
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Dir = r.dir
	if len(r.env) > 0 {
		cmd.Env = append(os.Environ(), r.env...)
	}
	cmd.Stderr = r.stderr
	return cmd
}

// launchDetached starts argv without waiting for it. The child inherits
// the runner's stdout and stderr; its exit status is never observed and
// the runner moves on while it may still be running.
func (r *Runner) launchDetached(argv []string) error {
	if len(argv) == 0 || argv[0] == "" {
		return fmt.Errorf("empty command")
	}

	cmd := r.command(argv)
	cmd.Stdout = r.stdout
	return cmd.Start()
}

// launchAndAwaitPipe connects left's stdout to right's stdin through an
// OS pipe and blocks until right exits. Right's stdout is awaited but
// discarded. Left is reaped in the background; only right gates the
// batch's progress, and neither stage's exit status is consulted.
func (r *Runner) launchAndAwaitPipe(leftArgv, rightArgv []string) error {
	if len(leftArgv) == 0 || leftArgv[0] == "" {
		return fmt.Errorf("empty pipe stage")
	}
	if len(rightArgv) == 0 || rightArgv[0] == "" {
		return fmt.Errorf("empty pipe stage")
	}

	pr, pw, err := os.Pipe()
	if err != nil {
		return err
	}

	left := r.command(leftArgv)
	left.Stdout = pw

	right := r.command(rightArgv)
	right.Stdin = pr
	right.Stdout = io.Discard

	if err := left.Start(); err != nil {
		pw.Close()
		pr.Close()
		return err
	}
	if err := right.Start(); err != nil {
		pw.Close()
		pr.Close()
		go left.Wait()
		return err
	}

	// The children hold their own copies of the pipe ends. Close ours so
	// right sees EOF once left exits.
	pw.Close()
	pr.Close()

	go left.Wait()

	if err := right.Wait(); err != nil {
		// A nonzero exit is completion, not failure.
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil
		}
		return err
	}
	return nil
}
