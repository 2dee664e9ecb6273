package pyext

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"

	"github.com/contriboss/python-extension-go/ctxlog"
)

var (
	execCommandContext = exec.CommandContext
	execLookPath       = exec.LookPath
)

// Runner executes toolchain commands.
//
// Run must block until the process has exited and return a non-nil error
// for any non-zero exit status.
type Runner interface {
	Run(ctx context.Context, cmd Command) error
}

// RunnerFunc adapts a function to the Runner interface.
type RunnerFunc func(ctx context.Context, cmd Command) error

// Run calls f(ctx, cmd).
func (f RunnerFunc) Run(ctx context.Context, cmd Command) error {
	return f(ctx, cmd)
}

// ExecRunner runs commands as child processes.
//
// The toolchain's standard streams are passed straight through so its own
// diagnostics are what the user sees on failure. Nil writers default to
// os.Stdout and os.Stderr.
type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecRunner returns an ExecRunner wired to the process's standard streams.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{Stdout: os.Stdout, Stderr: os.Stderr}
}

// Run starts cmd in cmd.Dir and waits for it to exit.
//
// A process that ran and exited non-zero yields an error carrying its exit
// code (see mg.ExitStatus). A process that could not be started yields a
// plain error.
func (r *ExecRunner) Run(ctx context.Context, cmd Command) error {
	log := ctxlog.FromContext(ctx)

	c := execCommandContext(ctx, cmd.Name, cmd.Args...)
	c.Dir = cmd.Dir

	// Set environment variables
	c.Env = c.Environ()
	for key, value := range cmd.Env {
		c.Env = append(c.Env, fmt.Sprintf("%s=%s", key, value))
	}

	c.Stdin = os.Stdin
	c.Stdout = r.Stdout
	if c.Stdout == nil {
		c.Stdout = os.Stdout
	}
	c.Stderr = r.Stderr
	if c.Stderr == nil {
		c.Stderr = os.Stderr
	}

	log.Debug("exec", "command", cmd.String(), "dir", cmd.Dir)

	err := c.Run()
	if err == nil {
		return nil
	}
	if sh.CmdRan(err) {
		code := sh.ExitStatus(err)
		return mg.Fatalf(code, `running "%s" failed with exit code %d`, cmd.String(), code)
	}
	return fmt.Errorf(`failed to run "%s": %w`, cmd.String(), err)
}
