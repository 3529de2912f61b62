// Package execshell implements the Executor: it drives a host shell to run
// one command, capturing merged stdout+stderr. It never interprets or
// inspects the captured bytes — that is the Comparator's job.
package execshell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/sirupsen/logrus"
	shellescape "gopkg.in/alessio/shellescape.v1"
)

// Executor runs shell commands through a configurable shell binary.
type Executor struct {
	// Shell is the interpreter binary, e.g. "/bin/sh".
	Shell string
	// ShellFlag is the flag that introduces the command string, e.g. "-c".
	ShellFlag string
	// Verbose, when true, echoes the shell-quoted command to Echo before
	// running it — the same pattern xexec.debugPrintCmd uses.
	Verbose bool
	// Echo receives the verbose command trace. Defaults to os.Stderr.
	Echo io.Writer
	Log  *logrus.Logger
}

// New creates an Executor with the given shell and flag.
func New(shell, shellFlag string) *Executor {
	return &Executor{Shell: shell, ShellFlag: shellFlag, Echo: os.Stderr}
}

// Result is the outcome of running one command.
type Result struct {
	Command  string
	ExitCode int
	Output   []byte
}

// Run executes command through the configured shell and returns its merged
// stdout+stderr. dir is the working directory for the child process: the
// Orchestrator holds it fixed at the invocation directory for the whole
// run. No timeout is applied and no stdin is fed to the child.
func (e *Executor) Run(ctx context.Context, dir, command string) (Result, error) {
	if e.Verbose {
		e.debugPrintCmd(command)
	}
	if e.Log != nil {
		e.Log.Debugf("executing: %s", command)
	}

	cmd := exec.CommandContext(ctx, e.Shell, e.ShellFlag, command)
	cmd.Dir = dir
	cmd.Stdin = nil
	cmd.Env = os.Environ()

	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf

	err := cmd.Run()

	exitCode := 0
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		} else {
			// A failure to even start the shell (missing binary, etc.) is an
			// operator-visible problem, not an ordinary nonzero exit — the
			// caller treats it as fatal.
			return Result{Command: command, Output: buf.Bytes()}, err
		}
	}

	return Result{Command: command, ExitCode: exitCode, Output: buf.Bytes()}, nil
}

// debugPrintCmd writes a shell-quoted trace of the command being run, the
// same convenience xexec.debugPrintCmd offers for interactive debugging.
func (e *Executor) debugPrintCmd(command string) {
	quoted := shellescape.Quote(command)
	fmt.Fprintf(e.Echo, "+ %s %s %s\n", e.Shell, e.ShellFlag, quoted)
}
