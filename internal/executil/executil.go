// internal/executil/executil.go
package executil

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Runner abstracts subprocess execution so callers can swap in a dry-run
// printer or a test double in place of real command invocations.
type Runner interface {
	// Run executes the command with inherited stdout/stderr.
	Run(ctx context.Context, name string, args ...string) error
	// Output executes the command and returns its captured stdout.
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExecRunner runs commands for real via os/exec.
type ExecRunner struct {
	Dir      string            // working directory; empty means inherit
	ExtraEnv map[string]string // appended to os.Environ()
	Stdout   io.Writer         // defaults to os.Stdout
	Stderr   io.Writer         // defaults to os.Stderr
}

// New returns an ExecRunner with inherited stdio.
func New() *ExecRunner {
	return &ExecRunner{Stdout: os.Stdout, Stderr: os.Stderr}
}

func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	cmd := r.command(ctx, name, args...)
	cmd.Stdout = r.stdout()
	cmd.Stderr = r.stderr()

	fmt.Fprintf(r.stdout(), "Running%s: %s %s\n", r.prefix(), name, QuoteArgs(args))
	return mapRunError(cmd.Run(), name, args)
}

func (r *ExecRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := r.command(ctx, name, args...)

	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = r.stderr()

	if err := mapRunError(cmd.Run(), name, args); err != nil {
		return nil, err
	}
	return stdout.Bytes(), nil
}

func (r *ExecRunner) command(ctx context.Context, name string, args ...string) *exec.Cmd {
	if ctx == nil {
		ctx = context.Background()
	}
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = r.Dir
	cmd.Env = os.Environ()
	for k, v := range r.ExtraEnv {
		cmd.Env = append(cmd.Env, k+"="+v)
	}
	return cmd
}

func (r *ExecRunner) prefix() string {
	if r.Dir != "" {
		return " in " + r.Dir
	}
	return ""
}

func (r *ExecRunner) stdout() io.Writer {
	if r.Stdout != nil {
		return r.Stdout
	}
	return os.Stdout
}

func (r *ExecRunner) stderr() io.Writer {
	if r.Stderr != nil {
		return r.Stderr
	}
	return os.Stderr
}

// mapRunError decorates exec failures with the full command line and, when
// available, the exit status. Context cancellations/timeouts show clearly.
func mapRunError(err error, name string, args []string) error {
	if err == nil {
		return nil
	}
	fullCmd := name + " " + QuoteArgs(args)

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return fmt.Errorf("command failed (exit=%d): %s: %w", exitErr.ExitCode(), fullCmd, err)
	}
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("command canceled: %s", fullCmd)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("command timed out: %s", fullCmd)
	}
	return fmt.Errorf("failed to run command: %s: %w", fullCmd, err)
}

// DryRunner prints the commands that would run without executing anything.
type DryRunner struct {
	Out io.Writer // defaults to os.Stdout
}

func (d DryRunner) Run(_ context.Context, name string, args ...string) error {
	fmt.Fprintf(d.out(), "[DRY RUN] %s %s\n", name, QuoteArgs(args))
	return nil
}

func (d DryRunner) Output(_ context.Context, name string, args ...string) ([]byte, error) {
	fmt.Fprintf(d.out(), "[DRY RUN] %s %s\n", name, QuoteArgs(args))
	return nil, nil
}

func (d DryRunner) out() io.Writer {
	if d.Out != nil {
		return d.Out
	}
	return os.Stdout
}

// QuoteArgs returns a printable, shell-safe representation of args.
func QuoteArgs(args []string) string {
	quoted := make([]string, len(args))
	for i, a := range args {
		if a == "" || strings.ContainsAny(a, " \t\n\"'`$\\*?[]{}()<>|&;") {
			a = "'" + strings.ReplaceAll(a, "'", `'\''`) + "'"
		}
		quoted[i] = a
	}
	return strings.Join(quoted, " ")
}
