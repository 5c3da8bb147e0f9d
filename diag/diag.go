package diag

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"syscall"
	"time"
)

// Command is the only program the runner executes. It takes no arguments.
const Command = "hostname"

// DefaultTimeout bounds a run when the request does not set its own timeout.
const DefaultTimeout = 10 * time.Second

// waitDelay bounds how long output pipes are drained after the process is killed.
const waitDelay = time.Second

// ErrTimeout is reported when the command does not finish in time.
var ErrTimeout = errors.New("diagnostic command timed out")

// ErrSpawn is reported when the command cannot be started.
var ErrSpawn = errors.New("failed to start diagnostic command")

// Request is a diagnostic run request. Command and Args are informational:
// the runner always executes Command without arguments.
type Request struct {
	Command   string   `json:"command"`
	Args      []string `json:"args,omitempty"`
	TimeoutMs int      `json:"timeoutMs,omitempty"`
}

// Result is the outcome of a diagnostic run. ExitCode is nil when the command
// could not be started or timed out; Error is set in both cases.
type Result struct {
	ExitCode *int   `json:"exitCode"`
	Signal   *string `json:"signal"`
	Stdout   string  `json:"stdout"`
	Stderr   string  `json:"stderr"`
	Error    string  `json:"error,omitempty"`
}

// Runner executes the fixed diagnostic command.
type Runner struct {
	name    string
	args    []string
	timeout time.Duration
}

// Option configures a Runner.
type Option func(*Runner)

// WithTimeout sets the default timeout. Non-positive values keep DefaultTimeout.
func WithTimeout(timeout time.Duration) Option {
	return func(r *Runner) {
		if timeout > 0 {
			r.timeout = timeout
		}
	}
}

// NewRunner creates a Runner for Command.
func NewRunner(opts ...Option) *Runner {
	runner := &Runner{
		name:    Command,
		args:    nil,
		timeout: DefaultTimeout,
	}

	for _, apply := range opts {
		apply(runner)
	}

	return runner
}

// Run executes the command and reports its outcome. It never returns an error;
// failures are described by the Result.
func (r *Runner) Run(ctx context.Context, req Request) Result {
	timeout := r.timeout
	if req.TimeoutMs > 0 {
		timeout = time.Duration(req.TimeoutMs) * time.Millisecond
	}

	if req.Command != "" && req.Command != r.name {
		slog.Debug("diagnostic command override ignored",
			"requested", req.Command, "executed", r.name)
	}

	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(runCtx, r.name, r.args...) // #nosec G204 -- fixed command
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = waitDelay

	start := time.Now()
	err := cmd.Run()

	res := Result{
		ExitCode: nil,
		Signal:   nil,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Error:    "",
	}

	if timedOut(err, runCtx.Err()) {
		slog.Warn("diagnostic command timed out", "command", r.name, "timeout", timeout)

		res.Error = fmt.Errorf("%w after %s", ErrTimeout, timeout).Error()

		return res
	}

	var exitErr *exec.ExitError

	switch {
	case err == nil:
	case errors.As(err, &exitErr):
		if status, ok := exitErr.Sys().(syscall.WaitStatus); ok && status.Signaled() {
			signal := status.Signal().String()
			res.Signal = &signal

			slog.Warn("diagnostic command killed", "command", r.name, "signal", signal)

			return res
		}
	default:
		slog.Error("diagnostic command failed to start", "command", r.name, "error", err)

		res.Error = fmt.Errorf("%w: %w", ErrSpawn, err).Error()

		return res
	}

	code := cmd.ProcessState.ExitCode()
	res.ExitCode = &code

	slog.Info("diagnostic command finished",
		"command", r.name, "exit_code", code, "duration", time.Since(start))

	return res
}

// timedOut reports whether a run was cut short by its deadline. A command
// that exited cleanly just before the deadline fired still counts as done.
func timedOut(runErr, ctxErr error) bool {
	return runErr != nil && errors.Is(ctxErr, context.DeadlineExceeded)
}
