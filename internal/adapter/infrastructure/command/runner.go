// Package command provides the OS command runner adapter implementation.
package command

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"wifi-toggle/internal/pkg/logging"
	"wifi-toggle/internal/port"
)

// RunnerAdapter is an adapter that implements the CommandRunner port using os/exec.
type RunnerAdapter struct {
	timeout time.Duration
}

// Ensure RunnerAdapter implements the CommandRunner port
var _ port.CommandRunner = (*RunnerAdapter)(nil)

// NewRunnerAdapter creates a command runner. A zero timeout leaves commands unbounded.
func NewRunnerAdapter(timeout time.Duration) *RunnerAdapter {
	return &RunnerAdapter{timeout: timeout}
}

// ExitError is returned when a command ran but exited non-zero.
type ExitError struct {
	Command  string
	ExitCode int
	Output   []byte
}

func (e *ExitError) Error() string {
	msg := strings.TrimSpace(string(e.Output))
	if msg == "" {
		return fmt.Sprintf("%s exited with status %d", e.Command, e.ExitCode)
	}
	return fmt.Sprintf("%s exited with status %d: %s", e.Command, e.ExitCode, msg)
}

// Run executes the command with the given argument list and returns combined output.
func (r *RunnerAdapter) Run(ctx context.Context, name string, args []string) ([]byte, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	logging.WithComponent("command").WithField("args", args).Debugf("Running %s", name)

	cmd := exec.CommandContext(ctx, name, args...)
	out, err := cmd.CombinedOutput()
	if err == nil {
		return out, nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return out, fmt.Errorf("failed to run %s: %w", name, ctxErr)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return out, &ExitError{Command: name, ExitCode: exitErr.ExitCode(), Output: out}
	}
	return out, fmt.Errorf("failed to run %s: %w", name, err)
}
