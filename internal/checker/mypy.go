package checker

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"
)

// DefaultBinary is the executable probed for when no path is configured.
const DefaultBinary = "mypy"

// InstallHint is the message surfaced when the mypy executable cannot be
// found. It is returned as the cell's displayed result, never as an error.
const InstallHint = "'mypy' not installed. Did you run 'pip install mypy'?"

// Mypy invokes the mypy executable.
// It follows the http.Client pattern: create once, use many times.
// Thread-safe for concurrent use.
type Mypy struct {
	// BinaryPath is the path to the mypy executable.
	// Defaults to "mypy" (found in PATH).
	BinaryPath string

	// Timeout bounds a single invocation.
	// Zero means no timeout beyond the caller's context.
	Timeout time.Duration
}

// NewMypy creates a Mypy checker with default settings.
func NewMypy() *Mypy {
	return &Mypy{BinaryPath: DefaultBinary}
}

// Run executes mypy with the given argument vector and captures stdout,
// stderr and the exit status. mypy exits 1 when it has findings, so a
// non-zero exit status is part of the Result rather than an error.
func (m *Mypy) Run(ctx context.Context, args []string) (Result, error) {
	ctxToUse := ctx
	var cancel context.CancelFunc
	if m.Timeout > 0 {
		ctxToUse, cancel = context.WithTimeout(ctx, m.Timeout)
		defer cancel()
	}

	binary := m.BinaryPath
	if binary == "" {
		binary = DefaultBinary
	}

	cmd := exec.CommandContext(ctxToUse, binary, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.Status = exitErr.ExitCode()
			return result, nil
		}
		return result, fmt.Errorf("mypy invocation failed: %w", err)
	}

	return result, nil
}
