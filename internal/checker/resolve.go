package checker

import (
	"context"
	"fmt"
	"os/exec"
	"time"
)

// Resolve probes for the type checker executable and returns a Checker.
// When the executable cannot be located, the returned Checker is a
// stand-in whose Run reports ErrUnavailable, so callers degrade without
// special-casing at the probe site.
func Resolve(binaryPath string, timeout time.Duration) Checker {
	if binaryPath == "" {
		binaryPath = DefaultBinary
	}
	if _, err := exec.LookPath(binaryPath); err != nil {
		return unavailable{name: binaryPath}
	}
	return &Mypy{BinaryPath: binaryPath, Timeout: timeout}
}

// unavailable is the stand-in injected when no executable is found.
type unavailable struct {
	name string
}

func (u unavailable) Run(_ context.Context, _ []string) (Result, error) {
	return Result{}, fmt.Errorf("%w: %s not found in PATH", ErrUnavailable, u.name)
}
