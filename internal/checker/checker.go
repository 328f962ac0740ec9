// Package checker invokes an external type checker executable and captures
// its textual output and exit status.
package checker

import (
	"context"
	"errors"
)

// ErrUnavailable indicates the type checker executable could not be located.
var ErrUnavailable = errors.New("type checker unavailable")

// Result holds the three outputs of a type checker invocation: the
// informational report, the error report, and the exit status. An exit
// status of 0 means no findings; non-zero means findings or failure.
type Result struct {
	Stdout string
	Stderr string
	Status int
}

// Checker abstracts type checker execution for testability.
type Checker interface {
	// Run invokes the checker with the given argument vector.
	// A non-zero exit status is reported via Result, not as an error;
	// errors are reserved for failures to locate or run the process.
	Run(ctx context.Context, args []string) (Result, error)
}
