package magic

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/camcl/cellcheck/internal/checker"
)

// MypyName is the name of the built-in type checking directive.
const MypyName = "mypy"

// RegisterMypy attaches the type checking directive backed by chk to reg.
// This is the only built-in directive.
func RegisterMypy(reg *Registry, chk checker.Checker) {
	reg.Register(MypyName, Typecheck(chk))
}

// Typecheck returns the handler for the mypy directive.
//
// The cell body is handed to the checker as a standalone compilation unit
// via -c, followed by the argument line split into whitespace-separated
// option tokens in their original order. Non-empty stdout and stderr are
// printed under their own headers; the checker exit status becomes the
// cell result. A missing checker executable is recovered into an
// instructive message, printed nowhere and raised as no error.
func Typecheck(chk checker.Checker) Handler {
	return func(ctx context.Context, w io.Writer, line, cell string) (Result, error) {
		args := []string{"-c", cell}
		if line != "" {
			args = append(args, strings.Fields(line)...)
		}

		res, err := chk.Run(ctx, args)
		if err != nil {
			if errors.Is(err, checker.ErrUnavailable) {
				return Result{Message: checker.InstallHint}, nil
			}
			return Result{}, err
		}

		if res.Stdout != "" {
			fmt.Fprintf(w, "\nType checking report:\n\n%s\n", res.Stdout)
		}
		if res.Stderr != "" {
			fmt.Fprintf(w, "\nError report:\n\n%s\n", res.Stderr)
		}

		return Result{Status: res.Status}, nil
	}
}
