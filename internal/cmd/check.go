package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/camcl/cellcheck/internal/config"
	"github.com/camcl/cellcheck/internal/history"
)

// NewCheckCommand creates and returns the check subcommand
func NewCheckCommand() *cobra.Command {
	var magicName string
	var inline string

	cmd := &cobra.Command{
		Use:   "check [file] [-- checker-options...]",
		Short: "Type check a single cell",
		Long: `Read one cell and dispatch it to a directive (mypy by default).

The cell comes from a file argument, from --cell, or from stdin when
neither is given ("-" also reads stdin). Tokens after -- are forwarded
to the type checker unchanged, in order:

  cellcheck check snippet.py -- --strict --no-error-summary
  echo 'x: int = "oops"' | cellcheck check

Exit code mirrors the checker: 0 for no findings, non-zero otherwise.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, magicName, inline)
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVarP(&magicName, "magic", "m", "", "directive to dispatch the cell to (default from config)")
	cmd.Flags().StringVarP(&inline, "cell", "c", "", "inline cell text instead of a file")

	return cmd
}

func runCheck(cmd *cobra.Command, args []string, magicName, inline string) error {
	fileArgs, options := splitAtDash(cmd, args)

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	cell, err := readCell(fileArgs, inline, cmd.InOrStdin())
	if err != nil {
		return err
	}

	name := magicName
	if name == "" {
		name = cfg.DefaultMagic
	}

	reg := newRegistry(cfg)
	line := strings.Join(options, " ")

	start := time.Now()
	res, err := reg.Dispatch(cmd.Context(), cmd.OutOrStdout(), name, line, cell)
	if err != nil {
		return err
	}

	recordInvocation(cmd.Context(), cmd.ErrOrStderr(), cfg, history.Record{
		Directive:  name,
		Options:    line,
		CellBytes:  len(cell),
		Status:     res.Status,
		Message:    res.Message,
		DurationMS: time.Since(start).Milliseconds(),
	})

	if res.Message != "" {
		fmt.Fprintln(cmd.OutOrStdout(), res.Message)
		return nil
	}
	if res.Status != 0 {
		return fmt.Errorf("type checking reported findings (exit status %d)", res.Status)
	}
	return nil
}

// splitAtDash separates positional arguments from pass-through checker
// options following "--".
func splitAtDash(cmd *cobra.Command, args []string) (positional, options []string) {
	at := cmd.ArgsLenAtDash()
	if at < 0 {
		return args, nil
	}
	return args[:at], args[at:]
}

// readCell resolves the cell text from the inline flag, a file argument,
// or stdin. "-" as the file argument also reads stdin.
func readCell(fileArgs []string, inline string, stdin io.Reader) (string, error) {
	if inline != "" {
		if len(fileArgs) > 0 {
			return "", fmt.Errorf("cannot combine --cell with a file argument")
		}
		return inline, nil
	}

	switch len(fileArgs) {
	case 0:
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read cell from stdin: %w", err)
		}
		return string(data), nil
	case 1:
		if fileArgs[0] == "-" {
			data, err := io.ReadAll(stdin)
			if err != nil {
				return "", fmt.Errorf("read cell from stdin: %w", err)
			}
			return string(data), nil
		}
		data, err := os.ReadFile(fileArgs[0])
		if err != nil {
			return "", fmt.Errorf("read cell file: %w", err)
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("expected at most one cell file, got %d", len(fileArgs))
	}
}

// recordInvocation stores a history record when history is enabled.
// Failures are reported to errW but never fail the invocation itself.
func recordInvocation(ctx context.Context, errW io.Writer, cfg *config.Config, rec history.Record) {
	if !cfg.History.Enabled {
		return
	}

	dbPath, err := config.HistoryDBPath(cfg)
	if err != nil {
		fmt.Fprintf(errW, "Warning: history disabled: %v\n", err)
		return
	}

	store, err := history.NewStore(dbPath)
	if err != nil {
		fmt.Fprintf(errW, "Warning: history disabled: %v\n", err)
		return
	}
	defer store.Close()

	if _, err := store.Record(ctx, rec); err != nil {
		fmt.Fprintf(errW, "Warning: failed to record invocation: %v\n", err)
		return
	}
	if _, err := store.Prune(ctx, cfg.History.KeepDays); err != nil {
		fmt.Fprintf(errW, "Warning: failed to prune history: %v\n", err)
	}
}
