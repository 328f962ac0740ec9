package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/camcl/cellcheck/internal/history"
	"github.com/camcl/cellcheck/internal/logger"
	"github.com/camcl/cellcheck/internal/notebook"
)

// NewRunCommand creates and returns the run subcommand
func NewRunCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <document.md>...",
		Short: "Check all tagged cells in Markdown documents",
		Long: `Extract %%-tagged fenced code blocks from Markdown documents and
dispatch each one to its named directive. A cell is a fenced code block
whose first line is a %%directive marker, for example:

  ` + "```python" + `
  %%mypy --strict
  x: int = "oops"
  ` + "```" + `

Exit code: 0 when every cell is clean, 1 when any cell has findings.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDocuments(cmd, args)
		},
		SilenceUsage: true,
	}

	return cmd
}

func runDocuments(cmd *cobra.Command, paths []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	reg := newRegistry(cfg)
	parser := notebook.NewParser()
	log := logger.NewConsoleLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	out := cmd.OutOrStdout()

	var checked, clean, findings int
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open document: %w", err)
		}
		cells, err := parser.Parse(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}

		if len(cells) == 0 {
			log.LogWarn(fmt.Sprintf("%s: no tagged cells found", path))
			continue
		}
		log.LogDebug(fmt.Sprintf("%s: %d tagged cells", path, len(cells)))

		for i, cell := range cells {
			start := time.Now()
			res, err := reg.Dispatch(cmd.Context(), out, cell.Directive, cell.Line, cell.Source)
			if err != nil {
				log.LogWarn(fmt.Sprintf("%s#%d: %v, skipping", path, i+1, err))
				continue
			}
			duration := time.Since(start)

			recordInvocation(cmd.Context(), cmd.ErrOrStderr(), cfg, history.Record{
				Directive:  cell.Directive,
				Options:    cell.Line,
				CellBytes:  len(cell.Source),
				Status:     res.Status,
				Message:    res.Message,
				DurationMS: duration.Milliseconds(),
			})

			// A missing checker is terminal: every later cell would
			// report the same hint.
			if res.Message != "" {
				fmt.Fprintln(out, res.Message)
				return fmt.Errorf("type checker unavailable")
			}

			checked++
			if res.Status == 0 {
				clean++
			} else {
				findings++
			}
			log.LogCellResult(path, i+1, cell.Directive, res.Status, duration)
		}
	}

	fmt.Fprintf(out, "Checked %d cells: %d clean, %d with findings\n", checked, clean, findings)
	if findings > 0 {
		return fmt.Errorf("%d cells reported findings", findings)
	}
	return nil
}
