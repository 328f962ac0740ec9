// Package cmd wires the cellcheck command line interface.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/camcl/cellcheck/internal/checker"
	"github.com/camcl/cellcheck/internal/config"
	"github.com/camcl/cellcheck/internal/magic"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for cellcheck
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cellcheck",
		Short: "Run notebook-style source cells through an external type checker",
		Long: `Cellcheck dispatches source cells to named cell directives. The built-in
mypy directive hands each cell to the mypy executable as a standalone
compilation unit, captures its reports and exit status, and surfaces them.

Cells come from a file, stdin, an inline flag, or %%-tagged fenced code
blocks inside Markdown documents.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	cmd.AddCommand(NewCheckCommand())
	cmd.AddCommand(NewRunCommand())
	cmd.AddCommand(NewDemoCommand())
	cmd.AddCommand(NewHistoryCommand())

	return cmd
}

// loadConfig reads the config file from the cellcheck home.
func loadConfig() (*config.Config, error) {
	path, err := config.ConfigPath()
	if err != nil {
		return nil, fmt.Errorf("resolve config path: %w", err)
	}
	return config.Load(path)
}

// newRegistry builds the directive registry for a config: the checker is
// resolved once and the single built-in directive is registered.
func newRegistry(cfg *config.Config) *magic.Registry {
	chk := checker.Resolve(cfg.CheckerPath, cfg.Timeout)
	reg := magic.NewRegistry()
	magic.RegisterMypy(reg, chk)
	return reg
}
