package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/camcl/cellcheck/internal/config"
	"github.com/camcl/cellcheck/internal/history"
)

// NewHistoryCommand creates and returns the history subcommand
func NewHistoryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect recorded directive invocations",
	}

	cmd.AddCommand(newHistoryListCommand())
	cmd.AddCommand(newHistoryClearCommand())
	cmd.AddCommand(newHistoryExportCommand())

	return cmd
}

func newHistoryListCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent invocations, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openHistoryStore()
			if err != nil {
				return err
			}
			defer store.Close()

			records, err := store.List(cmd.Context(), limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(records) == 0 {
				fmt.Fprintln(out, "No invocations recorded.")
				return nil
			}

			for _, rec := range records {
				line := fmt.Sprintf("%s  %-8s status=%d  %4dms  %d bytes",
					rec.CreatedAt.Local().Format("2006-01-02 15:04:05"),
					rec.Directive, rec.Status, rec.DurationMS, rec.CellBytes)
				if rec.Options != "" {
					line += "  [" + rec.Options + "]"
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
		SilenceUsage: true,
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum records to show (0 = all)")

	return cmd
}

func newHistoryClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all recorded invocations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openHistoryStore()
			if err != nil {
				return err
			}
			defer store.Close()

			removed, err := store.Clear(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d invocation records.\n", removed)
			return nil
		},
		SilenceUsage: true,
	}
}

func newHistoryExportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export <path.json>",
		Short: "Export all invocations to a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openHistoryStore()
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.ExportJSON(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported history to %s\n", args[0])
			return nil
		},
		SilenceUsage: true,
	}
}

func openHistoryStore() (*history.Store, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	dbPath, err := config.HistoryDBPath(cfg)
	if err != nil {
		return nil, err
	}
	return history.NewStore(dbPath)
}
