package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/camcl/cellcheck/internal/tuples"
)

// NewDemoCommand creates and returns the demo subcommand
func NewDemoCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo [a b c]",
		Short: "Run the tuple construction demonstration",
		Long: `Build a fixed triple from three integers, print it, and print the
declared parameter and return annotations of the constructing function.
The demonstration runs twice with the same inputs, mirroring the
original demo script. Defaults to 4 7 -5.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 3 {
				return fmt.Errorf("expected zero or three integers, got %d arguments", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd, args)
		},
		SilenceUsage: true,
	}

	return cmd
}

func runDemo(cmd *cobra.Command, args []string) error {
	a, b, c := 4, 7, -5
	if len(args) == 3 {
		var err error
		if a, err = strconv.Atoi(args[0]); err != nil {
			return fmt.Errorf("invalid integer %q", args[0])
		}
		if b, err = strconv.Atoi(args[1]); err != nil {
			return fmt.Errorf("invalid integer %q", args[1])
		}
		if c, err = strconv.Atoi(args[2]); err != nil {
			return fmt.Errorf("invalid integer %q", args[2])
		}
	}

	out := cmd.OutOrStdout()
	tuples.Demo(out, a, b, c)
	tuples.Demo(out, a, b, c)
	return nil
}
