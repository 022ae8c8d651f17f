// Package cli is the walkscore command surface: a single fixed-shape
// positional command (not a verb tree), built with spf13/cobra in the
// style of willtheorangeguy-stacktower-docker/internal/cli, with a
// charmbracelet/log logger installed into the command context by
// PersistentPreRun.
package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// SetVersion wires build-time version metadata into the root command.
func SetVersion(v, c, d string) {
	version, commit, date = v, c, d
}

// Execute builds and runs the root command against os.Args.
func Execute() error {
	var verbose bool
	var render bool

	root := &cobra.Command{
		Use:          "walkscore <problem_file> <start_cell> <goal_cell> [<option>] [<split_count>]",
		Short:        "Solve the longest-weighted-path grid puzzle",
		Long:         `walkscore finds the highest-scoring edge-simple walk from a start cell to a goal cell on a grid of arithmetic edges, or splits a problem file into sub-problems for distributed solving.`,
		Version:      version,
		Args:         cobra.RangeArgs(3, 5),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := parseArgs(args)
			if err != nil {
				return err
			}

			return run(cmd.Context(), opts, render)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("walkscore %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.Flags().BoolVar(&render, "render", false, "print the board with the winning path overlaid to stderr")

	return root.ExecuteContext(context.Background())
}
