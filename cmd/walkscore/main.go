// Command walkscore solves (or splits) longest-weighted-path grid
// puzzles. See cli.Execute for the positional argument grammar.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/walkscore/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.SetVersion(version, commit, date)
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
