package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/walkscore/board"
	"github.com/katalvlaran/walkscore/coordinator"
	"github.com/katalvlaran/walkscore/problem"
	"github.com/katalvlaran/walkscore/render"
	"github.com/katalvlaran/walkscore/split"
)

// run dispatches to solver or split mode per opts: solver mode writes its
// one-line summary to stdout, split mode logs one line per split file
// through the context logger (stderr).
func run(ctx context.Context, opts options, renderBoard bool) error {
	logger := loggerFromContext(ctx)
	logger.Debug("loading problem", "file", opts.problemFile, "start", opts.start, "goal", opts.goal)

	b, err := problem.Load(opts.problemFile, opts.start, opts.goal)
	if err != nil {
		return err
	}

	if opts.solverMode {
		return runSolve(b, opts, renderBoard)
	}

	return runSplit(ctx, b, opts)
}

// runSolve fans the root state out to opts.workers sub-states, runs them
// through the coordinator's worker pool, and prints the one-line summary.
func runSolve(b *board.Board, opts options, renderBoard bool) error {
	start := time.Now()
	states := split.Expand(b, opts.workers)
	res, err := coordinator.Run(b, states, opts.workers)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	if renderBoard {
		fmt.Fprint(os.Stderr, render.Board(b, res.Path))
	}

	pathStrs := make([]string, len(res.Path))
	for i, p := range res.Path {
		pathStrs[i] = strconv.Itoa(p)
	}

	fmt.Printf("%d,%d,%d,%s,%.6f\n", b.W, b.H, res.Score, strings.Join(pathStrs, "->"), elapsed.Seconds())

	return nil
}

// runSplit expands the root into opts.splitCount partial states and writes
// each as a standalone sub-problem file named "<stem>_NNN.txt".
func runSplit(ctx context.Context, b *board.Board, opts options) error {
	logger := loggerFromContext(ctx)
	states := split.Expand(b, opts.splitCount)

	stem := strings.TrimSuffix(opts.problemFile, fileExt(opts.problemFile))
	for i, st := range states {
		name := fmt.Sprintf("%s_%03d.txt", stem, i)
		f, err := os.Create(name)
		if err != nil {
			return err
		}
		err = problem.Write(f, b, st.Path[:st.Len], b.Goal)
		closeErr := f.Close()
		if err != nil {
			return err
		}
		if closeErr != nil {
			return closeErr
		}
		logger.Info("wrote sub-problem", "file", name, "prefix_len", st.Len)
	}

	return nil
}

// fileExt returns the extension of name (including the dot), or "" if none.
func fileExt(name string) string {
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[i:]
	}

	return ""
}
