// Package coordinator owns the fixed-size worker pool that runs the partial
// search states produced by split.Expand to completion and reduces their
// results to a single best walk.
//
// The pool is a buffered-channel semaphore bounding concurrent goroutines,
// joined with a sync.WaitGroup, plus a shared atomic.Int64 best score
// published with compare-and-swap take-max semantics (see DESIGN.md for the
// grounding of both patterns).
package coordinator

import (
	"errors"
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/walkscore/board"
	"github.com/katalvlaran/walkscore/search"
)

// ErrNoStates indicates Run was called with no partial states to run — a
// caller error, since split.Expand always returns at least the root state.
var ErrNoStates = errors.New("coordinator: no states to run")

// Result is the reduction of every worker's Result: the single best score
// and the path that achieves it.
type Result struct {
	Found bool
	Score int64
	Path  []int
}

// Run submits one task per state in states to a pool of workers goroutines
// (bounded to at least 1), waits for every task to finish, and returns the
// best result across all of them. The Board is read-only and shared; each
// state is private to its own worker.
func Run(b *board.Board, states []*search.State, workers int) (Result, error) {
	if len(states) == 0 {
		return Result{}, ErrNoStates
	}
	if workers < 1 {
		workers = 1
	}

	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	var shared atomic.Int64
	shared.Store(sentinelWorstScore)

	results := make([]search.Result, len(states))
	for i, st := range states {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, st *search.State) {
			defer wg.Done()
			defer func() { <-sem }()

			e := search.NewEngine(b, st, &shared)
			results[i] = e.Solve()
		}(i, st)
	}
	wg.Wait()

	return reduce(results), nil
}

// sentinelWorstScore seeds the shared best-score atomic below any real
// achievable score, matching search.sentinelWorstScore so an unpublished
// slot never looks better than a genuine worker result.
const sentinelWorstScore = -9999

// reduce picks the best of a set of per-worker results.
func reduce(results []search.Result) Result {
	best := Result{Score: sentinelWorstScore}
	for _, r := range results {
		if r.Found && r.Score > best.Score {
			best = Result{Found: true, Score: r.Score, Path: r.Path}
		}
	}

	return best
}
