// Package search implements the exact branch-and-bound DFS kernel: the
// per-worker State, the pruning predicates in pruner.go, and the four
// specialized recursive explorers dispatched once per search by the
// Board's corner-goal flag and the parity between the search's head cell
// and the goal.
//
// The engine is a dedicated struct rather than a tree of closures: explicit
// fields for the graph, the mutable state, and the incumbent, plus named
// methods for the bound check and the recursive step, so dependencies are
// visible and nothing is captured implicitly (see DESIGN.md for the
// branch-and-bound lineage this mirrors).
package search

import (
	"sync/atomic"

	"github.com/katalvlaran/walkscore/board"
	"github.com/katalvlaran/walkscore/op"
)

// Result is a worker's outcome: the best score found and the path that
// achieves it (a defensive copy, safe to retain after the engine is
// discarded).
type Result struct {
	Found bool
	Score int64
	Path  []int
}

// Engine runs one DFS search rooted at a (possibly partial) State against
// an immutable Board, publishing local improvements to a shared best-score
// atomic so sibling workers can prune harder.
type Engine struct {
	b      *board.Board
	st     *State
	shared *atomic.Int64 // may be nil: a standalone, single-search engine

	best Result
}

// NewEngine builds an Engine over board b starting from state st. shared
// may be nil when running a single search outside the coordinator's worker
// pool (e.g. tests).
func NewEngine(b *board.Board, st *State, shared *atomic.Int64) *Engine {
	return &Engine{
		b:      b,
		st:     st,
		shared: shared,
		best:   Result{Score: sentinelWorstScore},
	}
}

// Solve dispatches to the one of four DFS variants selected by the board's
// corner-goal flag and the parity between the engine's own starting cell
// and the goal. Board.ParityOdd is fixed at construction from Start↔Goal
// and only describes the root engine: a worker handed a partial state by
// split.Expand starts from an arbitrary head, not Start, so the parity
// that picks a sound variant must be recomputed from head↔Goal (see
// DESIGN.md) — the even variants' two-step stride only ever reaches cells
// of the same color as head, so using the wrong parity here would make
// dfsEven/dfsCGEven silently unable to reach a goal of the other color.
func (e *Engine) Solve() Result {
	head := e.st.Head()
	odd := e.headParityOdd(head)
	switch {
	case e.b.CornerGoal && odd:
		e.dfsCGOdd(head)
	case e.b.CornerGoal && !odd:
		e.dfsCGEven(head)
	case !e.b.CornerGoal && odd:
		e.dfsOdd(head)
	default:
		e.dfsEven(head)
	}

	return e.best
}

// headParityOdd reports whether the Manhattan distance between p and the
// goal is odd, i.e. whether they sit on opposite colors of the grid's
// checkerboard coloring. Manhattan distance parity between two cells
// equals the parity of the sum of their coordinates' difference, so this
// only needs each cell's own (x+y) parity, not a real distance computation.
func (e *Engine) headParityOdd(p int) bool {
	px, py := e.b.Coordinate(p)
	gx, gy := e.b.Coordinate(e.b.Goal)

	return (px+py+gx+gy)%2 != 0
}

// bestKnown returns the best score known to either this worker or any
// sibling worker, used by the upper-bound prune. A stale shared read only
// costs extra expansions (see §5); it is never incorrect to read it
// without synchronization beyond the atomic itself.
func (e *Engine) bestKnown() int64 {
	best := e.best.Score
	if e.shared != nil {
		if v := e.shared.Load(); v > best {
			best = v
		}
	}

	return best
}

// publish records a local improvement and broadcasts it to the shared
// best-score atomic with take-max semantics: a compare-and-swap loop that
// only ever raises the shared value (see DESIGN.md).
func (e *Engine) publish(score int64) {
	if e.shared == nil {
		return
	}
	for {
		cur := e.shared.Load()
		if score <= cur {
			return
		}
		if e.shared.CompareAndSwap(cur, score) {
			return
		}
	}
}

// onGoal performs the terminal test of §4.3 step 1: if p is the goal and
// the current score beats the best found so far, record and publish it.
// It returns true iff the caller should stop exploring past p — which is
// exactly the corner-goal case, since a corner goal's only neighbors would
// have no remaining path back (see §4.3's key design invariant).
func (e *Engine) onGoal(p int) bool {
	if p != e.b.Goal {
		return false
	}
	if e.st.Score > e.best.Score {
		e.best.Found = true
		e.best.Score = e.st.Score
		e.best.Path = append(e.best.Path[:0], e.st.Path[:e.st.Len]...)
		e.publish(e.st.Score)
	}

	return e.b.CornerGoal
}

// pruned performs the upper-bound test of §4.3 step 2.
func (e *Engine) pruned() bool {
	bound := upperBound(e.st.Score, e.st.MaxAdd, e.st.MaxMul)

	return bound < e.bestKnown()
}

// pushOne advances the walk by one edge from p to next: the consumed edge
// is incident to both endpoints, so both lose one live-degree unit — degree
// accounting happens only here and in pushTwo, deliberately not split
// across a separate per-call enter/exit step, so deg[v] always equals the
// exact count of still-live edges incident to v (see board.Board.InitialDegree).
func (e *Engine) pushOne(p, next, edgeID int) {
	e.st.pushEdge(p, next, edgeID, e.b.Edges[edgeID])
}

// popOne is the exact inverse of pushOne, applied in reverse order.
func (e *Engine) popOne(p, next, edgeID int) {
	o := e.b.Edges[edgeID]
	e.st.restoreEdge(edgeID, o)
	e.st.Score = undo(o, e.st.Score)
	e.st.Len--
	e.st.Deg[next]++
	e.st.Deg[p]++
}

// undo inverts o.Apply: given y = mul*x + add, recovers x = (y-add)/mul.
// Every edge op applied during the search is later exactly undone along the
// same edge, so this division is always exact.
func undo(o op.Op, score int64) int64 {
	return (score - o.Add) / o.Mul
}
