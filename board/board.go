// Package board constructs and holds the immutable grid graph the search
// engine explores: vertices are row-major grid cells, edges carry an op.Op,
// and one-step/two-step adjacency tables are precomputed once so the DFS
// kernel never has to derive them on the hot path.
//
// Construction is deliberately decoupled from the problem-file grammar
// (package problem translates file tokens into EdgeSpecs and calls Build):
// this mirrors gridgraph.NewGridGraph's separation of "parse a 2D grid" from
// "the grid graph type itself" in the reference graph library this package
// is adapted from, and keeps Board testable with hand-built small grids.
package board

import "github.com/katalvlaran/walkscore/op"

// Build validates and assembles a Board from w×h grid dimensions, a flat
// edge list in deterministic (parse) order, the start/goal cells, the
// preamble score, and a usable bitmap (false entries are edges the preamble
// walk already consumed). The returned Board is immutable; Build never
// retains the input slices.
//
// Complexity: O(W·H + E) time and memory, where E = 2WH - W - H.
func Build(w, h int, edges []EdgeSpec, start, goal int, preScore int64, usable []bool) (*Board, error) {
	if w < 1 || h < 1 {
		return nil, ErrBadDimensions
	}
	n := w * h
	wantEdges := 2*w*h - w - h
	if len(edges) != wantEdges {
		return nil, ErrEdgeCountMismatch
	}
	if len(usable) != len(edges) {
		return nil, ErrUsableCountMismatch
	}
	if start < 0 || start >= n || goal < 0 || goal >= n {
		return nil, ErrCellOutOfRange
	}
	for _, e := range edges {
		if e.A < 0 || e.A >= n || e.B < 0 || e.B >= n {
			return nil, ErrCellOutOfRange
		}
		if !adjacent(w, e.A, e.B) {
			return nil, ErrNonAdjacentEdge
		}
	}

	b := &Board{
		W:             w,
		H:             h,
		Start:         start,
		Goal:          goal,
		PreScore:      preScore,
		Edges:         make([]op.Op, len(edges)),
		OneStep:       make([][]Step, n),
		InitialUsable: append([]bool(nil), usable...),
	}

	for id, e := range edges {
		b.Edges[id] = e.Op
		b.OneStep[e.A] = append(b.OneStep[e.A], Step{Next: e.B, EdgeID: id, Op: e.Op})
		b.OneStep[e.B] = append(b.OneStep[e.B], Step{Next: e.A, EdgeID: id, Op: e.Op})
	}

	b.buildTwoStep()
	b.buildInitialDegree()
	b.CornerGoal = isCorner(w, h, goal)
	b.ParityOdd = manhattanParity(w, start, goal)

	return b, nil
}

// adjacent reports whether cells a and b are 4-neighbors in a grid of the
// given width: exactly one row apart in the same column, or one column
// apart in the same row.
func adjacent(w, a, b int) bool {
	if a == b {
		return false
	}
	ax, ay := a%w, a/w
	bx, by := b%w, b/w
	if ax == bx {
		return ay-by == 1 || by-ay == 1
	}
	if ay == by {
		return ax-bx == 1 || bx-ax == 1
	}

	return false
}

// buildTwoStep materializes, for every cell p, every (nbr1, nbr2, edge1,
// edge2, composedOp) tuple reachable via two distinct edges with nbr2 != p,
// in deterministic (parse) order and regardless of which of the two edges
// survived the preamble walk — same convention as OneStep. The parity-even
// DFS variants skip any entry whose edge is already Used, which covers
// preamble-consumed edges the same way the one-step walk does.
func (b *Board) buildTwoStep() {
	n := b.NumCells()
	b.TwoStep = make([][]TwoStep, n)
	for p := 0; p < n; p++ {
		for _, s1 := range b.OneStep[p] {
			q := s1.Next
			for _, s2 := range b.OneStep[q] {
				r := s2.Next
				if r == p {
					continue
				}
				if s2.EdgeID == s1.EdgeID {
					continue
				}
				composed := op.Compose(s1.Op, s2.Op)
				b.TwoStep[p] = append(b.TwoStep[p], TwoStep{
					Next1: q, Next2: r,
					EdgeID1: s1.EdgeID, EdgeID2: s2.EdgeID,
					Op: composed,
				})
			}
		}
	}
}

// buildInitialDegree computes, for every cell, the number of live
// (preamble-surviving) incident edges, with +1 added at the goal — the
// sentinel that lets the degree prune treat the goal as though it always
// has one spare outgoing edge (see §4.3).
func (b *Board) buildInitialDegree() {
	n := b.NumCells()
	b.InitialDegree = make([]int, n)
	for v := 0; v < n; v++ {
		live := 0
		for _, s := range b.OneStep[v] {
			if b.InitialUsable[s.EdgeID] {
				live++
			}
		}
		b.InitialDegree[v] = live
	}
	b.InitialDegree[b.Goal]++
}

// isCorner reports whether cell idx is one of the grid's four corners.
func isCorner(w, h, idx int) bool {
	return idx == 0 || idx == w-1 || idx == w*(h-1) || idx == w*h-1
}

// manhattanParity reports whether the Manhattan distance between start and
// goal (in a grid of width w) is odd.
func manhattanParity(w, start, goal int) bool {
	sx, sy := start%w, start/w
	gx, gy := goal%w, goal/w
	d := abs(sx-gx) + abs(sy-gy)

	return d%2 == 1
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
