package board

import "github.com/katalvlaran/walkscore/op"

// EdgeSpec describes one edge as supplied by a caller (the problem package,
// or a test) before the board assigns it a stable integer ID. A and B are
// cell indices; Op is the arithmetic label applied when the edge is
// traversed in either direction (grid edges are undirected).
type EdgeSpec struct {
	A, B int
	Op   op.Op
}

// Step is a one-step adjacency entry: from some cell p, Step describes a
// neighbor reachable by a single live edge.
type Step struct {
	Next   int    // neighboring cell
	EdgeID int    // id of the traversed edge
	Op     op.Op  // the edge's operation
}

// TwoStep is a two-step adjacency entry: from some cell p, TwoStep describes
// reaching Next2 via an intermediate Next1, using two distinct edges whose
// composed operation is Op. TwoStep entries with Next2 == p (the edge pair
// would return to the origin) are never materialized.
type TwoStep struct {
	Next1, Next2   int
	EdgeID1, EdgeID2 int
	Op             op.Op
}

// Board is the immutable graph the search package operates on. It is built
// once (by the problem package, after parsing and the preamble walk) and
// shared read-only across every worker goroutine.
type Board struct {
	W, H  int
	Start int
	Goal  int

	// PreScore is the score carried in from the preamble walk (1 if none).
	PreScore int64

	// Edges holds the Op of every edge, indexed by edge id in [0, E).
	Edges []op.Op

	// OneStep[v] lists (neighbor, edge id, op) tuples in deterministic
	// (parse) order, regardless of which edges are still usable.
	OneStep [][]Step

	// TwoStep[v] lists all two-edge compositions through v in deterministic
	// (parse) order, regardless of which of the two edges are still usable —
	// same coverage convention as OneStep. Liveness is enforced at search
	// time via Used, not by filtering this table.
	TwoStep [][]TwoStep

	// InitialDegree[v] is the number of live edges incident to v, plus 1 if
	// v is the goal (the sentinel described in §4.3).
	InitialDegree []int

	// InitialUsable[e] is true iff edge e survived the preamble walk.
	InitialUsable []bool

	// CornerGoal is true iff Goal is one of the four grid corners.
	CornerGoal bool

	// ParityOdd is true iff the Manhattan distance between Start and Goal is odd.
	ParityOdd bool
}

// NumCells returns W*H.
func (b *Board) NumCells() int { return b.W * b.H }

// NumEdges returns the number of edges in the board (2WH - W - H for a full grid).
func (b *Board) NumEdges() int { return len(b.Edges) }

// Coordinate converts a row-major cell index back to (x, y).
func (b *Board) Coordinate(idx int) (x, y int) {
	return idx % b.W, idx / b.W
}

// Index converts (x, y) to a row-major cell index.
func (b *Board) Index(x, y int) int {
	return y*b.W + x
}
