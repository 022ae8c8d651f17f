package search

import (
	"github.com/katalvlaran/walkscore/board"
	"github.com/katalvlaran/walkscore/op"
)

// State is the per-worker mutable search state described in §3: the path
// walked so far, the running score, the used-edge bitset, the remaining
// live-degree counter per cell, and the two running upper-bound
// accumulators. It is preallocated once and mutated in place throughout a
// worker's DFS — the path buffer is sized to E+1 exactly as the reference
// bbEngine in tsp/bb.go preallocates its path/visited slices, so the hot
// loop never allocates.
type State struct {
	Path    []int // Path[0:Len] is the walked sequence of cells
	Len     int
	Score   int64
	Used    []bool // Used[e] true ⇒ edge e already traversed (or preamble-consumed)
	Deg     []int  // remaining live degree per cell
	MaxMul  int64  // running product of max(1, mul) over still-usable edges
	MaxAdd  int64  // running sum of AddPositive over still-usable edges
}

// NewRootState builds the initial State for a Board: path containing only
// Start, score set to the preamble's PreScore, and the two bound
// accumulators seeded over every edge the preamble walk left usable.
func NewRootState(b *board.Board) *State {
	e := b.NumEdges()
	s := &State{
		Path:   make([]int, e+1),
		Len:    1,
		Score:  b.PreScore,
		Used:   make([]bool, e),
		Deg:    append([]int(nil), b.InitialDegree...),
		MaxMul: 1,
		MaxAdd: 0,
	}
	s.Path[0] = b.Start

	for id, usable := range b.InitialUsable {
		s.Used[id] = !usable
		if !usable {
			continue
		}
		o := b.Edges[id]
		m := o.Mul
		if m < 1 {
			m = 1
		}
		s.MaxMul *= m
		s.MaxAdd += o.AddPositive
	}

	return s
}

// Head returns the current (last) cell of the walked path.
func (s *State) Head() int {
	return s.Path[s.Len-1]
}

// Clone returns a deep copy of s, independent of any future mutation of the
// original. Used by the root splitter to fan a single partial walk out into
// several sibling states before handing each to a worker.
func (s *State) Clone() *State {
	c := &State{
		Path:   append([]int(nil), s.Path...),
		Len:    s.Len,
		Score:  s.Score,
		Used:   append([]bool(nil), s.Used...),
		Deg:    append([]int(nil), s.Deg...),
		MaxMul: s.MaxMul,
		MaxAdd: s.MaxAdd,
	}

	return c
}

// pushEdge advances the state in place by one edge from p to next,
// mutating Path/Len/Score/Deg/Used exactly as Engine.pushOne does. It is
// shared by pushOne and Extend so both forward-advance a state the same
// way.
func (s *State) pushEdge(p, next, edgeID int, o op.Op) {
	s.Deg[p]--
	s.Deg[next]--
	s.Path[s.Len] = next
	s.Len++
	s.Score = o.Apply(s.Score)
	s.consumeEdge(edgeID, o)
}

// Extend returns a clone of s advanced by one edge (p -> next via edgeID).
// Used by the root splitter to grow partial states for each worker without
// needing an Engine or any backtracking.
func (s *State) Extend(p, next, edgeID int, o op.Op) *State {
	c := s.Clone()
	c.pushEdge(p, next, edgeID, o)

	return c
}

// consumeEdge marks edge id used and removes its contribution from the
// running bound accumulators: MaxAdd loses the edge's additive upside,
// MaxMul loses its multiplicative factor (exact integer division, since the
// factor was multiplied in whole during NewRootState and never fractional).
func (s *State) consumeEdge(id int, o op.Op) {
	s.Used[id] = true
	m := o.Mul
	if m < 1 {
		m = 1
	}
	s.MaxMul /= m
	s.MaxAdd -= o.AddPositive
}

// restoreEdge is the exact inverse of consumeEdge.
func (s *State) restoreEdge(id int, o op.Op) {
	s.Used[id] = false
	m := o.Mul
	if m < 1 {
		m = 1
	}
	s.MaxMul *= m
	s.MaxAdd += o.AddPositive
}
