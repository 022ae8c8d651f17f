// Package split implements the root splitter: breadth-first expansion of
// the root search state into a fan-out of partial states, one per worker,
// so the coordinator can hand each worker an independent slice of the
// search tree with no duplicated work.
//
// The queue-of-pending-items shape mirrors a breadth-first walker's queue
// field, here carrying a partial search.State instead of a vertex ID.
package split

import (
	"github.com/katalvlaran/walkscore/board"
	"github.com/katalvlaran/walkscore/search"
)

// Expand seeds a queue with the board's root state and repeatedly pops a
// state, expanding it across every one of its head cell's still-live
// outgoing edges, until the queue holds at least fanout states (or no
// state in the queue can be expanded any further). The returned states'
// completions partition the full search: no cell-edge combination is
// explored by more than one of them.
func Expand(b *board.Board, fanout int) []*search.State {
	if fanout < 1 {
		fanout = 1
	}

	queue := []*search.State{search.NewRootState(b)}
	stale := 0 // consecutive rotations with no split, reset on any split
	for len(queue) < fanout && stale < len(queue) {
		head := queue[0]
		children := children(b, head)
		if len(children) == 0 {
			// Dead end for now: rotate it to the back so states that can
			// still split get a turn. If every state in the queue rotates
			// through without splitting, the frontier is exhausted.
			queue = append(queue[1:], head)
			stale++
			continue
		}
		queue = append(queue[1:], children...)
		stale = 0
	}

	return queue
}

// children returns one child state per still-live edge out of s's head
// cell, each advanced by exactly that edge. A state whose head is the goal
// has no children: splitting it would drop the walk that ends right there,
// so it is left whole for its worker.
func children(b *board.Board, s *search.State) []*search.State {
	p := s.Head()
	if p == b.Goal {
		return nil
	}
	out := make([]*search.State, 0, len(b.OneStep[p]))
	for _, step := range b.OneStep[p] {
		if s.Used[step.EdgeID] {
			continue
		}
		out = append(out, s.Extend(p, step.Next, step.EdgeID, step.Op))
	}

	return out
}
