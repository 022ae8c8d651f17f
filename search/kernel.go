package search

// pushTwo advances the walk by a composed two-step hop from p through mid to
// next, using two distinct edges at once — the even-parity stride described
// in §4.2/§4.3. mid is incident to both consumed edges and so loses two
// live-degree units; p and next each lose one, exactly one per consumed
// edge, matching the accounting in pushOne.
func (e *Engine) pushTwo(p, mid, next, edgeID1, edgeID2 int) {
	e.st.Deg[p]--
	e.st.Deg[mid] -= 2
	e.st.Deg[next]--
	e.st.Path[e.st.Len] = mid
	e.st.Path[e.st.Len+1] = next
	e.st.Len += 2

	o1 := e.b.Edges[edgeID1]
	o2 := e.b.Edges[edgeID2]
	e.st.Score = o2.Apply(o1.Apply(e.st.Score))
	e.st.consumeEdge(edgeID1, o1)
	e.st.consumeEdge(edgeID2, o2)
}

// popTwo is the exact inverse of pushTwo, applied in reverse order.
func (e *Engine) popTwo(p, mid, next, edgeID1, edgeID2 int) {
	o1 := e.b.Edges[edgeID1]
	o2 := e.b.Edges[edgeID2]
	e.st.restoreEdge(edgeID2, o2)
	e.st.restoreEdge(edgeID1, o1)
	e.st.Score = undo(o1, undo(o2, e.st.Score))
	e.st.Len -= 2
	e.st.Deg[next]++
	e.st.Deg[mid] += 2
	e.st.Deg[p]++
}

// dfsOdd is the non-corner, odd-parity explorer: one-step stride, recursing
// into itself, never returning early on a goal visit (the walk may still
// extend through a non-corner goal).
func (e *Engine) dfsOdd(p int) {
	if e.onGoal(p) {
		return
	}
	if e.pruned() {
		return
	}

	for _, s := range e.b.OneStep[p] {
		if e.st.Used[s.EdgeID] || degreeBlocks(e.st.Deg[s.Next]) {
			continue
		}
		e.pushOne(p, s.Next, s.EdgeID)
		e.dfsOdd(s.Next)
		e.popOne(p, s.Next, s.EdgeID)
	}
}

// dfsEven is the non-corner, even-parity explorer: two-step stride via the
// precomputed composed adjacency, recursing into itself.
func (e *Engine) dfsEven(p int) {
	if e.onGoal(p) {
		return
	}
	if e.pruned() {
		return
	}

	for _, ts := range e.b.TwoStep[p] {
		if e.st.Used[ts.EdgeID1] || e.st.Used[ts.EdgeID2] || degreeBlocks(e.st.Deg[ts.Next2]) {
			continue
		}
		e.pushTwo(p, ts.Next1, ts.Next2, ts.EdgeID1, ts.EdgeID2)
		e.dfsEven(ts.Next2)
		e.popTwo(p, ts.Next1, ts.Next2, ts.EdgeID1, ts.EdgeID2)
	}
}

// dfsCGOdd is the corner-goal, odd-parity explorer. Its body is identical
// to dfsOdd's; the difference in terminal behavior (stop at the goal
// instead of continuing past it) lives in onGoal, which consults
// e.b.CornerGoal. It is kept as its own named method — rather than an
// alias for dfsOdd — because the root dispatch in Solve selects among four
// named variants by direct reference, matching the "two booleans pick one
// of four variants, no runtime dispatch in the hot loop" design described
// for this kernel.
func (e *Engine) dfsCGOdd(p int) {
	if e.onGoal(p) {
		return
	}
	if e.pruned() {
		return
	}

	for _, s := range e.b.OneStep[p] {
		if e.st.Used[s.EdgeID] || degreeBlocks(e.st.Deg[s.Next]) {
			continue
		}
		e.pushOne(p, s.Next, s.EdgeID)
		e.dfsCGOdd(s.Next)
		e.popOne(p, s.Next, s.EdgeID)
	}
}

// dfsCGEven is the corner-goal, even-parity explorer; see dfsCGOdd for why
// it is a distinct method from dfsEven.
func (e *Engine) dfsCGEven(p int) {
	if e.onGoal(p) {
		return
	}
	if e.pruned() {
		return
	}

	for _, ts := range e.b.TwoStep[p] {
		if e.st.Used[ts.EdgeID1] || e.st.Used[ts.EdgeID2] || degreeBlocks(e.st.Deg[ts.Next2]) {
			continue
		}
		e.pushTwo(p, ts.Next1, ts.Next2, ts.EdgeID1, ts.EdgeID2)
		e.dfsCGEven(ts.Next2)
		e.popTwo(p, ts.Next1, ts.Next2, ts.EdgeID1, ts.EdgeID2)
	}
}
