package pathfind

import (
	"cmp"
	"container/heap"
)

// Find runs the search from start. successors enumerates the moves
// available from a node; isValidMove is consulted, lazily, for every
// edge the search actually commits to expanding from; movementCost
// recomputes the cost of an arbitrary (not necessarily adjacent) pair
// of nodes, used only to price parent-skip jumps; heuristic estimates
// remaining cost to the goal; success reports whether a node is an
// acceptable goal.
//
// The root node itself is seeded into the frontier with cost zero and
// no parent. Because it has no parent, isValidMove is never consulted
// for the root's own admission — it is trivially valid to "arrive" at
// your own starting point. Callers that already hold a validated set
// of initial moves instead of wanting the root expanded directly
// should use FindWithInitial, or pass WithInitial as an Option here.
func Find[N comparable, C cmp.Ordered](
	start N,
	successors func(N) []Successor[N, C],
	isValidMove func(from, to N) bool,
	movementCost func(from, to N) C,
	heuristic func(N) C,
	success func(N) bool,
	opts ...Option[N, C],
) (Result[N, C], bool) {
	validateCallbacks(successors, isValidMove, movementCost, heuristic, success)

	cfg := Config[N, C]{}
	for _, opt := range opts {
		opt(&cfg)
	}

	visited := newVisitedTable[N, C]()
	pending := &frontier[N, C]{}

	var zero C
	rootIdx := visited.insertRoot(start, zero)

	if cfg.Initial != nil {
		for _, s := range cfg.Initial {
			if isValidMove(start, s.Node) {
				addPending(visited, pending, heuristic, rootIdx, s.Cost, s.Node, nil)
			}
		}
	} else {
		heap.Push(pending, pendingEntry[N, C]{index: rootIdx})
	}

	return findInner(visited, pending, successors, isValidMove, movementCost, heuristic, success, cfg.JumpCheck)
}

// FindWithInitial is Find seeded from an explicit set of initial
// (node, cost) pairs rather than expanding the root node itself.
// Grounded on find_with_init: useful when the caller already knows
// the first hop's options and their costs without going through
// successors.
func FindWithInitial[N comparable, C cmp.Ordered](
	start N,
	initial []Successor[N, C],
	successors func(N) []Successor[N, C],
	isValidMove func(from, to N) bool,
	movementCost func(from, to N) C,
	heuristic func(N) C,
	success func(N) bool,
	opts ...Option[N, C],
) (Result[N, C], bool) {
	opts = append([]Option[N, C]{WithInitial(initial)}, opts...)
	return Find(start, successors, isValidMove, movementCost, heuristic, success, opts...)
}

func validateCallbacks[N any, C cmp.Ordered](
	successors func(N) []Successor[N, C],
	isValidMove func(from, to N) bool,
	movementCost func(from, to N) C,
	heuristic func(N) C,
	success func(N) bool,
) {
	switch {
	case successors == nil:
		panic(ErrNilSuccessors.Error())
	case isValidMove == nil:
		panic(ErrNilIsValidMove.Error())
	case movementCost == nil:
		panic(ErrNilMovementCost.Error())
	case heuristic == nil:
		panic(ErrNilHeuristic.Error())
	case success == nil:
		panic(ErrNilSuccess.Error())
	}
}

// findInner is the main loop shared by Find and FindWithInitial: pop
// the cheapest-estimated pending edge, validate it against its
// parent lazily, expand it if it survives, and repeat until the
// frontier is exhausted or a goal is reached.
//
// pX naming below follows the reference algorithm: p0 is the node
// popped this iteration and p1 its parent — the node a jump would
// originate from, skipping over p0 to reach one of p0's successors.
func findInner[N comparable, C cmp.Ordered](
	visited *visitedTable[N, C],
	pending *frontier[N, C],
	successors func(N) []Successor[N, C],
	isValidMove func(from, to N) bool,
	movementCost func(from, to N) C,
	heuristic func(N) C,
	success func(N) bool,
	jumpCheck func(p1, p0, node N) (N, bool),
) (Result[N, C], bool) {
	heap.Init(pending)

	for pending.Len() > 0 {
		entry := heap.Pop(pending).(pendingEntry[N, C])
		p0Idx, cost := entry.index, entry.cost

		p0, _ := visited.at(p0Idx)

		// This node may have been pushed more than once if a cheaper
		// route to it was found after the first push. If the visited
		// table's current cost is already better than this entry's,
		// this entry is stale; skip it.
		if p0.cost < cost {
			continue
		}

		p1, hasParent := visited.at(p0.parent)

		if hasParent {
			// Checked here, not when the edge was generated, so every
			// edge the search ever considers but never expands never
			// pays for validation at all.
			if !isValidMove(p1.node, p0.node) {
				if fb := entry.fallback; fb != nil {
					addPending(visited, pending, heuristic, fb.parent, fb.cost, fb.node, nil)
				}
				continue
			}
		}

		if success(p0.node) {
			return buildResult(visited, p0Idx, cost), true
		}

		for _, s := range successors(p0.node) {
			node, moveCost := s.Node, s.Cost
			idx, edgeCost := p0Idx, cost+moveCost
			var fallback *fallbackEdge[N, C]

			if hasParent && jumpCheck != nil {
				if jumped, ok := jumpCheck(p1.node, p0.node, node); ok {
					backup := &fallbackEdge[N, C]{parent: p0Idx, cost: cost + moveCost, node: node}
					jumpCost := movementCost(p1.node, jumped)

					idx = p0.parent
					edgeCost = p1.cost + jumpCost
					node = jumped
					fallback = backup
				}
			}

			addPending(visited, pending, heuristic, idx, edgeCost, node, fallback)
		}
	}

	return Result[N, C]{}, false
}

// addPending records node as reachable from parentIdx at cost, if
// that improves on (or introduces) its visited-table entry, and
// pushes a corresponding frontier entry. It is a no-op if an
// already-visited entry for node is at least as cheap.
func addPending[N comparable, C cmp.Ordered](
	visited *visitedTable[N, C],
	pending *frontier[N, C],
	heuristic func(N) C,
	parentIdx int,
	cost C,
	node N,
	fallback *fallbackEdge[N, C],
) {
	idx, changed := visited.tryInsert(node, parentIdx, cost)
	if !changed {
		return
	}

	h := heuristic(node)
	heap.Push(pending, pendingEntry[N, C]{
		estimatedCost: cost + h,
		cost:          cost,
		index:         idx,
		fallback:      fallback,
	})
}

// buildResult walks the parent chain from goalIdx back to the root,
// collecting nodes, then reverses it into start-to-goal order.
func buildResult[N comparable, C cmp.Ordered](visited *visitedTable[N, C], goalIdx int, cost C) Result[N, C] {
	var path []N

	for idx := goalIdx; idx != noParent; {
		entry, ok := visited.at(idx)
		if !ok {
			break
		}
		path = append(path, entry.node)
		idx = entry.parent
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return Result[N, C]{Path: path, Cost: cost}
}
