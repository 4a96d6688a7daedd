package pathfind

import "cmp"

// Successor is one outgoing move from a node: the node it reaches and
// the incremental cost of reaching it.
type Successor[N any, C cmp.Ordered] struct {
	Node N
	Cost C
}

// Config bundles the optional tunables accepted by Find and
// FindWithInitial. The required search callbacks (successors,
// isValidMove, movementCost, heuristic, success) are passed
// positionally; Config only holds the pieces that have a sensible
// zero value.
type Config[N any, C cmp.Ordered] struct {
	// Initial, if non-nil, seeds the frontier with these (node, cost)
	// pairs directly instead of starting from the root node itself.
	// Each is validated against the root via isValidMove before being
	// admitted. Grounded on find_with_init's initialize argument.
	Initial []Successor[N, C]

	// JumpCheck, if set, is consulted whenever the search is about to
	// expand a node that itself has a parent (i.e. not the root). It
	// receives (grandparent, parent, successor) and may return a
	// rewritten successor node plus true to request a parent-skip
	// shortcut from grandparent straight to that node; returning false
	// declines the shortcut and the move proceeds as an ordinary edge.
	JumpCheck func(p1, p0, node N) (N, bool)
}

// Option configures a Config in place.
type Option[N any, C cmp.Ordered] func(*Config[N, C])

// WithInitial sets Config.Initial.
func WithInitial[N any, C cmp.Ordered](initial []Successor[N, C]) Option[N, C] {
	return func(c *Config[N, C]) { c.Initial = initial }
}

// WithJumpCheck sets Config.JumpCheck.
func WithJumpCheck[N any, C cmp.Ordered](fn func(p1, p0, node N) (N, bool)) Option[N, C] {
	return func(c *Config[N, C]) { c.JumpCheck = fn }
}

// Result is a successful search outcome: the path from start to goal
// inclusive, in order, and its total cost.
type Result[N any, C cmp.Ordered] struct {
	Path []N
	Cost C
}

// noParent marks the root node's parent slot in the visited table; no
// real node index is ever negative.
const noParent = -1

// visitedEntry is one row of the insertion-ordered visited table: the
// node itself, the index of its parent row (or noParent), and the
// best cost found to reach it so far.
type visitedEntry[N any, C cmp.Ordered] struct {
	node   N
	parent int
	cost   C
}

// visitedTable is the "vector plus hash-map-to-index" shape: row
// indices are stable dense integers that are never reused or
// renumbered, so parent links can be plain ints instead of pointers.
type visitedTable[N comparable, C cmp.Ordered] struct {
	rows  []visitedEntry[N, C]
	index map[N]int
}

func newVisitedTable[N comparable, C cmp.Ordered]() *visitedTable[N, C] {
	return &visitedTable[N, C]{index: make(map[N]int)}
}

// insertRoot adds the search's start node with no parent and returns
// its row index (always 0, the first call on a fresh table).
func (t *visitedTable[N, C]) insertRoot(node N, cost C) int {
	t.rows = append(t.rows, visitedEntry[N, C]{node: node, parent: noParent, cost: cost})
	idx := len(t.rows) - 1
	t.index[node] = idx
	return idx
}

func (t *visitedTable[N, C]) at(i int) (visitedEntry[N, C], bool) {
	if i < 0 || i >= len(t.rows) {
		var zero visitedEntry[N, C]
		return zero, false
	}
	return t.rows[i], true
}

// tryInsert records node as reached via parent at cost, if node is
// unseen or this is strictly cheaper than its current best. Returns
// the row index and whether the table actually changed.
func (t *visitedTable[N, C]) tryInsert(node N, parent int, cost C) (int, bool) {
	if i, ok := t.index[node]; ok {
		if cost < t.rows[i].cost {
			t.rows[i].parent = parent
			t.rows[i].cost = cost
			return i, true
		}
		return i, false
	}

	idx := len(t.rows)
	t.rows = append(t.rows, visitedEntry[N, C]{node: node, parent: parent, cost: cost})
	t.index[node] = idx
	return idx, true
}
