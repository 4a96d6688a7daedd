package pos

// jumpEpsilon is the Manhattan-distance threshold below which two
// positions are considered coincident for the purposes of jump
// rewriting — "same grid cell" tolerance, intentionally coarser than
// exact equality since jump candidates arrive from independent
// arithmetic paths (a direct step vs. a recalculated jump).
const jumpEpsilon = 0.1

// DefaultJumpRewriter is the reasonable default jump check for
// pathfinding: given the node we're jumping from (p1), the node we're
// skipping over (p0) and the node we're considering jumping to (n), it
// returns the node value to use for the optimistic p1 -> n edge,
// recalculating n's time coordinate from the straight-line distance
// p1 -> n at the given move speed.
//
// If p1, p0 and n are all distinct, the jump is accepted and n's time
// is recalculated. If all three coincide (a chain of "wait" moves at
// the same spatial point), the jump is also accepted, but the time
// coordinate of n is left untouched — only the spatial waypoint is
// folded away, so that a deliberate delay isn't optimized into a
// no-op. If exactly two of the three coincide, the jump is refused
// (ok == false) and the caller falls back to the normal p0 -> n edge.
func DefaultJumpRewriter(p1, p0, n Position, moveSpeed float64) (Position, bool) {
	p1p0Same := p1.DistManhattan(p0) < jumpEpsilon
	p1nSame := p1.DistManhattan(n) < jumpEpsilon
	p0nSame := p0.DistManhattan(n) < jumpEpsilon

	if !p1p0Same && !p0nSame && !p1nSame {
		node := n
		node.T = p1.T + n.Dist(p1)/moveSpeed

		return node, true
	}

	if p1p0Same && p0nSame {
		return n, true
	}

	return Position{}, false
}
