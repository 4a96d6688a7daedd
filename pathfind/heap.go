package pathfind

import "cmp"

// fallbackEdge is the edge to fall back to if a speculative parent-
// skip jump is later found invalid: the original (pre-jump) parent
// row, the cost of that unoptimised edge, and the node as it was
// before the jump's JumpCheck callback may have rewritten it.
type fallbackEdge[N any, C cmp.Ordered] struct {
	parent int
	cost   C
	node   N
}

// pendingEntry is one frontier entry: a candidate edge into row
// index, not yet validated, carrying both the cost used to order it
// and the fallback to resurrect if it turns out to be a jump that
// doesn't pan out.
type pendingEntry[N any, C cmp.Ordered] struct {
	estimatedCost C
	cost          C
	index         int
	fallback      *fallbackEdge[N, C]
}

// frontier is a container/heap.Interface ordered by smallest
// estimatedCost first, ties broken in favor of the larger accumulated
// cost (preferring the entry that is, all else equal, closer to
// having already paid its way to the goal).
type frontier[N any, C cmp.Ordered] []pendingEntry[N, C]

func (f frontier[N, C]) Len() int { return len(f) }

func (f frontier[N, C]) Less(i, j int) bool {
	if f[i].estimatedCost != f[j].estimatedCost {
		return f[i].estimatedCost < f[j].estimatedCost
	}
	return f[i].cost > f[j].cost
}

func (f frontier[N, C]) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier[N, C]) Push(x any) {
	*f = append(*f, x.(pendingEntry[N, C]))
}

func (f *frontier[N, C]) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]
	return item
}
