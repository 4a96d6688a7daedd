package pathfind_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wildbook/shorai/pathfind"
)

// point is a minimal comparable node type used to exercise the planner
// without depending on package pos. Real callers (package shorai) use
// pos.Position; the algorithm itself doesn't care.
type point struct{ X, Y int }

func manhattan(a, b point) int {
	d := func(n int) int {
		if n < 0 {
			return -n
		}
		return n
	}
	return d(a.X-b.X) + d(a.Y-b.Y)
}

func gridSuccessors(p point) []pathfind.Successor[point, int] {
	deltas := [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	out := make([]pathfind.Successor[point, int], 0, 4)
	for _, d := range deltas {
		out = append(out, pathfind.Successor[point, int]{Node: point{p.X + d[0], p.Y + d[1]}, Cost: 1})
	}
	return out
}

func TestFind_EmptyGridFindsDirectPath(t *testing.T) {
	start := point{0, 0}
	goal := point{3, 4}

	result, ok := pathfind.Find(
		start,
		gridSuccessors,
		func(_, _ point) bool { return true },
		func(a, b point) int { return manhattan(a, b) },
		func(p point) int { return manhattan(p, goal) },
		func(p point) bool { return p == goal },
	)

	require.True(t, ok)
	assert.Equal(t, 7, result.Cost)
	assert.Equal(t, start, result.Path[0])
	assert.Equal(t, goal, result.Path[len(result.Path)-1])

	// Parent-link integrity: consecutive path nodes must be one grid
	// step apart (no edge skips a node it shouldn't).
	for i := 1; i < len(result.Path); i++ {
		assert.Equal(t, 1, manhattan(result.Path[i-1], result.Path[i]))
	}
}

func TestFind_ObstacleForcesLongerDetour(t *testing.T) {
	start := point{0, 0}
	goal := point{4, 0}

	blocked := map[point]bool{
		{1, 0}: true, {2, 0}: true, {3, 0}: true,
	}
	isValidMove := func(_, to point) bool { return !blocked[to] }

	direct, ok := pathfind.Find(start, gridSuccessors, func(_, _ point) bool { return true },
		manhattan, func(p point) int { return manhattan(p, goal) }, func(p point) bool { return p == goal })
	require.True(t, ok)

	detour, ok := pathfind.Find(start, gridSuccessors, isValidMove,
		manhattan, func(p point) int { return manhattan(p, goal) }, func(p point) bool { return p == goal })
	require.True(t, ok)

	assert.Greater(t, detour.Cost, direct.Cost)

	for i := 1; i < len(detour.Path); i++ {
		assert.False(t, blocked[detour.Path[i]])
	}
}

func TestFind_UnreachableGoalReturnsFalse(t *testing.T) {
	start := point{0, 0}
	goal := point{10, 10}

	isValidMove := func(_, to point) bool { return to.X == 0 && to.Y == 0 }

	_, ok := pathfind.Find(start, gridSuccessors, isValidMove,
		manhattan, func(p point) int { return manhattan(p, goal) }, func(p point) bool { return p == goal })

	assert.False(t, ok)
}

func TestFind_IsDeterministic(t *testing.T) {
	start := point{0, 0}
	goal := point{5, 5}

	run := func() pathfind.Result[point, int] {
		result, ok := pathfind.Find(start, gridSuccessors, func(_, _ point) bool { return true },
			manhattan, func(p point) int { return manhattan(p, goal) }, func(p point) bool { return p == goal })
		require.True(t, ok)
		return result
	}

	a, b := run(), run()
	assert.Equal(t, a.Path, b.Path)
	assert.Equal(t, a.Cost, b.Cost)
}

func TestFind_JumpCheckShortcutFallsBackWhenInvalid(t *testing.T) {
	start := point{0, 0}
	goal := point{4, 0}

	blocked := map[point]bool{{2, 0}: true}
	isValidMove := func(_, to point) bool { return !blocked[to] }

	// Always attempt to skip straight from grandparent to the
	// successor; if that jump lands on a blocked cell the fallback
	// (the original unskipped edge) must still be considered.
	jump := func(p1, _ point, node point) (point, bool) {
		return node, true
	}

	result, ok := pathfind.Find(start, gridSuccessors, isValidMove,
		manhattan, func(p point) int { return manhattan(p, goal) }, func(p point) bool { return p == goal },
		pathfind.WithJumpCheck[point, int](jump))

	require.True(t, ok)
	assert.Equal(t, goal, result.Path[len(result.Path)-1])
	for _, p := range result.Path {
		assert.False(t, blocked[p])
	}
}

func TestFindWithInitial_SeedsFrontierDirectly(t *testing.T) {
	start := point{0, 0}
	goal := point{2, 0}

	initial := []pathfind.Successor[point, int]{
		{Node: point{1, 0}, Cost: 1},
	}

	result, ok := pathfind.FindWithInitial(start, initial, gridSuccessors,
		func(_, _ point) bool { return true },
		manhattan, func(p point) int { return manhattan(p, goal) }, func(p point) bool { return p == goal })

	require.True(t, ok)
	assert.Equal(t, start, result.Path[0])
	assert.Equal(t, goal, result.Path[len(result.Path)-1])
}

func TestFind_PanicsOnNilCallback(t *testing.T) {
	assert.Panics(t, func() {
		pathfind.Find[point, int](point{}, nil, func(_, _ point) bool { return true },
			manhattan, func(point) int { return 0 }, func(point) bool { return true })
	})
}

func TestFind_WaitingSuccessorCanUnblockAPath(t *testing.T) {
	// A node type that includes a time component, and a hazard that
	// only blocks arriving at x==1 at t==1: waiting one tick at x==0
	// lets the pawn through once the hazard has moved on.
	type tpoint struct{ X, T int }

	start := tpoint{0, 0}
	goal := tpoint{2, 5}

	successors := func(p tpoint) []pathfind.Successor[tpoint, int] {
		return []pathfind.Successor[tpoint, int]{
			{Node: tpoint{p.X, p.T + 1}, Cost: 0},  // wait
			{Node: tpoint{p.X + 1, p.T + 1}, Cost: 1}, // advance
		}
	}

	isValidMove := func(_, to tpoint) bool {
		return !(to.X == 1 && to.T == 1)
	}

	heuristic := func(p tpoint) int {
		d := goal.X - p.X
		if d < 0 {
			d = -d
		}
		return d
	}

	result, ok := pathfind.Find(start, successors, isValidMove, func(a, b tpoint) int {
		d := b.X - a.X
		if d < 0 {
			d = -d
		}
		return d
	}, heuristic, func(p tpoint) bool { return p.X == goal.X })

	require.True(t, ok)

	foundWait := false
	for i := 1; i < len(result.Path); i++ {
		if result.Path[i-1].X == result.Path[i].X {
			foundWait = true
		}
	}
	assert.True(t, foundWait, "expected the path to include at least one waiting step")
}
