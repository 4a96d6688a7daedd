package pathfind_test

import (
	"testing"

	"github.com/wildbook/shorai/pathfind"
)

// BenchmarkFind_OpenGrid measures planner throughput on an obstacle-
// free grid, representative of the "no hazards in the way" case
// a scenario's planner budget has to stay fast on regardless.
func BenchmarkFind_OpenGrid(b *testing.B) {
	start := point{0, 0}
	goal := point{50, 50}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pathfind.Find(start, gridSuccessors, func(_, _ point) bool { return true },
			manhattan, func(p point) int { return manhattan(p, goal) }, func(p point) bool { return p == goal })
	}
}

// BenchmarkFind_SparseObstacles measures the cost of deferred
// validation paying off: most generated edges are never checked
// because the frontier's heuristic steers around the sparse blocks.
func BenchmarkFind_SparseObstacles(b *testing.B) {
	start := point{0, 0}
	goal := point{50, 50}

	blocked := make(map[point]bool)
	for i := 5; i < 45; i += 5 {
		blocked[point{i, i}] = true
	}
	isValidMove := func(_, to point) bool { return !blocked[to] }

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pathfind.Find(start, gridSuccessors, isValidMove,
			manhattan, func(p point) int { return manhattan(p, goal) }, func(p point) bool { return p == goal })
	}
}
