package pos

import "math"

// sqrt2 is the diagonal movement cost relative to a unit orthogonal
// step, matching the original successors() direction/diagonal split.
var sqrt2 = math.Sqrt2

// Successor pairs a candidate node with the cost of moving there.
type Successor struct {
	Node Position
	Cost Cost
}

// Successors returns the default 9-neighbour move set from p: staying
// still, the four orthogonal directions, and the four diagonals, each
// scaled by stepSize spatially and stepTime temporally. Diagonal moves
// cost sqrt(2) times an orthogonal move; staying still costs zero and
// only advances time by stepTime.
//
// stepTime is the time taken to cover stepSize units at the pawn's
// movement speed (stepTime = stepSize / moveSpeed); callers compute it
// once per search rather than passing speed through every call.
func Successors(p Position, stepTime, stepSize float64) []Successor {
	dirDT := stepTime
	diaDT := sqrt2 * stepTime

	s := stepSize

	return []Successor{
		// Staying still: only time advances.
		{p.Next(0, 0, stepTime), 0},

		// Orthogonal moves.
		{p.Next(s, 0, dirDT), 1},
		{p.Next(0, s, dirDT), 1},
		{p.Next(0, -s, dirDT), 1},
		{p.Next(-s, 0, dirDT), 1},

		// Diagonal moves.
		{p.Next(s, s, diaDT), Cost(sqrt2)},
		{p.Next(-s, s, diaDT), Cost(sqrt2)},
		{p.Next(-s, -s, diaDT), Cost(sqrt2)},
		{p.Next(s, -s, diaDT), Cost(sqrt2)},
	}
}
