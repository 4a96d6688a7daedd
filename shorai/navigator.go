package shorai

import (
	"fmt"

	"github.com/wildbook/shorai/hazard"
	"github.com/wildbook/shorai/pathfind"
	"github.com/wildbook/shorai/pos"
)

// Request describes one path query: a pawn of PawnSize radius moving
// at MoveSpeed through a plane populated by Hazards, from Origin to
// Target, on a search grid of StepSize, bounded by MaxTime and
// MaxSteps.
type Request struct {
	Origin  pos.Position
	Target  pos.Position
	Hazards *hazard.HazardSet

	StepSize  float64
	PawnSize  float64
	MoveSpeed float64
	MaxTime   float64
	MaxSteps  int
}

func (r Request) validate() error {
	switch {
	case r.Hazards == nil:
		return ErrNilHazards
	case r.StepSize <= 0:
		return fmt.Errorf("%w: %g", ErrNonPositiveStepSize, r.StepSize)
	case r.MoveSpeed <= 0:
		return fmt.Errorf("%w: %g", ErrNonPositiveMoveSpeed, r.MoveSpeed)
	case r.MaxSteps <= 0:
		return fmt.Errorf("%w: %d", ErrNonPositiveMaxSteps, r.MaxSteps)
	case r.MaxTime <= 0:
		return fmt.Errorf("%w: %g", ErrNonPositiveMaxTime, r.MaxTime)
	}
	return nil
}

// FindPath searches for a hazard-avoiding path from req.Origin to
// req.Target. It returns ok=false (with a nil error) only if the search
// space was exhausted. Running out of the step budget, or accepting a
// node whose time has reached req.MaxTime, also ends the search with
// ok=true: the returned path then ends at that node, which need not be
// near req.Target. It returns a non-nil error only if req itself is
// malformed.
func FindPath(req Request) (pathfind.Result[pos.Position, pos.Cost], bool, error) {
	var zero pathfind.Result[pos.Position, pos.Cost]

	if err := req.validate(); err != nil {
		return zero, false, err
	}

	stepTime := req.StepSize / req.MoveSpeed

	successors := func(p pos.Position) []pathfind.Successor[pos.Position, pos.Cost] {
		out := pos.Successors(p, stepTime, req.StepSize)
		converted := make([]pathfind.Successor[pos.Position, pos.Cost], len(out))
		for i, s := range out {
			converted[i] = pathfind.Successor[pos.Position, pos.Cost]{Node: s.Node, Cost: s.Cost}
		}
		return converted
	}

	// A move is valid if no tracked hazard intersects the straight-
	// line trajectory between the two endpoints at the pawn's speed
	// and size. This is deliberately the only place a collision check
	// happens — pathfind only calls it once an edge is actually
	// expanded, never when it's merely generated.
	isValidMove := func(beg, end pos.Position) bool {
		_, collides := req.Hazards.CollidesTrajectory(beg, end, req.MoveSpeed, req.PawnSize)
		return !collides
	}

	movementCost := func(beg, end pos.Position) pos.Cost {
		return pos.Cost(beg.Dist(end) / req.StepSize)
	}

	heuristic := func(p pos.Position) pos.Cost {
		return pos.Cost(p.DistManhattan(req.Target))
	}

	// steps counts down on every node the search actually commits to
	// validating; this bounds worst-case search time independently of
	// MaxTime, which only bounds how far into the future a path may
	// reach.
	steps := req.MaxSteps
	success := func(p pos.Position) bool {
		steps--
		return steps <= 0 || p.IsSamePos(req.Target, req.StepSize) || req.MaxTime <= p.T
	}

	jumpCheck := func(p1, p0, node pos.Position) (pos.Position, bool) {
		return pos.DefaultJumpRewriter(p1, p0, node, req.MoveSpeed)
	}

	result, ok := pathfind.Find(
		req.Origin,
		successors,
		isValidMove,
		movementCost,
		heuristic,
		success,
		pathfind.WithJumpCheck[pos.Position, pos.Cost](jumpCheck),
	)

	return result, ok, nil
}
