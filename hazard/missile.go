package hazard

import (
	"fmt"
	"math"

	"github.com/wildbook/shorai/collision"
	"github.com/wildbook/shorai/geometry"
	"github.com/wildbook/shorai/pos"
)

// Missile is a circular hazard travelling in a straight line at
// constant speed from Origin to Target, existing only during
// [TimeBeg, TimeEnd]. Velocity is the full velocity vector (direction
// times speed), precomputed once at construction so the hot-path
// queries below never divide.
type Missile struct {
	TimeBeg, TimeEnd float64

	Radius         float64
	Origin, Target pos.Vec2
	Velocity       pos.Vec2
}

// NewMissile constructs a missile spawning at spawnTime and travelling
// from origin to target at the given speed. It panics if speed is not
// positive or origin equals target; use NewMissileChecked at a
// boundary where that input cannot be trusted.
func NewMissile(spawnTime float64, origin, target pos.Vec2, radius, speed float64) Missile {
	m, err := NewMissileChecked(spawnTime, origin, target, radius, speed)
	if err != nil {
		panic(err)
	}
	return m
}

// NewMissileChecked is the non-panicking variant of NewMissile.
func NewMissileChecked(spawnTime float64, origin, target pos.Vec2, radius, speed float64) (Missile, error) {
	if speed <= 0 {
		return Missile{}, fmt.Errorf("%w: %g", ErrNonPositiveSpeed, speed)
	}

	offset := target.Sub(origin)
	distance := offset.Mag()
	if distance == 0 {
		return Missile{}, ErrDegenerateTrajectory
	}

	timeMoving := distance / speed
	velocity := offset.Scale(1 / timeMoving)

	return Missile{
		Origin:   origin,
		Target:   target,
		Radius:   radius,
		Velocity: velocity,
		TimeBeg:  spawnTime,
		TimeEnd:  spawnTime + timeMoving,
	}, nil
}

// GetPosRange returns the missile's position at the start and end of
// its overlap with [timeStart, timeEnd], clamped to the missile's own
// lifetime. ok is false if the missile isn't alive at any point in
// that window.
func (m Missile) GetPosRange(timeStart, timeEnd float64) (beg, end pos.Position, ok bool) {
	isAlive := m.TimeBeg <= timeEnd && timeStart <= m.TimeEnd

	// Compute isAlive before touching the clamped bounds below: folding
	// the clamp into the condition lets the compiler treat the whole
	// thing as branchless, which has measured slower than the explicit
	// early return on this path.
	if !isAlive {
		return pos.Position{}, pos.Position{}, false
	}

	tBeg := math.Max(m.TimeBeg, timeStart)
	tEnd := math.Min(m.TimeEnd, timeEnd)

	offToBeg := tBeg - m.TimeBeg
	offToEnd := tEnd - tBeg

	begPos := m.Origin.Add(m.Velocity.Scale(offToBeg))
	endPos := m.Origin.Add(m.Velocity.Scale(offToBeg + offToEnd))

	return pos.FromVec2(begPos, tBeg), pos.FromVec2(endPos, tEnd), true
}

// Overlaps reports whether the missile's swept path since smearFrom
// passes within Radius+pawnSize of p by the time p.T is reached. This
// is the "did it already hit us" check used once an edge's arrival
// time is fixed, as distinct from Collides' continuous-time test
// against a still-moving pawn.
func (m Missile) Overlaps(smearFrom float64, p pos.Position, pawnSize float64) bool {
	beg, end, ok := m.GetPosRange(smearFrom, p.T)
	if !ok {
		return false
	}

	line := geometry.Line{Begin: beg.Vec2(), End: end.Vec2()}
	r := m.Radius + pawnSize

	return line.DistToPointSq(p.Vec2()) < r*r
}

// Collides reports whether a pawn at pos moving at the constant
// velocity would come within Radius+pawnSize of the missile at any
// instant in [timeStart, timeEnd] (further clamped to pos.T and to
// both lifetimes).
func (m Missile) Collides(p pos.Position, velocity pos.Vec2, timeStart, timeEnd, pawnSize float64) bool {
	tBeg := math.Max(math.Max(m.TimeBeg, timeStart), p.T)
	tEnd := math.Min(m.TimeEnd, timeEnd)

	if tEnd < tBeg {
		return false
	}

	offToBegMis := tBeg - m.TimeBeg
	offToBegPos := tBeg - p.T

	targetPosBeg := p.Vec2().Add(velocity.Scale(offToBegPos))
	targetMisBeg := m.Origin.Add(m.Velocity.Scale(offToBegMis))

	tDlt := tEnd - tBeg
	r := m.Radius + pawnSize

	return collision.WithinWindow(targetPosBeg, targetMisBeg, velocity, m.Velocity, r*r, tDlt)
}
