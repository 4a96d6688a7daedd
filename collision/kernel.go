package collision

import (
	"math"

	"github.com/wildbook/shorai/pos"
)

// WithinWindow reports whether two circles of combined radius
// sqrt(radiusSq), centered at pa/pb and moving at constant velocities
// va/vb, come within that radius of each other at any instant in
// [0, window].
//
// The test is expressed as the reduced (monic) quadratic
// τ² + 2pτ + q = 0 derived from |  (pa + va·τ) - (pb + vb·τ)  |² = radiusSq,
// and answers "does a real root fall in (0, window]?" with comparisons
// only, without ever computing τ or a square root. The early-touch
// test at the top is kept as its own branch rather than folded into
// the quadratic: removing it measured roughly 30% slower on the
// missile-overlap hot path. Keep the branch structure as written.
//
// A window of zero or less answers the early-touch test only. Equal
// velocities (a zero leading coefficient) leave the separation
// constant, so once the early-touch test has failed p and d below
// are NaN and the switch returns false.
func WithinWindow(pa, pb, va, vb pos.Vec2, radiusSq, window float64) bool {
	if pa.Sub(pb).MagSq() < radiusSq {
		return true
	}

	if window <= 0 {
		return false
	}

	c0 := va.Dot(va) + vb.Dot(vb) - va.Dot(vb) - va.Dot(vb)
	c1 := va.Dot(pa) + vb.Dot(pb) - vb.Dot(pa) - va.Dot(pb)
	c2 := pa.Dot(pa) + pb.Dot(pb) - pa.Dot(pb) - pa.Dot(pb) - radiusSq

	p := (c1 + c1) / (c0 + c0)
	q := c2 / c0
	d := p*p - q

	switch {
	case d == 0 && 0 < p:
		return p < window
	case 0 < d:
		pSqSigned := p * math.Abs(p)
		timeSq := window * window
		value := timeSq + pSqSigned
		return (d > pSqSigned && d < value) || (d < -pSqSigned && -d < value)
	default:
		return false
	}
}

// SolveCollisionTime returns the earliest instant τ in [0, +∞) at which
// the two circles described by WithinWindow's parameters touch, and
// true if such an instant exists. It reports (0, true) if the circles
// already overlap at τ=0.
func SolveCollisionTime(pa, pb, va, vb pos.Vec2, radiusSq float64) (float64, bool) {
	if pa.Sub(pb).MagSq() < radiusSq {
		return 0, true
	}

	c0 := va.Dot(va) + vb.Dot(vb) - va.Dot(vb) - va.Dot(vb)
	c1 := va.Dot(pa) + vb.Dot(pb) - vb.Dot(pa) - va.Dot(pb)
	c2 := pa.Dot(pa) + pb.Dot(pb) - pa.Dot(pb) - pa.Dot(pb) - radiusSq

	roots, n := solveQuadratic(c0, c1+c1, c2)

	switch n {
	case 1:
		if roots[0] > 0 {
			return roots[0], true
		}
		return 0, false
	case 2:
		t0, t1 := roots[0], roots[1]
		switch {
		case t0 > 0 && t1 > 0:
			return math.Min(t0, t1), true
		case t0 > 0:
			return t0, true
		case t1 > 0:
			return t1, true
		default:
			return 0, false
		}
	default:
		return 0, false
	}
}

// solveQuadratic solves c0·τ² + c1·τ + c2 = 0 in its reduced monic
// form and returns the real roots, if any: n is 0 (no real root), 1
// (a repeated root, in roots[0]), or 2 (roots[0], roots[1]).
func solveQuadratic(c0, c1, c2 float64) (roots [2]float64, n int) {
	p := c1 / (c0 + c0)
	q := c2 / c0
	d := p*p - q

	switch {
	case d == 0:
		roots[0] = -p
		return roots, 1
	case d < 0:
		return roots, 0
	default:
		sq := math.Sqrt(d)
		roots[0] = sq - p
		roots[1] = -sq - p
		return roots, 2
	}
}
