package geometry

import "github.com/wildbook/shorai/pos"

// Line is a 2-D segment from Begin to End.
type Line struct {
	Begin, End pos.Vec2
}

// DistToPointSq returns the squared distance from point to the closest
// point on the segment l, clamping the projection parameter to [0, 1]
// so points beyond either endpoint measure against that endpoint
// rather than the infinite line through it. A zero-length segment
// degenerates to point-to-point distance.
func (l Line) DistToPointSq(point pos.Vec2) float64 {
	d := l.End.Sub(l.Begin)
	l2 := d.MagSq()

	if l2 == 0 {
		return point.Sub(l.Begin).MagSq()
	}

	// Project point onto the line through Begin/End; t is where the
	// projection falls, parameterized as Begin + t*(End-Begin).
	t := point.Sub(l.Begin).Dot(d) / l2

	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	closest := l.Begin.Add(d.Scale(t))

	return point.Sub(closest).MagSq()
}
