package geometry_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wildbook/shorai/geometry"
	"github.com/wildbook/shorai/pos"
)

func TestDistToPointSq_ProjectsOntoSegment(t *testing.T) {
	line := geometry.Line{Begin: pos.Vec2{X: 0, Y: 0}, End: pos.Vec2{X: 1, Y: 0}}
	point := pos.Vec2{X: 0.5, Y: 1}

	got := math.Sqrt(line.DistToPointSq(point))
	assert.InDelta(t, 1.0, got, 1e-9)
}

func TestDistToPointSq_ClampsBeyondEndpoints(t *testing.T) {
	line := geometry.Line{Begin: pos.Vec2{X: 0, Y: 0}, End: pos.Vec2{X: 1, Y: 0}}

	// Beyond End: distance should be measured from End, not the infinite line.
	got := math.Sqrt(line.DistToPointSq(pos.Vec2{X: 2, Y: 0}))
	assert.InDelta(t, 1.0, got, 1e-9)

	// Before Begin: distance should be measured from Begin.
	got = math.Sqrt(line.DistToPointSq(pos.Vec2{X: -1, Y: 0}))
	assert.InDelta(t, 1.0, got, 1e-9)
}

func TestDistToPointSq_ZeroLengthSegment(t *testing.T) {
	line := geometry.Line{Begin: pos.Vec2{X: 0, Y: 0}, End: pos.Vec2{X: 0, Y: 0}}

	got := math.Sqrt(line.DistToPointSq(pos.Vec2{X: 1, Y: 0}))
	assert.InDelta(t, 1.0, got, 1e-9)
}
