package shorai_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wildbook/shorai/hazard"
	"github.com/wildbook/shorai/pos"
	"github.com/wildbook/shorai/shorai"
)

func baseRequest() shorai.Request {
	return shorai.Request{
		Origin:    pos.New(0, 0, 0),
		Hazards:   hazard.NewHazardSet(),
		StepSize:  50,
		PawnSize:  10,
		MoveSpeed: 100,
		MaxTime:   1000,
		MaxSteps:  100000,
	}
}

func TestFindPath_EmptyHazardSetReachesDiagonalGoal(t *testing.T) {
	req := baseRequest()
	req.Target = pos.New(1000, 1000, 100)

	result, ok, err := shorai.FindPath(req)
	require.NoError(t, err)
	require.True(t, ok)

	// A pure diagonal displacement of 1000 units at a 50-unit step
	// costs 20 diagonal moves worth of distance (sqrt(2) each) however
	// many waypoints the jump shortcut collapses it down to — cost is
	// additive along a straight line regardless of how it's chunked.
	wantCost := 20 * math.Sqrt2
	assert.InDelta(t, wantCost, float64(result.Cost), 1e-6)
	assert.Equal(t, req.Origin, result.Path[0])
	assert.True(t, result.Path[len(result.Path)-1].IsSamePos(req.Target, req.StepSize))
}

func TestFindPath_HazardForcesLongerDetour(t *testing.T) {
	direct := baseRequest()
	direct.Target = pos.New(1000, 0, 100)
	directResult, ok, err := shorai.FindPath(direct)
	require.NoError(t, err)
	require.True(t, ok)

	blocked := baseRequest()
	blocked.Target = pos.New(1000, 0, 100)
	hazards := hazard.NewHazardSet()
	// A wide missile crawling across the midpoint of the direct line
	// (x=500, from y=-100 to y=100 over 20s), so it straddles the line
	// when the pawn would pass there at t=5.
	hazards.Insert(0, hazard.NewMissile(0, pos.Vec2{X: 500, Y: -100}, pos.Vec2{X: 500, Y: 100}, 100, 10))
	blocked.Hazards = hazards

	detourResult, ok, err := shorai.FindPath(blocked)
	require.NoError(t, err)
	require.True(t, ok)

	assert.Greater(t, float64(detourResult.Cost), float64(directResult.Cost))

	for i := 1; i < len(detourResult.Path); i++ {
		a, b := detourResult.Path[i-1], detourResult.Path[i]
		assert.True(t, a.T <= b.T)
	}
}

func TestFindPath_WaitingStepCanBeNecessary(t *testing.T) {
	req := baseRequest()
	req.Target = pos.New(200, 0, 0)
	req.MaxTime = 500

	hazards := hazard.NewHazardSet()
	// A missile that sweeps across x=100 briefly near t=1, then is
	// gone; waiting a tick before crossing should let the pawn by.
	hazards.Insert(0, hazard.NewMissile(0.5, pos.Vec2{X: 100, Y: -500}, pos.Vec2{X: 100, Y: 500}, 30, 1000))
	req.Hazards = hazards

	result, ok, err := shorai.FindPath(req)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, result.Path[len(result.Path)-1].IsSamePos(req.Target, req.StepSize))
}

func TestFindPath_RejectsMalformedRequest(t *testing.T) {
	req := baseRequest()
	req.StepSize = 0

	_, _, err := shorai.FindPath(req)
	assert.Error(t, err)

	req = baseRequest()
	req.Hazards = nil
	_, _, err = shorai.FindPath(req)
	assert.Error(t, err)
}
