package scenario_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wildbook/shorai/scenario"
)

func TestGenerate_ProducesRequestedCount(t *testing.T) {
	cfg := scenario.DefaultConfig(2000, 2000, 10)
	set := scenario.Generate(cfg, 25, 42)
	assert.Equal(t, 25, set.Len())
}

func TestGenerate_ZeroCountIsEmptySet(t *testing.T) {
	cfg := scenario.DefaultConfig(2000, 2000, 10)
	set := scenario.Generate(cfg, 0, 42)
	assert.Equal(t, 0, set.Len())
}

func TestGenerate_SameSeedIsDeterministic(t *testing.T) {
	cfg := scenario.DefaultConfig(2000, 2000, 10)

	a := scenario.Generate(cfg, 10, 7)
	b := scenario.Generate(cfg, 10, 7)

	for id := int32(0); id < 10; id++ {
		ma, ok := a.Get(id)
		require.True(t, ok)
		mb, ok := b.Get(id)
		require.True(t, ok)
		assert.Equal(t, ma, mb)
	}
}

func TestGenerate_DifferentSeedsDiverge(t *testing.T) {
	cfg := scenario.DefaultConfig(2000, 2000, 10)

	a := scenario.Generate(cfg, 10, 1)
	b := scenario.Generate(cfg, 10, 2)

	ma, _ := a.Get(0)
	mb, _ := b.Get(0)
	assert.NotEqual(t, ma, mb)
}

func TestGenerate_MissilesStayWithinConfiguredRanges(t *testing.T) {
	cfg := scenario.DefaultConfig(2000, 2000, 10)
	set := scenario.Generate(cfg, 50, 99)

	for id := int32(0); id < 50; id++ {
		m, ok := set.Get(id)
		require.True(t, ok)

		assert.GreaterOrEqual(t, m.Radius, cfg.MinRadius)
		assert.LessOrEqual(t, m.Radius, cfg.MaxRadius)
		assert.GreaterOrEqual(t, m.TimeBeg, cfg.MinSpawn)
		assert.LessOrEqual(t, m.TimeBeg, cfg.MaxSpawn)
	}
}
