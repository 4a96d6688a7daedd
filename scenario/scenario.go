package scenario

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/wildbook/shorai/hazard"
	"github.com/wildbook/shorai/pos"
)

// Config bounds the random synthesis of a hazard set: every sampled
// missile's origin and target fall in [MinX,MaxX]x[MinY,MaxY], its
// radius in [MinRadius,MaxRadius], its speed in [MinSpeed,MaxSpeed],
// and its spawn time in [MinSpawn,MaxSpawn]. The zero value is not
// usable; use DefaultConfig as a starting point.
type Config struct {
	MinX, MaxX float64
	MinY, MaxY float64

	MinRadius, MaxRadius float64
	MinSpeed, MaxSpeed   float64
	MinSpawn, MaxSpawn   float64
}

// DefaultConfig gives the ranges a 2000x2000 arena demo samples
// missiles from: origins and targets in [-100, arenaWidth] x
// [-100, arenaHeight] (a 100-unit margin past the low edges only),
// radius 60-120, speed 300-1000, spawning any time before maxTime.
func DefaultConfig(arenaWidth, arenaHeight, maxTime float64) Config {
	return Config{
		MinX: -100, MaxX: arenaWidth,
		MinY: -100, MaxY: arenaHeight,
		MinRadius: 60, MaxRadius: 120,
		MinSpeed: 300, MaxSpeed: 1000,
		MinSpawn: 0, MaxSpawn: maxTime,
	}
}

// Generate returns a *hazard.HazardSet populated with count missiles
// sampled independently from cfg, using seed for reproducibility. Each
// missile is assigned an id equal to its generation index, starting at
// 0.
func Generate(cfg Config, count int, seed uint64) *hazard.HazardSet {
	src := rand.NewSource(seed)

	x := distuv.Uniform{Min: cfg.MinX, Max: cfg.MaxX, Src: src}
	y := distuv.Uniform{Min: cfg.MinY, Max: cfg.MaxY, Src: src}
	radius := distuv.Uniform{Min: cfg.MinRadius, Max: cfg.MaxRadius, Src: src}
	speed := distuv.Uniform{Min: cfg.MinSpeed, Max: cfg.MaxSpeed, Src: src}
	spawn := distuv.Uniform{Min: cfg.MinSpawn, Max: cfg.MaxSpawn, Src: src}

	out := hazard.NewHazardSet()
	for i := 0; i < count; i++ {
		origin := pos.Vec2{X: x.Rand(), Y: y.Rand()}

		// Resample the target until it differs from the origin;
		// NewMissile rejects a degenerate (zero-length) trajectory.
		target := pos.Vec2{X: x.Rand(), Y: y.Rand()}
		for target == origin {
			target = pos.Vec2{X: x.Rand(), Y: y.Rand()}
		}

		m := hazard.NewMissile(spawn.Rand(), origin, target, radius.Rand(), speed.Rand())
		out.Insert(int32(i), m)
	}

	return out
}
