// Command shoraidemo runs one space-time path search against a
// randomly synthesized hazard set and rasterizes the result to a
// sequence of PNG frames.
package main

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/wildbook/shorai/hazard"
	"github.com/wildbook/shorai/internal/config"
	"github.com/wildbook/shorai/pos"
	"github.com/wildbook/shorai/render"
	"github.com/wildbook/shorai/scenario"
	"github.com/wildbook/shorai/shorai"
)

// arenaWidth/arenaHeight fix the play area the demo searches across;
// the reference this was modeled on hardcoded the same 2000x2000
// square rather than exposing it as a flag.
const (
	arenaWidth  = 2000.0
	arenaHeight = 2000.0
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, "shoraidemo: building logger:", err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck

	app := &cli.App{
		Name:  "shoraidemo",
		Usage: "search a hazard field and render the resulting path",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Usage: "optional YAML config file"},
			&cli.Uint64Flag{Name: "seed", Usage: "PRNG seed; random if unset"},
			&cli.IntFlag{Name: "missiles", Usage: "number of hazards to synthesize"},
			&cli.Float64Flag{Name: "render-scale", Usage: "pixels per world unit"},
			&cli.Float64Flag{Name: "render-step", Usage: "simulated seconds between frames"},
			&cli.Float64Flag{Name: "render-smear", Usage: "hazard sweep visibility window; defaults to render-step"},
			&cli.Float64Flag{Name: "max-time", Usage: "search horizon in seconds"},
			&cli.IntFlag{Name: "max-steps", Usage: "search step budget"},
			&cli.Float64Flag{Name: "step-size", Usage: "grid cell size in world units"},
			&cli.Float64Flag{Name: "pawn-size", Usage: "pawn radius"},
			&cli.Float64Flag{Name: "move-speed", Usage: "pawn movement speed"},
			&cli.StringFlag{Name: "out-dir", Usage: "directory PNG frames are written to"},
		},
		Action: func(c *cli.Context) error {
			return run(c, logger)
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Error("shoraidemo failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(c *cli.Context, logger *zap.Logger) error {
	v, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}

	cfg, err := config.Unmarshal(v)
	if err != nil {
		return err
	}

	applyOverrides(c, &cfg)

	seed := c.Uint64("seed")
	if !c.IsSet("seed") {
		seed, err = randomSeed()
		if err != nil {
			return fmt.Errorf("shoraidemo: generating seed: %w", err)
		}
	}
	logger.Info("seed", zap.Uint64("seed", seed))

	stepTime := cfg.StepSize / cfg.MoveSpeed
	logger.Info("grid", zap.Float64("step_size", cfg.StepSize), zap.Float64("step_time", stepTime))

	scenarioCfg := scenario.DefaultConfig(arenaWidth, arenaHeight, cfg.MaxTime)
	hazards := scenario.Generate(scenarioCfg, cfg.Missiles, seed)

	origin := pos.New(0, 0, 0)
	target := pos.New(arenaWidth, arenaHeight, cfg.MaxTime)

	req := shorai.Request{
		Origin:    origin,
		Target:    target,
		Hazards:   hazards,
		StepSize:  cfg.StepSize,
		PawnSize:  cfg.PawnSize,
		MoveSpeed: cfg.MoveSpeed,
		MaxTime:   cfg.MaxTime,
		MaxSteps:  cfg.MaxSteps,
	}

	logger.Info("searching")
	start := time.Now()

	result, ok, err := shorai.FindPath(req)
	if err != nil {
		return err
	}

	elapsed := time.Since(start)
	if !ok {
		logger.Info("no path found", zap.Duration("elapsed", elapsed))
		return nil
	}

	logger.Info("path found",
		zap.Duration("elapsed", elapsed),
		zap.Float64("cost", float64(result.Cost)),
		zap.Int("waypoints", len(result.Path)),
		zap.Float64("arrival_time", result.Path[len(result.Path)-1].T),
	)

	opts := render.Options{
		OutDir:    cfg.OutDir,
		Scale:     cfg.RenderScale,
		Step:      cfg.RenderStep,
		Smear:     cfg.RenderSmear,
		MoveSpeed: cfg.MoveSpeed,
		PawnSize:  cfg.PawnSize,
	}

	if err := render.Render(context.Background(), result.Path, hazards, opts); err != nil {
		return fmt.Errorf("shoraidemo: rendering: %w", err)
	}

	logger.Info("frames written", zap.String("out_dir", cfg.OutDir))
	return nil
}

func applyOverrides(c *cli.Context, cfg *config.Config) {
	if c.IsSet("missiles") {
		cfg.Missiles = c.Int("missiles")
	}
	if c.IsSet("render-scale") {
		cfg.RenderScale = c.Float64("render-scale")
	}
	if c.IsSet("render-step") {
		cfg.RenderStep = c.Float64("render-step")
	}
	if c.IsSet("render-smear") {
		cfg.RenderSmear = c.Float64("render-smear")
	}
	if c.IsSet("max-time") {
		cfg.MaxTime = c.Float64("max-time")
	}
	if c.IsSet("max-steps") {
		cfg.MaxSteps = c.Int("max-steps")
	}
	if c.IsSet("step-size") {
		cfg.StepSize = c.Float64("step-size")
	}
	if c.IsSet("pawn-size") {
		cfg.PawnSize = c.Float64("pawn-size")
	}
	if c.IsSet("move-speed") {
		cfg.MoveSpeed = c.Float64("move-speed")
	}
	if c.IsSet("out-dir") {
		cfg.OutDir = c.String("out-dir")
	}
}

func randomSeed() (uint64, error) {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(buf[:]), nil
}
