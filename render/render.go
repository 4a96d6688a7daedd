package render

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/wildbook/shorai/hazard"
	"github.com/wildbook/shorai/pos"
)

// Options configures how a path and its hazard set are rasterized.
type Options struct {
	// OutDir is the directory frames are written to, created if it
	// doesn't exist. Any existing step_*.png files in it are removed
	// first.
	OutDir string

	// Scale is pixels per world unit.
	Scale float64
	// Step is the simulated-time gap between consecutive frames.
	Step float64
	// Smear is how far back in time a hazard's sweep is considered
	// still visible at a given frame; defaults to Step if zero.
	Smear float64

	MoveSpeed float64
	PawnSize  float64

	// Concurrency bounds how many frames rasterize at once. Zero means
	// runtime.GOMAXPROCS(0).
	Concurrency int
}

func (o Options) validate() error {
	switch {
	case o.OutDir == "":
		return ErrEmptyOutDir
	case o.Scale <= 0:
		return fmt.Errorf("%w: %g", ErrNonPositiveScale, o.Scale)
	case o.Step <= 0:
		return fmt.Errorf("%w: %g", ErrNonPositiveStep, o.Step)
	case o.MoveSpeed <= 0:
		return fmt.Errorf("%w: %g", ErrNonPositiveMoveSpeed, o.MoveSpeed)
	}
	return nil
}

// Render writes one PNG per time step covering path's full duration,
// plus an initial step_000.png showing just the static scene, to
// opts.OutDir. Frames rasterize concurrently; each is independent of
// every other, so the only ordering guarantee is the filename.
func Render(ctx context.Context, path []pos.Position, hazards *hazard.HazardSet, opts Options) error {
	if err := opts.validate(); err != nil {
		return err
	}
	if len(path) == 0 {
		return ErrEmptyPath
	}

	smear := opts.Smear
	if smear == 0 {
		smear = opts.Step
	}

	if err := prepareOutDir(opts.OutDir); err != nil {
		return err
	}

	b := computeBounds(path, hazards, 10)
	base := buildBase(b, opts.Scale, opts.PawnSize, path, hazards)

	if err := writeFrame(opts.OutDir, 0, base); err != nil {
		return err
	}

	endTime := path[len(path)-1].T

	group, groupCtx := errgroup.WithContext(ctx)
	limit := opts.Concurrency
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	group.SetLimit(limit)

	for i, t := 0, 0.0; t <= endTime; i, t = i+1, t+opts.Step {
		i, t := i, t
		group.Go(func() error {
			select {
			case <-groupCtx.Done():
				return groupCtx.Err()
			default:
			}

			frame := overlayFrame(base, b, opts.Scale, t, t+smear, opts.MoveSpeed, opts.PawnSize, path, hazards)
			return writeFrame(opts.OutDir, i+1, frame)
		})
	}

	return group.Wait()
}

func prepareOutDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("render: creating output dir: %w", err)
	}

	matches, err := filepath.Glob(filepath.Join(dir, "step_*.png"))
	if err != nil {
		return fmt.Errorf("render: listing output dir: %w", err)
	}
	for _, m := range matches {
		if err := os.Remove(m); err != nil {
			return fmt.Errorf("render: clearing output dir: %w", err)
		}
	}
	return nil
}

func writeFrame(dir string, index int, img *image.RGBA) error {
	f, err := os.Create(filepath.Join(dir, fmt.Sprintf("step_%03d.png", index)))
	if err != nil {
		return fmt.Errorf("render: creating frame file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("render: encoding frame: %w", err)
	}
	return nil
}
