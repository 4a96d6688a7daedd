package render

import (
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/wildbook/shorai/geometry"
	"github.com/wildbook/shorai/hazard"
	"github.com/wildbook/shorai/pos"
)

// bounds is the world-space rectangle a canvas covers, in arena units.
type bounds struct {
	MinX, MinY, MaxX, MaxY float64
}

// computeBounds returns the tightest box containing every path point
// and every missile endpoint, padded by margin on each side.
func computeBounds(path []pos.Position, hazards *hazard.HazardSet, margin float64) bounds {
	b := bounds{MinX: math.Inf(1), MinY: math.Inf(1), MaxX: math.Inf(-1), MaxY: math.Inf(-1)}

	grow := func(v pos.Vec2) {
		b.MinX, b.MaxX = math.Min(b.MinX, v.X), math.Max(b.MaxX, v.X)
		b.MinY, b.MaxY = math.Min(b.MinY, v.Y), math.Max(b.MaxY, v.Y)
	}

	for _, p := range path {
		grow(p.Vec2())
	}
	for _, e := range hazards.All() {
		grow(e.Missile.Origin)
		grow(e.Missile.Target)
	}

	b.MinX -= margin
	b.MinY -= margin
	b.MaxX += margin
	b.MaxY += margin
	return b
}

// canvasSize returns the pixel dimensions of bounds rendered at scale
// pixels per world unit.
func (b bounds) canvasSize(scale float64) (w, h int) {
	return int((b.MaxX - b.MinX) * scale), int((b.MaxY - b.MinY) * scale)
}

// toWorld converts a pixel coordinate back into world space.
func (b bounds) toWorld(px, py int, scale float64) pos.Vec2 {
	return pos.Vec2{
		X: float64(px)/scale + b.MinX,
		Y: float64(py)/scale + b.MinY,
	}
}

var (
	colorBackground = color.RGBA{0, 0, 0, 255}
	colorPathTrail  = color.RGBA{255, 255, 255, 30}
	colorHazardLine = color.RGBA{255, 255, 255, 20}

	colorBoth        = color.RGBA{255, 100, 100, 200}
	colorCollideOnly = color.RGBA{100, 100, 255, 255}
	colorOverlapOnly = color.RGBA{100, 255, 100, 255}
	colorNeither     = color.RGBA{255, 255, 255, 200}
)

// buildBase renders the static parts of the scene: the background,
// the dim trail of the whole found path, and the dim trail of every
// missile's full trajectory. Per-frame rendering clones this image
// rather than redrawing it every frame.
func buildBase(b bounds, scale, pawnSize float64, path []pos.Position, hazards *hazard.HazardSet) *image.RGBA {
	w, h := b.canvasSize(scale)
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	pawnSizeSq := pawnSize * pawnSize
	const hazardLineRadiusSq = 5 * 5

	entries := hazards.All()

	for px := 0; px < w; px++ {
		for py := 0; py < h; py++ {
			img.SetRGBA(px, py, colorBackground)

			point := b.toWorld(px, py, scale)

			for i := 1; i < len(path); i++ {
				line := geometry.Line{Begin: path[i-1].Vec2(), End: path[i].Vec2()}
				if line.DistToPointSq(point) < pawnSizeSq {
					blend(img, px, py, colorPathTrail)
				}
			}

			for _, e := range entries {
				line := geometry.Line{Begin: e.Missile.Origin, End: e.Missile.Target}
				if line.DistToPointSq(point) < hazardLineRadiusSq {
					blend(img, px, py, colorHazardLine)
				}
			}
		}
	}

	return img
}

// overlayFrame clones base and draws the hazard/path state visible
// during [tBeg, tEnd] on top of it.
func overlayFrame(base *image.RGBA, b bounds, scale, tBeg, tEnd, moveSpeed, pawnSize float64, path []pos.Position, hazards *hazard.HazardSet) *image.RGBA {
	w, h := base.Bounds().Dx(), base.Bounds().Dy()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.Draw(img, img.Bounds(), base, image.Point{}, xdraw.Src)

	pawnSizeSq := pawnSize * pawnSize

	for px := 0; px < w; px++ {
		for py := 0; py < h; py++ {
			point := b.toWorld(px, py, scale)
			pixel := pos.Position{X: point.X, Y: point.Y, T: tEnd}

			if id, ok := hazards.Overlaps(tBeg, pixel, 0); ok {
				r, g, bl := hueShift(float64(id) * 50)
				img.SetRGBA(px, py, color.RGBA{r, g, bl, 220})
			}

			for i := 1; i < len(path); i++ {
				from, into := path[i-1], path[i]
				if from.T > tEnd || into.T < tBeg {
					continue
				}

				dir := from.Direction(into).Scale(moveSpeed)

				segBeg := math.Max(tBeg, from.T)
				segEnd := math.Min(tEnd, into.T)

				begPoint := from.Vec2().Add(dir.Scale(math.Max(segBeg-from.T, 0)))
				endPoint := into.Vec2().Sub(dir.Scale(math.Max(into.T-segEnd, 0)))

				line := geometry.Line{Begin: begPoint, End: endPoint}
				if line.DistToPointSq(point) >= pawnSizeSq {
					continue
				}

				segBegPos := pos.Position{X: begPoint.X, Y: begPoint.Y, T: segBeg}
				velocity := dir
				_, collides := hazards.CollidesVelocity(segBegPos, velocity, segEnd, 0)
				_, overlaps := hazards.Overlaps(tBeg, pixel, 0)

				switch {
				case collides && overlaps:
					blend(img, px, py, colorBoth)
				case collides:
					blend(img, px, py, colorCollideOnly)
				case overlaps:
					blend(img, px, py, colorOverlapOnly)
				default:
					blend(img, px, py, colorNeither)
				}
			}
		}
	}

	return img
}

// blend alpha-composites c onto img at (px, py), matching image/Rgba's
// straight-alpha "blend_pixel" behavior rather than overwriting.
func blend(img *image.RGBA, px, py int, c color.RGBA) {
	dst := img.RGBAAt(px, py)
	a := float64(c.A) / 255
	inv := 1 - a

	img.SetRGBA(px, py, color.RGBA{
		R: uint8(float64(c.R)*a + float64(dst.R)*inv),
		G: uint8(float64(c.G)*a + float64(dst.G)*inv),
		B: uint8(float64(c.B)*a + float64(dst.B)*inv),
		A: 255,
	})
}
