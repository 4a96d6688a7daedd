package render

import "math"

// hueShift returns an RGB triple for a blue base hue rotated by
// degrees around the HSL color wheel, so that successive hazard ids
// render in visibly distinct colors. There's no library in this
// module's dependency graph for HSL rotation, and a full color-space
// package would be excessive for what's a dozen lines of arithmetic.
func hueShift(degrees float64) (r, g, b uint8) {
	const baseHue = 240.0 // blue
	h := math.Mod(baseHue+degrees, 360)
	if h < 0 {
		h += 360
	}

	const s, l = 1.0, 0.5

	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - c/2

	var rp, gp, bp float64
	switch {
	case h < 60:
		rp, gp, bp = c, x, 0
	case h < 120:
		rp, gp, bp = x, c, 0
	case h < 180:
		rp, gp, bp = 0, c, x
	case h < 240:
		rp, gp, bp = 0, x, c
	case h < 300:
		rp, gp, bp = x, 0, c
	default:
		rp, gp, bp = c, 0, x
	}

	return uint8((rp + m) * 255), uint8((gp + m) * 255), uint8((bp + m) * 255)
}
