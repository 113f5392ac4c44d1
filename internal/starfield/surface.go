package starfield

import "math"

// Surface describes the drawing buffer for one viewport size. Width and Height
// are logical (CSS-like) pixels; BackingWidth and BackingHeight are the pixel
// dimensions of the buffer, Scale pixels per logical pixel.
type Surface struct {
	Width, Height float64
	Scale         float64

	BackingWidth  int
	BackingHeight int
}

// ConfigureSurface computes the surface for a viewport of width×height logical
// pixels on a display with the given pixel ratio. The ratio is capped at
// maxRatio; non-positive or non-finite ratios are treated as 1.
func ConfigureSurface(width, height, pixelRatio, maxRatio float64) Surface {
	width = sanitizeLength(width)
	height = sanitizeLength(height)
	scale := pixelRatio
	if !(scale > 0) || math.IsInf(scale, 0) {
		scale = 1
	}
	if maxRatio > 0 && scale > maxRatio {
		scale = maxRatio
	}
	return Surface{
		Width:         width,
		Height:        height,
		Scale:         scale,
		BackingWidth:  int(math.Floor(width * scale)),
		BackingHeight: int(math.Floor(height * scale)),
	}
}

// Center returns the logical centre of the surface.
func (s Surface) Center() (float64, float64) {
	return s.Width / 2, s.Height / 2
}

// Visible reports whether a logical point falls inside the surface expanded by
// margin on every side.
func (s Surface) Visible(x, y, margin float64) bool {
	return x >= -margin && x <= s.Width+margin &&
		y >= -margin && y <= s.Height+margin
}

// Empty reports whether the surface has no drawable area.
func (s Surface) Empty() bool {
	return s.BackingWidth <= 0 || s.BackingHeight <= 0
}

func sanitizeLength(v float64) float64 {
	if !(v > 0) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
