package starfield

import "math"

// Lens holds everything needed to project world points for one frame.
type Lens struct {
	Focal            float64
	CenterX, CenterY float64
	CameraX, CameraY float64
	SizeNear         float64
	SizeFar          float64
}

// Projection is a star's screen-space footprint.
type Projection struct {
	X, Y   float64
	Size   float64
	Alpha  float64
	Factor float64
}

// Project maps a world point at depth z to the screen. Nearer points are never
// smaller or dimmer than farther ones.
func (l Lens) Project(x, y, z float64) Projection {
	factor := l.Focal / math.Max(1, z)
	return Projection{
		X:      (x-l.CameraX)*factor + l.CenterX,
		Y:      (y-l.CameraY)*factor + l.CenterY,
		Size:   math.Max(l.SizeFar, l.SizeNear*factor),
		Alpha:  math.Min(1, 0.18+1.14*factor),
		Factor: factor,
	}
}

// streakTail returns the far end of a motion streak ending at (x, y). The
// streak points back along the screen motion since the previous frame; with no
// previous point or no motion it collapses to (x, y).
func streakTail(x, y, prevX, prevY float64, hasPrev bool, length float64) (float64, float64) {
	if !hasPrev || !(length > 0) {
		return x, y
	}
	dx, dy := x-prevX, y-prevY
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return x, y
	}
	return x - dx/dist*length, y - dy/dist*length
}
