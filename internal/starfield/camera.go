package starfield

import "math"

// Camera is the world-space origin the lens looks from. Look records where the
// pointer wants the camera to be; the offset only follows that target when
// Parallax is enabled, otherwise it stays at the origin.
type Camera struct {
	X, Y     float64
	Parallax bool

	targetX, targetY float64
	lookRange        float64
	followRate       float64
}

func newCamera(cfg Config) Camera {
	return Camera{lookRange: cfg.LookRange, followRate: cfg.FollowRate}
}

// Look sets the target from a pointer position inside a width×height viewport.
func (c *Camera) Look(px, py, width, height float64) {
	if !(width > 0) || !(height > 0) {
		return
	}
	nx := clamp01(px/width) - 0.5
	ny := clamp01(py/height) - 0.5
	c.targetX = nx * 2 * c.lookRange
	c.targetY = ny * 2 * c.lookRange
}

// Target returns the current look target.
func (c *Camera) Target() (float64, float64) {
	return c.targetX, c.targetY
}

// follow eases the offset toward the target over dt seconds.
func (c *Camera) follow(dt float64) {
	if !c.Parallax {
		c.X, c.Y = 0, 0
		return
	}
	if !(dt > 0) {
		return
	}
	k := 1 - math.Exp(-c.followRate*dt)
	c.X += (c.targetX - c.X) * k
	c.Y += (c.targetY - c.Y) * k
}
