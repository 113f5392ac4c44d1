package starfield

import "math"

// Warp is the set of render multipliers derived from the throttle.
type Warp struct {
	Speed    float64
	FOV      float64
	Streak   float64
	Vignette float64
}

// Idle is the warp at throttle 0.
var Idle = Warp{Speed: 1, FOV: 1, Streak: 1, Vignette: 0}

// EaseInOutCubic eases t in [0,1].
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}

// WarpParams maps a raw throttle (normally a scroll fraction) to the render
// multipliers. Input is clamped to [0,1]; NaN is treated as 0.
func WarpParams(throttle float64) Warp {
	t := clamp01(throttle)
	e := EaseInOutCubic(t)
	return Warp{
		Speed:    1 + 7*e,
		FOV:      1 + 0.4*e,
		Streak:   1 + 0.8*e,
		Vignette: 0.1 * e,
	}
}

func clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
