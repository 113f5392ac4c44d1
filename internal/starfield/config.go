// Package starfield implements a perspective-projected 3D starfield whose
// speed, field of view, streak length and vignette follow a warp throttle.
package starfield

import (
	"image/color"
	"time"
)

// NearPlane is the depth at which a star is considered to have passed the
// viewer and is respawned at the far plane.
const NearPlane = 1.0

// Config holds the tunables of a starfield. The zero value is not usable;
// start from DefaultConfig.
type Config struct {
	// Depth is the far plane; new stars are born here.
	Depth float64
	// BaseSpeed is the approach speed in world units per second at warp 0.
	BaseSpeed float64
	// Density is the number of stars per logical pixel of viewport area.
	Density float64
	// FieldSpread scales the spawn region relative to the viewport so camera
	// motion never reveals an edge of the field.
	FieldSpread float64

	SpeedMin, SpeedMax float64
	HueMin, HueMax     float64
	Saturation         float64
	Lightness          float64

	SizeNear     float64
	SizeFar      float64
	StreakLength float64
	FocalRatio   float64

	// Margin is how far outside the viewport, in logical pixels, a star may
	// project and still be drawn.
	Margin float64

	MaxPixelRatio float64
	MaxFrameDelta time.Duration

	// LookRange is the camera offset, in world units, reached when the
	// pointer sits on a viewport edge.
	LookRange float64
	// FollowRate is how quickly the camera eases toward its look target, per second.
	FollowRate float64

	Background color.NRGBA
}

// DefaultConfig returns the tuning used by the shipped renderer.
func DefaultConfig() Config {
	return Config{
		Depth:         1000,
		BaseSpeed:     160,
		Density:       0.00035,
		FieldSpread:   1.6,
		SpeedMin:      0.6,
		SpeedMax:      1.4,
		HueMin:        200,
		HueMax:        230,
		Saturation:    0.55,
		Lightness:     0.9,
		SizeNear:      1.6,
		SizeFar:       0.45,
		StreakLength:  18,
		FocalRatio:    0.5,
		Margin:        50,
		MaxPixelRatio: 2,
		MaxFrameDelta: 50 * time.Millisecond,
		LookRange:     120,
		FollowRate:    3,
		Background:    color.NRGBA{R: 5, G: 6, B: 10, A: 255},
	}
}
