package starfield

import (
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Field is the starfield renderer: surface, star pool, camera and lens.
type Field struct {
	cfg      Config
	surface  Surface
	pool     *Pool
	camera   Camera
	warp     Warp
	advancer Advancer

	sized      bool
	advanceErr error
}

// NewField returns a field with no surface; call Resize before drawing.
func NewField(cfg Config, rng Rand) *Field {
	return &Field{
		cfg:      cfg,
		pool:     NewPool(cfg, rng),
		camera:   newCamera(cfg),
		warp:     Idle,
		advancer: CPUAdvancer{},
	}
}

// SetAdvancer replaces the depth advancer. A nil advancer restores the CPU one.
func (f *Field) SetAdvancer(a Advancer) {
	if a == nil {
		a = CPUAdvancer{}
	}
	f.advancer = a
}

// Resize configures the surface for a new viewport and regenerates the pool.
// It reports whether anything changed; repeated calls with the same viewport
// keep the existing stars.
func (f *Field) Resize(width, height, pixelRatio float64) (Surface, bool) {
	s := ConfigureSurface(width, height, pixelRatio, f.cfg.MaxPixelRatio)
	if f.sized && s == f.surface {
		return s, false
	}
	f.surface = s
	f.sized = true
	f.pool.Reset(s.Width, s.Height, f.cfg.Density)
	return s, true
}

// Step advances the field by dt seconds at the given throttle and returns the
// warp used. Stars that cross the near plane are respawned before returning.
func (f *Field) Step(dt, throttle float64) Warp {
	f.warp = WarpParams(throttle)
	if !(dt > 0) || math.IsInf(dt, 0) {
		dt = 0
	}
	f.camera.follow(dt)
	stars := f.pool.Stars()
	if dt == 0 || len(stars) == 0 {
		return f.warp
	}
	step := f.cfg.BaseSpeed * f.warp.Speed * dt
	if err := f.advancer.Advance(stars, step); err != nil {
		f.advanceErr = err
		f.advancer = CPUAdvancer{}
		_ = f.advancer.Advance(stars, step)
	}
	f.pool.Respawn()
	return f.warp
}

// Lens returns the projection parameters for the current frame.
func (f *Field) Lens() Lens {
	cx, cy := f.surface.Center()
	base := f.cfg.FocalRatio * math.Min(f.surface.Width, f.surface.Height)
	return Lens{
		Focal:    base / f.warp.FOV,
		CenterX:  cx,
		CenterY:  cy,
		CameraX:  f.camera.X,
		CameraY:  f.camera.Y,
		SizeNear: f.cfg.SizeNear,
		SizeFar:  f.cfg.SizeFar,
	}
}

// Draw renders the current state onto c: background, one streak per visible
// star, then the vignette.
func (f *Field) Draw(c Canvas) {
	c.SetScale(f.surface.Scale)
	c.Fill(f.cfg.Background)
	lens := f.Lens()
	stars := f.pool.Stars()
	for i := range stars {
		st := &stars[i]
		p := lens.Project(st.X, st.Y, st.Z)
		prevX, prevY, hadPrev := st.prevX, st.prevY, st.hasPrev
		st.prevX, st.prevY, st.hasPrev = p.X, p.Y, true
		if !f.surface.Visible(p.X, p.Y, f.cfg.Margin) {
			continue
		}
		clr := f.starColor(st.Hue, p.Alpha)
		length := f.cfg.StreakLength * p.Factor * f.warp.Streak
		tx, ty := streakTail(p.X, p.Y, prevX, prevY, hadPrev, length)
		if tx == p.X && ty == p.Y {
			c.FillCircle(p.X, p.Y, p.Size/2, clr)
			continue
		}
		c.StrokeLine(tx, ty, p.X, p.Y, p.Size, clr)
	}
	if f.warp.Vignette > 0 {
		c.Vignette(f.warp.Vignette)
	}
}

func (f *Field) starColor(hue, alpha float64) color.NRGBA {
	r, g, b := colorful.Hsl(hue, f.cfg.Saturation, f.cfg.Lightness).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(clamp01(alpha) * 255))}
}

// TakeAdvanceError returns and clears the error that made the field fall back
// to the CPU advancer, if any.
func (f *Field) TakeAdvanceError() error {
	err := f.advanceErr
	f.advanceErr = nil
	return err
}

// Surface returns the configured surface.
func (f *Field) Surface() Surface { return f.surface }

// Camera returns the field's camera for pointer updates.
func (f *Field) Camera() *Camera { return &f.camera }

// Warp returns the multipliers used by the last Step.
func (f *Field) Warp() Warp { return f.warp }

// Pool returns the star pool.
func (f *Field) Pool() *Pool { return f.pool }

// Config returns the field's configuration.
func (f *Field) Config() Config { return f.cfg }
