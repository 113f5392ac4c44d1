package starfield

import (
	"errors"
	"time"
)

// ErrNoSurface is reported when a driver has nothing to draw on.
var ErrNoSurface = errors.New("starfield: no drawing surface")

// Mode selects how a driver schedules frames. It is fixed at construction.
type Mode int

const (
	// ModeRunning draws continuously, one frame per scheduled callback.
	ModeRunning Mode = iota
	// ModeStatic draws a single motionless frame and never schedules.
	ModeStatic
)

// ModeFor picks the mode for a reduced-motion preference.
func ModeFor(reducedMotion bool) Mode {
	if reducedMotion {
		return ModeStatic
	}
	return ModeRunning
}

func (m Mode) String() string {
	switch m {
	case ModeRunning:
		return "running"
	case ModeStatic:
		return "static"
	default:
		return "unknown"
	}
}

// FrameFunc is called by a Scheduler with a monotonic timestamp.
type FrameFunc func(now time.Duration)

// Scheduler arranges for fn to run once on the next frame.
type Scheduler interface {
	Schedule(fn FrameFunc)
}

// ThrottleSource supplies the warp throttle, normally a scroll fraction.
type ThrottleSource interface {
	Throttle() float64
}

// ThrottleFunc adapts a function to ThrottleSource.
type ThrottleFunc func() float64

// Throttle implements ThrottleSource.
func (f ThrottleFunc) Throttle() float64 { return f() }

// Driver runs a field's frame loop on top of a Scheduler.
type Driver struct {
	field    *Field
	canvas   Canvas
	sched    Scheduler
	throttle ThrottleSource
	mode     Mode
	maxDelta time.Duration

	started  bool
	stopped  bool
	haveLast bool
	last     time.Duration
	frames   int
}

// NewDriver wires a field to a canvas and scheduler. throttle may be nil, in
// which case the field stays at warp 0.
func NewDriver(field *Field, canvas Canvas, sched Scheduler, throttle ThrottleSource, mode Mode) *Driver {
	d := &Driver{
		field:    field,
		canvas:   canvas,
		sched:    sched,
		throttle: throttle,
		mode:     mode,
	}
	if field != nil {
		d.maxDelta = field.cfg.MaxFrameDelta
	}
	return d
}

// Validate reports ErrNoSurface when the driver cannot draw.
func (d *Driver) Validate() error {
	if d == nil || d.field == nil || d.canvas == nil {
		return ErrNoSurface
	}
	if d.mode == ModeRunning && d.sched == nil {
		return errors.New("starfield: running mode needs a scheduler")
	}
	return nil
}

// Start begins the loop. In static mode it draws exactly one frame instead.
// Start is a no-op on an invalid driver or after the first call.
func (d *Driver) Start() {
	if d.Validate() != nil || d.started {
		return
	}
	d.started = true
	if d.mode == ModeStatic {
		d.Tick(0)
		return
	}
	d.sched.Schedule(d.frame)
}

// Stop prevents any further frames from being scheduled.
func (d *Driver) Stop() {
	if d == nil {
		return
	}
	d.stopped = true
}

// Redraw repaints a static field, for example after a resize. Running drivers
// repaint on their own and ignore it.
func (d *Driver) Redraw() {
	if d.Validate() != nil || d.mode != ModeStatic || !d.started || d.stopped {
		return
	}
	d.Tick(0)
}

// Tick advances the field by dt seconds and draws one frame.
func (d *Driver) Tick(dt float64) {
	if d.Validate() != nil {
		return
	}
	throttle := 0.0
	if d.throttle != nil {
		throttle = d.throttle.Throttle()
	}
	d.field.Step(dt, throttle)
	d.field.Draw(d.canvas)
	d.frames++
}

func (d *Driver) frame(now time.Duration) {
	if d.stopped {
		return
	}
	var dt time.Duration
	if d.haveLast {
		dt = clampDelta(now-d.last, d.maxDelta)
	}
	d.last, d.haveLast = now, true
	d.Tick(dt.Seconds())
	if !d.stopped {
		d.sched.Schedule(d.frame)
	}
}

// Frames returns how many frames have been drawn.
func (d *Driver) Frames() int { return d.frames }

// Mode returns the driver's mode.
func (d *Driver) Mode() Mode { return d.mode }

func clampDelta(dt, limit time.Duration) time.Duration {
	if dt < 0 {
		return 0
	}
	if limit > 0 && dt > limit {
		return limit
	}
	return dt
}
