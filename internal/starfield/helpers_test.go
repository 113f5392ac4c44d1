package starfield

import (
	"image/color"
	"math"
	"math/rand"
	"time"
)

type segment struct {
	x0, y0, x1, y1 float64
	width          float64
}

type recordingCanvas struct {
	scale     float64
	fills     int
	lines     int
	dots      int
	segments  []segment
	vignettes []float64
}

func (c *recordingCanvas) SetScale(scale float64) { c.scale = scale }
func (c *recordingCanvas) Fill(color.NRGBA)       { c.fills++ }
func (c *recordingCanvas) StrokeLine(x0, y0, x1, y1, width float64, _ color.NRGBA) {
	c.lines++
	c.segments = append(c.segments, segment{x0, y0, x1, y1, width})
}
func (c *recordingCanvas) FillCircle(_, _, _ float64, _ color.NRGBA) { c.dots++ }
func (c *recordingCanvas) Vignette(strength float64) {
	c.vignettes = append(c.vignettes, strength)
}

type manualScheduler struct {
	pending []FrameFunc
	calls   int
}

func (s *manualScheduler) Schedule(fn FrameFunc) {
	s.calls++
	s.pending = append(s.pending, fn)
}

func (s *manualScheduler) fire(now time.Duration) {
	fns := s.pending
	s.pending = nil
	for _, fn := range fns {
		fn(now)
	}
}

type spyAdvancer struct {
	steps []float64
	err   error
}

func (a *spyAdvancer) Advance(stars []Star, step float64) error {
	a.steps = append(a.steps, step)
	if a.err != nil {
		return a.err
	}
	return CPUAdvancer{}.Advance(stars, step)
}

func newTestField(cfg Config, seed int64, width, height float64) *Field {
	f := NewField(cfg, rand.New(rand.NewSource(seed)))
	f.Resize(width, height, 1)
	return f
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}
