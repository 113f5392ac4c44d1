// Package scroll tracks a position on a virtual page and reports how far down
// it is as a fraction in [0,1].
package scroll

import "math"

// Tracker is a scroll position over a page taller than its viewport.
type Tracker struct {
	page     float64
	viewport float64
	offset   float64
}

// NewTracker returns a tracker at the top of a page of the given length.
func NewTracker(page, viewport float64) *Tracker {
	t := &Tracker{}
	t.SetPage(page, viewport)
	return t
}

// SetPage changes the page and viewport lengths and re-clamps the offset.
func (t *Tracker) SetPage(page, viewport float64) {
	t.page = nonNegative(page)
	t.viewport = nonNegative(viewport)
	t.offset = t.clamp(t.offset)
}

// SetViewport changes the viewport length, keeping the page length.
func (t *Tracker) SetViewport(viewport float64) {
	t.SetPage(t.page, viewport)
}

// Travel is the scrollable distance, page minus viewport.
func (t *Tracker) Travel() float64 {
	return math.Max(0, t.page-t.viewport)
}

// Offset returns the current scroll offset.
func (t *Tracker) Offset() float64 { return t.offset }

// ScrollTo jumps to an absolute offset.
func (t *Tracker) ScrollTo(offset float64) {
	t.offset = t.clamp(offset)
}

// ScrollBy moves the offset by delta; positive scrolls down.
func (t *Tracker) ScrollBy(delta float64) {
	t.ScrollTo(t.offset + delta)
}

// PageDown scrolls by one viewport.
func (t *Tracker) PageDown() { t.ScrollBy(t.viewport) }

// PageUp scrolls back by one viewport.
func (t *Tracker) PageUp() { t.ScrollBy(-t.viewport) }

// Home scrolls to the top.
func (t *Tracker) Home() { t.offset = 0 }

// End scrolls to the bottom.
func (t *Tracker) End() { t.offset = t.Travel() }

// Fraction is offset/travel clamped to [0,1]; 0 when the page does not scroll.
func (t *Tracker) Fraction() float64 {
	travel := t.Travel()
	if travel <= 0 {
		return 0
	}
	return math.Min(1, math.Max(0, t.offset/travel))
}

// Throttle reports the fraction as a warp throttle.
func (t *Tracker) Throttle() float64 { return t.Fraction() }

func (t *Tracker) clamp(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return math.Min(v, t.Travel())
}

func nonNegative(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}
