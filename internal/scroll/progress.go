package scroll

import "math"

// Progress tracks the width of the last drawn progress bar so a host that
// does not clear its screen repaints the bar only when it changes.
type Progress struct {
	width float64
	drawn bool
}

// BarWidth is the bar length for a fraction across a screen of the given width.
func BarWidth(fraction, screenWidth float64) float64 {
	if !(screenWidth > 0) || math.IsNaN(fraction) {
		return 0
	}
	return math.Min(1, math.Max(0, fraction)) * screenWidth
}

// Update records width and reports whether it differs from the last one.
// The first call always reports a change.
func (p *Progress) Update(width float64) bool {
	if p.drawn && p.width == width {
		return false
	}
	p.width, p.drawn = width, true
	return true
}

// Reset forgets the last width, forcing the next Update to report a change.
func (p *Progress) Reset() { p.drawn = false }
