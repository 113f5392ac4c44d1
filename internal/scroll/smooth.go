package scroll

import "math"

// Smooth follows a Tracker's offset with exponential easing so discrete wheel
// steps read as continuous scrolling.
type Smooth struct {
	target *Tracker
	rate   float64
	offset float64
}

// NewSmooth follows target, closing 1-exp(-rate) of the gap per second.
func NewSmooth(target *Tracker, rate float64) *Smooth {
	return &Smooth{target: target, rate: rate, offset: target.Offset()}
}

// Update advances the follower by dt seconds.
func (s *Smooth) Update(dt float64) {
	goal := s.target.Offset()
	if !(dt > 0) || s.rate <= 0 {
		if s.rate <= 0 {
			s.offset = goal
		}
		return
	}
	k := 1 - math.Exp(-s.rate*dt)
	s.offset += (goal - s.offset) * k
	if math.Abs(goal-s.offset) < 0.01 {
		s.offset = goal
	}
}

// Snap jumps straight to the target offset.
func (s *Smooth) Snap() { s.offset = s.target.Offset() }

// Offset returns the eased offset.
func (s *Smooth) Offset() float64 { return s.offset }

// Fraction is the eased offset over the target's travel, clamped to [0,1].
func (s *Smooth) Fraction() float64 {
	travel := s.target.Travel()
	if travel <= 0 {
		return 0
	}
	return math.Min(1, math.Max(0, s.offset/travel))
}

// Throttle reports the eased fraction as a warp throttle.
func (s *Smooth) Throttle() float64 { return s.Fraction() }
