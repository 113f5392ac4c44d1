package scroll

import (
	"math"
	"testing"
)

func TestTrackerClamping(t *testing.T) {
	tr := NewTracker(4000, 1000)
	cases := []struct {
		name string
		move func()
		want float64
	}{
		{"start", func() {}, 0},
		{"up past top", func() { tr.ScrollBy(-50) }, 0},
		{"down", func() { tr.ScrollBy(1500) }, 0.5},
		{"page down", func() { tr.PageDown() }, 2500.0 / 3000},
		{"past bottom", func() { tr.ScrollBy(1e9) }, 1},
		{"page up", func() { tr.PageUp() }, 2000.0 / 3000},
		{"home", func() { tr.Home() }, 0},
		{"end", func() { tr.End() }, 1},
		{"nan", func() { tr.ScrollTo(math.NaN()) }, 0},
	}
	for _, tc := range cases {
		tc.move()
		if got := tr.Fraction(); math.Abs(got-tc.want) > 1e-12 {
			t.Fatalf("%s: fraction = %v, want %v", tc.name, got, tc.want)
		}
		if tr.Throttle() != tr.Fraction() {
			t.Fatalf("%s: throttle differs from fraction", tc.name)
		}
	}
}

func TestTrackerNoTravel(t *testing.T) {
	tr := NewTracker(600, 800)
	tr.ScrollBy(300)
	if tr.Fraction() != 0 || tr.Offset() != 0 {
		t.Fatalf("short page scrolled: offset=%v fraction=%v", tr.Offset(), tr.Fraction())
	}
	tr.End()
	if tr.Fraction() != 0 {
		t.Fatalf("fraction = %v", tr.Fraction())
	}
}

func TestTrackerViewportReclamps(t *testing.T) {
	tr := NewTracker(3000, 1000)
	tr.End()
	tr.SetViewport(2000)
	if tr.Offset() != 1000 || tr.Fraction() != 1 {
		t.Fatalf("offset=%v fraction=%v", tr.Offset(), tr.Fraction())
	}
}

func TestSmoothConverges(t *testing.T) {
	tr := NewTracker(2000, 1000)
	s := NewSmooth(tr, 12)
	tr.End()
	prev := s.Offset()
	for i := 0; i < 120; i++ {
		s.Update(1.0 / 60)
		if s.Offset() < prev {
			t.Fatalf("follower moved backwards at step %d", i)
		}
		prev = s.Offset()
	}
	if s.Fraction() != 1 || s.Throttle() != 1 {
		t.Fatalf("fraction = %v after 2s", s.Fraction())
	}
}

func TestSmoothZeroDt(t *testing.T) {
	tr := NewTracker(2000, 1000)
	s := NewSmooth(tr, 12)
	tr.ScrollTo(500)
	s.Update(0)
	if s.Offset() != 0 {
		t.Fatalf("offset moved with dt=0: %v", s.Offset())
	}
	instant := NewSmooth(tr, 0)
	instant.Update(0.016)
	if instant.Offset() != 500 {
		t.Fatalf("rate 0 should snap, got %v", instant.Offset())
	}
}

func TestSmoothSnap(t *testing.T) {
	tr := NewTracker(5000, 1000)
	s := NewSmooth(tr, 4)
	tr.ScrollTo(2000)
	s.Snap()
	if s.Offset() != 2000 || s.Fraction() != 0.5 {
		t.Fatalf("offset=%v fraction=%v", s.Offset(), s.Fraction())
	}
}
