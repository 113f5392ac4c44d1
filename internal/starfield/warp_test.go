package starfield

import (
	"math"
	"testing"
)

func TestWarpParamsEndpoints(t *testing.T) {
	if got := WarpParams(0); got != Idle {
		t.Fatalf("WarpParams(0) = %+v, want %+v", got, Idle)
	}
	got := WarpParams(1)
	want := Warp{Speed: 8, FOV: 1.4, Streak: 1.8, Vignette: 0.1}
	if !almostEqual(got.Speed, want.Speed) || !almostEqual(got.FOV, want.FOV) ||
		!almostEqual(got.Streak, want.Streak) || !almostEqual(got.Vignette, want.Vignette) {
		t.Fatalf("WarpParams(1) = %+v, want %+v", got, want)
	}
}

func TestWarpParamsSpeedRangeAndMonotonic(t *testing.T) {
	prev := WarpParams(0)
	for i := 1; i <= 1000; i++ {
		w := WarpParams(float64(i) / 1000)
		if w.Speed < 1 || w.Speed > 8 {
			t.Fatalf("speed %v out of [1,8] at step %d", w.Speed, i)
		}
		if w.Speed < prev.Speed || w.FOV < prev.FOV || w.Streak < prev.Streak || w.Vignette < prev.Vignette {
			t.Fatalf("warp decreased at step %d: %+v after %+v", i, w, prev)
		}
		prev = w
	}
}

func TestWarpParamsClampsInput(t *testing.T) {
	cases := []struct {
		in   float64
		want Warp
	}{
		{-3, WarpParams(0)},
		{math.NaN(), WarpParams(0)},
		{7, WarpParams(1)},
		{math.Inf(1), WarpParams(1)},
	}
	for _, tc := range cases {
		if got := WarpParams(tc.in); got != tc.want {
			t.Errorf("WarpParams(%v) = %+v, want %+v", tc.in, got, tc.want)
		}
	}
}

func TestEaseInOutCubic(t *testing.T) {
	cases := map[float64]float64{
		0:    0,
		0.25: 0.0625,
		0.5:  0.5,
		0.75: 0.9375,
		1:    1,
	}
	for in, want := range cases {
		if got := EaseInOutCubic(in); !almostEqual(got, want) {
			t.Errorf("EaseInOutCubic(%v) = %v, want %v", in, got, want)
		}
	}
}
