package main

import (
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// enableAutoScroll schedules scripted scrolling for a limited duration. A zero
// duration scrolls until the window closes.
func (g *Game) enableAutoScroll(duration time.Duration) {
	g.autoScroll = true
	g.autoDeadline = time.Time{}
	if duration > 0 {
		g.autoDeadline = time.Now().Add(duration)
	}
	if g.autoRand == nil {
		g.autoRand = rand.New(rand.NewSource(time.Now().UnixNano() + 3))
	}
	g.autoDwell = 0
}

// scrollDelta selects either manual or automatic scrolling for this tick.
func (g *Game) scrollDelta(dt float64) float64 {
	if g.autoScroll {
		if !g.autoDeadline.IsZero() && time.Now().After(g.autoDeadline) {
			g.autoScroll = false
			return 0
		}
		return g.autoScrollDelta(dt)
	}
	return g.manualScrollDelta(dt)
}

// manualScrollDelta reads the mouse wheel and arrow keys.
func (g *Game) manualScrollDelta(dt float64) float64 {
	_, wy := ebiten.Wheel()
	delta := -wy * wheelStep
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		delta += arrowStepPerSecond * dt
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		delta -= arrowStepPerSecond * dt
	}
	return delta
}

// handlePagingKeys applies the discrete page jumps.
func (g *Game) handlePagingKeys() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyPageDown), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.tracker.PageDown()
	case inpututil.IsKeyJustPressed(ebiten.KeyPageUp):
		g.tracker.PageUp()
	case inpututil.IsKeyJustPressed(ebiten.KeyHome):
		g.tracker.Home()
	case inpututil.IsKeyJustPressed(ebiten.KeyEnd):
		g.tracker.End()
	}
}

// autoScrollDelta sweeps toward one end of the page, pausing there for a
// random number of ticks before turning around.
func (g *Game) autoScrollDelta(dt float64) float64 {
	if g.autoDwell > 0 {
		g.autoDwell--
		return 0
	}
	frac := g.tracker.Fraction()
	if (g.autoDir > 0 && frac >= 1) || (g.autoDir < 0 && frac <= 0) {
		g.autoDir = -g.autoDir
		g.autoDwell = autoScrollMinDwell + g.autoRand.Intn(autoScrollDwellRange)
		return 0
	}
	return g.autoDir * autoScrollSpeed * dt
}
