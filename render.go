package main

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"warpfield/internal/offscreen"
	"warpfield/internal/scroll"
)

var progressColor = color.NRGBA{R: 150, G: 190, B: 255, A: 200}

// Draw renders the starfield, the scroll progress bar, and optional overlays.
func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.bind(screen)
	drew := false
	switch {
	case !g.started:
		g.driver.Start()
		g.started = true
		g.needsRedraw = false
		drew = true
	case g.needsRedraw:
		g.driver.Redraw()
		g.needsRedraw = false
		drew = true
	}
	if g.scheduler.Fire(time.Since(g.start)) {
		drew = true
	}
	if g.reducedMotion && !drew {
		// The static frame stays on screen; only the bar strip is repainted.
		if *progressBarFlag {
			g.repaintProgress(screen)
		}
		return
	}

	if *progressBarFlag {
		g.progress.Reset()
		g.drawProgress(screen)
	}
	if *debugFlag {
		g.drawDebug(screen)
	}
}

// drawProgress paints the scroll position along the top edge.
func (g *Game) drawProgress(screen *ebiten.Image) {
	width := scroll.BarWidth(g.smooth.Fraction(), float64(screen.Bounds().Dx()))
	g.progress.Update(width)
	if width <= 0 {
		return
	}
	vector.DrawFilledRect(screen, 0, 0, float32(width), g.progressHeight(), progressColor, false)
}

// repaintProgress clears the bar strip to the background and redraws the bar
// when its width changed since the last paint.
func (g *Game) repaintProgress(screen *ebiten.Image) {
	width := scroll.BarWidth(g.smooth.Fraction(), float64(screen.Bounds().Dx()))
	if !g.progress.Update(width) {
		return
	}
	strip := g.progressHeight()
	vector.DrawFilledRect(screen, 0, 0, float32(screen.Bounds().Dx()), strip, g.field.Config().Background, false)
	if width > 0 {
		vector.DrawFilledRect(screen, 0, 0, float32(width), strip, progressColor, false)
	}
}

func (g *Game) progressHeight() float32 {
	return float32(progressBarHeight * g.field.Surface().Scale)
}

func (g *Game) drawDebug(screen *ebiten.Image) {
	fps := ebiten.ActualFPS()
	tps := ebiten.ActualTPS()
	if tps < 0 {
		tps = 0
	}
	s := g.field.Surface()
	warp := g.field.Warp()
	advancer := "cpu"
	if g.gpuAdvancer != nil {
		advancer = "opencl " + g.gpuAdvancer.DeviceName()
	} else if g.workers != nil {
		advancer = fmt.Sprintf("cpu x%d", g.workers.Count())
	}
	msg := fmt.Sprintf("FPS: %.1f (%.1f TPS)\nStars: %d\nSurface: %.0fx%.0f @%.2f\nScroll: %.0f%%\nWarp: speed %.2f fov %.2f streak %.2f\nFrames: %d\nAdvance: %s",
		fps, tps, g.field.Pool().Len(), s.Width, s.Height, s.Scale,
		g.smooth.Fraction()*100, warp.Speed, warp.FOV, warp.Streak,
		g.driver.Frames(), advancer)
	ebitenutil.DebugPrint(screen, msg)
}

// LayoutF sizes the field to the window in device pixels. Ebiten calls it
// every frame; the field only regenerates when the size actually changes.
func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	ratio := *pixelRatioFlag
	if ratio <= 0 {
		ratio = 1
		if m := ebiten.Monitor(); m != nil {
			ratio = m.DeviceScaleFactor()
		}
	}
	s, changed := g.field.Resize(outsideWidth, outsideHeight, ratio)
	if changed {
		g.resizePage(s.Height)
		g.needsRedraw = true
	}
	return math.Max(1, float64(s.BackingWidth)), math.Max(1, float64(s.BackingHeight))
}

// Layout is unused when LayoutF is implemented but satisfies ebiten.Game.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.LayoutF(float64(outsideWidth), float64(outsideHeight))
	return int(w), int(h)
}

// screenCanvas draws the starfield onto an ebiten image. Geometry arrives in
// logical pixels and is multiplied by the frame scale.
type screenCanvas struct {
	dst   *ebiten.Image
	scale float32

	vignette     *ebiten.Image
	vignetteW    int
	vignetteH    int
	vignetteOpts ebiten.DrawImageOptions
	vignetteErr  bool
}

func newScreenCanvas() *screenCanvas { return &screenCanvas{scale: 1} }

func (c *screenCanvas) bind(dst *ebiten.Image) { c.dst = dst }

func (c *screenCanvas) SetScale(scale float64) {
	if !(scale > 0) {
		scale = 1
	}
	c.scale = float32(scale)
}

func (c *screenCanvas) Fill(clr color.NRGBA) {
	if c.dst == nil {
		return
	}
	c.dst.Fill(clr)
}

func (c *screenCanvas) StrokeLine(x0, y0, x1, y1, width float64, clr color.NRGBA) {
	if c.dst == nil {
		return
	}
	s := c.scale
	vector.StrokeLine(c.dst, float32(x0)*s, float32(y0)*s, float32(x1)*s, float32(y1)*s, float32(width)*s, clr, true)
}

func (c *screenCanvas) FillCircle(x, y, r float64, clr color.NRGBA) {
	if c.dst == nil {
		return
	}
	s := c.scale
	vector.DrawFilledCircle(c.dst, float32(x)*s, float32(y)*s, float32(r)*s, clr, true)
}

// Vignette stretches a cached gradient mask over the whole target.
func (c *screenCanvas) Vignette(strength float64) {
	if c.dst == nil || strength <= 0 {
		return
	}
	b := c.dst.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return
	}
	if c.vignette == nil || c.vignetteW != b.Dx() || c.vignetteH != b.Dy() {
		if c.vignette != nil {
			c.vignette.Deallocate()
			c.vignette = nil
		}
		c.vignetteW, c.vignetteH = b.Dx(), b.Dy()
		mask, err := offscreen.VignetteMask(b.Dx(), b.Dy())
		if err != nil {
			if !c.vignetteErr {
				log.Printf("Vignette mask failed, drawing without it: %v", err)
				c.vignetteErr = true
			}
			return
		}
		c.vignette = ebiten.NewImageFromImage(mask)
	}
	if c.vignette == nil {
		return
	}
	c.vignetteOpts.GeoM.Reset()
	c.vignetteOpts.ColorScale.Reset()
	c.vignetteOpts.ColorScale.ScaleAlpha(float32(math.Min(1, strength)))
	c.dst.DrawImage(c.vignette, &c.vignetteOpts)
}
