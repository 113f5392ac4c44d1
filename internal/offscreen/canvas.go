// Package offscreen renders starfield frames into a software raster using gg,
// for PNG snapshots and for textures the window host uploads once per resize.
package offscreen

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/gogpu/gg"
)

// Canvas draws on a gg context. It satisfies starfield.Canvas.
type Canvas struct {
	dc    *gg.Context
	scale float64
	err   error
}

// NewCanvas wraps dc. The context's pixel size is the backing size.
func NewCanvas(dc *gg.Context) *Canvas {
	return &Canvas{dc: dc, scale: 1}
}

// SetScale installs the logical-to-backing transform.
func (c *Canvas) SetScale(scale float64) {
	if !(scale > 0) {
		scale = 1
	}
	c.scale = scale
	c.dc.Identity()
	c.dc.Scale(scale, scale)
}

// Fill paints the whole surface.
func (c *Canvas) Fill(clr color.NRGBA) {
	c.dc.ClearWithColor(toRGBA(clr))
}

// StrokeLine draws a round-capped segment.
func (c *Canvas) StrokeLine(x0, y0, x1, y1, width float64, clr color.NRGBA) {
	c.setColor(clr)
	c.dc.SetLineWidth(width)
	c.dc.SetLineCap(gg.LineCapRound)
	c.dc.DrawLine(x0, y0, x1, y1)
	c.keep(c.dc.Stroke())
}

// FillCircle draws a filled disc.
func (c *Canvas) FillCircle(x, y, r float64, clr color.NRGBA) {
	c.setColor(clr)
	c.dc.DrawCircle(x, y, r)
	c.keep(c.dc.Fill())
}

// Vignette darkens the edges toward black at the given opacity.
func (c *Canvas) Vignette(strength float64) {
	if !(strength > 0) {
		return
	}
	w, h := float64(c.dc.Width()), float64(c.dc.Height())
	c.dc.Push()
	c.dc.Identity()
	c.dc.SetFillBrush(vignetteBrush(w, h, math.Min(1, strength)))
	c.dc.DrawRectangle(0, 0, w, h)
	c.keep(c.dc.Fill())
	c.dc.Pop()
}

// Err returns the first drawing error, if any.
func (c *Canvas) Err() error { return c.err }

func (c *Canvas) setColor(clr color.NRGBA) {
	rgba := toRGBA(clr)
	c.dc.SetRGBA(rgba.R, rgba.G, rgba.B, rgba.A)
}

func (c *Canvas) keep(err error) {
	if err != nil && c.err == nil {
		c.err = err
	}
}

// VignetteMask renders a w×h mask that is transparent in the middle and fully
// black at the corners. Drawing it at opacity s equals Vignette(s).
func VignetteMask(w, h int) (image.Image, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("offscreen: invalid vignette size %dx%d", w, h)
	}
	dc := gg.NewContext(w, h)
	defer dc.Close()
	dc.SetFillBrush(vignetteBrush(float64(w), float64(h), 1))
	dc.DrawRectangle(0, 0, float64(w), float64(h))
	if err := dc.Fill(); err != nil {
		return nil, fmt.Errorf("offscreen: filling vignette: %w", err)
	}
	if err := dc.FlushGPU(); err != nil {
		return nil, fmt.Errorf("offscreen: flushing vignette: %w", err)
	}
	return dc.Image(), nil
}

func vignetteBrush(w, h, strength float64) *gg.RadialGradientBrush {
	radius := math.Hypot(w, h) / 2
	return gg.NewRadialGradientBrush(w/2, h/2, radius*0.45, radius).
		AddColorStop(0, gg.Transparent).
		AddColorStop(1, gg.RGBA2(0, 0, 0, strength))
}

func toRGBA(clr color.NRGBA) gg.RGBA {
	return gg.RGBA2(float64(clr.R)/255, float64(clr.G)/255, float64(clr.B)/255, float64(clr.A)/255)
}
