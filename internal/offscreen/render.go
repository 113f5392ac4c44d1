package offscreen

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"math/rand"
	"os"
	"time"

	"github.com/gogpu/gg"
	xdraw "golang.org/x/image/draw"

	"warpfield/internal/starfield"
)

// Options configures an offscreen render.
type Options struct {
	Width, Height int
	PixelRatio    float64
	// Frames is how many frames a running field is stepped through; the
	// snapshot is the last one.
	Frames     int
	FrameDelta time.Duration
	Throttle   float64
	Seed       int64

	ReducedMotion bool
	// Config defaults to starfield.DefaultConfig when left zero.
	Config starfield.Config
}

// Frame is a finished render.
type Frame struct {
	Surface starfield.Surface
	Drawn   int

	dc *gg.Context
}

// Render builds a field for the options and draws it without a window.
func Render(opts Options) (*Frame, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("offscreen: invalid size %dx%d", opts.Width, opts.Height)
	}
	if opts.Frames < 1 {
		opts.Frames = 1
	}
	if opts.FrameDelta <= 0 {
		opts.FrameDelta = time.Second / 60
	}
	if opts.Config.Depth <= 0 {
		opts.Config = starfield.DefaultConfig()
	}
	field := starfield.NewField(opts.Config, rand.New(rand.NewSource(opts.Seed)))
	surface, _ := field.Resize(float64(opts.Width), float64(opts.Height), opts.PixelRatio)
	if surface.Empty() {
		return nil, errors.New("offscreen: surface has no area")
	}

	dc := gg.NewContext(surface.BackingWidth, surface.BackingHeight)
	canvas := NewCanvas(dc)
	sched := &starfield.FrameQueue{}
	throttle := opts.Throttle
	driver := starfield.NewDriver(field, canvas, sched,
		starfield.ThrottleFunc(func() float64 { return throttle }),
		starfield.ModeFor(opts.ReducedMotion))
	driver.Start()
	for i := 0; i < opts.Frames; i++ {
		if !sched.Fire(time.Duration(i) * opts.FrameDelta) {
			break
		}
	}
	driver.Stop()
	if err := canvas.Err(); err != nil {
		_ = dc.Close()
		return nil, fmt.Errorf("offscreen: drawing: %w", err)
	}
	return &Frame{Surface: surface, Drawn: driver.Frames(), dc: dc}, nil
}

// Image returns the rendered pixels at backing resolution.
func (f *Frame) Image() (image.Image, error) {
	if err := f.dc.FlushGPU(); err != nil {
		return nil, fmt.Errorf("offscreen: flushing frame: %w", err)
	}
	return f.dc.Image(), nil
}

// SavePNG writes the frame to path.
func (f *Frame) SavePNG(path string) error {
	return f.dc.SavePNG(path)
}

// Close releases the drawing context.
func (f *Frame) Close() error { return f.dc.Close() }

// Thumbnail scales img down to at most maxWidth pixels wide, keeping aspect.
// Images already narrow enough are copied unchanged.
func Thumbnail(img image.Image, maxWidth int) *image.RGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxWidth > 0 && w > maxWidth {
		h = max(1, h*maxWidth/w)
		w = maxWidth
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}

// SaveThumbnail writes a downscaled copy of img to path.
func SaveThumbnail(path string, img image.Image, maxWidth int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, Thumbnail(img, maxWidth)); err != nil {
		f.Close()
		return fmt.Errorf("encoding thumbnail: %w", err)
	}
	return f.Close()
}
