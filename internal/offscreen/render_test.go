package offscreen

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"warpfield/internal/starfield"
)

func denseConfig() starfield.Config {
	cfg := starfield.DefaultConfig()
	cfg.Density = 0.01
	return cfg
}

func litPixels(img image.Image, bg [3]uint32) int {
	b := img.Bounds()
	n := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			if r>>8 > bg[0]+8 || g>>8 > bg[1]+8 || bl>>8 > bg[2]+8 {
				n++
			}
		}
	}
	return n
}

func TestRenderRunning(t *testing.T) {
	cfg := denseConfig()
	frame, err := Render(Options{
		Width: 160, Height: 120, PixelRatio: 2,
		Frames: 6, Throttle: 1, Seed: 9, Config: cfg,
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	defer frame.Close()

	if frame.Drawn != 6 {
		t.Fatalf("drawn = %d, want 6", frame.Drawn)
	}
	img, err := frame.Image()
	if err != nil {
		t.Fatalf("Image: %v", err)
	}
	if got := img.Bounds().Size(); got != image.Pt(320, 240) {
		t.Fatalf("image size = %v, want 320x240", got)
	}
	bg := [3]uint32{uint32(cfg.Background.R), uint32(cfg.Background.G), uint32(cfg.Background.B)}
	if litPixels(img, bg) == 0 {
		t.Fatal("no stars visible in render")
	}
}

func TestRenderReducedMotionDrawsOnce(t *testing.T) {
	frame, err := Render(Options{
		Width: 100, Height: 80, PixelRatio: 1,
		Frames: 30, Seed: 1, ReducedMotion: true, Config: denseConfig(),
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	defer frame.Close()
	if frame.Drawn != 1 {
		t.Fatalf("drawn = %d, want 1", frame.Drawn)
	}
}

func TestRenderRejectsEmptySurface(t *testing.T) {
	if _, err := Render(Options{Width: 0, Height: 100}); err == nil {
		t.Fatal("expected error for zero width")
	}
}

func TestSnapshotFiles(t *testing.T) {
	dir := t.TempDir()
	frame, err := Render(Options{Width: 200, Height: 100, PixelRatio: 1, Frames: 3, Seed: 4})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	defer frame.Close()

	full := filepath.Join(dir, "frame.png")
	if err := frame.SavePNG(full); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
	rendered, err := frame.Image()
	if err != nil {
		t.Fatalf("Image: %v", err)
	}
	thumb := filepath.Join(dir, "thumb.png")
	if err := SaveThumbnail(thumb, rendered, 50); err != nil {
		t.Fatalf("SaveThumbnail: %v", err)
	}

	f, err := os.Open(thumb)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decoding thumbnail: %v", err)
	}
	if got := img.Bounds().Size(); got != image.Pt(50, 25) {
		t.Fatalf("thumbnail size = %v, want 50x25", got)
	}
	if _, err := os.Stat(full); err != nil {
		t.Fatalf("frame not written: %v", err)
	}
}

func TestThumbnailKeepsSmallImages(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 40, 30))
	if got := Thumbnail(src, 100).Bounds().Size(); got != image.Pt(40, 30) {
		t.Fatalf("size = %v", got)
	}
}

func TestVignetteMask(t *testing.T) {
	img, err := VignetteMask(64, 64)
	if err != nil {
		t.Fatalf("VignetteMask: %v", err)
	}
	if got := img.Bounds().Size(); got != image.Pt(64, 64) {
		t.Fatalf("size = %v", got)
	}
	_, _, _, centre := img.At(32, 32).RGBA()
	_, _, _, corner := img.At(0, 0).RGBA()
	if corner <= centre {
		t.Fatalf("corner alpha %d should exceed centre alpha %d", corner, centre)
	}
}

func TestVignetteMaskRejectsEmptySize(t *testing.T) {
	for _, size := range []image.Point{{0, 10}, {10, 0}, {-4, 4}} {
		if img, err := VignetteMask(size.X, size.Y); err == nil || img != nil {
			t.Fatalf("VignetteMask(%d, %d) = %v, %v; want error", size.X, size.Y, img, err)
		}
	}
}
