package main

import (
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"warpfield/internal/scroll"
	"warpfield/internal/starfield"
)

// Game hosts the starfield in an ebiten window.
type Game struct {
	field     *starfield.Field
	driver    *starfield.Driver
	canvas    *screenCanvas
	scheduler *starfield.FrameQueue

	tracker  *scroll.Tracker
	smooth   *scroll.Smooth
	progress scroll.Progress

	start         time.Time
	started       bool
	needsRedraw   bool
	gpuAdvancer   *openCLDepthAdvancer
	workers       *starfield.WorkerAdvancer
	autoScroll    bool
	autoDeadline  time.Time
	autoRand      *rand.Rand
	autoDir       float64
	autoDwell     int
	pageScreens   float64
	reducedMotion bool
}

// newGame constructs a Game with an empty field; the first LayoutF call sizes it.
func newGame(seed int64, reducedMotion bool) *Game {
	cfg := starfield.DefaultConfig()
	if *densityFlag > 0 {
		cfg.Density = *densityFlag
	}
	pageScreens := *pageScreensFlag
	if pageScreens < 1 {
		pageScreens = 1
	}
	g := &Game{
		field:         starfield.NewField(cfg, rand.New(rand.NewSource(seed))),
		canvas:        newScreenCanvas(),
		scheduler:     &starfield.FrameQueue{},
		tracker:       scroll.NewTracker(0, 0),
		start:         time.Now(),
		autoRand:      rand.New(rand.NewSource(seed + 1)),
		autoDir:       1,
		pageScreens:   pageScreens,
		reducedMotion: reducedMotion,
	}
	g.smooth = scroll.NewSmooth(g.tracker, scrollSmoothing)
	g.field.Camera().Parallax = *parallaxFlag
	mode := starfield.ModeFor(reducedMotion)
	g.driver = starfield.NewDriver(g.field, g.canvas, g.scheduler, g.smooth, mode)
	if *openCLFlag {
		if adv, err := newOpenCLDepthAdvancer(); err != nil {
			log.Printf("OpenCL advancer unavailable, using CPU: %v", err)
		} else {
			log.Printf("OpenCL advancer enabled (device: %s)", adv.DeviceName())
			g.gpuAdvancer = adv
			g.field.SetAdvancer(adv)
		}
	}
	if g.gpuAdvancer == nil && *workersFlag > 1 {
		g.workers = starfield.NewWorkerAdvancer(*workersFlag)
		g.field.SetAdvancer(g.workers)
		log.Printf("Advancing depths on %d workers", g.workers.Count())
	}
	log.Printf("Starfield mode: %s", mode)
	return g
}

// Update handles input and scroll easing. Star motion happens in Draw, driven
// by the frame scheduler.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	dt := 1.0 / float64(ebiten.TPS())
	if delta := g.scrollDelta(dt); delta != 0 {
		g.tracker.ScrollBy(delta)
	}
	g.handlePagingKeys()
	g.smooth.Update(dt)
	g.trackPointer()
	if err := g.field.TakeAdvanceError(); err != nil {
		log.Printf("Depth advancer failed, falling back to CPU: %v", err)
		g.closeAdvancers()
	}
	return nil
}

// trackPointer feeds the cursor, in logical pixels, to the camera look target.
func (g *Game) trackPointer() {
	s := g.field.Surface()
	if s.Empty() {
		return
	}
	cx, cy := ebiten.CursorPosition()
	g.field.Camera().Look(float64(cx)/s.Scale, float64(cy)/s.Scale, s.Width, s.Height)
}

// resizePage keeps the scroll fraction while the page follows the viewport height.
func (g *Game) resizePage(viewport float64) {
	frac := g.tracker.Fraction()
	g.tracker.SetPage(viewport*g.pageScreens, viewport)
	g.tracker.ScrollTo(frac * g.tracker.Travel())
	g.smooth.Snap()
}

// closeAdvancers releases the OpenCL context and worker goroutines, if any.
func (g *Game) closeAdvancers() {
	if g.gpuAdvancer != nil {
		g.gpuAdvancer.Close()
		g.gpuAdvancer = nil
	}
	if g.workers != nil {
		g.workers.Close()
		g.workers = nil
	}
}
