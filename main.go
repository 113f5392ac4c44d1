package main

import (
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/gogpu/gg"
	"github.com/hajimehoshi/ebiten/v2"

	"warpfield/internal/offscreen"
	"warpfield/internal/starfield"
)

func main() {
	flag.Parse()
	if *debugFlag {
		gg.SetLogger(slog.Default())
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	reduced := *reducedMotionFlag || envBool(reducedMotionEnv)

	if *snapshotFlag != "" {
		if err := writeSnapshot(*snapshotFlag, seed, reduced); err != nil {
			log.Fatalf("Snapshot failed: %v", err)
		}
		return
	}

	g := newGame(seed, reduced)
	defer g.closeAdvancers()

	if *recordDefaultPGO {
		stop, err := startDefaultPGORecording(pgoPath, pgoRecordDuration)
		if err != nil {
			log.Fatalf("Starting CPU profile: %v", err)
		}
		defer stop()
		g.enableAutoScroll(pgoRecordDuration)
	} else if *autoScrollFlag {
		g.enableAutoScroll(0)
	}

	ebiten.SetWindowSize(*widthFlag, *heightFlag)
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(int(defaultTPS))
	if reduced {
		// The single static frame has to survive later Draw calls.
		ebiten.SetScreenClearedEveryFrame(false)
	}
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatalf("Run failed: %v", err)
	}
}

// writeSnapshot renders one frame offscreen and writes it, plus an optional
// thumbnail, as PNG.
func writeSnapshot(path string, seed int64, reduced bool) error {
	cfg := starfield.DefaultConfig()
	if *densityFlag > 0 {
		cfg.Density = *densityFlag
	}
	ratio := *pixelRatioFlag
	if ratio <= 0 {
		ratio = 1
	}
	frame, err := offscreen.Render(offscreen.Options{
		Width:         *widthFlag,
		Height:        *heightFlag,
		PixelRatio:    ratio,
		Frames:        *snapshotFramesFlag,
		FrameDelta:    time.Second / time.Duration(defaultTPS),
		Throttle:      *snapshotWarpFlag,
		Seed:          seed,
		ReducedMotion: reduced,
		Config:        cfg,
	})
	if err != nil {
		return err
	}
	defer frame.Close()
	if err := frame.SavePNG(path); err != nil {
		return err
	}
	log.Printf("Wrote %dx%d snapshot (%d frames) to %s",
		frame.Surface.BackingWidth, frame.Surface.BackingHeight, frame.Drawn, path)
	if *thumbnailFlag != "" {
		img, err := frame.Image()
		if err != nil {
			return err
		}
		if err := offscreen.SaveThumbnail(*thumbnailFlag, img, *thumbnailWidthFlag); err != nil {
			return err
		}
		log.Printf("Wrote thumbnail to %s", *thumbnailFlag)
	}
	return nil
}

// envBool reports whether the named variable holds a true value.
func envBool(name string) bool {
	v, ok := os.LookupEnv(name)
	if !ok {
		return false
	}
	b, err := strconv.ParseBool(v)
	return err == nil && b
}
