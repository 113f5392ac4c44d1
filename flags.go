package main

import "flag"

// Command-line flags that control the window, renderer, and offscreen export.
var (
	widthFlag  = flag.Int("width", defaultWidth, "initial window width in logical pixels")
	heightFlag = flag.Int("height", defaultHeight, "initial window height in logical pixels")

	// pixelRatioFlag overrides the monitor's device scale factor when positive.
	pixelRatioFlag = flag.Float64("pixel-ratio", 0, "device pixel ratio override (0 uses the monitor's)")

	// reducedMotionFlag draws a single still frame instead of animating.
	reducedMotionFlag = flag.Bool("reduced-motion", false, "draw one static frame instead of animating")

	// parallaxFlag lets the cursor steer the camera.
	parallaxFlag = flag.Bool("parallax", false, "ease the camera toward the cursor")

	seedFlag    = flag.Int64("seed", 0, "random seed for star placement (0 picks one from the clock)")
	densityFlag = flag.Float64("density", 0, "stars per square logical pixel (0 keeps the default)")

	// pageScreensFlag sets how many viewport heights the virtual page spans.
	pageScreensFlag = flag.Float64("page-screens", defaultPageScreens, "virtual page length in viewport heights")

	progressBarFlag = flag.Bool("progress-bar", true, "show the scroll progress bar")

	// debugFlag enables the FPS and warp overlay.
	debugFlag = flag.Bool("debug", false, "show FPS, star count and warp overlay")

	// autoScrollFlag sweeps the page up and down without input.
	autoScrollFlag = flag.Bool("auto-scroll", false, "scroll the page automatically")

	// recordDefaultPGO triggers a scripted scroll to produce default.pgo.
	recordDefaultPGO = flag.Bool("record-default-pgo", false, "auto-scroll for 15s while capturing default.pgo")

	// openCLFlag moves depth advancement onto an OpenCL device when built with -tags opencl.
	openCLFlag = flag.Bool("opencl", false, "advance star depths on an OpenCL device (requires -tags opencl)")

	// workersFlag shards CPU depth advancement across goroutines when above 1.
	workersFlag = flag.Int("workers", 1, "goroutines used to advance star depths on the CPU")

	// snapshotFlag renders offscreen to a PNG and exits without opening a window.
	snapshotFlag       = flag.String("snapshot", "", "write an offscreen frame to this PNG path and exit")
	snapshotFramesFlag = flag.Int("snapshot-frames", defaultSnapshotFrame, "frames to simulate before the snapshot")
	snapshotWarpFlag   = flag.Float64("snapshot-warp", defaultSnapshotWarp, "warp throttle (0-1) for the snapshot")
	thumbnailFlag      = flag.String("thumbnail", "", "also write a downscaled copy of the snapshot here")
	thumbnailWidthFlag = flag.Int("thumbnail-width", defaultThumbWidth, "thumbnail width in pixels")
)
