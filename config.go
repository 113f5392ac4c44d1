package main

import "time"

// Window and input configuration for the starfield host. Renderer tuning lives
// in starfield.DefaultConfig.
const (
	defaultWidth         = 1280
	defaultHeight        = 800
	windowTitle          = "warpfield"
	defaultTPS           = 60.0
	defaultPageScreens   = 6
	wheelStep            = 60
	arrowStepPerSecond   = 900
	scrollSmoothing      = 10
	autoScrollSpeed      = 700
	autoScrollMinDwell   = 30
	autoScrollDwellRange = 90
	progressBarHeight    = 3
	pgoRecordDuration    = 15 * time.Second
	pgoPath              = "default.pgo"
	reducedMotionEnv     = "WARPFIELD_REDUCED_MOTION"
	defaultSnapshotWarp  = 0.6
	defaultSnapshotFrame = 90
	defaultThumbWidth    = 320
)
