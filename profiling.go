package main

import (
	"log"
	"os"
	"runtime/pprof"
	"sync"
	"time"
)

// startDefaultPGORecording writes a CPU profile to path until the returned
// stop func runs or duration elapses, whichever comes first.
func startDefaultPGORecording(path string, duration time.Duration) (func(), error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return nil, err
	}
	var once sync.Once
	stop := func() {
		once.Do(func() {
			pprof.StopCPUProfile()
			if err := f.Close(); err != nil {
				log.Printf("Closing %s: %v", path, err)
				return
			}
			log.Printf("Wrote CPU profile to %s", path)
		})
	}
	if duration > 0 {
		time.AfterFunc(duration, stop)
	}
	return stop, nil
}
