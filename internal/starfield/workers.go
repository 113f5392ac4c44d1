package starfield

import (
	"runtime"
	"sync"
)

// minStarsPerWorker keeps tiny pools on a single goroutine.
const minStarsPerWorker = 2048

// WorkerAdvancer shards depth advancement across persistent goroutines. Each
// step publishes the slice and waits for every worker to finish its span.
type WorkerAdvancer struct {
	count int

	mu      sync.Mutex
	cond    *sync.Cond
	gen     int
	pending int
	closed  bool
	stars   []Star
	step    float64
}

// NewWorkerAdvancer starts count workers, capped at GOMAXPROCS.
func NewWorkerAdvancer(count int) *WorkerAdvancer {
	if limit := runtime.GOMAXPROCS(0); count > limit {
		count = limit
	}
	if count < 1 {
		count = 1
	}
	w := &WorkerAdvancer{count: count}
	w.cond = sync.NewCond(&w.mu)
	for i := 0; i < count; i++ {
		go w.loop(i)
	}
	return w
}

// Advance implements Advancer.
func (w *WorkerAdvancer) Advance(stars []Star, step float64) error {
	if len(stars) < minStarsPerWorker*w.count || w.count == 1 {
		return CPUAdvancer{}.Advance(stars, step)
	}
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return CPUAdvancer{}.Advance(stars, step)
	}
	w.stars, w.step = stars, step
	w.pending = w.count
	w.gen++
	w.cond.Broadcast()
	for w.pending > 0 {
		w.cond.Wait()
	}
	w.stars = nil
	w.mu.Unlock()
	return nil
}

func (w *WorkerAdvancer) loop(index int) {
	last := 0
	w.mu.Lock()
	for {
		for w.gen == last && !w.closed {
			w.cond.Wait()
		}
		if w.closed {
			w.mu.Unlock()
			return
		}
		last = w.gen
		lo, hi := workerSpan(len(w.stars), w.count, index)
		part, step := w.stars[lo:hi], w.step
		w.mu.Unlock()

		_ = CPUAdvancer{}.Advance(part, step)

		w.mu.Lock()
		w.pending--
		if w.pending == 0 {
			w.cond.Broadcast()
		}
	}
}

// workerSpan returns the half-open range worker index owns out of n items.
func workerSpan(n, workers, index int) (int, int) {
	chunk := (n + workers - 1) / workers
	lo := min(n, index*chunk)
	hi := min(n, lo+chunk)
	return lo, hi
}

// Count returns the number of worker goroutines.
func (w *WorkerAdvancer) Count() int { return w.count }

// Close stops the workers. Advance falls back to the calling goroutine after.
func (w *WorkerAdvancer) Close() {
	w.mu.Lock()
	w.closed = true
	w.cond.Broadcast()
	w.mu.Unlock()
}
