package starfield

import "time"

// FrameQueue is a Scheduler that holds at most one pending frame until the
// host fires it. Hosts with their own paint callback (an ebiten Draw, an
// offscreen stepping loop) fire it once per repaint.
type FrameQueue struct {
	pending FrameFunc
}

// Schedule implements Scheduler. A later call replaces an unfired frame.
func (q *FrameQueue) Schedule(fn FrameFunc) { q.pending = fn }

// Pending reports whether a frame is waiting.
func (q *FrameQueue) Pending() bool { return q.pending != nil }

// Fire runs the pending frame, if any, and reports whether it ran.
func (q *FrameQueue) Fire(now time.Duration) bool {
	fn := q.pending
	if fn == nil {
		return false
	}
	q.pending = nil
	fn(now)
	return true
}
