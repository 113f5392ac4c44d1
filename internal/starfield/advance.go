package starfield

// Advancer moves every star toward the viewer by step*star.Speed. It only
// touches Z; respawning is left to the caller.
type Advancer interface {
	Advance(stars []Star, step float64) error
}

// CPUAdvancer advances stars in place on the calling goroutine.
type CPUAdvancer struct{}

// Advance implements Advancer.
func (CPUAdvancer) Advance(stars []Star, step float64) error {
	for i := range stars {
		stars[i].Z -= step * stars[i].Speed
	}
	return nil
}
