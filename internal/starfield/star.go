package starfield

import "math"

// Rand is the random source used to place stars. *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Star is a single particle. X and Y are world coordinates centred on the
// camera axis; Z is the distance from the viewer.
type Star struct {
	X, Y  float64
	Z     float64
	Speed float64
	Hue   float64

	prevX, prevY float64
	hasPrev      bool
}

// Previous returns the screen point the star was drawn at on the prior frame.
// ok is false until the star has been projected once since it spawned.
func (s Star) Previous() (x, y float64, ok bool) {
	return s.prevX, s.prevY, s.hasPrev
}

// Pool owns the fixed-size set of stars for one viewport.
type Pool struct {
	cfg           Config
	rng           Rand
	width, height float64
	stars         []Star
}

// NewPool returns an empty pool that draws randomness from rng.
func NewPool(cfg Config, rng Rand) *Pool {
	return &Pool{cfg: cfg, rng: rng}
}

// PoolSize is the number of stars for a viewport of the given area.
func PoolSize(width, height, density float64) int {
	if !(width > 0) || !(height > 0) || !(density > 0) {
		return 0
	}
	return int(math.Floor(width * height * density))
}

// Reset replaces every star with floor(width*height*density) new ones. Depths
// are spread uniformly over (0, Depth] so the field does not arrive in waves.
func (p *Pool) Reset(width, height, density float64) {
	p.width, p.height = width, height
	n := PoolSize(width, height, density)
	if cap(p.stars) < n {
		p.stars = make([]Star, n)
	} else {
		p.stars = p.stars[:n]
	}
	for i := range p.stars {
		s := p.SpawnAtFarPlane()
		// 1-Float64 lies in (0, 1], keeping Z off zero.
		s.Z = p.cfg.Depth * (1 - p.rng.Float64())
		p.stars[i] = s
	}
}

// SpawnAtFarPlane creates a star at Z = Depth with fresh position, speed and hue.
func (p *Pool) SpawnAtFarPlane() Star {
	spread := p.cfg.FieldSpread
	return Star{
		X:     (p.rng.Float64() - 0.5) * p.width * spread,
		Y:     (p.rng.Float64() - 0.5) * p.height * spread,
		Z:     p.cfg.Depth,
		Speed: lerp(p.cfg.SpeedMin, p.cfg.SpeedMax, p.rng.Float64()),
		Hue:   lerp(p.cfg.HueMin, p.cfg.HueMax, p.rng.Float64()),
	}
}

// Respawn replaces every star that crossed the near plane. It returns the
// number of stars replaced.
func (p *Pool) Respawn() int {
	n := 0
	for i := range p.stars {
		if p.stars[i].Z <= NearPlane || math.IsNaN(p.stars[i].Z) {
			p.stars[i] = p.SpawnAtFarPlane()
			n++
		}
	}
	return n
}

// Stars exposes the pool's backing slice.
func (p *Pool) Stars() []Star { return p.stars }

// Len returns the pool size.
func (p *Pool) Len() int { return len(p.stars) }

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
