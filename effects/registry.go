package effects

import "image/color"

// Shape selects how a particle is drawn and how quickly it decays.
type Shape int

const (
	ShapeCircle Shape = iota
	ShapeLine
	ShapeInk
	ShapeStar
)

// Kind distinguishes the two hit-flash treatments.
type Kind int

const (
	KindImpact Kind = iota
	KindBlock
)

// Particle is a transient combat visual. Life runs from 1.0 down to zero;
// ink particles decay slowly, damp their velocity and grow while they fade.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   float64
	Size   float64
	Shape  Shape
	Color  color.RGBA
}

// HitEffect is a short flash spawned at an impact point. Life decays by a
// fixed 0.1 per tick. Style carries the attacker's style tag so rendering
// can pick a visual treatment.
type HitEffect struct {
	X, Y  float64
	Life  float64
	Kind  Kind
	Style string
}

// Registry owns every live particle and hit effect. The match loop ages it
// once per tick; rendering reads it and never mutates it.
type Registry struct {
	Particles []Particle
	Hits      []HitEffect
}

func NewRegistry() *Registry {
	return &Registry{}
}

func (r *Registry) AddParticle(p Particle) {
	if p.Life <= 0 {
		p.Life = 1.0
	}
	r.Particles = append(r.Particles, p)
}

func (r *Registry) AddHit(x, y float64, kind Kind, style string) {
	r.Hits = append(r.Hits, HitEffect{X: x, Y: y, Life: 1.0, Kind: kind, Style: style})
}

// Age advances every entry by one tick and compacts out anything whose life
// reached zero. No dead entry survives the call.
func (r *Registry) Age() {
	live := r.Particles[:0]
	for i := range r.Particles {
		p := r.Particles[i]
		p.X += p.VX
		p.Y += p.VY
		if p.Shape == ShapeInk {
			p.VX *= 0.9
			p.VY *= 0.95
			p.Size += 0.25
			p.Life -= 0.02
		} else {
			p.Life -= 0.08
		}
		if p.Life > 0 {
			live = append(live, p)
		}
	}
	r.Particles = live

	liveHits := r.Hits[:0]
	for i := range r.Hits {
		h := r.Hits[i]
		h.Life -= 0.1
		if h.Life > 0 {
			liveHits = append(liveHits, h)
		}
	}
	r.Hits = liveHits
}

// Reset drops every live entry. Used on rematch.
func (r *Registry) Reset() {
	r.Particles = r.Particles[:0]
	r.Hits = r.Hits[:0]
}
