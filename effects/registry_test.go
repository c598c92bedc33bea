package effects

import (
	"image/color"
	"math/rand"
	"testing"
)

var white = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

func TestAddParticleDefaultsLife(t *testing.T) {
	r := NewRegistry()
	r.AddParticle(Particle{Shape: ShapeCircle})
	if r.Particles[0].Life != 1.0 {
		t.Fatalf("life = %v, want 1.0 default", r.Particles[0].Life)
	}

	r.AddParticle(Particle{Shape: ShapeCircle, Life: 0.5})
	if r.Particles[1].Life != 0.5 {
		t.Fatalf("explicit life overwritten: %v", r.Particles[1].Life)
	}
}

func TestAgeDecayRates(t *testing.T) {
	r := NewRegistry()
	r.AddParticle(Particle{Shape: ShapeCircle})
	r.AddParticle(Particle{Shape: ShapeInk})
	r.AddHit(0, 0, KindImpact, "swift")

	// A circle at 0.08/tick dies within 13 ticks; ink at 0.02/tick and the
	// hit flash at 0.1/tick bracket it on both sides.
	for i := 0; i < 13; i++ {
		r.Age()
	}
	if len(r.Particles) != 1 || r.Particles[0].Shape != ShapeInk {
		t.Fatalf("particles after 13 ticks = %d, want only the ink blot", len(r.Particles))
	}
	if len(r.Hits) != 0 {
		t.Fatalf("hit flash alive after 13 ticks")
	}

	for i := 0; i < 50; i++ {
		r.Age()
	}
	if len(r.Particles) != 0 {
		t.Fatalf("ink blot alive after 63 ticks")
	}
}

func TestAgeInkBehavior(t *testing.T) {
	r := NewRegistry()
	r.AddParticle(Particle{Shape: ShapeInk, VX: 10, VY: 10, Size: 4})
	r.Age()

	p := r.Particles[0]
	if p.X != 10 || p.Y != 10 {
		t.Fatalf("position = (%v, %v), want (10, 10)", p.X, p.Y)
	}
	if p.VX >= 10 || p.VY >= 10 {
		t.Fatalf("ink velocity not damped: vx=%v vy=%v", p.VX, p.VY)
	}
	if p.Size != 4.25 {
		t.Fatalf("size = %v, want 4.25", p.Size)
	}
}

func TestAgeCompactsSameTick(t *testing.T) {
	r := NewRegistry()
	r.AddParticle(Particle{Shape: ShapeCircle, Life: 0.05})
	r.AddParticle(Particle{Shape: ShapeCircle, Life: 0.9})
	r.AddParticle(Particle{Shape: ShapeLine, Life: 0.01})

	r.Age()
	if len(r.Particles) != 1 {
		t.Fatalf("particles = %d, want the single survivor", len(r.Particles))
	}
	for _, p := range r.Particles {
		if p.Life <= 0 {
			t.Fatalf("dead particle survived aging: %+v", p)
		}
	}
}

func TestSpawnCounts(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	cases := []struct {
		name  string
		spawn func(*Registry)
		want  int
	}{
		{"hit_sparks", func(r *Registry) { SpawnHitSparks(r, rng, 0, 0, white) }, 10},
		{"block_dust", func(r *Registry) { SpawnBlockDust(r, rng, 0, 0) }, 6},
		{"ink_splash", func(r *Registry) { SpawnInkSplash(r, rng, 0, 0, white) }, 5},
		{"ultimate_burst", func(r *Registry) { SpawnUltimateBurst(r, rng, 0, 0, white) }, 14},
		{"ko_burst", func(r *Registry) { SpawnKOBurst(r, rng, 0, 0, white) }, 18},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := NewRegistry()
			c.spawn(r)
			if len(r.Particles) != c.want {
				t.Fatalf("spawned %d particles, want %d", len(r.Particles), c.want)
			}
			for _, p := range r.Particles {
				if p.Life != 1.0 {
					t.Fatalf("spawned particle life = %v, want 1.0", p.Life)
				}
			}
		})
	}
}

func TestReset(t *testing.T) {
	r := NewRegistry()
	SpawnHitSparks(r, rand.New(rand.NewSource(2)), 0, 0, white)
	r.AddHit(0, 0, KindBlock, "iron")

	r.Reset()
	if len(r.Particles) != 0 || len(r.Hits) != 0 {
		t.Fatalf("reset left %d particles, %d hits", len(r.Particles), len(r.Hits))
	}
}
