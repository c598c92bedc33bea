package effects

import (
	"image/color"
	"math"
	"math/rand"
)

// SpawnHitSparks throws a small burst of circles and lines out of a clean
// hit, tinted with the attacker's color.
func SpawnHitSparks(r *Registry, rng *rand.Rand, x, y float64, c color.RGBA) {
	for i := 0; i < 10; i++ {
		shape := ShapeCircle
		if i%3 == 0 {
			shape = ShapeLine
		}
		r.AddParticle(Particle{
			X: x, Y: y,
			VX:    (rng.Float64() - 0.5) * 12,
			VY:    (rng.Float64() - 0.7) * 10,
			Size:  2 + rng.Float64()*3,
			Shape: shape,
			Color: c,
		})
	}
}

// SpawnBlockDust puts a few neutral puffs at a blocked impact.
func SpawnBlockDust(r *Registry, rng *rand.Rand, x, y float64) {
	gray := color.RGBA{R: 0xb0, G: 0xb0, B: 0xb0, A: 0xff}
	for i := 0; i < 6; i++ {
		r.AddParticle(Particle{
			X: x, Y: y,
			VX:    (rng.Float64() - 0.5) * 6,
			VY:    -rng.Float64() * 4,
			Size:  2 + rng.Float64()*2,
			Shape: ShapeCircle,
			Color: gray,
		})
	}
}

// SpawnInkSplash spreads slow-moving ink blots that grow as they fade.
func SpawnInkSplash(r *Registry, rng *rand.Rand, x, y float64, c color.RGBA) {
	for i := 0; i < 5; i++ {
		r.AddParticle(Particle{
			X: x + (rng.Float64()-0.5)*10, Y: y + (rng.Float64()-0.5)*10,
			VX:    (rng.Float64() - 0.5) * 5,
			VY:    (rng.Float64() - 0.5) * 5,
			Size:  4 + rng.Float64()*4,
			Shape: ShapeInk,
			Color: c,
		})
	}
}

// SpawnUltimateBurst emits a radial ring of stars for the ultimate's
// cinematic pulses.
func SpawnUltimateBurst(r *Registry, rng *rand.Rand, x, y float64, c color.RGBA) {
	const n = 14
	for i := 0; i < n; i++ {
		a := float64(i) / n * 2 * math.Pi
		speed := 4 + rng.Float64()*4
		r.AddParticle(Particle{
			X: x, Y: y,
			VX:    math.Cos(a) * speed,
			VY:    math.Sin(a) * speed,
			Size:  3 + rng.Float64()*2,
			Shape: ShapeStar,
			Color: c,
		})
	}
}

// SpawnKOBurst marks a knockout with a heavy spray of stars and lines.
func SpawnKOBurst(r *Registry, rng *rand.Rand, x, y float64, c color.RGBA) {
	for i := 0; i < 18; i++ {
		shape := ShapeStar
		if i%2 == 0 {
			shape = ShapeLine
		}
		a := rng.Float64() * 2 * math.Pi
		speed := 3 + rng.Float64()*9
		r.AddParticle(Particle{
			X: x, Y: y,
			VX:    math.Cos(a) * speed,
			VY:    math.Sin(a)*speed - 2,
			Size:  2 + rng.Float64()*4,
			Shape: shape,
			Color: c,
		})
	}
}
