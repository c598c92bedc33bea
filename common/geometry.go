package common

import "github.com/jakecoffman/cp"

// Box is an axis-aligned box positioned by its top-left corner in arena
// units. It backs every hurtbox and hitbox overlap test in the engine.
type Box struct {
	X, Y          float64
	Width, Height float64
}

// NewBox builds a box from a top-left corner and a size.
func NewBox(x, y, w, h float64) Box {
	return Box{X: x, Y: y, Width: w, Height: h}
}

// BB converts the box to a Chipmunk bounding box. Chipmunk BBs grow upward
// (B < T), so the top-left origin maps to B = -(Y+Height).
func (b Box) BB() cp.BB {
	return cp.BB{L: b.X, B: -(b.Y + b.Height), R: b.X + b.Width, T: -b.Y}
}

// Overlaps reports whether two boxes intersect. The test is commutative.
func (b Box) Overlaps(other Box) bool {
	return b.BB().Intersects(other.BB())
}

// Center returns the box midpoint.
func (b Box) Center() cp.Vector {
	return cp.Vector{X: b.X + b.Width/2, Y: b.Y + b.Height/2}
}
