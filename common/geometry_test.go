package common

import "testing"

func TestBoxOverlaps(t *testing.T) {
	cases := []struct {
		name string
		a, b Box
		want bool
	}{
		{"identical", NewBox(0, 0, 10, 10), NewBox(0, 0, 10, 10), true},
		{"partial", NewBox(0, 0, 10, 10), NewBox(5, 5, 10, 10), true},
		{"separated_x", NewBox(0, 0, 10, 10), NewBox(20, 0, 10, 10), false},
		{"separated_y", NewBox(0, 0, 10, 10), NewBox(0, 20, 10, 10), false},
		{"contained", NewBox(0, 0, 100, 100), NewBox(40, 40, 10, 10), true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.a.Overlaps(c.b); got != c.want {
				t.Fatalf("a.Overlaps(b) = %v, want %v", got, c.want)
			}
			// The test must be commutative.
			if got := c.b.Overlaps(c.a); got != c.want {
				t.Fatalf("b.Overlaps(a) = %v, want %v", got, c.want)
			}
		})
	}
}

func TestBoxCenter(t *testing.T) {
	c := NewBox(10, 20, 30, 40).Center()
	if c.X != 25 || c.Y != 40 {
		t.Fatalf("center = (%v, %v), want (25, 40)", c.X, c.Y)
	}
}

func TestClamp(t *testing.T) {
	cases := []struct {
		v, lo, hi, want float64
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
	}
	for _, c := range cases {
		if got := Clamp(c.v, c.lo, c.hi); got != c.want {
			t.Fatalf("Clamp(%v, %v, %v) = %v, want %v", c.v, c.lo, c.hi, got, c.want)
		}
	}
}
