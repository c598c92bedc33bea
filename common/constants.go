package common

// Arena geometry and per-tick physics tuning. The simulation runs at the
// host's frame cadence (nominally 60 ticks per second) and every rate below
// is expressed per tick.
const (
	ArenaWidth  = 960.0
	ArenaHeight = 540.0

	// GroundY is the y coordinate of the floor line fighters stand on.
	GroundY = 440.0

	Gravity        = 0.7
	GroundFriction = 0.8
	AttackDrift    = 0.7

	TicksPerSecond = 60
)
