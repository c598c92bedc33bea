package combat

import (
	"image/color"

	"github.com/milk9111/inkduel/common"
)

// State is the fighter's current action.
type State int

const (
	Idle State = iota
	Walk
	Jump
	Crouch // declared for completeness, never entered
	Block
	AttackLight
	AttackHeavy
	Counter
	Ultimate
	Hit
	Dead
	Win
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Walk:
		return "walk"
	case Jump:
		return "jump"
	case Crouch:
		return "crouch"
	case Block:
		return "block"
	case AttackLight:
		return "attack_light"
	case AttackHeavy:
		return "attack_heavy"
	case Counter:
		return "counter"
	case Ultimate:
		return "ultimate"
	case Hit:
		return "hit"
	case Dead:
		return "dead"
	case Win:
		return "win"
	}
	return "unknown"
}

// Input is the per-tick input snapshot fed into the resolver. The host loop
// owns it; nothing in the engine reads key state directly.
type Input struct {
	Left, Right bool
	Up, Down    bool
	Light       bool
	Heavy       bool
	Ultimate    bool
}

// FighterStats is the immutable stat template copied into each fighter
// instance. HP and Energy are the live values; Defense is reserved and not
// yet part of the damage math.
type FighterStats struct {
	MaxHP       float64
	HP          float64
	MaxEnergy   float64
	Energy      float64
	Speed       float64
	JumpForce   float64
	DamageLight float64
	DamageHeavy float64
	Defense     float64
	Name        string
	Style       Style
	Color       color.RGBA
}

// Fighter is the full mutable state of one combatant. The match owns both
// fighters; the opponent is always passed in at the call site, never stored.
type Fighter struct {
	ID         int // 1 or 2
	X, Y       float64
	VX, VY     float64
	Facing     float64 // +1 or -1
	State      State
	FrameTimer int
	ComboIndex int
	Cooldown   int
	Hitbox     *common.Box // nil unless an attack, counter, or ultimate is armed
	AI         bool
	Stats      FighterStats
}

const (
	FighterWidth  = 56.0
	FighterHeight = 110.0
)

// NewFighter places a fresh fighter on the ground with a copy of the stat
// template.
func NewFighter(id int, stats FighterStats, x, facing float64) *Fighter {
	stats.HP = stats.MaxHP
	stats.Energy = 0
	return &Fighter{
		ID:     id,
		X:      x,
		Y:      common.GroundY - FighterHeight,
		Facing: facing,
		State:  Idle,
		Stats:  stats,
	}
}

// Hurtbox is the fighter's fixed-size body footprint, derived from the
// current position.
func (f *Fighter) Hurtbox() common.Box {
	return common.NewBox(f.X, f.Y, FighterWidth, FighterHeight)
}

// Grounded reports whether the fighter is standing on the floor line.
func (f *Fighter) Grounded() bool {
	return f.Y >= common.GroundY-FighterHeight
}

// Damage subtracts hp, clamped to [0, MaxHP].
func (f *Fighter) Damage(d float64) {
	f.Stats.HP = common.Clamp(f.Stats.HP-d, 0, f.Stats.MaxHP)
}

// GainEnergy adds energy, clamped to [0, MaxEnergy].
func (f *Fighter) GainEnergy(e float64) {
	f.Stats.Energy = common.Clamp(f.Stats.Energy+e, 0, f.Stats.MaxEnergy)
}

// SpendEnergy removes energy, clamped at zero.
func (f *Fighter) SpendEnergy(e float64) {
	f.Stats.Energy = common.Clamp(f.Stats.Energy-e, 0, f.Stats.MaxEnergy)
}

// Alive reports whether the fighter still has hp.
func (f *Fighter) Alive() bool {
	return f.Stats.HP > 0
}
