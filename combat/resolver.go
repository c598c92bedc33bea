package combat

import (
	"math/rand"

	"github.com/milk9111/inkduel/common"
	"github.com/milk9111/inkduel/effects"
)

// Resolver tuning shared by every style.
const (
	BaseKnockback   = 8.0
	ComboDamageMult = 1.5
	MaxCombo        = 2
	HitStunFrames   = 12

	BlockDamageFactor = 0.1
	BlockPush         = 3.0

	EnergyOnHitAttacker = 10.0
	EnergyOnHitDefender = 15.0
	EnergyOnBlock       = 5.0

	CounterCost      = 30.0
	CounterFrames    = 20
	CounterDamage    = 25.0
	CounterStun      = 30
	CounterDash      = 15.0
	CounterKnockback = 12.0

	UltimateCost       = 100.0
	UltimateFrames     = 90
	UltimateStrikeTick = 20
	UltimateDamage     = 80.0
	UltimateStun       = 60
	UltimateKnockback  = 18.0

	// Combo extensions only open while the remaining attack timer is below
	// this value.
	comboWindow = 10

	moveAccel = 0.2
)

// Resolver advances one fighter's state by one tick. It owns no fighter
// state itself; both fighters are passed in each call.
type Resolver struct {
	rng   *rand.Rand
	fx    *effects.Registry
	shake func(mag float64)
}

// NewResolver wires the resolver to its effect sink and shake callback.
// Either may be nil in headless use.
func NewResolver(rng *rand.Rand, fx *effects.Registry, shake func(mag float64)) *Resolver {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	if fx == nil {
		fx = effects.NewRegistry()
	}
	if shake == nil {
		shake = func(float64) {}
	}
	return &Resolver{rng: rng, fx: fx, shake: shake}
}

// Step runs one tick of the state machine for f against opp. Death pre-empts
// everything; otherwise the active special/attack/hit state resolves, and
// the neutral path handles movement and voluntary actions.
func (r *Resolver) Step(f, opp *Fighter, in Input) {
	if f.Stats.HP <= 0 {
		if f.State != Dead {
			f.State = Dead
			f.Hitbox = nil
			f.ComboIndex = 0
		}
		r.passivePhysics(f)
		return
	}

	// Cooldown runs down every tick regardless of state so combo windows
	// inside an active attack can open.
	if f.Cooldown > 0 {
		f.Cooldown--
	}

	switch f.State {
	case Ultimate:
		r.stepUltimate(f, opp)
	case Counter:
		r.stepCounter(f, opp)
	case AttackLight, AttackHeavy:
		r.stepAttack(f, opp, in)
	case Hit:
		f.FrameTimer--
		if f.FrameTimer <= 0 {
			f.State = Idle
		}
		r.passivePhysics(f)
	case Dead, Win:
		r.passivePhysics(f)
	default:
		r.stepNeutral(f, opp, in)
	}
}

func (r *Resolver) stepNeutral(f, opp *Fighter, in Input) {
	if in.Ultimate && f.Stats.Energy >= UltimateCost && f.Cooldown <= 0 {
		r.enterUltimate(f)
		return
	}

	// Counter takes precedence over both block and plain attacks.
	if in.Down && (in.Light || in.Heavy) && f.Stats.Energy >= CounterCost {
		r.enterCounter(f)
		return
	}

	switch {
	case in.Left:
		f.VX = common.Clamp(common.Lerp(f.VX, -f.Stats.Speed, moveAccel), -f.Stats.Speed, f.Stats.Speed)
		f.Facing = -1
		f.State = Walk
	case in.Right:
		f.VX = common.Clamp(common.Lerp(f.VX, f.Stats.Speed, moveAccel), -f.Stats.Speed, f.Stats.Speed)
		f.Facing = 1
		f.State = Walk
	default:
		f.VX *= common.GroundFriction
		f.State = Idle
	}

	if in.Up && f.Grounded() {
		f.VY = -f.Stats.JumpForce
		f.State = Jump
	}

	if in.Down {
		f.State = Block
		f.VX = 0
	} else if f.Cooldown <= 0 {
		if in.Light {
			r.enterAttack(f, AttackLight)
		} else if in.Heavy {
			r.enterAttack(f, AttackHeavy)
		}
	}

	r.integrate(f)
}

func (r *Resolver) enterAttack(f *Fighter, s State) {
	spec := SpecFor(f.Stats.Style)
	f.State = s
	f.ComboIndex = 0
	if s == AttackLight {
		f.FrameTimer = spec.LightFrames
		f.Cooldown = spec.LightCooldown
	} else {
		f.FrameTimer = spec.HeavyFrames
		f.Cooldown = spec.HeavyCooldown
		if spec.HeavyDash != 0 {
			f.VX += f.Facing * spec.HeavyDash
		}
	}
	r.armHitbox(f)
}

func (r *Resolver) stepAttack(f, opp *Fighter, in Input) {
	spec := SpecFor(f.Stats.Style)

	// Combo extension: chain another light while the window is open.
	if f.State == AttackLight && in.Light &&
		f.FrameTimer < comboWindow && f.ComboIndex < MaxCombo && f.Cooldown <= 0 {
		f.ComboIndex++
		f.FrameTimer = spec.ComboFrames
		f.Cooldown = spec.ComboCooldown
		r.armHitbox(f)
		return
	}

	f.FrameTimer--

	if f.Hitbox != nil {
		r.trackHitbox(f)
		if f.Hitbox.Overlaps(opp.Hurtbox()) {
			switch opp.State {
			case Block:
				r.resolveBlock(f, opp)
			case Hit, Dead, Counter, Ultimate:
				// untouchable; hitbox stays armed
			default:
				r.resolveHit(f, opp)
			}
		}
	}

	f.VX *= common.AttackDrift
	r.integrate(f)

	if f.FrameTimer <= 0 {
		f.State = Idle
		f.Hitbox = nil
		f.ComboIndex = 0
	}
}

func (r *Resolver) resolveHit(f, opp *Fighter) {
	dmg := f.Stats.DamageLight
	if f.State == AttackHeavy {
		dmg = f.Stats.DamageHeavy
	} else if f.ComboIndex == MaxCombo {
		dmg *= ComboDamageMult
	}

	spec := SpecFor(f.Stats.Style)
	kb := BaseKnockback
	if f.State == AttackHeavy && spec.HeavyKnockback > 0 {
		kb = spec.HeavyKnockback
	} else if f.State == AttackLight && f.ComboIndex == MaxCombo && spec.FinisherKnockback > 0 {
		kb = spec.FinisherKnockback
	}

	opp.Damage(dmg)
	f.GainEnergy(EnergyOnHitAttacker)
	opp.GainEnergy(EnergyOnHitDefender)
	opp.State = Hit
	opp.FrameTimer = HitStunFrames
	opp.VX = kb * f.Facing

	impact := f.Hitbox.Center()
	r.fx.AddHit(impact.X, impact.Y, effects.KindImpact, string(f.Stats.Style))
	effects.SpawnHitSparks(r.fx, r.rng, impact.X, impact.Y, f.Stats.Color)
	if f.Stats.Style == StyleSwift {
		effects.SpawnInkSplash(r.fx, r.rng, impact.X, impact.Y, f.Stats.Color)
	}
	if f.State == AttackHeavy {
		r.shake(6)
	}
	f.Hitbox = nil
}

func (r *Resolver) resolveBlock(f, opp *Fighter) {
	dmg := f.Stats.DamageLight
	if f.State == AttackHeavy {
		dmg = f.Stats.DamageHeavy
	}
	opp.Damage(dmg * BlockDamageFactor)
	f.GainEnergy(EnergyOnBlock)
	opp.GainEnergy(EnergyOnBlock)
	opp.VX = BlockPush * f.Facing

	impact := f.Hitbox.Center()
	r.fx.AddHit(impact.X, impact.Y, effects.KindBlock, string(f.Stats.Style))
	effects.SpawnBlockDust(r.fx, r.rng, impact.X, impact.Y)
	f.Hitbox = nil
}

func (r *Resolver) enterCounter(f *Fighter) {
	f.SpendEnergy(CounterCost)
	f.State = Counter
	f.FrameTimer = CounterFrames
	r.armHitbox(f)
}

func (r *Resolver) stepCounter(f, opp *Fighter) {
	f.FrameTimer--
	f.VX = f.Facing * CounterDash

	if f.Hitbox != nil {
		r.trackHitbox(f)
		if f.Hitbox.Overlaps(opp.Hurtbox()) && opp.State != Hit && opp.State != Dead {
			opp.Damage(CounterDamage)
			opp.State = Hit
			opp.FrameTimer = CounterStun
			opp.VX = f.Facing * CounterKnockback
			opp.GainEnergy(EnergyOnHitDefender)
			f.GainEnergy(EnergyOnHitAttacker)

			impact := f.Hitbox.Center()
			r.fx.AddHit(impact.X, impact.Y, effects.KindImpact, string(f.Stats.Style))
			effects.SpawnHitSparks(r.fx, r.rng, impact.X, impact.Y, f.Stats.Color)
			r.shake(5)
			f.Hitbox = nil
			f.State = Idle
			r.integrate(f)
			return
		}
	}

	r.integrate(f)

	if f.FrameTimer <= 0 {
		f.State = Idle
		f.Hitbox = nil
	}
}

func (r *Resolver) enterUltimate(f *Fighter) {
	f.Stats.Energy = 0
	f.State = Ultimate
	f.FrameTimer = UltimateFrames
	f.VX = 0
	f.VY = 0
	f.Hitbox = nil
}

func (r *Resolver) stepUltimate(f, opp *Fighter) {
	// Immobilized for the whole cinematic.
	f.VX = 0
	f.VY = 0
	f.FrameTimer--

	elapsed := UltimateFrames - f.FrameTimer
	if elapsed == UltimateStrikeTick {
		arena := common.NewBox(0, 0, common.ArenaWidth, common.ArenaHeight)
		if arena.Overlaps(opp.Hurtbox()) && opp.State != Dead {
			opp.Damage(UltimateDamage)
			opp.State = Hit
			opp.FrameTimer = UltimateStun
			opp.VX = f.Facing * UltimateKnockback
			center := opp.Hurtbox().Center()
			r.fx.AddHit(center.X, center.Y, effects.KindImpact, string(f.Stats.Style))
			effects.SpawnKOBurst(r.fx, r.rng, center.X, center.Y, f.Stats.Color)
			r.shake(15)
		}
	}

	if elapsed%5 == 0 {
		center := f.Hurtbox().Center()
		effects.SpawnUltimateBurst(r.fx, r.rng, center.X, center.Y, f.Stats.Color)
		r.shake(6)
	}

	if f.FrameTimer <= 0 {
		f.State = Idle
	}
}

// armHitbox creates the hitbox for the fighter's current attacking state
// and positions it. Size comes from the style table.
func (r *Resolver) armHitbox(f *Fighter) {
	spec := SpecFor(f.Stats.Style)
	var size BoxSize
	switch f.State {
	case AttackLight:
		idx := f.ComboIndex
		if idx > MaxCombo {
			idx = MaxCombo
		}
		size = spec.LightBoxes[idx]
	case AttackHeavy:
		size = spec.HeavyBox
	case Counter:
		size = spec.CounterBox
	default:
		f.Hitbox = nil
		return
	}
	box := common.NewBox(0, 0, size.W, size.H)
	f.Hitbox = &box
	r.trackHitbox(f)
}

// trackHitbox keeps an armed hitbox glued to the fighter's position and
// facing.
func (r *Resolver) trackHitbox(f *Fighter) {
	if f.Hitbox == nil {
		return
	}
	if f.Facing >= 0 {
		f.Hitbox.X = f.X + FighterWidth
	} else {
		f.Hitbox.X = f.X - f.Hitbox.Width
	}
	f.Hitbox.Y = f.Y + (FighterHeight-f.Hitbox.Height)/2
}

// integrate applies gravity, moves the fighter, and clamps to the floor and
// arena bounds.
func (r *Resolver) integrate(f *Fighter) {
	f.VY += common.Gravity
	f.X += f.VX
	f.Y += f.VY
	floor := common.GroundY - FighterHeight
	if f.Y > floor {
		f.Y = floor
		f.VY = 0
	}
	f.X = common.Clamp(f.X, 0, common.ArenaWidth-FighterWidth)
}

// passivePhysics is the hit/dead/win path: friction decay plus gravity so an
// airborne fighter still falls.
func (r *Resolver) passivePhysics(f *Fighter) {
	f.VX *= common.GroundFriction
	r.integrate(f)
}
