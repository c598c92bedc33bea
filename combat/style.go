package combat

import "image/color"

// Style tags one of the built-in fighting styles. Style-specific numbers
// live in the tunable table below so a new style is a data addition, not a
// code fork.
type Style string

const (
	StyleSwift Style = "swift"
	StyleIron  Style = "iron"
)

// BoxSize is a hitbox footprint in arena units.
type BoxSize struct {
	W, H float64
}

// StyleSpec is the per-style tunable table: attack timings, cooldowns,
// hitbox footprints and the knockback overrides that give each style its
// feel. Loaded from prefabs/fighters.yaml with these values as defaults.
type StyleSpec struct {
	LightFrames   int // initial light attack duration
	ComboFrames   int // duration after a combo extension
	HeavyFrames   int
	LightCooldown int
	HeavyCooldown int
	ComboCooldown int

	// LightBoxes is indexed by combo index; later entries widen the reach.
	LightBoxes [3]BoxSize
	HeavyBox   BoxSize
	CounterBox BoxSize

	// HeavyKnockback overrides the base knockback on heavy hits when > 0.
	HeavyKnockback float64
	// FinisherKnockback overrides the base knockback on the third light
	// combo hit when > 0.
	FinisherKnockback float64
	// HeavyDash is a forward impulse applied on heavy attack entry.
	HeavyDash float64
}

var styleTable = map[Style]StyleSpec{
	StyleSwift: {
		LightFrames:   12,
		ComboFrames:   12,
		HeavyFrames:   30,
		LightCooldown: 10,
		HeavyCooldown: 40,
		ComboCooldown: 5,
		LightBoxes: [3]BoxSize{
			{W: 80, H: 60},
			{W: 100, H: 60},
			{W: 120, H: 65},
		},
		HeavyBox:       BoxSize{W: 100, H: 80},
		CounterBox:     BoxSize{W: 80, H: 110},
		HeavyKnockback: 25,
		HeavyDash:      9,
	},
	StyleIron: {
		LightFrames:   20,
		ComboFrames:   18,
		HeavyFrames:   30,
		LightCooldown: 10,
		HeavyCooldown: 40,
		ComboCooldown: 5,
		LightBoxes: [3]BoxSize{
			{W: 80, H: 60},
			{W: 110, H: 70},
			{W: 140, H: 80},
		},
		HeavyBox:          BoxSize{W: 100, H: 80},
		CounterBox:        BoxSize{W: 80, H: 110},
		FinisherKnockback: 20,
	},
}

// SpecFor returns the tunable table for a style. Unknown styles fall back
// to iron so a bad data file can't crash the resolver.
func SpecFor(s Style) StyleSpec {
	if spec, ok := styleTable[s]; ok {
		return spec
	}
	return styleTable[StyleIron]
}

// SetStyleSpec installs or replaces a style's tunables. Used by the prefab
// loader and by debug hot reload.
func SetStyleSpec(s Style, spec StyleSpec) {
	styleTable[s] = spec
}

// DefaultRoster returns the two built-in fighter templates. The prefab
// loader replaces these when fighters.yaml parses cleanly.
func DefaultRoster() []FighterStats {
	return []FighterStats{
		{
			MaxHP:       200,
			MaxEnergy:   100,
			Speed:       6,
			JumpForce:   16,
			DamageLight: 8,
			DamageHeavy: 16,
			Defense:     0.9,
			Name:        "Zephyr",
			Style:       StyleSwift,
			Color:       color.RGBA{R: 0x4d, G: 0xd2, B: 0xff, A: 0xff},
		},
		{
			MaxHP:       200,
			MaxEnergy:   100,
			Speed:       4.5,
			JumpForce:   14,
			DamageLight: 10,
			DamageHeavy: 22,
			Defense:     0.8,
			Name:        "Bastion",
			Style:       StyleIron,
			Color:       color.RGBA{R: 0xff, G: 0x8c, B: 0x42, A: 0xff},
		},
	}
}

// TemplateFor picks the roster entry matching a style, defaulting to the
// first entry.
func TemplateFor(roster []FighterStats, s Style) FighterStats {
	for _, t := range roster {
		if t.Style == s {
			return t
		}
	}
	return roster[0]
}
