package prefabs

import (
	"fmt"
	"image/color"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/inkduel/ai"
	"github.com/milk9111/inkduel/combat"
)

// FighterSpec is one roster entry in fighters.yaml.
type FighterSpec struct {
	Name        string  `yaml:"name"`
	Style       string  `yaml:"style"`
	Color       string  `yaml:"color"`
	MaxHP       float64 `yaml:"max_hp"`
	MaxEnergy   float64 `yaml:"max_energy"`
	Speed       float64 `yaml:"speed"`
	JumpForce   float64 `yaml:"jump_force"`
	DamageLight float64 `yaml:"damage_light"`
	DamageHeavy float64 `yaml:"damage_heavy"`
	Defense     float64 `yaml:"defense"`
}

// BoxSpec is a hitbox footprint.
type BoxSpec struct {
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// StyleSpec mirrors combat.StyleSpec in yaml form.
type StyleSpec struct {
	LightFrames       int       `yaml:"light_frames"`
	ComboFrames       int       `yaml:"combo_frames"`
	HeavyFrames       int       `yaml:"heavy_frames"`
	LightCooldown     int       `yaml:"light_cooldown"`
	HeavyCooldown     int       `yaml:"heavy_cooldown"`
	ComboCooldown     int       `yaml:"combo_cooldown"`
	LightBoxes        []BoxSpec `yaml:"light_boxes"`
	HeavyBox          BoxSpec   `yaml:"heavy_box"`
	CounterBox        BoxSpec   `yaml:"counter_box"`
	HeavyKnockback    float64   `yaml:"heavy_knockback"`
	FinisherKnockback float64   `yaml:"finisher_knockback"`
	HeavyDash         float64   `yaml:"heavy_dash"`
}

// RosterSpec is the top-level shape of fighters.yaml.
type RosterSpec struct {
	Fighters []FighterSpec        `yaml:"fighters"`
	Styles   map[string]StyleSpec `yaml:"styles"`
}

// ProfileSpec is one difficulty entry in difficulty.yaml.
type ProfileSpec struct {
	Aggression    float64 `yaml:"aggression"`
	Reaction      float64 `yaml:"reaction"`
	BlockChance   float64 `yaml:"block_chance"`
	CounterChance float64 `yaml:"counter_chance"`
}

// DifficultySpec is the top-level shape of difficulty.yaml.
type DifficultySpec struct {
	Profiles map[string]ProfileSpec `yaml:"profiles"`
}

// LoadRoster parses fighters.yaml, installs the style tunables into the
// combat style table, and returns the stat templates.
func LoadRoster() ([]combat.FighterStats, error) {
	data, err := Load("fighters.yaml")
	if err != nil {
		return nil, fmt.Errorf("prefabs: load fighters.yaml: %w", err)
	}
	var spec RosterSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal fighters.yaml: %w", err)
	}
	if len(spec.Fighters) == 0 {
		return nil, fmt.Errorf("prefabs: fighters.yaml declares no fighters")
	}

	for name, ss := range spec.Styles {
		cs, err := ss.toCombat()
		if err != nil {
			return nil, fmt.Errorf("prefabs: style %q: %w", name, err)
		}
		combat.SetStyleSpec(combat.Style(name), cs)
	}

	roster := make([]combat.FighterStats, 0, len(spec.Fighters))
	for _, fs := range spec.Fighters {
		stats, err := fs.toCombat()
		if err != nil {
			return nil, fmt.Errorf("prefabs: fighter %q: %w", fs.Name, err)
		}
		roster = append(roster, stats)
	}
	return roster, nil
}

// LoadProfiles parses difficulty.yaml into the AI profile table.
func LoadProfiles() (map[ai.Difficulty]ai.Profile, error) {
	data, err := Load("difficulty.yaml")
	if err != nil {
		return nil, fmt.Errorf("prefabs: load difficulty.yaml: %w", err)
	}
	var spec DifficultySpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal difficulty.yaml: %w", err)
	}

	profiles := ai.DefaultProfiles()
	for name, ps := range spec.Profiles {
		d, err := ai.ParseDifficulty(name)
		if err != nil {
			return nil, fmt.Errorf("prefabs: %w", err)
		}
		profiles[d] = ai.Profile{
			Aggression:    ps.Aggression,
			Reaction:      ps.Reaction,
			BlockChance:   ps.BlockChance,
			CounterChance: ps.CounterChance,
		}
	}
	return profiles, nil
}

func (fs FighterSpec) toCombat() (combat.FighterStats, error) {
	if fs.MaxHP <= 0 || fs.MaxEnergy <= 0 {
		return combat.FighterStats{}, fmt.Errorf("max_hp and max_energy must be positive")
	}
	c, err := ParseHexColor(fs.Color)
	if err != nil {
		return combat.FighterStats{}, err
	}
	return combat.FighterStats{
		MaxHP:       fs.MaxHP,
		MaxEnergy:   fs.MaxEnergy,
		Speed:       fs.Speed,
		JumpForce:   fs.JumpForce,
		DamageLight: fs.DamageLight,
		DamageHeavy: fs.DamageHeavy,
		Defense:     fs.Defense,
		Name:        fs.Name,
		Style:       combat.Style(fs.Style),
		Color:       c,
	}, nil
}

func (ss StyleSpec) toCombat() (combat.StyleSpec, error) {
	if len(ss.LightBoxes) != 3 {
		return combat.StyleSpec{}, fmt.Errorf("light_boxes must list exactly 3 entries, got %d", len(ss.LightBoxes))
	}
	cs := combat.StyleSpec{
		LightFrames:       ss.LightFrames,
		ComboFrames:       ss.ComboFrames,
		HeavyFrames:       ss.HeavyFrames,
		LightCooldown:     ss.LightCooldown,
		HeavyCooldown:     ss.HeavyCooldown,
		ComboCooldown:     ss.ComboCooldown,
		HeavyBox:          combat.BoxSize{W: ss.HeavyBox.W, H: ss.HeavyBox.H},
		CounterBox:        combat.BoxSize{W: ss.CounterBox.W, H: ss.CounterBox.H},
		HeavyKnockback:    ss.HeavyKnockback,
		FinisherKnockback: ss.FinisherKnockback,
		HeavyDash:         ss.HeavyDash,
	}
	for i, b := range ss.LightBoxes {
		cs.LightBoxes[i] = combat.BoxSize{W: b.W, H: b.H}
	}
	return cs, nil
}

// ParseHexColor parses "#rrggbb" into an opaque RGBA.
func ParseHexColor(s string) (color.RGBA, error) {
	var c color.RGBA
	if len(s) != 7 || s[0] != '#' {
		return c, fmt.Errorf("bad color %q, want #rrggbb", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return c, fmt.Errorf("bad color %q: %w", s, err)
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}
