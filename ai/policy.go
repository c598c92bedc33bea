package ai

import (
	"fmt"
	"math/rand"

	"github.com/milk9111/inkduel/combat"
	"github.com/milk9111/inkduel/common"
)

// Difficulty selects one of the built-in AI profiles.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	}
	return "unknown"
}

// ParseDifficulty maps a profile name from config to a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch s {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	}
	return Easy, fmt.Errorf("ai: unknown difficulty %q", s)
}

// Profile holds the probabilities driving the policy. CounterChance is zero
// on easy, which keeps the counter branch unreachable there.
type Profile struct {
	Aggression    float64
	Reaction      float64
	BlockChance   float64
	CounterChance float64
}

// DefaultProfiles returns the built-in difficulty table. The prefab loader
// replaces it when difficulty.yaml parses cleanly.
func DefaultProfiles() map[Difficulty]Profile {
	return map[Difficulty]Profile{
		Easy:   {Aggression: 0.05, Reaction: 0.05, BlockChance: 0.1, CounterChance: 0},
		Medium: {Aggression: 0.1, Reaction: 0.5, BlockChance: 0.4, CounterChance: 0.3},
		Hard:   {Aggression: 0.35, Reaction: 0.9, BlockChance: 0.8, CounterChance: 0.3},
	}
}

// Policy ranges for the decision ladder, in arena units.
const (
	ultimateRange = 200.0
	defendRange   = 100.0
	approachRange = 300.0
	attackRange   = 90.0

	ultimateChance = 0.05
	jumpChance     = 0.02
	lightBias      = 0.6
)

// Decide produces the synthetic input for one AI-controlled tick. It is a
// pure function of the two fighters and the profile; every probabilistic
// gate draws independently from rng.
func Decide(self, opp *combat.Fighter, p Profile, rng *rand.Rand) combat.Input {
	var in combat.Input

	switch self.State {
	case combat.Hit, combat.Dead, combat.Win, combat.Ultimate:
		return in
	}

	dist := common.Abs(opp.X - self.X)
	towardRight := opp.X > self.X

	// 1. Ultimate when charged and in range.
	if self.Stats.Energy >= combat.UltimateCost && dist < ultimateRange {
		if rng.Float64() < ultimateChance {
			in.Ultimate = true
			return in
		}
	}

	// 2. Defend against an incoming attack.
	if dist < defendRange && midAttack(opp) {
		if rng.Float64() < p.BlockChance {
			in.Down = true
			if p.CounterChance > 0 && rng.Float64() < 0.3 {
				in.Light = true
			}
			return in
		}
	}

	// 3. Close the gap from long range.
	if dist > approachRange {
		if rng.Float64() < p.Reaction {
			setMove(&in, towardRight)
		}
		return in
	}

	// 4. Attack at close range.
	if dist < attackRange {
		if rng.Float64() < p.Aggression {
			if self.State == combat.AttackLight && self.ComboIndex < combat.MaxCombo {
				in.Light = true
			} else if rng.Float64() < lightBias {
				in.Light = true
			} else {
				in.Heavy = true
			}
			return in
		}
		return in
	}

	// 5. Mid-range: keep advancing, occasionally hop.
	setMove(&in, towardRight)
	if rng.Float64() < jumpChance {
		in.Up = true
	}
	return in
}

func midAttack(f *combat.Fighter) bool {
	return f.State == combat.AttackLight || f.State == combat.AttackHeavy
}

func setMove(in *combat.Input, right bool) {
	if right {
		in.Right = true
	} else {
		in.Left = true
	}
}
