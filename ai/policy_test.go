package ai

import (
	"math/rand"
	"testing"

	"github.com/milk9111/inkduel/combat"
)

func fighterAt(x float64, facing float64) *combat.Fighter {
	tmpl := combat.TemplateFor(combat.DefaultRoster(), combat.StyleIron)
	return combat.NewFighter(2, tmpl, x, facing)
}

func TestDecideDisabledStates(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	opp := fighterAt(300, 1)

	for _, state := range []combat.State{combat.Hit, combat.Dead, combat.Win, combat.Ultimate} {
		t.Run(state.String(), func(t *testing.T) {
			self := fighterAt(350, -1)
			self.State = state
			self.Stats.Energy = 100
			for i := 0; i < 100; i++ {
				if in := Decide(self, opp, DefaultProfiles()[Hard], rng); in != (combat.Input{}) {
					t.Fatalf("non-empty input %+v in state %v", in, state)
				}
			}
		})
	}
}

// Easy has CounterChance zero, so the policy must never emit the down+light
// counter command no matter how the dice land.
func TestEasyNeverCounters(t *testing.T) {
	profile := DefaultProfiles()[Easy]

	for seed := int64(0); seed < 50; seed++ {
		rng := rand.New(rand.NewSource(seed))
		self := fighterAt(350, -1)
		opp := fighterAt(300, 1)
		opp.State = combat.AttackLight // inside defend range, mid-attack

		for i := 0; i < 600; i++ {
			in := Decide(self, opp, profile, rng)
			if in.Down && (in.Light || in.Heavy) {
				t.Fatalf("easy profile emitted a counter (seed %d, tick %d)", seed, i)
			}
		}
	}
}

func TestMidRangeAdvancesTowardOpponent(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	profile := DefaultProfiles()[Easy]

	t.Run("opponent_right", func(t *testing.T) {
		self := fighterAt(100, 1)
		opp := fighterAt(300, -1)
		in := Decide(self, opp, profile, rng)
		if !in.Right || in.Left {
			t.Fatalf("input = %+v, want advance right", in)
		}
	})

	t.Run("opponent_left", func(t *testing.T) {
		self := fighterAt(500, -1)
		opp := fighterAt(300, 1)
		in := Decide(self, opp, profile, rng)
		if !in.Left || in.Right {
			t.Fatalf("input = %+v, want advance left", in)
		}
	})
}

func TestLongRangeApproachRate(t *testing.T) {
	// Reaction gates the approach branch, so hard should close distance far
	// more often than easy over the same number of draws.
	count := func(d Difficulty) int {
		rng := rand.New(rand.NewSource(9))
		profile := DefaultProfiles()[d]
		self := fighterAt(100, 1)
		opp := fighterAt(800, -1)
		n := 0
		for i := 0; i < 1000; i++ {
			if in := Decide(self, opp, profile, rng); in.Right {
				n++
			}
		}
		return n
	}

	easy, hard := count(Easy), count(Hard)
	if easy >= hard {
		t.Fatalf("easy approached %d times, hard %d; want hard > easy", easy, hard)
	}
	if hard < 700 {
		t.Fatalf("hard approached only %d/1000 times with reaction 0.9", hard)
	}
	if easy > 200 {
		t.Fatalf("easy approached %d/1000 times with reaction 0.05", easy)
	}
}

func TestCloseRangeAttacks(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	profile := DefaultProfiles()[Hard]
	self := fighterAt(350, -1)
	opp := fighterAt(300, 1)

	var lights, heavies int
	for i := 0; i < 2000; i++ {
		in := Decide(self, opp, profile, rng)
		if in.Light {
			lights++
		}
		if in.Heavy {
			heavies++
		}
		if in.Left || in.Right {
			t.Fatalf("close range produced movement: %+v", in)
		}
	}
	if lights == 0 || heavies == 0 {
		t.Fatalf("lights=%d heavies=%d, want both attack kinds over 2000 ticks", lights, heavies)
	}
	if lights <= heavies {
		t.Fatalf("lights=%d heavies=%d, light bias not visible", lights, heavies)
	}
}

func TestComboContinuation(t *testing.T) {
	profile := Profile{Aggression: 1} // force the attack branch every draw
	self := fighterAt(350, -1)
	self.State = combat.AttackLight
	self.ComboIndex = 0
	opp := fighterAt(300, 1)

	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 200; i++ {
		in := Decide(self, opp, profile, rng)
		if !in.Light || in.Heavy {
			t.Fatalf("mid-combo input = %+v, want light continuation", in)
		}
	}

	// With the combo capped the policy falls back to the light/heavy roll.
	self.ComboIndex = combat.MaxCombo
	sawHeavy := false
	for i := 0; i < 2000; i++ {
		if in := Decide(self, opp, profile, rng); in.Heavy {
			sawHeavy = true
			break
		}
	}
	if !sawHeavy {
		t.Fatalf("capped combo never rolled a heavy")
	}
}

func TestUltimateOnlyWhenChargedAndClose(t *testing.T) {
	profile := DefaultProfiles()[Hard]

	t.Run("uncharged_never_fires", func(t *testing.T) {
		rng := rand.New(rand.NewSource(13))
		self := fighterAt(350, -1)
		self.Stats.Energy = 99
		opp := fighterAt(300, 1)
		for i := 0; i < 2000; i++ {
			if Decide(self, opp, profile, rng).Ultimate {
				t.Fatalf("ultimate fired at 99 energy")
			}
		}
	})

	t.Run("out_of_range_never_fires", func(t *testing.T) {
		rng := rand.New(rand.NewSource(13))
		self := fighterAt(100, 1)
		self.Stats.Energy = 100
		opp := fighterAt(800, -1)
		for i := 0; i < 2000; i++ {
			if Decide(self, opp, profile, rng).Ultimate {
				t.Fatalf("ultimate fired at long range")
			}
		}
	})

	t.Run("eventually_fires_in_range", func(t *testing.T) {
		rng := rand.New(rand.NewSource(13))
		self := fighterAt(350, -1)
		self.Stats.Energy = 100
		opp := fighterAt(300, 1)
		fired := false
		for i := 0; i < 2000; i++ {
			if Decide(self, opp, profile, rng).Ultimate {
				fired = true
				break
			}
		}
		if !fired {
			t.Fatalf("charged close-range ultimate never fired over 2000 ticks")
		}
	})
}

func TestParseDifficulty(t *testing.T) {
	for _, c := range []struct {
		in   string
		want Difficulty
	}{
		{"easy", Easy},
		{"medium", Medium},
		{"hard", Hard},
	} {
		got, err := ParseDifficulty(c.in)
		if err != nil || got != c.want {
			t.Fatalf("ParseDifficulty(%q) = %v, %v", c.in, got, err)
		}
	}
	if _, err := ParseDifficulty("brutal"); err == nil {
		t.Fatalf("unknown difficulty accepted")
	}
}
