// duelsim runs AI-vs-AI matches headlessly and prints aggregate results.
// It exists for balance work: changing prefabs/fighters.yaml and replaying
// a few thousand matches shows how the styles trade against each other.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"

	"github.com/milk9111/inkduel/ai"
	"github.com/milk9111/inkduel/combat"
	"github.com/milk9111/inkduel/flavor"
	"github.com/milk9111/inkduel/match"
)

func main() {
	matches := flag.Int("matches", 1000, "number of matches to simulate")
	diffFlag := flag.String("difficulty", "hard", "AI profile for both fighters")
	seed := flag.Int64("seed", 1, "rng seed")
	maxTicks := flag.Int("max-ticks", 60*60*5, "safety cap on ticks per match")
	flag.Parse()

	diff, err := ai.ParseDifficulty(*diffFlag)
	if err != nil {
		log.Fatal(err)
	}

	cfg := match.LoadConfig()
	cfg.Generator = flavor.Static("")
	profile := cfg.Profiles[diff]

	var winsSwift, winsIron, draws int
	var totalTicks int

	for i := 0; i < *matches; i++ {
		rng := rand.New(rand.NewSource(*seed + int64(i)))
		cfg.Rng = rng
		m := match.New(cfg, combat.StyleSwift, diff)

		ticks := 0
		for !m.Over && ticks < *maxTicks {
			// Fighter 1 has no human attached here; drive it with the
			// same policy the match runs for fighter 2.
			in := ai.Decide(m.Fighters[0], m.Fighters[1], profile, rng)
			m.Tick(in)
			ticks++
		}
		totalTicks += ticks

		switch m.Winner {
		case 1:
			winsSwift++
		case 2:
			winsIron++
		default:
			draws++
		}
	}

	fmt.Printf("matches:    %d (difficulty %s, seed %d)\n", *matches, diff, *seed)
	fmt.Printf("swift wins: %d (%.1f%%)\n", winsSwift, pct(winsSwift, *matches))
	fmt.Printf("iron wins:  %d (%.1f%%)\n", winsIron, pct(winsIron, *matches))
	fmt.Printf("draws:      %d (%.1f%%)\n", draws, pct(draws, *matches))
	fmt.Printf("avg length: %.1f ticks (%.1f s at 60 tps)\n",
		float64(totalTicks)/float64(*matches),
		float64(totalTicks)/float64(*matches)/60)
}

func pct(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total) * 100
}
