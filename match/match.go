// Package match owns the full state of one duel and advances it one tick at
// a time. The host loop calls Tick once per frame with the human input
// snapshot; everything mutable lives here and nothing else writes it.
package match

import (
	"context"
	"log"
	"math/rand"
	"time"

	"github.com/milk9111/inkduel/ai"
	"github.com/milk9111/inkduel/combat"
	"github.com/milk9111/inkduel/common"
	"github.com/milk9111/inkduel/effects"
	"github.com/milk9111/inkduel/flavor"
	"github.com/milk9111/inkduel/prefabs"
)

// MatchSeconds is the nominal match clock.
const MatchSeconds = 60

const drawLine = "A draw. The arena falls silent."

// Config collects the tunables and collaborators a match is built from.
type Config struct {
	Roster    []combat.FighterStats
	Profiles  map[ai.Difficulty]ai.Profile
	Rng       *rand.Rand
	Generator flavor.Generator
}

// LoadConfig builds a Config from the prefab files, falling back to the
// built-in tables when a file is missing or malformed. Loading never fails.
func LoadConfig() Config {
	cfg := Config{
		Roster:    combat.DefaultRoster(),
		Profiles:  ai.DefaultProfiles(),
		Generator: flavor.FromEnv(),
	}
	if roster, err := prefabs.LoadRoster(); err != nil {
		log.Printf("match: using built-in roster: %v", err)
	} else {
		cfg.Roster = roster
	}
	if profiles, err := prefabs.LoadProfiles(); err != nil {
		log.Printf("match: using built-in AI profiles: %v", err)
	} else {
		cfg.Profiles = profiles
	}
	return cfg
}

// Match is the whole mutable state of one duel. It is rebuilt wholesale on
// rematch and never partially reset.
type Match struct {
	Fighters   [2]*combat.Fighter
	FX         *effects.Registry
	Countdown  int // seconds remaining, decremented stochastically
	Over       bool
	Winner     int // 1, 2, or 0 for none/draw
	Paused     bool
	Shake      float64
	Difficulty ai.Difficulty

	// FlavorLine is the narration shown on the result screen. It holds the
	// thinking placeholder while a request is in flight.
	FlavorLine string

	resolver *combat.Resolver
	profile  ai.Profile
	rng      *rand.Rand
	gen      flavor.Generator
	flavorCh chan string
}

// New starts a fresh match. The human fighter (ID 1) uses the requested
// style; the AI takes the other roster entry.
func New(cfg Config, playerStyle combat.Style, diff ai.Difficulty) *Match {
	rng := cfg.Rng
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	gen := cfg.Generator
	if gen == nil {
		gen = flavor.Static(flavor.Fallback)
	}
	roster := cfg.Roster
	if len(roster) == 0 {
		roster = combat.DefaultRoster()
	}
	profiles := cfg.Profiles
	if profiles == nil {
		profiles = ai.DefaultProfiles()
	}

	human := combat.TemplateFor(roster, playerStyle)
	var cpu combat.FighterStats
	for _, t := range roster {
		if t.Style != human.Style {
			cpu = t
			break
		}
	}
	if cpu.Name == "" {
		cpu = human
	}

	m := &Match{
		FX:         effects.NewRegistry(),
		Countdown:  MatchSeconds,
		Difficulty: diff,
		profile:    profiles[diff],
		rng:        rng,
		gen:        gen,
		flavorCh:   make(chan string, 1),
	}
	m.resolver = combat.NewResolver(rng, m.FX, m.addShake)

	m.Fighters[0] = combat.NewFighter(1, human, 200, 1)
	m.Fighters[1] = combat.NewFighter(2, cpu, common.ArenaWidth-200-combat.FighterWidth, -1)
	m.Fighters[1].AI = true
	return m
}

func (m *Match) Pause()  { m.Paused = true }
func (m *Match) Resume() { m.Paused = false }

// Tick advances the simulation by one frame. While paused nothing moves;
// after game over only the transient effects keep aging so the final frame
// settles visually.
func (m *Match) Tick(in combat.Input) {
	if m.Paused {
		return
	}

	m.pollFlavor()

	if m.Over {
		m.FX.Age()
		m.decayShake()
		return
	}

	f1, f2 := m.Fighters[0], m.Fighters[1]

	// Human-controlled fighter resolves first; the AI sees its freshly
	// updated state within the same tick.
	aiIn := ai.Decide(f2, f1, m.profile, m.rng)
	m.resolver.Step(f1, f2, in)
	m.resolver.Step(f2, f1, aiIn)

	// One second elapses with probability 1/60 each tick, approximating
	// wall time at the nominal frame rate without a clock read.
	if m.Countdown > 0 && m.rng.Intn(common.TicksPerSecond) == 0 {
		m.Countdown--
	}

	m.FX.Age()
	m.decayShake()
	m.checkEnd()
}

func (m *Match) addShake(mag float64) {
	if mag > m.Shake {
		m.Shake = mag
	}
}

func (m *Match) decayShake() {
	m.Shake--
	if m.Shake < 0 {
		m.Shake = 0
	}
}

// checkEnd evaluates the win conditions: a knockout on either side or the
// countdown reaching zero.
func (m *Match) checkEnd() {
	f1, f2 := m.Fighters[0], m.Fighters[1]

	dead1 := f1.Stats.HP <= 0
	dead2 := f2.Stats.HP <= 0
	if !dead1 && !dead2 && m.Countdown > 0 {
		return
	}

	m.Over = true
	switch {
	case dead1 && !dead2:
		m.Winner = 2
	case dead2 && !dead1:
		m.Winner = 1
	default:
		// Timeout or simultaneous KO: higher remaining hp wins.
		switch {
		case f1.Stats.HP > f2.Stats.HP:
			m.Winner = 1
		case f2.Stats.HP > f1.Stats.HP:
			m.Winner = 2
		default:
			m.Winner = 0
		}
	}

	if dead1 {
		c := f1.Hurtbox().Center()
		effects.SpawnKOBurst(m.FX, m.rng, c.X, c.Y, f1.Stats.Color)
	}
	if dead2 {
		c := f2.Hurtbox().Center()
		effects.SpawnKOBurst(m.FX, m.rng, c.X, c.Y, f2.Stats.Color)
	}

	if m.Winner == 0 {
		m.FlavorLine = drawLine
		return
	}

	winner := m.Fighters[m.Winner-1]
	winner.State = combat.Win
	m.requestFlavor(winner, m.Fighters[2-m.Winner])
}

// requestFlavor fires the narration request without blocking the tick loop.
// The result, or the fallback on any failure, arrives through a channel the
// loop polls once per tick.
func (m *Match) requestFlavor(winner, loser *combat.Fighter) {
	m.FlavorLine = flavor.Thinking
	report := flavor.Report{
		WinnerName:     winner.Stats.Name,
		WinnerStyle:    string(winner.Stats.Style),
		LoserName:      loser.Stats.Name,
		LoserStyle:     string(loser.Stats.Style),
		WinnerHP:       winner.Stats.HP,
		WinnerMaxHP:    winner.Stats.MaxHP,
		ElapsedSeconds: MatchSeconds - m.Countdown,
	}
	gen := m.gen
	ch := m.flavorCh
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		line, err := gen.Line(ctx, report)
		if err != nil {
			log.Printf("match: flavor generation failed: %v", err)
			line = flavor.Fallback
		}
		select {
		case ch <- line:
		default:
		}
	}()
}

func (m *Match) pollFlavor() {
	select {
	case line := <-m.flavorCh:
		m.FlavorLine = line
	default:
	}
}

// ResultText is the banner for the result screen from the human player's
// point of view.
func (m *Match) ResultText() string {
	switch m.Winner {
	case 1:
		return "YOU WIN"
	case 2:
		return "YOU LOSE"
	}
	return "DRAW"
}
