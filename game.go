package main

import (
	"log"
	"math/rand"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.design/x/clipboard"

	"github.com/milk9111/inkduel/ai"
	"github.com/milk9111/inkduel/combat"
	"github.com/milk9111/inkduel/common"
	"github.com/milk9111/inkduel/match"
	"github.com/milk9111/inkduel/prefabs"
)

const (
	baseWidth  = int(common.ArenaWidth)
	baseHeight = int(common.ArenaHeight)
)

type mode int

const (
	modeMenu mode = iota
	modeFight
)

type Game struct {
	mode  mode
	debug bool

	cfg   match.Config
	m     *match.Match
	style combat.Style
	diff  ai.Difficulty

	// world is the offscreen target the arena is drawn into so screen
	// shake can offset the whole scene in one draw.
	world *ebiten.Image
	bg    *background
	rng   *rand.Rand

	menuUI  *ebitenui.UI
	pauseUI *ebitenui.UI
	overUI  *ebitenui.UI

	watcher     *prefabs.Watcher
	clipboardOK bool
}

func NewGame(style combat.Style, diff ai.Difficulty, debug, clipboardOK bool) *Game {
	g := &Game{
		debug:       debug,
		cfg:         match.LoadConfig(),
		style:       style,
		diff:        diff,
		world:       ebiten.NewImage(baseWidth, baseHeight),
		bg:          loadBackground(),
		rng:         rand.New(rand.NewSource(42)),
		clipboardOK: clipboardOK,
	}
	g.menuUI = newMenuUI(g)
	g.pauseUI = newPauseUI(g)
	g.overUI = newGameOverUI(g)

	if debug {
		w, err := prefabs.NewWatcher("prefabs", "prefabs/scripts")
		if err != nil {
			log.Printf("game: prefab watcher disabled: %v", err)
		} else {
			g.watcher = w
		}
	}
	return g
}

// startMatch replaces the match state wholesale. Used by the menu's start
// buttons and the rematch button.
func (g *Game) startMatch() {
	g.m = match.New(g.cfg, g.style, g.diff)
	g.mode = modeFight
}

func (g *Game) Update() error {
	g.drainWatcher()

	switch g.mode {
	case modeMenu:
		g.menuUI.Update()
	case modeFight:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) && !g.m.Over {
			if g.m.Paused {
				g.m.Resume()
			} else {
				g.m.Pause()
			}
		}
		if g.m.Paused {
			g.pauseUI.Update()
			return nil
		}

		g.safeTick(readInput())

		if g.m.Over {
			g.overUI.Update()
			if inpututil.IsKeyJustPressed(ebiten.KeyC) {
				g.copySummary()
			}
		}
	}
	return nil
}

// safeTick keeps the frame loop alive through a simulation bug: the panic is
// logged, the frame is dropped, and scheduling continues.
func (g *Game) safeTick(in combat.Input) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("game: recovered tick panic: %v", r)
		}
	}()
	g.m.Tick(in)
}

// drainWatcher hot-reloads tunables when a prefab file changes on disk.
// Style tables apply immediately; stat templates apply on the next rematch.
func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	reload := false
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("game: prefab changed: %s", path)
			reload = true
		case err := <-g.watcher.Errors:
			log.Printf("game: prefab watcher: %v", err)
		default:
			if reload {
				g.cfg = match.LoadConfig()
			}
			return
		}
	}
}

func (g *Game) copySummary() {
	if !g.clipboardOK || g.m == nil {
		return
	}
	clipboard.Write(clipboard.FmtText, []byte(g.m.ResultText()+": "+g.m.FlavorLine))
}

func (g *Game) Draw(screen *ebiten.Image) {
	switch g.mode {
	case modeMenu:
		g.bg.Draw(screen)
		drawMenuText(screen, g)
		g.menuUI.Draw(screen)
	case modeFight:
		g.world.Clear()
		g.bg.Draw(g.world)
		drawWorld(g.world, g.m, g.debug)

		op := &ebiten.DrawImageOptions{}
		if g.m.Shake > 0 {
			op.GeoM.Translate(
				(g.rng.Float64()-0.5)*2*g.m.Shake,
				(g.rng.Float64()-0.5)*2*g.m.Shake,
			)
		}
		screen.DrawImage(g.world, op)

		drawHUD(screen, g.m)
		if g.m.Paused {
			g.pauseUI.Draw(screen)
		}
		if g.m.Over {
			drawResult(screen, g.m)
			g.overUI.Draw(screen)
		}
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return float64(baseWidth), float64(baseHeight)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
