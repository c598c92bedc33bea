package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.design/x/clipboard"

	"github.com/milk9111/inkduel/ai"
	"github.com/milk9111/inkduel/combat"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug overlays and prefab hot reload")
	styleFlag := flag.String("style", "swift", "starting fighter style (swift or iron)")
	diffFlag := flag.String("difficulty", "medium", "AI difficulty (easy, medium, hard)")
	flag.Parse()

	style := combat.Style(*styleFlag)
	diff, err := ai.ParseDifficulty(*diffFlag)
	if err != nil {
		log.Printf("%v, falling back to medium", err)
		diff = ai.Medium
	}

	// Clipboard is optional; the copy-summary button just disappears when
	// the platform doesn't support it.
	clipboardOK := clipboard.Init() == nil

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("inkduel")

	game := NewGame(style, diff, *debug, clipboardOK)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
