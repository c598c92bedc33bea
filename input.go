package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/inkduel/combat"
)

// readInput builds the per-tick input snapshot from current key state. The
// engine never reads the keyboard itself; this snapshot is the only input
// channel into the simulation.
//
// Bindings: WASD or arrows for movement/block, J/Z light, K/X heavy.
// Ultimate fires on Space, U, or both attack keys held together.
func readInput() combat.Input {
	kp := ebiten.IsKeyPressed

	j, k := kp(ebiten.KeyJ), kp(ebiten.KeyK)
	z, x := kp(ebiten.KeyZ), kp(ebiten.KeyX)

	return combat.Input{
		Left:     kp(ebiten.KeyA) || kp(ebiten.KeyArrowLeft),
		Right:    kp(ebiten.KeyD) || kp(ebiten.KeyArrowRight),
		Up:       kp(ebiten.KeyW) || kp(ebiten.KeyArrowUp),
		Down:     kp(ebiten.KeyS) || kp(ebiten.KeyArrowDown),
		Light:    j || z,
		Heavy:    k || x,
		Ultimate: kp(ebiten.KeySpace) || kp(ebiten.KeyU) || (j && k) || (z && x),
	}
}
