package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/inkduel/combat"
	"github.com/milk9111/inkduel/common"
	"github.com/milk9111/inkduel/effects"
	"github.com/milk9111/inkduel/match"
)

var uiFace ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)

// drawWorld renders both fighters and every transient effect into the
// offscreen arena image. It only reads match state.
func drawWorld(dst *ebiten.Image, m *match.Match, debug bool) {
	for _, f := range m.Fighters {
		drawFighter(dst, f, debug)
	}
	drawHitEffects(dst, m.FX)
	drawParticles(dst, m.FX)
}

func drawFighter(dst *ebiten.Image, f *combat.Fighter, debug bool) {
	body := f.Stats.Color
	switch f.State {
	case combat.Hit:
		body = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	case combat.Dead:
		body = color.RGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xff}
	}

	x, y := float32(f.X), float32(f.Y)
	w, h := float32(combat.FighterWidth), float32(combat.FighterHeight)
	vector.DrawFilledRect(dst, x, y, w, h, body, false)

	// Facing marker near the head.
	eyeX := x + w - 12
	if f.Facing < 0 {
		eyeX = x + 4
	}
	vector.DrawFilledRect(dst, eyeX, y+14, 8, 6, color.RGBA{A: 0xff}, false)

	switch f.State {
	case combat.Block:
		// Guard wall on the facing side.
		gx := x + w + 2
		if f.Facing < 0 {
			gx = x - 8
		}
		vector.DrawFilledRect(dst, gx, y+10, 6, h-20, color.RGBA{R: 0xdd, G: 0xdd, B: 0xdd, A: 0xcc}, false)
	case combat.Ultimate:
		cx := x + w/2
		cy := y + h/2
		vector.StrokeCircle(dst, cx, cy, h*0.8, 3, f.Stats.Color, true)
	}

	if debug {
		vector.StrokeRect(dst, x, y, w, h, 1, color.RGBA{G: 0xff, A: 0xff}, false)
		if f.Hitbox != nil {
			vector.StrokeRect(dst,
				float32(f.Hitbox.X), float32(f.Hitbox.Y),
				float32(f.Hitbox.Width), float32(f.Hitbox.Height),
				1, color.RGBA{R: 0xff, A: 0xff}, false)
		}
	}
}

func drawParticles(dst *ebiten.Image, fx *effects.Registry) {
	for i := range fx.Particles {
		p := &fx.Particles[i]
		c := p.Color
		c.A = uint8(common.Clamp(p.Life, 0, 1) * 255)
		x, y := float32(p.X), float32(p.Y)
		size := float32(p.Size)
		switch p.Shape {
		case effects.ShapeCircle:
			vector.DrawFilledCircle(dst, x, y, size, c, false)
		case effects.ShapeLine:
			vector.StrokeLine(dst, x, y, x+float32(p.VX)*2, y+float32(p.VY)*2, 2, c, false)
		case effects.ShapeInk:
			c.A /= 2
			vector.DrawFilledCircle(dst, x, y, size, c, true)
		case effects.ShapeStar:
			vector.StrokeLine(dst, x-size, y, x+size, y, 2, c, false)
			vector.StrokeLine(dst, x, y-size, x, y+size, 2, c, false)
		}
	}
}

func drawHitEffects(dst *ebiten.Image, fx *effects.Registry) {
	for i := range fx.Hits {
		h := &fx.Hits[i]
		alpha := uint8(common.Clamp(h.Life, 0, 1) * 255)
		x, y := float32(h.X), float32(h.Y)
		switch h.Kind {
		case effects.KindImpact:
			c := color.RGBA{R: 0xff, G: 0xe0, B: 0x66, A: alpha}
			if h.Style == string(combat.StyleSwift) {
				c = color.RGBA{R: 0x8a, G: 0xe0, B: 0xff, A: alpha}
			}
			radius := float32((1 - h.Life) * 40)
			vector.StrokeCircle(dst, x, y, radius, 3, c, true)
		case effects.KindBlock:
			c := color.RGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: alpha}
			half := float32((1 - h.Life) * 24)
			vector.StrokeRect(dst, x-half, y-half, half*2, half*2, 2, c, false)
		}
	}
}

func drawHUD(screen *ebiten.Image, m *match.Match) {
	const (
		barW    = 340.0
		barH    = 18.0
		margin  = 20.0
		energyH = 8.0
	)

	f1, f2 := m.Fighters[0], m.Fighters[1]
	drawBars(screen, f1, margin, false)
	drawBars(screen, f2, float64(baseWidth)-margin-barW, true)

	drawCenteredText(screen, fmt.Sprintf("%d", m.Countdown), float64(baseWidth)/2, 30, 3, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
}

func drawBars(screen *ebiten.Image, f *combat.Fighter, x float64, rightAligned bool) {
	const (
		barW    = 340.0
		barH    = 18.0
		energyH = 8.0
		top     = 16.0
	)

	hpFrac := f.Stats.HP / f.Stats.MaxHP
	enFrac := f.Stats.Energy / f.Stats.MaxEnergy

	vector.DrawFilledRect(screen, float32(x), top, barW, barH, color.RGBA{R: 0x30, G: 0x30, B: 0x30, A: 0xff}, false)
	hpX := x
	if rightAligned {
		hpX = x + barW*(1-hpFrac)
	}
	vector.DrawFilledRect(screen, float32(hpX), top, float32(barW*hpFrac), barH, color.RGBA{R: 0xd8, G: 0x3a, B: 0x3a, A: 0xff}, false)

	vector.DrawFilledRect(screen, float32(x), top+barH+4, barW, energyH, color.RGBA{R: 0x30, G: 0x30, B: 0x30, A: 0xff}, false)
	enX := x
	if rightAligned {
		enX = x + barW*(1-enFrac)
	}
	enColor := color.RGBA{R: 0x3a, G: 0x9a, B: 0xd8, A: 0xff}
	if f.Stats.Energy >= combat.UltimateCost {
		enColor = color.RGBA{R: 0xff, G: 0xd7, B: 0x00, A: 0xff}
	}
	vector.DrawFilledRect(screen, float32(enX), top+barH+4, float32(barW*enFrac), energyH, enColor, false)

	nameX := x
	if rightAligned {
		nameX = x + barW - float64(len(f.Stats.Name)*7)
	}
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(nameX, top+barH+16)
	op.ColorScale.ScaleWithColor(color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
	ebtext.Draw(screen, f.Stats.Name, uiFace, op)
}

func drawResult(screen *ebiten.Image, m *match.Match) {
	vector.DrawFilledRect(screen, 0, float32(baseHeight)/2-80, float32(baseWidth), 160, color.RGBA{A: 0xa0}, false)
	drawCenteredText(screen, m.ResultText(), float64(baseWidth)/2, float64(baseHeight)/2-50, 4, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
	drawCenteredText(screen, m.FlavorLine, float64(baseWidth)/2, float64(baseHeight)/2, 1, color.RGBA{R: 0xdd, G: 0xdd, B: 0xdd, A: 0xff})
}

func drawMenuText(screen *ebiten.Image, g *Game) {
	drawCenteredText(screen, "INKDUEL", float64(baseWidth)/2, 80, 5, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
	drawCenteredText(screen, "difficulty: "+g.diff.String(), float64(baseWidth)/2, 140, 1, color.RGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff})
}

func drawCenteredText(screen *ebiten.Image, s string, cx, cy, scale float64, clr color.Color) {
	op := &ebtext.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(cx, cy)
	op.PrimaryAlign = ebtext.AlignCenter
	op.ColorScale.ScaleWithColor(clr)
	ebtext.Draw(screen, s, uiFace, op)
}
