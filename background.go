package main

import (
	"bytes"
	"image"
	_ "image/png"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"image/color"

	"github.com/milk9111/inkduel/common"
)

// background draws the arena backdrop. A PNG dropped at
// assets/background.png takes over; without one (or when decoding fails)
// a procedural scene is drawn instead, so a missing asset is never an
// error state.
type background struct {
	img *ebiten.Image
}

func loadBackground() *background {
	data, err := os.ReadFile("assets/background.png")
	if err != nil {
		return &background{}
	}
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		log.Printf("background: decode failed, using procedural scene: %v", err)
		return &background{}
	}
	return &background{img: ebiten.NewImageFromImage(src)}
}

func (b *background) Draw(dst *ebiten.Image) {
	if b.img != nil {
		op := &ebiten.DrawImageOptions{}
		bounds := b.img.Bounds()
		op.GeoM.Scale(
			common.ArenaWidth/float64(bounds.Dx()),
			common.ArenaHeight/float64(bounds.Dy()),
		)
		dst.DrawImage(b.img, op)
		return
	}

	// Procedural dusk sky in horizontal bands, then the floor.
	const bands = 24
	bandH := float32(common.ArenaHeight) / bands
	for i := 0; i < bands; i++ {
		t := float64(i) / bands
		c := color.RGBA{
			R: uint8(common.Lerp(0x1a, 0x4a, t)),
			G: uint8(common.Lerp(0x1a, 0x2e, t)),
			B: uint8(common.Lerp(0x2e, 0x3a, t)),
			A: 0xff,
		}
		vector.DrawFilledRect(dst, 0, float32(i)*bandH, float32(common.ArenaWidth), bandH+1, c, false)
	}

	ground := color.RGBA{R: 0x26, G: 0x20, B: 0x1c, A: 0xff}
	vector.DrawFilledRect(dst, 0, float32(common.GroundY), float32(common.ArenaWidth), float32(common.ArenaHeight-common.GroundY), ground, false)
	vector.StrokeLine(dst, 0, float32(common.GroundY), float32(common.ArenaWidth), float32(common.GroundY), 2, color.RGBA{R: 0x55, G: 0x48, B: 0x3a, A: 0xff}, false)

	// Distant pillars.
	pillar := color.RGBA{R: 0x20, G: 0x20, B: 0x30, A: 0xff}
	for _, px := range []float32{90, 310, 620, 850} {
		vector.DrawFilledRect(dst, px, float32(common.GroundY)-180, 26, 180, pillar, false)
	}
}
