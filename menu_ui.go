package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"

	"github.com/milk9111/inkduel/ai"
	"github.com/milk9111/inkduel/combat"
)

// The menus are built from colored nine-slices and the shared basic font
// face, so no theme assets need to load before they can show.

var (
	panelImg     = imageui.NewNineSliceColor(color.NRGBA{A: 200})
	btnImg       = imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})
	btnTextColor = &widget.ButtonTextColor{Idle: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}}
	whiteText    = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

func menuButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
		widget.ButtonOpts.Text(label, &uiFace, btnTextColor),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func menuPanel(children ...widget.PreferredSizeLocateableWidget) *ebitenui.UI {
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
	for _, c := range children {
		panel.AddChild(c)
	}

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)
	return &ebitenui.UI{Container: root}
}

// newMenuUI builds the main menu: pick a fighter, pick a difficulty, start.
func newMenuUI(g *Game) *ebitenui.UI {
	title := widget.NewText(
		widget.TextOpts.Text("choose your fighter", &uiFace, whiteText),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)

	return menuPanel(
		title,
		menuButton("Zephyr — swift", func() {
			g.style = combat.StyleSwift
			g.startMatch()
		}),
		menuButton("Bastion — iron", func() {
			g.style = combat.StyleIron
			g.startMatch()
		}),
		menuButton("Easy", func() { g.diff = ai.Easy }),
		menuButton("Medium", func() { g.diff = ai.Medium }),
		menuButton("Hard", func() { g.diff = ai.Hard }),
	)
}

// newPauseUI builds the in-fight pause overlay.
func newPauseUI(g *Game) *ebitenui.UI {
	title := widget.NewText(
		widget.TextOpts.Text("Paused", &uiFace, whiteText),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)

	return menuPanel(
		title,
		menuButton("Resume", func() { g.m.Resume() }),
		menuButton("Quit to menu", func() {
			g.m.Resume()
			g.mode = modeMenu
		}),
	)
}

// newGameOverUI builds the result-screen buttons. The result banner and
// flavor line are drawn by drawResult; this overlay only holds actions.
func newGameOverUI(g *Game) *ebitenui.UI {
	buttons := []widget.PreferredSizeLocateableWidget{
		menuButton("Rematch", func() { g.startMatch() }),
		menuButton("Menu", func() { g.mode = modeMenu }),
	}
	if g.clipboardOK {
		buttons = append(buttons, menuButton("Copy summary (C)", func() { g.copySummary() }))
	}

	panel := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(16),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)
	for _, b := range buttons {
		panel.AddChild(b)
	}

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)
	return &ebitenui.UI{Container: root}
}
