// Package demo builds the menu tree shared by the example programs.
package demo

import (
	"fmt"
	"image"
	"image/color"

	"github.com/go-theft-auto/odge"
)

// Screen size the demo lays itself out for.
const (
	Width  = 800
	Height = 600
)

// Swatches returns solid color tiles for the gallery.
func Swatches() []image.Image {
	colors := []color.RGBA{
		{0xe6, 0x39, 0x46, 0xff}, {0xf1, 0xfa, 0xee, 0xff}, {0xa8, 0xda, 0xdc, 0xff},
		{0x45, 0x7b, 0x9d, 0xff}, {0x1d, 0x35, 0x57, 0xff}, {0x2a, 0x9d, 0x8f, 0xff},
		{0xe9, 0xc4, 0x6a, 0xff}, {0xf4, 0xa2, 0x61, 0xff}, {0xe7, 0x6f, 0x51, 0xff},
		{0x26, 0x46, 0x53, 0xff}, {0x8a, 0xb1, 0x7d, 0xff}, {0xba, 0x68, 0xc8, 0xff},
	}
	out := make([]image.Image, len(colors))
	for i, c := range colors {
		img := image.NewRGBA(image.Rect(0, 0, 48, 48))
		for p := 0; p < len(img.Pix); p += 4 {
			img.Pix[p], img.Pix[p+1], img.Pix[p+2], img.Pix[p+3] = c.R, c.G, c.B, c.A
		}
		out[i] = img
	}
	return out
}

// Style returns the demo style.
func Style() *odge.Style {
	s := odge.DefaultStyle()
	s.Update(func(s *odge.Style) {
		s.BackgroundColors = odge.StyleContext[odge.Color]{
			Normal: odge.RGBA(0x10, 0x10, 0x18, 0xe0),
			Active: odge.RGBA(0x30, 0x50, 0x90, 0xff),
			Header: odge.RGBA(0x10, 0x10, 0x18, 0xe0),
			Footer: odge.RGBA(0x10, 0x10, 0x18, 0xe0),
		}
		s.BorderColors = odge.Same(odge.RGBA(0xe0, 0xc0, 0x60, 0xff))
		s.Borders = odge.Same[odge.Borders](odge.LineBorders{Thickness: 2})
		s.MaskColor = odge.RGBA(0, 0, 0, 0x80)
	})
	return s
}

// Build opens the main menu on ui. Images passed in are shown in the
// gallery; quit is called when the player picks Quit.
func Build(ui *odge.UI, images []odge.Image, quit func()) error {
	style := Style()

	main := odge.NewListMenu(style,
		odge.WithName("main"),
		odge.WithHeading("ODGE DEMO"),
	)

	notify := func(text string) {
		at := odge.Pt(Width/2, Height-80)
		p := odge.NewPopText(text, at, style, odge.WithMotion(odge.MotionRising), odge.WithLifetime(90))
		_ = ui.PopUps.Open(p) // fresh popups are never owned
	}

	story := odge.NewTextButton("Story", style)
	story.Submitted.Listen(func() {
		n := odge.NewNoteBox("Nothing to see here yet", style)
		n.SnapTo(odge.AnchorTop, Width, Height)
		_ = ui.PopUps.Open(n)
	})

	volume := odge.NewNumericWheel(0, 100, 10, 70, style, odge.WithName("volume"))
	sound := odge.NewTextButton("Volume", style)
	sound.Submitted.Listen(func() {
		volume.Layout()
		volume.SnapTo(odge.AnchorCenter, Width, Height)
		if err := ui.Controls.Open(volume); err != nil {
			notify(err.Error())
		}
	})
	volume.Submitted.Listen(func() {
		notify(fmt.Sprintf("Volume %d", volume.Value()))
		_ = volume.Close()
	})

	difficulty, err := odge.NewSelectWheel([]string{"Easy", "Normal", "Hard"}, 1, style, odge.WithName("difficulty"))
	if err != nil {
		return err
	}
	level := odge.NewTextButton("Difficulty", style)
	level.Submitted.Listen(func() {
		difficulty.Layout()
		difficulty.SnapTo(odge.AnchorCenter, Width, Height)
		if err := ui.Controls.Open(difficulty); err != nil {
			notify(err.Error())
		}
	})
	difficulty.ValueChanged.Listen(func() { notify(difficulty.Value()) })
	difficulty.Submitted.Listen(func() { _ = difficulty.Close() })

	gallery := odge.NewTextButton("Gallery", style)
	gallery.Submitted.Listen(func() {
		g := odge.NewGalleryMenu(style, odge.WithName("gallery"), odge.WithColumns(4))
		for i, img := range images {
			b := odge.NewImageButton(img, odge.Rect{}, style, odge.WithName(fmt.Sprintf("swatch %d", i)))
			b.Submitted.Listen(func() { notify(fmt.Sprintf("Swatch %d", i+1)) })
			g.Add(b)
		}
		g.SetSize(odge.Pt(320, 200))
		g.SnapTo(odge.AnchorCenter, Width, Height)
		if err := ui.Controls.Open(g); err != nil {
			notify(err.Error())
		}
	})

	help := odge.NewTextButton("Help", style)
	help.Submitted.Listen(func() {
		d := odge.NewDialogBox([]string{
			"Arrow keys, WASD, the d-pad or the left stick move\nthe selection.",
			"Enter, Space or A confirms.\nEscape, Backspace or B goes back.",
			"Left and right turn the pages of this box.",
		}, style, odge.WithName("help"), odge.WithHeading("HELP"))
		d.SetSize(odge.Pt(420, 140))
		d.SnapTo(odge.AnchorBottom, Width, Height)
		if err := ui.Controls.Open(d); err != nil {
			notify(err.Error())
		}
	})

	exit := odge.NewTextButton("Quit", style)
	exit.Submitted.Listen(func() {
		q := odge.NewQuestionBox("Really quit?", nil, nil, style, odge.WithName("quit"))
		q.ButtonsTogether = true
		q.YesButton().AsButton().Submitted.Listen(quit)
		q.Layout()
		q.SnapTo(odge.AnchorCenter, Width, Height)
		if err := ui.Controls.Open(q); err != nil {
			notify(err.Error())
		}
	})

	main.Add(story, sound, level, gallery, help, exit)
	main.SetSize(odge.Pt(240, 260))
	main.SnapTo(odge.AnchorCenter, Width, Height)
	main.Canceled.Listen(quit)
	return ui.Controls.Open(main)
}
