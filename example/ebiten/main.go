// Example runs the demo menus on Ebitengine.
//
//	go run ./example/ebiten/
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/go-theft-auto/odge"
	odgeebiten "github.com/go-theft-auto/odge/backend/ebiten"
	"github.com/go-theft-auto/odge/example/internal/demo"
	"github.com/go-theft-auto/odge/input"
)

var errQuit = errors.New("quit")

type game struct {
	ui       *odge.UI
	renderer *odgeebiten.Renderer
	quit     bool
}

func (g *game) Update() error {
	if err := g.ui.Update(); err != nil {
		return err
	}
	if g.quit || g.ui.Controls.Len() == 0 {
		return errQuit
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x1f, 0x1f, 0x24, 0xff})
	g.renderer.SetTarget(screen)
	g.ui.Draw(g.renderer)
}

func (g *game) Layout(int, int) (int, int) {
	return demo.Width, demo.Height
}

func main() {
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()
	odge.SetVerbose(*verbose)
	input.SetVerbose(*verbose)

	if err := run(); err != nil && !errors.Is(err, errQuit) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	devices := odgeebiten.NewDevices()
	in, err := input.New(devices, devices, input.WithPlayerCount(1))
	if err != nil {
		return fmt.Errorf("input: %w", err)
	}
	defer in.Close()

	ui, err := odge.New(in)
	if err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	defer ui.Close()

	g := &game{ui: ui, renderer: odgeebiten.NewRenderer()}
	defer g.renderer.Dispose()

	var images []odge.Image
	for _, img := range demo.Swatches() {
		images = append(images, ebiten.NewImageFromImage(img))
	}
	if err := demo.Build(ui, images, func() { g.quit = true }); err != nil {
		return fmt.Errorf("build menus: %w", err)
	}

	ebiten.SetWindowSize(demo.Width, demo.Height)
	ebiten.SetWindowTitle("odge ebiten example")
	return ebiten.RunGame(g)
}
