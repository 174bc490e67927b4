// Example runs the demo menus on raylib.
//
//	go run ./example/raylib/
package main

import (
	"flag"
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/go-theft-auto/odge"
	odgeraylib "github.com/go-theft-auto/odge/backend/raylib"
	"github.com/go-theft-auto/odge/example/internal/demo"
	"github.com/go-theft-auto/odge/input"
)

func main() {
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()
	odge.SetVerbose(*verbose)
	input.SetVerbose(*verbose)

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	rl.InitWindow(demo.Width, demo.Height, "odge raylib example")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)
	// Escape goes back in the menus instead of closing the window.
	rl.SetExitKey(0)

	devices := odgeraylib.Devices{}
	in, err := input.New(devices, devices, input.WithPlayerCount(1))
	if err != nil {
		return fmt.Errorf("input: %w", err)
	}
	defer in.Close()

	ui, err := odge.New(in, odge.WithPopUpUpdateAll(true))
	if err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	defer ui.Close()

	renderer := odgeraylib.NewRenderer()
	defer renderer.Unload()

	var images []odge.Image
	for _, img := range demo.Swatches() {
		t := odgeraylib.LoadTexture(img)
		defer t.Unload()
		images = append(images, t)
	}
	quit := false
	if err := demo.Build(ui, images, func() { quit = true }); err != nil {
		return fmt.Errorf("build menus: %w", err)
	}

	for !quit && !rl.WindowShouldClose() {
		if err := ui.Update(); err != nil {
			return err
		}
		if ui.Controls.Len() == 0 {
			break
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(0x1f, 0x1f, 0x24, 0xff))
		ui.Draw(renderer)
		rl.EndDrawing()
		renderer.EndFrame()
	}
	return nil
}
