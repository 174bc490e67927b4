// Example opens a GLFW window and drives the demo menus with the OpenGL
// backend.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// Use the arrow keys or a gamepad to move, Enter or A to confirm and
// Escape or B to go back. Pass -v for debug logging.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/odge"
	"github.com/go-theft-auto/odge/backend/opengl"
	"github.com/go-theft-auto/odge/example/internal/demo"
	"github.com/go-theft-auto/odge/input"
)

const windowTitle = "odge example"

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

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
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	window, err := glfw.CreateWindow(demo.Width, demo.Height, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(demo.Width, demo.Height)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer renderer.Delete()

	devices := opengl.NewDevices(window)
	in, err := input.New(devices, devices, input.WithPlayerCount(1))
	if err != nil {
		return fmt.Errorf("input: %w", err)
	}
	defer in.Close()

	ui, err := odge.New(in, odge.WithDrawAll(true))
	if err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	defer ui.Close()

	var images []odge.Image
	for _, img := range demo.Swatches() {
		t := opengl.NewTexture(img)
		defer t.Delete()
		images = append(images, t)
	}
	if err := demo.Build(ui, images, func() { window.SetShouldClose(true) }); err != nil {
		return fmt.Errorf("build menus: %w", err)
	}

	for !window.ShouldClose() {
		glfw.PollEvents()

		if err := ui.Update(); err != nil {
			return err
		}
		if ui.Controls.Len() == 0 {
			window.SetShouldClose(true)
		}

		w, h := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		ui.Draw(renderer)
		if err := renderer.Flush(); err != nil {
			return fmt.Errorf("render: %w", err)
		}

		window.SwapBuffers()
	}

	return nil
}
