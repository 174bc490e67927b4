package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/odge/input"
)

// Devices samples the keyboard of a GLFW window and the joysticks GLFW
// exposes with a gamepad mapping. It implements both input.KeyboardSource
// and input.GamepadSource.
type Devices struct {
	window *glfw.Window
}

var (
	_ input.KeyboardSource = (*Devices)(nil)
	_ input.GamepadSource  = (*Devices)(nil)
)

// NewDevices creates device sources for window.
func NewDevices(window *glfw.Window) *Devices {
	return &Devices{window: window}
}

// KeyboardState implements input.KeyboardSource.
func (d *Devices) KeyboardState() input.KeyboardState {
	var s input.KeyboardState
	for gk, k := range glfwKeys {
		if d.window.GetKey(gk) == glfw.Press {
			s = s.WithKey(k, true)
		}
	}
	return s
}

// MaxGamepads implements input.GamepadSource.
func (d *Devices) MaxGamepads() int {
	return int(glfw.JoystickLast) + 1
}

// GamepadState implements input.GamepadSource. Joysticks without a gamepad
// mapping report as disconnected.
func (d *Devices) GamepadState(player int) input.GamepadState {
	joy := glfw.Joystick(player)
	if player < 0 || player >= d.MaxGamepads() || !joy.IsGamepad() {
		return input.GamepadState{}
	}
	gs := joy.GetGamepadState()
	if gs == nil {
		return input.GamepadState{}
	}

	s := input.GamepadState{Connected: true}
	for gb, b := range glfwButtons {
		s = s.WithButton(b, gs.Buttons[gb] == glfw.Press)
	}
	// Triggers rest at -1.
	s = s.WithButton(input.ButtonLeftTrigger, gs.Axes[glfw.AxisLeftTrigger] > 0)
	s = s.WithButton(input.ButtonRightTrigger, gs.Axes[glfw.AxisRightTrigger] > 0)
	return s.WithSticks(
		float64(gs.Axes[glfw.AxisLeftX]), float64(gs.Axes[glfw.AxisLeftY]),
		float64(gs.Axes[glfw.AxisRightX]), float64(gs.Axes[glfw.AxisRightY]),
	)
}

var glfwButtons = map[glfw.GamepadButton]input.Button{
	glfw.ButtonA:           input.ButtonA,
	glfw.ButtonB:           input.ButtonB,
	glfw.ButtonX:           input.ButtonX,
	glfw.ButtonY:           input.ButtonY,
	glfw.ButtonLeftBumper:  input.ButtonLeftShoulder,
	glfw.ButtonRightBumper: input.ButtonRightShoulder,
	glfw.ButtonBack:        input.ButtonBack,
	glfw.ButtonStart:       input.ButtonStart,
	glfw.ButtonGuide:       input.ButtonGuide,
	glfw.ButtonLeftThumb:   input.ButtonLeftStick,
	glfw.ButtonRightThumb:  input.ButtonRightStick,
	glfw.ButtonDpadUp:      input.ButtonDPadUp,
	glfw.ButtonDpadDown:    input.ButtonDPadDown,
	glfw.ButtonDpadLeft:    input.ButtonDPadLeft,
	glfw.ButtonDpadRight:   input.ButtonDPadRight,
}

var glfwKeys = map[glfw.Key]input.Key{
	glfw.KeySpace:        input.KeySpace,
	glfw.KeyEnter:        input.KeyEnter,
	glfw.KeyEscape:       input.KeyEscape,
	glfw.KeyTab:          input.KeyTab,
	glfw.KeyBackspace:    input.KeyBackspace,
	glfw.KeyInsert:       input.KeyInsert,
	glfw.KeyDelete:       input.KeyDelete,
	glfw.KeyHome:         input.KeyHome,
	glfw.KeyEnd:          input.KeyEnd,
	glfw.KeyPageUp:       input.KeyPageUp,
	glfw.KeyPageDown:     input.KeyPageDown,
	glfw.KeyUp:           input.KeyUp,
	glfw.KeyDown:         input.KeyDown,
	glfw.KeyLeft:         input.KeyLeft,
	glfw.KeyRight:        input.KeyRight,
	glfw.KeyLeftShift:    input.KeyLeftShift,
	glfw.KeyRightShift:   input.KeyRightShift,
	glfw.KeyLeftControl:  input.KeyLeftControl,
	glfw.KeyRightControl: input.KeyRightControl,
	glfw.KeyLeftAlt:      input.KeyLeftAlt,
	glfw.KeyRightAlt:     input.KeyRightAlt,
}

func init() {
	for i := range 26 {
		glfwKeys[glfw.KeyA+glfw.Key(i)] = input.KeyA + input.Key(i)
	}
	for i := range 10 {
		glfwKeys[glfw.Key0+glfw.Key(i)] = input.Key0 + input.Key(i)
	}
	for i := range 12 {
		glfwKeys[glfw.KeyF1+glfw.Key(i)] = input.KeyF1 + input.Key(i)
	}
}
