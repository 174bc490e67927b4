package raylib

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/go-theft-auto/odge/input"
)

// MaxGamepads is the number of gamepad slots raylib tracks.
const MaxGamepads = 4

// Devices samples raylib's keyboard and gamepads. It implements
// input.KeyboardSource and input.GamepadSource.
type Devices struct{}

var (
	_ input.KeyboardSource = Devices{}
	_ input.GamepadSource  = Devices{}
)

// KeyboardState implements input.KeyboardSource.
func (Devices) KeyboardState() input.KeyboardState {
	var s input.KeyboardState
	for rk, k := range raylibKeys {
		if rl.IsKeyDown(rk) {
			s = s.WithKey(k, true)
		}
	}
	return s
}

// MaxGamepads implements input.GamepadSource.
func (Devices) MaxGamepads() int { return MaxGamepads }

// GamepadState implements input.GamepadSource.
func (Devices) GamepadState(player int) input.GamepadState {
	pad := int32(player)
	if player < 0 || player >= MaxGamepads || !rl.IsGamepadAvailable(pad) {
		return input.GamepadState{}
	}
	s := input.GamepadState{Connected: true}
	for rb, b := range raylibButtons {
		s = s.WithButton(b, rl.IsGamepadButtonDown(pad, rb))
	}
	return s.WithSticks(
		float64(rl.GetGamepadAxisMovement(pad, rl.GamepadAxisLeftX)),
		float64(rl.GetGamepadAxisMovement(pad, rl.GamepadAxisLeftY)),
		float64(rl.GetGamepadAxisMovement(pad, rl.GamepadAxisRightX)),
		float64(rl.GetGamepadAxisMovement(pad, rl.GamepadAxisRightY)),
	)
}

var raylibButtons = map[int32]input.Button{
	rl.GamepadButtonRightFaceDown:  input.ButtonA,
	rl.GamepadButtonRightFaceRight: input.ButtonB,
	rl.GamepadButtonRightFaceLeft:  input.ButtonX,
	rl.GamepadButtonRightFaceUp:    input.ButtonY,
	rl.GamepadButtonLeftTrigger1:   input.ButtonLeftShoulder,
	rl.GamepadButtonRightTrigger1:  input.ButtonRightShoulder,
	rl.GamepadButtonLeftTrigger2:   input.ButtonLeftTrigger,
	rl.GamepadButtonRightTrigger2:  input.ButtonRightTrigger,
	rl.GamepadButtonMiddleLeft:     input.ButtonBack,
	rl.GamepadButtonMiddleRight:    input.ButtonStart,
	rl.GamepadButtonMiddle:         input.ButtonGuide,
	rl.GamepadButtonLeftThumb:      input.ButtonLeftStick,
	rl.GamepadButtonRightThumb:     input.ButtonRightStick,
	rl.GamepadButtonLeftFaceUp:     input.ButtonDPadUp,
	rl.GamepadButtonLeftFaceDown:   input.ButtonDPadDown,
	rl.GamepadButtonLeftFaceLeft:   input.ButtonDPadLeft,
	rl.GamepadButtonLeftFaceRight:  input.ButtonDPadRight,
}

var raylibKeys = map[int32]input.Key{
	rl.KeySpace:        input.KeySpace,
	rl.KeyEnter:        input.KeyEnter,
	rl.KeyKpEnter:      input.KeyEnter,
	rl.KeyEscape:       input.KeyEscape,
	rl.KeyTab:          input.KeyTab,
	rl.KeyBackspace:    input.KeyBackspace,
	rl.KeyInsert:       input.KeyInsert,
	rl.KeyDelete:       input.KeyDelete,
	rl.KeyHome:         input.KeyHome,
	rl.KeyEnd:          input.KeyEnd,
	rl.KeyPageUp:       input.KeyPageUp,
	rl.KeyPageDown:     input.KeyPageDown,
	rl.KeyUp:           input.KeyUp,
	rl.KeyDown:         input.KeyDown,
	rl.KeyLeft:         input.KeyLeft,
	rl.KeyRight:        input.KeyRight,
	rl.KeyLeftShift:    input.KeyLeftShift,
	rl.KeyRightShift:   input.KeyRightShift,
	rl.KeyLeftControl:  input.KeyLeftControl,
	rl.KeyRightControl: input.KeyRightControl,
	rl.KeyLeftAlt:      input.KeyLeftAlt,
	rl.KeyRightAlt:     input.KeyRightAlt,
}

func init() {
	for i := range int32(26) {
		raylibKeys[rl.KeyA+i] = input.KeyA + input.Key(i)
	}
	for i := range int32(10) {
		raylibKeys[rl.KeyZero+i] = input.Key0 + input.Key(i)
	}
	for i := range int32(12) {
		raylibKeys[rl.KeyF1+i] = input.KeyF1 + input.Key(i)
	}
}
