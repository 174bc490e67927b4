// Package ebiten provides an Ebitengine backend for odge.
package ebiten

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/go-theft-auto/odge/input"
)

// MaxGamepads is the number of player slots Devices reports.
const MaxGamepads = 4

// Devices samples Ebitengine's keyboard and gamepads. It implements
// input.KeyboardSource and input.GamepadSource. Gamepads are assigned to
// player slots in the order Ebitengine reports their IDs.
type Devices struct {
	ids []ebiten.GamepadID
}

var (
	_ input.KeyboardSource = (*Devices)(nil)
	_ input.GamepadSource  = (*Devices)(nil)
)

// NewDevices creates the device sources. Call its methods from the game's
// Update only.
func NewDevices() *Devices {
	return &Devices{}
}

// KeyboardState implements input.KeyboardSource.
func (d *Devices) KeyboardState() input.KeyboardState {
	var s input.KeyboardState
	for ek, k := range ebitenKeys {
		if ebiten.IsKeyPressed(ek) {
			s = s.WithKey(k, true)
		}
	}
	for i := range 26 {
		if ebiten.IsKeyPressed(ebiten.KeyA + ebiten.Key(i)) {
			s = s.WithKey(input.KeyA+input.Key(i), true)
		}
	}
	for i := range 10 {
		if ebiten.IsKeyPressed(ebiten.KeyDigit0 + ebiten.Key(i)) {
			s = s.WithKey(input.Key0+input.Key(i), true)
		}
	}
	return s
}

// MaxGamepads implements input.GamepadSource.
func (d *Devices) MaxGamepads() int { return MaxGamepads }

// GamepadState implements input.GamepadSource. Only gamepads with the
// standard layout are reported; others appear disconnected.
func (d *Devices) GamepadState(player int) input.GamepadState {
	// Input samples slots in ascending order once per frame, so the ID
	// list is refreshed at slot 0.
	if player == 0 || d.ids == nil {
		d.ids = ebiten.AppendGamepadIDs(d.ids[:0])
		slices.Sort(d.ids)
	}
	if player < 0 || player >= len(d.ids) {
		return input.GamepadState{}
	}
	id := d.ids[player]
	if !ebiten.IsStandardGamepadLayoutAvailable(id) {
		return input.GamepadState{}
	}

	s := input.GamepadState{Connected: true}
	for eb, b := range ebitenButtons {
		s = s.WithButton(b, ebiten.IsStandardGamepadButtonPressed(id, eb))
	}
	return s.WithSticks(
		ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal),
		ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical),
		ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickHorizontal),
		ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickVertical),
	)
}

var ebitenButtons = map[ebiten.StandardGamepadButton]input.Button{
	ebiten.StandardGamepadButtonRightBottom:      input.ButtonA,
	ebiten.StandardGamepadButtonRightRight:       input.ButtonB,
	ebiten.StandardGamepadButtonRightLeft:        input.ButtonX,
	ebiten.StandardGamepadButtonRightTop:         input.ButtonY,
	ebiten.StandardGamepadButtonFrontTopLeft:     input.ButtonLeftShoulder,
	ebiten.StandardGamepadButtonFrontTopRight:    input.ButtonRightShoulder,
	ebiten.StandardGamepadButtonFrontBottomLeft:  input.ButtonLeftTrigger,
	ebiten.StandardGamepadButtonFrontBottomRight: input.ButtonRightTrigger,
	ebiten.StandardGamepadButtonCenterLeft:       input.ButtonBack,
	ebiten.StandardGamepadButtonCenterRight:      input.ButtonStart,
	ebiten.StandardGamepadButtonCenterCenter:     input.ButtonGuide,
	ebiten.StandardGamepadButtonLeftStick:        input.ButtonLeftStick,
	ebiten.StandardGamepadButtonRightStick:       input.ButtonRightStick,
	ebiten.StandardGamepadButtonLeftTop:          input.ButtonDPadUp,
	ebiten.StandardGamepadButtonLeftBottom:       input.ButtonDPadDown,
	ebiten.StandardGamepadButtonLeftLeft:         input.ButtonDPadLeft,
	ebiten.StandardGamepadButtonLeftRight:        input.ButtonDPadRight,
}

var ebitenKeys = map[ebiten.Key]input.Key{
	ebiten.KeySpace:        input.KeySpace,
	ebiten.KeyEnter:        input.KeyEnter,
	ebiten.KeyNumpadEnter:  input.KeyEnter,
	ebiten.KeyEscape:       input.KeyEscape,
	ebiten.KeyTab:          input.KeyTab,
	ebiten.KeyBackspace:    input.KeyBackspace,
	ebiten.KeyInsert:       input.KeyInsert,
	ebiten.KeyDelete:       input.KeyDelete,
	ebiten.KeyHome:         input.KeyHome,
	ebiten.KeyEnd:          input.KeyEnd,
	ebiten.KeyPageUp:       input.KeyPageUp,
	ebiten.KeyPageDown:     input.KeyPageDown,
	ebiten.KeyArrowUp:      input.KeyUp,
	ebiten.KeyArrowDown:    input.KeyDown,
	ebiten.KeyArrowLeft:    input.KeyLeft,
	ebiten.KeyArrowRight:   input.KeyRight,
	ebiten.KeyShiftLeft:    input.KeyLeftShift,
	ebiten.KeyShiftRight:   input.KeyRightShift,
	ebiten.KeyControlLeft:  input.KeyLeftControl,
	ebiten.KeyControlRight: input.KeyRightControl,
	ebiten.KeyAltLeft:      input.KeyLeftAlt,
	ebiten.KeyAltRight:     input.KeyRightAlt,
	ebiten.KeyF1:           input.KeyF1,
	ebiten.KeyF2:           input.KeyF2,
	ebiten.KeyF3:           input.KeyF3,
	ebiten.KeyF4:           input.KeyF4,
	ebiten.KeyF5:           input.KeyF5,
	ebiten.KeyF6:           input.KeyF6,
	ebiten.KeyF7:           input.KeyF7,
	ebiten.KeyF8:           input.KeyF8,
	ebiten.KeyF9:           input.KeyF9,
	ebiten.KeyF10:          input.KeyF10,
	ebiten.KeyF11:          input.KeyF11,
	ebiten.KeyF12:          input.KeyF12,
}
