package input

import "strconv"

// Key represents a keyboard key.
type Key int

const (
	KeyNone Key = iota
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeySpace
	KeyEnter
	KeyEscape
	KeyTab
	KeyBackspace
	KeyInsert
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyLeftShift
	KeyRightShift
	KeyLeftControl
	KeyRightControl
	KeyLeftAlt
	KeyRightAlt
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyCount
)

// Valid reports whether k names a real key.
func (k Key) Valid() bool {
	return k > KeyNone && k < KeyCount
}

// String returns a human-readable name for a key.
func (k Key) String() string {
	switch {
	case k >= KeyA && k <= KeyZ:
		return string(rune('A' + int(k-KeyA)))
	case k >= Key0 && k <= Key9:
		return string(rune('0' + int(k-Key0)))
	case k >= KeyF1 && k <= KeyF12:
		return "F" + strconv.Itoa(int(k-KeyF1)+1)
	}
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "?"
}

var keyNames = map[Key]string{
	KeyNone:         "--",
	KeySpace:        "Space",
	KeyEnter:        "Enter",
	KeyEscape:       "Esc",
	KeyTab:          "Tab",
	KeyBackspace:    "Backspace",
	KeyInsert:       "Ins",
	KeyDelete:       "Del",
	KeyHome:         "Home",
	KeyEnd:          "End",
	KeyPageUp:       "PgUp",
	KeyPageDown:     "PgDn",
	KeyUp:           "Up",
	KeyDown:         "Down",
	KeyLeft:         "Left",
	KeyRight:        "Right",
	KeyLeftShift:    "LShift",
	KeyRightShift:   "RShift",
	KeyLeftControl:  "LCtrl",
	KeyRightControl: "RCtrl",
	KeyLeftAlt:      "LAlt",
	KeyRightAlt:     "RAlt",
}

// Button represents a game controller button. Thumbstick directions are
// reported as buttons so they can be bound to commands like any other input.
type Button int

const (
	ButtonNone Button = iota
	ButtonA
	ButtonB
	ButtonX
	ButtonY
	ButtonLeftShoulder
	ButtonRightShoulder
	ButtonLeftTrigger
	ButtonRightTrigger
	ButtonBack
	ButtonStart
	ButtonGuide
	ButtonLeftStick
	ButtonRightStick
	ButtonDPadUp
	ButtonDPadDown
	ButtonDPadLeft
	ButtonDPadRight
	ButtonLeftThumbstickUp
	ButtonLeftThumbstickDown
	ButtonLeftThumbstickLeft
	ButtonLeftThumbstickRight
	ButtonRightThumbstickUp
	ButtonRightThumbstickDown
	ButtonRightThumbstickLeft
	ButtonRightThumbstickRight
	ButtonCount
)

// Valid reports whether b names a real button.
func (b Button) Valid() bool {
	return b > ButtonNone && b < ButtonCount
}

// String returns a human-readable name for a button.
func (b Button) String() string {
	if name, ok := buttonNames[b]; ok {
		return name
	}
	return "?"
}

var buttonNames = map[Button]string{
	ButtonNone:                 "--",
	ButtonA:                    "A",
	ButtonB:                    "B",
	ButtonX:                    "X",
	ButtonY:                    "Y",
	ButtonLeftShoulder:         "LB",
	ButtonRightShoulder:        "RB",
	ButtonLeftTrigger:          "LT",
	ButtonRightTrigger:         "RT",
	ButtonBack:                 "Back",
	ButtonStart:                "Start",
	ButtonGuide:                "Guide",
	ButtonLeftStick:            "LS",
	ButtonRightStick:           "RS",
	ButtonDPadUp:               "DPad Up",
	ButtonDPadDown:             "DPad Down",
	ButtonDPadLeft:             "DPad Left",
	ButtonDPadRight:            "DPad Right",
	ButtonLeftThumbstickUp:     "LS Up",
	ButtonLeftThumbstickDown:   "LS Down",
	ButtonLeftThumbstickLeft:   "LS Left",
	ButtonLeftThumbstickRight:  "LS Right",
	ButtonRightThumbstickUp:    "RS Up",
	ButtonRightThumbstickDown:  "RS Down",
	ButtonRightThumbstickLeft:  "RS Left",
	ButtonRightThumbstickRight: "RS Right",
}

// ThumbstickThreshold is the axis magnitude at which a stick direction counts
// as pressed. Device sources use it when folding analog axes into buttons.
const ThumbstickThreshold = 0.5
