package input

// KeyboardState is a snapshot of which keys are held during one frame.
// It is a value type; copying it yields an independent snapshot.
type KeyboardState struct {
	down [KeyCount]bool
}

// NewKeyboardState builds a snapshot with the given keys held.
func NewKeyboardState(held ...Key) KeyboardState {
	var s KeyboardState
	for _, k := range held {
		if k.Valid() {
			s.down[k] = true
		}
	}
	return s
}

// IsKeyDown returns true if the key was held when the snapshot was taken.
func (s KeyboardState) IsKeyDown(k Key) bool {
	if !k.Valid() {
		return false
	}
	return s.down[k]
}

// WithKey returns a copy of the snapshot with k set to down.
// Device sources use it to build a snapshot key by key.
func (s KeyboardState) WithKey(k Key, down bool) KeyboardState {
	if k.Valid() {
		s.down[k] = down
	}
	return s
}

// PressedKeys returns every held key in ascending order.
func (s KeyboardState) PressedKeys() []Key {
	var keys []Key
	for k := KeyNone + 1; k < KeyCount; k++ {
		if s.down[k] {
			keys = append(keys, k)
		}
	}
	return keys
}

// Empty returns true if no key is held.
func (s KeyboardState) Empty() bool {
	for k := KeyNone + 1; k < KeyCount; k++ {
		if s.down[k] {
			return false
		}
	}
	return true
}

// GamepadState is a snapshot of one controller during one frame.
type GamepadState struct {
	Connected bool
	down      [ButtonCount]bool
}

// NewGamepadState builds a connected snapshot with the given buttons held.
func NewGamepadState(held ...Button) GamepadState {
	s := GamepadState{Connected: true}
	for _, b := range held {
		if b.Valid() {
			s.down[b] = true
		}
	}
	return s
}

// IsButtonDown returns true if the button was held when the snapshot was taken.
// A disconnected pad reports every button as released.
func (s GamepadState) IsButtonDown(b Button) bool {
	if !s.Connected || !b.Valid() {
		return false
	}
	return s.down[b]
}

// WithButton returns a copy of the snapshot with b set to down.
func (s GamepadState) WithButton(b Button, down bool) GamepadState {
	if b.Valid() {
		s.down[b] = down
	}
	return s
}

// KeyboardSource samples the keyboard. Backends implement it on top of the
// window system; tests use a fake.
type KeyboardSource interface {
	KeyboardState() KeyboardState
}

// GamepadSource samples game controllers by player slot.
type GamepadSource interface {
	// MaxGamepads returns the number of player slots the platform supports.
	MaxGamepads() int

	// GamepadState returns the current snapshot for a player slot.
	// Slots without a controller return a state with Connected == false.
	GamepadState(player int) GamepadState
}

// NoGamepads is a GamepadSource for hosts without controller support.
// It reports a single, permanently disconnected slot.
type NoGamepads struct{}

// MaxGamepads implements GamepadSource.
func (NoGamepads) MaxGamepads() int { return 1 }

// GamepadState implements GamepadSource.
func (NoGamepads) GamepadState(int) GamepadState { return GamepadState{} }

// WithSticks returns a copy of the snapshot with the thumbstick direction
// buttons set from analog axes in [-1, 1], positive Y pointing down.
func (s GamepadState) WithSticks(leftX, leftY, rightX, rightY float64) GamepadState {
	s = s.withAxis(leftX, ButtonLeftThumbstickLeft, ButtonLeftThumbstickRight)
	s = s.withAxis(leftY, ButtonLeftThumbstickUp, ButtonLeftThumbstickDown)
	s = s.withAxis(rightX, ButtonRightThumbstickLeft, ButtonRightThumbstickRight)
	return s.withAxis(rightY, ButtonRightThumbstickUp, ButtonRightThumbstickDown)
}

func (s GamepadState) withAxis(v float64, neg, pos Button) GamepadState {
	s.down[neg] = v <= -ThumbstickThreshold
	s.down[pos] = v >= ThumbstickThreshold
	return s
}
