package input

import "fmt"

// Gamepads keeps current and previous snapshots for every configured player
// slot.
type Gamepads struct {
	src  GamepadSource
	cur  []GamepadState
	prev []GamepadState
}

// NewGamepads creates a sampler for the first players slots of src.
// It fails with ErrTooManyPlayers if src cannot serve that many slots.
func NewGamepads(src GamepadSource, players int) (*Gamepads, error) {
	if src == nil {
		src = NoGamepads{}
	}
	if players < 1 {
		return nil, fmt.Errorf("player count %d: %w", players, ErrTooManyPlayers)
	}
	if limit := src.MaxGamepads(); players > limit {
		return nil, fmt.Errorf("player count %d exceeds %d device slots: %w", players, limit, ErrTooManyPlayers)
	}

	gp := &Gamepads{
		src:  src,
		cur:  make([]GamepadState, players),
		prev: make([]GamepadState, players),
	}
	for p := range gp.cur {
		gp.cur[p] = src.GamepadState(p)
		gp.prev[p] = gp.cur[p]
	}
	return gp, nil
}

// Players returns the number of configured player slots.
func (gp *Gamepads) Players() int {
	return len(gp.cur)
}

// Update advances every player slot: current becomes previous and the source
// is resampled. Call it once per frame before any query.
func (gp *Gamepads) Update() {
	for p := range gp.cur {
		gp.prev[p] = gp.cur[p]
		gp.cur[p] = gp.src.GamepadState(p)
	}
}

// Sync advances one player slot using a state captured elsewhere.
func (gp *Gamepads) Sync(player int, state GamepadState) {
	if !gp.valid(player) {
		return
	}
	gp.prev[player] = gp.cur[player]
	gp.cur[player] = state
}

// State returns the current snapshot of a player slot.
func (gp *Gamepads) State(player int) GamepadState {
	if !gp.valid(player) {
		return GamepadState{}
	}
	return gp.cur[player]
}

// Connected returns true if the player's controller was present this frame.
func (gp *Gamepads) Connected(player int) bool {
	return gp.State(player).Connected
}

// Is tests one button of one player for the given edge.
// Unconfigured player slots report false.
func (gp *Gamepads) Is(player int, b Button, e Edge) bool {
	if !gp.valid(player) {
		return false
	}
	return Detect(gp.cur[player].IsButtonDown(b), gp.prev[player].IsButtonDown(b), e)
}

// IsButtonDown returns true if the button is held this frame.
func (gp *Gamepads) IsButtonDown(player int, b Button) bool { return gp.Is(player, b, EdgeDown) }

// IsButtonHold returns true if the button was held this frame and the last.
func (gp *Gamepads) IsButtonHold(player int, b Button) bool { return gp.Is(player, b, EdgeHold) }

// IsButtonPress returns true on the frame the button went down.
func (gp *Gamepads) IsButtonPress(player int, b Button) bool { return gp.Is(player, b, EdgePress) }

// IsButtonRelease returns true on the frame the button came up.
func (gp *Gamepads) IsButtonRelease(player int, b Button) bool {
	return gp.Is(player, b, EdgeRelease)
}

func (gp *Gamepads) anyButton(player int, buttons []Button, e Edge) bool {
	for _, b := range buttons {
		if gp.Is(player, b, e) {
			return true
		}
	}
	return false
}

func (gp *Gamepads) valid(player int) bool {
	return player >= 0 && player < len(gp.cur)
}
