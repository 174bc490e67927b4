package input

// Keyboard keeps the current and previous keyboard snapshots and answers edge
// queries against them.
type Keyboard struct {
	src  KeyboardSource
	cur  KeyboardState
	prev KeyboardState
}

// NewKeyboard creates a keyboard sampler. Both snapshots start from the
// source's current state so keys held at startup do not report a press.
func NewKeyboard(src KeyboardSource) *Keyboard {
	kb := &Keyboard{src: src}
	if src != nil {
		kb.cur = src.KeyboardState()
		kb.prev = kb.cur
	}
	return kb
}

// Update moves the current snapshot to previous and resamples the source.
// Call it once per frame before any query.
func (kb *Keyboard) Update() {
	kb.prev = kb.cur
	if kb.src != nil {
		kb.cur = kb.src.KeyboardState()
	} else {
		kb.cur = KeyboardState{}
	}
}

// Sync advances the sampler using a state captured elsewhere, for hosts that
// already run their own input manager.
func (kb *Keyboard) Sync(state KeyboardState) {
	kb.prev = kb.cur
	kb.cur = state
}

// State returns the current snapshot.
func (kb *Keyboard) State() KeyboardState {
	return kb.cur
}

// Is tests a single key for the given edge.
func (kb *Keyboard) Is(k Key, e Edge) bool {
	return Detect(kb.cur.IsKeyDown(k), kb.prev.IsKeyDown(k), e)
}

// IsKeyDown returns true if the key is held this frame.
func (kb *Keyboard) IsKeyDown(k Key) bool { return kb.Is(k, EdgeDown) }

// IsKeyHold returns true if the key was held this frame and the last.
func (kb *Keyboard) IsKeyHold(k Key) bool { return kb.Is(k, EdgeHold) }

// IsKeyPress returns true on the frame the key went down.
func (kb *Keyboard) IsKeyPress(k Key) bool { return kb.Is(k, EdgePress) }

// IsKeyRelease returns true on the frame the key came up.
func (kb *Keyboard) IsKeyRelease(k Key) bool { return kb.Is(k, EdgeRelease) }

// AnyKeyDown returns true if any key is held.
func (kb *Keyboard) AnyKeyDown() bool {
	return !kb.cur.Empty()
}

// AnyKeyPress returns true if some key is held now and none was held last frame.
func (kb *Keyboard) AnyKeyPress() bool {
	return !kb.cur.Empty() && kb.prev.Empty()
}

// anyKey tests a set of keys, returning true on the first match.
func (kb *Keyboard) anyKey(keys []Key, e Edge) bool {
	for _, k := range keys {
		if kb.Is(k, e) {
			return true
		}
	}
	return false
}
