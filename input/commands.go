package input

import (
	"fmt"
	"slices"
)

// Binding is the set of physical inputs that trigger a command.
// Either list may be empty, but not both.
type Binding struct {
	Keys    []Key
	Buttons []Button
}

// Empty returns true if the binding has no keys and no buttons.
func (b Binding) Empty() bool {
	return len(b.Keys) == 0 && len(b.Buttons) == 0
}

func (b Binding) clone() Binding {
	return Binding{Keys: slices.Clone(b.Keys), Buttons: slices.Clone(b.Buttons)}
}

// CommandMap associates logical command names with keyboard keys and
// controller buttons.
//
// Usage:
//
//	m := input.NewCommandMap()
//	m.Set("JUMP", []input.Key{input.KeySpace}, []input.Button{input.ButtonA})
//	pressed, err := m.Query("JUMP", 0, input.EdgePress, kb, gp)
type CommandMap struct {
	bindings map[string]Binding
}

// NewCommandMap creates an empty command map.
func NewCommandMap() *CommandMap {
	return &CommandMap{bindings: make(map[string]Binding)}
}

// Set replaces both binding lists of a command. Setting both lists empty is
// the same as Unset.
func (m *CommandMap) Set(command string, keys []Key, buttons []Button) {
	b := Binding{Keys: compactKeys(keys), Buttons: compactButtons(buttons)}
	if b.Empty() {
		m.Unset(command)
		return
	}
	m.bindings[command] = b
	logger.Debug("command set", "command", command, "keys", len(b.Keys), "buttons", len(b.Buttons))
}

// SetKeys replaces the keyboard bindings of a command, keeping its buttons.
func (m *CommandMap) SetKeys(command string, keys ...Key) {
	m.Set(command, keys, m.bindings[command].Buttons)
}

// SetButtons replaces the controller bindings of a command, keeping its keys.
func (m *CommandMap) SetButtons(command string, buttons ...Button) {
	m.Set(command, m.bindings[command].Keys, buttons)
}

// Add appends bindings to a command, creating it if needed.
func (m *CommandMap) Add(command string, keys []Key, buttons []Button) {
	cur := m.bindings[command]
	m.Set(command,
		append(slices.Clone(cur.Keys), keys...),
		append(slices.Clone(cur.Buttons), buttons...))
}

// Unset removes a command. Later queries fail with ErrUnknownCommand.
func (m *CommandMap) Unset(command string) {
	if _, ok := m.bindings[command]; ok {
		delete(m.bindings, command)
		logger.Debug("command unset", "command", command)
	}
}

// Has returns true if the command has at least one binding.
func (m *CommandMap) Has(command string) bool {
	_, ok := m.bindings[command]
	return ok
}

// Lookup returns a copy of a command's bindings.
func (m *CommandMap) Lookup(command string) (Binding, bool) {
	b, ok := m.bindings[command]
	if !ok {
		return Binding{}, false
	}
	return b.clone(), true
}

// Commands returns every registered command name, sorted.
func (m *CommandMap) Commands() []string {
	names := make([]string, 0, len(m.bindings))
	for name := range m.bindings {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Clone returns an independent copy of the map.
func (m *CommandMap) Clone() *CommandMap {
	c := NewCommandMap()
	for name, b := range m.bindings {
		c.bindings[name] = b.clone()
	}
	return c
}

// Restore replaces every binding with those of other.
func (m *CommandMap) Restore(other *CommandMap) {
	m.bindings = make(map[string]Binding, len(other.bindings))
	for name, b := range other.bindings {
		m.bindings[name] = b.clone()
	}
}

// Query resolves a command for one player. Keys are tested first, then the
// player's controller buttons; the first match wins. A nil sampler is
// skipped, which is how disabled devices are expressed.
func (m *CommandMap) Query(command string, player int, e Edge, kb *Keyboard, gp *Gamepads) (bool, error) {
	b, ok := m.bindings[command]
	if !ok {
		return false, fmt.Errorf("%q: %w", command, ErrUnknownCommand)
	}
	if kb != nil && kb.anyKey(b.Keys, e) {
		return true, nil
	}
	if gp != nil && gp.anyButton(player, b.Buttons, e) {
		return true, nil
	}
	return false, nil
}

// compactKeys drops invalid keys and duplicates, keeping first-seen order.
func compactKeys(keys []Key) []Key {
	out := make([]Key, 0, len(keys))
	for _, k := range keys {
		if k.Valid() && !slices.Contains(out, k) {
			out = append(out, k)
		}
	}
	return out
}

func compactButtons(buttons []Button) []Button {
	out := make([]Button, 0, len(buttons))
	for _, b := range buttons {
		if b.Valid() && !slices.Contains(out, b) {
			out = append(out, b)
		}
	}
	return out
}
