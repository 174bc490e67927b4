package input

// Navigation command names. The UI package binds its menus to these.
const (
	CommandUp    = "ui.up"
	CommandDown  = "ui.down"
	CommandLeft  = "ui.left"
	CommandRight = "ui.right"
)

// MapArrowKeys adds the arrow keys to the navigation commands.
func MapArrowKeys(m *CommandMap) {
	m.Add(CommandUp, []Key{KeyUp}, nil)
	m.Add(CommandLeft, []Key{KeyLeft}, nil)
	m.Add(CommandRight, []Key{KeyRight}, nil)
	m.Add(CommandDown, []Key{KeyDown}, nil)
}

// MapWASD adds W, A, S and D to the navigation commands.
func MapWASD(m *CommandMap) {
	m.Add(CommandUp, []Key{KeyW}, nil)
	m.Add(CommandLeft, []Key{KeyA}, nil)
	m.Add(CommandRight, []Key{KeyD}, nil)
	m.Add(CommandDown, []Key{KeyS}, nil)
}

// MapDPad adds the directional pad to the navigation commands.
func MapDPad(m *CommandMap) {
	m.Add(CommandUp, nil, []Button{ButtonDPadUp})
	m.Add(CommandLeft, nil, []Button{ButtonDPadLeft})
	m.Add(CommandRight, nil, []Button{ButtonDPadRight})
	m.Add(CommandDown, nil, []Button{ButtonDPadDown})
}

// MapLeftThumbstick adds left stick directions to the navigation commands.
func MapLeftThumbstick(m *CommandMap) {
	m.Add(CommandUp, nil, []Button{ButtonLeftThumbstickUp})
	m.Add(CommandLeft, nil, []Button{ButtonLeftThumbstickLeft})
	m.Add(CommandRight, nil, []Button{ButtonLeftThumbstickRight})
	m.Add(CommandDown, nil, []Button{ButtonLeftThumbstickDown})
}

// MapRightThumbstick adds right stick directions to the navigation commands.
func MapRightThumbstick(m *CommandMap) {
	m.Add(CommandUp, nil, []Button{ButtonRightThumbstickUp})
	m.Add(CommandLeft, nil, []Button{ButtonRightThumbstickLeft})
	m.Add(CommandRight, nil, []Button{ButtonRightThumbstickRight})
	m.Add(CommandDown, nil, []Button{ButtonRightThumbstickDown})
}

// MapDefaultNavigation replaces the navigation commands with arrows, WASD,
// the d-pad and the left stick.
func MapDefaultNavigation(m *CommandMap) {
	m.Set(CommandUp, []Key{KeyUp, KeyW}, []Button{ButtonDPadUp, ButtonLeftThumbstickUp})
	m.Set(CommandLeft, []Key{KeyLeft, KeyA}, []Button{ButtonDPadLeft, ButtonLeftThumbstickLeft})
	m.Set(CommandRight, []Key{KeyRight, KeyD}, []Button{ButtonDPadRight, ButtonLeftThumbstickRight})
	m.Set(CommandDown, []Key{KeyDown, KeyS}, []Button{ButtonDPadDown, ButtonLeftThumbstickDown})
}
