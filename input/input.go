// Package input samples keyboard and game controller state once per frame and
// resolves named commands against it.
//
// Each frame the host calls Update exactly once, before any query:
//
//	in, err := input.New(keyboardSource, gamepadSource, input.WithPlayerCount(2))
//	if err != nil {
//	    return err
//	}
//	in.Map().Set("JUMP", []input.Key{input.KeySpace}, []input.Button{input.ButtonA})
//
//	for running {
//	    in.Update()
//	    if ok, _ := in.IsCommandPress(0, "JUMP"); ok {
//	        player.Jump()
//	    }
//	}
//
// Queries for commands with no bindings fail with ErrUnknownCommand instead of
// reporting false.
package input

import "fmt"

// Input is the per-application access point for devices and commands.
// Construct one with New and pass it to whatever needs input; there is no
// package-level instance.
type Input struct {
	keyboard      *Keyboard
	gamepads      *Gamepads
	gamepadSource GamepadSource
	commands      *CommandMap

	defaultPlayer   int
	keyboardEnabled bool
	gamepadsEnabled bool
	closed          bool
}

// Option configures an Input.
type Option func(*config)

type config struct {
	players         int
	defaultPlayer   int
	keyboardEnabled bool
	gamepadsEnabled bool
	commands        *CommandMap
}

// WithPlayerCount sets the number of controller slots to sample. Default 1.
func WithPlayerCount(n int) Option {
	return func(c *config) { c.players = n }
}

// WithDefaultPlayer sets the player used by queries that don't name one.
func WithDefaultPlayer(p int) Option {
	return func(c *config) { c.defaultPlayer = p }
}

// WithKeyboard enables or disables keyboard queries. Default enabled.
func WithKeyboard(enabled bool) Option {
	return func(c *config) { c.keyboardEnabled = enabled }
}

// WithGamepads enables or disables controller queries. Default enabled.
func WithGamepads(enabled bool) Option {
	return func(c *config) { c.gamepadsEnabled = enabled }
}

// WithCommandMap uses m instead of a fresh, empty command map.
func WithCommandMap(m *CommandMap) Option {
	return func(c *config) { c.commands = m }
}

// New creates an Input over the given device sources. gp may be nil for hosts
// without controller support. It fails with ErrTooManyPlayers if the player
// count exceeds the gamepad source's slots.
func New(kb KeyboardSource, gp GamepadSource, opts ...Option) (*Input, error) {
	cfg := config{
		players:         1,
		keyboardEnabled: true,
		gamepadsEnabled: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if gp == nil {
		gp = NoGamepads{}
	}

	pads, err := NewGamepads(gp, cfg.players)
	if err != nil {
		return nil, err
	}
	if cfg.defaultPlayer < 0 || cfg.defaultPlayer >= cfg.players {
		return nil, fmt.Errorf("default player %d: %w", cfg.defaultPlayer, ErrInvalidPlayer)
	}
	if cfg.commands == nil {
		cfg.commands = NewCommandMap()
	}

	logger.Debug("input created", "players", cfg.players)
	return &Input{
		keyboard:        NewKeyboard(kb),
		gamepads:        pads,
		gamepadSource:   gp,
		commands:        cfg.commands,
		defaultPlayer:   cfg.defaultPlayer,
		keyboardEnabled: cfg.keyboardEnabled,
		gamepadsEnabled: cfg.gamepadsEnabled,
	}, nil
}

// Update advances every device by one frame. Call it exactly once per frame,
// before any command query.
func (in *Input) Update() {
	if in.closed {
		return
	}
	in.keyboard.Update()
	in.gamepads.Update()
}

// Close releases the samplers and bindings. Queries made afterwards fail with
// ErrClosed.
func (in *Input) Close() {
	in.closed = true
	in.commands = NewCommandMap()
	in.keyboard = NewKeyboard(nil)
	in.gamepads = &Gamepads{src: NoGamepads{}}
}

// Keyboard returns the keyboard sampler.
func (in *Input) Keyboard() *Keyboard { return in.keyboard }

// Gamepads returns the controller sampler.
func (in *Input) Gamepads() *Gamepads { return in.gamepads }

// Map returns the command map.
func (in *Input) Map() *CommandMap { return in.commands }

// Players returns the number of configured controller slots.
func (in *Input) Players() int { return in.gamepads.Players() }

// SetPlayerCount resamples the controllers with a new slot count. Edge state
// for every slot restarts from the current frame.
func (in *Input) SetPlayerCount(n int) error {
	pads, err := NewGamepads(in.gamepadSource, n)
	if err != nil {
		return err
	}
	in.gamepads = pads
	if in.defaultPlayer >= n {
		in.defaultPlayer = 0
	}
	logger.Debug("player count changed", "players", n)
	return nil
}

// DefaultPlayer returns the player index used by UI controls.
func (in *Input) DefaultPlayer() int { return in.defaultPlayer }

// SetDefaultPlayer changes the player index used by UI controls.
func (in *Input) SetDefaultPlayer(p int) error {
	if p < 0 || p >= in.Players() {
		return fmt.Errorf("default player %d: %w", p, ErrInvalidPlayer)
	}
	in.defaultPlayer = p
	return nil
}

// KeyboardEnabled reports whether keyboard bindings are consulted.
func (in *Input) KeyboardEnabled() bool { return in.keyboardEnabled }

// SetKeyboardEnabled toggles keyboard bindings.
func (in *Input) SetKeyboardEnabled(v bool) { in.keyboardEnabled = v }

// GamepadsEnabled reports whether controller bindings are consulted.
func (in *Input) GamepadsEnabled() bool { return in.gamepadsEnabled }

// SetGamepadsEnabled toggles controller bindings.
func (in *Input) SetGamepadsEnabled(v bool) { in.gamepadsEnabled = v }

// Command resolves a command for a player and edge.
func (in *Input) Command(player int, command string, e Edge) (bool, error) {
	if in.closed {
		return false, ErrClosed
	}
	if player < 0 || player >= in.Players() {
		return false, fmt.Errorf("player %d: %w", player, ErrInvalidPlayer)
	}
	var kb *Keyboard
	if in.keyboardEnabled {
		kb = in.keyboard
	}
	var gp *Gamepads
	if in.gamepadsEnabled {
		gp = in.gamepads
	}
	return in.commands.Query(command, player, e, kb, gp)
}

// IsCommandDown returns true while any binding of the command is held.
func (in *Input) IsCommandDown(player int, command string) (bool, error) {
	return in.Command(player, command, EdgeDown)
}

// IsCommandHold returns true if a binding was held this frame and the last.
func (in *Input) IsCommandHold(player int, command string) (bool, error) {
	return in.Command(player, command, EdgeHold)
}

// IsCommandPress returns true on the frame a binding went down.
func (in *Input) IsCommandPress(player int, command string) (bool, error) {
	return in.Command(player, command, EdgePress)
}

// IsCommandRelease returns true on the frame a binding came up.
func (in *Input) IsCommandRelease(player int, command string) (bool, error) {
	return in.Command(player, command, EdgeRelease)
}

// DownCommand is IsCommandDown for the default player.
func (in *Input) DownCommand(command string) (bool, error) {
	return in.Command(in.defaultPlayer, command, EdgeDown)
}

// HoldCommand is IsCommandHold for the default player.
func (in *Input) HoldCommand(command string) (bool, error) {
	return in.Command(in.defaultPlayer, command, EdgeHold)
}

// PressCommand is IsCommandPress for the default player.
func (in *Input) PressCommand(command string) (bool, error) {
	return in.Command(in.defaultPlayer, command, EdgePress)
}

// ReleaseCommand is IsCommandRelease for the default player.
func (in *Input) ReleaseCommand(command string) (bool, error) {
	return in.Command(in.defaultPlayer, command, EdgeRelease)
}

// AnyPressed tests raw key and button lists for the default player, without a
// command lookup. Controls use it for style-declared submit and cancel
// bindings.
func (in *Input) AnyPressed(keys []Key, buttons []Button) bool {
	if in.closed {
		return false
	}
	if in.keyboardEnabled && in.keyboard.anyKey(keys, EdgePress) {
		return true
	}
	return in.gamepadsEnabled && in.gamepads.anyButton(in.defaultPlayer, buttons, EdgePress)
}
