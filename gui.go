package odge

import (
	"fmt"

	"github.com/go-theft-auto/odge/input"
)

// UI is the per-application root: an input facade, a modal control stack
// and a popup queue, stepped together once per frame.
type UI struct {
	in         *input.Input
	Controls   *ControlStack
	PopUps     *PopUpQueue
	navigation bool
}

// UIOption configures a UI instance.
type UIOption func(*UI)

// WithDrawAll makes the control stack draw every control instead of only
// the top one.
func WithDrawAll(v bool) UIOption {
	return func(u *UI) { u.Controls.SetDrawAll(v) }
}

// WithPopUpUpdateAll makes the popup queue age every popup each frame
// instead of only the head.
func WithPopUpUpdateAll(v bool) UIOption {
	return func(u *UI) { u.PopUps.SetUpdateAll(v) }
}

// WithNavigation controls whether New registers the default navigation
// commands in the input's command map. Default true.
func WithNavigation(v bool) UIOption {
	return func(u *UI) { u.navigation = v }
}

// New creates a UI driven by in.
func New(in *input.Input, opts ...UIOption) (*UI, error) {
	if in == nil {
		return nil, ErrNoInput
	}
	u := &UI{
		in:         in,
		Controls:   NewControlStack(),
		PopUps:     NewPopUpQueue(),
		navigation: true,
	}
	for _, opt := range opts {
		opt(u)
	}
	if u.navigation {
		RegisterNavigation(in.Map())
	}
	return u, nil
}

// RegisterNavigation binds the four UI navigation commands to the arrow
// keys, WASD, the d-pad and the left stick, replacing earlier bindings.
// Menus and dialogs query these commands; a control stack whose controls
// need them fails its Update if they are missing.
func RegisterNavigation(m *input.CommandMap) {
	input.MapDefaultNavigation(m)
	logger.Debug("navigation registered", "commands", m.Commands())
}

// Input returns the input facade.
func (u *UI) Input() *input.Input { return u.in }

// Update runs one frame: input is sampled, the top control handles it and
// the popups age. It returns the top control's error.
func (u *UI) Update() error {
	u.in.Update()
	if err := u.Controls.Update(u.in); err != nil {
		u.PopUps.Update()
		return fmt.Errorf("update controls: %w", err)
	}
	u.PopUps.Update()
	return nil
}

// Draw paints the controls, then the popups on top.
func (u *UI) Draw(r Renderer) {
	u.Controls.Draw(r)
	u.PopUps.Draw(r)
}

// Close closes every control and popup. The input facade belongs to the
// caller and stays open.
func (u *UI) Close() {
	u.Controls.CloseAll()
	u.PopUps.CloseAll()
}
