package odge

import "github.com/go-theft-auto/odge/input"

// ControlWidget is a widget that can live on a ControlStack.
type ControlWidget interface {
	Widget
	// Update handles one frame of input. It runs only while the control is
	// on top of its stack.
	Update(in *input.Input) error
	AsControl() *Control
}

// Control is the modal, input-handling base. Embed it in a widget struct and
// call Init from the constructor.
//
// A control is neither opened nor closed until a ControlStack opens it.
// Once closed it stays closed unless opened again.
type Control struct {
	Component

	opened bool
	closed bool
	owner  *ControlStack

	Submitted   Event
	Canceled    Event
	FocusGained Event
	FocusLost   Event
}

// AsControl returns the control itself.
func (c *Control) AsControl() *Control { return c }

// IsOpened reports whether a stack currently holds the control.
func (c *Control) IsOpened() bool { return c.opened }

// IsClosed reports whether the control was removed from its stack.
func (c *Control) IsClosed() bool { return c.closed }

// IsOwned reports whether a stack holds the control.
func (c *Control) IsOwned() bool { return c.owner != nil }

// Close removes the control from the stack that holds it.
func (c *Control) Close() error {
	if c.owner == nil {
		return ErrNotManaged
	}
	return c.owner.closeControl(c)
}

// SubmitPressed reports whether any of the style's submit bindings was
// pressed this frame for the input's default player.
func (c *Control) SubmitPressed(in *input.Input) bool {
	s := c.Style()
	return in != nil && s != nil && in.AnyPressed(s.SubmitKeys, s.SubmitButtons)
}

// CancelPressed reports whether any of the style's cancel bindings was
// pressed this frame for the input's default player.
func (c *Control) CancelPressed(in *input.Input) bool {
	s := c.Style()
	return in != nil && s != nil && in.AnyPressed(s.CancelKeys, s.CancelButtons)
}

// Submit fires Submitted.
func (c *Control) Submit() {
	c.Submitted.Emit()
}

// Cancel fires Canceled and closes the control if the style asks for it.
func (c *Control) Cancel() error {
	c.Canceled.Emit()
	if s := c.Style(); s != nil && s.CloseOnCancel && c.owner != nil {
		return c.Close()
	}
	return nil
}

// Update is the default input handling: submit and cancel bindings.
func (c *Control) Update(in *input.Input) error {
	if c.SubmitPressed(in) {
		c.Submit()
	}
	if c.CancelPressed(in) {
		return c.Cancel()
	}
	return nil
}

// Draw draws the control's panel.
func (c *Control) Draw(r Renderer) {
	drawPanel(r, c.Style(), c.Rect(), ContextNormal)
}

// navigation is one frame of directional presses.
type navigation struct {
	Up, Down, Left, Right bool
}

// readNavigation queries the four navigation commands for the default
// player. An unregistered command is an error, not a silent false.
func readNavigation(in *input.Input) (navigation, error) {
	var nav navigation
	if in == nil {
		return nav, nil
	}
	for _, q := range []struct {
		command string
		dst     *bool
	}{
		{input.CommandUp, &nav.Up},
		{input.CommandDown, &nav.Down},
		{input.CommandLeft, &nav.Left},
		{input.CommandRight, &nav.Right},
	} {
		ok, err := in.PressCommand(q.command)
		if err != nil {
			return navigation{}, err
		}
		*q.dst = ok
	}
	return nav, nil
}
