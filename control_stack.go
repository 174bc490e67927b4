package odge

import (
	"fmt"
	"slices"

	"github.com/go-theft-auto/odge/input"
)

// ControlStack is the modal container: a LIFO of controls where only the
// top receives input.
//
// Opening a control takes focus from the previous top; closing the top
// hands focus back to the control below it.
type ControlStack struct {
	items   []ControlWidget
	drawAll bool
}

// NewControlStack creates an empty stack.
func NewControlStack() *ControlStack {
	return &ControlStack{}
}

// SetDrawAll selects whether Draw paints every control (bottom to top, with
// the style mask over all but the top) or only the top one.
func (s *ControlStack) SetDrawAll(v bool) { s.drawAll = v }

// DrawAll reports the draw mode.
func (s *ControlStack) DrawAll() bool { return s.drawAll }

// Len returns the number of controls.
func (s *ControlStack) Len() int { return len(s.items) }

// Top returns the control that receives input.
func (s *ControlStack) Top() (ControlWidget, bool) {
	if len(s.items) == 0 {
		return nil, false
	}
	return s.items[len(s.items)-1], true
}

// Open pushes w. The previous top loses focus; w is marked opened and fires
// Opened. A control can only be held by one container at a time.
func (s *ControlStack) Open(w ControlWidget) error {
	c := w.AsControl()
	if c.owner != nil {
		return fmt.Errorf("open %q: %w", c.Name, ErrAlreadyOwned)
	}
	if top, ok := s.Top(); ok {
		top.AsControl().FocusLost.Emit()
		logger.Debug("focus lost", "control", top.Base().Name)
	}
	s.items = append(s.items, w)
	c.owner = s
	c.opened = true
	c.closed = false
	c.Invalidate()
	logger.Debug("control opened", "control", c.Name, "depth", len(s.items))
	c.Opened.Emit()
	return nil
}

// Close removes w wherever it is in the stack, keeping the order of the
// rest. Focus moves to the new top only when w was the top.
func (s *ControlStack) Close(w ControlWidget) error {
	return s.closeControl(w.AsControl())
}

func (s *ControlStack) closeControl(c *Control) error {
	i := s.index(c)
	if i < 0 {
		return fmt.Errorf("close %q: %w", c.Name, ErrNotFound)
	}
	wasTop := i == len(s.items)-1
	s.items = slices.Delete(s.items, i, i+1)
	s.release(c)

	if wasTop {
		if top, ok := s.Top(); ok {
			logger.Debug("focus gained", "control", top.Base().Name)
			top.AsControl().FocusGained.Emit()
		}
	}
	return nil
}

// release marks a removed control closed and fires Closed.
func (s *ControlStack) release(c *Control) {
	c.owner = nil
	c.opened = false
	c.closed = true
	logger.Debug("control closed", "control", c.Name, "depth", len(s.items))
	c.Closed.Emit()
}

// CloseAll closes every control from top to bottom. No focus events fire.
func (s *ControlStack) CloseAll() {
	for len(s.items) > 0 {
		last := len(s.items) - 1
		c := s.items[last].AsControl()
		s.items = s.items[:last]
		s.release(c)
	}
}

func (s *ControlStack) index(c *Control) int {
	return slices.IndexFunc(s.items, func(w ControlWidget) bool { return w.AsControl() == c })
}

// Contains reports whether w is in the stack.
func (s *ControlStack) Contains(w ControlWidget) bool {
	return s.index(w.AsControl()) >= 0
}

// Has reports whether a control with the given name is in the stack.
func (s *ControlStack) Has(name string) bool {
	_, err := s.Find(name)
	return err == nil
}

// Find returns the topmost control with the given name.
func (s *ControlStack) Find(name string) (ControlWidget, error) {
	for i := len(s.items) - 1; i >= 0; i-- {
		if s.items[i].Base().Name == name {
			return s.items[i], nil
		}
	}
	return nil, fmt.Errorf("control %q: %w", name, ErrNotFound)
}

// Controls returns the stack bottom to top.
func (s *ControlStack) Controls() []ControlWidget { return slices.Clone(s.items) }

// SetAllStyles gives every control in the stack the same style.
func (s *ControlStack) SetAllStyles(style *Style) {
	for _, w := range s.items {
		w.Base().SetStyle(style)
	}
}

// Update runs one frame: the top control handles input and then every
// control is refreshed. It returns the error of the top control's Update.
// Close removes a control at once, so a control closing itself hands focus
// to the one below without that one updating this frame.
func (s *ControlStack) Update(in *input.Input) error {
	var err error
	if top, ok := s.Top(); ok {
		err = top.Update(in)
	}
	s.refresh()
	return err
}

// refresh lays out every control whose style changed or that is messy.
func (s *ControlStack) refresh() {
	for _, w := range s.items {
		refresh(w)
	}
}

// Draw paints the top control, or every control in draw-all mode.
func (s *ControlStack) Draw(r Renderer) {
	s.refresh()
	if !s.drawAll {
		if top, ok := s.Top(); ok {
			top.Draw(r)
		}
		return
	}

	last := len(s.items) - 1
	for i, w := range s.items {
		w.Draw(r)
		if i != last {
			drawMask(r, w.Base())
		}
	}
}

// drawMask darkens an inactive control.
func drawMask(r Renderer, c *Component) {
	st := c.Style()
	if st == nil {
		return
	}
	if st.Mask != nil {
		r.DrawImage(st.Mask, c.Rect(), Rect{}, st.MaskColor)
	} else if st.MaskColor.Alpha() != 0 {
		r.FillRect(c.Rect(), st.MaskColor)
	}
}
