package odge

import (
	"fmt"
	"slices"
)

// Menu is a control holding an ordered list of buttons with exactly one
// selected whenever it is non-empty. ListMenu and GalleryMenu embed it and
// add layout, navigation and scrolling.
//
// SelectedIndex is -1 for an empty menu and clamped to [0, Len()-1]
// otherwise.
type Menu struct {
	Control

	buttons  []ButtonWidget
	selected int

	// WrapAround makes Step wrap past either end. Menus wrap unless built
	// with WithWrapAround(false).
	WrapAround bool

	// SelectedIndexChanged fires when SetSelectedIndex moves the selection,
	// between the old button's Unselected and the new button's Selected.
	SelectedIndexChanged Event

	// Emptied fires when the last button is removed.
	Emptied Event
}

// initMenu prepares an embedded menu.
func (m *Menu) initMenu(name string, style *Style) {
	m.Init(name, style)
	m.selected = -1
}

// Len returns the number of buttons.
func (m *Menu) Len() int { return len(m.buttons) }

// At returns the button at i, or nil if i is out of range.
func (m *Menu) At(i int) ButtonWidget {
	if i < 0 || i >= len(m.buttons) {
		return nil
	}
	return m.buttons[i]
}

// Buttons returns a copy of the button list.
func (m *Menu) Buttons() []ButtonWidget { return slices.Clone(m.buttons) }

// Children implements Parent.
func (m *Menu) Children() []Widget {
	out := make([]Widget, len(m.buttons))
	for i, b := range m.buttons {
		out[i] = b
	}
	return out
}

// IndexOf returns the position of b, or -1.
func (m *Menu) IndexOf(b ButtonWidget) int {
	if b == nil {
		return -1
	}
	target := b.AsButton()
	return slices.IndexFunc(m.buttons, func(x ButtonWidget) bool { return x.AsButton() == target })
}

// SelectedIndex returns the selected position, or -1 when empty.
func (m *Menu) SelectedIndex() int { return m.selected }

// Selected returns the selected button. ok is false for an empty menu.
func (m *Menu) Selected() (b ButtonWidget, ok bool) {
	if m.selected < 0 || m.selected >= len(m.buttons) {
		return nil, false
	}
	return m.buttons[m.selected], true
}

// SetSelectedIndex clamps i into range and moves the selection there. It is
// a no-op on an empty menu or when the clamped index is already selected.
func (m *Menu) SetSelectedIndex(i int) {
	if len(m.buttons) == 0 {
		return
	}
	i = max(0, min(i, len(m.buttons)-1))
	if i == m.selected {
		return
	}
	if old, ok := m.Selected(); ok {
		old.AsButton().SetSelected(false)
	}
	m.selected = i
	m.SelectedIndexChanged.Emit()
	m.buttons[i].AsButton().SetSelected(true)
}

// Step moves the selection by delta. With WrapAround it wraps modulo Len;
// otherwise it stops at either end.
func (m *Menu) Step(delta int) {
	n := len(m.buttons)
	if n == 0 {
		return
	}
	next := m.selected + delta
	if m.WrapAround {
		next = ((next % n) + n) % n
	}
	m.SetSelectedIndex(next)
}

// Add appends buttons. The first button added to an empty menu becomes the
// selection and fires its Selected, but not SelectedIndexChanged; later
// additions leave the selection alone.
func (m *Menu) Add(bs ...ButtonWidget) {
	for _, b := range bs {
		m.Insert(len(m.buttons), b)
	}
}

// AddRange replaces every button with bs and selects the first one.
// Emptied does not fire.
func (m *Menu) AddRange(bs []ButtonWidget) {
	for _, b := range m.buttons {
		b.AsButton().selected = false
	}
	m.buttons = nil
	m.selected = -1
	m.Add(bs...)
	m.Invalidate()
}

// Insert places b at i, clamped to [0, Len()]. Inserting at or before the
// selection keeps the same button selected.
func (m *Menu) Insert(i int, b ButtonWidget) {
	if b == nil {
		return
	}
	i = max(0, min(i, len(m.buttons)))
	m.buttons = slices.Insert(m.buttons, i, b)
	m.Invalidate()

	switch {
	case len(m.buttons) == 1:
		// The first button is selected without SelectedIndexChanged.
		m.selected = 0
		b.AsButton().SetSelected(true)
	case i <= m.selected:
		m.selected++
	}
}

// Remove removes b. It reports whether b was present.
func (m *Menu) Remove(b ButtonWidget) bool {
	i := m.IndexOf(b)
	if i < 0 {
		return false
	}
	_ = m.RemoveAt(i)
	return true
}

// RemoveAt removes the button at i.
//
// Removing before the selection keeps the same button selected. Removing
// the selection selects the button that moved into its place, or the new
// last button. Removing the last button leaves the menu at -1 and fires
// Emptied. SelectedIndexChanged does not fire for removals.
func (m *Menu) RemoveAt(i int) error {
	if i < 0 || i >= len(m.buttons) {
		return fmt.Errorf("remove button %d of %d: %w", i, len(m.buttons), ErrNotFound)
	}
	removed := m.buttons[i].AsButton()
	m.buttons = slices.Delete(m.buttons, i, i+1)
	removed.selected = false
	m.Invalidate()

	switch {
	case len(m.buttons) == 0:
		m.selected = -1
		m.Emptied.Emit()
	case i < m.selected:
		m.selected--
	case i == m.selected:
		m.selected = min(m.selected, len(m.buttons)-1)
		m.buttons[m.selected].AsButton().SetSelected(true)
	}
	return nil
}

// Clear removes every button. Emptied fires if the menu had any.
func (m *Menu) Clear() {
	if len(m.buttons) == 0 {
		return
	}
	for _, b := range m.buttons {
		b.AsButton().selected = false
	}
	m.buttons = nil
	m.selected = -1
	m.Invalidate()
	m.Emptied.Emit()
}

// CascadeStyle gives every button the menu's style.
func (m *Menu) CascadeStyle() {
	for _, b := range m.buttons {
		b.Base().SetStyle(m.Style())
	}
}

// updateSelected runs the selected button's Update.
func (m *Menu) updateSelected() {
	if b, ok := m.Selected(); ok {
		b.Update()
	}
}

// submitSelected fires the selected button's Submitted, then the menu's.
func (m *Menu) submitSelected() {
	if b, ok := m.Selected(); ok {
		b.AsButton().Submit()
	}
	m.Submit()
}

// shiftButtons moves every button by d.
func (m *Menu) shiftButtons(d Point) {
	if d == (Point{}) {
		return
	}
	for _, b := range m.buttons {
		b.Base().Move(d)
	}
}
