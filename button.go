package odge

// ButtonWidget is a selectable item of a Menu.
type ButtonWidget interface {
	Widget
	// Update runs once per frame while the button is selected.
	Update()
	AsButton() *Button
}

// Button is the selectable base. Embed it in a widget struct and call Init
// from the constructor.
type Button struct {
	Component

	selected bool

	Selected   Event
	Unselected Event
	Submitted  Event
}

// AsButton returns the button itself.
func (b *Button) AsButton() *Button { return b }

// IsSelected reports whether the button is the selection of its menu.
func (b *Button) IsSelected() bool { return b.selected }

// SetSelected sets the selection flag and fires Selected or Unselected.
// The button is marked messy since its style context changes.
func (b *Button) SetSelected(v bool) {
	b.selected = v
	b.Invalidate()
	if v {
		b.Selected.Emit()
	} else {
		b.Unselected.Emit()
	}
}

// Submit fires Submitted.
func (b *Button) Submit() {
	b.Submitted.Emit()
}

// Update does nothing by default.
func (b *Button) Update() {}

// context returns the style context for the current selection state.
func (b *Button) context() ContextID {
	if b.selected {
		return ContextActive
	}
	return ContextNormal
}

// Draw draws the button's panel for its selection state.
func (b *Button) Draw(r Renderer) {
	drawPanel(r, b.Style(), b.Rect(), b.context())
}
