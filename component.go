package odge

// Widget is anything a container can lay out and draw.
//
// Concrete widgets embed Control, PopUp or Button, which embed Component;
// Base returns that embedded record so containers can read shared state.
//
// Usage (custom control):
//
//	type Gauge struct {
//	    odge.Control
//	    Value int
//	}
//
//	func NewGauge(style *odge.Style) *Gauge {
//	    g := &Gauge{}
//	    g.Init("gauge", style)
//	    return g
//	}
//
//	func (g *Gauge) Update(in *input.Input) error { return g.Control.Update(in) }
//	func (g *Gauge) Draw(r odge.Renderer)         { /* ... */ }
type Widget interface {
	Base() *Component
	Layout()
	Draw(r Renderer)
}

// Parent is a widget whose children take part in the container refresh pass.
type Parent interface {
	Children() []Widget
}

// Component is the record every widget embeds: name, bounds, style, the
// messy flag and lifecycle events.
//
// Size or location changes and style reassignment mark the component messy.
// Only Layout clears the flag.
type Component struct {
	Name string

	rect         Rect
	style        *Style
	styleVersion uint64
	messy        bool
	minSizeFn    func() Point

	Moved        Event
	Resized      Event
	StyleChanged Event
	Opened       Event
	Closed       Event
}

// Init sets the name and style. Widgets call it from their constructors.
func (c *Component) Init(name string, style *Style) {
	if style == nil {
		style = DefaultStyle()
	}
	c.Name = name
	c.style = style
	c.styleVersion = style.Version()
	c.messy = true
}

// Base returns the component itself.
func (c *Component) Base() *Component { return c }

// SetMinSizeFunc installs the function Layout and SetSize use to clamp the
// size. It must not depend on the current size.
func (c *Component) SetMinSizeFunc(fn func() Point) {
	c.minSizeFn = fn
	c.messy = true
}

// MinSize returns the smallest size the component accepts.
func (c *Component) MinSize() Point {
	if c.minSizeFn == nil {
		return Point{}
	}
	return c.minSizeFn()
}

// Rect returns the bounds in screen pixels.
func (c *Component) Rect() Rect { return c.rect }

// Location returns the top-left corner.
func (c *Component) Location() Point { return c.rect.Location() }

// Size returns the width and height.
func (c *Component) Size() Point { return c.rect.Size() }

// SetLocation moves the component and marks it messy.
func (c *Component) SetLocation(p Point) {
	if p == c.rect.Location() {
		return
	}
	c.rect.X, c.rect.Y = p.X, p.Y
	c.messy = true
	c.Moved.Emit()
}

// Move shifts the component by d.
func (c *Component) Move(d Point) {
	c.SetLocation(c.rect.Location().Add(d))
}

// SetSize resizes the component, clamped to MinSize, and marks it messy.
func (c *Component) SetSize(sz Point) {
	sz = clampSize(sz, c.MinSize())
	if sz == c.rect.Size() {
		return
	}
	c.rect.W, c.rect.H = sz.X, sz.Y
	c.messy = true
	c.Resized.Emit()
}

// SetRect sets location and size together.
func (c *Component) SetRect(r Rect) {
	c.SetLocation(r.Location())
	c.SetSize(r.Size())
}

// Style returns the current style.
func (c *Component) Style() *Style { return c.style }

// SetStyle replaces the style. Assigning the same pointer does nothing;
// edits to a shared style go through Style.RegisterChanges instead.
func (c *Component) SetStyle(s *Style) {
	if s == nil || s == c.style {
		return
	}
	c.style = s
	c.styleVersion = s.Version()
	c.messy = true
	c.StyleChanged.Emit()
}

// IsMessy reports whether layout must run before the next draw.
func (c *Component) IsMessy() bool { return c.messy }

// Invalidate marks the component messy.
func (c *Component) Invalidate() { c.messy = true }

// Layout grows the component to its minimum size and clears the messy flag.
// Widgets that override Layout call it after positioning their content.
func (c *Component) Layout() {
	if sz := clampSize(c.rect.Size(), c.MinSize()); sz != c.rect.Size() {
		c.rect.W, c.rect.H = sz.X, sz.Y
		c.Resized.Emit()
	}
	c.messy = false
}

// styleDirty reports whether the shared style changed since the last refresh.
func (c *Component) styleDirty() bool {
	return c.style != nil && c.style.Version() != c.styleVersion
}

// acceptStyle records the style version as seen and clears the style's flag.
func (c *Component) acceptStyle() {
	if c.style == nil {
		return
	}
	c.styleVersion = c.style.Version()
	c.style.AcceptChanges()
}

func clampSize(sz, minSz Point) Point {
	return Point{X: max(sz.X, minSz.X), Y: max(sz.Y, minSz.Y)}
}

// refresh runs the per-frame maintenance pass over w and its children:
// style changes re-mark the component messy, messy components lay out, and
// the style change is accepted. Clean components do no work.
func refresh(w Widget) {
	c := w.Base()
	if c.styleDirty() {
		c.StyleChanged.Emit()
		c.messy = true
	}
	if c.messy {
		w.Layout()
		c.messy = false
	}
	c.acceptStyle()

	if p, ok := w.(Parent); ok {
		for _, child := range p.Children() {
			refresh(child)
		}
	}
}
