package odge

import (
	"fmt"

	"github.com/go-theft-auto/odge/input"
)

// DefaultPageSize is how many items left/right skip in a ListMenu.
const DefaultPageSize = 8

// ListMenu stacks its buttons vertically below an optional heading and
// scrolls to keep the selection inside the panel.
//
// Navigation: down/up step by one (wrapping if enabled), right/left jump by
// PageSize, submit fires the selected button and then the menu, cancel
// cancels the menu.
type ListMenu struct {
	Menu

	Heading  string
	PageSize int

	scroll int
}

// NewListMenu creates an empty list menu. Give it a size with SetRect; the
// menu never shrinks below its heading and widest button.
func NewListMenu(style *Style, opts ...Option) *ListMenu {
	o := applyOptions(opts)
	m := &ListMenu{
		Heading:  GetOpt(o, OptHeading),
		PageSize: GetOpt(o, OptPageSize),
	}
	m.initMenu(nameOr(o, "list menu"), style)
	m.WrapAround = GetOpt(o, OptWrapAround)
	m.SetMinSizeFunc(m.measureMin)
	return m
}

func (m *ListMenu) headingSize() Point {
	if m.Heading == "" {
		return Point{}
	}
	sz := measure(m.Style().Font(ContextHeader), m.Heading)
	sz.Y += m.Style().Spacing.V
	return sz
}

func (m *ListMenu) measureMin() Point {
	s := m.Style()
	h := m.headingSize()
	widest := 0
	for _, b := range m.buttons {
		widest = max(widest, b.Base().MinSize().X)
	}
	return Point{
		X: max(h.X, widest) + s.Padding.Horizontal(),
		Y: h.Y + s.Padding.Vertical(),
	}
}

// Panel returns the viewport the buttons scroll within.
func (m *ListMenu) Panel() Rect {
	in := m.Rect().Inset(m.Style().Padding)
	hh := m.headingSize().Y
	in.Y += hh
	in.H = max(in.H-hh, 0)
	return in
}

// Scroll returns how far the buttons are scrolled up, in pixels.
func (m *ListMenu) Scroll() int { return m.scroll }

// Layout implements Widget.
func (m *ListMenu) Layout() {
	m.Component.Layout()
	p := m.Panel()
	y := p.Y - m.scroll
	for _, b := range m.buttons {
		c := b.Base()
		c.SetSize(c.Size())
		c.SetLocation(Pt(p.X, y))
		y += c.Size().Y + m.Style().Spacing.V
	}
}

// Update implements ControlWidget.
func (m *ListMenu) Update(in *input.Input) error {
	m.updateSelected()
	if m.SubmitPressed(in) {
		m.submitSelected()
	}

	nav, err := readNavigation(in)
	if err != nil {
		return fmt.Errorf("list menu %q: %w", m.Name, err)
	}
	switch {
	case nav.Down:
		m.Step(1)
	case nav.Up:
		m.Step(-1)
	case nav.Right:
		m.SetSelectedIndex(m.SelectedIndex() + m.PageSize)
	case nav.Left:
		m.SetSelectedIndex(m.SelectedIndex() - m.PageSize)
	}

	if m.CancelPressed(in) {
		if err := m.Cancel(); err != nil {
			return err
		}
	}
	m.ScrollOptions()
	return nil
}

// ScrollOptions moves the buttons one easing step toward bringing the
// selection inside Panel. It does nothing once the selection fits.
func (m *ListMenu) ScrollOptions() {
	b, ok := m.Selected()
	if !ok {
		return
	}
	r := b.Base().Rect()
	p := m.Panel()
	d := scrollCorrection(r.Y, r.Bottom(), p.Y, p.Bottom())
	if d == 0 {
		return
	}
	m.scroll -= d
	m.shiftButtons(Pt(0, d))
}

// Draw implements Widget. Buttons not wholly inside the panel are skipped.
func (m *ListMenu) Draw(r Renderer) {
	s := m.Style()
	drawPanel(r, s, m.Rect(), ContextNormal)

	in := m.Rect().Inset(s.Padding)
	if m.Heading != "" {
		f := s.Font(ContextHeader)
		at := AlignInRect(measure(f, m.Heading), Rect{X: in.X, Y: in.Y, W: in.W, H: m.headingSize().Y}, s.AlignH, AlignStart)
		r.DrawText(f, m.Heading, at, s.TextColors.Get(ContextHeader))
	}

	p := m.Panel()
	for _, b := range m.buttons {
		br := b.Base().Rect()
		if br.Y >= p.Y && br.Bottom() <= p.Bottom() {
			b.Draw(r)
		}
	}
}
