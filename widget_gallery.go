package odge

import (
	"fmt"

	"github.com/go-theft-auto/odge/input"
)

// GalleryMenu arranges its buttons in a grid of equal cells, row by row.
// Each cell is as large as the largest button; buttons are aligned inside
// their cell by the style's AlignH and AlignV.
//
// Navigation: right/left step by one (wrapping if enabled), down/up move a
// full row when that row exists.
type GalleryMenu struct {
	Menu

	Columns int

	scroll int
}

// NewGalleryMenu creates an empty gallery menu.
func NewGalleryMenu(style *Style, opts ...Option) *GalleryMenu {
	o := applyOptions(opts)
	m := &GalleryMenu{Columns: max(GetOpt(o, OptColumns), 1)}
	m.initMenu(nameOr(o, "gallery menu"), style)
	m.WrapAround = GetOpt(o, OptWrapAround)
	m.SetMinSizeFunc(m.measureMin)
	return m
}

// CellSize returns the size of one grid cell.
func (m *GalleryMenu) CellSize() Point {
	var out Point
	for _, b := range m.buttons {
		sz := b.Base().MinSize()
		out.X = max(out.X, sz.X, b.Base().Size().X)
		out.Y = max(out.Y, sz.Y, b.Base().Size().Y)
	}
	return out
}

func (m *GalleryMenu) columns() int { return max(m.Columns, 1) }

func (m *GalleryMenu) rows() int {
	return (len(m.buttons) + m.columns() - 1) / m.columns()
}

func (m *GalleryMenu) measureMin() Point {
	s := m.Style()
	cell := m.CellSize()
	cols := min(m.columns(), max(len(m.buttons), 1))
	return Point{
		X: cols*cell.X + (cols-1)*s.Spacing.H + s.Padding.Horizontal(),
		Y: cell.Y + s.Padding.Vertical(),
	}
}

// Panel returns the viewport the grid scrolls within.
func (m *GalleryMenu) Panel() Rect {
	return m.Rect().Inset(m.Style().Padding)
}

// Scroll returns how far the grid is scrolled up, in pixels.
func (m *GalleryMenu) Scroll() int { return m.scroll }

// cellRect returns the unscrolled cell of button i for a given cell size.
func (m *GalleryMenu) cellRect(i int, cell Point) Rect {
	s := m.Style()
	p := m.Panel()
	col, row := i%m.columns(), i/m.columns()
	return Rect{
		X: p.X + col*(cell.X+s.Spacing.H),
		Y: p.Y + row*(cell.Y+s.Spacing.V),
		W: cell.X,
		H: cell.Y,
	}
}

// Layout implements Widget.
func (m *GalleryMenu) Layout() {
	for _, b := range m.buttons {
		b.Base().SetSize(b.Base().Size())
	}
	m.Component.Layout()
	m.scroll = m.clampScroll(m.scroll)

	s := m.Style()
	size := m.CellSize()
	for i, b := range m.buttons {
		c := b.Base()
		cell := m.cellRect(i, size)
		cell.Y -= m.scroll
		c.SetLocation(AlignInRect(c.Size(), cell, s.AlignH, s.AlignV))
	}
}

// Update implements ControlWidget.
func (m *GalleryMenu) Update(in *input.Input) error {
	m.updateSelected()
	if m.SubmitPressed(in) {
		m.submitSelected()
	}

	nav, err := readNavigation(in)
	if err != nil {
		return fmt.Errorf("gallery menu %q: %w", m.Name, err)
	}
	cols := m.columns()
	switch {
	case nav.Right:
		m.Step(1)
	case nav.Left:
		m.Step(-1)
	case nav.Down:
		if next := m.SelectedIndex() + cols; next < m.Len() {
			m.SetSelectedIndex(next)
		}
	case nav.Up:
		if next := m.SelectedIndex() - cols; next >= 0 {
			m.SetSelectedIndex(next)
		}
	}

	if m.CancelPressed(in) {
		if err := m.Cancel(); err != nil {
			return err
		}
	}
	m.ScrollOptions()
	return nil
}

// ScrollOptions moves the grid one easing step toward bringing the selected
// cell inside Panel, then clamps the scroll so no row is pulled past the
// first or last row of the grid.
func (m *GalleryMenu) ScrollOptions() {
	i := m.SelectedIndex()
	if i < 0 {
		return
	}
	cell := m.cellRect(i, m.CellSize())
	cell.Y -= m.scroll
	p := m.Panel()

	next := m.scroll - scrollCorrection(cell.Y, cell.Bottom(), p.Y, p.Bottom())
	next = m.clampScroll(next)
	if d := m.scroll - next; d != 0 {
		m.scroll = next
		m.shiftButtons(Pt(0, d))
	}
}

// clampScroll limits a scroll offset to the grid's content height.
func (m *GalleryMenu) clampScroll(scroll int) int {
	n := m.rows()
	if n == 0 {
		return 0
	}
	content := m.cellRect((n-1)*m.columns(), m.CellSize()).Bottom() - m.Panel().Y
	limit := max(content-m.Panel().H, 0)
	return max(0, min(scroll, limit))
}

// Draw implements Widget. Cells not wholly inside the panel are skipped.
func (m *GalleryMenu) Draw(r Renderer) {
	drawPanel(r, m.Style(), m.Rect(), ContextNormal)
	p := m.Panel()
	for _, b := range m.buttons {
		br := b.Base().Rect()
		if br.Y >= p.Y && br.Bottom() <= p.Bottom() {
			b.Draw(r)
		}
	}
}
