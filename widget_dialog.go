package odge

import (
	"fmt"

	"github.com/go-theft-auto/odge/input"
)

// DialogBox is a control showing text one page at a time.
//
// Submit advances to the next page; on the last page it fires Submitted and
// closes the dialog. Left and right flip pages without closing.
type DialogBox struct {
	Control

	Heading string

	pages []string
	page  int
}

// NewDialogBox creates a dialog over the given pages. Text wrapping is the
// caller's job: each page is drawn as is, '\n' breaking lines.
func NewDialogBox(pages []string, style *Style, opts ...Option) *DialogBox {
	o := applyOptions(opts)
	d := &DialogBox{
		Heading: GetOpt(o, OptHeading),
		pages:   append([]string(nil), pages...),
	}
	d.Init(nameOr(o, "dialog"), style)
	d.SetMinSizeFunc(d.measureMin)
	return d
}

// Page returns the zero-based current page.
func (d *DialogBox) Page() int { return d.page }

// Pages returns the page count.
func (d *DialogBox) Pages() int { return len(d.pages) }

// Text returns the current page, or "" when there are no pages.
func (d *DialogBox) Text() string {
	if d.page >= len(d.pages) {
		return ""
	}
	return d.pages[d.page]
}

// SetPage moves to page i, clamped into range.
func (d *DialogBox) SetPage(i int) {
	i = max(0, min(i, len(d.pages)-1))
	if i == d.page {
		return
	}
	d.page = i
	d.Invalidate()
}

// Footer returns the page counter text.
func (d *DialogBox) Footer() string {
	if len(d.pages) < 2 {
		return ""
	}
	return fmt.Sprintf("[Page %d of %d]", d.page+1, len(d.pages))
}

func (d *DialogBox) measureMin() Point {
	s := d.Style()
	var w, h int

	if d.Heading != "" {
		hs := measure(s.Font(ContextHeader), d.Heading)
		w = max(w, hs.X)
		h += hs.Y + s.Spacing.V
	}
	tallest := 0
	for _, p := range d.pages {
		ps := measure(s.Font(ContextNormal), p)
		w = max(w, ps.X)
		tallest = max(tallest, ps.Y)
	}
	h += tallest
	if len(d.pages) > 1 {
		// Widest counter the dialog can show.
		fs := measure(s.Font(ContextFooter), fmt.Sprintf("[Page %d of %d]", len(d.pages), len(d.pages)))
		w = max(w, fs.X)
		h += fs.Y + s.Spacing.V
	}
	return Point{X: w + s.Padding.Horizontal(), Y: h + s.Padding.Vertical()}
}

// Update implements ControlWidget.
func (d *DialogBox) Update(in *input.Input) error {
	if d.SubmitPressed(in) {
		if d.page < len(d.pages)-1 {
			d.SetPage(d.page + 1)
		} else {
			d.Submit()
			if d.IsOwned() {
				return d.Close()
			}
			return nil
		}
	}

	nav, err := readNavigation(in)
	if err != nil {
		return fmt.Errorf("dialog %q: %w", d.Name, err)
	}
	switch {
	case nav.Right:
		d.SetPage(d.page + 1)
	case nav.Left:
		d.SetPage(d.page - 1)
	}

	if d.CancelPressed(in) {
		return d.Cancel()
	}
	return nil
}

// Draw implements Widget.
func (d *DialogBox) Draw(r Renderer) {
	s := d.Style()
	drawPanel(r, s, d.Rect(), ContextNormal)
	in := d.Rect().Inset(s.Padding)

	if d.Heading != "" {
		f := s.Font(ContextHeader)
		sz := measure(f, d.Heading)
		at := AlignInRect(sz, Rect{X: in.X, Y: in.Y, W: in.W, H: sz.Y}, s.AlignH, AlignStart)
		r.DrawText(f, d.Heading, at, s.TextColors.Get(ContextHeader))
		in.Y += sz.Y + s.Spacing.V
		in.H -= sz.Y + s.Spacing.V
	}

	if footer := d.Footer(); footer != "" {
		f := s.Font(ContextFooter)
		sz := measure(f, footer)
		r.DrawText(f, footer, AlignInRect(sz, in, AlignEnd, AlignEnd), s.TextColors.Get(ContextFooter))
	}

	if text := d.Text(); text != "" {
		f := s.Font(ContextNormal)
		at := AlignInRect(measure(f, text), in, s.AlignH, AlignStart)
		r.DrawText(f, text, at, s.TextColors.Get(ContextNormal))
	}
}
