package odge

// DefaultNoteLifetime is how long a NoteBox stays up when no lifetime is
// given.
const DefaultNoteLifetime = 300

// NoteBox is a boxed text popup for notices such as "Quest updated".
// Unlike PopText it draws its panel, and the panel fades with the text.
type NoteBox struct {
	PopUp

	text string
}

// NewNoteBox creates a note sized to its text. Lifetime defaults to
// DefaultNoteLifetime and fading is on.
func NewNoteBox(text string, style *Style, opts ...Option) *NoteBox {
	o := applyOptions(opts)
	n := &NoteBox{text: text}
	n.Init(nameOr(o, "note"), style)
	n.Lifetime = DefaultNoteLifetime
	if HasOpt(o, OptLifetime) {
		n.Lifetime = GetOpt(o, OptLifetime)
	}
	n.Fade = GetOpt(o, OptFade)
	n.SetMinSizeFunc(n.measureMin)
	n.Layout()
	return n
}

// Text returns the note.
func (n *NoteBox) Text() string { return n.text }

// SetText changes the note and marks the box messy.
func (n *NoteBox) SetText(text string) {
	if text == n.text {
		return
	}
	n.text = text
	n.Invalidate()
}

func (n *NoteBox) measureMin() Point {
	s := n.Style()
	return measure(s.Font(ContextNormal), n.text).Add(Pt(s.Padding.Horizontal(), s.Padding.Vertical()))
}

// Draw implements Widget.
func (n *NoteBox) Draw(r Renderer) {
	s := n.Style()
	alpha := n.Opacity()
	drawPanelFaded(r, s, n.Rect(), ContextNormal, alpha)

	tint := s.TextColors.Get(ContextNormal).Fade(alpha)
	if n.text == "" || tint.Alpha() == 0 {
		return
	}
	f := s.Font(ContextNormal)
	at := AlignInRect(measure(f, n.text), n.Rect().Inset(s.Padding), s.AlignH, s.AlignV)
	r.DrawText(f, n.text, at, tint)
}
