package odge

// TextButton is a menu button showing one line of text.
type TextButton struct {
	Button
	text string
}

// NewTextButton creates a text button. The name defaults to the text.
func NewTextButton(text string, style *Style, opts ...Option) *TextButton {
	o := applyOptions(opts)
	b := &TextButton{text: text}
	b.Init(nameOr(o, text), style)
	b.SetMinSizeFunc(b.measureMin)
	return b
}

// Text returns the label.
func (b *TextButton) Text() string { return b.text }

// SetText changes the label and marks the button messy.
func (b *TextButton) SetText(text string) {
	if text == b.text {
		return
	}
	b.text = text
	b.Invalidate()
}

func (b *TextButton) measureMin() Point {
	s := b.Style()
	return measure(s.Font(b.context()), b.text).Add(Pt(s.Padding.Horizontal(), s.Padding.Vertical()))
}

// Draw implements Widget.
func (b *TextButton) Draw(r Renderer) {
	s := b.Style()
	ctx := b.context()
	drawPanel(r, s, b.Rect(), ctx)

	f := s.Font(ctx)
	at := AlignInRect(measure(f, b.text), b.Rect().Inset(s.Padding), s.AlignH, s.AlignV)
	r.DrawText(f, b.text, at, s.TextColors.Get(ctx))
}

// ImageButton is a menu button showing an image, tinted white when
// selected and gray otherwise.
type ImageButton struct {
	Button
	image  Image
	source Rect
}

// NewImageButton creates an image button drawing the src region of img.
// An empty src uses the whole image.
func NewImageButton(img Image, src Rect, style *Style, opts ...Option) *ImageButton {
	o := applyOptions(opts)
	b := &ImageButton{image: img, source: src}
	b.Init(GetOpt(o, OptName), style)
	b.SetMinSizeFunc(b.measureMin)
	return b
}

// Image returns the image and source region.
func (b *ImageButton) Image() (Image, Rect) { return b.image, b.source }

// SetImage replaces the image and source region.
func (b *ImageButton) SetImage(img Image, src Rect) {
	b.image, b.source = img, src
	b.Invalidate()
}

func (b *ImageButton) sourceSize() Point {
	if !b.source.Empty() {
		return b.source.Size()
	}
	if b.image == nil {
		return Point{}
	}
	sz := b.image.Bounds().Size()
	return Point{X: sz.X, Y: sz.Y}
}

func (b *ImageButton) measureMin() Point {
	s := b.Style()
	return b.sourceSize().Add(Pt(s.Padding.Horizontal(), s.Padding.Vertical()))
}

// Draw implements Widget.
func (b *ImageButton) Draw(r Renderer) {
	s := b.Style()
	drawPanel(r, s, b.Rect(), b.context())
	if b.image == nil {
		return
	}
	tint := ColorGray
	if b.IsSelected() {
		tint = ColorWhite
	}
	sz := b.sourceSize()
	at := AlignInRect(sz, b.Rect().Inset(s.Padding), s.AlignH, s.AlignV)
	r.DrawImage(b.image, Rect{X: at.X, Y: at.Y, W: sz.X, H: sz.Y}, b.source, tint)
}
