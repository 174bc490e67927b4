package odge

import "image"

// Image is an opaque texture handle owned by a backend.
type Image interface {
	Bounds() image.Rectangle
}

// Renderer is the drawing surface handed to Draw. Backends implement it on
// top of their graphics API; the UI package never touches pixels.
type Renderer interface {
	// DrawImage draws the src region of img stretched over dst, multiplied
	// by tint. An empty src means the whole image.
	DrawImage(img Image, dst, src Rect, tint Color)

	// DrawText draws text with its top-left corner at at.
	DrawText(f Font, text string, at Point, tint Color)

	// FillRect fills dst with a solid color.
	FillRect(dst Rect, c Color)
}

// Borders draws a frame around a rectangle. A nine-slice stretcher is the
// usual implementation; LineBorders is the built-in fallback.
type Borders interface {
	Draw(r Renderer, dst Rect, tint Color)
	DrawCorners(r Renderer, dst Rect, tint Color)
}

// LineBorders draws solid lines of a fixed thickness.
type LineBorders struct {
	Thickness int
	// Corner is the length of each corner leg for DrawCorners.
	// Zero uses four times the thickness.
	Corner int
}

// Draw implements Borders.
func (b LineBorders) Draw(r Renderer, dst Rect, tint Color) {
	t := b.thickness()
	r.FillRect(Rect{X: dst.X, Y: dst.Y, W: dst.W, H: t}, tint)
	r.FillRect(Rect{X: dst.X, Y: dst.Bottom() - t, W: dst.W, H: t}, tint)
	r.FillRect(Rect{X: dst.X, Y: dst.Y + t, W: t, H: dst.H - 2*t}, tint)
	r.FillRect(Rect{X: dst.Right() - t, Y: dst.Y + t, W: t, H: dst.H - 2*t}, tint)
}

// DrawCorners implements Borders.
func (b LineBorders) DrawCorners(r Renderer, dst Rect, tint Color) {
	t := b.thickness()
	n := b.Corner
	if n <= 0 {
		n = 4 * t
	}
	n = min(n, dst.W/2, dst.H/2)

	for _, c := range [4]Point{
		{dst.X, dst.Y},
		{dst.Right() - n, dst.Y},
		{dst.X, dst.Bottom() - t},
		{dst.Right() - n, dst.Bottom() - t},
	} {
		r.FillRect(Rect{X: c.X, Y: c.Y, W: n, H: t}, tint)
	}
	for _, c := range [4]Point{
		{dst.X, dst.Y},
		{dst.Right() - t, dst.Y},
		{dst.X, dst.Bottom() - n},
		{dst.Right() - t, dst.Bottom() - n},
	} {
		r.FillRect(Rect{X: c.X, Y: c.Y, W: t, H: n}, tint)
	}
}

func (b LineBorders) thickness() int {
	if b.Thickness <= 0 {
		return 1
	}
	return b.Thickness
}

// drawPanel draws the background and border of a rectangle for one style
// context. Shared by every widget.
func drawPanel(r Renderer, s *Style, dst Rect, ctx ContextID) {
	drawPanelFaded(r, s, dst, ctx, 1)
}

// drawPanelFaded is drawPanel with every color scaled by opacity.
func drawPanelFaded(r Renderer, s *Style, dst Rect, ctx ContextID, opacity float32) {
	if s == nil || dst.Empty() {
		return
	}
	bg := s.BackgroundColors.Get(ctx).Fade(opacity)
	if img := s.Backgrounds.Get(ctx); img != nil {
		r.DrawImage(img, dst, Rect{}, bg)
	} else if bg.Alpha() != 0 {
		r.FillRect(dst, bg)
	}

	b := s.Borders.Get(ctx)
	bc := s.BorderColors.Get(ctx).Fade(opacity)
	if b == nil || bc.Alpha() == 0 {
		return
	}
	if s.DrawOnlyCorners {
		b.DrawCorners(r, dst, bc)
	} else {
		b.Draw(r, dst, bc)
	}
}
