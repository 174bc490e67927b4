package odge

import (
	"fmt"
	"image"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Font measures text for layout. Widgets only need sizes; renderers draw
// the glyphs, usually through RasterizeText.
//
// Implementations other than FaceFont are free to render through their own
// glyph atlases, but the bundled backends only know how to draw FaceFont.
type Font interface {
	// Measure returns the pixel size of text. Lines are separated by '\n';
	// the width is that of the widest line.
	Measure(text string) Point

	// LineHeight returns the distance between two baselines.
	LineHeight() int
}

// FaceFont adapts a golang.org/x/image font.Face to the Font interface.
type FaceFont struct {
	Face font.Face
}

// Measure implements Font.
func (f FaceFont) Measure(text string) Point {
	if text == "" {
		return Point{}
	}
	lines := strings.Split(text, "\n")
	w := 0
	for _, line := range lines {
		w = max(w, font.MeasureString(f.Face, line).Ceil())
	}
	return Point{X: w, Y: len(lines) * f.LineHeight()}
}

// LineHeight implements Font.
func (f FaceFont) LineHeight() int {
	return f.Face.Metrics().Height.Ceil()
}

// Ascent returns the distance from the top of a line to its baseline.
// Backends use it to convert a top-left text position to a baseline.
func (f FaceFont) Ascent() int {
	return f.Face.Metrics().Ascent.Ceil()
}

// DefaultFont returns the 7x13 fixed font from x/image/basicfont.
// It needs no files and no parsing, which makes it the fallback for every
// style that does not set a font.
func DefaultFont() FaceFont {
	return FaceFont{Face: basicfont.Face7x13}
}

// GoFont returns the Go Regular font at the given point size (72 DPI).
func GoFont(size float64) (FaceFont, error) {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return FaceFont{}, fmt.Errorf("parse go regular: %w", err)
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return FaceFont{}, fmt.Errorf("create go regular face: %w", err)
	}
	return FaceFont{Face: face}, nil
}

// measure is Font.Measure with a nil-safe fallback to DefaultFont.
func measure(f Font, text string) Point {
	if f == nil {
		return DefaultFont().Measure(text)
	}
	return f.Measure(text)
}

// FaceOf returns f as a FaceFont. Fonts that are not backed by a font.Face
// fall back to DefaultFont.
func FaceOf(f Font) FaceFont {
	if ff, ok := f.(FaceFont); ok && ff.Face != nil {
		return ff
	}
	if ff, ok := f.(*FaceFont); ok && ff != nil && ff.Face != nil {
		return *ff
	}
	return DefaultFont()
}

// RasterizeText draws text in opaque white onto a new RGBA image sized to
// fit it. Backends upload the result as a texture and tint it when drawing.
// It returns nil for empty text.
func RasterizeText(f Font, text string) *image.RGBA {
	ff := FaceOf(f)
	size := ff.Measure(text)
	if size.X <= 0 || size.Y <= 0 {
		return nil
	}
	dst := image.NewRGBA(image.Rect(0, 0, size.X, size.Y))
	d := font.Drawer{Dst: dst, Src: image.White, Face: ff.Face}
	lh := ff.LineHeight()
	for i, line := range strings.Split(text, "\n") {
		d.Dot = fixed.P(0, i*lh+ff.Ascent())
		d.DrawString(line)
	}
	return dst
}
