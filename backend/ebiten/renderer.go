package ebiten

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"

	"github.com/go-theft-auto/odge"
)

// Renderer implements odge.Renderer by drawing onto an *ebiten.Image.
// *ebiten.Image values satisfy odge.Image directly; any other image.Image is
// converted on first use and cached.
type Renderer struct {
	target *ebiten.Image
	white  *ebiten.Image
	faces  map[font.Face]*text.GoXFace
	images map[image.Image]*ebiten.Image
}

var _ odge.Renderer = (*Renderer)(nil)

// NewRenderer creates a renderer. Call SetTarget with the screen at the
// start of every Draw.
func NewRenderer() *Renderer {
	white := ebiten.NewImage(1, 1)
	white.Fill(color.White)
	return &Renderer{
		white:  white,
		faces:  make(map[font.Face]*text.GoXFace),
		images: make(map[image.Image]*ebiten.Image),
	}
}

// SetTarget selects the image subsequent calls draw onto.
func (r *Renderer) SetTarget(dst *ebiten.Image) {
	r.target = dst
}

// DrawImage implements odge.Renderer.
func (r *Renderer) DrawImage(img odge.Image, dst, src odge.Rect, tint odge.Color) {
	if r.target == nil || dst.Empty() || tint.Alpha() == 0 {
		return
	}
	eimg := r.image(img)
	if eimg == nil {
		return
	}
	b := eimg.Bounds()
	if !src.Empty() {
		b = image.Rect(b.Min.X+src.X, b.Min.Y+src.Y, b.Min.X+src.Right(), b.Min.Y+src.Bottom())
		eimg = eimg.SubImage(b).(*ebiten.Image)
	}
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(dst.W)/float64(b.Dx()), float64(dst.H)/float64(b.Dy()))
	op.GeoM.Translate(float64(dst.X), float64(dst.Y))
	op.ColorScale.ScaleWithColor(tint.NRGBA())
	r.target.DrawImage(eimg, op)
}

func (r *Renderer) image(img odge.Image) *ebiten.Image {
	switch v := img.(type) {
	case nil:
		return nil
	case *ebiten.Image:
		return v
	case image.Image:
		eimg, ok := r.images[v]
		if !ok {
			eimg = ebiten.NewImageFromImage(v)
			r.images[v] = eimg
		}
		return eimg
	default:
		return nil
	}
}

// DrawText implements odge.Renderer.
func (r *Renderer) DrawText(f odge.Font, str string, at odge.Point, tint odge.Color) {
	if r.target == nil || str == "" || tint.Alpha() == 0 {
		return
	}
	ff := odge.FaceOf(f)
	face, ok := r.faces[ff.Face]
	if !ok {
		face = text.NewGoXFace(ff.Face)
		r.faces[ff.Face] = face
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(at.X), float64(at.Y))
	op.ColorScale.ScaleWithColor(tint.NRGBA())
	op.LineSpacing = float64(ff.LineHeight())
	text.Draw(r.target, str, face, op)
}

// FillRect implements odge.Renderer.
func (r *Renderer) FillRect(dst odge.Rect, c odge.Color) {
	if r.target == nil || dst.Empty() || c.Alpha() == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(dst.W), float64(dst.H))
	op.GeoM.Translate(float64(dst.X), float64(dst.Y))
	op.ColorScale.ScaleWithColor(c.NRGBA())
	r.target.DrawImage(r.white, op)
}

// Dispose releases cached images.
func (r *Renderer) Dispose() {
	for k, img := range r.images {
		img.Deallocate()
		delete(r.images, k)
	}
	r.white.Deallocate()
}
