// Package raylib provides a raylib backend for odge.
package raylib

import (
	"image"

	rl "github.com/gen2brain/raylib-go/raylib"
	"golang.org/x/image/font"

	"github.com/go-theft-auto/odge"
)

// Texture wraps a raylib texture as an odge.Image.
type Texture struct {
	rl.Texture2D
}

// LoadTexture uploads img. The window must be open.
func LoadTexture(img image.Image) *Texture {
	rimg := rl.NewImageFromImage(img)
	defer rl.UnloadImage(rimg)
	return &Texture{Texture2D: rl.LoadTextureFromImage(rimg)}
}

// LoadTextureFile loads an image file from disk.
func LoadTextureFile(path string) *Texture {
	return &Texture{Texture2D: rl.LoadTexture(path)}
}

// Bounds implements odge.Image.
func (t *Texture) Bounds() image.Rectangle {
	return image.Rect(0, 0, int(t.Width), int(t.Height))
}

// Unload releases the texture.
func (t *Texture) Unload() {
	if t.ID != 0 {
		rl.UnloadTexture(t.Texture2D)
		t.ID = 0
	}
}

type textKey struct {
	face font.Face
	text string
}

type textEntry struct {
	tex  *Texture
	used bool
}

// Renderer implements odge.Renderer with raylib's immediate drawing calls.
// Use it between rl.BeginDrawing and rl.EndDrawing and call EndFrame once
// per frame to drop text textures that were not drawn.
type Renderer struct {
	text   map[textKey]*textEntry
	images map[image.Image]*Texture
}

var _ odge.Renderer = (*Renderer)(nil)

// NewRenderer creates a renderer.
func NewRenderer() *Renderer {
	return &Renderer{
		text:   make(map[textKey]*textEntry),
		images: make(map[image.Image]*Texture),
	}
}

func color(c odge.Color) rl.Color {
	r, g, b, a := odge.UnpackRGBA(c)
	return rl.NewColor(r, g, b, a)
}

func rect(r odge.Rect) rl.Rectangle {
	return rl.NewRectangle(float32(r.X), float32(r.Y), float32(r.W), float32(r.H))
}

// DrawImage implements odge.Renderer. img is a *Texture or any image.Image,
// which is uploaded on first use and cached until Unload.
func (r *Renderer) DrawImage(img odge.Image, dst, src odge.Rect, tint odge.Color) {
	if dst.Empty() || tint.Alpha() == 0 {
		return
	}
	t := r.texture(img)
	if t == nil || t.ID == 0 {
		return
	}
	if src.Empty() {
		src = odge.Rect{W: int(t.Width), H: int(t.Height)}
	}
	rl.DrawTexturePro(t.Texture2D, rect(src), rect(dst), rl.NewVector2(0, 0), 0, color(tint))
}

func (r *Renderer) texture(img odge.Image) *Texture {
	switch v := img.(type) {
	case nil:
		return nil
	case *Texture:
		return v
	case image.Image:
		t, ok := r.images[v]
		if !ok {
			t = LoadTexture(v)
			r.images[v] = t
		}
		return t
	default:
		return nil
	}
}

// DrawText implements odge.Renderer.
func (r *Renderer) DrawText(f odge.Font, text string, at odge.Point, tint odge.Color) {
	if text == "" || tint.Alpha() == 0 {
		return
	}
	ff := odge.FaceOf(f)
	key := textKey{face: ff.Face, text: text}
	e, ok := r.text[key]
	if !ok {
		img := odge.RasterizeText(ff, text)
		if img == nil {
			return
		}
		e = &textEntry{tex: LoadTexture(img)}
		r.text[key] = e
	}
	e.used = true
	rl.DrawTexture(e.tex.Texture2D, int32(at.X), int32(at.Y), color(tint))
}

// FillRect implements odge.Renderer.
func (r *Renderer) FillRect(dst odge.Rect, c odge.Color) {
	if dst.Empty() || c.Alpha() == 0 {
		return
	}
	rl.DrawRectangle(int32(dst.X), int32(dst.Y), int32(dst.W), int32(dst.H), color(c))
}

// EndFrame unloads text textures that were not drawn since the last call.
func (r *Renderer) EndFrame() {
	for k, e := range r.text {
		if !e.used {
			e.tex.Unload()
			delete(r.text, k)
			continue
		}
		e.used = false
	}
}

// Unload releases every cached texture.
func (r *Renderer) Unload() {
	for k, e := range r.text {
		e.tex.Unload()
		delete(r.text, k)
	}
	for k, t := range r.images {
		t.Unload()
		delete(r.images, k)
	}
}
