// Package opengl provides an OpenGL 4.1 backend for odge.
package opengl

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"golang.org/x/image/font"

	"github.com/go-theft-auto/odge"
)

type textKey struct {
	face font.Face
	text string
}

type textEntry struct {
	tex  *Texture
	used bool
}

// Renderer implements odge.Renderer using OpenGL.
//
// Draw calls are recorded into a DrawList and submitted in one pass by
// Flush. Text is rasterised once per (face, string) and kept while it is
// drawn every frame.
type Renderer struct {
	shader    uint32
	vao, vbo  uint32
	ebo       uint32
	projLoc   int32
	texLoc    int32
	useTexLoc int32
	width     int
	height    int

	dl     *odge.DrawList
	text   map[textKey]*textEntry
	images map[image.Image]*Texture
}

var _ odge.Renderer = (*Renderer)(nil)

// NewRenderer creates a new OpenGL renderer. A GL context must be current.
func NewRenderer(width, height int) (*Renderer, error) {
	r := &Renderer{
		width:  width,
		height: height,
		dl:     odge.AcquireDrawList(),
		text:   make(map[textKey]*textEntry),
		images: make(map[image.Image]*Texture),
	}

	var err error
	r.shader, err = createShaderProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader: %w", err)
	}

	r.projLoc = gl.GetUniformLocation(r.shader, gl.Str("projection\x00"))
	r.texLoc = gl.GetUniformLocation(r.shader, gl.Str("image\x00"))
	r.useTexLoc = gl.GetUniformLocation(r.shader, gl.Str("useTexture\x00"))

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)

	// Vertex layout: Pos (2 floats) + TexCoord (2 floats) + Color (1 uint32)
	stride := int32(unsafe.Sizeof(odge.Vertex{}))

	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)

	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, unsafe.Offsetof(odge.Vertex{}.TexCoord))
	gl.EnableVertexAttribArray(1)

	// Color attribute (normalized uint8x4)
	gl.VertexAttribPointerWithOffset(2, 4, gl.UNSIGNED_BYTE, true, stride, unsafe.Offsetof(odge.Vertex{}.Color))
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)

	return r, nil
}

// Resize updates the viewport size.
func (r *Renderer) Resize(width, height int) {
	r.width = width
	r.height = height
}

// DrawImage implements odge.Renderer. img is a *Texture or any image.Image,
// which is uploaded on first use and cached until Delete.
func (r *Renderer) DrawImage(img odge.Image, dst, src odge.Rect, tint odge.Color) {
	t := r.texture(img)
	if t == nil {
		return
	}
	r.dl.AddImage(t.ID, odge.Pt(t.Width, t.Height), dst, src, tint)
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
			t = NewTexture(v)
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
		e = &textEntry{tex: NewTexture(img)}
		r.text[key] = e
	}
	e.used = true
	size := odge.Pt(e.tex.Width, e.tex.Height)
	r.dl.AddImage(e.tex.ID, size, odge.Rect{X: at.X, Y: at.Y, W: size.X, H: size.Y}, odge.Rect{}, tint)
}

// FillRect implements odge.Renderer.
func (r *Renderer) FillRect(dst odge.Rect, c odge.Color) {
	r.dl.AddRect(dst, c)
}

// Flush submits everything drawn since the last Flush and starts a new frame.
func (r *Renderer) Flush() error {
	err := r.render(r.dl)
	r.dl.Clear()

	for k, e := range r.text {
		if !e.used {
			e.tex.Delete()
			delete(r.text, k)
			continue
		}
		e.used = false
	}
	return err
}

// render draws a DrawList.
func (r *Renderer) render(dl *odge.DrawList) error {
	if dl == nil || len(dl.VtxBuffer) == 0 {
		return nil
	}

	dl.Finalize()

	// Save GL state
	var lastProgram int32
	var lastBlendSrc, lastBlendDst int32
	var lastScissorBox [4]int32
	var blendEnabled, depthEnabled, cullEnabled, scissorEnabled bool

	gl.GetIntegerv(gl.CURRENT_PROGRAM, &lastProgram)
	gl.GetIntegerv(gl.BLEND_SRC_ALPHA, &lastBlendSrc)
	gl.GetIntegerv(gl.BLEND_DST_ALPHA, &lastBlendDst)
	gl.GetIntegerv(gl.SCISSOR_BOX, &lastScissorBox[0])
	blendEnabled = gl.IsEnabled(gl.BLEND)
	depthEnabled = gl.IsEnabled(gl.DEPTH_TEST)
	cullEnabled = gl.IsEnabled(gl.CULL_FACE)
	scissorEnabled = gl.IsEnabled(gl.SCISSOR_TEST)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.SCISSOR_TEST)

	gl.UseProgram(r.shader)

	proj := orthoMatrix(0, float32(r.width), float32(r.height), 0, -1, 1)
	gl.UniformMatrix4fv(r.projLoc, 1, false, &proj[0])

	gl.ActiveTexture(gl.TEXTURE0)
	gl.Uniform1i(r.texLoc, 0)

	gl.BindVertexArray(r.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(dl.VtxBuffer)*int(unsafe.Sizeof(odge.Vertex{})),
		gl.Ptr(dl.VtxBuffer), gl.STREAM_DRAW)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(dl.IdxBuffer)*2,
		gl.Ptr(dl.IdxBuffer), gl.STREAM_DRAW)

	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount == 0 {
			continue
		}

		// Clip rectangle in OpenGL coordinates (Y flipped)
		x0 := max(cmd.ClipRect[0], 0)
		y0 := max(cmd.ClipRect[1], 0)
		x1 := min(cmd.ClipRect[2], float32(r.width))
		y1 := min(cmd.ClipRect[3], float32(r.height))
		if x1 <= x0 || y1 <= y0 {
			continue
		}
		gl.Scissor(int32(x0), int32(float32(r.height)-y1), int32(x1-x0), int32(y1-y0))

		if cmd.TextureID != 0 {
			gl.BindTexture(gl.TEXTURE_2D, cmd.TextureID)
			gl.Uniform1i(r.useTexLoc, 1)
		} else {
			gl.Uniform1i(r.useTexLoc, 0)
		}

		gl.DrawElementsBaseVertexWithOffset(
			gl.TRIANGLES,
			int32(cmd.ElemCount),
			gl.UNSIGNED_SHORT,
			uintptr(cmd.IndexOffset)*2,
			int32(cmd.VertexOffset),
		)
	}

	// Restore GL state
	gl.UseProgram(uint32(lastProgram))
	gl.BlendFunc(uint32(lastBlendSrc), uint32(lastBlendDst))
	setEnabled(gl.BLEND, blendEnabled)
	setEnabled(gl.DEPTH_TEST, depthEnabled)
	setEnabled(gl.CULL_FACE, cullEnabled)
	setEnabled(gl.SCISSOR_TEST, scissorEnabled)
	gl.Scissor(lastScissorBox[0], lastScissorBox[1], lastScissorBox[2], lastScissorBox[3])

	gl.BindVertexArray(0)

	return nil
}

func setEnabled(capability uint32, on bool) {
	if on {
		gl.Enable(capability)
	} else {
		gl.Disable(capability)
	}
}

// Delete releases OpenGL resources.
func (r *Renderer) Delete() {
	for k, e := range r.text {
		e.tex.Delete()
		delete(r.text, k)
	}
	for k, t := range r.images {
		t.Delete()
		delete(r.images, k)
	}
	odge.ReleaseDrawList(r.dl)
	r.dl = nil
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.shader != 0 {
		gl.DeleteProgram(r.shader)
	}
}
