package odge_test

import (
	"image"
	"testing"

	"github.com/go-theft-auto/odge"
	"github.com/go-theft-auto/odge/input"
)

func newFilledGallery(n, cols int, opts ...odge.Option) *odge.GalleryMenu {
	m := odge.NewGalleryMenu(nil, append([]odge.Option{odge.WithColumns(cols)}, opts...)...)
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	for range n {
		m.Add(odge.NewImageButton(img, odge.Rect{}, nil))
	}
	return m
}

func TestGalleryMenu_Navigation(t *testing.T) {
	ui, kb := newTestUI(t)
	m := newFilledGallery(5, 2, odge.WithWrapAround(false))
	m.SetRect(odge.Rect{W: 200, H: 200})
	_ = ui.Controls.Open(m)

	steps := []struct {
		key  input.Key
		want int
	}{
		{input.KeyDown, 2},
		{input.KeyDown, 4},
		{input.KeyDown, 4}, // no row below
		{input.KeyRight, 4},
		{input.KeyUp, 2},
		{input.KeyRight, 3},
		{input.KeyDown, 3}, // row below has no column 1
		{input.KeyLeft, 2},
		{input.KeyUp, 0},
		{input.KeyUp, 0},
	}
	for i, s := range steps {
		tap(t, ui, kb, s.key)
		if m.SelectedIndex() != s.want {
			t.Errorf("Step %d (%v): expected index %d, got %d", i, s.key, s.want, m.SelectedIndex())
		}
	}
}

func TestGalleryMenu_Layout(t *testing.T) {
	m := newFilledGallery(5, 2)
	m.SetRect(odge.Rect{W: 200, H: 200})
	m.Layout()

	// 10px images plus 8px padding on each side.
	if got := m.CellSize(); got != odge.Pt(26, 26) {
		t.Fatalf("Expected cell 26x26, got %v", got)
	}
	p := m.Panel()
	want := odge.Pt(p.X+26+odge.SpaceSM, p.Y+26+odge.SpaceSM)
	if got := m.At(3).Base().Location(); got != want {
		t.Errorf("Expected button 3 at %v, got %v", want, got)
	}
}

func TestGalleryMenu_MinSize(t *testing.T) {
	m := newFilledGallery(5, 2)
	m.Layout()
	// Two cells, one gap and padding; one row high.
	want := odge.Pt(2*26+odge.SpaceSM+2*odge.SpaceMD, 26+2*odge.SpaceMD)
	if got := m.MinSize(); got != want {
		t.Errorf("Expected min size %v, got %v", want, got)
	}
	if m.Size().X < want.X || m.Size().Y < want.Y {
		t.Errorf("Expected Layout to grow the menu to %v, got %v", want, m.Size())
	}
}

func TestGalleryMenu_ScrollClamps(t *testing.T) {
	m := newFilledGallery(12, 2)
	m.SetRect(odge.Rect{W: 200, H: 26 + 2*odge.SpaceMD})
	m.Layout()
	m.SetSelectedIndex(11)

	for range 50 {
		m.ScrollOptions()
	}
	// Six rows of 26px with 4px gaps; the last row ends 176px below the top.
	if m.Scroll() != 150 {
		t.Errorf("Expected scroll 150, got %d", m.Scroll())
	}
	p := m.Panel()
	r := m.At(11).Base().Rect()
	if r.Y < p.Y || r.Bottom() > p.Bottom() {
		t.Errorf("Expected the selection inside %v, got %v", p, r)
	}
}

func TestImageButton_Tint(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	b := odge.NewImageButton(img, odge.Rect{}, nil)
	b.SetRect(odge.Rect{W: 26, H: 26})

	r := &recordingRenderer{}
	b.Draw(r)
	if r.count("image") != 1 || r.count("image "+rectString(odge.Rect{X: 8, Y: 8, W: 10, H: 10})+" "+colorString(odge.ColorGray)) != 1 {
		t.Errorf("Expected one gray image, got %v", r.calls)
	}

	b.SetSelected(true)
	r = &recordingRenderer{}
	b.Draw(r)
	if r.count("image "+rectString(odge.Rect{X: 8, Y: 8, W: 10, H: 10})+" "+colorString(odge.ColorWhite)) != 1 {
		t.Errorf("Expected one white image when selected, got %v", r.calls)
	}
}
