package odge_test

import (
	"testing"

	"github.com/go-theft-auto/odge"
	"github.com/go-theft-auto/odge/input"
)

func TestStyle_UpdateRegistersChange(t *testing.T) {
	s := odge.DefaultStyle()
	v := s.Version()
	if s.Changed() {
		t.Fatal("Expected a fresh style to be unchanged")
	}

	s.Update(func(s *odge.Style) { s.Padding = odge.Pad(odge.SpaceLG) })
	if !s.Changed() || s.Version() != v+1 {
		t.Errorf("Expected changed with version %d, got changed=%v version=%d", v+1, s.Changed(), s.Version())
	}
	s.AcceptChanges()
	if s.Changed() {
		t.Errorf("Expected AcceptChanges to clear the flag")
	}
}

func TestStyle_ChangeReachesEveryHolder(t *testing.T) {
	shared := odge.DefaultStyle()
	s := odge.NewControlStack()
	s.SetDrawAll(true)
	a := newMockControl("A", nil)
	b := newMockControl("B", nil)
	a.SetStyle(shared)
	b.SetStyle(shared)
	_ = s.Open(a)
	_ = s.Open(b)
	_ = s.Update(nil)

	changes := 0
	a.StyleChanged.Listen(func() { changes++ })
	b.StyleChanged.Listen(func() { changes++ })
	layoutsA, layoutsB := a.layouts, b.layouts

	shared.Update(func(s *odge.Style) { s.MaskColor = odge.ColorBlack })
	_ = s.Update(nil)

	if changes != 2 {
		t.Errorf("Expected StyleChanged on both holders, got %d", changes)
	}
	if a.layouts != layoutsA+1 || b.layouts != layoutsB+1 {
		t.Errorf("Expected one relayout each, got A=%d B=%d", a.layouts-layoutsA, b.layouts-layoutsB)
	}
	if shared.Changed() {
		t.Errorf("Expected the change accepted after the refresh")
	}

	_ = s.Update(nil)
	if changes != 2 {
		t.Errorf("Expected no repeat StyleChanged, got %d", changes)
	}
}

func TestStyle_CascadesToButtons(t *testing.T) {
	style := odge.DefaultStyle()
	ui, _ := newTestUI(t)
	m := odge.NewListMenu(style)
	b := odge.NewTextButton("x", style)
	m.Add(b)
	_ = ui.Controls.Open(m)
	_ = ui.Update()

	changed := 0
	b.StyleChanged.Listen(func() { changed++ })
	style.Update(func(s *odge.Style) { s.Padding = odge.Pad(odge.SpaceXL) })
	_ = ui.Update()

	if changed != 1 {
		t.Errorf("Expected the button to see the style change, got %d", changed)
	}
	if want := b.MinSize(); b.Size() != want {
		t.Errorf("Expected the button resized to %v, got %v", want, b.Size())
	}
}

func TestComponent_SetStyle(t *testing.T) {
	c := newMockControl("A", nil)
	c.Layout()
	fired := 0
	c.StyleChanged.Listen(func() { fired++ })

	c.SetStyle(c.Style())
	c.SetStyle(nil)
	if fired != 0 || c.IsMessy() {
		t.Errorf("Expected same or nil style to be ignored, got fired=%d messy=%v", fired, c.IsMessy())
	}
	c.SetStyle(odge.DefaultStyle())
	if fired != 1 || !c.IsMessy() {
		t.Errorf("Expected a new style to fire and mark messy, got fired=%d messy=%v", fired, c.IsMessy())
	}
}

func TestStyle_Clone(t *testing.T) {
	s := odge.DefaultStyle()
	s.RegisterChanges()
	c := s.Clone()
	if c.Version() != 0 || c.Changed() {
		t.Errorf("Expected a fresh history, got version=%d changed=%v", c.Version(), c.Changed())
	}
	c.SubmitKeys[0] = input.KeyZ
	if s.SubmitKeys[0] == input.KeyZ {
		t.Errorf("Expected Clone to copy the binding slices")
	}
}

func TestStyleContext_Get(t *testing.T) {
	c := odge.StyleContext[int]{Normal: 1, Active: 2, Header: 3, Footer: 4}
	tests := []struct {
		ctx  odge.ContextID
		want int
	}{
		{odge.ContextNormal, 1},
		{odge.ContextActive, 2},
		{odge.ContextHeader, 3},
		{odge.ContextFooter, 4},
		{odge.ContextID(42), 1},
	}
	for _, tt := range tests {
		if got := c.Get(tt.ctx); got != tt.want {
			t.Errorf("Get(%d): expected %d, got %d", tt.ctx, tt.want, got)
		}
	}
}

func TestStyle_FontFallback(t *testing.T) {
	s := &odge.Style{}
	if s.Font(odge.ContextNormal) == nil {
		t.Errorf("Expected a fallback font")
	}
}
