package odge_test

import (
	"testing"

	"github.com/go-theft-auto/odge"
)

func TestComponent_MessyFlag(t *testing.T) {
	c := newMockControl("A", nil)
	if !c.IsMessy() {
		t.Fatal("Expected a new component to be messy")
	}
	c.Layout()
	if c.IsMessy() {
		t.Fatal("Expected Layout to clear the flag")
	}

	c.SetLocation(c.Location())
	if c.IsMessy() {
		t.Errorf("Expected moving to the same place to keep the component clean")
	}

	moved, resized := 0, 0
	c.Moved.Listen(func() { moved++ })
	c.Resized.Listen(func() { resized++ })
	c.SetRect(odge.Rect{X: 5, Y: 6, W: 7, H: 8})
	if !c.IsMessy() || moved != 1 || resized != 1 {
		t.Errorf("Expected messy with one Moved and one Resized, got messy=%v moved=%d resized=%d",
			c.IsMessy(), moved, resized)
	}
}

func TestComponent_MinSize(t *testing.T) {
	c := newMockControl("A", nil)
	c.SetMinSizeFunc(func() odge.Point { return odge.Pt(50, 20) })

	c.SetSize(odge.Pt(10, 100))
	if got := c.Size(); got != odge.Pt(50, 100) {
		t.Errorf("Expected (50, 100), got %v", got)
	}

	c.SetMinSizeFunc(func() odge.Point { return odge.Pt(60, 120) })
	c.Layout()
	if got := c.Size(); got != odge.Pt(60, 120) {
		t.Errorf("Expected Layout to grow to (60, 120), got %v", got)
	}
}

func TestTextButton_MinSize(t *testing.T) {
	b := odge.NewTextButton("Start", nil)
	text := odge.DefaultFont().Measure("Start")
	want := text.Add(odge.Pt(2*odge.SpaceMD, 2*odge.SpaceMD))
	if got := b.MinSize(); got != want {
		t.Errorf("Expected %v, got %v", want, got)
	}

	b.SetText("Start a new game")
	if !b.IsMessy() {
		t.Errorf("Expected SetText to mark the button messy")
	}
	if b.MinSize().X <= want.X {
		t.Errorf("Expected a longer label to widen the button")
	}
}

func TestEvent_ListenAndEmit(t *testing.T) {
	var e odge.Event
	var order []int
	e.Listen(func() { order = append(order, 1) })
	e.Listen(nil)
	e.Listen(func() {
		order = append(order, 2)
		e.Listen(func() { order = append(order, 3) })
	})

	e.Emit()
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("Expected [1 2], got %v", order)
	}
	if e.Len() != 3 {
		t.Errorf("Expected 3 handlers, got %d", e.Len())
	}
	e.Reset()
	e.Emit()
	if len(order) != 2 {
		t.Errorf("Expected no calls after Reset, got %v", order)
	}
}
