package odge_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/go-theft-auto/odge"
)

func TestControlStack_Focus(t *testing.T) {
	var log []string
	s := odge.NewControlStack()
	a := newMockControl("A", &log)
	b := newMockControl("B", &log)
	c := newMockControl("C", &log)

	for _, w := range []*mockControl{a, b, c} {
		if err := s.Open(w); err != nil {
			t.Fatalf("Open(%s): %v", w.Name, err)
		}
	}
	want := []string{
		"A opened",
		"A focus lost", "B opened",
		"B focus lost", "C opened",
	}
	if !slices.Equal(log, want) {
		t.Fatalf("Expected %v, got %v", want, log)
	}

	// Closing a control below the top leaves focus alone.
	log = nil
	if err := b.Close(); err != nil {
		t.Fatalf("Close(B): %v", err)
	}
	if want := []string{"B closed"}; !slices.Equal(log, want) {
		t.Errorf("Expected %v, got %v", want, log)
	}
	if top, _ := s.Top(); top != odge.ControlWidget(c) {
		t.Errorf("Expected C on top, got %s", top.Base().Name)
	}

	// Closing the top hands focus down.
	log = nil
	if err := s.Close(c); err != nil {
		t.Fatalf("Close(C): %v", err)
	}
	if want := []string{"C closed", "A focus gained"}; !slices.Equal(log, want) {
		t.Errorf("Expected %v, got %v", want, log)
	}
	if !b.IsClosed() || b.IsOpened() || b.IsOwned() {
		t.Errorf("Expected B closed and unowned, got closed=%v opened=%v owned=%v",
			b.IsClosed(), b.IsOpened(), b.IsOwned())
	}
	if s.Len() != 1 {
		t.Errorf("Expected 1 control left, got %d", s.Len())
	}
}

func TestControlStack_SelfCloseHandsFocusDown(t *testing.T) {
	var log []string
	s := odge.NewControlStack()
	a := newMockControl("A", &log)
	c := newMockControl("C", &log)
	c.onUpdate = func() {
		if err := c.Close(); err != nil {
			t.Errorf("Close(C): %v", err)
		}
	}
	_ = s.Open(a)
	_ = s.Open(c)

	log = nil
	if err := s.Update(nil); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if c.updates != 1 || a.updates != 0 {
		t.Errorf("Expected only C updated, got A=%d C=%d", a.updates, c.updates)
	}
	if want := []string{"C closed", "A focus gained"}; !slices.Equal(log, want) {
		t.Errorf("Expected %v, got %v", want, log)
	}
	if s.Len() != 1 {
		t.Errorf("Expected 1 control left, got %d", s.Len())
	}

	if err := s.Update(nil); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if a.updates != 1 {
		t.Errorf("Expected A updated on the next frame, got %d", a.updates)
	}
}

func TestControlStack_Ownership(t *testing.T) {
	s1 := odge.NewControlStack()
	s2 := odge.NewControlStack()
	c := newMockControl("menu", nil)

	if err := c.Close(); !errors.Is(err, odge.ErrNotManaged) {
		t.Errorf("Expected ErrNotManaged closing an unopened control, got %v", err)
	}
	if err := s1.Open(c); err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := s2.Open(c); !errors.Is(err, odge.ErrAlreadyOwned) {
		t.Errorf("Expected ErrAlreadyOwned, got %v", err)
	}
	if err := s2.Close(c); !errors.Is(err, odge.ErrNotFound) {
		t.Errorf("Expected ErrNotFound closing through the wrong stack, got %v", err)
	}

	// A closed control can be opened again.
	if err := c.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := s2.Open(c); err != nil {
		t.Errorf("Expected reopen to succeed, got %v", err)
	}
	if !c.IsOpened() || c.IsClosed() {
		t.Errorf("Expected reopened control to be opened and not closed")
	}
}

func TestControlStack_UpdatesOnlyTop(t *testing.T) {
	ui, _ := newTestUI(t)
	a := newMockControl("A", nil)
	b := newMockControl("B", nil)
	_ = ui.Controls.Open(a)
	_ = ui.Controls.Open(b)

	for range 3 {
		if err := ui.Update(); err != nil {
			t.Fatalf("Update: %v", err)
		}
	}
	if a.updates != 0 {
		t.Errorf("Expected 0 updates for the lower control, got %d", a.updates)
	}
	if b.updates != 3 {
		t.Errorf("Expected 3 updates for the top control, got %d", b.updates)
	}
}

func TestControlStack_UpdateError(t *testing.T) {
	ui, _ := newTestUI(t)
	boom := errors.New("boom")
	c := newMockControl("A", nil)
	c.err = boom
	_ = ui.Controls.Open(c)

	if err := ui.Update(); !errors.Is(err, boom) {
		t.Errorf("Expected wrapped boom, got %v", err)
	}
}

func TestControlStack_CloseAll(t *testing.T) {
	var log []string
	s := odge.NewControlStack()
	_ = s.Open(newMockControl("A", nil))
	_ = s.Open(newMockControl("B", nil))
	a, _ := s.Find("A")
	b, _ := s.Find("B")
	a.Base().Closed.Listen(func() { log = append(log, "A closed") })
	a.AsControl().FocusGained.Listen(func() { log = append(log, "A focus gained") })
	b.Base().Closed.Listen(func() { log = append(log, "B closed") })

	s.CloseAll()

	if want := []string{"B closed", "A closed"}; !slices.Equal(log, want) {
		t.Errorf("Expected %v, got %v", want, log)
	}
	if s.Len() != 0 {
		t.Errorf("Expected empty stack, got %d", s.Len())
	}
}

func TestControlStack_Find(t *testing.T) {
	s := odge.NewControlStack()
	lower := newMockControl("menu", nil)
	upper := newMockControl("menu", nil)
	_ = s.Open(lower)
	_ = s.Open(upper)

	got, err := s.Find("menu")
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if got != odge.ControlWidget(upper) {
		t.Errorf("Expected the topmost match")
	}
	if _, err := s.Find("missing"); !errors.Is(err, odge.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
	if !s.Has("menu") || s.Has("missing") {
		t.Errorf("Has returned wrong results")
	}
	if !s.Contains(lower) {
		t.Errorf("Expected Contains(lower)")
	}
}

func TestControlStack_Draw(t *testing.T) {
	s := odge.NewControlStack()
	a := newMockControl("A", nil)
	b := newMockControl("B", nil)
	a.SetRect(odge.Rect{W: 10, H: 10})
	b.SetRect(odge.Rect{W: 10, H: 10})
	_ = s.Open(a)
	_ = s.Open(b)

	r := &recordingRenderer{}
	s.Draw(r)
	if a.draws != 0 || b.draws != 1 {
		t.Errorf("Expected only the top drawn, got A=%d B=%d", a.draws, b.draws)
	}

	s.SetDrawAll(true)
	r = &recordingRenderer{}
	s.Draw(r)
	if a.draws != 1 || b.draws != 2 {
		t.Errorf("Expected every control drawn, got A=%d B=%d", a.draws, b.draws)
	}
	mask := a.Style().MaskColor
	masked := 0
	for _, c := range r.calls {
		if c == "fill "+rectString(a.Rect())+" "+colorString(mask) {
			masked++
		}
	}
	if masked != 1 {
		t.Errorf("Expected one mask over the lower control, got %d in %v", masked, r.calls)
	}
}

func TestControlStack_RefreshLaysOutMessy(t *testing.T) {
	s := odge.NewControlStack()
	c := newMockControl("A", nil)
	_ = s.Open(c)

	_ = s.Update(nil)
	if c.layouts != 1 {
		t.Fatalf("Expected 1 layout after open, got %d", c.layouts)
	}
	_ = s.Update(nil)
	if c.layouts != 1 {
		t.Errorf("Expected a clean control not to lay out again, got %d", c.layouts)
	}
	c.Move(odge.Pt(1, 0))
	_ = s.Update(nil)
	if c.layouts != 2 {
		t.Errorf("Expected a moved control to lay out, got %d", c.layouts)
	}
}
