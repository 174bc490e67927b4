package odge_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/go-theft-auto/odge"
	"github.com/go-theft-auto/odge/input"
)

func TestSelectWheel_RejectsBadIndex(t *testing.T) {
	for _, i := range []int{-1, 3} {
		_, err := odge.NewSelectWheel([]string{"Easy", "Normal", "Hard"}, i, nil)
		if !errors.Is(err, odge.ErrOutOfRange) {
			t.Errorf("Index %d: expected ErrOutOfRange, got %v", i, err)
		}
	}
	if _, err := odge.NewSelectWheel([]string{}, 0, nil); !errors.Is(err, odge.ErrOutOfRange) {
		t.Errorf("Expected ErrOutOfRange for no options, got %v", err)
	}
}

func TestSelectWheel_Navigation(t *testing.T) {
	tests := []struct {
		name string
		opts []odge.Option
		keys []input.Key
		want string
	}{
		{"right", nil, []input.Key{input.KeyRight}, "Hard"},
		{"left", nil, []input.Key{input.KeyLeft}, "Easy"},
		{"stops at end", nil, []input.Key{input.KeyRight, input.KeyRight, input.KeyRight}, "Hard"},
		{"stops at start", nil, []input.Key{input.KeyDown, input.KeyDown}, "Easy"},
		{"up increases", nil, []input.Key{input.KeyUp}, "Hard"},
		{"wraps forward", []odge.Option{odge.WithWrapAround(true)}, []input.Key{input.KeyRight, input.KeyRight}, "Easy"},
		{"wraps back", []odge.Option{odge.WithWrapAround(true)}, []input.Key{input.KeyLeft, input.KeyLeft}, "Hard"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui, kb := newTestUI(t)
			w, err := odge.NewSelectWheel([]string{"Easy", "Normal", "Hard"}, 1, nil, tt.opts...)
			if err != nil {
				t.Fatalf("NewSelectWheel: %v", err)
			}
			_ = ui.Controls.Open(w)
			for _, k := range tt.keys {
				tap(t, ui, kb, k)
			}
			if got := w.Value(); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestSelectWheel_ValueChanged(t *testing.T) {
	ui, kb := newTestUI(t)
	w, _ := odge.NewSelectWheel([]int{1, 2, 4, 8}, 0, nil)
	changed := 0
	w.ValueChanged.Listen(func() { changed++ })
	_ = ui.Controls.Open(w)

	tap(t, ui, kb, input.KeyLeft) // already at the start
	if changed != 0 {
		t.Errorf("Expected no change at the start, got %d", changed)
	}
	tap(t, ui, kb, input.KeyRight)
	tap(t, ui, kb, input.KeyRight)
	if changed != 2 || w.Value() != 4 {
		t.Errorf("Expected 2 changes ending on 4, got %d ending on %d", changed, w.Value())
	}

	if err := w.SetSelectedIndex(3); err != nil {
		t.Fatalf("SetSelectedIndex: %v", err)
	}
	if changed != 2 || w.SelectedIndex() != 3 {
		t.Errorf("Expected a silent move to 3, got index %d after %d changes", w.SelectedIndex(), changed)
	}
	if err := w.SetSelectedIndex(4); !errors.Is(err, odge.ErrOutOfRange) {
		t.Errorf("Expected ErrOutOfRange, got %v", err)
	}
}

func TestSelectWheel_SubmitAndCancel(t *testing.T) {
	ui, kb := newTestUI(t)
	w, _ := odge.NewSelectWheel([]string{"On", "Off"}, 0, nil)
	var log []string
	w.Submitted.Listen(func() { log = append(log, "submitted") })
	w.Canceled.Listen(func() { log = append(log, "canceled") })
	_ = ui.Controls.Open(w)

	tap(t, ui, kb, input.KeyEnter)
	tap(t, ui, kb, input.KeyEscape)
	if !slices.Equal(log, []string{"submitted", "canceled"}) {
		t.Errorf("Expected [submitted canceled], got %v", log)
	}
	if !w.IsClosed() {
		t.Error("Expected cancel to close the wheel")
	}
}

func TestSelectWheel_DrawPrompts(t *testing.T) {
	w, _ := odge.NewSelectWheel([]string{"Easy", "Normal", "Hard"}, 0, nil)
	w.SetRect(odge.Rect{W: 200, H: 30})

	r := &recordingRenderer{}
	w.Draw(r)
	if got := r.texts(); !slices.Equal(got, []string{"Easy", odge.DefaultRightPrompt}) {
		t.Errorf("Expected only the right prompt at the start, got %q", got)
	}

	_ = w.SetSelectedIndex(1)
	r = &recordingRenderer{}
	w.Draw(r)
	if got := r.texts(); !slices.Equal(got, []string{"Normal", odge.DefaultLeftPrompt, odge.DefaultRightPrompt}) {
		t.Errorf("Expected both prompts in the middle, got %q", got)
	}

	w.SetPrompts("", ">")
	r = &recordingRenderer{}
	w.Draw(r)
	if got := r.texts(); !slices.Equal(got, []string{"Normal", ">"}) {
		t.Errorf("Expected an empty prompt to be skipped, got %q", got)
	}
}

func TestNumericWheel_Clamps(t *testing.T) {
	w := odge.NewNumericWheel(0, 10, 1, 42, nil)
	if w.Value() != 10 {
		t.Errorf("Expected initial value clamped to 10, got %d", w.Value())
	}
	w.SetValue(-5)
	if w.Value() != 0 {
		t.Errorf("Expected SetValue clamped to 0, got %d", w.Value())
	}

	w.SetValue(7)
	w.SetRange(5, 2)
	if w.Min() != 2 || w.Max() != 5 {
		t.Errorf("Expected the range swapped to [2, 5], got [%d, %d]", w.Min(), w.Max())
	}
	if w.Value() != 5 {
		t.Errorf("Expected the value clamped into the new range, got %d", w.Value())
	}
}

func TestNumericWheel_Step(t *testing.T) {
	w := odge.NewNumericWheel(0, 10, 4, 0, nil)
	var log []string
	w.Incremented.Listen(func() { log = append(log, "inc") })
	w.Decremented.Listen(func() { log = append(log, "dec") })

	steps := []struct {
		op   func()
		want int
	}{
		{w.Increment, 4},
		{w.Increment, 8},
		{w.Increment, 8}, // 12 is past Max
		{w.Decrement, 4},
		{w.Decrement, 0},
		{w.Decrement, 0},
	}
	for i, s := range steps {
		s.op()
		if w.Value() != s.want {
			t.Errorf("Step %d: expected %d, got %d", i, s.want, w.Value())
		}
	}
	if want := []string{"inc", "inc", "dec", "dec"}; !slices.Equal(log, want) {
		t.Errorf("Expected %v, got %v", want, log)
	}

	w.Step = 0
	w.Increment()
	if w.Value() != 1 {
		t.Errorf("Expected a zero step to move by 1, got %d", w.Value())
	}
}

func TestNumericWheel_WrapAround(t *testing.T) {
	w := odge.NewNumericWheel(1, 3, 1, 3, nil, odge.WithWrapAround(true))
	w.Increment()
	if w.Value() != 1 {
		t.Errorf("Expected wrap to 1, got %d", w.Value())
	}
	w.Decrement()
	if w.Value() != 3 {
		t.Errorf("Expected wrap to 3, got %d", w.Value())
	}
}

func TestNumericWheel_Keys(t *testing.T) {
	ui, kb := newTestUI(t)
	w := odge.NewNumericWheel(0, 100, 10, 50, nil)
	_ = ui.Controls.Open(w)

	keys := []struct {
		key  input.Key
		want int
	}{
		{input.KeyRight, 60},
		{input.KeyUp, 70},
		{input.KeyDown, 60},
		{input.KeyA, 50},
	}
	for _, k := range keys {
		tap(t, ui, kb, k.key)
		if w.Value() != k.want {
			t.Errorf("After %v: expected %d, got %d", k.key, k.want, w.Value())
		}
	}
}

func TestNumericWheel_MinSize(t *testing.T) {
	w := odge.NewNumericWheel(0, 100, 1, 0, nil)

	// "100" plus both 3-glyph prompts in the 7x13 font, plus padding.
	if got := w.MinSize(); got != odge.Pt(79, 29) {
		t.Errorf("Expected 79x29, got %v", got)
	}
}
