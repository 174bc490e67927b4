package odge_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/go-theft-auto/odge"
	"github.com/go-theft-auto/odge/input"
)

// fakeKeyboard is a KeyboardSource driven by the test.
type fakeKeyboard struct {
	state input.KeyboardState
}

func (f *fakeKeyboard) KeyboardState() input.KeyboardState { return f.state }

func (f *fakeKeyboard) hold(keys ...input.Key) { f.state = input.NewKeyboardState(keys...) }

// newTestUI returns a UI on a fake keyboard with navigation registered.
func newTestUI(t *testing.T, opts ...odge.UIOption) (*odge.UI, *fakeKeyboard) {
	t.Helper()
	kb := &fakeKeyboard{}
	in, err := input.New(kb, nil)
	if err != nil {
		t.Fatalf("input.New: %v", err)
	}
	ui, err := odge.New(in, opts...)
	if err != nil {
		t.Fatalf("odge.New: %v", err)
	}
	return ui, kb
}

// tap presses key for one frame and releases it the next.
func tap(t *testing.T, ui *odge.UI, kb *fakeKeyboard, key input.Key) {
	t.Helper()
	kb.hold(key)
	if err := ui.Update(); err != nil {
		t.Fatalf("Update with %v held: %v", key, err)
	}
	kb.hold()
	if err := ui.Update(); err != nil {
		t.Fatalf("Update after releasing %v: %v", key, err)
	}
}

// recordingRenderer records draw calls as strings.
type recordingRenderer struct {
	calls []string
}

func (r *recordingRenderer) DrawImage(img odge.Image, dst, src odge.Rect, tint odge.Color) {
	r.calls = append(r.calls, fmt.Sprintf("image %v %08x", dst, uint32(tint)))
}

func (r *recordingRenderer) DrawText(f odge.Font, text string, at odge.Point, tint odge.Color) {
	r.calls = append(r.calls, "text "+text)
}

func (r *recordingRenderer) FillRect(dst odge.Rect, c odge.Color) {
	r.calls = append(r.calls, fmt.Sprintf("fill %v %08x", dst, uint32(c)))
}

func (r *recordingRenderer) texts() []string {
	var out []string
	for _, c := range r.calls {
		if text, ok := strings.CutPrefix(c, "text "); ok {
			out = append(out, text)
		}
	}
	return out
}

func (r *recordingRenderer) count(prefix string) int {
	n := 0
	for _, c := range r.calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

// mockControl counts calls and records its events into a shared log.
type mockControl struct {
	odge.Control
	updates int
	layouts int
	draws   int
	err     error

	// onUpdate runs inside Update, after counting.
	onUpdate func()
}

func newMockControl(name string, log *[]string) *mockControl {
	m := &mockControl{}
	m.Init(name, nil)
	if log != nil {
		m.Opened.Listen(func() { *log = append(*log, name+" opened") })
		m.Closed.Listen(func() { *log = append(*log, name+" closed") })
		m.FocusGained.Listen(func() { *log = append(*log, name+" focus gained") })
		m.FocusLost.Listen(func() { *log = append(*log, name+" focus lost") })
	}
	return m
}

func (m *mockControl) Update(in *input.Input) error {
	m.updates++
	if m.onUpdate != nil {
		m.onUpdate()
	}
	return m.err
}

func (m *mockControl) Layout() {
	m.layouts++
	m.Control.Layout()
}

func (m *mockControl) Draw(r odge.Renderer) {
	m.draws++
	m.Control.Draw(r)
}

// mockPopUp counts updates.
type mockPopUp struct {
	odge.PopUp
	updates int
}

func newMockPopUp(name string, lifetime int) *mockPopUp {
	p := &mockPopUp{}
	p.Init(name, nil)
	p.Lifetime = lifetime
	return p
}

func (p *mockPopUp) Update() {
	p.updates++
	p.Tick()
}

func rectString(r odge.Rect) string { return fmt.Sprintf("%v", r) }

func colorString(c odge.Color) string { return fmt.Sprintf("%08x", uint32(c)) }
