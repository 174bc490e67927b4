package odge_test

import (
	"testing"

	"github.com/go-theft-auto/odge"
)

func TestNoteBox_Defaults(t *testing.T) {
	n := odge.NewNoteBox("Saved", nil)
	if n.Lifetime != odge.DefaultNoteLifetime {
		t.Errorf("Expected lifetime %d, got %d", odge.DefaultNoteLifetime, n.Lifetime)
	}
	if !n.Fade {
		t.Error("Expected fading on by default")
	}
	if n.Name != "note" {
		t.Errorf("Expected name note, got %q", n.Name)
	}
	// "Saved" is 35x13 in the built-in font, plus 8px padding.
	if got := n.Size(); got != odge.Pt(51, 29) {
		t.Errorf("Expected size 51x29, got %v", got)
	}

	n = odge.NewNoteBox("Saved", nil, odge.WithLifetime(20), odge.WithFade(false))
	if n.Lifetime != 20 || n.Fade {
		t.Errorf("Expected lifetime 20 without fade, got %d fade=%v", n.Lifetime, n.Fade)
	}
}

func TestNoteBox_DrawFades(t *testing.T) {
	n := odge.NewNoteBox("Quest updated", nil, odge.WithLifetime(odge.FadeFrames/2))

	r := &recordingRenderer{}
	n.Draw(r)
	if len(r.calls) == 0 {
		t.Fatal("Expected draw calls")
	}
	want := "fill " + rectString(n.Rect()) + " " + colorString(odge.RGBA(20, 20, 20, 100))
	if r.calls[0] != want {
		t.Errorf("Expected %q, got %q", want, r.calls[0])
	}
	if got := r.texts(); len(got) != 1 || got[0] != "Quest updated" {
		t.Errorf("Expected the note text, got %v", got)
	}
}

func TestNoteBox_ExpiresInQueue(t *testing.T) {
	q := odge.NewPopUpQueue()
	n := odge.NewNoteBox("Saved", nil, odge.WithLifetime(3))
	timedOut := 0
	n.TimedOut.Listen(func() { timedOut++ })
	if err := q.Open(n); err != nil {
		t.Fatalf("Open: %v", err)
	}

	for range 3 {
		q.Update()
	}
	if timedOut != 1 {
		t.Errorf("Expected TimedOut once, got %d", timedOut)
	}
	if q.Len() != 0 || !n.IsClosed() {
		t.Errorf("Expected the note removed and closed, got len %d closed %v", q.Len(), n.IsClosed())
	}

	r := &recordingRenderer{}
	n.SetText("")
	n.Draw(r)
	if r.count("text") != 0 {
		t.Error("Expected no text drawn for an empty note")
	}
}
