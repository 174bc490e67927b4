package odge_test

import (
	"testing"

	"github.com/go-theft-auto/odge"
)

func TestPopText_Motion(t *testing.T) {
	tests := []struct {
		motion odge.Motion
		wantY  int
	}{
		{odge.MotionStatic, 100},
		{odge.MotionRising, 95},
		{odge.MotionFalling, 105},
	}
	for _, tt := range tests {
		p := odge.NewPopText("+10", odge.Pt(10, 100), nil, odge.WithMotion(tt.motion))
		for range 5 {
			p.Update()
		}
		if got := p.Location(); got != odge.Pt(10, tt.wantY) {
			t.Errorf("Motion %d: expected (10, %d), got %v", tt.motion, tt.wantY, got)
		}
	}
}

func TestPopText_BounceSettles(t *testing.T) {
	p := odge.NewPopText("hop", odge.Pt(0, 50), nil, odge.WithMotion(odge.MotionBouncing), odge.WithLifetime(500))
	highest := 50
	for range 200 {
		p.Update()
		highest = min(highest, p.Location().Y)
	}
	if highest >= 50 {
		t.Errorf("Expected the text to hop above its origin")
	}
	if p.Location().Y != 50 {
		t.Errorf("Expected the bounce to settle at the origin, got %d", p.Location().Y)
	}
}

func TestPopText_BounceKeepsSnappedLocation(t *testing.T) {
	p := odge.NewPopText("hop", odge.Pt(0, 50), nil, odge.WithMotion(odge.MotionBouncing), odge.WithLifetime(500))
	p.SnapTo(odge.AnchorBottomRight, 800, 600)
	snapped := p.Location()
	if snapped == odge.Pt(0, 50) {
		t.Fatalf("Expected SnapTo to move the text")
	}

	p.Update()
	if got := p.Location(); got.X != snapped.X || got.Y >= snapped.Y {
		t.Errorf("Expected a hop above %v, got %v", snapped, got)
	}
	for range 200 {
		p.Update()
	}
	if got := p.Location(); got != snapped {
		t.Errorf("Expected the bounce to settle at %v, got %v", snapped, got)
	}
}

func TestPopText_Fade(t *testing.T) {
	p := odge.NewPopText("bye", odge.Point{}, nil)
	if p.Lifetime != odge.DefaultLifetime || !p.Fade {
		t.Fatalf("Expected default lifetime %d with fading, got %d %v", odge.DefaultLifetime, p.Lifetime, p.Fade)
	}
	if p.Opacity() != 1 {
		t.Errorf("Expected full opacity at start, got %v", p.Opacity())
	}
	for range odge.DefaultLifetime - odge.FadeFrames/2 {
		p.Update()
	}
	if got := p.Opacity(); got != 0.5 {
		t.Errorf("Expected opacity 0.5 halfway through the fade, got %v", got)
	}

	solid := odge.NewPopText("stay", odge.Point{}, nil, odge.WithFade(false), odge.WithLifetime(2))
	solid.Update()
	if solid.Opacity() != 1 {
		t.Errorf("Expected non-fading text to stay opaque, got %v", solid.Opacity())
	}
}

func TestPopText_InQueue(t *testing.T) {
	ui, _ := newTestUI(t, odge.WithPopUpUpdateAll(true))
	p := odge.NewPopText("saved", odge.Pt(0, 0), nil, odge.WithLifetime(3))
	timedOut := 0
	p.TimedOut.Listen(func() { timedOut++ })
	_ = ui.PopUps.Open(p)

	for range 3 {
		if err := ui.Update(); err != nil {
			t.Fatalf("Update: %v", err)
		}
	}
	if timedOut != 1 || !p.IsClosed() || ui.PopUps.Len() != 0 {
		t.Errorf("Expected the text to time out and leave, got timedOut=%d closed=%v len=%d",
			timedOut, p.IsClosed(), ui.PopUps.Len())
	}
}

func TestPopText_Draw(t *testing.T) {
	p := odge.NewPopText("hi", odge.Pt(3, 4), nil, odge.WithLifetime(0))
	r := &recordingRenderer{}
	p.Draw(r)
	if len(r.calls) != 0 {
		t.Errorf("Expected a fully faded text not to draw, got %v", r.calls)
	}

	p = odge.NewPopText("hi", odge.Pt(3, 4), nil)
	p.Draw(r)
	if got := r.texts(); len(got) != 1 || got[0] != "hi" {
		t.Errorf("Expected [hi], got %v", got)
	}
}
