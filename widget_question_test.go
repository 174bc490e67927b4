package odge_test

import (
	"testing"

	"github.com/go-theft-auto/odge"
	"github.com/go-theft-auto/odge/input"
)

func TestQuestionBox_Defaults(t *testing.T) {
	q := odge.NewQuestionBox("Save?", nil, nil, nil)
	if !q.AutoClose {
		t.Error("Expected AutoClose on by default")
	}
	if q.Answer() != odge.AnswerNone {
		t.Errorf("Expected no answer yet, got %d", q.Answer())
	}
	if q.YesButton().AsButton().IsSelected() || !q.NoButton().AsButton().IsSelected() {
		t.Error("Expected No selected at first")
	}
	if got := q.YesButton().Base().Name; got != "Yes" {
		t.Errorf("Expected default Yes button, got %q", got)
	}
}

func TestQuestionBox_Answers(t *testing.T) {
	tests := []struct {
		name string
		keys []input.Key
		want odge.Answer
	}{
		{"yes", []input.Key{input.KeyLeft, input.KeyEnter}, odge.AnswerYes},
		{"no by default", []input.Key{input.KeyEnter}, odge.AnswerNo},
		{"back to no", []input.Key{input.KeyA, input.KeyD, input.KeySpace}, odge.AnswerNo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui, kb := newTestUI(t)
			yes := odge.NewTextButton("Sure", nil)
			no := odge.NewTextButton("Nope", nil)
			q := odge.NewQuestionBox("Quit?", yes, no, nil)

			var log []string
			yes.Submitted.Listen(func() { log = append(log, "yes") })
			no.Submitted.Listen(func() { log = append(log, "no") })
			q.Submitted.Listen(func() { log = append(log, "box") })
			_ = ui.Controls.Open(q)

			for _, k := range tt.keys {
				tap(t, ui, kb, k)
			}
			if q.Answer() != tt.want {
				t.Errorf("Expected answer %d, got %d", tt.want, q.Answer())
			}
			first := "no"
			if tt.want == odge.AnswerYes {
				first = "yes"
			}
			if len(log) != 2 || log[0] != first || log[1] != "box" {
				t.Errorf("Expected [%s box], got %v", first, log)
			}
			if !q.IsClosed() {
				t.Error("Expected the box to close after answering")
			}
		})
	}
}

func TestQuestionBox_CancelSelectsNo(t *testing.T) {
	ui, kb := newTestUI(t)
	q := odge.NewQuestionBox("Quit?", nil, nil, nil)
	canceled := 0
	q.Canceled.Listen(func() { canceled++ })
	_ = ui.Controls.Open(q)

	tap(t, ui, kb, input.KeyLeft)
	if !q.YesButton().AsButton().IsSelected() {
		t.Fatal("Expected Yes selected after left")
	}
	tap(t, ui, kb, input.KeyEscape)
	if canceled != 1 || !q.IsClosed() {
		t.Errorf("Expected one cancel and a closed box, got canceled=%d closed=%v", canceled, q.IsClosed())
	}
	if !q.NoButton().AsButton().IsSelected() || q.YesButton().AsButton().IsSelected() {
		t.Error("Expected cancel to move the selection back to No")
	}
	if q.Answer() != odge.AnswerNone {
		t.Errorf("Expected no answer after cancel, got %d", q.Answer())
	}
}

func TestQuestionBox_StaysOpenWithoutAutoClose(t *testing.T) {
	ui, kb := newTestUI(t)
	q := odge.NewQuestionBox("Again?", nil, nil, nil)
	q.AutoClose = false
	_ = ui.Controls.Open(q)

	tap(t, ui, kb, input.KeyEnter)
	if q.IsClosed() || q.Answer() != odge.AnswerNo {
		t.Errorf("Expected an open box answered No, got closed=%v answer=%d", q.IsClosed(), q.Answer())
	}
}

func TestQuestionBox_Layout(t *testing.T) {
	q := odge.NewQuestionBox("Continue?", nil, nil, nil)

	// "Yes" is 21x13 and "No" 14x13 in the built-in font, plus 8px padding.
	if got := q.MinSize(); got != odge.Pt(87, 62) {
		t.Errorf("Expected min size 87x62, got %v", got)
	}

	q.SetRect(odge.Rect{W: 300, H: 100})
	q.Layout()
	if got := q.YesButton().Base().Location(); got != odge.Pt(8, 63) {
		t.Errorf("Expected Yes at (8, 63), got %v", got)
	}
	if got := q.NoButton().Base().Location(); got != odge.Pt(262, 63) {
		t.Errorf("Expected No at (262, 63), got %v", got)
	}

	q.ButtonsTogether = true
	q.Layout()
	if got := q.YesButton().Base().Location().X; got != 111 {
		t.Errorf("Expected Yes at x=111 when together, got %d", got)
	}
	if got := q.NoButton().Base().Location().X; got != 152 {
		t.Errorf("Expected No at x=152 when together, got %d", got)
	}
}

func TestQuestionBox_Draw(t *testing.T) {
	q := odge.NewQuestionBox("Quit?", nil, nil, nil)
	q.SetRect(odge.Rect{W: 200, H: 80})
	q.Layout()

	r := &recordingRenderer{}
	q.Draw(r)
	texts := r.texts()
	if len(texts) != 3 || texts[0] != "Quit?" || texts[1] != "Yes" || texts[2] != "No" {
		t.Errorf("Expected [Quit? Yes No], got %v", texts)
	}
}
