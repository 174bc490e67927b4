package odge

import (
	"fmt"

	"github.com/go-theft-auto/odge/input"
)

// Answer records how a QuestionBox was left.
type Answer uint8

const (
	AnswerNone Answer = iota // Not answered yet, or canceled
	AnswerYes
	AnswerNo
)

// QuestionBox asks a question with two answer buttons side by side.
//
// No starts selected. Left selects Yes, right selects No, submit fires the
// chosen button's Submitted and then the box's. Cancel moves the selection
// back to No before firing Canceled. With AutoClose the box closes after
// either.
type QuestionBox struct {
	Control

	Message   string
	AutoClose bool

	// ButtonsTogether centers the two buttons next to each other instead
	// of pushing them to the left and right edges.
	ButtonsTogether bool

	yes, no ButtonWidget
	answer  Answer
}

// NewQuestionBox creates a question box. Nil buttons default to "Yes" and
// "No" text buttons sharing the box's style.
func NewQuestionBox(message string, yes, no ButtonWidget, style *Style, opts ...Option) *QuestionBox {
	o := applyOptions(opts)
	q := &QuestionBox{
		Message:   message,
		AutoClose: true,
	}
	q.Init(nameOr(o, "question"), style)
	if yes == nil {
		yes = NewTextButton("Yes", q.Style())
	}
	if no == nil {
		no = NewTextButton("No", q.Style())
	}
	q.yes, q.no = yes, no
	q.no.AsButton().SetSelected(true)
	q.SetMinSizeFunc(q.measureMin)
	return q
}

// Answer returns the last answer given.
func (q *QuestionBox) Answer() Answer { return q.answer }

// YesButton returns the affirmative button.
func (q *QuestionBox) YesButton() ButtonWidget { return q.yes }

// NoButton returns the negative button.
func (q *QuestionBox) NoButton() ButtonWidget { return q.no }

// Children implements Parent.
func (q *QuestionBox) Children() []Widget { return []Widget{q.yes, q.no} }

func (q *QuestionBox) measureMin() Point {
	s := q.Style()
	text := measure(s.Font(ContextNormal), q.Message)
	ys, ns := q.yes.Base().MinSize(), q.no.Base().MinSize()
	buttons := Point{X: ys.X + s.Spacing.H + ns.X, Y: max(ys.Y, ns.Y)}
	return Point{
		X: max(text.X, buttons.X) + s.Padding.Horizontal(),
		Y: text.Y + s.Spacing.V + buttons.Y + s.Padding.Vertical(),
	}
}

// Layout implements Widget. The buttons sit on the bottom edge of the box.
func (q *QuestionBox) Layout() {
	q.Component.Layout()
	s := q.Style()
	in := q.Rect().Inset(s.Padding)

	yb, nb := q.yes.Base(), q.no.Base()
	yb.SetSize(yb.Size())
	nb.SetSize(nb.Size())

	var yx, nx int
	if q.ButtonsTogether {
		mid := in.X + in.W/2
		yx = mid - s.Spacing.H/2 - yb.Size().X
		nx = mid + (s.Spacing.H+1)/2
	} else {
		yx = in.X
		nx = in.Right() - nb.Size().X
	}
	yb.SetLocation(Pt(yx, in.Bottom()-yb.Size().Y))
	nb.SetLocation(Pt(nx, in.Bottom()-nb.Size().Y))
}

// selectYes moves the selection between the two buttons.
func (q *QuestionBox) selectYes(v bool) {
	if q.yes.AsButton().IsSelected() == v {
		return
	}
	q.yes.AsButton().SetSelected(v)
	q.no.AsButton().SetSelected(!v)
}

// Update implements ControlWidget.
func (q *QuestionBox) Update(in *input.Input) error {
	if q.SubmitPressed(in) {
		chosen := q.no
		q.answer = AnswerNo
		if q.yes.AsButton().IsSelected() {
			chosen = q.yes
			q.answer = AnswerYes
		}
		chosen.AsButton().Submit()
		q.Submit()
		return q.autoClose()
	}

	nav, err := readNavigation(in)
	if err != nil {
		return fmt.Errorf("question box %q: %w", q.Name, err)
	}
	switch {
	case nav.Left:
		q.selectYes(true)
		return nil
	case nav.Right:
		q.selectYes(false)
		return nil
	}

	if q.CancelPressed(in) {
		q.selectYes(false)
		if err := q.Cancel(); err != nil {
			return err
		}
		return q.autoClose()
	}
	return nil
}

func (q *QuestionBox) autoClose() error {
	if q.AutoClose && q.IsOwned() {
		return q.Close()
	}
	return nil
}

// Draw implements Widget.
func (q *QuestionBox) Draw(r Renderer) {
	s := q.Style()
	drawPanel(r, s, q.Rect(), ContextNormal)

	if q.Message != "" {
		f := s.Font(ContextNormal)
		in := q.Rect().Inset(s.Padding)
		at := AlignInRect(measure(f, q.Message), in, s.AlignH, AlignStart)
		r.DrawText(f, q.Message, at, s.TextColors.Get(ContextNormal))
	}
	q.yes.Draw(r)
	q.no.Draw(r)
}
