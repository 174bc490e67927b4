package odge

import (
	"fmt"
	"strconv"

	"github.com/go-theft-auto/odge/input"
)

// Default wheel prompts, drawn with the footer font while the value can
// still move in that direction.
const (
	DefaultLeftPrompt  = "<< "
	DefaultRightPrompt = " >>"
)

// wheel is the shared base of SelectWheel and NumericWheel: a control that
// shows one value between two prompts and moves it with the navigation
// commands. Left and down decrease, right and up increase.
type wheel struct {
	Control

	leftPrompt  string
	rightPrompt string

	// WrapAround jumps to the other end instead of stopping. Wheels stop
	// unless built with WithWrapAround(true).
	WrapAround bool
}

func (w *wheel) initWheel(name string, style *Style, o options) {
	w.Init(nameOr(o, name), style)
	w.leftPrompt, w.rightPrompt = DefaultLeftPrompt, DefaultRightPrompt
	w.WrapAround = HasOpt(o, OptWrapAround) && GetOpt(o, OptWrapAround)
}

// Prompts returns the left and right prompt text.
func (w *wheel) Prompts() (left, right string) { return w.leftPrompt, w.rightPrompt }

// SetPrompts replaces the prompt text.
func (w *wheel) SetPrompts(left, right string) {
	w.leftPrompt, w.rightPrompt = left, right
	w.Invalidate()
}

// minSizeFor returns the size that fits both prompts around the widest value.
func (w *wheel) minSizeFor(widest Point) Point {
	s := w.Style()
	f := s.Font(ContextFooter)
	l, r := measure(f, w.leftPrompt), measure(f, w.rightPrompt)
	return Point{
		X: l.X + widest.X + r.X + s.Padding.Horizontal(),
		Y: max(l.Y, widest.Y, r.Y) + s.Padding.Vertical(),
	}
}

// readStep returns -1, 1 or 0 for this frame's navigation.
func (w *wheel) readStep(in *input.Input) (int, error) {
	nav, err := readNavigation(in)
	if err != nil {
		return 0, fmt.Errorf("wheel %q: %w", w.Name, err)
	}
	switch {
	case nav.Left || nav.Down:
		return -1, nil
	case nav.Right || nav.Up:
		return 1, nil
	}
	return 0, nil
}

// drawWheel draws the panel, the centered value and the prompts that apply.
func (w *wheel) drawWheel(r Renderer, value string, canLeft, canRight bool) {
	s := w.Style()
	drawPanel(r, s, w.Rect(), ContextNormal)
	in := w.Rect().Inset(s.Padding)

	f := s.Font(ContextNormal)
	r.DrawText(f, value, AlignInRect(measure(f, value), in, AlignCenter, s.AlignV), s.TextColors.Get(ContextNormal))

	pf := s.Font(ContextFooter)
	pc := s.TextColors.Get(ContextFooter)
	if canLeft && w.leftPrompt != "" {
		r.DrawText(pf, w.leftPrompt, AlignInRect(measure(pf, w.leftPrompt), in, AlignStart, s.AlignV), pc)
	}
	if canRight && w.rightPrompt != "" {
		r.DrawText(pf, w.rightPrompt, AlignInRect(measure(pf, w.rightPrompt), in, AlignEnd, s.AlignV), pc)
	}
}

// SelectWheel picks one of a fixed list of options. Options are shown with
// fmt.Sprint.
//
//	difficulty, _ := odge.NewSelectWheel([]string{"Easy", "Normal", "Hard"}, 1, style)
type SelectWheel[T any] struct {
	wheel

	options  []T
	selected int

	// ValueChanged fires when navigation moves the selection.
	ValueChanged Event
}

// NewSelectWheel creates a wheel over options with selected chosen. It
// fails with ErrOutOfRange when selected is not a valid index.
func NewSelectWheel[T any](options []T, selected int, style *Style, opts ...Option) (*SelectWheel[T], error) {
	if selected < 0 || selected >= len(options) {
		return nil, fmt.Errorf("select wheel option %d of %d: %w", selected, len(options), ErrOutOfRange)
	}
	w := &SelectWheel[T]{
		options:  append([]T(nil), options...),
		selected: selected,
	}
	w.initWheel("select wheel", style, applyOptions(opts))
	w.SetMinSizeFunc(w.measureMin)
	return w, nil
}

// Len returns the number of options.
func (w *SelectWheel[T]) Len() int { return len(w.options) }

// SelectedIndex returns the index of the current option.
func (w *SelectWheel[T]) SelectedIndex() int { return w.selected }

// SetSelectedIndex selects option i without firing ValueChanged.
func (w *SelectWheel[T]) SetSelectedIndex(i int) error {
	if i < 0 || i >= len(w.options) {
		return fmt.Errorf("select wheel option %d of %d: %w", i, len(w.options), ErrOutOfRange)
	}
	if i != w.selected {
		w.selected = i
		w.Invalidate()
	}
	return nil
}

// Value returns the current option.
func (w *SelectWheel[T]) Value() T { return w.options[w.selected] }

func (w *SelectWheel[T]) measureMin() Point {
	f := w.Style().Font(ContextNormal)
	var widest Point
	for _, o := range w.options {
		sz := measure(f, fmt.Sprint(o))
		widest = Point{X: max(widest.X, sz.X), Y: max(widest.Y, sz.Y)}
	}
	return w.minSizeFor(widest)
}

// Update implements ControlWidget.
func (w *SelectWheel[T]) Update(in *input.Input) error {
	if w.SubmitPressed(in) {
		w.Submit()
	}

	step, err := w.readStep(in)
	if err != nil {
		return err
	}
	if step != 0 {
		next := w.selected + step
		n := len(w.options)
		if w.WrapAround {
			next = ((next % n) + n) % n
		}
		if next >= 0 && next < n && next != w.selected {
			w.selected = next
			w.Invalidate()
			w.ValueChanged.Emit()
		}
		return nil
	}

	if w.CancelPressed(in) {
		return w.Cancel()
	}
	return nil
}

// Draw implements Widget.
func (w *SelectWheel[T]) Draw(r Renderer) {
	last := len(w.options) - 1
	w.drawWheel(r, fmt.Sprint(w.Value()), w.WrapAround || w.selected > 0, w.WrapAround || w.selected < last)
}

// NumericWheel picks an integer in [Min, Max] in steps of Step.
type NumericWheel struct {
	wheel

	// Step is how far one press moves the value.
	Step int

	minValue, maxValue int
	value              int

	Incremented Event
	Decremented Event
}

// NewNumericWheel creates a wheel over [minValue, maxValue] starting at
// initial, clamped into range. A step below 1 is treated as 1.
func NewNumericWheel(minValue, maxValue, step, initial int, style *Style, opts ...Option) *NumericWheel {
	w := &NumericWheel{Step: step}
	w.initWheel("numeric wheel", style, applyOptions(opts))
	w.SetRange(minValue, maxValue)
	w.SetValue(initial)
	w.SetMinSizeFunc(w.measureMin)
	return w
}

// Min returns the lower bound.
func (w *NumericWheel) Min() int { return w.minValue }

// Max returns the upper bound.
func (w *NumericWheel) Max() int { return w.maxValue }

// SetRange sets the bounds, swapping them if given in the wrong order, and
// clamps the value into them.
func (w *NumericWheel) SetRange(minValue, maxValue int) {
	if minValue > maxValue {
		minValue, maxValue = maxValue, minValue
	}
	w.minValue, w.maxValue = minValue, maxValue
	w.SetValue(w.value)
	w.Invalidate()
}

// Value returns the current value.
func (w *NumericWheel) Value() int { return w.value }

// SetValue sets the value, clamped to the bounds, without firing events.
func (w *NumericWheel) SetValue(v int) {
	v = max(w.minValue, min(v, w.maxValue))
	if v != w.value {
		w.value = v
		w.Invalidate()
	}
}

func (w *NumericWheel) step() int { return max(w.Step, 1) }

// Increment raises the value by Step and fires Incremented. At Max it wraps
// to Min with WrapAround and otherwise stops.
func (w *NumericWheel) Increment() {
	next := w.value + w.step()
	if next > w.maxValue {
		if !w.WrapAround {
			return
		}
		next = w.minValue
	}
	w.SetValue(next)
	w.Incremented.Emit()
}

// Decrement lowers the value by Step and fires Decremented. At Min it wraps
// to Max with WrapAround and otherwise stops.
func (w *NumericWheel) Decrement() {
	next := w.value - w.step()
	if next < w.minValue {
		if !w.WrapAround {
			return
		}
		next = w.maxValue
	}
	w.SetValue(next)
	w.Decremented.Emit()
}

func (w *NumericWheel) measureMin() Point {
	f := w.Style().Font(ContextNormal)
	lo := measure(f, strconv.Itoa(w.minValue))
	hi := measure(f, strconv.Itoa(w.maxValue))
	return w.minSizeFor(Point{X: max(lo.X, hi.X), Y: max(lo.Y, hi.Y)})
}

// Update implements ControlWidget.
func (w *NumericWheel) Update(in *input.Input) error {
	if w.SubmitPressed(in) {
		w.Submit()
	}

	step, err := w.readStep(in)
	if err != nil {
		return err
	}
	switch {
	case step < 0:
		w.Decrement()
	case step > 0:
		w.Increment()
	case w.CancelPressed(in):
		return w.Cancel()
	}
	return nil
}

// Draw implements Widget.
func (w *NumericWheel) Draw(r Renderer) {
	w.drawWheel(r, strconv.Itoa(w.value), w.WrapAround || w.value > w.minValue, w.WrapAround || w.value < w.maxValue)
}
