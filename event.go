package odge

// Event is a list of callbacks fired in registration order.
// The zero value is ready to use.
//
//	btn.Submitted.Listen(func() { startGame() })
type Event struct {
	handlers []func()
}

// Listen registers fn. A nil fn is ignored.
func (e *Event) Listen(fn func()) {
	if fn != nil {
		e.handlers = append(e.handlers, fn)
	}
}

// Emit calls every handler. Handlers registered during Emit run from the
// next Emit on.
func (e *Event) Emit() {
	for _, fn := range e.handlers {
		fn()
	}
}

// Len returns the number of registered handlers.
func (e *Event) Len() int { return len(e.handlers) }

// Reset drops every handler.
func (e *Event) Reset() { e.handlers = nil }
