package odge

// DefaultLifetime is the lifetime of a popup in frames when none is given.
const DefaultLifetime = 80

// FadeFrames is how many final frames a fading popup spends fading out.
const FadeFrames = 64

// PopUpWidget is a widget that can live in a PopUpQueue.
type PopUpWidget interface {
	Widget
	// Update advances the popup by one frame. Implementations call Tick.
	Update()
	AsPopUp() *PopUp
}

// PopUp is the non-modal, timed base. Embed it in a widget struct and call
// Init from the constructor.
//
// Lifetime counts down one per Tick. A popup whose lifetime is zero or less
// is expired and its queue removes it.
type PopUp struct {
	Component

	Lifetime int
	Fade     bool

	opened bool
	closed bool
	owner  *PopUpQueue

	TimedOut Event
}

// AsPopUp returns the popup itself.
func (p *PopUp) AsPopUp() *PopUp { return p }

// IsOpened reports whether a queue currently holds the popup.
func (p *PopUp) IsOpened() bool { return p.opened }

// IsClosed reports whether the popup was removed from its queue.
func (p *PopUp) IsClosed() bool { return p.closed }

// IsOwned reports whether a queue holds the popup.
func (p *PopUp) IsOwned() bool { return p.owner != nil }

// Expired reports whether the lifetime ran out.
func (p *PopUp) Expired() bool { return p.Lifetime <= 0 }

// Close removes the popup from the queue that holds it.
func (p *PopUp) Close() error {
	if p.owner == nil {
		return ErrNotManaged
	}
	return p.owner.closePopUp(p)
}

// Tick counts the lifetime down by one frame and fires TimedOut when it
// reaches zero.
func (p *PopUp) Tick() {
	if p.Lifetime <= 0 {
		return
	}
	p.Lifetime--
	if p.Lifetime == 0 {
		p.TimedOut.Emit()
	}
}

// Update is the default per-frame behavior: Tick.
func (p *PopUp) Update() { p.Tick() }

// Opacity returns the draw alpha in [0, 1]. Fading popups ramp down over
// their last FadeFrames frames.
func (p *PopUp) Opacity() float32 {
	if !p.Fade || p.Lifetime >= FadeFrames {
		return 1
	}
	return float32(max(p.Lifetime, 0)) / FadeFrames
}

// Draw draws the popup's panel.
func (p *PopUp) Draw(r Renderer) {
	drawPanel(r, p.Style(), p.Rect(), ContextNormal)
}
