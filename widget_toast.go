package odge

// Motion defines how a PopText moves while alive.
type Motion uint8

const (
	MotionStatic   Motion = iota // Stays where it was opened
	MotionRising                 // Drifts up one pixel per frame
	MotionFalling                // Drifts down one pixel per frame
	MotionBouncing               // Hops in place with decaying height
)

// Bounce shape for MotionBouncing.
const (
	bouncePeriod = 16 // Frames per hop
	bounceHeight = 24 // Height of the first hop in pixels
)

// PopText is a short-lived label, such as damage numbers or "Saved!".
// It fades out over its last FadeFrames frames when Fade is set.
//
//	pop := odge.NewPopText("+100", odge.Pt(x, y), style, odge.WithMotion(odge.MotionRising))
//	ui.PopUps.Open(pop)
type PopText struct {
	PopUp

	Motion Motion

	text  string
	frame int
}

// NewPopText creates pop text with its top-left corner at at. Lifetime
// defaults to DefaultLifetime and fading is on.
func NewPopText(text string, at Point, style *Style, opts ...Option) *PopText {
	o := applyOptions(opts)
	p := &PopText{
		Motion: GetOpt(o, OptMotion),
		text:   text,
	}
	p.Init(nameOr(o, text), style)
	p.Lifetime = GetOpt(o, OptLifetime)
	p.Fade = GetOpt(o, OptFade)
	p.SetMinSizeFunc(p.measureMin)
	p.SetLocation(at)
	return p
}

// Text returns the label.
func (p *PopText) Text() string { return p.text }

func (p *PopText) measureMin() Point {
	return measure(p.Style().Font(ContextNormal), p.text)
}

// Update implements PopUpWidget.
func (p *PopText) Update() {
	p.Tick()
	p.frame++
	switch p.Motion {
	case MotionRising:
		p.Move(Pt(0, -1))
	case MotionFalling:
		p.Move(Pt(0, 1))
	case MotionBouncing:
		// Relative to the current location, so SnapTo and SetLocation hold.
		p.Move(Pt(0, bounceOffset(p.frame-1)-bounceOffset(p.frame)))
	}
}

// bounceOffset returns the hop height at a frame. Each hop is a parabola
// half as high as the one before.
func bounceOffset(frame int) int {
	hop := frame / bouncePeriod
	if hop >= 8 {
		return 0
	}
	t := frame % bouncePeriod
	amp := bounceHeight >> hop
	return amp * 4 * t * (bouncePeriod - t) / (bouncePeriod * bouncePeriod)
}

// Draw implements Widget.
func (p *PopText) Draw(r Renderer) {
	s := p.Style()
	tint := s.TextColors.Get(ContextNormal).Fade(p.Opacity())
	if tint.Alpha() == 0 {
		return
	}
	r.DrawText(s.Font(ContextNormal), p.text, p.Location(), tint)
}
