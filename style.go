package odge

import (
	"slices"

	"github.com/go-theft-auto/odge/input"
)

// Spacing constants for consistent layout.
// Use these instead of raw numbers for maintainability.
const (
	SpaceNone = 0
	SpaceXS   = 2  // Extra small
	SpaceSM   = 4  // Small (default item spacing)
	SpaceMD   = 8  // Medium (default padding)
	SpaceLG   = 12 // Large
	SpaceXL   = 16 // Extra large
)

// ContextID selects which variant of a styled value to use.
type ContextID uint8

const (
	ContextNormal ContextID = iota // Idle content
	ContextActive                  // Selected button, highlighted text
	ContextHeader                  // Menu and dialog headings
	ContextFooter                  // Page counters and hints
)

// StyleContext holds one value per ContextID.
type StyleContext[T any] struct {
	Normal T
	Active T
	Header T
	Footer T
}

// Same returns a StyleContext with v in every slot.
func Same[T any](v T) StyleContext[T] {
	return StyleContext[T]{Normal: v, Active: v, Header: v, Footer: v}
}

// Get returns the value for ctx. Unknown contexts fall back to Normal.
func (c StyleContext[T]) Get(ctx ContextID) T {
	switch ctx {
	case ContextActive:
		return c.Active
	case ContextHeader:
		return c.Header
	case ContextFooter:
		return c.Footer
	default:
		return c.Normal
	}
}

// Padding is the inner space between a component's edge and its content.
type Padding struct {
	Top, Right, Bottom, Left int
}

// Pad returns the same padding on all four sides.
func Pad(all int) Padding {
	return Padding{Top: all, Right: all, Bottom: all, Left: all}
}

// Horizontal returns Left + Right.
func (p Padding) Horizontal() int { return p.Left + p.Right }

// Vertical returns Top + Bottom.
func (p Padding) Vertical() int { return p.Top + p.Bottom }

// Spacing is the gap between sibling items.
type Spacing struct {
	H, V int
}

// Align positions content along one axis.
type Align uint8

const (
	AlignStart  Align = iota // Left or top
	AlignCenter              // Centered
	AlignEnd                 // Right or bottom
)

// Style is the visual and behavioral configuration shared by components.
// Many components usually point at one Style; change it through Update or
// call RegisterChanges after editing fields so every holder re-runs layout.
type Style struct {
	Backgrounds      StyleContext[Image]
	BackgroundColors StyleContext[Color]
	Borders          StyleContext[Borders]
	BorderColors     StyleContext[Color]
	Fonts            StyleContext[Font]
	TextColors       StyleContext[Color]

	Padding Padding
	Spacing Spacing
	AlignH  Align
	AlignV  Align

	// Mask is drawn over controls below the top of a stack in draw-all mode.
	// A nil Mask fills with MaskColor.
	Mask      Image
	MaskColor Color

	SubmitKeys    []input.Key
	SubmitButtons []input.Button
	CancelKeys    []input.Key
	CancelButtons []input.Button

	// CloseOnCancel closes a control when its cancel binding is pressed.
	CloseOnCancel bool

	// DrawOnlyCorners draws border corners instead of full edges.
	DrawOnlyCorners bool

	version uint64
	changed bool
}

// DefaultStyle returns a dark translucent style with the built-in font.
func DefaultStyle() *Style {
	f := DefaultFont()
	return &Style{
		BackgroundColors: StyleContext[Color]{
			Normal: RGBA(20, 20, 20, 200),
			Active: RGBA(70, 70, 70, 230),
			Header: RGBA(40, 40, 45, 255),
			Footer: RGBA(20, 20, 20, 200),
		},
		Borders:      Same[Borders](LineBorders{Thickness: 1}),
		BorderColors: Same(RGBA(80, 80, 80, 255)),
		Fonts:        Same[Font](f),
		TextColors: StyleContext[Color]{
			Normal: ColorWhite,
			Active: ColorYellow,
			Header: ColorLightGray,
			Footer: ColorGray,
		},
		Padding:       Pad(SpaceMD),
		Spacing:       Spacing{H: SpaceSM, V: SpaceSM},
		MaskColor:     RGBA(0, 0, 0, 120),
		SubmitKeys:    []input.Key{input.KeyEnter, input.KeySpace},
		SubmitButtons: []input.Button{input.ButtonA, input.ButtonStart},
		CancelKeys:    []input.Key{input.KeyEscape, input.KeyBackspace},
		CancelButtons: []input.Button{input.ButtonB, input.ButtonBack},
		CloseOnCancel: true,
	}
}

// Update applies fn to the style and registers the change.
func (s *Style) Update(fn func(s *Style)) {
	fn(s)
	s.RegisterChanges()
}

// RegisterChanges marks the style as changed. Components holding it see
// the change on their container's next refresh.
func (s *Style) RegisterChanges() {
	s.version++
	s.changed = true
}

// Changed reports whether the style changed since the last AcceptChanges.
func (s *Style) Changed() bool { return s.changed }

// AcceptChanges clears the changed flag. Components track the version they
// last laid out against, so clearing it does not hide the change from
// other holders.
func (s *Style) AcceptChanges() { s.changed = false }

// Version increases with every registered change.
func (s *Style) Version() uint64 { return s.version }

// Clone returns an independent copy with a fresh change history.
func (s *Style) Clone() *Style {
	c := *s
	c.SubmitKeys = slices.Clone(s.SubmitKeys)
	c.SubmitButtons = slices.Clone(s.SubmitButtons)
	c.CancelKeys = slices.Clone(s.CancelKeys)
	c.CancelButtons = slices.Clone(s.CancelButtons)
	c.version = 0
	c.changed = false
	return &c
}

// Font returns the font for ctx, falling back to DefaultFont.
func (s *Style) Font(ctx ContextID) Font {
	if f := s.Fonts.Get(ctx); f != nil {
		return f
	}
	return DefaultFont()
}
