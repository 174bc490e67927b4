package odge

// Anchor names one of nine reference points of a rectangle.
type Anchor uint8

const (
	AnchorTopLeft Anchor = iota
	AnchorTop
	AnchorTopRight
	AnchorLeft
	AnchorCenter
	AnchorRight
	AnchorBottomLeft
	AnchorBottom
	AnchorBottomRight
)

// alignments splits an anchor into its horizontal and vertical parts.
func (a Anchor) alignments() (h, v Align) {
	switch a {
	case AnchorTopLeft:
		return AlignStart, AlignStart
	case AnchorTop:
		return AlignCenter, AlignStart
	case AnchorTopRight:
		return AlignEnd, AlignStart
	case AnchorLeft:
		return AlignStart, AlignCenter
	case AnchorRight:
		return AlignEnd, AlignCenter
	case AnchorBottomLeft:
		return AlignStart, AlignEnd
	case AnchorBottom:
		return AlignCenter, AlignEnd
	case AnchorBottomRight:
		return AlignEnd, AlignEnd
	default:
		return AlignCenter, AlignCenter
	}
}

// SnapTo moves the component so it sits at the given anchor of a screen of
// the given size.
//
//	dialog.SnapTo(odge.AnchorBottom, 1280, 720)
func (c *Component) SnapTo(a Anchor, screenW, screenH int) {
	h, v := a.alignments()
	c.SetLocation(AlignInRect(c.Size(), Rect{W: screenW, H: screenH}, h, v))
}
