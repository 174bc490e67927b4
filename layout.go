package odge

// AlignToPoint returns the top-left corner that places a box of the given
// size against at: AlignStart puts the box's start edge on at, AlignCenter
// its middle and AlignEnd its end edge.
func AlignToPoint(size, at Point, h, v Align) Point {
	return Point{X: alignAxis(size.X, at.X, h), Y: alignAxis(size.Y, at.Y, v)}
}

func alignAxis(size, at int, a Align) int {
	switch a {
	case AlignCenter:
		return at - size/2
	case AlignEnd:
		return at - size
	default:
		return at
	}
}

// AlignInRect returns the top-left corner that aligns a box of the given
// size inside area.
func AlignInRect(size Point, area Rect, h, v Align) Point {
	return Point{
		X: area.X + alignOffset(size.X, area.W, h),
		Y: area.Y + alignOffset(size.Y, area.H, v),
	}
}

func alignOffset(size, span int, a Align) int {
	switch a {
	case AlignCenter:
		return (span - size) / 2
	case AlignEnd:
		return span - size
	default:
		return 0
	}
}

// MaxSize returns the largest width and the largest height among ws.
// The two need not come from the same widget.
func MaxSize[W Widget](ws []W) Point {
	var out Point
	for _, w := range ws {
		sz := w.Base().Size()
		out.X = max(out.X, sz.X)
		out.Y = max(out.Y, sz.Y)
	}
	return out
}

// ScrollEase returns how far to shift content this frame to bring an item
// that overflows its viewport by overflow pixels back into view. The step
// is never larger than the overflow, so repeated correction converges
// without overshooting. Non-positive overflow needs no shift.
func ScrollEase(overflow int) int {
	if overflow <= 0 {
		return 0
	}
	return min(overflow/2+1, overflow)
}

// scrollCorrection returns the signed shift that moves the span [top, bottom)
// toward [lo, hi). It is zero when the span already fits. A span taller than
// the viewport settles with its top on lo.
func scrollCorrection(top, bottom, lo, hi int) int {
	switch {
	case top < lo:
		return ScrollEase(lo - top)
	case bottom > hi:
		return -min(ScrollEase(bottom-hi), top-lo)
	default:
		return 0
	}
}
