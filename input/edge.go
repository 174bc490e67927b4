package input

// Edge selects which transition of an input symbol a query tests for.
type Edge uint8

const (
	// EdgeDown is true while the symbol is held, regardless of the last frame.
	EdgeDown Edge = iota
	// EdgeHold is true when the symbol was held this frame and the last.
	EdgeHold
	// EdgePress is true only on the first frame the symbol is held.
	EdgePress
	// EdgeRelease is true only on the first frame after the symbol is let go.
	EdgeRelease
)

// String returns the edge name.
func (e Edge) String() string {
	switch e {
	case EdgeDown:
		return "down"
	case EdgeHold:
		return "hold"
	case EdgePress:
		return "press"
	case EdgeRelease:
		return "release"
	default:
		return "unknown"
	}
}

// Detect classifies the transition between two consecutive samples of one
// symbol. Down == Press || Hold, and Press and Hold are never both true.
func Detect(now, prev bool, e Edge) bool {
	switch e {
	case EdgeDown:
		return now
	case EdgeHold:
		return now && prev
	case EdgePress:
		return now && !prev
	case EdgeRelease:
		return !now && prev
	default:
		return false
	}
}
