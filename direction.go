package overlay

import "golang.org/x/text/unicode/bidi"

// Direction is the writing direction of an overlay.
type Direction uint8

const (
	// LTR lays out logical start on the left.
	LTR Direction = iota
	// RTL lays out logical start on the right.
	RTL
	// DirAuto derives the direction from the overlay's text, like dir="auto".
	DirAuto
)

// String returns "ltr", "rtl" or "auto".
func (d Direction) String() string {
	switch d {
	case RTL:
		return "rtl"
	case DirAuto:
		return "auto"
	default:
		return "ltr"
	}
}

// ParseDirection accepts "ltr", "rtl" and "auto". Anything else is LTR.
func ParseDirection(s string) Direction {
	switch s {
	case "rtl":
		return RTL
	case "auto":
		return DirAuto
	default:
		return LTR
	}
}

// resolveDirection turns DirAuto into a concrete direction using the first
// strong character of text. Text without strong characters is LTR.
func resolveDirection(d Direction, text string) Direction {
	if d != DirAuto {
		return d
	}
	for _, r := range text {
		props, _ := bidi.LookupRune(r)
		switch props.Class() {
		case bidi.L:
			return LTR
		case bidi.R, bidi.AL:
			return RTL
		}
	}
	return LTR
}
