package overlay

import (
	"strconv"
	"strings"
)

// tryBlock renders one connection pair as anchor declarations. name is the
// anchor to reference, or "" for the pane's implicit anchor.
//
// Offsets move the overlay toward positive x and y. An edge written as a
// right or bottom inset therefore subtracts its offset.
func tryBlock(pos ConnectionPair, dir Direction, name string, offX, offY int) (Declarations, error) {
	var d Declarations

	originX := ResolveHorizontal(pos.OriginX, dir)
	switch ResolveHorizontal(pos.OverlayX, dir) {
	case SideLeft:
		d.Set("left", insetExpr(name, string(originX), offX))
	case SideRight:
		d.Set("right", insetExpr(name, string(originX), -offX))
	case SideCenter:
		if originX != SideCenter {
			return Declarations{}, newError(CodeUnsupported, "cannot center the overlay horizontally against the origin's %s side", originX)
		}
		d.Set("justify-self", "anchor-center")
		if offX != 0 {
			d.Set("margin-left", px(offX))
		}
	}

	switch pos.OverlayY {
	case Top:
		d.Set("top", insetExpr(name, string(pos.OriginY), offY))
	case Bottom:
		d.Set("bottom", insetExpr(name, string(pos.OriginY), -offY))
	case VCenter:
		if pos.OriginY != VCenter {
			return Declarations{}, newError(CodeUnsupported, "cannot center the overlay vertically against the origin's %s side", pos.OriginY)
		}
		d.Set("align-self", "anchor-center")
		if offY != 0 {
			d.Set("margin-top", px(offY))
		}
	}
	return d, nil
}

// insetExpr builds "anchor([name] side)", wrapped in calc() when delta is
// non-zero.
func insetExpr(name, side string, delta int) string {
	var sb strings.Builder
	sb.WriteString("anchor(")
	if name != "" {
		sb.WriteString(name)
		sb.WriteByte(' ')
	}
	sb.WriteString(side)
	sb.WriteByte(')')
	if delta == 0 {
		return sb.String()
	}

	op := " + "
	if delta < 0 {
		op, delta = " - ", -delta
	}
	return "calc(" + sb.String() + op + strconv.Itoa(delta) + "px)"
}
