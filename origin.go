package overlay

import "fmt"

// Origin is what the overlay is connected to: an element, a registered
// anchor name, or a bare point with an optional size. Elements are held by
// reference; the strategy never owns them.
type Origin struct {
	el    Measurable
	name  string
	point *Point
	size  Size
}

// OriginElement connects to a measurable element.
func OriginElement(m Measurable) Origin {
	return Origin{el: m}
}

// OriginName connects to an anchor registered with the platform under name.
func OriginName(name string) Origin {
	return Origin{name: name}
}

// OriginPoint connects to a point, optionally with a size.
func OriginPoint(x, y, width, height int) Origin {
	return Origin{point: &Point{X: x, Y: y}, size: Size{Width: width, Height: height}}
}

// IsZero reports whether no origin was set. A nil *Element counts as unset.
func (o Origin) IsZero() bool {
	return !o.hasElement() && o.name == "" && o.point == nil
}

// hasElement reports whether o holds a non-nil measurable.
func (o Origin) hasElement() bool {
	if el, ok := o.el.(*Element); ok {
		return el != nil
	}
	return o.el != nil
}

// Name returns the anchor name, or "" for element and point origins.
func (o Origin) Name() string {
	return o.name
}

// String describes the origin for logs.
func (o Origin) String() string {
	switch {
	case o.name != "":
		return "name(" + o.name + ")"
	case o.point != nil:
		return fmt.Sprintf("point(%d,%d %dx%d)", o.point.X, o.point.Y, o.size.Width, o.size.Height)
	case o.el != nil:
		if el, ok := o.el.(*Element); ok && el.ID() != "" {
			return "element(" + el.ID() + ")"
		}
		return "element"
	default:
		return "none"
	}
}

// element returns the origin as an *Element, resolving names through p.
func (o Origin) element(p Platform) (*Element, bool) {
	if o.name != "" {
		return p.LookupAnchor(o.name)
	}
	el, ok := o.el.(*Element)
	return el, ok && el != nil
}

// rect measures the origin now.
func (o Origin) rect(p Platform) (Rect, error) {
	switch {
	case o.point != nil:
		return Rect{X: o.point.X, Y: o.point.Y, Width: o.size.Width, Height: o.size.Height}, nil
	case o.name != "":
		el, ok := p.LookupAnchor(o.name)
		if !ok {
			return Rect{}, newError(CodeMissingOrigin, "no anchor registered as %q", o.name)
		}
		return el.BoundingRect(), nil
	case o.hasElement():
		return o.el.BoundingRect(), nil
	default:
		return Rect{}, newError(CodeMissingOrigin, "no origin configured")
	}
}
