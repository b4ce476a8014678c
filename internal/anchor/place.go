package anchor

import (
	"fmt"
	"strings"

	"github.com/grindlemire/go-overlay/internal/layout"
)

// Block reads one declaration from a declaration block.
type Block func(property string) (string, bool)

// Merge returns a block where over's declarations take precedence over
// base's.
func Merge(base, over Block) Block {
	return func(property string) (string, bool) {
		if v, ok := over(property); ok {
			return v, true
		}
		return base(property)
	}
}

// MapBlock adapts a map to a Block.
func MapBlock(m map[string]string) Block {
	return func(property string) (string, bool) {
		v, ok := m[property]
		return v, ok
	}
}

// Lookup resolves an anchor name to its box. The empty name is the
// element's default anchor.
type Lookup func(name string) (layout.Rect, bool)

// Context is everything a layout pass needs besides the declarations.
type Context struct {
	// Containing is the containing block, normally the viewport.
	Containing layout.Rect
	// Size is the pane's intrinsic size.
	Size layout.Size
	// Lookup finds anchor boxes.
	Lookup Lookup
}

// Place lays out the pane for one declaration block. An axis with no inset
// and no anchor-center alignment sits at the containing block's start.
// "max-width" and "max-height" in pixels shrink the pane first.
func Place(b Block, ctx Context) (layout.Rect, error) {
	defaultName, _ := b("position-anchor")

	var err error
	if ctx.Size.Width, err = clampLength(b, "max-width", ctx.Size.Width); err != nil {
		return layout.Rect{}, err
	}
	if ctx.Size.Height, err = clampLength(b, "max-height", ctx.Size.Height); err != nil {
		return layout.Rect{}, err
	}

	x, err := placeAxis(b, ctx, defaultName, true)
	if err != nil {
		return layout.Rect{}, err
	}
	y, err := placeAxis(b, ctx, defaultName, false)
	if err != nil {
		return layout.Rect{}, err
	}
	return layout.NewRect(x, y, ctx.Size.Width, ctx.Size.Height), nil
}

func clampLength(b Block, property string, n int) (int, error) {
	v, ok := b(property)
	if !ok {
		return n, nil
	}
	e, err := Parse(v)
	if err != nil {
		return 0, err
	}
	if e.Anchored {
		return 0, fmt.Errorf("anchor: %s does not accept anchor()", property)
	}
	return min(n, e.Length), nil
}

// placeAxis returns the pane's start coordinate on one axis.
func placeAxis(b Block, ctx Context, defaultName string, horizontal bool) (int, error) {
	startProp, endProp, selfProp, marginProp := "left", "right", "justify-self", "margin-left"
	cbStart, cbEnd, extent := ctx.Containing.X, ctx.Containing.Right(), ctx.Size.Width
	if !horizontal {
		startProp, endProp, selfProp, marginProp = "top", "bottom", "align-self", "margin-top"
		cbStart, cbEnd, extent = ctx.Containing.Y, ctx.Containing.Bottom(), ctx.Size.Height
	}

	if v, ok := b(startProp); ok {
		return edge(v, ctx, defaultName, horizontal, cbStart, false)
	}
	if v, ok := b(endProp); ok {
		at, err := edge(v, ctx, defaultName, horizontal, cbEnd, true)
		return at - extent, err
	}
	if v, _ := b(selfProp); strings.TrimSpace(v) == "anchor-center" {
		a, ok := ctx.Lookup(defaultName)
		if !ok {
			return 0, fmt.Errorf("anchor: no default anchor for %s", selfProp)
		}
		margin := 0
		if mv, ok := b(marginProp); ok {
			e, err := Parse(mv)
			if err != nil {
				return 0, err
			}
			margin = e.Length
		}
		center := a.X + a.Width/2
		if !horizontal {
			center = a.Y + a.Height/2
		}
		return center - extent/2 + margin, nil
	}
	return cbStart, nil
}

// edge resolves an inset value to the coordinate of the pane edge it
// positions. End insets are measured inward from the containing block's
// end.
func edge(value string, ctx Context, defaultName string, horizontal bool, cbEdge int, fromEnd bool) (int, error) {
	e, err := Parse(value)
	if err != nil {
		return 0, err
	}

	if !e.Anchored {
		if fromEnd {
			return cbEdge - e.Length, nil
		}
		return cbEdge + e.Length, nil
	}

	name := e.Name
	if name == "" {
		name = defaultName
	}
	a, ok := ctx.Lookup(name)
	if !ok {
		return 0, fmt.Errorf("anchor: no anchor %q", name)
	}
	at, err := sideCoord(a, e.Side, horizontal)
	if err != nil {
		return 0, err
	}

	// An inset of anchor(side) + L puts the pane edge L further from the
	// containing block's edge it is measured from.
	if fromEnd {
		return at - e.Length, nil
	}
	return at + e.Length, nil
}

func sideCoord(a layout.Rect, side string, horizontal bool) (int, error) {
	switch side {
	case "center":
		if horizontal {
			return a.X + a.Width/2, nil
		}
		return a.Y + a.Height/2, nil
	case "left", "right":
		if !horizontal {
			return 0, fmt.Errorf("anchor: %s used on the vertical axis", side)
		}
		if side == "left" {
			return a.X, nil
		}
		return a.Right(), nil
	case "top", "bottom":
		if horizontal {
			return 0, fmt.Errorf("anchor: %s used on the horizontal axis", side)
		}
		if side == "top" {
			return a.Y, nil
		}
		return a.Bottom(), nil
	}
	return 0, fmt.Errorf("anchor: unknown side %q", side)
}

// Result is the outcome of Resolve.
type Result struct {
	Rect layout.Rect
	// Index is the chosen fallback block, or -1 when there was no chain.
	Index int
	// Fits reports whether Rect lies inside the containing block.
	Fits bool
}

// Resolve lays out base with each fallback block in turn and returns the
// first placement that fits the containing block. When none fits, the first
// fallback is used. With no fallbacks, base is placed alone.
func Resolve(base Block, fallbacks []Block, ctx Context) (Result, error) {
	if len(fallbacks) == 0 {
		r, err := Place(base, ctx)
		if err != nil {
			return Result{}, err
		}
		return Result{Rect: r, Index: -1, Fits: ctx.Containing.ContainsRect(r)}, nil
	}

	var first layout.Rect
	for i, fb := range fallbacks {
		r, err := Place(Merge(base, fb), ctx)
		if err != nil {
			return Result{}, err
		}
		if ctx.Containing.ContainsRect(r) {
			return Result{Rect: r, Index: i, Fits: true}, nil
		}
		if i == 0 {
			first = r
		}
	}
	return Result{Rect: first, Index: 0}, nil
}
