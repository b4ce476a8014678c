package overlay

import (
	"strings"

	"github.com/grindlemire/go-overlay/internal/anchor"
	"github.com/grindlemire/go-overlay/internal/debug"
)

// Placement is the result of a layout pass.
type Placement struct {
	Rect Rect
	// Fallback is the name of the chosen "@position-try" rule, or "" when
	// the pane has no fallback chain.
	Fallback string
	// Fits reports whether Rect lies inside the viewport.
	Fits bool
}

// Layout runs the document's layout pass for a positioned pane. It reads
// the pane's inline declarations, follows "position-try-fallbacks" into the
// adopted stylesheets and positions the pane at its intrinsic size, limited
// by any max-width and max-height. Both fixed insets written by
// FlexibleStrategy and anchor expressions written by AnchorStrategy are
// understood.
//
// The result is written back with SetRect so later measurements see the
// laid-out pane. The pane's intrinsic size is recorded first and never
// shrinks with the laid-out rect.
func (d *Document) Layout(pane *Element) (Placement, error) {
	base := pane.Style()

	var names []string
	var fallbacks []anchor.Block
	if v := base.Value("position-try-fallbacks"); v != "" {
		for _, name := range strings.Split(v, ",") {
			name = strings.TrimSpace(name)
			decls, ok := d.positionTry(name)
			if !ok {
				return Placement{}, newError(CodeInvalidPosition, "no @position-try rule named %s", name)
			}
			names = append(names, name)
			fallbacks = append(fallbacks, decls.Get)
		}
	}

	ctx := anchor.Context{
		Containing: d.ViewportRect(),
		Size:       pane.IntrinsicSize(),
		Lookup: func(name string) (Rect, bool) {
			if name == "" {
				if el := pane.AnchorElement(); el != nil {
					return el.BoundingRect(), true
				}
				return Rect{}, false
			}
			el, ok := d.anchors[name]
			if !ok {
				return Rect{}, false
			}
			return el.BoundingRect(), true
		},
	}

	res, err := anchor.Resolve(base.Get, fallbacks, ctx)
	if err != nil {
		return Placement{}, newError(CodeInvalidPosition, "layout failed").wrap(err)
	}

	out := Placement{Rect: res.Rect, Fits: res.Fits}
	if res.Index >= 0 {
		out.Fallback = names[res.Index]
	}
	pane.SetIntrinsicSize(ctx.Size)
	pane.SetRect(res.Rect)
	debug.Event("layout", "pane", pane.ID(), "rect", res.Rect, "fallback", out.Fallback)
	return out, nil
}
