package overlay

import (
	"fmt"
	"slices"
)

// HorizontalPos is a logical horizontal attachment point. Start and End
// depend on the writing direction; HCenter does not.
type HorizontalPos string

const (
	Start   HorizontalPos = "start"
	HCenter HorizontalPos = "center"
	End     HorizontalPos = "end"
)

// VerticalPos is a vertical attachment point.
type VerticalPos string

const (
	Top     VerticalPos = "top"
	VCenter VerticalPos = "center"
	Bottom  VerticalPos = "bottom"
)

// Side is a physical horizontal side after direction resolution.
type Side string

const (
	SideLeft   Side = "left"
	SideCenter Side = "center"
	SideRight  Side = "right"
)

// ConnectionPair attaches the overlay point (OverlayX, OverlayY) to the
// origin point (OriginX, OriginY). Nil offsets fall back to the strategy's
// default offsets. PanelClass is applied to the pane while the pair is the
// committed position.
//
// Treat a pair as an immutable value; the With* methods return copies.
type ConnectionPair struct {
	OriginX  HorizontalPos `toml:"origin_x"`
	OriginY  VerticalPos   `toml:"origin_y"`
	OverlayX HorizontalPos `toml:"overlay_x"`
	OverlayY VerticalPos   `toml:"overlay_y"`

	OffsetX *int `toml:"offset_x"`
	OffsetY *int `toml:"offset_y"`

	PanelClass []string `toml:"panel_class"`
}

// Pair creates a ConnectionPair without offsets or panel classes.
func Pair(originX HorizontalPos, originY VerticalPos, overlayX HorizontalPos, overlayY VerticalPos) ConnectionPair {
	return ConnectionPair{OriginX: originX, OriginY: originY, OverlayX: overlayX, OverlayY: overlayY}
}

// WithOffset returns a copy of p with both offsets set.
func (p ConnectionPair) WithOffset(x, y int) ConnectionPair {
	q := p.clone()
	q.OffsetX, q.OffsetY = &x, &y
	return q
}

// WithOffsetX returns a copy of p with the horizontal offset set.
func (p ConnectionPair) WithOffsetX(x int) ConnectionPair {
	q := p.clone()
	q.OffsetX = &x
	return q
}

// WithOffsetY returns a copy of p with the vertical offset set.
func (p ConnectionPair) WithOffsetY(y int) ConnectionPair {
	q := p.clone()
	q.OffsetY = &y
	return q
}

// WithPanelClass returns a copy of p carrying the given pane classes.
func (p ConnectionPair) WithPanelClass(classes ...string) ConnectionPair {
	q := p.clone()
	q.PanelClass = slices.Clone(classes)
	return q
}

// Equal reports whether p and q describe the same placement.
func (p ConnectionPair) Equal(q ConnectionPair) bool {
	return p.OriginX == q.OriginX && p.OriginY == q.OriginY &&
		p.OverlayX == q.OverlayX && p.OverlayY == q.OverlayY &&
		equalOffset(p.OffsetX, q.OffsetX) && equalOffset(p.OffsetY, q.OffsetY) &&
		slices.Equal(p.PanelClass, q.PanelClass)
}

// String renders "originX/originY -> overlayX/overlayY".
func (p ConnectionPair) String() string {
	return fmt.Sprintf("%s/%s -> %s/%s", p.OriginX, p.OriginY, p.OverlayX, p.OverlayY)
}

// offset returns the pair's offsets, falling back to the defaults.
func (p ConnectionPair) offset(defX, defY int) (int, int) {
	x, y := defX, defY
	if p.OffsetX != nil {
		x = *p.OffsetX
	}
	if p.OffsetY != nil {
		y = *p.OffsetY
	}
	return x, y
}

// clone copies p so that no pointer or slice is shared with the original.
func (p ConnectionPair) clone() ConnectionPair {
	q := p
	if p.OffsetX != nil {
		x := *p.OffsetX
		q.OffsetX = &x
	}
	if p.OffsetY != nil {
		y := *p.OffsetY
		q.OffsetY = &y
	}
	q.PanelClass = slices.Clone(p.PanelClass)
	return q
}

func equalOffset(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// ResolveHorizontal maps a logical horizontal position onto a physical side.
// HCenter passes through as SideCenter; callers that cannot center reject it.
func ResolveHorizontal(pos HorizontalPos, dir Direction) Side {
	switch pos {
	case HCenter:
		return SideCenter
	case Start:
		if dir == RTL {
			return SideRight
		}
		return SideLeft
	default:
		if dir == RTL {
			return SideLeft
		}
		return SideRight
	}
}

func validHorizontal(h HorizontalPos) bool {
	return h == Start || h == HCenter || h == End
}

func validVertical(v VerticalPos) bool {
	return v == Top || v == VCenter || v == Bottom
}

// validatePositions checks a preferred-position list. panelClasses reports
// whether the calling engine can honor per-position pane classes.
func validatePositions(positions []ConnectionPair, panelClasses bool) error {
	if len(positions) == 0 {
		return newError(CodePositionRequired, "at least one position is required")
	}
	for i, p := range positions {
		if !validHorizontal(p.OriginX) || !validHorizontal(p.OverlayX) {
			return newError(CodeInvalidPosition, "position %d: horizontal values must be start, center or end, got %q/%q", i, p.OriginX, p.OverlayX)
		}
		if !validVertical(p.OriginY) || !validVertical(p.OverlayY) {
			return newError(CodeInvalidPosition, "position %d: vertical values must be top, center or bottom, got %q/%q", i, p.OriginY, p.OverlayY)
		}
		if len(p.PanelClass) > 0 && !panelClasses {
			return newError(CodeUnsupported, "position %d: per-position panel classes are not supported by this strategy", i)
		}
	}
	return nil
}

// clonePositions deep-copies a position list.
func clonePositions(positions []ConnectionPair) []ConnectionPair {
	out := make([]ConnectionPair, len(positions))
	for i, p := range positions {
		out[i] = p.clone()
	}
	return out
}

func equalPositions(a, b []ConnectionPair) bool {
	return slices.EqualFunc(a, b, ConnectionPair.Equal)
}
