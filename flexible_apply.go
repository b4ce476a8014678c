package overlay

import "github.com/grindlemire/go-overlay/internal/debug"

// candidate is one preferred position evaluated against the viewport.
type candidate struct {
	index    int
	pos      ConnectionPair
	attach   Point // origin attachment point plus offset
	rect     Rect  // pane rect at natural size
	overflow Edges
}

// flexibleFit is a candidate that fits once the pane shrinks into box.
type flexibleFit struct {
	candidate
	box Rect
}

// Apply implements PositionStrategy.
func (s *FlexibleStrategy) Apply() error {
	if s.disposed {
		return nil
	}
	if err := s.Err(); err != nil {
		return err
	}
	if !s.active() {
		return nil
	}

	if s.locked && !s.initialRender && !s.stale && s.lastPosition != nil && !s.positionsChanged {
		return s.ReapplyLastPosition()
	}

	// A failed measurement leaves the last placement in place.
	originRect, err := s.origin.rect(s.platform)
	if err != nil {
		return err
	}

	s.clearPanelClasses()
	s.resetPaneStyles()
	s.resetHostStyles()
	s.previousPush = nil

	viewport := s.narrowedViewport()
	size := s.pane.IntrinsicSize()
	dir := s.direction()

	var (
		flexible []flexibleFit
		best     *candidate
	)
	for i, pos := range s.positions {
		c := s.evaluate(i, pos, originRect, size, viewport, dir)

		if c.overflow.IsZero() {
			debug.Event("position fits", "index", i, "pair", pos)
			s.commit(c, originRect, false, nil, dir)
			return nil
		}

		if s.flexibleDimensions {
			if box, ok := s.flexibleBox(c, size, viewport, dir); ok {
				flexible = append(flexible, flexibleFit{candidate: c, box: box})
				continue
			}
		}

		// Least total overflow wins; the first listed wins ties.
		if best == nil || c.overflow.Total() < best.overflow.Total() {
			cc := c
			best = &cc
		}
	}

	if len(flexible) > 0 {
		fit := flexible[0]
		for _, f := range flexible[1:] {
			if f.box.Area() > fit.box.Area() {
				fit = f
			}
		}
		debug.Event("flexible fit", "index", fit.index, "pair", fit.pos, "box", fit.box)
		s.commit(fit.candidate, originRect, false, &fit.box, dir)
		return nil
	}

	if s.push && best != nil {
		debug.Event("pushing on screen", "index", best.index, "pair", best.pos)
		s.commit(*best, originRect, true, nil, dir)
		return nil
	}

	last := len(s.positions) - 1
	debug.Event("no position fits, using last", "index", last)
	s.commit(s.evaluate(last, s.positions[last], originRect, size, viewport, dir), originRect, false, nil, dir)
	return nil
}

// ReapplyLastPosition implements ConnectedStrategy. It re-measures and
// re-writes the committed position without choosing again. Without a
// committed position it performs a full Apply.
func (s *FlexibleStrategy) ReapplyLastPosition() error {
	if s.disposed {
		return nil
	}
	if err := s.Err(); err != nil {
		return err
	}
	if !s.active() {
		return nil
	}
	if s.lastPosition == nil {
		return s.Apply()
	}

	originRect, err := s.origin.rect(s.platform)
	if err != nil {
		return err
	}

	s.resetPaneStyles()
	s.resetHostStyles()

	dir := s.direction()
	viewport := s.narrowedViewport()
	last := s.lastPosition.clone()
	c := s.evaluate(-1, last, originRect, s.pane.IntrinsicSize(), viewport, dir)

	var box *Rect
	if s.flexibleDimensions && !s.pushed && !c.overflow.IsZero() {
		b := s.growthBox(c.attach, c.pos, viewport, dir)
		box = &b
	}
	s.commit(c, originRect, s.pushed, box, dir)
	return nil
}

// narrowedViewport is the viewport minus the configured margin.
func (s *FlexibleStrategy) narrowedViewport() Rect {
	return s.platform.ViewportRect().Inset(EdgeAll(s.viewportMargin))
}

// evaluate computes where pos would put a pane of the given size.
func (s *FlexibleStrategy) evaluate(index int, pos ConnectionPair, origin Rect, size Size, viewport Rect, dir Direction) candidate {
	offX, offY := pos.offset(s.defaultOffsetX, s.defaultOffsetY)
	at := originPoint(origin, pos, dir).Add(Point{X: offX, Y: offY})
	rect := overlayRect(at, size, pos, dir)
	return candidate{
		index:    index,
		pos:      pos,
		attach:   at,
		rect:     rect,
		overflow: rect.Overflow(viewport),
	}
}

// originPoint is the point on the origin rect the pair attaches to.
func originPoint(r Rect, pos ConnectionPair, dir Direction) Point {
	var p Point
	switch ResolveHorizontal(pos.OriginX, dir) {
	case SideLeft:
		p.X = r.X
	case SideRight:
		p.X = r.Right()
	default:
		p.X = r.X + r.Width/2
	}
	switch pos.OriginY {
	case Top:
		p.Y = r.Y
	case Bottom:
		p.Y = r.Bottom()
	default:
		p.Y = r.Y + r.Height/2
	}
	return p
}

// overlayRect places a pane of the given size so that its (OverlayX,
// OverlayY) point sits on at.
func overlayRect(at Point, size Size, pos ConnectionPair, dir Direction) Rect {
	r := Rect{X: at.X, Y: at.Y, Width: size.Width, Height: size.Height}
	switch ResolveHorizontal(pos.OverlayX, dir) {
	case SideRight:
		r.X -= size.Width
	case SideCenter:
		r.X -= size.Width / 2
	}
	switch pos.OverlayY {
	case Bottom:
		r.Y -= size.Height
	case VCenter:
		r.Y -= size.Height / 2
	}
	return r
}

// flexibleBox returns the space the pane may grow into from c's attachment
// point, and whether the pane's configured minimum size fits in it.
func (s *FlexibleStrategy) flexibleBox(c candidate, size Size, viewport Rect, dir Direction) (Rect, bool) {
	box := s.growthBox(c.attach, c.pos, viewport, dir)
	if box.IsEmpty() {
		return box, false
	}

	cfg := s.ref.Config()
	full := s.platform.ViewportRect()

	fitsV := c.overflow.Vertical() == 0
	if !fitsV {
		if minH, ok := cfg.MinHeight.Lookup(full.Height); ok && minH <= box.Height {
			fitsV = true
		}
	}
	fitsH := c.overflow.Horizontal() == 0
	if !fitsH {
		if minW, ok := cfg.MinWidth.Lookup(full.Width); ok && minW <= box.Width {
			fitsH = true
		}
	}
	return box, fitsV && fitsH
}

// growthBox is the part of the viewport on the pane's side of the
// attachment point. Centered axes get a box symmetric around the point.
// After the initial render, and unless growth is allowed, the box never
// exceeds the previous one.
func (s *FlexibleStrategy) growthBox(at Point, pos ConnectionPair, viewport Rect, dir Direction) Rect {
	var box Rect

	switch ResolveHorizontal(pos.OverlayX, dir) {
	case SideLeft:
		box.X, box.Width = at.X, viewport.Right()-at.X
	case SideRight:
		box.X, box.Width = viewport.X, at.X-viewport.X
	default:
		half := min(at.X-viewport.X, viewport.Right()-at.X)
		box.X, box.Width = at.X-half, half*2
	}

	switch pos.OverlayY {
	case Top:
		box.Y, box.Height = at.Y, viewport.Bottom()-at.Y
	case Bottom:
		box.Y, box.Height = viewport.Y, at.Y-viewport.Y
	default:
		half := min(at.Y-viewport.Y, viewport.Bottom()-at.Y)
		box.Y, box.Height = at.Y-half, half*2
	}

	if !s.initialRender && !s.growAfterOpen && s.lastBoundingBox != nil {
		if w := s.lastBoundingBox.Width; box.Width > w {
			box = shrinkAxis(box, w, ResolveHorizontal(pos.OverlayX, dir) == SideRight, true)
		}
		if h := s.lastBoundingBox.Height; box.Height > h {
			box = shrinkAxis(box, h, pos.OverlayY == Bottom, false)
		}
	}

	box.Width = max(box.Width, 0)
	box.Height = max(box.Height, 0)
	return box
}

// shrinkAxis reduces one dimension of box to n, keeping the attached edge
// in place (the far edge when fromEnd).
func shrinkAxis(box Rect, n int, fromEnd, horizontal bool) Rect {
	if horizontal {
		if fromEnd {
			box.X = box.Right() - n
		}
		box.Width = n
		return box
	}
	if fromEnd {
		box.Y = box.Bottom() - n
	}
	box.Height = n
	return box
}

// pushOnScreen translates r the minimum distance that brings it inside
// viewport. An axis where r is larger than the viewport aligns r's start
// edge with the viewport's. A locked strategy re-uses its previous push.
func (s *FlexibleStrategy) pushOnScreen(r Rect, viewport Rect) Rect {
	if s.locked && s.previousPush != nil {
		return r.Translate(s.previousPush.X, s.previousPush.Y)
	}

	o := r.Overflow(viewport)

	var push Point
	if r.Width <= viewport.Width {
		if o.Left > 0 {
			push.X = o.Left
		} else {
			push.X = -o.Right
		}
	} else {
		push.X = viewport.X - r.X
	}
	if r.Height <= viewport.Height {
		if o.Top > 0 {
			push.Y = o.Top
		} else {
			push.Y = -o.Bottom
		}
	} else {
		push.Y = viewport.Y - r.Y
	}

	s.previousPush = &push
	return r.Translate(push.X, push.Y)
}
