package overlay

import "strconv"

// Inline properties this strategy owns. Resets remove exactly these.
var (
	paneProperties = []string{"position", "top", "bottom", "left", "right", "max-width", "max-height"}
	hostProperties = []string{"top", "left", "width", "height"}
)

func px(n int) string {
	return strconv.Itoa(n) + "px"
}

// commit writes c as the committed position. pushed moves the pane on
// screen; box, when set, is the flexible box the pane shrinks into.
func (s *FlexibleStrategy) commit(c candidate, originRect Rect, pushed bool, box *Rect, dir Direction) {
	full := s.platform.ViewportRect()
	viewport := s.narrowedViewport()

	rect := c.rect
	if pushed {
		rect = s.pushOnScreen(rect, viewport)
	}
	if box != nil {
		rect = fitInto(rect, *box, c.pos, dir)
	}

	var hostBox Rect
	if s.flexibleDimensions {
		switch {
		case box != nil:
			hostBox = *box
		case pushed:
			hostBox = viewport
		default:
			hostBox = s.growthBox(c.attach, c.pos, viewport, dir)
		}
	}

	s.writePaneStyles(rect, c.pos, dir, full, hostBox)
	if s.flexibleDimensions {
		s.writeHostStyles(hostBox)
		size := hostBox.Size()
		s.lastBoundingBox = &size
	}
	s.addPanelClasses(c.pos.PanelClass)

	pos := c.pos.clone()
	s.lastPosition = &pos
	s.pushed = pushed
	s.positionsChanged = false
	s.stale = false
	s.initialRender = false

	s.notify(pos, originRect, rect)
}

// fitInto shrinks r to box, keeping the pane's attached edge in place.
func fitInto(r Rect, box Rect, pos ConnectionPair, dir Direction) Rect {
	w := min(r.Width, box.Width)
	h := min(r.Height, box.Height)

	switch ResolveHorizontal(pos.OverlayX, dir) {
	case SideLeft:
		r.X = box.X
	case SideRight:
		r.X = box.Right() - w
	default:
		r.X = box.X + (box.Width-w)/2
	}
	switch pos.OverlayY {
	case Top:
		r.Y = box.Y
	case Bottom:
		r.Y = box.Bottom() - h
	default:
		r.Y = box.Y + (box.Height-h)/2
	}
	r.Width, r.Height = w, h
	return r
}

// writePaneStyles writes the pane's coordinates. A pane attached by its
// bottom or right edge is written with bottom/right so that a change in its
// own size does not move the attached edge.
func (s *FlexibleStrategy) writePaneStyles(r Rect, pos ConnectionPair, dir Direction, full Rect, box Rect) {
	st := s.pane.Style()
	st.Set("position", string(s.positionType))

	if pos.OverlayY == Bottom {
		st.Set("bottom", px(full.Bottom()-r.Bottom()))
	} else {
		st.Set("top", px(r.Y))
	}
	if ResolveHorizontal(pos.OverlayX, dir) == SideRight {
		st.Set("right", px(full.Right()-r.Right()))
	} else {
		st.Set("left", px(r.X))
	}

	if !s.flexibleDimensions {
		return
	}
	cfg := s.ref.Config()
	maxW, maxH := box.Width, box.Height
	if v, ok := cfg.MaxWidth.Lookup(full.Width); ok {
		maxW = min(maxW, v)
	}
	if v, ok := cfg.MaxHeight.Lookup(full.Height); ok {
		maxH = min(maxH, v)
	}
	st.Set("max-width", px(maxW))
	st.Set("max-height", px(maxH))
}

// writeHostStyles sizes the bounding box host.
func (s *FlexibleStrategy) writeHostStyles(box Rect) {
	st := s.host.Style()
	st.Set("top", px(box.Y))
	st.Set("left", px(box.X))
	st.Set("width", px(box.Width))
	st.Set("height", px(box.Height))
}

func (s *FlexibleStrategy) resetPaneStyles() {
	s.pane.Style().Reset(paneProperties...)
}

func (s *FlexibleStrategy) resetHostStyles() {
	s.host.Style().Reset(hostProperties...)
}

func (s *FlexibleStrategy) addPanelClasses(classes []string) {
	for _, c := range classes {
		if !s.pane.HasClass(c) {
			s.pane.AddClass(c)
			s.panelClasses = append(s.panelClasses, c)
		}
	}
}

// clearPanelClasses removes only the classes a previous commit added.
func (s *FlexibleStrategy) clearPanelClasses() {
	if s.pane == nil {
		s.panelClasses = nil
		return
	}
	for _, c := range s.panelClasses {
		s.pane.RemoveClass(c)
	}
	s.panelClasses = nil
}

// notify emits a PositionChange when someone listens and either the pair
// or the visibility differs from the last event.
func (s *FlexibleStrategy) notify(pos ConnectionPair, originRect, paneRect Rect) {
	if !s.feed.observed() {
		return
	}
	ev := PositionChange{
		ConnectionPair:      pos,
		ScrollingVisibility: ComputeScrollingVisibility(originRect, paneRect, s.scrollables),
	}
	if last := s.lastEmitted; last != nil &&
		last.ConnectionPair.Equal(ev.ConnectionPair) &&
		last.ScrollingVisibility == ev.ScrollingVisibility {
		return
	}
	s.lastEmitted = &ev
	s.feed.emit(ev)
}
