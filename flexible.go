package overlay

import "github.com/grindlemire/go-overlay/internal/debug"

// PositionType is the CSS position scheme written onto the pane.
type PositionType string

const (
	PositionFixed    PositionType = "fixed"
	PositionAbsolute PositionType = "absolute"
)

// Classes this strategy adds to the overlay.
const (
	boundingBoxClass = "overlay-connected-position-bounding-box"
)

var _ ConnectedStrategy = (*FlexibleStrategy)(nil)

// FlexibleStrategy places an overlay by measuring the origin and the pane
// and scoring every preferred position against the viewport.
//
// The first position that fits wins. When none fits, the strategy tries a
// flexible fit (shrinking the pane to the available space), then pushes the
// least-overflowing position on screen, and otherwise falls back to the last
// listed position.
type FlexibleStrategy struct {
	strategyCore

	viewportMargin     int
	push               bool
	flexibleDimensions bool
	growAfterOpen      bool
	locked             bool
	defaultOffsetX     int
	defaultOffsetY     int
	positionType       PositionType
	scrollables        []Measurable

	// Placement state, cleared by Detach.
	initialRender    bool
	positionsChanged bool
	lastPosition     *ConnectionPair
	pushed           bool
	previousPush     *Point
	lastBoundingBox  *Size
	panelClasses     []string
	lastEmitted      *PositionChange

	feed *changeFeed
}

// NewFlexibleStrategy creates a measuring strategy for origin.
// Pushing is enabled; flexible dimensions, growth after open and position
// locking are disabled.
func NewFlexibleStrategy(p Platform, origin Origin) *FlexibleStrategy {
	s := &FlexibleStrategy{
		strategyCore: strategyCore{
			platform:  p,
			hostClass: boundingBoxClass,
		},
		push:          true,
		positionType:  PositionFixed,
		initialRender: true,
		feed:          newChangeFeed(),
	}
	s.SetOrigin(origin)
	return s
}

// --- Configuration ---

// SetPositions implements ConnectedStrategy.
func (s *FlexibleStrategy) SetPositions(positions ...ConnectionPair) error {
	next := clonePositions(positions)
	if !equalPositions(s.positions, next) {
		s.positionsChanged = true
	}
	s.positions = next
	if s.lastPosition != nil && !s.containsPosition(*s.lastPosition) {
		s.lastPosition = nil
	}
	return s.recordErr(&s.positionsErr, validatePositions(s.positions, true))
}

// SetOrigin implements ConnectedStrategy.
func (s *FlexibleStrategy) SetOrigin(origin Origin) error {
	s.origin = origin
	var err error
	if origin.IsZero() {
		err = newError(CodeMissingOrigin, "origin must be an element, an anchor name or a point")
	}
	return s.recordErr(&s.originErr, err)
}

// WithPositions sets the preferred positions, most desirable first.
// A configuration error is reported by Err, Attach and Apply.
func (s *FlexibleStrategy) WithPositions(positions ...ConnectionPair) *FlexibleStrategy {
	s.SetPositions(positions...)
	return s
}

// WithOrigin sets the origin.
func (s *FlexibleStrategy) WithOrigin(origin Origin) *FlexibleStrategy {
	s.SetOrigin(origin)
	return s
}

// WithViewportMargin keeps the overlay at least margin units from every
// viewport edge.
func (s *FlexibleStrategy) WithViewportMargin(margin int) *FlexibleStrategy {
	s.viewportMargin = margin
	s.stale = true
	return s
}

// WithPush enables pushing the overlay on screen when no position fits.
func (s *FlexibleStrategy) WithPush(push bool) *FlexibleStrategy {
	s.push = push
	s.stale = true
	return s
}

// WithFlexibleDimensions lets the pane shrink into the available space and
// sizes the bounding box host accordingly.
func (s *FlexibleStrategy) WithFlexibleDimensions(flexible bool) *FlexibleStrategy {
	s.flexibleDimensions = flexible
	s.stale = true
	return s
}

// WithGrowAfterOpen lets the bounding box grow after the initial render.
func (s *FlexibleStrategy) WithGrowAfterOpen(grow bool) *FlexibleStrategy {
	s.growAfterOpen = grow
	s.stale = true
	return s
}

// WithLockedPosition keeps the committed position across applies until the
// position list changes or the strategy is detached.
func (s *FlexibleStrategy) WithLockedPosition(locked bool) *FlexibleStrategy {
	s.locked = locked
	s.stale = true
	return s
}

// WithDefaultOffsetX sets the horizontal offset for pairs without one.
func (s *FlexibleStrategy) WithDefaultOffsetX(offset int) *FlexibleStrategy {
	s.defaultOffsetX = offset
	s.stale = true
	return s
}

// WithDefaultOffsetY sets the vertical offset for pairs without one.
func (s *FlexibleStrategy) WithDefaultOffsetY(offset int) *FlexibleStrategy {
	s.defaultOffsetY = offset
	s.stale = true
	return s
}

// WithScrollableContainers sets the ancestors used for ScrollingVisibility.
func (s *FlexibleStrategy) WithScrollableContainers(containers ...Measurable) *FlexibleStrategy {
	s.scrollables = append([]Measurable(nil), containers...)
	s.stale = true
	return s
}

// WithPositionType selects fixed or absolute positioning for the pane.
func (s *FlexibleStrategy) WithPositionType(t PositionType) *FlexibleStrategy {
	s.positionType = t
	s.stale = true
	return s
}

// --- Lifecycle ---

// Attach implements PositionStrategy.
func (s *FlexibleStrategy) Attach(ref OverlayRef) error {
	wasAttached := s.ref != nil
	if err := s.attach(ref, s.validate); err != nil {
		return err
	}
	if !wasAttached {
		s.initialRender = true
		s.lastBoundingBox = nil
	}
	return nil
}

// validate runs the full configuration check for Attach.
func (s *FlexibleStrategy) validate() error {
	if err := s.Err(); err != nil {
		return err
	}
	return validatePositions(s.positions, true)
}

// Detach implements PositionStrategy.
func (s *FlexibleStrategy) Detach() {
	s.clearPanelClasses()
	s.lastPosition = nil
	s.previousPush = nil
	s.pushed = false
	s.lastBoundingBox = nil
	s.lastEmitted = nil
	s.initialRender = true
}

// Dispose implements PositionStrategy.
func (s *FlexibleStrategy) Dispose() {
	if s.disposed {
		return
	}
	if s.pane != nil {
		s.clearPanelClasses()
		s.resetPaneStyles()
		s.resetHostStyles()
	}
	s.feed.complete()
	s.release()
	s.lastPosition = nil
	s.previousPush = nil
	debug.Log("flexible strategy disposed")
}

// HandleViewportResize treats the next placement as an initial render, so
// the bounding box may grow again, and applies.
func (s *FlexibleStrategy) HandleViewportResize() error {
	s.initialRender = true
	return s.Apply()
}

// --- Observation ---

// OnPositionChange registers fn for position change events. Events carry the
// committed pair and the scrolling visibility measured at commit time.
// Nothing is emitted after Dispose.
func (s *FlexibleStrategy) OnPositionChange(fn func(PositionChange)) Unbind {
	return s.feed.subscribe(fn)
}

// Done is closed when the strategy is disposed and the change stream ends.
func (s *FlexibleStrategy) Done() <-chan struct{} {
	return s.feed.done
}

// LastPosition implements ConnectedStrategy.
func (s *FlexibleStrategy) LastPosition() (ConnectionPair, bool, error) {
	if s.lastPosition == nil {
		return ConnectionPair{}, false, nil
	}
	return s.lastPosition.clone(), true, nil
}

func (s *FlexibleStrategy) containsPosition(p ConnectionPair) bool {
	for _, q := range s.positions {
		if q.Equal(p) {
			return true
		}
	}
	return false
}
