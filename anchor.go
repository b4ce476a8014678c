package overlay

import (
	"strconv"
	"strings"

	"github.com/grindlemire/go-overlay/internal/debug"
)

const anchorPositionedClass = "overlay-anchor-positioned"

// Inline properties the anchor strategy owns on the pane.
var anchorPaneProperties = []string{
	"position", "position-anchor",
	"top", "bottom", "left", "right",
	"justify-self", "align-self",
	"margin-left", "margin-top",
	"position-try-fallbacks", "position-try-order",
}

var _ ConnectedStrategy = (*AnchorStrategy)(nil)

// AnchorStrategy expresses the preferred positions as native anchor
// declarations and leaves the fit decision to the platform's layout pass.
//
// A single position is written directly onto the pane. Several positions
// become one "@position-try" block each, in a stylesheet owned by this
// instance, referenced in order from the pane. The strategy never measures
// and never learns which block the platform picked, so position queries
// fail with CodeUnsupported.
//
// It has a strictly smaller feature set than FlexibleStrategy: no per-pair
// panel classes, no point origins, and an overlay can only be centered over
// the origin's center, never against a single origin side.
type AnchorStrategy struct {
	strategyCore

	ids            IDGenerator
	tryName        string
	sheet          *StyleSheet
	sheetAdopted   bool
	boundAnchor    bool
	defaultOffsetX int
	defaultOffsetY int
}

// NewAnchorStrategy creates a declarative strategy for origin. Fallback rule
// sets are named with random UUIDs unless WithIDGenerator says otherwise.
func NewAnchorStrategy(p Platform, origin Origin) *AnchorStrategy {
	s := &AnchorStrategy{
		strategyCore: strategyCore{
			platform:  p,
			hostClass: anchorPositionedClass,
		},
		ids: UUIDs(),
	}
	s.SetOrigin(origin)
	return s
}

// --- Configuration ---

// SetPositions implements ConnectedStrategy. Centering the overlay against a
// single origin side is rejected here, before anything is written.
func (s *AnchorStrategy) SetPositions(positions ...ConnectionPair) error {
	s.positions = clonePositions(positions)
	return s.recordErr(&s.positionsErr, validateAnchorPositions(s.positions))
}

// SetOrigin implements ConnectedStrategy.
func (s *AnchorStrategy) SetOrigin(origin Origin) error {
	s.origin = origin
	var err error
	switch {
	case origin.IsZero():
		err = newError(CodeMissingOrigin, "origin must be an element or an anchor name")
	case origin.point != nil:
		err = newError(CodeUnsupported, "anchor positioning cannot attach to a point origin")
	case origin.el != nil:
		if _, ok := origin.el.(*Element); !ok {
			err = newError(CodeUnsupported, "anchor positioning needs an *Element origin, got %T", origin.el)
		}
	}
	return s.recordErr(&s.originErr, err)
}

// WithPositions sets the preferred positions, most desirable first.
func (s *AnchorStrategy) WithPositions(positions ...ConnectionPair) *AnchorStrategy {
	s.SetPositions(positions...)
	return s
}

// WithOrigin sets the origin.
func (s *AnchorStrategy) WithOrigin(origin Origin) *AnchorStrategy {
	s.SetOrigin(origin)
	return s
}

// WithDefaultOffsetX sets the horizontal offset for pairs without one.
func (s *AnchorStrategy) WithDefaultOffsetX(offset int) *AnchorStrategy {
	s.defaultOffsetX = offset
	s.stale = true
	return s
}

// WithDefaultOffsetY sets the vertical offset for pairs without one.
func (s *AnchorStrategy) WithDefaultOffsetY(offset int) *AnchorStrategy {
	s.defaultOffsetY = offset
	s.stale = true
	return s
}

// WithIDGenerator sets the generator naming this instance's fallback rule
// set. It takes effect at the next Attach.
func (s *AnchorStrategy) WithIDGenerator(gen IDGenerator) *AnchorStrategy {
	if gen != nil {
		s.ids = gen
	}
	return s
}

// --- Lifecycle ---

// Attach implements PositionStrategy.
func (s *AnchorStrategy) Attach(ref OverlayRef) error {
	wasAttached := s.ref != nil
	if err := s.attach(ref, s.validate); err != nil {
		return err
	}
	if !wasAttached {
		s.tryName = "--overlay-" + s.ids()
		s.sheet = NewStyleSheet()
	}
	return nil
}

func (s *AnchorStrategy) validate() error {
	if err := s.Err(); err != nil {
		return err
	}
	return validateAnchorPositions(s.positions)
}

// Apply implements PositionStrategy.
func (s *AnchorStrategy) Apply() error {
	if s.disposed {
		return nil
	}
	if err := s.Err(); err != nil {
		return err
	}
	if !s.active() {
		return nil
	}

	s.reset()

	name, err := s.bindAnchor()
	if err != nil {
		return err
	}

	dir := s.direction()
	blocks := make([]Declarations, len(s.positions))
	for i, pos := range s.positions {
		offX, offY := pos.offset(s.defaultOffsetX, s.defaultOffsetY)
		blocks[i], err = tryBlock(pos, dir, name, offX, offY)
		if err != nil {
			return err
		}
	}

	st := s.pane.Style()
	st.Set("position", string(PositionFixed))

	if len(blocks) == 1 {
		blocks[0].Each(st.Set)
		s.withdrawSheet()
		debug.Event("anchor position written", "pair", s.positions[0], "dir", dir)
		s.stale = false
		return nil
	}

	names := make([]string, len(blocks))
	for i, b := range blocks {
		names[i] = s.tryName + "-" + strconv.Itoa(i)
		s.sheet.AddRule("@position-try "+names[i], b)
	}
	if !s.sheetAdopted {
		s.platform.AdoptStyleSheet(s.sheet)
		s.sheetAdopted = true
	}
	st.Set("position-try-fallbacks", strings.Join(names, ", "))
	st.Set("position-try-order", "normal")
	debug.Event("anchor fallback chain written", "blocks", len(blocks), "name", s.tryName, "dir", dir)
	s.stale = false
	return nil
}

// Detach implements PositionStrategy. The declarative engine keeps no
// placement state beyond what Apply rewrites, so nothing is cleared.
func (s *AnchorStrategy) Detach() {
	s.stale = true
}

// Dispose implements PositionStrategy.
func (s *AnchorStrategy) Dispose() {
	if s.disposed {
		return
	}
	if s.pane != nil {
		s.reset()
	}
	s.withdrawSheet()
	s.sheet = nil
	s.release()
	debug.Log("anchor strategy disposed")
}

// ReapplyLastPosition implements ConnectedStrategy. The platform picks the
// position after Apply returns, so there is nothing to re-apply.
func (s *AnchorStrategy) ReapplyLastPosition() error {
	return newError(CodeUnsupported, "anchor positioning does not know which position the platform chose")
}

// LastPosition implements ConnectedStrategy. Always CodeUnsupported.
func (s *AnchorStrategy) LastPosition() (ConnectionPair, bool, error) {
	return ConnectionPair{}, false, newError(CodeUnsupported, "anchor positioning does not know which position the platform chose")
}

// FallbackName returns the base name of this instance's fallback rule set,
// or "" before the first Attach.
func (s *AnchorStrategy) FallbackName() string {
	return s.tryName
}

// reset removes every declaration a previous Apply wrote.
func (s *AnchorStrategy) reset() {
	s.pane.Style().Reset(anchorPaneProperties...)
	if s.boundAnchor {
		s.pane.SetAnchorElement(nil)
		s.boundAnchor = false
	}
	if s.sheet != nil {
		s.sheet.Clear()
	}
}

// withdrawSheet removes the fallback sheet from the platform.
func (s *AnchorStrategy) withdrawSheet() {
	if s.sheet == nil {
		return
	}
	s.sheet.Clear()
	if s.sheetAdopted {
		s.platform.RemoveStyleSheet(s.sheet)
		s.sheetAdopted = false
	}
}

// bindAnchor ties the pane to the origin. Named origins are referenced by
// name; element origins become the pane's implicit anchor. Returns the name
// to use in anchor() expressions ("" for the implicit anchor).
func (s *AnchorStrategy) bindAnchor() (string, error) {
	if name := s.origin.Name(); name != "" {
		s.pane.Style().Set("position-anchor", name)
		return name, nil
	}
	el, ok := s.origin.element(s.platform)
	if !ok {
		return "", newError(CodeMissingOrigin, "origin %s cannot be used as an anchor", s.origin)
	}
	s.pane.SetAnchorElement(el)
	s.boundAnchor = true
	return "", nil
}

// validateAnchorPositions adds the anchor engine's restrictions to the
// common checks.
func validateAnchorPositions(positions []ConnectionPair) error {
	if err := validatePositions(positions, false); err != nil {
		return err
	}
	for i, p := range positions {
		if p.OverlayX == HCenter && p.OriginX != HCenter {
			return newError(CodeUnsupported, "position %d: cannot center the overlay horizontally against the origin's %s side", i, p.OriginX)
		}
		if p.OverlayY == VCenter && p.OriginY != VCenter {
			return newError(CodeUnsupported, "position %d: cannot center the overlay vertically against the origin's %s side", i, p.OriginY)
		}
	}
	return nil
}
