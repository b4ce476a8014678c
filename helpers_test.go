package overlay

import "testing"

// fixture is a document with one anchor element and one overlay pane.
type fixture struct {
	doc    *Document
	origin *Element
	pane   *Element
	ref    *Overlay
}

func newFixture(t *testing.T, viewport Size, origin Rect, pane Size, opts ...OverlayOption) *fixture {
	t.Helper()
	f := &fixture{
		doc:    NewDocument(viewport.Width, viewport.Height),
		origin: NewElement(WithID("origin"), WithRect(origin)),
		pane:   NewElement(WithID("pane"), WithRect(NewRect(0, 0, pane.Width, pane.Height))),
	}
	f.ref = NewOverlay(f.pane, opts...)
	return f
}

func (f *fixture) flexible(t *testing.T, positions ...ConnectionPair) *FlexibleStrategy {
	t.Helper()
	s := NewFlexibleStrategy(f.doc, OriginElement(f.origin)).WithPositions(positions...)
	if err := s.Attach(f.ref); err != nil {
		t.Fatalf("Attach() error = %v", err)
	}
	return s
}

func mustApply(t *testing.T, s PositionStrategy) {
	t.Helper()
	if err := s.Apply(); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
}

var (
	below = Pair(Start, Bottom, Start, Top)
	above = Pair(Start, Top, Start, Bottom)
)
