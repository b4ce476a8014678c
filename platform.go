package overlay

// Platform is the capability layer the strategies consume. A terminal host,
// a browser bridge or a test supplies it.
type Platform interface {
	// Interactive reports whether this is a real, paintable render target.
	// Strategies do nothing when it is false.
	Interactive() bool

	// SupportsAnchorPositioning reports native anchor positioning support.
	SupportsAnchorPositioning() bool

	// ViewportRect returns the visible viewport, offset by the current scroll.
	ViewportRect() Rect

	// LookupAnchor resolves a registered anchor name.
	LookupAnchor(name string) (*Element, bool)

	// AdoptStyleSheet makes sheet visible to the anchor layout pass.
	AdoptStyleSheet(sheet *StyleSheet)

	// RemoveStyleSheet withdraws a previously adopted sheet.
	RemoveStyleSheet(sheet *StyleSheet)
}
