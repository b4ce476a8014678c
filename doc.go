// Package overlay positions floating panels relative to an origin element.
//
// A ConnectedStrategy is configured with an origin and an ordered list of
// ConnectionPairs, attached to an OverlayRef, and applied whenever the
// layout may have changed:
//
//	s := overlay.NewConnectedStrategy(doc, overlay.OriginElement(trigger))
//	s.SetPositions(
//		overlay.Pair(overlay.Start, overlay.Bottom, overlay.Start, overlay.Top),
//		overlay.Pair(overlay.Start, overlay.Top, overlay.Start, overlay.Bottom),
//	)
//	if err := s.Attach(ref); err != nil { ... }
//	s.Apply()
//
// Two engines implement the contract. FlexibleStrategy measures in Go and
// writes explicit coordinates; it supports centering, pushing, flexible
// dimensions, locking and position-change events. AnchorStrategy writes
// native anchor declarations and a fallback chain and lets the platform's
// layout pass choose; it cannot report what was chosen.
//
// Users import this single package for the public API: strategies,
// elements, the in-memory Document platform and the layout types.
package overlay
