package overlay

import (
	"sync"

	"github.com/grindlemire/go-overlay/internal/layout"
)

// ScrollingVisibility tells whether the origin and the overlay are clipped
// by, or scrolled entirely out of, the scrollable ancestor containers.
// It is derived from fresh measurements on every observation.
type ScrollingVisibility struct {
	IsOriginClipped      bool
	IsOriginOutsideView  bool
	IsOverlayClipped     bool
	IsOverlayOutsideView bool
}

// PositionChange is emitted after the flexible strategy commits a position.
type PositionChange struct {
	ConnectionPair      ConnectionPair
	ScrollingVisibility ScrollingVisibility
}

// ComputeScrollingVisibility measures origin and overlay rects against every
// container's current bounding rect.
func ComputeScrollingVisibility(origin, overlay Rect, containers []Measurable) ScrollingVisibility {
	rects := make([]Rect, len(containers))
	for i, c := range containers {
		rects[i] = c.BoundingRect()
	}
	return ScrollingVisibility{
		IsOriginClipped:      layout.IsClipped(origin, rects),
		IsOriginOutsideView:  layout.IsOutsideView(origin, rects),
		IsOverlayClipped:     layout.IsClipped(overlay, rects),
		IsOverlayOutsideView: layout.IsOutsideView(overlay, rects),
	}
}

// Unbind is a handle to remove a subscription. Call it to stop receiving
// events. Calling it more than once is harmless.
type Unbind func()

// subscriber is a registered callback.
type subscriber struct {
	fn     func(PositionChange)
	active bool
}

// changeFeed fans position changes out to subscribers and completes once.
type changeFeed struct {
	mu     sync.Mutex
	subs   []*subscriber
	done   chan struct{}
	closed bool
}

func newChangeFeed() *changeFeed {
	return &changeFeed{done: make(chan struct{})}
}

// subscribe registers fn. After completion it returns a no-op Unbind.
func (f *changeFeed) subscribe(fn func(PositionChange)) Unbind {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return func() {}
	}
	s := &subscriber{fn: fn, active: true}
	f.subs = append(f.subs, s)
	return func() {
		f.mu.Lock()
		s.active = false
		f.mu.Unlock()
	}
}

// observed reports whether anyone is listening, so callers can skip
// measuring visibility when nobody is.
func (f *changeFeed) observed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, s := range f.subs {
		if s.active {
			return true
		}
	}
	return false
}

// emit delivers ev to active subscribers in registration order.
func (f *changeFeed) emit(ev PositionChange) {
	f.mu.Lock()
	active := make([]*subscriber, 0, len(f.subs))
	for _, s := range f.subs {
		if s.active {
			active = append(active, s)
		}
	}
	// Drop unbound subscribers so they do not accumulate.
	f.subs = active
	f.mu.Unlock()

	for _, s := range active {
		s.fn(ev)
	}
}

// complete drops every subscriber and closes the done channel.
func (f *changeFeed) complete() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return
	}
	f.closed = true
	f.subs = nil
	close(f.done)
}
