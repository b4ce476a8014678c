package overlay

import (
	"testing"
)

func TestComputeScrollingVisibility(t *testing.T) {
	type tc struct {
		origin     Rect
		overlay    Rect
		containers []Measurable
		want       ScrollingVisibility
	}

	scroller := NewElement(WithRect(NewRect(0, 0, 200, 200)))
	tests := map[string]tc{
		"no containers": {
			origin:  NewRect(-50, -50, 10, 10),
			overlay: NewRect(-50, -40, 10, 10),
			want:    ScrollingVisibility{},
		},
		"both inside": {
			origin:     NewRect(10, 10, 20, 20),
			overlay:    NewRect(10, 30, 50, 50),
			containers: []Measurable{scroller},
			want:       ScrollingVisibility{},
		},
		"overlay clipped": {
			origin:     NewRect(10, 170, 20, 20),
			overlay:    NewRect(10, 190, 50, 50),
			containers: []Measurable{scroller},
			want:       ScrollingVisibility{IsOverlayClipped: true},
		},
		"origin scrolled out": {
			origin:     NewRect(10, 210, 20, 20),
			overlay:    NewRect(10, 190, 50, 50),
			containers: []Measurable{scroller},
			want: ScrollingVisibility{
				IsOriginOutsideView: true,
				IsOverlayClipped:    true,
			},
		},
		"touching edge is outside": {
			origin:     NewRect(10, 180, 20, 20),
			overlay:    NewRect(10, 200, 50, 50),
			containers: []Measurable{scroller},
			want:       ScrollingVisibility{IsOverlayOutsideView: true},
		},
		"any container counts": {
			origin:  NewRect(10, 10, 20, 20),
			overlay: NewRect(10, 30, 50, 50),
			containers: []Measurable{
				scroller,
				NewElement(WithRect(NewRect(0, 0, 40, 40))),
			},
			want: ScrollingVisibility{IsOverlayClipped: true},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := ComputeScrollingVisibility(tt.origin, tt.overlay, tt.containers)
			if got != tt.want {
				t.Errorf("ComputeScrollingVisibility() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestChangeFeed(t *testing.T) {
	f := newChangeFeed()
	if f.observed() {
		t.Fatal("observed() = true with no subscribers")
	}

	var a, b int
	unbindA := f.subscribe(func(PositionChange) { a++ })
	f.subscribe(func(PositionChange) { b++ })

	f.emit(PositionChange{})
	unbindA()
	unbindA()
	f.emit(PositionChange{})

	if a != 1 || b != 2 {
		t.Errorf("deliveries a=%d b=%d, want a=1 b=2", a, b)
	}

	f.complete()
	f.complete()
	if f.observed() {
		t.Error("observed() = true after complete()")
	}
	select {
	case <-f.done:
	default:
		t.Error("done not closed after complete()")
	}
}
