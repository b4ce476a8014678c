package overlay

import (
	"slices"
	"strconv"
	"testing"
)

func TestDocument_Anchors(t *testing.T) {
	doc := NewDocument(800, 600)
	el := NewElement(WithID("trigger"))

	doc.RegisterAnchor("--trigger", el)
	if got, ok := doc.LookupAnchor("--trigger"); !ok || got != el {
		t.Fatalf("LookupAnchor(--trigger) = %v, %v, want the element", got, ok)
	}
	if el.AnchorName() != "--trigger" {
		t.Errorf("AnchorName() = %q, want %q", el.AnchorName(), "--trigger")
	}

	doc.UnregisterAnchor("--trigger")
	if _, ok := doc.LookupAnchor("--trigger"); ok {
		t.Error("LookupAnchor() found an unregistered anchor")
	}
	if el.AnchorName() != "" {
		t.Errorf("AnchorName() = %q after UnregisterAnchor, want empty", el.AnchorName())
	}
}

func TestDocument_StyleSheets(t *testing.T) {
	doc := NewDocument(800, 600)
	a, b := NewStyleSheet(), NewStyleSheet()

	doc.AdoptStyleSheet(a)
	doc.AdoptStyleSheet(a)
	doc.AdoptStyleSheet(b)
	doc.AdoptStyleSheet(nil)
	if n := len(doc.StyleSheets()); n != 2 {
		t.Fatalf("len(StyleSheets()) = %d, want 2", n)
	}

	doc.RemoveStyleSheet(a)
	doc.RemoveStyleSheet(a)
	sheets := doc.StyleSheets()
	if len(sheets) != 1 || sheets[0] != b {
		t.Errorf("StyleSheets() = %v, want only b", sheets)
	}
}

func TestDocument_Resize(t *testing.T) {
	doc := NewDocument(800, 600)
	doc.Resize(1024, 768)

	if got := doc.ViewportRect(); got != NewRect(0, 0, 1024, 768) {
		t.Errorf("ViewportRect() = %v, want 1024x768", got)
	}
}

func TestDocument_Layout(t *testing.T) {
	type tc struct {
		origin       Rect
		positions    []ConnectionPair
		dir          Direction
		wantRect     Rect
		wantFallback string
		wantFits     bool
	}

	tests := map[string]tc{
		"single position below": {
			origin:    NewRect(100, 100, 50, 20),
			positions: []ConnectionPair{below},
			wantRect:  NewRect(100, 120, 60, 30),
			wantFits:  true,
		},
		"single position rtl": {
			origin:    NewRect(100, 100, 50, 20),
			positions: []ConnectionPair{below},
			dir:       RTL,
			wantRect:  NewRect(90, 120, 60, 30),
			wantFits:  true,
		},
		"first fallback fits": {
			origin:       NewRect(100, 100, 50, 20),
			positions:    []ConnectionPair{above, below},
			wantRect:     NewRect(100, 70, 60, 30),
			wantFallback: "--overlay-1-0",
			wantFits:     true,
		},
		"second fallback fits": {
			origin:       NewRect(100, 5, 50, 20),
			positions:    []ConnectionPair{above, below},
			wantRect:     NewRect(100, 25, 60, 30),
			wantFallback: "--overlay-1-1",
			wantFits:     true,
		},
		"nothing fits uses the first": {
			origin:       NewRect(100, 5, 50, 580),
			positions:    []ConnectionPair{above, below},
			wantRect:     NewRect(100, -25, 60, 30),
			wantFallback: "--overlay-1-0",
			wantFits:     false,
		},
		"centered with offsets": {
			origin:    NewRect(100, 100, 50, 20),
			positions: []ConnectionPair{Pair(HCenter, Bottom, HCenter, Top).WithOffset(3, 2)},
			wantRect:  NewRect(98, 122, 60, 30),
			wantFits:  true,
		},
		"end aligned with offset": {
			origin:    NewRect(100, 100, 50, 20),
			positions: []ConnectionPair{Pair(End, Top, End, Bottom).WithOffset(4, 0)},
			wantRect:  NewRect(94, 70, 60, 30),
			wantFits:  true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			f := newFixture(t, Size{Width: 800, Height: 600}, tt.origin, Size{Width: 60, Height: 30}, WithDirection(tt.dir))
			s := f.anchored(t, tt.positions...)
			mustApply(t, s)

			got, err := f.doc.Layout(f.pane)
			if err != nil {
				t.Fatalf("Layout() error = %v", err)
			}
			if got.Rect != tt.wantRect {
				t.Errorf("Rect = %v, want %v", got.Rect, tt.wantRect)
			}
			if got.Fallback != tt.wantFallback {
				t.Errorf("Fallback = %q, want %q", got.Fallback, tt.wantFallback)
			}
			if got.Fits != tt.wantFits {
				t.Errorf("Fits = %v, want %v", got.Fits, tt.wantFits)
			}
			if f.pane.BoundingRect() != tt.wantRect {
				t.Errorf("pane BoundingRect() = %v, want %v", f.pane.BoundingRect(), tt.wantRect)
			}
		})
	}
}

func TestDocument_LayoutMatchesFlexible(t *testing.T) {
	positions := []ConnectionPair{above, below, Pair(End, Bottom, End, Top)}
	origins := map[string]Rect{
		"room above":       NewRect(100, 100, 50, 20),
		"top edge":         NewRect(100, 5, 50, 20),
		"top right corner": NewRect(770, 5, 20, 20),
	}

	for name, origin := range origins {
		t.Run(name, func(t *testing.T) {
			flex := newFixture(t, Size{Width: 800, Height: 600}, origin, Size{Width: 60, Height: 30})
			fs := flex.flexible(t, positions...).WithPush(false)
			mustApply(t, fs)
			want, _, _ := fs.LastPosition()

			anch := newFixture(t, Size{Width: 800, Height: 600}, origin, Size{Width: 60, Height: 30})
			as := anch.anchored(t, positions...)
			mustApply(t, as)
			got, err := anch.doc.Layout(anch.pane)
			if err != nil {
				t.Fatalf("Layout() error = %v", err)
			}

			idx := slices.IndexFunc(positions, want.Equal)
			if wantName := "--overlay-1-" + strconv.Itoa(idx); got.Fallback != wantName {
				t.Errorf("anchor layout chose %q, flexible chose %v (%s)", got.Fallback, want, wantName)
			}
			placed, err := flex.doc.Layout(flex.pane)
			if err != nil {
				t.Fatalf("Layout() of flexible output error = %v", err)
			}
			if got.Rect != placed.Rect {
				t.Errorf("anchor rect = %v, flexible rect = %v", got.Rect, placed.Rect)
			}
		})
	}
}

func TestDocument_LayoutMissingRule(t *testing.T) {
	doc := NewDocument(800, 600)
	pane := NewElement(WithStyle("position-try-fallbacks", "--nope"))

	_, err := doc.Layout(pane)
	if !IsCode(err, CodeInvalidPosition) {
		t.Errorf("Layout() error = %v, want code %s", err, CodeInvalidPosition)
	}
}

func TestDocument_LayoutFlexibleOutput(t *testing.T) {
	f := newFixture(t, Size{Width: 800, Height: 600}, NewRect(350, 540, 50, 30), Size{Width: 60, Height: 50},
		WithOverlayConfig(OverlayConfig{MinHeight: Fixed(20)}))
	s := f.flexible(t, below).WithFlexibleDimensions(true).WithPush(false)
	mustApply(t, s)

	got, err := f.doc.Layout(f.pane)
	if err != nil {
		t.Fatalf("Layout() error = %v", err)
	}
	if want := NewRect(350, 570, 60, 30); got.Rect != want {
		t.Errorf("Rect = %v, want %v", got.Rect, want)
	}
	if !got.Fits || got.Fallback != "" {
		t.Errorf("Layout() = %+v, want a fitting placement without fallback", got)
	}
}

func TestDocument_LayoutKeepsNaturalSize(t *testing.T) {
	f := newFixture(t, Size{Width: 800, Height: 600}, NewRect(350, 540, 50, 30), Size{Width: 60, Height: 50},
		WithOverlayConfig(OverlayConfig{MinHeight: Fixed(20)}))
	s := f.flexible(t, below).WithFlexibleDimensions(true).WithPush(false)
	mustApply(t, s)

	got, err := f.doc.Layout(f.pane)
	if err != nil {
		t.Fatalf("Layout() error = %v", err)
	}
	if want := NewRect(350, 570, 60, 30); got.Rect != want {
		t.Fatalf("first Rect = %v, want %v", got.Rect, want)
	}

	// Plenty of room below now; the pane gets its full height back.
	f.origin.SetRect(NewRect(350, 100, 50, 30))
	if err := s.HandleViewportResize(); err != nil {
		t.Fatalf("HandleViewportResize() error = %v", err)
	}
	if v := f.pane.Style().Value("max-height"); v != "470px" {
		t.Errorf("max-height = %q, want %q", v, "470px")
	}

	got, err = f.doc.Layout(f.pane)
	if err != nil {
		t.Fatalf("Layout() error = %v", err)
	}
	if want := NewRect(350, 130, 60, 50); got.Rect != want {
		t.Errorf("Rect after resize = %v, want %v", got.Rect, want)
	}
	if want := (Size{Width: 60, Height: 50}); f.pane.IntrinsicSize() != want {
		t.Errorf("IntrinsicSize() = %v, want %v", f.pane.IntrinsicSize(), want)
	}
}
