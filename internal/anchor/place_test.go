package anchor

import (
	"testing"

	"github.com/grindlemire/go-overlay/internal/layout"
)

func testContext() Context {
	anchors := map[string]layout.Rect{
		"":          layout.NewRect(100, 100, 50, 20),
		"--trigger": layout.NewRect(400, 300, 80, 40),
	}
	return Context{
		Containing: layout.NewRect(0, 0, 800, 600),
		Size:       layout.Size{Width: 60, Height: 30},
		Lookup: func(name string) (layout.Rect, bool) {
			r, ok := anchors[name]
			return r, ok
		},
	}
}

func TestPlace(t *testing.T) {
	type tc struct {
		decls map[string]string
		want  layout.Rect
	}

	tests := map[string]tc{
		"no insets": {
			decls: map[string]string{},
			want:  layout.NewRect(0, 0, 60, 30),
		},
		"fixed insets": {
			decls: map[string]string{"left": "10px", "bottom": "20px"},
			want:  layout.NewRect(10, 550, 60, 30),
		},
		"below implicit anchor": {
			decls: map[string]string{"left": "anchor(left)", "top": "anchor(bottom)"},
			want:  layout.NewRect(100, 120, 60, 30),
		},
		"above with end inset": {
			decls: map[string]string{"right": "anchor(right)", "bottom": "anchor(top)"},
			want:  layout.NewRect(90, 70, 60, 30),
		},
		"default anchor by name": {
			decls: map[string]string{
				"position-anchor": "--trigger",
				"left":            "anchor(right)",
				"top":             "anchor(top)",
			},
			want: layout.NewRect(480, 300, 60, 30),
		},
		"explicit name wins": {
			decls: map[string]string{"left": "anchor(--trigger left)", "top": "anchor(bottom)"},
			want:  layout.NewRect(400, 120, 60, 30),
		},
		"calc offsets": {
			decls: map[string]string{
				"left":   "calc(anchor(left) + 5px)",
				"bottom": "calc(anchor(top) - 3px)",
			},
			want: layout.NewRect(105, 73, 60, 30),
		},
		"anchor-center": {
			decls: map[string]string{
				"justify-self": "anchor-center",
				"align-self":   "anchor-center",
				"margin-top":   "-2px",
			},
			want: layout.NewRect(95, 93, 60, 30),
		},
		"max size shrinks the pane": {
			decls: map[string]string{"right": "0px", "max-width": "40px", "max-height": "10px"},
			want:  layout.NewRect(760, 0, 40, 10),
		},
		"start inset wins over end inset": {
			decls: map[string]string{"left": "anchor(left)", "right": "anchor(left)"},
			want:  layout.NewRect(100, 0, 60, 30),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := Place(MapBlock(tt.decls), testContext())
			if err != nil {
				t.Fatalf("Place() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Place() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPlace_Errors(t *testing.T) {
	tests := map[string]map[string]string{
		"unknown anchor":       {"left": "anchor(--nope left)"},
		"vertical side on x":   {"left": "anchor(top)"},
		"horizontal side on y": {"top": "anchor(left)"},
		"bad syntax":           {"top": "anchor(("},
		"anchored max size":    {"max-width": "anchor(left)"},
		"center without anchor": {
			"position-anchor": "--nope",
			"justify-self":    "anchor-center",
		},
	}

	for name, decls := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := Place(MapBlock(decls), testContext()); err == nil {
				t.Error("Place() error = nil, want an error")
			}
		})
	}
}

func TestResolve(t *testing.T) {
	aboveBlock := MapBlock(map[string]string{"left": "anchor(left)", "bottom": "anchor(top)"})
	belowBlock := MapBlock(map[string]string{"left": "anchor(left)", "top": "anchor(bottom)"})
	offscreen := MapBlock(map[string]string{"left": "anchor(left)", "bottom": "-100px"})

	type tc struct {
		base      map[string]string
		fallbacks []Block
		wantIndex int
		wantRect  layout.Rect
		wantFits  bool
	}

	tests := map[string]tc{
		"no fallbacks places the base": {
			base:      map[string]string{"left": "anchor(left)", "top": "anchor(bottom)"},
			wantIndex: -1,
			wantRect:  layout.NewRect(100, 120, 60, 30),
			wantFits:  true,
		},
		"first fitting fallback": {
			fallbacks: []Block{aboveBlock, belowBlock},
			wantIndex: 0,
			wantRect:  layout.NewRect(100, 70, 60, 30),
			wantFits:  true,
		},
		"skips a fallback that overflows": {
			fallbacks: []Block{offscreen, belowBlock},
			wantIndex: 1,
			wantRect:  layout.NewRect(100, 120, 60, 30),
			wantFits:  true,
		},
		"nothing fits": {
			fallbacks: []Block{offscreen, offscreen},
			wantIndex: 0,
			wantRect:  layout.NewRect(100, 670, 60, 30),
			wantFits:  false,
		},
		"fallback overrides base": {
			base:      map[string]string{"left": "500px"},
			fallbacks: []Block{belowBlock},
			wantIndex: 0,
			wantRect:  layout.NewRect(100, 120, 60, 30),
			wantFits:  true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := Resolve(MapBlock(tt.base), tt.fallbacks, testContext())
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if got.Index != tt.wantIndex || got.Rect != tt.wantRect || got.Fits != tt.wantFits {
				t.Errorf("Resolve() = %+v, want index %d rect %v fits %v", got, tt.wantIndex, tt.wantRect, tt.wantFits)
			}
		})
	}
}
