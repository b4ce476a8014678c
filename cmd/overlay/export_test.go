package main

import (
	"go/parser"
	"go/token"
	"strings"
	"testing"

	overlay "github.com/grindlemire/go-overlay"
)

func TestPairExpr(t *testing.T) {
	type tc struct {
		pair overlay.ConnectionPair
		want string
	}

	below := overlay.Pair(overlay.Start, overlay.Bottom, overlay.Start, overlay.Top)
	tests := map[string]tc{
		"plain": {
			pair: below,
			want: "overlay.Pair(overlay.Start, overlay.Bottom, overlay.Start, overlay.Top)",
		},
		"centered": {
			pair: overlay.Pair(overlay.HCenter, overlay.VCenter, overlay.End, overlay.Top),
			want: "overlay.Pair(overlay.HCenter, overlay.VCenter, overlay.End, overlay.Top)",
		},
		"both offsets": {
			pair: below.WithOffset(2, -3),
			want: "overlay.Pair(overlay.Start, overlay.Bottom, overlay.Start, overlay.Top).WithOffset(2, -3)",
		},
		"vertical offset only": {
			pair: below.WithOffsetY(4),
			want: "overlay.Pair(overlay.Start, overlay.Bottom, overlay.Start, overlay.Top).WithOffsetY(4)",
		},
		"panel classes": {
			pair: below.WithPanelClass("menu", `say "hi"`),
			want: `overlay.Pair(overlay.Start, overlay.Bottom, overlay.Start, overlay.Top).WithPanelClass("menu", "say \"hi\"")`,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := pairExpr(tt.pair); got != tt.want {
				t.Errorf("pairExpr() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestExporter_Generate(t *testing.T) {
	sc := mustParse(t, topEdgeScenario)
	gen := exporter{pkg: "menus", varName: "menuPositions", sourceFile: "top.toml", skipImports: true}

	src, err := gen.generate(sc.Positions)
	if err != nil {
		t.Fatalf("generate() error = %v", err)
	}

	out := string(src)
	for _, want := range []string{
		"// Code generated by overlay export from top.toml. DO NOT EDIT.",
		"package menus",
		`import overlay "github.com/grindlemire/go-overlay"`,
		"var menuPositions = []overlay.ConnectionPair{",
		"\toverlay.Pair(overlay.Start, overlay.Top, overlay.Start, overlay.Bottom),\n",
		"\toverlay.Pair(overlay.Start, overlay.Bottom, overlay.Start, overlay.Top),\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("generate() output missing %q:\n%s", want, out)
		}
	}

	if _, err := parser.ParseFile(token.NewFileSet(), "positions.go", src, parser.AllErrors); err != nil {
		t.Errorf("generated source does not parse: %v", err)
	}
}

func TestExporter_InvalidNames(t *testing.T) {
	type tc struct {
		gen exporter
	}

	tests := map[string]tc{
		"bad package":  {gen: exporter{pkg: "my-pkg", varName: "positions"}},
		"bad variable": {gen: exporter{pkg: "main", varName: "1st"}},
		"keyword":      {gen: exporter{pkg: "func", varName: "positions"}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := tt.gen.generate(nil); err == nil {
				t.Error("generate() expected error, got nil")
			}
		})
	}
}
