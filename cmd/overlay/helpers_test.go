package main

import (
	"os"
	"path/filepath"
	"testing"
)

const menuScenario = `
name = "menu"

[viewport]
width = 800
height = 600

[origin]
x = 100
y = 100
width = 50
height = 20

[overlay]
width = 60
height = 30

[[positions]]
origin_x = "start"
origin_y = "bottom"
overlay_x = "start"
overlay_y = "top"
`

const topEdgeScenario = `
name = "top edge"

[viewport]
width = 800
height = 600

[origin]
x = 100
y = 5
width = 50
height = 20
name = "--trigger"

[overlay]
width = 60
height = 30

[[positions]]
origin_x = "start"
origin_y = "top"
overlay_x = "start"
overlay_y = "bottom"

[[positions]]
origin_x = "start"
origin_y = "bottom"
overlay_x = "start"
overlay_y = "top"
`

// writeScenario writes source to a temporary scenario file.
func writeScenario(t *testing.T, name, source string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(source), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

func mustParse(t *testing.T, source string) *Scenario {
	t.Helper()
	sc, err := parseScenario("test.toml", source)
	if err != nil {
		t.Fatalf("parseScenario() error = %v", err)
	}
	return sc
}
