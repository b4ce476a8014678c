package overlay

import (
	"os"
	"testing"
)

// testEnvHelper saves and restores environment variables for testing.
type testEnvHelper struct {
	saved map[string]string
}

func newTestEnvHelper() *testEnvHelper {
	return &testEnvHelper{saved: make(map[string]string)}
}

func (h *testEnvHelper) Set(key, value string) {
	if _, exists := h.saved[key]; !exists {
		h.saved[key] = os.Getenv(key)
	}
	os.Setenv(key, value)
}

func (h *testEnvHelper) Clear(key string) {
	if _, exists := h.saved[key]; !exists {
		h.saved[key] = os.Getenv(key)
	}
	os.Unsetenv(key)
}

func (h *testEnvHelper) Restore() {
	for key, value := range h.saved {
		if value == "" {
			os.Unsetenv(key)
		} else {
			os.Setenv(key, value)
		}
	}
}

func clearCapsEnvVars(env *testEnvHelper) {
	env.Clear("TERM")
	env.Clear("COLUMNS")
	env.Clear("LINES")
	env.Clear("OVERLAY_ANCHOR_POSITIONING")
}

func TestDetectCapabilities_AnchorPositioning(t *testing.T) {
	type tc struct {
		value string
		want  bool
	}

	tests := map[string]tc{
		"unset":   {value: "", want: false},
		"one":     {value: "1", want: true},
		"true":    {value: "true", want: true},
		"upper":   {value: "YES", want: true},
		"on":      {value: "on", want: true},
		"zero":    {value: "0", want: false},
		"garbage": {value: "maybe", want: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			env := newTestEnvHelper()
			defer env.Restore()
			clearCapsEnvVars(env)

			if tt.value != "" {
				env.Set("OVERLAY_ANCHOR_POSITIONING", tt.value)
			}
			caps := DetectCapabilities()

			if caps.AnchorPositioning != tt.want {
				t.Errorf("OVERLAY_ANCHOR_POSITIONING=%q: AnchorPositioning = %v, want %v", tt.value, caps.AnchorPositioning, tt.want)
			}
		})
	}
}

func TestDetectCapabilities_SizeFromEnv(t *testing.T) {
	env := newTestEnvHelper()
	defer env.Restore()
	clearCapsEnvVars(env)

	env.Set("COLUMNS", "132")
	env.Set("LINES", "43")
	caps := DetectCapabilities()

	if caps.Width != 132 || caps.Height != 43 {
		t.Errorf("COLUMNS=132 LINES=43: size = %dx%d, want 132x43", caps.Width, caps.Height)
	}
}

func TestDetectCapabilities_InvalidSizeIgnored(t *testing.T) {
	env := newTestEnvHelper()
	defer env.Restore()
	clearCapsEnvVars(env)

	env.Set("COLUMNS", "wide")
	env.Set("LINES", "-3")
	caps := DetectCapabilities()

	if caps.Width <= 0 || caps.Height <= 0 {
		t.Errorf("invalid COLUMNS/LINES: size = %dx%d, want a positive size", caps.Width, caps.Height)
	}
}

func TestDetectCapabilities_TERMDumb(t *testing.T) {
	env := newTestEnvHelper()
	defer env.Restore()
	clearCapsEnvVars(env)

	env.Set("TERM", "dumb")
	caps := DetectCapabilities()

	if caps.Interactive {
		t.Error("TERM=dumb should disable Interactive")
	}
}

func TestCapabilities_String(t *testing.T) {
	type tc struct {
		caps Capabilities
		want string
	}

	tests := map[string]tc{
		"interactive with anchors": {
			caps: Capabilities{Interactive: true, AnchorPositioning: true, Width: 80, Height: 24},
			want: "interactive, anchor-positioning, 80x24",
		},
		"non-interactive": {
			caps: Capabilities{Width: 120, Height: 40},
			want: "non-interactive, 120x40",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.caps.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewTerminalDocument(t *testing.T) {
	env := newTestEnvHelper()
	defer env.Restore()
	clearCapsEnvVars(env)

	env.Set("COLUMNS", "100")
	env.Set("LINES", "30")
	env.Set("OVERLAY_ANCHOR_POSITIONING", "1")
	doc := NewTerminalDocument()

	if got := doc.ViewportRect(); got != NewRect(0, 0, 100, 30) {
		t.Errorf("ViewportRect() = %v, want 100x30 at the origin", got)
	}
	if !doc.SupportsAnchorPositioning() {
		t.Error("SupportsAnchorPositioning() = false, want true")
	}
}
