package overlay

import (
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// Capabilities describes the render target the strategies run against.
type Capabilities struct {
	Interactive       bool // a real, paintable target
	AnchorPositioning bool // native anchor positioning in the layout pass
	Width, Height     int  // viewport size
}

// Fallback viewport size when the terminal cannot be queried.
const (
	defaultWidth  = 80
	defaultHeight = 24
)

// DetectCapabilities determines capabilities from stdout and environment
// variables. Returns conservative defaults when detection fails.
func DetectCapabilities() Capabilities {
	caps := Capabilities{
		Interactive: true,
		Width:       defaultWidth,
		Height:      defaultHeight,
	}

	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		caps.Interactive = false
	} else if w, h, err := term.GetSize(fd); err == nil && w > 0 && h > 0 {
		caps.Width, caps.Height = w, h
	}

	// COLUMNS/LINES override the measured size, as shells export them.
	if n, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil && n > 0 {
		caps.Width = n
	}
	if n, err := strconv.Atoi(os.Getenv("LINES")); err == nil && n > 0 {
		caps.Height = n
	}

	switch strings.ToLower(os.Getenv("OVERLAY_ANCHOR_POSITIONING")) {
	case "1", "true", "yes", "on":
		caps.AnchorPositioning = true
	}

	// A dumb terminal cannot be painted to, whatever stdout claims.
	if strings.ToLower(os.Getenv("TERM")) == "dumb" {
		caps.Interactive = false
	}

	return caps
}

// String returns a human-readable description of the capabilities.
func (c Capabilities) String() string {
	var parts []string

	if c.Interactive {
		parts = append(parts, "interactive")
	} else {
		parts = append(parts, "non-interactive")
	}
	if c.AnchorPositioning {
		parts = append(parts, "anchor-positioning")
	}
	parts = append(parts, strconv.Itoa(c.Width)+"x"+strconv.Itoa(c.Height))

	return strings.Join(parts, ", ")
}
