package main

import (
	"strings"

	overlay "github.com/grindlemire/go-overlay"
)

// Preview grid limits.
const (
	previewCols = 64
	previewRows = 20
)

const (
	cellEmpty   = '·'
	cellOrigin  = 'o'
	cellOverlay = '#'
	cellOverlap = '*'
)

// renderPreview draws the viewport scaled down to at most cols x rows
// cells. A cell shows whatever covers its top-left corner.
func renderPreview(res *Result, cols, rows int) string {
	vw, vh := res.Scenario.Viewport.Width, res.Scenario.Viewport.Height
	cols, rows = min(cols, vw), min(rows, vh)
	sx := ceilDiv(vw, cols)
	sy := ceilDiv(vh, rows)
	cols, rows = ceilDiv(vw, sx), ceilDiv(vh, sy)

	var sb strings.Builder
	for row := 0; row < rows; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < cols; col++ {
			sb.WriteString(renderCell(classify(col*sx, row*sy, sx, sy, res.Origin, res.Placement.Rect)))
		}
	}
	return styleFrame.Render(sb.String())
}

// classify reports what covers the sx by sy cell at (x, y).
func classify(x, y, sx, sy int, origin, pane overlay.Rect) rune {
	cell := overlay.NewRect(x, y, sx, sy)
	inOrigin := cell.Intersects(origin)
	inPane := cell.Intersects(pane)
	switch {
	case inOrigin && inPane:
		return cellOverlap
	case inPane:
		return cellOverlay
	case inOrigin:
		return cellOrigin
	}
	return cellEmpty
}

func renderCell(c rune) string {
	s := string(c)
	switch c {
	case cellOrigin:
		return styleOrigin.Render(s)
	case cellOverlay:
		return styleOverlay.Render(s)
	case cellOverlap:
		return styleOverlap.Render(s)
	}
	return styleEmpty.Render(s)
}

func ceilDiv(a, b int) int {
	if b <= 0 {
		return a
	}
	return (a + b - 1) / b
}
