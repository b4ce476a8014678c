package overlay

import "slices"

var _ Platform = (*Document)(nil)

// Document is an in-memory Platform: a viewport, a registry of named anchors
// and the stylesheets adopted by declarative strategies.
type Document struct {
	width, height     int
	interactive       bool
	anchorPositioning bool

	anchors map[string]*Element
	sheets  []*StyleSheet
}

// DocumentOption configures a Document.
type DocumentOption func(*Document)

// WithInteractive overrides whether the document is a paintable target.
func WithInteractive(interactive bool) DocumentOption {
	return func(d *Document) {
		d.interactive = interactive
	}
}

// WithAnchorPositioning enables native anchor positioning.
func WithAnchorPositioning(enabled bool) DocumentOption {
	return func(d *Document) {
		d.anchorPositioning = enabled
	}
}

// NewDocument creates an interactive document with the given viewport size.
func NewDocument(width, height int, opts ...DocumentOption) *Document {
	d := &Document{
		width:       width,
		height:      height,
		interactive: true,
		anchors:     make(map[string]*Element),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// NewTerminalDocument creates a document from DetectCapabilities.
func NewTerminalDocument() *Document {
	caps := DetectCapabilities()
	return NewDocument(caps.Width, caps.Height,
		WithInteractive(caps.Interactive),
		WithAnchorPositioning(caps.AnchorPositioning),
	)
}

// Interactive implements Platform.
func (d *Document) Interactive() bool {
	return d.interactive
}

// SupportsAnchorPositioning implements Platform.
func (d *Document) SupportsAnchorPositioning() bool {
	return d.anchorPositioning
}

// ViewportRect implements Platform.
func (d *Document) ViewportRect() Rect {
	return NewRect(0, 0, d.width, d.height)
}

// Resize changes the viewport size. Callers re-apply their strategies.
func (d *Document) Resize(width, height int) {
	d.width, d.height = width, height
}

// RegisterAnchor binds name to el. The element's "anchor-name" declaration
// is set to match.
func (d *Document) RegisterAnchor(name string, el *Element) {
	el.Style().Set("anchor-name", name)
	d.anchors[name] = el
}

// UnregisterAnchor removes a name binding.
func (d *Document) UnregisterAnchor(name string) {
	if el, ok := d.anchors[name]; ok {
		if el.AnchorName() == name {
			el.Style().Remove("anchor-name")
		}
		delete(d.anchors, name)
	}
}

// LookupAnchor implements Platform.
func (d *Document) LookupAnchor(name string) (*Element, bool) {
	el, ok := d.anchors[name]
	return el, ok
}

// AdoptStyleSheet implements Platform. Adopting the same sheet twice is a no-op.
func (d *Document) AdoptStyleSheet(sheet *StyleSheet) {
	if sheet == nil || slices.Contains(d.sheets, sheet) {
		return
	}
	d.sheets = append(d.sheets, sheet)
}

// RemoveStyleSheet implements Platform.
func (d *Document) RemoveStyleSheet(sheet *StyleSheet) {
	if i := slices.Index(d.sheets, sheet); i >= 0 {
		d.sheets = slices.Delete(d.sheets, i, i+1)
	}
}

// StyleSheets returns the adopted sheets in adoption order.
func (d *Document) StyleSheets() []*StyleSheet {
	return slices.Clone(d.sheets)
}

// positionTry finds an "@position-try" rule across the adopted sheets.
func (d *Document) positionTry(name string) (*Declarations, bool) {
	selector := "@position-try " + name
	for _, s := range d.sheets {
		if decls, ok := s.Rule(selector); ok {
			return decls, true
		}
	}
	return nil, false
}
