package overlay

// Measurable is anything that can report its current bounding rectangle:
// anchors, overlay panes and scrollable ancestor containers.
type Measurable interface {
	BoundingRect() Rect
}

var _ Measurable = (*Element)(nil)

// Element is a node in the host's retained tree as seen by the positioning
// strategies. Strategies read its geometry and write inline declarations,
// classes and attributes to it; the host lays it out and renders it.
type Element struct {
	id string

	// Geometry
	rect      Rect
	measure   func() Rect // live measurement, overrides rect when set
	intrinsic *Size       // natural size, recorded by the first layout pass

	// Presentation
	style   Declarations
	classes []string
	attrs   map[string]string

	// Text content, consulted for DirAuto
	text string

	// Implicit anchor set through SetAnchorElement
	anchor *Element
}

// NewElement creates a new Element with the given options.
func NewElement(opts ...ElementOption) *Element {
	e := &Element{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// BoundingRect returns the element's current border box.
func (e *Element) BoundingRect() Rect {
	if e.measure != nil {
		return e.measure()
	}
	return e.rect
}
