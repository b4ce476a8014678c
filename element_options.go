package overlay

// ElementOption configures an Element.
type ElementOption func(*Element)

// WithID sets the element's identifier.
func WithID(id string) ElementOption {
	return func(e *Element) {
		e.id = id
	}
}

// WithRect sets the element's measured border box.
func WithRect(r Rect) ElementOption {
	return func(e *Element) {
		e.rect = r
	}
}

// WithMeasure installs a live measurement function. It is called on every
// BoundingRect and takes precedence over the stored rect.
func WithMeasure(fn func() Rect) ElementOption {
	return func(e *Element) {
		e.measure = fn
	}
}

// WithText sets the element's text content.
func WithText(text string) ElementOption {
	return func(e *Element) {
		e.text = text
	}
}

// WithClass adds classes to the element.
func WithClass(names ...string) ElementOption {
	return func(e *Element) {
		for _, n := range names {
			e.AddClass(n)
		}
	}
}

// WithAnchorName declares the element as a named anchor ("anchor-name").
// The name should start with "--".
func WithAnchorName(name string) ElementOption {
	return func(e *Element) {
		e.style.Set("anchor-name", name)
	}
}

// WithStyle sets one inline declaration.
func WithStyle(property, value string) ElementOption {
	return func(e *Element) {
		e.style.Set(property, value)
	}
}
