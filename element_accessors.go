package overlay

import "slices"

// ID returns the element's identifier.
func (e *Element) ID() string {
	return e.id
}

// SetRect stores a new measured border box.
func (e *Element) SetRect(r Rect) {
	e.rect = r
}

// IntrinsicSize returns the element's natural size, unconstrained by any
// max-width or max-height a layout pass applied. Until one is recorded it
// is the size of the bounding rect.
func (e *Element) IntrinsicSize() Size {
	if e.intrinsic != nil {
		return *e.intrinsic
	}
	return e.BoundingRect().Size()
}

// SetIntrinsicSize records the natural size. Hosts call it when the
// content is re-measured.
func (e *Element) SetIntrinsicSize(size Size) {
	e.intrinsic = &size
}

// Style returns the element's inline declarations for reading and writing.
func (e *Element) Style() *Declarations {
	return &e.style
}

// --- Classes ---

// AddClass adds a class if not already present.
func (e *Element) AddClass(name string) {
	if name == "" || e.HasClass(name) {
		return
	}
	e.classes = append(e.classes, name)
}

// RemoveClass removes a class. Returns true if it was present.
func (e *Element) RemoveClass(name string) bool {
	i := slices.Index(e.classes, name)
	if i < 0 {
		return false
	}
	e.classes = slices.Delete(e.classes, i, i+1)
	return true
}

// HasClass reports whether the class is present.
func (e *Element) HasClass(name string) bool {
	return slices.Contains(e.classes, name)
}

// Classes returns a copy of the element's classes in insertion order.
func (e *Element) Classes() []string {
	return slices.Clone(e.classes)
}

// --- Attributes ---

// SetAttr sets an attribute.
func (e *Element) SetAttr(name, value string) {
	if e.attrs == nil {
		e.attrs = make(map[string]string)
	}
	e.attrs[name] = value
}

// Attr returns an attribute value and whether it is set.
func (e *Element) Attr(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

// RemoveAttr deletes an attribute.
func (e *Element) RemoveAttr(name string) {
	delete(e.attrs, name)
}

// --- Text ---

// Text returns the text content.
func (e *Element) Text() string {
	return e.text
}

// SetText updates the text content.
func (e *Element) SetText(content string) {
	e.text = content
}

// --- Anchoring ---

// AnchorName returns the element's declared anchor name, if any.
func (e *Element) AnchorName() string {
	return e.style.Value("anchor-name")
}

// AnchorElement returns the implicit anchor, or nil.
func (e *Element) AnchorElement() *Element {
	return e.anchor
}

// SetAnchorElement associates e with an implicit anchor element, the
// element-level equivalent of a "position-anchor" name. Pass nil to clear.
func (e *Element) SetAnchorElement(anchor *Element) {
	e.anchor = anchor
}
