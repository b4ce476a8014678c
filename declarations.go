package overlay

import "strings"

// declaration is one property/value pair.
type declaration struct {
	property string
	value    string
}

// Declarations is an ordered set of CSS-like property/value pairs.
//
// Order is insertion order. Setting an existing property replaces its value
// in place, so resetting and rewriting the same properties in the same order
// always yields the same CSSText.
type Declarations struct {
	items []declaration
}

// Set assigns value to property. An empty value removes the property.
func (d *Declarations) Set(property, value string) {
	if value == "" {
		d.Remove(property)
		return
	}
	for i := range d.items {
		if d.items[i].property == property {
			d.items[i].value = value
			return
		}
	}
	d.items = append(d.items, declaration{property: property, value: value})
}

// Get returns the value of property and whether it is set.
func (d *Declarations) Get(property string) (string, bool) {
	for _, it := range d.items {
		if it.property == property {
			return it.value, true
		}
	}
	return "", false
}

// Value returns the value of property, or "" when unset.
func (d *Declarations) Value(property string) string {
	v, _ := d.Get(property)
	return v
}

// Remove deletes property. Returns true if it was present.
func (d *Declarations) Remove(property string) bool {
	for i, it := range d.items {
		if it.property == property {
			d.items = append(d.items[:i], d.items[i+1:]...)
			return true
		}
	}
	return false
}

// Reset removes every listed property.
func (d *Declarations) Reset(properties ...string) {
	for _, p := range properties {
		d.Remove(p)
	}
}

// Len returns the number of declarations.
func (d *Declarations) Len() int {
	return len(d.items)
}

// Each calls fn for every declaration in order.
func (d *Declarations) Each(fn func(property, value string)) {
	for _, it := range d.items {
		fn(it.property, it.value)
	}
}

// Map returns a copy of the declarations keyed by property.
func (d *Declarations) Map() map[string]string {
	m := make(map[string]string, len(d.items))
	for _, it := range d.items {
		m[it.property] = it.value
	}
	return m
}

// CSSText renders the declarations as "prop: value; prop: value;".
func (d *Declarations) CSSText() string {
	var sb strings.Builder
	for i, it := range d.items {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(it.property)
		sb.WriteString(": ")
		sb.WriteString(it.value)
		sb.WriteByte(';')
	}
	return sb.String()
}
