package layout

// Size represents a width/height pair.
type Size struct {
	Width, Height int
}

// Area returns Width*Height, or zero for degenerate sizes.
func (s Size) Area() int {
	if s.Width <= 0 || s.Height <= 0 {
		return 0
	}
	return s.Width * s.Height
}
