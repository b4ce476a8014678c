package layout

// IsClipped reports whether r is cut off by at least one container: it still
// overlaps the container's visible bounds but is not wholly inside them.
func IsClipped(r Rect, containers []Rect) bool {
	for _, c := range containers {
		if r.Intersects(c) && !c.ContainsRect(r) {
			return true
		}
	}
	return false
}

// IsOutsideView reports whether r has no visible overlap with at least one
// container. Touching edges count as outside.
func IsOutsideView(r Rect, containers []Rect) bool {
	for _, c := range containers {
		if !r.Intersects(c) {
			return true
		}
	}
	return false
}
