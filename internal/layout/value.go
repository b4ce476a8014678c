package layout

// Unit specifies how a Value is interpreted.
type Unit uint8

const (
	UnitAuto    Unit = iota // No constraint
	UnitFixed               // Absolute units
	UnitPercent             // Percentage of the viewport extent
)

// Value is a size constraint that can be fixed, a viewport percentage, or unset.
type Value struct {
	Amount float64
	Unit   Unit
}

// Auto returns a Value that imposes no constraint.
func Auto() Value {
	return Value{Unit: UnitAuto}
}

// Fixed returns a Value representing an absolute number of units.
func Fixed(n int) Value {
	return Value{Amount: float64(n), Unit: UnitFixed}
}

// Percent returns a Value representing a percentage of the viewport extent.
// The value is on a 0-100 scale (50.0 = 50%).
func Percent(p float64) Value {
	return Value{Amount: p, Unit: UnitPercent}
}

// Resolve computes the actual integer value given the available extent.
// For UnitAuto, returns the fallback value.
func (v Value) Resolve(available, fallback int) int {
	switch v.Unit {
	case UnitFixed:
		return int(v.Amount)
	case UnitPercent:
		return int(float64(available) * v.Amount / 100.0)
	default:
		return fallback
	}
}

// Lookup resolves v and reports whether it carries a constraint at all.
func (v Value) Lookup(available int) (int, bool) {
	if v.IsAuto() {
		return 0, false
	}
	return v.Resolve(available, 0), true
}

// IsAuto returns true if this value imposes no constraint.
func (v Value) IsAuto() bool {
	return v.Unit == UnitAuto
}
