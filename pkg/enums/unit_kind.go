package enums

import "fmt"

// UnitKind identifies a rung of the packaging hierarchy. The kind, not the
// user-editable label, determines a unit's conversion role.
type UnitKind string

const (
	UnitKindPiece  UnitKind = "piece"
	UnitKindPack   UnitKind = "pack"
	UnitKindCase   UnitKind = "case"
	UnitKindPallet UnitKind = "pallet"
)

// unitKindOrder is the canonical bottom-up ladder: each entry packs the one
// before it.
var unitKindOrder = []UnitKind{
	UnitKindPiece,
	UnitKindPack,
	UnitKindCase,
	UnitKindPallet,
}

// UnitKinds returns the hierarchy in canonical order, smallest first.
func UnitKinds() []UnitKind {
	out := make([]UnitKind, len(unitKindOrder))
	copy(out, unitKindOrder)
	return out
}

// String implements fmt.Stringer.
func (k UnitKind) String() string {
	return string(k)
}

// IsValid reports whether the value is a known UnitKind.
func (k UnitKind) IsValid() bool {
	for _, candidate := range unitKindOrder {
		if candidate == k {
			return true
		}
	}
	return false
}

// Ordinal returns the zero-based position of the kind in the canonical
// ladder, or -1 for an unknown kind.
func (k UnitKind) Ordinal() int {
	for i, candidate := range unitKindOrder {
		if candidate == k {
			return i
		}
	}
	return -1
}

// Child returns the next smaller kind, or false for the base unit.
func (k UnitKind) Child() (UnitKind, bool) {
	idx := k.Ordinal()
	if idx <= 0 {
		return "", false
	}
	return unitKindOrder[idx-1], true
}

// OrdinalName returns the user-facing position name used in validation
// messages (First unit, Second unit, ...).
func (k UnitKind) OrdinalName() string {
	switch k {
	case UnitKindPiece:
		return "First"
	case UnitKindPack:
		return "Second"
	case UnitKindCase:
		return "Third"
	case UnitKindPallet:
		return "Fourth"
	}
	return "Unknown"
}

// ParseUnitKind converts raw input into a UnitKind.
func ParseUnitKind(value string) (UnitKind, error) {
	for _, candidate := range unitKindOrder {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid unit kind %q", value)
}
