package enums

import "fmt"

// MarginType describes how a unit price's margin field is interpreted.
// The engine currently emits a single supported mode.
type MarginType string

const (
	MarginTypePercentage MarginType = "percentage"
)

var validMarginTypes = []MarginType{
	MarginTypePercentage,
}

// String implements fmt.Stringer.
func (m MarginType) String() string {
	return string(m)
}

// IsValid reports whether the value is a known MarginType.
func (m MarginType) IsValid() bool {
	for _, candidate := range validMarginTypes {
		if candidate == m {
			return true
		}
	}
	return false
}

// ParseMarginType converts raw input into a MarginType.
func ParseMarginType(value string) (MarginType, error) {
	for _, candidate := range validMarginTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid margin type %q", value)
}
