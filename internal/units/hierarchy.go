// Package units models the fixed four-level packaging hierarchy
// (Piece, Pack, Case, Pallet) and the quantity conversions between levels.
package units

import (
	"strconv"
	"strings"

	"github.com/orderpadhq/pricing-engine/pkg/enums"
)

// Level is one rung of the packaging hierarchy as configured for a product.
type Level struct {
	Kind  enums.UnitKind
	Label string
	// Definition is how many of the immediate child unit compose one of
	// this unit (1 Pack = 12 Pieces means the pack level has Definition 12).
	// Piece carries an implicit definition of 1 and stores nil here.
	Definition *int64
	UPC        string
}

// Find returns the level configured for the given kind.
func Find(levels []Level, kind enums.UnitKind) (Level, bool) {
	for _, level := range levels {
		if level.Kind == kind {
			return level, true
		}
	}
	return Level{}, false
}

// Convertible reports whether the level participates in quantity and price
// conversion. Piece always does; any other level needs a positive definition.
// A bare UPC identifies a unit but gives it no conversion role.
func (l Level) Convertible() bool {
	if l.Kind == enums.UnitKindPiece {
		return true
	}
	return l.Definition != nil && *l.Definition > 0
}

// Configured reports whether the level is in use at all: it has a packaging
// definition, an identifying UPC, or is the base unit.
func (l Level) Configured() bool {
	if l.Kind == enums.UnitKindPiece {
		return true
	}
	if l.Definition != nil && *l.Definition > 0 {
		return true
	}
	return strings.TrimSpace(l.UPC) != ""
}

// ParseDefinition converts a packaging-quantity form field into a
// definition. Blank, non-numeric, or non-positive input yields nil, which
// marks the unit as not in use.
func ParseDefinition(raw string) *int64 {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	parsed, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil || parsed <= 0 {
		return nil
	}
	return &parsed
}

// EffectiveDefinition returns the effective definition for the level: 1 for Piece,
// the configured value otherwise, with ok=false when the level has none.
func (l Level) EffectiveDefinition() (int64, bool) {
	if l.Kind == enums.UnitKindPiece {
		return 1, true
	}
	if l.Definition == nil || *l.Definition <= 0 {
		return 0, false
	}
	return *l.Definition, true
}
