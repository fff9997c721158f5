package units

import (
	"github.com/shopspring/decimal"

	"github.com/orderpadhq/pricing-engine/pkg/enums"
)

// MultiplierToBase returns the factor that converts a quantity expressed in
// the target unit down to base (Piece) units. Piece is the terminal case
// and always returns 1.
//
// The walk moves one rung at a time toward Piece, multiplying each rung's
// definition. If any rung along the path has no definition the walk aborts
// and returns 1 rather than a partial product; the caller gets a
// conservative under-conversion instead of a fault.
func MultiplierToBase(target enums.UnitKind, levels []Level) int64 {
	if target == enums.UnitKindPiece {
		return 1
	}

	multiplier := int64(1)
	current := target
	for current != enums.UnitKindPiece {
		level, ok := Find(levels, current)
		if !ok {
			return 1
		}
		definition, ok := level.EffectiveDefinition()
		if !ok {
			return 1
		}
		multiplier *= definition

		child, ok := current.Child()
		if !ok {
			return 1
		}
		current = child
	}
	return multiplier
}

// MultiplierFromBase is the algebraic inverse of MultiplierToBase, used
// when distributing per-piece values up the hierarchy.
func MultiplierFromBase(target enums.UnitKind, levels []Level) decimal.Decimal {
	toBase := MultiplierToBase(target, levels)
	return decimal.NewFromInt(1).Div(decimal.NewFromInt(toBase))
}
