// Package pricing derives per-unit monetary records from a single reference
// point and assembles the unit-price set transmitted for each sales channel.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/orderpadhq/pricing-engine/pkg/enums"
	"github.com/orderpadhq/pricing-engine/pkg/money"
)

// TierSlots is the fixed number of tier price slots per unit.
const TierSlots = 5

// Record is one unit's monetary profile. All amounts are non-negative and
// rounded to two decimal places at the point of assignment.
type Record struct {
	Kind               enums.UnitKind
	BaseCost           decimal.Decimal
	NetCost            decimal.Decimal
	SalePrice          decimal.Decimal
	Margin             decimal.Decimal
	MSRP               decimal.Decimal
	LowestSellingPrice decimal.Decimal
	EcomPrice          decimal.Decimal
	// Tiers are user-entered and never derived; unset slots stay zero.
	Tiers [TierSlots]decimal.Decimal
}

// scaled returns a copy of the record with every monetary field multiplied
// by the given factor and rounded. Each field is named explicitly so a typo
// in one field is a compile error, not a silent key miss.
func (r Record) scaled(factor decimal.Decimal) Record {
	out := r
	out.BaseCost = money.Round2(r.BaseCost.Mul(factor))
	out.NetCost = money.Round2(r.NetCost.Mul(factor))
	out.SalePrice = money.Round2(r.SalePrice.Mul(factor))
	out.Margin = money.Round2(r.Margin.Mul(factor))
	out.MSRP = money.Round2(r.MSRP.Mul(factor))
	out.LowestSellingPrice = money.Round2(r.LowestSellingPrice.Mul(factor))
	out.EcomPrice = money.Round2(r.EcomPrice.Mul(factor))
	return out
}

// perPiece divides every monetary field by the given base multiplier,
// rounding each result. Tier prices are left untouched.
func (r Record) perPiece(toBase int64) Record {
	divisor := decimal.NewFromInt(toBase)
	out := r
	out.BaseCost = money.Round2(r.BaseCost.Div(divisor))
	out.NetCost = money.Round2(r.NetCost.Div(divisor))
	out.SalePrice = money.Round2(r.SalePrice.Div(divisor))
	out.Margin = money.Round2(r.Margin.Div(divisor))
	out.MSRP = money.Round2(r.MSRP.Div(divisor))
	out.LowestSellingPrice = money.Round2(r.LowestSellingPrice.Div(divisor))
	out.EcomPrice = money.Round2(r.EcomPrice.Div(divisor))
	return out
}

// FindRecord returns the record for the given kind.
func FindRecord(records []Record, kind enums.UnitKind) (Record, bool) {
	for _, record := range records {
		if record.Kind == kind {
			return record, true
		}
	}
	return Record{}, false
}
