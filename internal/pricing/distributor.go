package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/orderpadhq/pricing-engine/internal/units"
	"github.com/orderpadhq/pricing-engine/pkg/enums"
	pkgerrors "github.com/orderpadhq/pricing-engine/pkg/errors"
)

// Distribute derives every other unit's monetary fields from the reference
// unit's record, keeping per-piece economics consistent across the ladder.
//
// The reference record must carry a positive net cost and sale price;
// otherwise a MISSING_REFERENCE_VALUES error is returned and nothing is
// derived. Units that are not convertible (no packaging definition) are
// returned unchanged, and tier prices are never distributed. The input
// slice is not mutated; a fresh record set is returned.
func Distribute(reference enums.UnitKind, levels []units.Level, records []Record) ([]Record, error) {
	refRecord, ok := FindRecord(records, reference)
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeMissingReference,
			fmt.Sprintf("no pricing record for reference unit %s", reference))
	}
	if !refRecord.NetCost.IsPositive() || !refRecord.SalePrice.IsPositive() {
		return nil, pkgerrors.New(pkgerrors.CodeMissingReference,
			"reference unit needs a net cost and sale price above zero").
			WithDetails(map[string]any{
				"unit":       reference.String(),
				"net_cost":   refRecord.NetCost.String(),
				"sale_price": refRecord.SalePrice.String(),
			})
	}

	refToBase := units.MultiplierToBase(reference, levels)
	baseline := refRecord.perPiece(refToBase)

	out := make([]Record, len(records))
	for i, record := range records {
		if record.Kind == reference {
			out[i] = record
			continue
		}
		level, found := units.Find(levels, record.Kind)
		if !found || !level.Convertible() {
			// Unit not in use; leave whatever the user entered.
			out[i] = record
			continue
		}
		toBase := units.MultiplierToBase(record.Kind, levels)
		derived := baseline.scaled(decimal.NewFromInt(toBase))
		derived.Kind = record.Kind
		derived.Tiers = record.Tiers
		out[i] = derived
	}
	return out, nil
}
