package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orderpadhq/pricing-engine/internal/units"
	"github.com/orderpadhq/pricing-engine/pkg/enums"
	pkgerrors "github.com/orderpadhq/pricing-engine/pkg/errors"
)

func def(n int64) *int64 {
	return &n
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func ladderLevels() []units.Level {
	return []units.Level{
		{Kind: enums.UnitKindPiece, Label: "Piece"},
		{Kind: enums.UnitKindPack, Label: "Pack", Definition: def(12)},
		{Kind: enums.UnitKindCase, Label: "Case", Definition: def(10)},
	}
}

func TestDistributeFromCaseReference(t *testing.T) {
	levels := ladderLevels()
	records := []Record{
		{Kind: enums.UnitKindPiece},
		{Kind: enums.UnitKindPack},
		{Kind: enums.UnitKindCase, NetCost: dec("100.00"), SalePrice: dec("150.00"), BaseCost: dec("90.00")},
	}

	out, err := Distribute(enums.UnitKindCase, levels, records)
	require.NoError(t, err)

	piece, ok := FindRecord(out, enums.UnitKindPiece)
	require.True(t, ok)
	// 100 / 120 = 0.8333..., rounded per assignment.
	assert.True(t, piece.NetCost.Equal(dec("0.83")), "piece net cost %s", piece.NetCost)
	assert.True(t, piece.SalePrice.Equal(dec("1.25")), "piece sale price %s", piece.SalePrice)
	assert.True(t, piece.BaseCost.Equal(dec("0.75")), "piece base cost %s", piece.BaseCost)

	pack, ok := FindRecord(out, enums.UnitKindPack)
	require.True(t, ok)
	// Rounding drift is expected: 0.83 * 12 = 9.96, not 100/10.
	assert.True(t, pack.NetCost.Equal(dec("9.96")), "pack net cost %s", pack.NetCost)

	// The reference record itself is untouched.
	caseRec, ok := FindRecord(out, enums.UnitKindCase)
	require.True(t, ok)
	assert.True(t, caseRec.NetCost.Equal(dec("100.00")))
}

func TestDistributeRoundTripDrift(t *testing.T) {
	levels := ladderLevels()
	records := []Record{
		{Kind: enums.UnitKindPiece},
		{Kind: enums.UnitKindCase, NetCost: dec("100.00"), SalePrice: dec("150.00")},
	}

	out, err := Distribute(enums.UnitKindCase, levels, records)
	require.NoError(t, err)

	piece, _ := FindRecord(out, enums.UnitKindPiece)
	rescaled := piece.NetCost.Mul(decimal.NewFromInt(120))
	// 0.83 * 120 = 99.60, not 100.00; the drift is tolerated, not a bug.
	assert.True(t, rescaled.Equal(dec("99.60")), "rescaled %s", rescaled)
}

func TestDistributeRequiresPositiveReferenceValues(t *testing.T) {
	levels := ladderLevels()

	_, err := Distribute(enums.UnitKindCase, levels, []Record{
		{Kind: enums.UnitKindCase, NetCost: dec("100.00")}, // no sale price
	})
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeMissingReference, typed.Code())

	_, err = Distribute(enums.UnitKindCase, levels, []Record{
		{Kind: enums.UnitKindPiece},
	})
	require.Error(t, err, "missing reference record entirely")
}

func TestDistributeSkipsUnitsNotInUse(t *testing.T) {
	levels := []units.Level{
		{Kind: enums.UnitKindPiece, Label: "Piece"},
		{Kind: enums.UnitKindPack, Label: "Pack"}, // no definition
	}
	entered := dec("7.77")
	records := []Record{
		{Kind: enums.UnitKindPiece, NetCost: dec("1.00"), SalePrice: dec("1.50")},
		{Kind: enums.UnitKindPack, NetCost: entered},
	}

	out, err := Distribute(enums.UnitKindPiece, levels, records)
	require.NoError(t, err)

	pack, _ := FindRecord(out, enums.UnitKindPack)
	assert.True(t, pack.NetCost.Equal(entered), "unused pack should keep entered value, got %s", pack.NetCost)
}

func TestDistributeLeavesTiersAlone(t *testing.T) {
	levels := ladderLevels()
	records := []Record{
		{Kind: enums.UnitKindPiece, NetCost: dec("1.00"), SalePrice: dec("1.50")},
		{Kind: enums.UnitKindPack, Tiers: [TierSlots]decimal.Decimal{dec("9.99")}},
	}

	out, err := Distribute(enums.UnitKindPiece, levels, records)
	require.NoError(t, err)

	pack, _ := FindRecord(out, enums.UnitKindPack)
	assert.True(t, pack.Tiers[0].Equal(dec("9.99")), "tier slot should survive distribution")
	assert.True(t, pack.Tiers[1].IsZero(), "unset tier slots stay zero")
	// Derived price did change even though tiers did not.
	assert.True(t, pack.SalePrice.Equal(dec("18.00")), "pack sale price %s", pack.SalePrice)
}

func TestDistributeDoesNotMutateInput(t *testing.T) {
	levels := ladderLevels()
	records := []Record{
		{Kind: enums.UnitKindPiece},
		{Kind: enums.UnitKindCase, NetCost: dec("100.00"), SalePrice: dec("150.00")},
	}

	_, err := Distribute(enums.UnitKindCase, levels, records)
	require.NoError(t, err)

	piece, _ := FindRecord(records, enums.UnitKindPiece)
	assert.True(t, piece.NetCost.IsZero(), "input slice must stay untouched")
}
