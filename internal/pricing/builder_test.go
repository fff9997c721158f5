package pricing

import (
	"testing"

	"github.com/orderpadhq/pricing-engine/pkg/enums"
)

func pieceForm() UnitForm {
	return UnitForm{
		Kind:      enums.UnitKindPiece,
		Name:      "Piece",
		NetCost:   "1.00",
		SalePrice: "1.50",
	}
}

func TestBuildUnitPricesCanonicalOrder(t *testing.T) {
	forms := []UnitForm{
		{Kind: enums.UnitKindPallet, Name: "Pallet", PackagingQty: "5"},
		{Kind: enums.UnitKindPack, Name: "Pack", PackagingQty: "12"},
		pieceForm(),
		{Kind: enums.UnitKindCase, Name: "Case", PackagingQty: "10"},
	}

	prices := BuildUnitPrices(forms)
	if len(prices) != 4 {
		t.Fatalf("expected 4 unit prices, got %d", len(prices))
	}
	wantOrder := []enums.UnitKind{
		enums.UnitKindPiece,
		enums.UnitKindPack,
		enums.UnitKindCase,
		enums.UnitKindPallet,
	}
	for i, kind := range wantOrder {
		if prices[i].Unit != kind {
			t.Fatalf("position %d: expected %s, got %s", i, kind, prices[i].Unit)
		}
	}
	if prices[0].Definition != 1 {
		t.Fatalf("piece definition should be 1, got %d", prices[0].Definition)
	}
	if prices[2].Definition != 10 {
		t.Fatalf("case definition should be 10, got %d", prices[2].Definition)
	}
}

func TestBuildUnitPricesExcludesUnitsWithoutDefinition(t *testing.T) {
	forms := []UnitForm{
		pieceForm(),
		// Monetary values and a UPC do not rescue a unit with no
		// packaging quantity.
		{Kind: enums.UnitKindPack, Name: "Pack", UPC: "0123456789", SalePrice: "20.00"},
		{Kind: enums.UnitKindCase, Name: "Case", PackagingQty: "not a number"},
	}

	prices := BuildUnitPrices(forms)
	if len(prices) != 1 {
		t.Fatalf("expected only the piece record, got %d records", len(prices))
	}
	if prices[0].Unit != enums.UnitKindPiece {
		t.Fatalf("expected piece, got %s", prices[0].Unit)
	}
}

func TestBuildUnitPricesTierDefaults(t *testing.T) {
	form := pieceForm()
	form.TierPrices = []string{"1.25", "", "bad"}

	prices := BuildUnitPrices([]UnitForm{form})
	if len(prices) != 1 {
		t.Fatalf("expected 1 record, got %d", len(prices))
	}
	tiers := prices[0].Tiers
	if tiers[0] != 1.25 {
		t.Fatalf("tier 0 = %v, want 1.25", tiers[0])
	}
	for i := 1; i < TierSlots; i++ {
		if tiers[i] != 0 {
			t.Fatalf("tier %d should default to 0, got %v", i, tiers[i])
		}
	}
}

func TestBuildUnitPricesFieldMapping(t *testing.T) {
	form := UnitForm{
		Kind:               enums.UnitKindPack,
		Name:               "  Dozen  ",
		PackagingQty:       "12",
		UPC:                "0001112223",
		BaseCost:           "10.004",
		NetCost:            "9.995",
		SalePrice:          "15",
		Margin:             "33.33",
		MSRP:               "19.99",
		LowestSellingPrice: "12.00",
		EcomPrice:          "14.50",
	}

	prices := BuildUnitPrices([]UnitForm{form})
	if len(prices) != 1 {
		t.Fatalf("expected 1 record, got %d", len(prices))
	}
	price := prices[0]
	if price.UnitName != "Dozen" {
		t.Fatalf("unit name should be trimmed, got %q", price.UnitName)
	}
	if price.BaseCost != 10.00 {
		t.Fatalf("base cost should round to 10.00, got %v", price.BaseCost)
	}
	if price.Cost != 10.00 {
		t.Fatalf("net cost 9.995 should round half-up to 10.00, got %v", price.Cost)
	}
	if price.MSRPPrice != 19.99 {
		t.Fatalf("msrp mapping broken, got %v", price.MSRPPrice)
	}
	if price.MarginType != enums.MarginTypePercentage {
		t.Fatalf("margin type should be fixed to percentage, got %s", price.MarginType)
	}
}

func TestToLevels(t *testing.T) {
	forms := []UnitForm{
		pieceForm(),
		{Kind: enums.UnitKindPack, Name: "Pack", PackagingQty: "12"},
		{Kind: enums.UnitKindCase, Name: "Case", UPC: " 999 "},
	}
	levels := ToLevels(forms)
	if len(levels) != 3 {
		t.Fatalf("expected 3 levels, got %d", len(levels))
	}
	if levels[0].Kind != enums.UnitKindPiece || levels[0].Definition != nil {
		t.Fatalf("piece level should carry no explicit definition")
	}
	if levels[1].Definition == nil || *levels[1].Definition != 12 {
		t.Fatalf("pack definition not parsed")
	}
	if levels[2].Definition != nil {
		t.Fatalf("case without packaging qty should have nil definition")
	}
	if levels[2].UPC != "999" {
		t.Fatalf("upc should be trimmed, got %q", levels[2].UPC)
	}
}

func TestApplyRecords(t *testing.T) {
	forms := []UnitForm{
		pieceForm(),
		{Kind: enums.UnitKindPack, Name: "Pack", PackagingQty: "12", TierPrices: []string{"5.00"}},
	}
	records := RecordsFromForms(forms)
	record, ok := FindRecord(records, enums.UnitKindPack)
	if !ok {
		t.Fatalf("pack record missing")
	}
	record.SalePrice = dec("18.00")
	for i := range records {
		if records[i].Kind == enums.UnitKindPack {
			records[i] = record
		}
	}

	updated := ApplyRecords(forms, records)
	pack, _ := FindForm(updated, enums.UnitKindPack)
	if pack.SalePrice != "18.00" {
		t.Fatalf("expected sale price 18.00, got %q", pack.SalePrice)
	}
	if pack.TierPrices[0] != "5.00" {
		t.Fatalf("tier entry should be untouched, got %q", pack.TierPrices[0])
	}
	// Original slice untouched.
	original, _ := FindForm(forms, enums.UnitKindPack)
	if original.SalePrice != "" {
		t.Fatalf("input forms must not be mutated")
	}
}
