package pricing

import (
	"strings"

	"github.com/orderpadhq/pricing-engine/internal/units"
	"github.com/orderpadhq/pricing-engine/pkg/enums"
	"github.com/orderpadhq/pricing-engine/pkg/money"
)

// UnitForm is the user-entered state for one packaging unit, exactly as it
// arrives from the product form: free text, not yet parsed or validated.
type UnitForm struct {
	Kind               enums.UnitKind `json:"unit" validate:"required"`
	Name               string         `json:"unit_name"`
	PackagingQty       string         `json:"packaging_qty"`
	UPC                string         `json:"upc"`
	BaseCost           string         `json:"base_cost"`
	NetCost            string         `json:"net_cost"`
	SalePrice          string         `json:"sale_price"`
	Margin             string         `json:"margin"`
	MSRP               string         `json:"msrp"`
	LowestSellingPrice string         `json:"lowest_selling_price"`
	EcomPrice          string         `json:"ecom_price"`
	TierPrices         []string       `json:"tier_prices"`
}

// UnitPrice is the wire-shaped record emitted once per defined unit.
type UnitPrice struct {
	Unit               enums.UnitKind     `json:"unit"`
	UnitName           string             `json:"unit_name"`
	Definition         int64              `json:"definition"`
	UPC                string             `json:"upc"`
	BaseCost           float64            `json:"base_cost"`
	Cost               float64            `json:"cost"`
	Price              float64            `json:"price"`
	Margin             float64            `json:"margin"`
	MarginType         enums.MarginType   `json:"margin_type"`
	LowestSellingPrice float64            `json:"lowest_selling_price"`
	EcomPrice          float64            `json:"ecom_price"`
	MSRPPrice          float64            `json:"msrp_price"`
	Tiers              [TierSlots]float64 `json:"unit_price_tiers"`
}

// FindForm returns the form entry for the given kind.
func FindForm(forms []UnitForm, kind enums.UnitKind) (UnitForm, bool) {
	for _, form := range forms {
		if form.Kind == kind {
			return form, true
		}
	}
	return UnitForm{}, false
}

// ToLevels derives the packaging hierarchy from the per-unit form state.
func ToLevels(forms []UnitForm) []units.Level {
	levels := make([]units.Level, 0, len(forms))
	for _, kind := range enums.UnitKinds() {
		form, ok := FindForm(forms, kind)
		if !ok {
			continue
		}
		level := units.Level{
			Kind:  kind,
			Label: strings.TrimSpace(form.Name),
			UPC:   strings.TrimSpace(form.UPC),
		}
		if kind != enums.UnitKindPiece {
			level.Definition = units.ParseDefinition(form.PackagingQty)
		}
		levels = append(levels, level)
	}
	return levels
}

// RecordFromForm parses a unit's monetary form fields into a typed record,
// rounding every amount through the shared helper.
func RecordFromForm(form UnitForm) Record {
	record := Record{
		Kind:               form.Kind,
		BaseCost:           money.ParseRoundedAmount(form.BaseCost),
		NetCost:            money.ParseRoundedAmount(form.NetCost),
		SalePrice:          money.ParseRoundedAmount(form.SalePrice),
		Margin:             money.ParseRoundedAmount(form.Margin),
		MSRP:               money.ParseRoundedAmount(form.MSRP),
		LowestSellingPrice: money.ParseRoundedAmount(form.LowestSellingPrice),
		EcomPrice:          money.ParseRoundedAmount(form.EcomPrice),
	}
	for i := 0; i < TierSlots && i < len(form.TierPrices); i++ {
		record.Tiers[i] = money.ParseRoundedAmount(form.TierPrices[i])
	}
	return record
}

// RecordsFromForms parses every unit form in canonical order.
func RecordsFromForms(forms []UnitForm) []Record {
	records := make([]Record, 0, len(forms))
	for _, kind := range enums.UnitKinds() {
		if form, ok := FindForm(forms, kind); ok {
			records = append(records, RecordFromForm(form))
		}
	}
	return records
}

// ApplyRecords writes derived monetary values back into a copy of the form
// state, formatted the way the form displays them. Tier fields are the
// user's own and are left alone.
func ApplyRecords(forms []UnitForm, records []Record) []UnitForm {
	out := make([]UnitForm, len(forms))
	copy(out, forms)
	for i, form := range out {
		record, ok := FindRecord(records, form.Kind)
		if !ok {
			continue
		}
		out[i].BaseCost = record.BaseCost.StringFixed(2)
		out[i].NetCost = record.NetCost.StringFixed(2)
		out[i].SalePrice = record.SalePrice.StringFixed(2)
		out[i].Margin = record.Margin.StringFixed(2)
		out[i].MSRP = record.MSRP.StringFixed(2)
		out[i].LowestSellingPrice = record.LowestSellingPrice.StringFixed(2)
		out[i].EcomPrice = record.EcomPrice.StringFixed(2)
	}
	return out
}

// BuildUnitPrices emits the ordered unit-price list for transmission. A
// non-piece unit with no parseable packaging quantity is excluded entirely,
// even when it carries a UPC or monetary values.
func BuildUnitPrices(forms []UnitForm) []UnitPrice {
	prices := make([]UnitPrice, 0, len(forms))
	for _, kind := range enums.UnitKinds() {
		form, ok := FindForm(forms, kind)
		if !ok {
			continue
		}

		definition := int64(1)
		if kind != enums.UnitKindPiece {
			parsed := units.ParseDefinition(form.PackagingQty)
			if parsed == nil {
				continue
			}
			definition = *parsed
		}

		price := UnitPrice{
			Unit:               kind,
			UnitName:           strings.TrimSpace(form.Name),
			Definition:         definition,
			UPC:                strings.TrimSpace(form.UPC),
			BaseCost:           amount(form.BaseCost),
			Cost:               amount(form.NetCost),
			Price:              amount(form.SalePrice),
			Margin:             amount(form.Margin),
			MarginType:         enums.MarginTypePercentage,
			LowestSellingPrice: amount(form.LowestSellingPrice),
			EcomPrice:          amount(form.EcomPrice),
			MSRPPrice:          amount(form.MSRP),
		}
		for i := 0; i < TierSlots && i < len(form.TierPrices); i++ {
			price.Tiers[i] = amount(form.TierPrices[i])
		}
		prices = append(prices, price)
	}
	return prices
}

func amount(raw string) float64 {
	value, _ := money.ParseRoundedAmount(raw).Float64()
	return value
}
