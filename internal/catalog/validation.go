package catalog

import (
	"fmt"
	"strings"

	"github.com/orderpadhq/pricing-engine/internal/pricing"
	"github.com/orderpadhq/pricing-engine/internal/units"
	"github.com/orderpadhq/pricing-engine/pkg/enums"
	pkgerrors "github.com/orderpadhq/pricing-engine/pkg/errors"
	"github.com/orderpadhq/pricing-engine/pkg/money"
)

// validateForAssembly runs the submit-time checks in their fixed order and
// returns the first failure. Nothing is assembled until every check passes.
func validateForAssembly(input AssembleInput) error {
	if err := validateUnitNames(input.Units); err != nil {
		return err
	}
	if err := validatePieceEconomics(input.Units); err != nil {
		return err
	}
	return validateCategories(input.Attributes)
}

// validateUnitNames requires a display name on every unit that is in use
// (defined or carrying a UPC). Offenders are reported together, named by
// their ordinal position in the ladder.
func validateUnitNames(forms []pricing.UnitForm) error {
	var offenders []string
	for _, kind := range enums.UnitKinds() {
		form, ok := pricing.FindForm(forms, kind)
		if !ok {
			continue
		}
		level := units.Level{
			Kind: kind,
			UPC:  strings.TrimSpace(form.UPC),
		}
		if kind != enums.UnitKindPiece {
			level.Definition = units.ParseDefinition(form.PackagingQty)
		}
		if !level.Configured() {
			continue
		}
		if strings.TrimSpace(form.Name) == "" {
			offenders = append(offenders, fmt.Sprintf("%s unit", kind.OrdinalName()))
		}
	}
	if len(offenders) == 0 {
		return nil
	}
	return pkgerrors.New(pkgerrors.CodeUnitNameMissing,
		fmt.Sprintf("%s: name is required", strings.Join(offenders, ", "))).
		WithDetails(map[string]any{"units": offenders})
}

// validatePieceEconomics requires the Piece unit's net cost, base cost, and
// sale price to be present, positive, and at most two decimal places. They
// are the root every derived value grows from.
func validatePieceEconomics(forms []pricing.UnitForm) error {
	form, ok := pricing.FindForm(forms, enums.UnitKindPiece)
	if !ok {
		return pkgerrors.New(pkgerrors.CodePieceEconomics, "piece unit is required")
	}

	fields := []struct {
		name string
		raw  string
	}{
		{"net_cost", form.NetCost},
		{"base_cost", form.BaseCost},
		{"sale_price", form.SalePrice},
	}
	for _, field := range fields {
		value := money.ParseAmount(field.raw)
		if !value.IsPositive() {
			return pkgerrors.New(pkgerrors.CodePieceEconomics,
				fmt.Sprintf("piece %s must be greater than zero", field.name)).
				WithDetails(map[string]any{"field": field.name})
		}
		if !money.HasCentPrecision(value) {
			return pkgerrors.New(pkgerrors.CodePieceEconomics,
				fmt.Sprintf("piece %s allows at most two decimal places", field.name)).
				WithDetails(map[string]any{"field": field.name})
		}
	}
	return nil
}

func validateCategories(attrs ProductAttributes) error {
	if len(attrs.CategoryIDs) == 0 {
		return pkgerrors.New(pkgerrors.CodeMissingCategory, "select at least one category")
	}
	if attrs.MainCategoryID == nil {
		return pkgerrors.New(pkgerrors.CodeMissingMainCat, "select a main category")
	}
	for _, id := range attrs.CategoryIDs {
		if id == *attrs.MainCategoryID {
			return nil
		}
	}
	return pkgerrors.New(pkgerrors.CodeMissingMainCat, "main category must be one of the selected categories")
}
