package cmd

import (
	"github.com/spf13/cobra"

	"github.com/orderpadhq/pricing-engine/internal/forms"
	"github.com/orderpadhq/pricing-engine/internal/pricing"
	"github.com/orderpadhq/pricing-engine/internal/units"
	"github.com/orderpadhq/pricing-engine/pkg/enums"
)

type convertInput struct {
	Units []pricing.UnitForm `json:"units" validate:"required,min=1,dive"`
	// BoughtBy is accepted so calculate documents can be reused unchanged.
	BoughtBy string `json:"bought_by_unit"`
}

type unitMultiplier struct {
	Unit       enums.UnitKind `json:"unit"`
	UnitName   string         `json:"unit_name,omitempty"`
	ToBase     int64          `json:"to_base"`
	InUse      bool           `json:"in_use"`
	Definition *int64         `json:"definition,omitempty"`
}

// convertCmd prints each unit's base-unit multiplier for a hierarchy.
var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Show base-unit multipliers for a packaging hierarchy",
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := openInput()
		if err != nil {
			return err
		}
		defer source.Close()

		var input convertInput
		if err := forms.DecodeJSON(source, &input); err != nil {
			return err
		}

		levels := pricing.ToLevels(input.Units)
		multipliers := make([]unitMultiplier, 0, len(levels))
		for _, level := range levels {
			multipliers = append(multipliers, unitMultiplier{
				Unit:       level.Kind,
				UnitName:   level.Label,
				ToBase:     units.MultiplierToBase(level.Kind, levels),
				InUse:      level.Convertible(),
				Definition: level.Definition,
			})
		}
		return writeJSON(map[string]any{"multipliers": multipliers})
	},
}
