package cmd

import (
	"github.com/spf13/cobra"

	"github.com/orderpadhq/pricing-engine/internal/catalog"
	"github.com/orderpadhq/pricing-engine/internal/forms"
)

// calculateCmd distributes prices across the packaging hierarchy.
var calculateCmd = &cobra.Command{
	Use:   "calculate",
	Short: "Derive every unit's prices from the bought-by reference unit",
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := openInput()
		if err != nil {
			return err
		}
		defer source.Close()

		var input catalog.CalculateInput
		if err := forms.DecodeJSON(source, &input); err != nil {
			return err
		}

		svc, err := catalog.NewService(cfg.Engine, logg)
		if err != nil {
			return err
		}

		result, err := svc.CalculatePrices(cmd.Context(), input)
		if err != nil {
			return err
		}
		return writeJSON(result)
	},
}
