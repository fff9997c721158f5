package cmd

import (
	"github.com/spf13/cobra"

	"github.com/orderpadhq/pricing-engine/internal/catalog"
	"github.com/orderpadhq/pricing-engine/internal/forms"
)

// assembleCmd validates the form state and emits the submission payload.
var assembleCmd = &cobra.Command{
	Use:   "assemble",
	Short: "Assemble the multi-channel catalog payload from form state",
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := openInput()
		if err != nil {
			return err
		}
		defer source.Close()

		var input catalog.AssembleInput
		if err := forms.DecodeJSON(source, &input); err != nil {
			return err
		}

		svc, err := catalog.NewService(cfg.Engine, logg)
		if err != nil {
			return err
		}

		payload, err := svc.AssemblePayload(cmd.Context(), input)
		if err != nil {
			return err
		}
		return writeJSON(payload)
	},
}
