// Package main is the entry point for the pricingctl CLI.
package main

import (
	"os"

	"github.com/orderpadhq/pricing-engine/cmd/pricingctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
