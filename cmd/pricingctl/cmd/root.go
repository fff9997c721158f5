// Package cmd provides the CLI commands for pricingctl.
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/orderpadhq/pricing-engine/pkg/config"
	"github.com/orderpadhq/pricing-engine/pkg/logger"
)

var (
	inputPath string
	cfg       *config.Config
	logg      *logger.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "pricingctl",
	Short: "Drive the unit-of-measure and multi-channel pricing engine",
	Long: `pricingctl runs the catalog pricing engine against serialized product
form state, the same computations the ordering client triggers on its
Calculate Prices and Save actions.

Examples:
  pricingctl calculate --input form.json
  pricingctl assemble --input form.json > payload.json
  cat form.json | pricingctl convert --input -`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

func init() {
	cobra.OnInitialize(initRuntime)

	rootCmd.PersistentFlags().StringVarP(&inputPath, "input", "i", "-", "form state JSON file (- for stdin)")

	rootCmd.AddCommand(calculateCmd)
	rootCmd.AddCommand(assembleCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(versionCmd)
}

func initRuntime() {
	logg = logger.New(logger.Options{ServiceName: "pricingctl"})

	if err := godotenv.Load(); err != nil {
		logg.Debug(context.Background(), ".env file not found, relying on environment")
	}

	loaded, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}
	cfg = loaded

	logg = logger.New(logger.Options{
		ServiceName: "pricingctl",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})
}

// openInput returns the form-state source for the --input flag.
func openInput() (io.ReadCloser, error) {
	if inputPath == "" || inputPath == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	file, err := os.Open(inputPath)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	return file, nil
}

// writeJSON prints the result document to stdout.
func writeJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("pricingctl version 0.1.0")
	},
}
