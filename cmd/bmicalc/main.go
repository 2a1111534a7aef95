// Command bmicalc computes BMI figures for single coders or whole cohort files.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose bool

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "bmicalc",
	Short: "BMI calculator for coders",
	Long: `bmicalc computes Body Mass Index values.

Cohort files are CSV (weight,height with one header line) or YAML
(a "coders" list of {height, weight} entries).`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if logger != nil {
			return nil
		}
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	computeCmd.Flags().Float64Var(&computeWeight, "weight", 0, "Weight in kilograms")
	computeCmd.Flags().Float64Var(&computeHeight, "height", 0, "Height in metres")
	_ = computeCmd.MarkFlagRequired("weight")
	_ = computeCmd.MarkFlagRequired("height")

	rootCmd.AddCommand(computeCmd, scoresCmd, worstCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
