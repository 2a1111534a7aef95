package main

import (
	"fmt"

	"github.com/katalvlaran/healthycoder/bmi"
	"github.com/katalvlaran/healthycoder/cohort"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	computeWeight float64
	computeHeight float64
)

// computeCmd evaluates a single weight/height pair
var computeCmd = &cobra.Command{
	Use:   "compute",
	Short: "Compute BMI, weight category and diet recommendation for one coder",
	Long: `Computes BMI = weight / height² for a single coder.

Example:
  bmicalc compute --weight 89 --height 1.72`,
	Args: cobra.NoArgs,
	RunE: runCompute,
}

// scoresCmd prints the BMI of every coder in a cohort file
var scoresCmd = &cobra.Command{
	Use:   "scores [file]",
	Short: "Print the BMI of every coder in a cohort file",
	Args:  cobra.ExactArgs(1),
	RunE:  runScores,
}

// worstCmd reports the coder with the highest BMI in a cohort file
var worstCmd = &cobra.Command{
	Use:   "worst [file]",
	Short: "Report the coder with the worst BMI in a cohort file",
	Args:  cobra.ExactArgs(1),
	RunE:  runWorst,
}

func runCompute(cmd *cobra.Command, args []string) error {
	logger.Debug("Computing BMI",
		zap.Float64("weight", computeWeight),
		zap.Float64("height", computeHeight))

	v, err := bmi.Compute(computeWeight, computeHeight)
	if err != nil {
		logger.Error("BMI computation failed", zap.Error(err))
		return err
	}
	diet := v > bmi.DietThreshold

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "BMI: %.2f\n", bmi.Round(v, 2))
	fmt.Fprintf(out, "Category: %s\n", bmi.Classify(v))
	fmt.Fprintf(out, "Diet recommended: %v\n", diet)
	return nil
}

func runScores(cmd *cobra.Command, args []string) error {
	coders, err := loadCohort(args[0])
	if err != nil {
		return err
	}

	scores, err := bmi.RoundedScores(coders, 2)
	if err != nil {
		logger.Error("Scoring failed", zap.String("file", args[0]), zap.Error(err))
		return err
	}

	out := cmd.OutOrStdout()
	for i, c := range coders {
		fmt.Fprintf(out, "%d\t%.2f m\t%.1f kg\t%.2f\n", i, c.Height, c.Weight, scores[i])
	}
	return nil
}

func runWorst(cmd *cobra.Command, args []string) error {
	coders, err := loadCohort(args[0])
	if err != nil {
		return err
	}

	worst, ok, err := bmi.FindCoderWithWorstBMI(coders)
	if err != nil {
		logger.Error("Worst BMI search failed", zap.String("file", args[0]), zap.Error(err))
		return err
	}

	out := cmd.OutOrStdout()
	if !ok {
		fmt.Fprintln(out, "no coders")
		return nil
	}
	v, err := worst.BMI()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%.2f m\t%.1f kg\t%.2f\n", worst.Height, worst.Weight, bmi.Round(v, 2))
	return nil
}

// loadCohort reads a cohort file and logs its size.
func loadCohort(path string) ([]bmi.Coder, error) {
	coders, err := cohort.Load(path)
	if err != nil {
		logger.Error("Failed to load cohort", zap.String("file", path), zap.Error(err))
		return nil, fmt.Errorf("failed to load cohort: %w", err)
	}
	logger.Debug("Cohort loaded", zap.String("file", path), zap.Int("coders", len(coders)))
	return coders, nil
}
