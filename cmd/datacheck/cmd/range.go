package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/datacheck/pkg/sanitizer"
)

var (
	rangeMin float64
	rangeMax float64
)

var rangeCmd = &cobra.Command{
	Use:   "range <value>",
	Short: "Check that a numeric value lies within an inclusive range",
	Long: `Checks min <= value <= max. Both bounds are inclusive.

Examples:
  datacheck range 15.5 --min 10 --max 20
  datacheck range -3 --min 0 --max 100`,
	Args: cobra.ExactArgs(1),
	RunE: runRange,
}

func init() {
	rootCmd.AddCommand(rangeCmd)

	rangeCmd.Flags().Float64Var(&rangeMin, "min", 0, "Lower bound (inclusive)")
	rangeCmd.Flags().Float64Var(&rangeMax, "max", 0, "Upper bound (inclusive)")
}

func runRange(cmd *cobra.Command, args []string) error {
	if !cmd.Flags().Changed("min") || !cmd.Flags().Changed("max") {
		return fmt.Errorf("--min and --max are required")
	}

	value, err := strconv.ParseFloat(sanitizer.Trim(args[0]), 64)
	if err != nil {
		return fmt.Errorf("value %q is not a number", args[0])
	}

	out := cmd.OutOrStdout()

	ok := vdt.ValidateRange(value, rangeMin, rangeMax)
	for _, entry := range vdt.Errors() {
		fmt.Fprintln(out, entry)
	}
	if !ok {
		return exitError(exitInvalid, "range check failed")
	}
	fmt.Fprintln(out, "within range")
	return nil
}
