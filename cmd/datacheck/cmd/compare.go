package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/datacheck/pkg/sanitizer"
	"github.com/dmitrymomot/datacheck/pkg/validator"
)

var compareKind string

var compareCmd = &cobra.Command{
	Use:   "compare <first> <second>",
	Short: "Check two values for consistency",
	Long: `Checks two values against each other. Equality compares the exact
strings; numeric parses both as floats and compares the numbers, so
"5" and "5.0" are consistent.

Examples:
  datacheck compare jane@example.com jane@example.com
  datacheck compare 5 5.0 --kind numeric`,
	Args: cobra.ExactArgs(2),
	RunE: runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)

	compareCmd.Flags().StringVar(&compareKind, "kind", "equality", "Consistency kind: equality or numeric")
}

func runCompare(cmd *cobra.Command, args []string) error {
	kind, err := validator.ParseConsistencyKind(compareKind)
	if err != nil {
		return err
	}

	a := sanitizer.Trim(args[0])
	b := sanitizer.Trim(args[1])

	out := cmd.OutOrStdout()

	ok := vdt.CheckConsistency(a, b, kind)
	for _, entry := range vdt.Errors() {
		fmt.Fprintln(out, entry)
	}
	if !ok {
		return exitError(exitInvalid, "values are not consistent")
	}
	fmt.Fprintln(out, "consistent")
	return nil
}
