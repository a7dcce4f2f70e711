package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/datacheck/pkg/sanitizer"
	"github.com/dmitrymomot/datacheck/pkg/validator"
)

var (
	checkRule    string
	checkPattern string
	checkDigits  bool
)

var checkCmd = &cobra.Command{
	Use:   "check <value>",
	Short: "Validate one value against a rule or an inline pattern",
	Long: `Validates a single value. Pick a registered rule with --rule
(built-ins plus any rules file) or give an inline pattern with
--pattern. Patterns must match the whole value.

Examples:
  datacheck check jane@example.com --rule email
  datacheck check "(555) 123-4567" --rule phone --digits
  datacheck check AB-1234 --pattern '^[A-Z]{2}-\d{4}$'`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVar(&checkRule, "rule", "", "Name of a registered rule")
	checkCmd.Flags().StringVar(&checkPattern, "pattern", "", "Inline pattern instead of a registered rule")
	checkCmd.Flags().BoolVar(&checkDigits, "digits", false, "Drop every non-digit before checking")
}

func runCheck(cmd *cobra.Command, args []string) error {
	if (checkRule == "") == (checkPattern == "") {
		return fmt.Errorf("exactly one of --rule or --pattern is required")
	}

	value := sanitizer.Trim(args[0])
	if checkDigits {
		value = sanitizer.KeepDigits(value)
	}

	out := cmd.OutOrStdout()

	if checkPattern != "" {
		p, err := validator.CompilePattern(checkPattern)
		if err != nil {
			return err
		}
		if !p.MatchString(value) {
			fmt.Fprintf(out, "invalid: %q does not match %s\n", value, checkPattern)
			return exitError(exitInvalid, "validation failed")
		}
		fmt.Fprintf(out, "valid: %q matches %s\n", value, checkPattern)
		return nil
	}

	ok := vdt.Validate(value, checkRule)
	for _, entry := range vdt.Errors() {
		fmt.Fprintln(out, entry)
	}
	if !ok {
		return exitError(exitInvalid, "validation failed")
	}
	fmt.Fprintf(out, "valid: %q matches rule %q\n", value, checkRule)
	return nil
}
