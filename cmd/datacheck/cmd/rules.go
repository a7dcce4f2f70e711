package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List registered validation rules",
	Long: `Lists every registered rule with its pattern: the built-ins plus
anything loaded from --rules-file or DATACHECK_RULES_FILE.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		for _, name := range vdt.RuleNames() {
			p, _ := vdt.Rule(name)
			fmt.Fprintf(out, "%-16s %s\n", name, p.Source())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}
