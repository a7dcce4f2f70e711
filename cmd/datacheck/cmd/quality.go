package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/datacheck/pkg/dataset"
)

var (
	qualityThreshold float64
	qualitySigma     float64
	qualityColumns   []string
	qualitySubset    []string
)

var qualityCmd = &cobra.Command{
	Use:   "quality <file.csv>",
	Short: "Run missing-value, duplicate and outlier checks over a CSV file",
	Long: `Reads a CSV file with a header row and runs the three quality checks
in order: missing values per column, duplicate rows, and numeric
outliers. The process exits 1 when any check fails.

Examples:
  datacheck quality users.csv
  datacheck quality users.csv --threshold 0.25 --sigma 2
  datacheck quality orders.csv --subset order_id --columns amount,qty`,
	Args: cobra.ExactArgs(1),
	RunE: runQuality,
}

func init() {
	rootCmd.AddCommand(qualityCmd)

	qualityCmd.Flags().Float64Var(&qualityThreshold, "threshold", 0.1, "Highest acceptable missing fraction per column")
	qualityCmd.Flags().Float64Var(&qualitySigma, "sigma", 3, "Standard deviations bounding a normal value")
	qualityCmd.Flags().StringSliceVar(&qualityColumns, "columns", nil, "Columns to scan for outliers (default: every numeric column)")
	qualityCmd.Flags().StringSliceVar(&qualitySubset, "subset", nil, "Columns that define a duplicate (default: all)")
}

func runQuality(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	table, err := dataset.ReadCSV(f)
	if err != nil {
		return err
	}

	threshold := qualityThreshold
	if !cmd.Flags().Changed("threshold") {
		threshold = cfg.MissingThreshold
	}
	sigma := qualitySigma
	if !cmd.Flags().Changed("sigma") {
		sigma = cfg.OutlierSigma
	}

	report, err := dataset.RunAll(table, dataset.Options{
		MissingThreshold: threshold,
		DuplicateSubset:  qualitySubset,
		OutlierColumns:   qualityColumns,
		OutlierSigma:     sigma,
	})
	if err != nil {
		return err
	}

	printReport(cmd.OutOrStdout(), report)

	if !report.OK() {
		return exitError(exitInvalid, "quality checks failed")
	}
	return nil
}

func printReport(out io.Writer, report *dataset.Report) {
	fmt.Fprintf(out, "report %s generated %s\n", report.ID, report.GeneratedAt.Format(time.RFC3339))
	fmt.Fprintf(out, "%d rows, %d columns\n\n", report.Rows, report.Columns)

	for _, check := range report.Checks {
		status := "PASS"
		if !check.Passed {
			status = "FAIL"
		}
		fmt.Fprintf(out, "%-16s %s\n", check.Name, status)
		for _, detail := range check.Details {
			fmt.Fprintf(out, "  - %s\n", detail)
		}
	}

	fmt.Fprintln(out)
	if report.OK() {
		fmt.Fprintln(out, "overall: PASS")
	} else {
		fmt.Fprintln(out, "overall: FAIL")
	}
}
