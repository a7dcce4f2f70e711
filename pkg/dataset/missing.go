package dataset

import (
	"fmt"
	"slices"
	"strings"
)

// missingSentinels are the cell values treated as absent besides
// whitespace-only cells, compared after trimming and lowercasing. They
// cover what spreadsheet exports commonly write into empty fields.
var missingSentinels = map[string]struct{}{
	"na":   {},
	"n/a":  {},
	"nan":  {},
	"null": {},
}

// IsMissing reports whether a cell counts as absent.
func IsMissing(cell string) bool {
	cell = strings.ToLower(strings.TrimSpace(cell))
	if cell == "" {
		return true
	}
	_, ok := missingSentinels[cell]
	return ok
}

// ColumnMissing is the missing-value tally for one column.
type ColumnMissing struct {
	Column   string
	Missing  int
	Fraction float64
}

// MissingReport is the outcome of a missing-values check.
type MissingReport struct {
	Threshold float64
	Columns   []ColumnMissing
	Flagged   []string
}

// Passed reports whether no column exceeded the threshold.
func (r MissingReport) Passed() bool { return len(r.Flagged) == 0 }

// Result folds the report into a summary entry.
func (r MissingReport) Result() CheckResult {
	res := CheckResult{Name: "missing_values", Passed: r.Passed()}
	for _, col := range r.Columns {
		if slices.Contains(r.Flagged, col.Column) {
			res.Details = append(res.Details, fmt.Sprintf(
				"column %q: %.1f%% missing (threshold %.1f%%)",
				col.Column, col.Fraction*100, r.Threshold*100))
		}
	}
	return res
}

// MissingValues tallies absent cells per column and flags columns whose
// missing fraction exceeds threshold, strictly. A table without rows has
// nothing missing and always passes.
func MissingValues(t *Table, threshold float64) MissingReport {
	report := MissingReport{
		Threshold: threshold,
		Columns:   make([]ColumnMissing, len(t.Columns)),
	}

	for i, name := range t.Columns {
		count := 0
		for _, row := range t.Rows {
			if IsMissing(row[i]) {
				count++
			}
		}

		fraction := 0.0
		if len(t.Rows) > 0 {
			fraction = float64(count) / float64(len(t.Rows))
		}

		report.Columns[i] = ColumnMissing{Column: name, Missing: count, Fraction: fraction}
		if fraction > threshold {
			report.Flagged = append(report.Flagged, name)
		}
	}

	return report
}
