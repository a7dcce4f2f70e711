package dataset

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ColumnOutliers holds the outlier findings for one numeric column.
type ColumnOutliers struct {
	Column     string
	Mean       float64
	StdDev     float64
	RowIndexes []int
}

// OutlierReport is the outcome of an outlier check.
type OutlierReport struct {
	Sigma   float64
	Columns []ColumnOutliers
	Skipped []string
}

// Passed reports whether no analyzed column had outliers.
func (r OutlierReport) Passed() bool {
	for _, col := range r.Columns {
		if len(col.RowIndexes) > 0 {
			return false
		}
	}
	return true
}

// Result folds the report into a summary entry.
func (r OutlierReport) Result() CheckResult {
	res := CheckResult{Name: "outliers", Passed: r.Passed()}
	for _, col := range r.Columns {
		if len(col.RowIndexes) > 0 {
			res.Details = append(res.Details, fmt.Sprintf(
				"column %q: %d values beyond %s standard deviations",
				col.Column, len(col.RowIndexes), strconv.FormatFloat(r.Sigma, 'g', -1, 64)))
		}
	}
	return res
}

// Outliers flags values lying strictly outside mean plus or minus
// sigma times the sample standard deviation, per column. With an empty
// columns list every numeric column is analyzed; explicitly named
// columns that are not numeric are skipped and recorded in Skipped, and
// names the table does not have are an error. Missing cells are excluded
// from the statistics and are never outliers. A column with a single
// numeric value has an undefined standard deviation and yields none.
func Outliers(t *Table, columns []string, sigma float64) (OutlierReport, error) {
	report := OutlierReport{Sigma: sigma}

	names := columns
	if len(names) == 0 {
		names = numericColumns(t)
	} else {
		for _, name := range names {
			if _, ok := t.columnIndex(name); !ok {
				return OutlierReport{}, unknownColumn(name)
			}
		}
	}

	for _, name := range names {
		idx, _ := t.columnIndex(name)

		values, rowIdxs, numeric := numericCells(t, idx)
		if !numeric || len(values) == 0 {
			report.Skipped = append(report.Skipped, name)
			continue
		}

		mean, std := sampleStats(values)
		col := ColumnOutliers{Column: name, Mean: mean, StdDev: std}

		lo, hi := mean-sigma*std, mean+sigma*std
		for i, v := range values {
			if v < lo || v > hi {
				col.RowIndexes = append(col.RowIndexes, rowIdxs[i])
			}
		}

		report.Columns = append(report.Columns, col)
	}

	return report, nil
}

// numericColumns returns the names of columns whose every non-missing
// cell parses as a float and which hold at least one numeric value.
func numericColumns(t *Table) []string {
	var names []string
	for i, name := range t.Columns {
		if values, _, numeric := numericCells(t, i); numeric && len(values) > 0 {
			names = append(names, name)
		}
	}
	return names
}

// numericCells collects the parsed non-missing cells of one column with
// their row indexes. numeric is false when any non-missing cell fails to
// parse.
func numericCells(t *Table, colIdx int) (values []float64, rowIdxs []int, numeric bool) {
	for rowIdx, row := range t.Rows {
		cell := row[colIdx]
		if IsMissing(cell) {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
		if err != nil {
			return nil, nil, false
		}
		values = append(values, v)
		rowIdxs = append(rowIdxs, rowIdx)
	}
	return values, rowIdxs, true
}

// sampleStats returns the mean and sample standard deviation. The
// deviation of fewer than two values is NaN, which flags nothing.
func sampleStats(values []float64) (mean, std float64) {
	n := float64(len(values))
	var sum float64
	for _, v := range values {
		sum += v
	}
	mean = sum / n

	if len(values) < 2 {
		return mean, math.NaN()
	}

	var sq float64
	for _, v := range values {
		d := v - mean
		sq += d * d
	}
	return mean, math.Sqrt(sq / (n - 1))
}
