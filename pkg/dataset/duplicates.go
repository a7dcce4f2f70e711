package dataset

import (
	"fmt"
	"strings"
)

// DuplicateReport is the outcome of a duplicate-rows check.
type DuplicateReport struct {
	Subset     []string
	Count      int
	RowIndexes []int
}

// Passed reports whether no duplicate rows were found.
func (r DuplicateReport) Passed() bool { return r.Count == 0 }

// Result folds the report into a summary entry.
func (r DuplicateReport) Result() CheckResult {
	res := CheckResult{Name: "duplicates", Passed: r.Passed()}
	if r.Count > 0 {
		scope := "all columns"
		if len(r.Subset) > 0 {
			scope = "columns " + strings.Join(r.Subset, ", ")
		}
		res.Details = append(res.Details,
			fmt.Sprintf("%d duplicate rows on %s", r.Count, scope))
	}
	return res
}

// Duplicates counts rows that repeat an earlier row on the subset
// columns, every column when subset is empty. The first occurrence is
// never counted; RowIndexes holds the zero-based positions of the
// repeats. Naming a column the table does not have is an error.
func Duplicates(t *Table, subset []string) (DuplicateReport, error) {
	idxs, err := t.columnIndexes(subset)
	if err != nil {
		return DuplicateReport{}, err
	}

	report := DuplicateReport{Subset: subset}
	seen := make(map[string]struct{}, len(t.Rows))
	for rowIdx, row := range t.Rows {
		key := rowKey(row, idxs)
		if _, dup := seen[key]; dup {
			report.Count++
			report.RowIndexes = append(report.RowIndexes, rowIdx)
			continue
		}
		seen[key] = struct{}{}
	}

	return report, nil
}

// rowKey joins the selected cells with an unlikely separator. Quoting each
// cell keeps a cell containing the separator from colliding.
func rowKey(row []string, idxs []int) string {
	parts := make([]string, len(idxs))
	for i, idx := range idxs {
		parts[i] = fmt.Sprintf("%q", row[idx])
	}
	return strings.Join(parts, "\x1f")
}
