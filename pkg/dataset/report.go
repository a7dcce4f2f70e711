package dataset

import (
	"time"

	"github.com/google/uuid"
)

// CheckResult is one check's contribution to a Report.
type CheckResult struct {
	Name    string
	Passed  bool
	Details []string
}

// Report collects check results over one table. It lives in memory only;
// rendering is the caller's business.
type Report struct {
	ID          uuid.UUID
	GeneratedAt time.Time
	Rows        int
	Columns     int
	Checks      []CheckResult
}

// NewReport starts an empty report for t.
func NewReport(t *Table) *Report {
	return &Report{
		ID:          uuid.New(),
		GeneratedAt: time.Now(),
		Rows:        t.RowCount(),
		Columns:     t.ColumnCount(),
	}
}

// Add appends a check result in run order.
func (r *Report) Add(result CheckResult) {
	r.Checks = append(r.Checks, result)
}

// OK reports whether every executed check passed. An empty report is OK.
func (r *Report) OK() bool {
	for _, c := range r.Checks {
		if !c.Passed {
			return false
		}
	}
	return true
}

// Options configures RunAll.
type Options struct {
	// MissingThreshold is the highest acceptable missing fraction per
	// column, strictly.
	MissingThreshold float64

	// DuplicateSubset limits duplicate detection to these columns; empty
	// means all.
	DuplicateSubset []string

	// OutlierColumns limits outlier detection to these columns; empty
	// means every numeric column.
	OutlierColumns []string

	// OutlierSigma is the number of standard deviations that bounds a
	// normal value.
	OutlierSigma float64
}

// RunAll executes the missing-values, duplicates and outliers checks in
// that order and folds them into one report.
func RunAll(t *Table, opts Options) (*Report, error) {
	report := NewReport(t)

	report.Add(MissingValues(t, opts.MissingThreshold).Result())

	dups, err := Duplicates(t, opts.DuplicateSubset)
	if err != nil {
		return nil, err
	}
	report.Add(dups.Result())

	outs, err := Outliers(t, opts.OutlierColumns, opts.OutlierSigma)
	if err != nil {
		return nil, err
	}
	report.Add(outs.Result())

	return report, nil
}
