// Package dataset runs quality checks over small in-memory tables:
// missing values per column, duplicate rows, and statistical outliers,
// folded into a summary report.
//
// A Table is a header plus rows of string cells, usually read from CSV:
//
//	t, err := dataset.ReadCSV(f)
//	missing := dataset.MissingValues(t, 0.1)
//	dups, err := dataset.Duplicates(t, nil)
//	outs, err := dataset.Outliers(t, nil, 3)
//
// Cells are interpreted lazily. A cell counts as missing when it is empty
// after trimming or reads na, n/a, nan or null in any casing. A column
// counts as numeric when every non-missing cell parses as a float after
// trimming. Nothing is converted up front and the table itself is never
// mutated by a check.
//
// Checks are independent and each returns a typed report carrying its
// findings; Report collects their pass/fail results in run order, and
// RunAll is the convenience path that executes all three checks with one
// set of options. Reports live in memory only; rendering and persistence
// are the caller's business.
package dataset
