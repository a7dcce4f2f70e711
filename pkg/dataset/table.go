package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
)

// Table is an immutable-by-convention grid of string cells under named
// columns. Checks read it, nothing writes it.
type Table struct {
	Columns []string
	Rows    [][]string
}

// ReadCSV parses CSV input into a Table. The first record is the header
// and is required; every following record must have the same number of
// fields, which encoding/csv already enforces.
func ReadCSV(r io.Reader) (*Table, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, errors.Join(ErrInvalidCSV, err)
	}
	return FromRecords(records)
}

// FromRecords builds a Table from raw records, treating the first as the
// header row. Every data record must have as many fields as the header;
// the checks index rows by column position and rely on it.
func FromRecords(records [][]string) (*Table, error) {
	if len(records) == 0 {
		return nil, ErrMissingHeader
	}
	header := records[0]
	for i, row := range records[1:] {
		if len(row) != len(header) {
			return nil, fmt.Errorf("%w: row %d has %d fields, header has %d",
				ErrInvalidCSV, i, len(row), len(header))
		}
	}
	return &Table{Columns: header, Rows: records[1:]}, nil
}

// RowCount reports the number of data rows, the header excluded.
func (t *Table) RowCount() int { return len(t.Rows) }

// ColumnCount reports the number of columns.
func (t *Table) ColumnCount() int { return len(t.Columns) }

// columnIndex resolves a column name to its position.
func (t *Table) columnIndex(name string) (int, bool) {
	idx := slices.Index(t.Columns, name)
	return idx, idx >= 0
}

// columnIndexes resolves names in order, failing on the first unknown
// one. An empty names list selects every column.
func (t *Table) columnIndexes(names []string) ([]int, error) {
	if len(names) == 0 {
		idxs := make([]int, len(t.Columns))
		for i := range idxs {
			idxs[i] = i
		}
		return idxs, nil
	}

	idxs := make([]int, 0, len(names))
	for _, name := range names {
		idx, ok := t.columnIndex(name)
		if !ok {
			return nil, unknownColumn(name)
		}
		idxs = append(idxs, idx)
	}
	return idxs, nil
}
