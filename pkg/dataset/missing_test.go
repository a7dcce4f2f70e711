package dataset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/datacheck/pkg/dataset"
)

func TestIsMissing(t *testing.T) {
	t.Parallel()

	t.Run("absent cells", func(t *testing.T) {
		for _, cell := range []string{"", "   ", "\t", "na", "NA", " N/A ", "NaN", "null", "NULL"} {
			assert.True(t, dataset.IsMissing(cell), "should treat %q as missing", cell)
		}
	})

	t.Run("present cells", func(t *testing.T) {
		for _, cell := range []string{"0", "false", "none", "n.a.", "banana", "-"} {
			assert.False(t, dataset.IsMissing(cell), "should treat %q as present", cell)
		}
	})
}

func TestMissingValues(t *testing.T) {
	t.Parallel()

	table := &dataset.Table{
		Columns: []string{"name", "email"},
		Rows: [][]string{
			{"alice", "alice@example.com"},
			{"bob", ""},
			{"carol", "carol@example.com"},
			{"dave", "n/a"},
		},
	}

	t.Run("tallies fractions per column", func(t *testing.T) {
		report := dataset.MissingValues(table, 0.1)

		require.Len(t, report.Columns, 2)
		assert.Equal(t, dataset.ColumnMissing{Column: "name", Missing: 0, Fraction: 0}, report.Columns[0])
		assert.Equal(t, dataset.ColumnMissing{Column: "email", Missing: 2, Fraction: 0.5}, report.Columns[1])
	})

	t.Run("flags columns above the threshold", func(t *testing.T) {
		report := dataset.MissingValues(table, 0.1)

		assert.Equal(t, []string{"email"}, report.Flagged)
		assert.False(t, report.Passed())
	})

	t.Run("threshold is strict", func(t *testing.T) {
		// email is at exactly 50% missing; a 0.5 threshold must pass it.
		report := dataset.MissingValues(table, 0.5)

		assert.Empty(t, report.Flagged)
		assert.True(t, report.Passed())
	})

	t.Run("table without rows passes", func(t *testing.T) {
		empty := &dataset.Table{Columns: []string{"a", "b"}}
		report := dataset.MissingValues(empty, 0)

		assert.True(t, report.Passed())
		assert.Equal(t, 0.0, report.Columns[0].Fraction)
	})

	t.Run("result carries flagged columns only", func(t *testing.T) {
		res := dataset.MissingValues(table, 0.1).Result()

		assert.Equal(t, "missing_values", res.Name)
		assert.False(t, res.Passed)
		require.Len(t, res.Details, 1)
		assert.Equal(t, `column "email": 50.0% missing (threshold 10.0%)`, res.Details[0])
	})

	t.Run("passing result has no details", func(t *testing.T) {
		res := dataset.MissingValues(table, 0.5).Result()

		assert.True(t, res.Passed)
		assert.Empty(t, res.Details)
	})
}
