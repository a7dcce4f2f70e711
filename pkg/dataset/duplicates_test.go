package dataset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/datacheck/pkg/dataset"
)

func TestDuplicates(t *testing.T) {
	t.Parallel()

	t.Run("counts repeats of earlier rows", func(t *testing.T) {
		table := &dataset.Table{
			Columns: []string{"name", "email"},
			Rows: [][]string{
				{"alice", "alice@example.com"},
				{"bob", "bob@example.com"},
				{"alice", "alice@example.com"},
			},
		}

		report, err := dataset.Duplicates(table, nil)
		require.NoError(t, err)

		assert.Equal(t, 1, report.Count)
		assert.Equal(t, []int{2}, report.RowIndexes)
		assert.False(t, report.Passed())
	})

	t.Run("first occurrence is never counted", func(t *testing.T) {
		table := &dataset.Table{
			Columns: []string{"v"},
			Rows:    [][]string{{"x"}, {"x"}, {"x"}},
		}

		report, err := dataset.Duplicates(table, nil)
		require.NoError(t, err)

		assert.Equal(t, 2, report.Count)
		assert.Equal(t, []int{1, 2}, report.RowIndexes)
	})

	t.Run("subset restricts the compared columns", func(t *testing.T) {
		table := &dataset.Table{
			Columns: []string{"id", "email"},
			Rows: [][]string{
				{"1", "shared@example.com"},
				{"2", "shared@example.com"},
			},
		}

		full, err := dataset.Duplicates(table, nil)
		require.NoError(t, err)
		assert.Equal(t, 0, full.Count)

		bySubset, err := dataset.Duplicates(table, []string{"email"})
		require.NoError(t, err)
		assert.Equal(t, 1, bySubset.Count)
	})

	t.Run("unknown subset column is an error", func(t *testing.T) {
		table := &dataset.Table{Columns: []string{"a"}, Rows: [][]string{{"1"}}}

		_, err := dataset.Duplicates(table, []string{"nope"})
		assert.ErrorIs(t, err, dataset.ErrUnknownColumn)
	})

	t.Run("clean table passes with empty details", func(t *testing.T) {
		table := &dataset.Table{
			Columns: []string{"v"},
			Rows:    [][]string{{"1"}, {"2"}},
		}

		report, err := dataset.Duplicates(table, nil)
		require.NoError(t, err)
		assert.True(t, report.Passed())

		res := report.Result()
		assert.Equal(t, "duplicates", res.Name)
		assert.True(t, res.Passed)
		assert.Empty(t, res.Details)
	})

	t.Run("result names the compared scope", func(t *testing.T) {
		table := &dataset.Table{
			Columns: []string{"id", "email"},
			Rows: [][]string{
				{"1", "shared@example.com"},
				{"2", "shared@example.com"},
			},
		}

		report, err := dataset.Duplicates(table, []string{"email"})
		require.NoError(t, err)

		res := report.Result()
		require.Len(t, res.Details, 1)
		assert.Equal(t, "1 duplicate rows on columns email", res.Details[0])
	})

	t.Run("adjacent cells never collide with joined content", func(t *testing.T) {
		table := &dataset.Table{
			Columns: []string{"a", "b"},
			Rows: [][]string{
				{"x", "y"},
				{"x\x1fy", ""},
			},
		}

		report, err := dataset.Duplicates(table, nil)
		require.NoError(t, err)
		assert.Equal(t, 0, report.Count)
	})
}
