package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/datacheck/pkg/validator"
)

func TestConsistent(t *testing.T) {
	t.Parallel()

	t.Run("equality compares exact strings", func(t *testing.T) {
		out := validator.Consistent("test", "test", validator.KindEquality)
		assert.True(t, out.OK)
		assert.Empty(t, out.Detail)
	})

	t.Run("equality mismatch fails silently", func(t *testing.T) {
		out := validator.Consistent("test", "TEST", validator.KindEquality)
		assert.False(t, out.OK)
		assert.Empty(t, out.Detail)
	})

	t.Run("equality does not parse numbers", func(t *testing.T) {
		out := validator.Consistent("5", "5.0", validator.KindEquality)
		assert.False(t, out.OK)
		assert.Empty(t, out.Detail)
	})

	t.Run("numeric compares parsed values", func(t *testing.T) {
		testCases := []struct {
			name string
			a, b string
		}{
			{"integer and decimal form", "5", "5.0"},
			{"identical decimals", "3.14", "3.14"},
			{"scientific notation", "1e3", "1000"},
			{"leading plus sign", "+7", "7"},
			{"negative zero", "-0", "0"},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				out := validator.Consistent(tc.a, tc.b, validator.KindNumeric)
				assert.True(t, out.OK)
				assert.Empty(t, out.Detail)
			})
		}
	})

	t.Run("numeric mismatch fails silently", func(t *testing.T) {
		out := validator.Consistent("5", "5.1", validator.KindNumeric)
		assert.False(t, out.OK)
		assert.Empty(t, out.Detail)
	})

	t.Run("numeric parse failure carries a diagnostic", func(t *testing.T) {
		testCases := []struct {
			name string
			a, b string
		}{
			{"first value not numeric", "abc", "5"},
			{"second value not numeric", "5", "abc"},
			{"both values not numeric", "abc", "def"},
			{"empty values", "", ""},
			{"leading whitespace", " 5", "5"},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				out := validator.Consistent(tc.a, tc.b, validator.KindNumeric)
				assert.False(t, out.OK)
				assert.Equal(t, "Invalid numeric values for consistency check", out.Detail)
			})
		}
	})

	t.Run("nan is consistent with nothing", func(t *testing.T) {
		out := validator.Consistent("NaN", "NaN", validator.KindNumeric)
		assert.False(t, out.OK)
		assert.Empty(t, out.Detail)
	})

	t.Run("unrecognized kind carries a diagnostic naming it", func(t *testing.T) {
		out := validator.Consistent("a", "a", validator.ConsistencyKind("fuzzy"))
		assert.False(t, out.OK)
		assert.Equal(t, "Unknown consistency check type: fuzzy", out.Detail)
	})
}

func TestParseConsistencyKind(t *testing.T) {
	t.Parallel()

	t.Run("accepts the declared kinds", func(t *testing.T) {
		k, err := validator.ParseConsistencyKind("equality")
		require.NoError(t, err)
		assert.Equal(t, validator.KindEquality, k)

		k, err = validator.ParseConsistencyKind("numeric")
		require.NoError(t, err)
		assert.Equal(t, validator.KindNumeric, k)
	})

	t.Run("rejects anything else", func(t *testing.T) {
		for _, input := range []string{"", "Equality", "NUMERIC", "fuzzy"} {
			_, err := validator.ParseConsistencyKind(input)
			assert.ErrorIs(t, err, validator.ErrUnknownKind, "input: %q", input)
		}
	})
}
