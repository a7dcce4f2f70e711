package validator_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/datacheck/pkg/validator"
)

func TestInRange(t *testing.T) {
	t.Parallel()

	t.Run("passes values inside the range", func(t *testing.T) {
		testCases := []struct {
			name            string
			value, min, max float64
		}{
			{"middle of range", 15.5, 10, 20},
			{"lower bound inclusive", 10, 10, 20},
			{"upper bound inclusive", 20, 10, 20},
			{"single point range", 5, 5, 5},
			{"negative range", -15, -20, -10},
			{"unbounded below", -1e300, math.Inf(-1), 0},
			{"unbounded above", 1e300, 0, math.Inf(1)},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				out := validator.InRange(tc.value, tc.min, tc.max)
				assert.True(t, out.OK)
				assert.Empty(t, out.Detail)
			})
		}
	})

	t.Run("fails values outside the range", func(t *testing.T) {
		testCases := []struct {
			name            string
			value, min, max float64
		}{
			{"above upper bound", 25, 10, 20},
			{"below lower bound", 5, 10, 20},
			{"just above", 20.0001, 10, 20},
			{"just below", 9.9999, 10, 20},
			{"empty range", 15, 20, 10},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				out := validator.InRange(tc.value, tc.min, tc.max)
				assert.False(t, out.OK)
				assert.NotEmpty(t, out.Detail)
			})
		}
	})

	t.Run("formats the diagnostic with value and bounds", func(t *testing.T) {
		out := validator.InRange(25, 10, 20)
		assert.Equal(t, "Value 25 is outside range [10, 20]", out.Detail)

		out = validator.InRange(9.5, 10.25, 20.75)
		assert.Equal(t, "Value 9.5 is outside range [10.25, 20.75]", out.Detail)
	})

	t.Run("nan is inside no range", func(t *testing.T) {
		out := validator.InRange(math.NaN(), math.Inf(-1), math.Inf(1))
		assert.False(t, out.OK)
		assert.Equal(t, "Value NaN is outside range [-Inf, +Inf]", out.Detail)
	})

	t.Run("nan bounds fail every value", func(t *testing.T) {
		assert.False(t, validator.InRange(5, math.NaN(), 10).OK)
		assert.False(t, validator.InRange(5, 0, math.NaN()).OK)
	})
}
